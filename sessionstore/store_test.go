package sessionstore

import (
	"testing"
	"time"
)

func TestStore_NewSessionAndGet(t *testing.T) {
	t.Parallel()

	st := New()
	s1 := st.NewSession()
	s2 := st.NewSession()

	if s1.ID == "" || s1.ID == s2.ID {
		t.Fatalf("expected unique non-empty IDs: %q %q", s1.ID, s2.ID)
	}

	got, ok := st.Get(s1.ID)
	if !ok || got != s1 {
		t.Fatalf("Get returned %v ok=%v", got, ok)
	}
	if _, ok := st.Get("missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	st := New()
	s := st.NewSession()
	st.Delete(s.ID)
	if _, ok := st.Get(s.ID); ok {
		t.Fatalf("expected session gone after delete")
	}
}

func TestStore_MaxSessionsEvictsLRU(t *testing.T) {
	t.Parallel()

	st := New()
	st.SetMaxSessions(2)

	s1 := st.NewSession()
	s2 := st.NewSession()
	// Touch s1 so s2 becomes the eviction candidate.
	if _, ok := st.Get(s1.ID); !ok {
		t.Fatalf("s1 missing")
	}
	s3 := st.NewSession()

	if _, ok := st.Get(s2.ID); ok {
		t.Fatalf("expected s2 evicted")
	}
	if _, ok := st.Get(s1.ID); !ok {
		t.Fatalf("expected s1 kept")
	}
	if _, ok := st.Get(s3.ID); !ok {
		t.Fatalf("expected s3 kept")
	}
}

func TestStore_TTLEviction(t *testing.T) {
	t.Parallel()

	st := New()
	s := st.NewSession()

	st.SetTTL(time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := st.Get(s.ID); ok {
		t.Fatalf("expected session expired")
	}
}

func TestStore_MaxLoadedAppliesToNewSessions(t *testing.T) {
	t.Parallel()

	st := New()
	st.SetMaxLoadedPerSession(1)
	s := st.NewSession()

	s.MarkSkillLoaded("only")
	if ok, _ := s.CanLoadSkill(); ok {
		t.Fatalf("expected quota of 1 enforced")
	}

	st.SetMaxLoadedPerSession(0)
	unlimited := st.NewSession()
	unlimited.MarkSkillLoaded("a")
	if ok, _ := unlimited.CanLoadSkill(); !ok {
		t.Fatalf("expected no quota")
	}
}
