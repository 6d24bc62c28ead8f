// Package sessionstore provides a ready-made session context
// collaborator for hosts: per-session tracking of loaded skills with a
// configurable load quota, behind a TTL+LRU session store.
package sessionstore

import (
	"fmt"
	"sync"

	"github.com/amplifier-go/skillstool/spec"
)

// Session tracks the skills loaded during one agent session and gates
// further loads. It implements spec.SessionContext.
type Session struct {
	ID string

	mu     sync.Mutex
	loaded map[string]struct{}
	order  []string

	maxLoaded int

	closed bool
}

var _ spec.SessionContext = (*Session)(nil)

func (s *Session) IsSkillLoaded(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loaded[name]
	return ok
}

// CanLoadSkill reports whether another skill may be loaded. When only
// one quota slot remains it returns ok=true with an advisory warning;
// at the quota it returns ok=false with the refusal message.
func (s *Session) CanLoadSkill() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxLoaded <= 0 {
		return true, ""
	}
	n := len(s.loaded)
	if n >= s.maxLoaded {
		return false, fmt.Sprintf("Cannot load more skills: session limit of %d reached", s.maxLoaded)
	}
	if n == s.maxLoaded-1 {
		return true, fmt.Sprintf("Approaching skill load limit (%d of %d loaded)", n, s.maxLoaded)
	}
	return true, ""
}

func (s *Session) MarkSkillLoaded(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded == nil {
		s.loaded = map[string]struct{}{}
	}
	if _, ok := s.loaded[name]; ok {
		return
	}
	s.loaded[name] = struct{}{}
	s.order = append(s.order, name)
}

// LoadedSkills returns the loaded skill names in load order.
func (s *Session) LoadedSkills() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}
