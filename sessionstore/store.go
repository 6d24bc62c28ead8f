package sessionstore

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTTL       = 24 * time.Hour
	defaultMax       = 4096
	defaultMaxLoaded = 8
)

// Store holds sessions keyed by UUIDv7 ID, with TTL expiry and an LRU
// cap on the number of live sessions.
type Store struct {
	mu sync.Mutex

	ttl         time.Duration
	maxSessions int
	maxLoaded   int

	lru *list.List               // front=MRU
	m   map[string]*list.Element // id -> element(Value=*item)
}

type item struct {
	s        *Session
	lastUsed time.Time
}

func New() *Store {
	return &Store{
		ttl:         defaultTTL,
		maxSessions: defaultMax,
		maxLoaded:   defaultMaxLoaded,
		lru:         list.New(),
		m:           map[string]*list.Element{},
	}
}

func (st *Store) SetTTL(ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}
	st.mu.Lock()
	st.ttl = ttl
	st.evictExpiredLocked(time.Now())
	st.mu.Unlock()
}

func (st *Store) SetMaxSessions(maxSessions int) {
	if maxSessions < 0 {
		maxSessions = 0
	}
	st.mu.Lock()
	st.maxSessions = maxSessions
	st.evictOverLimitLocked()
	st.mu.Unlock()
}

// SetMaxLoadedPerSession sets the load quota applied to sessions
// created afterwards. Zero disables the quota.
func (st *Store) SetMaxLoadedPerSession(n int) {
	if n < 0 {
		n = 0
	}
	st.mu.Lock()
	st.maxLoaded = n
	st.mu.Unlock()
}

func (st *Store) NewSession() *Session {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpiredLocked(now)
	st.evictOverLimitLocked()

	id := uuid.Must(uuid.NewV7()).String()
	s := &Session{ID: id, maxLoaded: st.maxLoaded}
	e := st.lru.PushFront(&item{s: s, lastUsed: now})
	st.m[id] = e

	st.evictOverLimitLocked()
	return s
}

func (st *Store) Get(id string) (*Session, bool) {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpiredLocked(now)

	e := st.m[id]
	if e == nil {
		return nil, false
	}
	it, _ := e.Value.(*item)
	if it == nil || it.s == nil || it.s.closed {
		st.deleteElemLocked(e)
		return nil, false
	}

	it.lastUsed = now
	st.lru.MoveToFront(e)
	return it.s, true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if e := st.m[id]; e != nil {
		st.deleteElemLocked(e)
	}
}

func (st *Store) evictExpiredLocked(now time.Time) {
	if st.ttl <= 0 {
		return
	}
	for e := st.lru.Back(); e != nil; {
		prev := e.Prev()
		it, ok := e.Value.(*item)
		if !ok || it == nil || it.s == nil {
			st.deleteElemLocked(e)
			e = prev
			continue
		}
		if now.Sub(it.lastUsed) <= st.ttl {
			break
		}
		st.deleteElemLocked(e)
		e = prev
	}
}

func (st *Store) evictOverLimitLocked() {
	if st.maxSessions <= 0 {
		return
	}
	for st.lru.Len() > st.maxSessions {
		e := st.lru.Back()
		if e == nil {
			return
		}
		st.deleteElemLocked(e)
	}
}

func (st *Store) deleteElemLocked(e *list.Element) {
	it, _ := e.Value.(*item)
	if it != nil && it.s != nil {
		delete(st.m, it.s.ID)
		it.s.closed = true
	}
	st.lru.Remove(e)
}
