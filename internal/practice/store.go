package practice

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Meta identifies what a stored session is practicing.
type Meta struct {
	Exam      string
	TopicSlug string
	TopicName string
}

type entry struct {
	mu      sync.Mutex
	id      string
	meta    Meta
	session *Session
	touched time.Time
	elem    *list.Element
}

// Store keeps live sessions in memory, keyed by a random id. Entries idle
// for longer than the TTL are dropped on access and by Sweep. When a
// maximum is set, Put evicts the least recently touched session to make
// room.
type Store struct {
	mu         sync.Mutex
	entries    map[string]*entry
	recent     *list.List // front is most recently touched
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

type StoreOption func(*Store)

// WithMaxEntries caps the number of live sessions; n <= 0 means no cap.
func WithMaxEntries(n int) StoreOption {
	return func(st *Store) {
		st.maxEntries = n
	}
}

func NewStore(ttl time.Duration, opts ...StoreOption) *Store {
	st := &Store{
		entries: make(map[string]*entry),
		recent:  list.New(),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// SetClock replaces the store's time source.
func (st *Store) SetClock(now func() time.Time) {
	st.mu.Lock()
	st.now = now
	st.mu.Unlock()
}

// Put stores a session and returns its id.
func (st *Store) Put(meta Meta, s *Session) string {
	id := uuid.NewString()
	st.mu.Lock()
	defer st.mu.Unlock()

	for st.maxEntries > 0 && len(st.entries) >= st.maxEntries {
		oldest := st.recent.Back()
		if oldest == nil {
			break
		}
		st.remove(oldest.Value.(*entry))
	}

	e := &entry{id: id, meta: meta, session: s, touched: st.now()}
	e.elem = st.recent.PushFront(e)
	st.entries[id] = e
	return id
}

// With runs fn while holding the session's lock and refreshes its idle
// timer. It reports false when the id is unknown or has expired.
func (st *Store) With(id string, fn func(meta Meta, s *Session)) bool {
	st.mu.Lock()
	e, ok := st.entries[id]
	if ok && st.expired(e) {
		st.remove(e)
		ok = false
	}
	if ok {
		e.touched = st.now()
		st.recent.MoveToFront(e.elem)
	}
	st.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.meta, e.session)
	return true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	if e, ok := st.entries[id]; ok {
		st.remove(e)
	}
	st.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were dropped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for _, e := range st.entries {
		if st.expired(e) {
			st.remove(e)
			removed++
		}
	}
	return removed
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}

// caller holds st.mu
func (st *Store) remove(e *entry) {
	delete(st.entries, e.id)
	st.recent.Remove(e.elem)
}

// caller holds st.mu
func (st *Store) expired(e *entry) bool {
	return st.ttl > 0 && st.now().Sub(e.touched) > st.ttl
}
