package practice_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/practice"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newStore(t *testing.T, ttl time.Duration) (*practice.Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	st := practice.NewStore(ttl)
	st.SetClock(clock.Now)
	return st, clock
}

func newFlashcardSession(t *testing.T) *practice.Session {
	t.Helper()
	s, err := practice.NewSession(words(3), practice.ModeFlashcard, nil)
	require.NoError(t, err)
	return s
}

func TestStore_PutAndWith(t *testing.T) {
	st, _ := newStore(t, time.Hour)
	meta := practice.Meta{Exam: "toeic", TopicSlug: "toeic-business-1", TopicName: "Business"}

	id := st.Put(meta, newFlashcardSession(t))
	require.NotEmpty(t, id)
	assert.Equal(t, 1, st.Len())

	var gotMeta practice.Meta
	ok := st.With(id, func(m practice.Meta, s *practice.Session) {
		gotMeta = m
		s.Reveal()
	})
	require.True(t, ok)
	assert.Equal(t, meta, gotMeta)

	st.With(id, func(_ practice.Meta, s *practice.Session) {
		assert.True(t, s.Revealed(), "mutations persist between calls")
	})
}

func TestStore_UnknownID(t *testing.T) {
	st, _ := newStore(t, time.Hour)

	called := false
	ok := st.With("missing", func(practice.Meta, *practice.Session) { called = true })
	assert.False(t, ok)
	assert.False(t, called)
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	st, clock := newStore(t, 10*time.Minute)
	id := st.Put(practice.Meta{}, newFlashcardSession(t))

	clock.Advance(9 * time.Minute)
	require.True(t, st.With(id, func(practice.Meta, *practice.Session) {}))

	// access refreshed the idle timer
	clock.Advance(9 * time.Minute)
	require.True(t, st.With(id, func(practice.Meta, *practice.Session) {}))

	clock.Advance(11 * time.Minute)
	assert.False(t, st.With(id, func(practice.Meta, *practice.Session) {}))
	assert.Equal(t, 0, st.Len())
}

func TestStore_Sweep(t *testing.T) {
	st, clock := newStore(t, 10*time.Minute)
	stale := st.Put(practice.Meta{}, newFlashcardSession(t))
	clock.Advance(8 * time.Minute)
	fresh := st.Put(practice.Meta{}, newFlashcardSession(t))

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 1, st.Len())

	assert.False(t, st.With(stale, func(practice.Meta, *practice.Session) {}))
	assert.True(t, st.With(fresh, func(practice.Meta, *practice.Session) {}))
}

func TestStore_Delete(t *testing.T) {
	st, _ := newStore(t, time.Hour)
	id := st.Put(practice.Meta{}, newFlashcardSession(t))

	st.Delete(id)
	assert.Equal(t, 0, st.Len())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	st, _ := newStore(t, time.Hour)
	ws := words(50)
	s, err := practice.NewSession(ws, practice.ModeFlashcard, nil)
	require.NoError(t, err)
	id := st.Put(practice.Meta{}, s)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.With(id, func(_ practice.Meta, s *practice.Session) {
				s.Reveal()
				s.Advance()
			})
		}()
	}
	wg.Wait()

	st.With(id, func(_ practice.Meta, s *practice.Session) {
		assert.Equal(t, 20, s.Index())
	})
}

func TestStore_MaxEntriesEvictsLeastRecentlyTouched(t *testing.T) {
	st := practice.NewStore(time.Hour, practice.WithMaxEntries(3))
	first := st.Put(practice.Meta{}, newFlashcardSession(t))
	second := st.Put(practice.Meta{}, newFlashcardSession(t))
	third := st.Put(practice.Meta{}, newFlashcardSession(t))

	// touching the first session makes the second the oldest
	require.True(t, st.With(first, func(practice.Meta, *practice.Session) {}))

	fourth := st.Put(practice.Meta{}, newFlashcardSession(t))
	assert.Equal(t, 3, st.Len())

	noop := func(practice.Meta, *practice.Session) {}
	assert.False(t, st.With(second, noop))
	assert.True(t, st.With(first, noop))
	assert.True(t, st.With(third, noop))
	assert.True(t, st.With(fourth, noop))
}

func TestStore_MaxEntriesBoundsGrowth(t *testing.T) {
	st := practice.NewStore(time.Hour, practice.WithMaxEntries(50))
	for i := 0; i < 1000; i++ {
		st.Put(practice.Meta{}, newFlashcardSession(t))
	}
	assert.Equal(t, 50, st.Len())

	unbounded := practice.NewStore(time.Hour)
	for i := 0; i < 100; i++ {
		unbounded.Put(practice.Meta{}, newFlashcardSession(t))
	}
	assert.Equal(t, 100, unbounded.Len())
}
