package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Resolve(t *testing.T) {
	s := NewStore(newGated(), time.Hour)

	id, c, created := s.Resolve("")
	require.True(t, created)
	require.NotEmpty(t, id)

	again, c2, created := s.Resolve(id)
	assert.False(t, created)
	assert.Equal(t, id, again)
	assert.Same(t, c, c2)

	other, _, created := s.Resolve("not-a-session")
	assert.True(t, created)
	assert.NotEqual(t, "not-a-session", other)
	assert.Equal(t, 2, s.Len())

	s.Delete(other)
	_, ok := s.Get(other)
	assert.False(t, ok)
}

func TestStore_CleanupEvictsIdle(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(newGated(), 30*time.Minute)
	s.now = func() time.Time { return now }

	idle, _ := s.Create()
	now = now.Add(20 * time.Minute)
	fresh, _ := s.Create()

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, s.Cleanup())

	_, ok := s.Get(idle)
	assert.False(t, ok)
	_, ok = s.Get(fresh)
	assert.True(t, ok)
}

func TestStore_CleanupKeepsBusySessions(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	gen := newGated()
	s := NewStore(gen, time.Minute)
	s.now = func() time.Time { return now }

	id, c := s.Create()
	task, err := c.Start(context.Background(), alex())
	require.NoError(t, err)
	<-gen.started

	now = now.Add(time.Hour)
	assert.Equal(t, 0, s.Cleanup())
	_, ok := s.Get(id)
	assert.True(t, ok)

	close(gen.release)
	_, err = task.Wait(context.Background())
	require.NoError(t, err)
}

func TestStore_ZeroTTLNeverEvicts(t *testing.T) {
	s := NewStore(newGated(), 0)
	s.Create()
	assert.Equal(t, 0, s.Cleanup())
	assert.Equal(t, 1, s.Len())
}

func TestStore_RunStopsWithContext(t *testing.T) {
	s := NewStore(newGated(), time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, 10*time.Millisecond) }()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}
