package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestStopwatch(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStopwatch("range query")
	s.clock = clock.Now
	_, err := s.Measured()
	require.Equal(t, ErrNotStarted, err)
	_, err = s.Stop()
	require.Equal(t, ErrNotStarted, err)
	s.Start()
	require.Equal(t, true, s.IsRunning())
	clock.Advance(3 * time.Millisecond)
	require.Equal(t, 3*time.Millisecond, s.Elapsed())
	_, err = s.Measured()
	require.Equal(t, ErrStillRunning, err)
	clock.Advance(2 * time.Millisecond)
	d, err := s.Stop()
	require.Nil(t, err)
	require.Equal(t, 5*time.Millisecond, d)
	clock.Advance(time.Second)
	require.Equal(t, 5*time.Millisecond, s.Elapsed())
	d, err = s.Measured()
	require.Nil(t, err)
	require.Equal(t, 5*time.Millisecond, d)
	require.Equal(t, "range query", s.Name())
}

func TestStartNew(t *testing.T) {
	s := StartNew("insert")
	require.Equal(t, true, s.IsRunning())
	d, err := s.Stop()
	require.Nil(t, err)
	require.GreaterOrEqual(t, d, time.Duration(0))
}
