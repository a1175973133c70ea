package timer

import (
	"errors"
	"time"
)

var (
	ErrNotStarted   = errors.New("stopwatch not started")
	ErrStillRunning = errors.New("stopwatch still running")
)

// Stopwatch measures the wall time of one named operation.
type Stopwatch struct {
	name    string
	clock   func() time.Time
	start   time.Time
	end     time.Time
	running bool
}

func NewStopwatch(name string) *Stopwatch {
	return &Stopwatch{
		name:  name,
		clock: time.Now,
	}
}

func StartNew(name string) *Stopwatch {
	s := NewStopwatch(name)
	s.Start()
	return s
}

func (s *Stopwatch) Name() string {
	return s.name
}

func (s *Stopwatch) Start() {
	s.start = s.clock()
	s.running = true
}

func (s *Stopwatch) Stop() (time.Duration, error) {
	if !s.running {
		return 0, ErrNotStarted
	}
	s.end = s.clock()
	s.running = false
	return s.end.Sub(s.start), nil
}

func (s *Stopwatch) IsRunning() bool {
	return s.running
}

// Elapsed is the running time so far, or the measured time once stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.clock().Sub(s.start)
	}
	return s.end.Sub(s.start)
}

// Measured returns the final duration of a stopped stopwatch.
func (s *Stopwatch) Measured() (time.Duration, error) {
	if s.running {
		return 0, ErrStillRunning
	}
	if s.start.IsZero() {
		return 0, ErrNotStarted
	}
	return s.end.Sub(s.start), nil
}
