package util

import (
	"fmt"
	"strings"
	"time"
)

type TimerState struct {
	name  string
	last  time.Duration
	total time.Duration
	count int64
	min   time.Duration
	max   time.Duration
}

func (t *TimerState) Count() int64 {
	return t.count
}

func (t *TimerState) Last() time.Duration {
	return t.last
}

func (t *TimerState) Average() time.Duration {
	if t.count == 0 {
		return 0
	}
	return t.total / time.Duration(t.count)
}

func (t *TimerState) record(d time.Duration) {
	t.last = d
	t.total += d
	t.count++
	if t.count == 1 || d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms, min: %.2fms, max: %.2fms (%d runs)", t.name, ms(t.last), ms(t.Average()), ms(t.min), ms(t.max), t.count)
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

// Timer collects named section timings, reported in first-use order.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
	now        func() time.Time
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
		now:    time.Now,
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) Reset() {
	for _, state := range t.states {
		*state = TimerState{name: state.name}
	}
}

func (t *Timer) String() string {
	lines := make([]string, 0, len(t.timerNames))
	for _, name := range t.timerNames {
		lines = append(lines, t.states[name].String())
	}
	return strings.Join(lines, "\n")
}

// Start begins a measurement; calling the returned func stops it and records
// the elapsed time.
func (t *Timer) Start(name string) func() time.Duration {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &TimerState{name: name}
		t.states[name] = state
	}
	start := t.now()
	return func() time.Duration {
		elapsed := t.now().Sub(start)
		state.record(elapsed)
		return elapsed
	}
}
