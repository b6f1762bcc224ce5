package fillrush

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// Owner is the entity a scheduled task acts on. A task whose owner is no
// longer alive when it comes due is dropped without running.
type Owner interface {
	Alive() bool
}

// Task is a handle to a callback queued on a Scheduler.
// A nil *Task is valid and behaves like an already cancelled task.
type Task struct {
	id       uint64
	due      time.Duration
	interval time.Duration
	owner    Owner
	fn       func()
	canceled bool
	fired    bool
}

// Cancel prevents the task from running. Safe to call more than once and on
// tasks that already fired.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.canceled = true
}

// Active reports whether the task is still waiting to run (or, for repeating
// tasks, has not been cancelled).
func (t *Task) Active() bool {
	return t != nil && !t.canceled && !t.fired
}

// Due returns the simulated time at which the task next runs.
func (t *Task) Due() time.Duration {
	if t == nil {
		return 0
	}
	return t.due
}

// Scheduler runs delayed callbacks against simulated time. Time only moves
// when Advance is called, so every timer in a session follows the frame
// clock and pauses with it.
//
// Callbacks run on the goroutine that calls Advance. They may schedule or
// cancel other tasks but must not call Advance themselves.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	tasks  []*Task
	dueBuf []*Task
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After queues fn to run once, delay from now. owner may be nil.
func (s *Scheduler) After(delay time.Duration, owner Owner, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	return s.add(&Task{due: s.now + delay, owner: owner, fn: fn})
}

// Every queues fn to run every interval until cancelled. A non-positive
// interval schedules nothing and returns nil.
func (s *Scheduler) Every(interval time.Duration, owner Owner, fn func()) *Task {
	if interval <= 0 {
		return nil
	}
	return s.add(&Task{due: s.now + interval, interval: interval, owner: owner, fn: fn})
}

func (s *Scheduler) add(t *Task) *Task {
	s.nextID++
	t.id = s.nextID
	s.tasks = append(s.tasks, t)
	return t
}

// CancelOwner cancels every pending task bound to owner.
func (s *Scheduler) CancelOwner(owner Owner) {
	if owner == nil {
		return
	}
	for _, t := range s.tasks {
		if t.owner == owner {
			t.canceled = true
		}
	}
}

// Pending returns the number of tasks still waiting to run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Active() {
			n++
		}
	}
	return n
}

// Advance moves simulated time forward by dt seconds and runs every task
// that came due, oldest deadline first.
func (s *Scheduler) Advance(dt float64) {
	s.AdvanceBy(seconds(dt))
}

// AdvanceBy is Advance with a time.Duration step.
func (s *Scheduler) AdvanceBy(d time.Duration) {
	if d > 0 {
		s.now += d
	}
	for {
		s.dueBuf = s.dueBuf[:0]
		for _, t := range s.tasks {
			if t.Active() && t.due <= s.now {
				s.dueBuf = append(s.dueBuf, t)
			}
		}
		if len(s.dueBuf) == 0 {
			break
		}
		slices.SortFunc(s.dueBuf, func(a, b *Task) int {
			if c := cmp.Compare(a.due, b.due); c != 0 {
				return c
			}
			return cmp.Compare(a.id, b.id)
		})
		for _, t := range s.dueBuf {
			s.fire(t)
		}
	}
	s.compact()
}

func (s *Scheduler) fire(t *Task) {
	if !t.Active() {
		return
	}
	if t.owner != nil && !t.owner.Alive() {
		t.canceled = true
		return
	}
	if t.interval > 0 {
		t.due += t.interval
	} else {
		t.fired = true
	}
	t.fn()
}

// compact drops finished and cancelled tasks, reusing the backing array.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Reset cancels all tasks and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	for _, t := range s.tasks {
		t.canceled = true
	}
	s.tasks = s.tasks[:0]
	s.now = 0
}

// seconds converts a frame delta in seconds to a Duration, rounded to the
// nearest nanosecond.
func seconds(dt float64) time.Duration {
	if dt <= 0 {
		return 0
	}
	return time.Duration(math.Round(dt * float64(time.Second)))
}
