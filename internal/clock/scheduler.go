package clock

import (
	"sort"
	"time"
)

// TaskFunc is invoked when a task comes due, with the logical time it fired at.
type TaskFunc func(now time.Time)

type task struct {
	name   string
	next   time.Time
	period time.Duration // zero for one-shot tasks
	seq    uint64
	fn     TaskFunc
}

// Scheduler owns named, cancellable tasks against a logical clock.
// Time only moves when Advance or AdvanceTo is called, so tests can
// fast-forward without waiting on the wall clock.
//
// Scheduler is not safe for concurrent use; its owner serialises access.
type Scheduler struct {
	now   time.Time
	tasks map[string]*task
	seq   uint64
}

// New creates a scheduler whose logical clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{
		now:   start,
		tasks: make(map[string]*task),
	}
}

// Now returns the current logical time.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every registers a periodic task firing every period, first at now+period.
// A task with the same name is replaced. Non-positive periods are ignored.
func (s *Scheduler) Every(name string, period time.Duration, fn TaskFunc) bool {
	if period <= 0 || fn == nil {
		return false
	}
	s.put(name, s.now.Add(period), period, fn)
	return true
}

// After registers a one-shot task firing once at now+delay.
// A task with the same name is replaced, so re-arming never leaves a
// second timer behind.
func (s *Scheduler) After(name string, delay time.Duration, fn TaskFunc) bool {
	if fn == nil {
		return false
	}
	if delay < 0 {
		delay = 0
	}
	s.put(name, s.now.Add(delay), 0, fn)
	return true
}

func (s *Scheduler) put(name string, next time.Time, period time.Duration, fn TaskFunc) {
	s.seq++
	s.tasks[name] = &task{
		name:   name,
		next:   next,
		period: period,
		seq:    s.seq,
		fn:     fn,
	}
}

// Cancel removes the named task. Returns false if nothing was scheduled.
func (s *Scheduler) Cancel(name string) bool {
	if _, ok := s.tasks[name]; !ok {
		return false
	}
	delete(s.tasks, name)
	return true
}

// CancelAll removes every task.
func (s *Scheduler) CancelAll() {
	for name := range s.tasks {
		delete(s.tasks, name)
	}
}

// Deadline returns when the named task fires next.
func (s *Scheduler) Deadline(name string) (time.Time, bool) {
	t, ok := s.tasks[name]
	if !ok {
		return time.Time{}, false
	}
	return t.next, true
}

// Len returns the number of scheduled tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Names returns the scheduled task names in firing order.
func (s *Scheduler) Names() []string {
	ordered := s.ordered()
	names := make([]string, len(ordered))
	for i, t := range ordered {
		names[i] = t.name
	}
	return names
}

// Advance moves the clock forward by d, firing every task that comes due
// on the way. Returns the number of task invocations.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return s.AdvanceTo(s.now.Add(d))
}

// AdvanceTo moves the clock to target, firing due tasks in deadline order
// (ties broken by registration order). Callbacks observe Now() equal to
// their own deadline and may schedule or cancel tasks, including
// themselves. Targets in the past are ignored.
func (s *Scheduler) AdvanceTo(target time.Time) int {
	if target.Before(s.now) {
		return 0
	}

	fired := 0
	for {
		t := s.earliest()
		if t == nil || t.next.After(target) {
			break
		}

		s.now = t.next
		if t.period > 0 {
			t.next = t.next.Add(t.period)
		} else {
			delete(s.tasks, t.name)
		}
		t.fn(s.now)
		fired++
	}

	s.now = target
	return fired
}

func (s *Scheduler) earliest() *task {
	var best *task
	for _, t := range s.tasks {
		if best == nil || t.next.Before(best.next) || (t.next.Equal(best.next) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) ordered() []*task {
	result := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].next.Equal(result[j].next) {
			return result[i].seq < result[j].seq
		}
		return result[i].next.Before(result[j].next)
	})
	return result
}
