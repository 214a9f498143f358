package simulation

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// Env is a virtual-time environment. It owns a monotonically increasing
// clock and a queue of pending wake-ups, and it multiplexes cooperative
// tasks so that exactly one of them runs at any instant. Tasks scheduled for
// the same virtual time are resumed in registration order, which makes runs
// reproducible.
type Env struct {
	now     float64
	seq     uint64
	events  eventQueue
	yieldCh chan struct{}
	logger  *logrus.Entry
}

// NewEnv instantiates an Env with the clock at zero.
func NewEnv(logger *logrus.Entry) *Env {
	env := &Env{
		events:  eventQueue{},
		yieldCh: make(chan struct{}),
		logger:  logger.WithField("component", "env"),
	}
	heap.Init(&env.events)
	return env
}

// Now returns the current virtual time.
func (e *Env) Now() float64 {
	return e.now
}

// Spawn registers a new task that starts running, at the current virtual
// time, the next time the scheduler reaches it. fn runs on its own goroutine
// but never concurrently with another task or with the scheduler loop.
func (e *Env) Spawn(name string, fn func(*Task)) *Task {
	t := &Task{
		env:    e,
		name:   name,
		resume: make(chan struct{}),
	}

	e.schedule(e.now, t)

	go func() {
		<-t.resume
		fn(t)
		e.yieldCh <- struct{}{}
	}()

	return t
}

// Wake schedules a parked task to resume at the current virtual time.
func (e *Env) Wake(t *Task) {
	e.schedule(e.now, t)
}

// Run dispatches pending wake-ups in time order until none remain. Tasks
// left parked without a pending wake-up are abandoned; this is the
// simulation shutdown.
func (e *Env) Run() {
	for e.events.Len() > 0 {
		e.dispatch()
	}
}

// RunUntil behaves like Run but stops before dispatching any wake-up later
// than limit, and leaves the clock at limit.
func (e *Env) RunUntil(limit float64) {
	for e.events.Len() > 0 && e.events[0].time <= limit {
		e.dispatch()
	}
	if e.now < limit {
		e.now = limit
	}
}

// dispatch pops the earliest wake-up, advances the clock, resumes the task,
// and blocks until the task suspends again or finishes.
func (e *Env) dispatch() {
	ev := heap.Pop(&e.events).(*event)
	e.now = ev.time

	e.logger.WithFields(logrus.Fields{
		"time": e.now,
		"task": ev.task.name,
	}).Debug("Dispatch")

	ev.task.resume <- struct{}{}
	<-e.yieldCh
}

func (e *Env) schedule(at float64, t *Task) {
	e.seq++
	heap.Push(&e.events, &event{
		time: at,
		seq:  e.seq,
		task: t,
	})
}

// Task is a cooperative process running under an Env. A task suspends by
// sleeping for a span of virtual time, or by parking until another task
// wakes it.
type Task struct {
	env    *Env
	name   string
	resume chan struct{}
}

// Name returns the task's name.
func (t *Task) Name() string {
	return t.name
}

// Env returns the environment the task runs under.
func (t *Task) Env() *Env {
	return t.env
}

// Sleep suspends the task for delay units of virtual time.
func (t *Task) Sleep(delay float64) {
	t.env.schedule(t.env.now+delay, t)
	t.yield()
}

// Park suspends the task with no pending wake-up. The caller must arrange
// for Env.Wake to be called, otherwise the task never resumes.
func (t *Task) Park() {
	t.yield()
}

// yield hands control back to the scheduler loop and blocks until the task
// is resumed.
func (t *Task) yield() {
	t.env.yieldCh <- struct{}{}
	<-t.resume
}
