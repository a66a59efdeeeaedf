package mdreport

import (
	"sync"
	"time"
)

// Initial tracker values, restored by Reset.
const (
	initialStage    = "Initializing"
	initialAgent    = "System"
	initialActivity = "Starting up"
)

// Snapshot is a consistent copy of the tracker state at one instant.
type Snapshot struct {
	Percentage float64
	Stage      string
	Agent      string
	Activity   string
	Elapsed    time.Duration
}

// Tracker records report generation progress. It is safe for
// concurrent use: a generating goroutine drives Update while any
// number of observers poll Snapshot. Every mutation replaces the whole
// tuple so a reader never observes a torn state; the lock is held only
// for the field copy, never across I/O.
type Tracker struct {
	mu         sync.Mutex
	percentage float64
	stage      string
	agent      string
	activity   string
	startTime  time.Time
}

// NewTracker creates a Tracker in its initial state with the elapsed
// clock started.
func NewTracker() *Tracker {
	return &Tracker{
		stage:     initialStage,
		agent:     initialAgent,
		activity:  initialActivity,
		startTime: time.Now(),
	}
}

// Update overwrites all progress fields at once. The percentage is
// caller-supplied and not clamped.
func (t *Tracker) Update(percentage float64, stage, agent, activity string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.percentage = percentage
	t.stage = stage
	t.agent = agent
	t.activity = activity
}

// Snapshot returns a copy of the current state plus elapsed time since
// construction or the last Reset.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Percentage: t.percentage,
		Stage:      t.stage,
		Agent:      t.agent,
		Activity:   t.activity,
		Elapsed:    time.Since(t.startTime),
	}
}

// Reset restores the initial state and restarts the elapsed clock.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.percentage = 0
	t.stage = initialStage
	t.agent = initialAgent
	t.activity = initialActivity
	t.startTime = time.Now()
}
