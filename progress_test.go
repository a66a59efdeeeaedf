package mdreport

import (
	"sync"
	"testing"
	"time"
)

func TestTrackerInitialState(t *testing.T) {
	tracker := NewTracker()
	snap := tracker.Snapshot()

	if snap.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0", snap.Percentage)
	}
	if snap.Stage != "Initializing" {
		t.Errorf("Stage = %q, want %q", snap.Stage, "Initializing")
	}
	if snap.Agent != "System" {
		t.Errorf("Agent = %q, want %q", snap.Agent, "System")
	}
	if snap.Activity != "Starting up" {
		t.Errorf("Activity = %q, want %q", snap.Activity, "Starting up")
	}
	if snap.Elapsed < 0 {
		t.Errorf("Elapsed = %v, want non-negative", snap.Elapsed)
	}
}

func TestTrackerUpdate(t *testing.T) {
	tracker := NewTracker()
	tracker.Update(42.5, "Research", "Analyst", "Gathering sources")

	snap := tracker.Snapshot()
	if snap.Percentage != 42.5 {
		t.Errorf("Percentage = %v, want 42.5", snap.Percentage)
	}
	if snap.Stage != "Research" || snap.Agent != "Analyst" || snap.Activity != "Gathering sources" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestTrackerReset(t *testing.T) {
	tracker := NewTracker()
	tracker.Update(99, "Finalizing", "Writer", "Polishing")
	time.Sleep(10 * time.Millisecond)
	tracker.Reset()

	snap := tracker.Snapshot()
	if snap.Percentage != 0 || snap.Stage != "Initializing" || snap.Agent != "System" || snap.Activity != "Starting up" {
		t.Errorf("Reset did not restore initial state: %+v", snap)
	}
	if snap.Elapsed > time.Second {
		t.Errorf("Elapsed = %v after Reset, want restarted clock", snap.Elapsed)
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tracker.Update(float64(i)/10, "Stage", "Agent", "Working")
		}
		close(stop)
	}()

	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := tracker.Snapshot()
				// Every read must observe a whole tuple from one Update.
				if snap.Stage != "Initializing" && snap.Stage != "Stage" {
					t.Errorf("torn snapshot: %+v", snap)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := tracker.Snapshot().Percentage; got != 99.9 {
		t.Errorf("final Percentage = %v, want 99.9", got)
	}
}
