package ownership

import (
	"sync"
	"time"
)

// Progress is a snapshot of the progress of an ownership change.
type Progress struct {
	Processed   int
	Failed      int
	Pending     int
	ProgressPct float64
	StartTime   time.Time
	FinishTime  time.Time
	HasStarted  bool
	HasFinished bool
}

type tracker struct {
	sync.RWMutex
	state Progress
}

func (t *tracker) start(pending int) {
	t.Lock()
	defer t.Unlock()

	t.state = Progress{
		Pending:    pending,
		StartTime:  time.Now(),
		HasStarted: true,
	}
}

func (t *tracker) discover(n int) {
	t.Lock()
	defer t.Unlock()

	t.state.Pending += n
	t.recalculate()
}

func (t *tracker) visit(failed bool) {
	t.Lock()
	defer t.Unlock()

	t.state.Processed++
	if failed {
		t.state.Failed++
	}
	if t.state.Pending > 0 {
		t.state.Pending--
	}
	t.recalculate()
}

func (t *tracker) finish() {
	t.Lock()
	defer t.Unlock()

	t.state.HasFinished = true
	t.state.FinishTime = time.Now()
	t.state.Pending = 0
	t.state.ProgressPct = 100 //nolint:mnd
}

func (t *tracker) snapshot() Progress {
	t.RLock()
	defer t.RUnlock()

	return t.state
}

// recalculate must be called with the write lock held.
func (t *tracker) recalculate() {
	total := t.state.Processed + t.state.Pending
	if total == 0 {
		return
	}

	t.state.ProgressPct = float64(t.state.Processed) / float64(total) * 100 //nolint:mnd
}
