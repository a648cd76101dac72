package train

import (
	"sync"
	"time"

	"github.com/born-ml/snail/internal/nn"
)

// Snapshot is a point-in-time view of a training run.
type Snapshot struct {
	Epoch   int           // Completed epochs
	Cost    float64       // Cost over the full dataset
	LR      float64       // Learning rate in effect
	Elapsed time.Duration // Time since the run started
	Model   *nn.Model     // Deep copy, safe to use while training continues
}

// Monitor is the hand-off point between a training loop and its readers.
//
// The loop publishes snapshots; any number of goroutines read the latest one
// or queue a learning-rate change that the loop applies at its next publish.
type Monitor struct {
	mu      sync.RWMutex
	latest  Snapshot
	has     bool
	costs   []float64
	lr      float64
	pending bool
}

// NewMonitor creates an empty monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Publish stores s as the latest snapshot and appends its cost to the history.
func (m *Monitor) Publish(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = s
	m.has = true
	m.costs = append(m.costs, s.Cost)
}

// Latest returns the most recent snapshot, or false if none was published.
func (m *Monitor) Latest() (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest, m.has
}

// Costs returns a copy of every published cost in order.
func (m *Monitor) Costs() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]float64(nil), m.costs...)
}

// RequestLR asks the training loop to switch to lr at its next publish.
func (m *Monitor) RequestLR(lr float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lr = lr
	m.pending = true
}

// takeLR returns and clears a pending learning-rate request.
func (m *Monitor) takeLR() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.pending {
		return 0, false
	}
	m.pending = false
	return m.lr, true
}
