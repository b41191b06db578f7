package live

import (
	"math/rand"
	"sync"
)

// TrafficSim produces the dashboard's visitor counters. The numbers are
// simulated, not measured: current visitors resample each tick while the
// daily and weekly totals only climb.
type TrafficSim struct {
	mu      sync.Mutex
	current int
	today   int
	weekly  int
}

func NewTrafficSim() *TrafficSim {
	return &TrafficSim{
		current: rand.Intn(50) + 10,
		today:   rand.Intn(500) + 200,
		weekly:  rand.Intn(3000) + 1000,
	}
}

// Tick advances the counters and returns the new values.
func (t *TrafficSim) Tick() (current, today, weekly int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = rand.Intn(50) + 10
	t.today += rand.Intn(10)
	t.weekly += rand.Intn(50)
	return t.current, t.today, t.weekly
}

// Counters returns the current values without advancing.
func (t *TrafficSim) Counters() (current, today, weekly int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.today, t.weekly
}
