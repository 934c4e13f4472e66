package health

import (
	"math"
	"sync/atomic"
	"time"
)

// State is what the runner reports into and the health endpoints (plus the
// Telegram /status command) read from.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	lastTickUnix  atomic.Int64
	lastPriceBits atomic.Uint64
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

// TouchTick records a completed price fetch.
func (s *State) TouchTick(t time.Time, price float64) {
	s.lastTickUnix.Store(t.Unix())
	s.lastPriceBits.Store(math.Float64bits(price))
}

func (s *State) LastTick() time.Time {
	u := s.lastTickUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) LastPrice() float64 {
	return math.Float64frombits(s.lastPriceBits.Load())
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
