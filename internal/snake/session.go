package snake

import (
	"math/rand"
	"time"
)

// Session is a headless harness: one seeded round driven by the Autopilot
// through the same Loop the window uses, with no real time involved.
type Session struct {
	Config   Config
	SimLog   *SimLog
	Seed     int64
	MaxTicks int

	verbose bool
}

// SessionOption is a builder function applied to a Session during construction.
type SessionOption func(*Session)

// WithSessionSeed sets the RNG seed for deterministic runs.
func WithSessionSeed(seed int64) SessionOption {
	return func(ss *Session) {
		ss.Seed = seed
	}
}

// WithMaxTicks caps the round length; 0 means no cap.
func WithMaxTicks(n int) SessionOption {
	return func(ss *Session) {
		ss.MaxTicks = n
	}
}

// WithVerbose enables per-move logging.
func WithVerbose(v bool) SessionOption {
	return func(ss *Session) {
		ss.verbose = v
	}
}

// WithConfig replaces the default rules.
func WithConfig(cfg Config) SessionOption {
	return func(ss *Session) {
		ss.Config = cfg
	}
}

// NewSession creates a session with default rules and seed 1.
func NewSession(opts ...SessionOption) *Session {
	ss := &Session{
		Config:   DefaultConfig(),
		Seed:     1,
		MaxTicks: 10000,
	}
	for _, opt := range opts {
		opt(ss)
	}
	ss.SimLog = NewSimLog(ss.verbose)
	return ss
}

// RoundSummary is what a headless round produced.
type RoundSummary struct {
	Seed     int64
	Result   RoundResult
	MinSpeed time.Duration // fastest tick interval reached
	Capped   bool          // stopped by MaxTicks rather than a collision
}

// Run plays one round to game over or the tick cap.
func (ss *Session) Run() RoundSummary {
	rng := rand.New(rand.NewSource(ss.Seed)) // #nosec G404 -- headless harness
	state := New(ss.Config, rng)
	loop := NewLoop(state, nil, WithSimLog(ss.SimLog))
	var pilot Autopilot

	sum := RoundSummary{Seed: ss.Seed, MinSpeed: state.Speed()}
	for {
		if ss.MaxTicks > 0 && state.Ticks() >= ss.MaxTicks {
			sum.Capped = true
			sum.Result = RoundResult{
				Round:  loop.Round(),
				Score:  state.Score(),
				Length: state.Len(),
				Ticks:  state.Ticks(),
				Cause:  CauseNone,
			}
			return sum
		}
		loop.Request(pilot.Choose(state))
		// Just over one interval so exactly one tick runs.
		res, _ := loop.Update(state.Speed() + time.Millisecond)
		if sp := state.Speed(); sp < sum.MinSpeed {
			sum.MinSpeed = sp
		}
		if res == GameOver {
			sum.Result, _ = loop.History().Last()
			return sum
		}
	}
}
