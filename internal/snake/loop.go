package snake

import (
	"fmt"
	"time"
)

// Phase is the loop's display state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Effects is the audio side of the window collaborator.
type Effects interface {
	PlayEat()
	PlayGameOver()
}

// Loop drives a State at its tick interval from real elapsed time. It owns
// the pending direction request and the timed game-over pause.
type Loop struct {
	state   *State
	effects Effects
	simLog  *SimLog
	history *RoundHistory

	phase     Phase
	accum     time.Duration // real time since the last tick
	overTimer time.Duration // real time spent in PhaseGameOver
	round     int

	pending    Direction
	hasPending bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithSimLog records tick and round events into sl.
func WithSimLog(sl *SimLog) LoopOption {
	return func(l *Loop) {
		l.simLog = sl
	}
}

// WithHistory appends finished rounds to h instead of a private history.
func WithHistory(h *RoundHistory) LoopOption {
	return func(l *Loop) {
		l.history = h
	}
}

// NewLoop wraps state. effects may be nil.
func NewLoop(state *State, effects Effects, opts ...LoopOption) *Loop {
	l := &Loop{
		state:   state,
		effects: effects,
		round:   1,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.history == nil {
		l.history = NewRoundHistory()
	}
	return l
}

// Request records the latest direction seen by the input poll. It is
// consumed by the next tick; a newer valid request before then replaces it.
// A request reversing the current heading is dropped and leaves any earlier
// pending request in place.
func (l *Loop) Request(d Direction) {
	if !d.Valid() || l.phase != PhasePlaying {
		return
	}
	if cur := l.state.Direction(); d == cur.Opposite() {
		l.logf("input", "rejected", 0, "%s while heading %s", d, cur)
		return
	}
	l.pending = d
	l.hasPending = true
}

// Update advances real time by dt. It returns the tick result and true when
// a tick ran during this call.
func (l *Loop) Update(dt time.Duration) (TickResult, bool) {
	if l.phase == PhaseGameOver {
		l.overTimer += dt
		if l.overTimer >= l.state.cfg.GameOverDelay {
			l.Reset()
		}
		return GameOver, false
	}

	l.accum += dt
	if l.accum <= l.state.Speed() {
		return Continue, false
	}
	l.accum = 0
	return l.tick(), true
}

func (l *Loop) tick() TickResult {
	dir := l.state.Direction()
	if l.hasPending {
		dir = l.pending
		l.hasPending = false
	}

	prevSpeed := l.state.Speed()
	res := l.state.Advance(dir)

	switch res {
	case Ate:
		l.logf("tick", "ate", float64(l.state.Score()), "%s len=%d", l.state.Head(), l.state.Len())
		if sp := l.state.Speed(); sp != prevSpeed {
			l.logf("speed", "change", float64(sp.Milliseconds()), "%dms → %dms", prevSpeed.Milliseconds(), sp.Milliseconds())
		}
		if l.effects != nil {
			l.effects.PlayEat()
		}
	case GameOver:
		l.finishRound()
		if l.effects != nil {
			l.effects.PlayGameOver()
		}
	default:
		if l.simLog != nil {
			l.simLog.AddVerbose(l.round, l.state.Ticks(), "tick", "move", l.state.Head().String(), 0)
		}
	}
	return res
}

func (l *Loop) finishRound() {
	r := RoundResult{
		Round:  l.round,
		Score:  l.state.Score(),
		Length: l.state.Len(),
		Ticks:  l.state.Ticks(),
		Cause:  l.state.Cause(),
	}
	l.history.Add(r)
	l.logf("round", "over", float64(r.Score), "cause=%s score=%d len=%d", r.Cause, r.Score, r.Length)
	l.phase = PhaseGameOver
	l.overTimer = 0
	l.hasPending = false
}

// Reset starts the next round immediately, skipping any remaining pause.
func (l *Loop) Reset() {
	l.state.Reset()
	l.round++
	l.phase = PhasePlaying
	l.accum = 0
	l.overTimer = 0
	l.hasPending = false
	l.logf("round", "reset", 0, "food=%s", l.state.Food())
}

func (l *Loop) logf(category, key string, num float64, format string, args ...any) {
	if l.simLog == nil {
		return
	}
	l.simLog.Add(l.round, l.state.Ticks(), category, key, fmt.Sprintf(format, args...), num)
}

// State returns the simulation being driven.
func (l *Loop) State() *State { return l.state }

// Phase returns the current display state.
func (l *Loop) Phase() Phase { return l.phase }

// Round returns the 1-based number of the round in play or just ended.
func (l *Loop) Round() int { return l.round }

// History returns the finished rounds.
func (l *Loop) History() *RoundHistory { return l.history }

// GameOverRemaining returns how long the game-over state will still last.
func (l *Loop) GameOverRemaining() time.Duration {
	if l.phase != PhaseGameOver {
		return 0
	}
	if rem := l.state.cfg.GameOverDelay - l.overTimer; rem > 0 {
		return rem
	}
	return 0
}
