package snake

import (
	"math/rand"
	"time"
)

// TickResult is the outcome of one Advance.
type TickResult int

const (
	Continue TickResult = iota
	Ate
	GameOver
)

func (r TickResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Ate:
		return "ate"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why the last round ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// State is the whole simulation of one round: body, heading, food, score
// and tick interval. It is not safe for concurrent use.
type State struct {
	cfg   Config
	rng   *rand.Rand
	body  []Cell // head first
	dir   Direction
	food  Cell
	score int
	speed time.Duration
	ticks int
	cause Cause
}

// Option adjusts a freshly built State. Options are applied after the
// initial round is set up, so they override the defaults.
type Option func(*State)

// WithBody replaces the snake body (head first).
func WithBody(cells ...Cell) Option {
	return func(s *State) {
		if len(cells) == 0 {
			return
		}
		s.body = append(s.body[:0], cells...)
	}
}

// WithDirection sets the current heading.
func WithDirection(d Direction) Option {
	return func(s *State) {
		s.dir = d
	}
}

// WithFood pins the food cell.
func WithFood(c Cell) Option {
	return func(s *State) {
		s.food = c
	}
}

// WithScore starts the round with a non-zero score.
func WithScore(score int) Option {
	return func(s *State) {
		s.score = score
	}
}

// WithSpeed overrides the current tick interval.
func WithSpeed(d time.Duration) Option {
	return func(s *State) {
		s.speed = d
	}
}

// New builds a State ready for its first tick. rng is the only source of
// randomness; a nil rng is seeded from the clock.
func New(cfg Config, rng *rand.Rand, opts ...Option) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	s := &State{cfg: cfg, rng: rng}
	s.Reset()
	for _, opt := range opts {
		opt(s)
	}
	// Options may have moved the body over the sampled food.
	if s.occupied(s.food) {
		s.spawnFood()
	}
	return s
}

// Reset starts a new round from the configured start cell.
func (s *State) Reset() {
	s.body = append(s.body[:0], s.cfg.Start)
	s.dir = s.cfg.StartDirection
	s.score = 0
	s.speed = s.cfg.BaseSpeed
	s.ticks = 0
	s.cause = CauseNone
	s.spawnFood()
}

// Advance runs one tick. A requested direction that reverses the current
// one is ignored. On GameOver the state is left untouched until Reset.
func (s *State) Advance(requested Direction) TickResult {
	if requested.Valid() && requested != s.dir.Opposite() {
		s.dir = requested
	}

	head := s.body[0].Add(s.dir)
	if !head.In(s.cfg.Cols, s.cfg.Rows) {
		s.cause = CauseWall
		return GameOver
	}
	if s.occupied(head) {
		s.cause = CauseSelf
		return GameOver
	}

	s.ticks++
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if head == s.food {
		s.score++
		s.spawnFood()
		if s.cfg.SpeedUpEvery > 0 && s.score%s.cfg.SpeedUpEvery == 0 && s.speed > s.cfg.SpeedFloor {
			s.speed -= s.cfg.SpeedStep
			if s.speed < s.cfg.SpeedFloor {
				s.speed = s.cfg.SpeedFloor
			}
		}
		return Ate
	}

	s.body = s.body[:len(s.body)-1]
	return Continue
}

// spawnFood places food on a uniformly random free cell by rejection
// sampling. When the body covers the board there is no free cell; food is
// parked on the head and the next tick ends the round.
func (s *State) spawnFood() {
	if len(s.body) >= s.cfg.Cols*s.cfg.Rows {
		s.food = s.body[0]
		return
	}
	for {
		c := Cell{Col: s.rng.Intn(s.cfg.Cols), Row: s.rng.Intn(s.cfg.Rows)}
		if !s.occupied(c) {
			s.food = c
			return
		}
	}
}

func (s *State) occupied(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// Body returns a copy of the snake cells, head first.
func (s *State) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the front cell.
func (s *State) Head() Cell { return s.body[0] }

// Len returns the number of segments.
func (s *State) Len() int { return len(s.body) }

// Food returns the food cell.
func (s *State) Food() Cell { return s.food }

// Score returns points scored this round.
func (s *State) Score() int { return s.score }

// Speed returns the current tick interval.
func (s *State) Speed() time.Duration { return s.speed }

// Direction returns the current heading.
func (s *State) Direction() Direction { return s.dir }

// Ticks returns how many moves the snake has made this round.
func (s *State) Ticks() int { return s.ticks }

// Cause returns why the last Advance ended the round, or CauseNone.
func (s *State) Cause() Cause { return s.cause }

// Config returns the rules the state was built with.
func (s *State) Config() Config { return s.cfg }

// Occupied reports whether c is part of the body.
func (s *State) Occupied(c Cell) bool { return s.occupied(c) }

// Snapshot is a renderable copy of the state.
type Snapshot struct {
	Body  []Cell
	Food  Cell
	Score int
	Speed time.Duration
	Dir   Direction
}

// Snapshot copies everything a renderer needs.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Body:  s.Body(),
		Food:  s.food,
		Score: s.score,
		Speed: s.speed,
		Dir:   s.dir,
	}
}
