package snake

import "time"

// Board geometry. The window is Cols*CellSize by Rows*CellSize pixels.
const (
	CellSize = 20
	Cols     = 800 / CellSize // 40
	Rows     = 600 / CellSize // 30
)

// Round start.
var (
	StartCell      = Cell{Col: 5, Row: 5}
	StartDirection = Right
)

// Difficulty curve.
const (
	BaseSpeed    = 150 * time.Millisecond
	SpeedStep    = 10 * time.Millisecond
	SpeedFloor   = 50 * time.Millisecond
	SpeedUpEvery = 5 // points between speed-ups
)

// GameOverDelay is how long the game-over state is shown before the next round.
const GameOverDelay = 2 * time.Second

// Config holds the fixed rules a State is built with.
type Config struct {
	Cols           int
	Rows           int
	Start          Cell
	StartDirection Direction
	BaseSpeed      time.Duration
	SpeedStep      time.Duration
	SpeedFloor     time.Duration
	SpeedUpEvery   int
	GameOverDelay  time.Duration
}

// DefaultConfig returns the rules of the arcade game.
func DefaultConfig() Config {
	return Config{
		Cols:           Cols,
		Rows:           Rows,
		Start:          StartCell,
		StartDirection: StartDirection,
		BaseSpeed:      BaseSpeed,
		SpeedStep:      SpeedStep,
		SpeedFloor:     SpeedFloor,
		SpeedUpEvery:   SpeedUpEvery,
		GameOverDelay:  GameOverDelay,
	}
}
