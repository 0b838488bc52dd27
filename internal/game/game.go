package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/VanshitChoudhary/GAME-DEVELOPMENT-SNAKE-GAME/internal/snake"
)

// Window size in pixels.
const (
	ScreenWidth  = snake.Cols * snake.CellSize
	ScreenHeight = snake.Rows * snake.CellSize
)

// statusDuration is how long a one-line status message stays on screen.
const statusDuration = 2 * time.Second

// Game is the ebiten side of the snake: it polls keys, feeds real elapsed
// time into the Loop, plays sounds and draws the board.
type Game struct {
	loop *snake.Loop
	face text.Face

	now  func() time.Time
	last time.Time
	keys []ebiten.Key

	status      string
	statusUntil time.Time
}

// New builds a game around the loaded assets. rng is the game's only random
// source. assets may be nil (no font, no sound), which draws text with the
// debug font.
func New(assets *Assets, rng *rand.Rand) *Game {
	var (
		face    text.Face
		effects snake.Effects
	)
	if assets != nil {
		face = assets.Face
		effects = assets.Sounds
	}
	state := snake.New(snake.DefaultConfig(), rng)
	return &Game{
		loop: snake.NewLoop(state, effects),
		face: face,
		now:  time.Now,
	}
}

// Update handles input every frame, then lets the loop tick if enough real
// time has passed.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.advance(g.now())
	return nil
}

// advance feeds the real time since the previous frame into the loop.
func (g *Game) advance(now time.Time) {
	if g.last.IsZero() {
		g.last = now
		return
	}
	dt := now.Sub(g.last)
	g.last = now
	g.loop.Update(dt)
}

// copyScore puts the current or just-finished score on the clipboard.
func (g *Game) copyScore() {
	score := g.loop.State().Score()
	if g.loop.Phase() == snake.PhaseGameOver {
		if last, ok := g.loop.History().Last(); ok {
			score = last.Score
		}
	}
	line := scoreLine(score, g.loop.History().Best())
	if err := setClipboardText(line); err != nil {
		log.Printf("clipboard: %v", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("copied: " + line)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.now().Add(statusDuration)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
