package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/VanshitChoudhary/GAME-DEVELOPMENT-SNAKE-GAME/internal/snake"
)

// directionKeys maps arrows and WASD to headings.
var directionKeys = map[ebiten.Key]snake.Direction{
	ebiten.KeyArrowUp:    snake.Up,
	ebiten.KeyW:          snake.Up,
	ebiten.KeyArrowDown:  snake.Down,
	ebiten.KeyS:          snake.Down,
	ebiten.KeyArrowLeft:  snake.Left,
	ebiten.KeyA:          snake.Left,
	ebiten.KeyArrowRight: snake.Right,
	ebiten.KeyD:          snake.Right,
}

// directionFromKeys returns the heading of the last direction key in keys.
func directionFromKeys(keys []ebiten.Key) (snake.Direction, bool) {
	for i := len(keys) - 1; i >= 0; i-- {
		if d, ok := directionKeys[keys[i]]; ok {
			return d, true
		}
	}
	return 0, false
}

// handleInput polls the keyboard once per frame (edge-triggered). Esc
// returns ebiten.Termination, which makes RunGame return nil.
func (g *Game) handleInput() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])

	if d, ok := directionFromKeys(g.keys); ok {
		g.loop.Request(d)
	}

	for _, k := range g.keys {
		switch k {
		case ebiten.KeyC:
			g.copyScore()
		case ebiten.KeyEscape:
			return ebiten.Termination
		}
	}
	return nil
}
