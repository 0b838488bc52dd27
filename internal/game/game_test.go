package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/VanshitChoudhary/GAME-DEVELOPMENT-SNAKE-GAME/internal/snake"
)

func newTestGame(seed int64) *Game {
	return New(nil, rand.New(rand.NewSource(seed))) // #nosec G404 -- test
}

func TestGame_FirstFrameOnlyStartsClock(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(1000, 0)
	g.advance(t0)
	if g.loop.State().Ticks() != 0 {
		t.Fatal("first frame must not tick")
	}
	g.advance(t0.Add(snake.BaseSpeed + time.Millisecond))
	if g.loop.State().Ticks() != 1 {
		t.Fatalf("expected one tick after %v, got %d", snake.BaseSpeed, g.loop.State().Ticks())
	}
	if head := g.loop.State().Head(); head != (snake.Cell{Col: 6, Row: 5}) {
		t.Fatalf("expected head (6,5), got %s", head)
	}
}

func TestGame_FramesAccumulate(t *testing.T) {
	g := newTestGame(2)
	t0 := time.Unix(1000, 0)
	g.advance(t0)
	// 60 FPS frames: 10 frames is ~166ms, past the 150ms interval.
	frame := time.Second / 60
	for i := 1; i <= 9; i++ {
		g.advance(t0.Add(time.Duration(i) * frame))
	}
	if g.loop.State().Ticks() != 0 {
		t.Fatalf("expected no tick before 150ms, got %d", g.loop.State().Ticks())
	}
	g.advance(t0.Add(10 * frame))
	if g.loop.State().Ticks() != 1 {
		t.Fatalf("expected a tick after 10 frames, got %d", g.loop.State().Ticks())
	}
}

func TestGame_Layout(t *testing.T) {
	g := newTestGame(1)
	w, h := g.Layout(1, 1)
	if w != 800 || h != 600 {
		t.Fatalf("expected 800x600, got %dx%d", w, h)
	}
}

func TestDirectionFromKeys_LastKeyWins(t *testing.T) {
	d, ok := directionFromKeys([]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyC, ebiten.KeyA})
	if !ok || d != snake.Left {
		t.Fatalf("expected left, got %s ok=%v", d, ok)
	}
	if _, ok := directionFromKeys([]ebiten.Key{ebiten.KeyC, ebiten.KeyEscape}); ok {
		t.Fatal("expected no direction from non-direction keys")
	}
	if d, ok := directionFromKeys([]ebiten.Key{ebiten.KeyS}); !ok || d != snake.Down {
		t.Fatalf("expected down for S, got %s ok=%v", d, ok)
	}
}

func TestScoreLine(t *testing.T) {
	if got := scoreLine(12, 30); got != "Snake score: 12 (best 30)" {
		t.Fatalf("unexpected score line %q", got)
	}
}
