package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/VanshitChoudhary/GAME-DEVELOPMENT-SNAKE-GAME/internal/snake"
)

// blockSize leaves a 2px gap between neighbouring cells.
const blockSize = snake.CellSize - 2

var (
	backgroundColor = color.RGBA{A: 255}
	snakeColor      = color.RGBA{G: 255, A: 255}
	foodColor       = color.RGBA{R: 255, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	overlayColor    = color.RGBA{R: 10, G: 12, B: 10, A: 210}
	overlayBorder   = color.RGBA{R: 50, G: 80, B: 50, A: 220}
	recentRowColor  = color.RGBA{R: 30, G: 40, B: 30, A: 160}
)

// Score text position and overlay line spacing, in pixels.
const (
	scoreX      = 10
	scoreY      = 10
	lineSpacing = 30
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	st := g.loop.State()
	for _, c := range st.Body() {
		drawCell(screen, c, snakeColor)
	}
	drawCell(screen, st.Food(), foodColor)

	g.drawText(screen, fmt.Sprintf("Score: %d", st.Score()), scoreX, scoreY)

	if g.loop.Phase() == snake.PhaseGameOver {
		g.drawGameOver(screen)
	}
	if g.status != "" && g.now().Before(g.statusUntil) {
		ebitenutil.DebugPrintAt(screen, g.status, scoreX, ScreenHeight-20)
	}
}

func drawCell(screen *ebiten.Image, c snake.Cell, clr color.Color) {
	x := float32(c.Col * snake.CellSize)
	y := float32(c.Row * snake.CellSize)
	vector.FillRect(screen, x, y, blockSize, blockSize, clr, false)
}

// drawText uses the loaded font, or the debug font when none was loaded.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y int) {
	if g.face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, g.face, op)
}

// drawGameOver renders a centred panel listing recent rounds, newest at the
// bottom, plus the best score and the time left before the next round.
func (g *Game) drawGameOver(screen *ebiten.Image) {
	recent := g.loop.History().Recent()

	lines := []string{"GAME OVER"}
	for _, r := range recent {
		lines = append(lines, r.String())
	}
	lines = append(lines,
		fmt.Sprintf("best %d", g.loop.History().Best()),
		fmt.Sprintf("next round in %.1fs   C=copy", g.loop.GameOverRemaining().Seconds()),
	)

	const padX, padY = 20, 14
	boxW := float32(ScreenWidth * 2 / 3)
	boxH := float32(len(lines)*lineSpacing + padY*2)
	bx := (float32(ScreenWidth) - boxW) / 2
	by := (float32(ScreenHeight) - boxH) / 2

	vector.FillRect(screen, bx, by, boxW, boxH, overlayColor, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 2.0, overlayBorder, false)

	for i, line := range lines {
		y := int(by) + padY + i*lineSpacing
		// Highlight the round that just ended.
		if len(recent) > 0 && i == len(recent) {
			vector.FillRect(screen, bx+2, float32(y-2), boxW-4, lineSpacing, recentRowColor, false)
		}
		g.drawText(screen, line, int(bx)+padX, y)
	}
}
