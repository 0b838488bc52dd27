package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/VanshitChoudhary/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

func main() {
	// Assets are loaded before the window opens so a missing file never
	// shows an empty window.
	assets, err := game.LoadAssets(".")
	if err != nil {
		log.Fatal(err)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only

	ebiten.SetWindowTitle("Snake Game")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	if err := ebiten.RunGame(game.New(assets, rng)); err != nil {
		log.Fatal(err)
	}
}
