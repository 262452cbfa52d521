package main

import (
	"image"
	"log"
	"time"

	"github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/fonts"
	"github.com/automoto/sadblob/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(seed int64) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewBookshopScene(seed),
	}

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Sad Blob")
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame(time.Now().UnixNano())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
