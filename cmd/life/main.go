//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	_ "mad-life/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctl, err := app.Setup(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(ctl, cfg)

	ebiten.SetWindowTitle("mad-life — Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
