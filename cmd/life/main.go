//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/app"
)

func main() {
	cfg := app.NewConfig()
	configFile := flag.String("config", "", "optional JSON config file applied before flags")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			log.Fatal(err)
		}
		// flags given on the command line win over the file
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("lifegrid — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(sim.Width()*cfg.Scale, sim.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
