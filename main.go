package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/camrig/logging"
)

func main() {
	scenePath := flag.String("scene", "", "scene yaml (default: embedded demo)")
	watch := flag.Bool("watch", false, "reload scene and script edits under prefabs/")
	level := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *level, Console: true})
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(*scenePath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("load scene")
	}
	defer game.Close()
	if *watch {
		if err := game.rig.Watch("prefabs/scenes", "prefabs/scripts"); err != nil {
			logger.Warn().Err(err).Msg("hot reload disabled")
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("camrig")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("viewer")
	}
}
