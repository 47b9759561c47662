package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/lightkeeper/internal/config"
	"chosenoffset.com/lightkeeper/internal/dice"
	"chosenoffset.com/lightkeeper/internal/game"
	ebitenrender "chosenoffset.com/lightkeeper/internal/render/ebiten"
	"chosenoffset.com/lightkeeper/internal/world"
)

func main() {
	configPath := flag.String("config", "", "optional JSON config overriding the defaults")
	mapPath := flag.String("map", "assets/maps/bridge.json", "map file to load")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	grid, err := world.LoadGrid(*mapPath)
	if err != nil {
		log.Printf("Failed to load map (%v), using the built-in bridge map", err)
		grid = world.DefaultGrid()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	roller := dice.NewRoller(rand.New(rand.NewSource(*seed)))

	state, err := game.New(cfg, grid, roller)
	if err != nil {
		log.Fatalf("Failed to build game: %v", err)
	}

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	app := game.NewApp(state, renderer, inputMgr)

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Lightkeeper")

	log.Println("Starting game...")
	if err := engine.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
