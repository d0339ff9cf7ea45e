package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/neondash/catalog"
	"github.com/milk9111/neondash/record"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Int64("seed", 0, "fixed RNG seed (0 = time-seeded)")
	watch := flag.Bool("watch", false, "hot-reload catalog/catalog.yaml on change")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("neondash")

	templates, err := catalog.Load()
	if err != nil {
		log.Fatalf("load obstacle catalog: %v", err)
	}

	records := record.Open("neondash")

	game := NewGame(Config{
		Debug:        *debug,
		Seed:         *seed,
		WatchCatalog: *watch,
	}, templates, records)
	game.SetUI(NewGameUI(game))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
