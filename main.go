package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"piertothepast/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and content hot reload")
	story := flag.Bool("story", false, "prefer story-mode dialogue lines")
	startMap := flag.String("map", "pier", "map id to start on")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Pier to the Past")

	game, err := NewGame(*debug, *story, *startMap)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
