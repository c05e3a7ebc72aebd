package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/niftysoft/blockfall/internal"
)

func main() {
	ebiten.SetWindowSize(internal.ScreenDims.W*2, internal.ScreenDims.H*2)
	ebiten.SetWindowTitle("blockfall")
	if err := ebiten.RunGame(internal.NewTetrisScene()); err != nil {
		log.Fatal(err)
	}
}
