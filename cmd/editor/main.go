package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"battlemap/internal/editor"
)

func main() {
	ebiten.SetWindowTitle("Battlemap")
	ebiten.SetWindowSize(1628, 912)
	if err := ebiten.RunGame(editor.New()); err != nil {
		log.Fatal(err)
	}
}
