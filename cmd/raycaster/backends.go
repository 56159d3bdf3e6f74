package main

import (
	"chosenoffset.com/raycaster/internal/render"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/render/terminal"
)

// backends maps the config's window.backend names to engine constructors.
var backends = map[string]func() render.Engine{
	"ebiten":   ebitenrender.NewEngine,
	"terminal": terminal.NewEngine,
}
