//go:build sdl

package main

import sdlrender "chosenoffset.com/raycaster/internal/render/sdl"

func init() {
	backends["sdl"] = sdlrender.NewEngine
}
