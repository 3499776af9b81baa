package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// density written per tick while the left button is held, times h
	densityInjection = 50.0
	// scale from mouse movement in pixels to injected velocity
	velocityInjection = 2.0
)

// cellAt maps a cursor position inside a window of windowSize pixels onto a
// grid cell, clamping to the grid.
func cellAt(x, y, windowSize, n int) (int, int) {
	x = min(max(x, 0), windowSize-2)
	y = min(max(y, 0), windowSize-2)
	cell := windowSize / n
	i := min(max(x/cell, 0), n-1)
	j := min(max(y/cell, 0), n-1)
	return i, j
}

// handleKeys applies the keyboard controls. It reports whether a single
// step was requested.
func (g *Game) handleKeys() bool {
	step := false
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		step = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.fluid.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showDensity = !g.showDensity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.showVelocity = !g.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.view = (g.view + 1) % numViews
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sciColors = !g.sciColors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.fluid.IncreaseViscosity()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.fluid.DecreaseViscosity()
	}
	return step
}

// handleMouse writes density and velocity impulses into the source buffers
// for the next update.
func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		g.dragging = false
		return
	}
	if !g.dragging {
		g.lastX, g.lastY = x, y
		g.dragging = true
	}

	i, j := cellAt(x, y, g.windowSize, g.fluid.N())
	if left {
		g.fluid.InjectDensity(i, j, densityInjection*g.fluid.H())
	}
	if right && (x != g.lastX || y != g.lastY) {
		delta := r2.Vec{X: float64(x - g.lastX), Y: float64(y - g.lastY)}
		g.fluid.InjectVelocity(i, j, r2.Scale(velocityInjection, delta))
	}
	g.lastX, g.lastY = x, y
}
