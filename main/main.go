package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stablefluids/pkg/fluid"
)

const panelWidth = 240

var (
	gridColor     = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	velocityColor = color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
)

type Game struct {
	fluid      *fluid.Fluid
	windowSize int

	running      bool
	showDensity  bool
	showVelocity bool
	showGrid     bool
	sciColors    bool
	view         fieldView

	dragging     bool
	lastX, lastY int

	pixels  []byte
	density *ebiten.Image
}

func NewGame(f *fluid.Fluid, s Settings) *Game {
	n := f.N()
	return &Game{
		fluid:       f,
		windowSize:  s.Window.Size,
		running:     s.Window.StartRunning,
		showDensity: true,
		pixels:      make([]byte, 4*n*n),
		density:     ebiten.NewImage(n, n),
	}
}

func (g *Game) Update() error {
	step := g.handleKeys()
	g.handleMouse()
	if g.running || step {
		g.fluid.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	n := g.fluid.N()
	cell := float64(g.windowSize / n)

	if g.showDensity {
		g.drawDensity(screen, cell)
	}
	if g.showGrid {
		for k := 0; k <= n; k++ {
			p := float32(float64(k) * cell)
			end := float32(float64(n) * cell)
			vector.StrokeLine(screen, p, 0, p, end, 1, gridColor, false)
			vector.StrokeLine(screen, 0, p, end, p, 1, gridColor, false)
		}
	}
	if g.showVelocity {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				v := g.fluid.VelocityAt(i, j)
				cx := (float64(i) + 0.5) * cell
				cy := (float64(j) + 0.5) * cell
				vector.StrokeLine(screen, float32(cx), float32(cy),
					float32(cx+v.X*cell), float32(cy+v.Y*cell), 1, velocityColor, true)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, g.status(), g.windowSize+8, 8)
}

// fieldView selects the scalar field drawn under the velocity lines.
type fieldView int

const (
	viewDensity fieldView = iota
	viewSpeed
	viewVorticity
	numViews
)

func (v fieldView) String() string {
	switch v {
	case viewSpeed:
		return "speed"
	case viewVorticity:
		return "vorticity"
	default:
		return "density"
	}
}

func (g *Game) field() fluid.ScalarField {
	switch g.view {
	case viewSpeed:
		return g.fluid.VelocityMagnitude()
	case viewVorticity:
		return g.fluid.Vorticity()
	default:
		return g.fluid.Density()
	}
}

func (g *Game) drawDensity(screen *ebiten.Image, cell float64) {
	d := g.field()
	// only density has a natural grayscale mapping
	sci := g.sciColors || g.view != viewDensity
	var lo, hi float64
	if sci {
		lo, hi = d.MinMax()
	}
	for k, v := range d.Values() {
		var c color.RGBA
		if sci {
			c = getSciValue(v, lo, hi)
		} else {
			c = densityGray(v)
		}
		g.pixels[4*k] = c.R
		g.pixels[4*k+1] = c.G
		g.pixels[4*k+2] = c.B
		g.pixels[4*k+3] = c.A
	}
	g.density.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell, cell)
	screen.DrawImage(g.density, op)
}

func (g *Game) status() string {
	state := "paused"
	if g.running {
		state = "running"
	}
	return fmt.Sprintf(`Viscosity = %.3f
Total density = %.2f
Max divergence = %.4f
Field = %s
FPS: %0.2f (%s)

Left drag : add smoke
Right drag: push fluid
A : single step
Z : start/stop
R : reset
D : toggle field
F : cycle density/speed/vorticity
V : toggle velocity
G : toggle grid
C : toggle colours
+/= : increase viscosity
-   : decrease viscosity`,
		g.fluid.Viscosity(), g.fluid.TotalDensity(), g.fluid.MaxDivergence(),
		g.view, ebiten.ActualFPS(), state)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.windowSize + panelWidth, g.windowSize
}

func main() {
	settingsPath := flag.String("settings", "settings.json", "path to the JSON settings file")
	gridSize := flag.Int("n", 0, "grid points per side (overrides settings)")
	viscosity := flag.Float64("visc", -1, "initial viscosity (overrides settings)")
	run := flag.Bool("run", false, "start the animation immediately")
	flag.Parse()

	settings, err := loadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *gridSize > 0 {
		settings.Simulation.GridSize = *gridSize
	}
	if *viscosity >= 0 {
		settings.Simulation.Viscosity = *viscosity
	}
	if *run {
		settings.Window.StartRunning = true
	}
	if err := settings.validate(); err != nil {
		log.Fatal(err)
	}

	f, err := fluid.New(settings.fluidConfig())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(settings.Window.Size+panelWidth, settings.Window.Size)
	ebiten.SetWindowTitle("2D Stable Fluids")
	ebiten.SetTPS(1000 / settings.Window.TickMs)

	if err := ebiten.RunGame(NewGame(f, settings)); err != nil {
		log.Fatal(err)
	}
}
