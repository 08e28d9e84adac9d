// Package viewer shows a running lattice in a window. It is a thin harness:
// every frame it advances the driver once, then draws the scene through an
// orbit camera.
package viewer

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sheikhrachel/go-gol3d/camera"
	"github.com/sheikhrachel/go-gol3d/scene"
	"github.com/sheikhrachel/go-gol3d/sim"
)

const (
	keyRotateSpeed = 0.03
	dragSpeed      = 0.005
	wheelZoomStep  = 0.9
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	edgeColor       = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	voxelColor      = color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}
)

// Options configures the window
type Options struct {
	Title          string
	Width, Height  int
	TPS            int
	MaxGenerations int

	// OnStep is called after every committed generation
	OnStep func(sim.StepResult)
	// Reseed is bound to the R key
	Reseed func() error
}

// Game implements ebiten.Game over a driver and its scene
type Game struct {
	driver *sim.Driver
	scene  *scene.Scene
	cam    *camera.Orbit
	logger *log.Logger
	opts   Options

	paused     bool
	stepOnce   bool
	dragging   bool
	lastX      int
	lastY      int
	lastResult sim.StepResult
}

// New creates a game. The scene must have been built from the driver's lattice.
func New(driver *sim.Driver, sc *scene.Scene, logger *log.Logger, opts Options) *Game {
	l := driver.Lattice()
	extent := float64(max(l.GetWidth(), l.GetHeight(), l.GetDepth()))
	return &Game{
		driver: driver,
		scene:  sc,
		cam:    camera.NewOrbit(extent),
		logger: logger,
		opts:   opts,
	}
}

// Run opens the window and blocks until it is closed or the simulation fails
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.opts.TPS > 0 {
		ebiten.SetTPS(g.opts.TPS)
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	g.handleInput()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.logger.Printf("viewer closed at generation %d", g.driver.Generation())
		return ebiten.Termination
	}

	if g.opts.Reseed != nil && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.opts.Reseed(); err != nil {
			return errors.Wrap(err, "[Update] reseed failed")
		}
		g.lastResult = sim.StepResult{}
	}

	if g.opts.MaxGenerations > 0 && g.driver.Generation() >= g.opts.MaxGenerations {
		return nil
	}
	if g.paused && !g.stepOnce {
		return nil
	}
	g.stepOnce = false

	res, err := g.driver.Step()
	if err != nil {
		return errors.Wrap(err, "[Update] simulation halted")
	}
	g.lastResult = res
	if g.opts.OnStep != nil {
		g.opts.OnStep(res)
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		g.cam.Rotate(-keyRotateSpeed, 0)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		g.cam.Rotate(keyRotateSpeed, 0)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.cam.Rotate(0, keyRotateSpeed)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.cam.Rotate(0, -keyRotateSpeed)
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.cam.Rotate(-float64(x-g.lastX)*dragSpeed, float64(y-g.lastY)*dragSpeed)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(math.Pow(wheelZoomStep, wy))
	}
}

type projected struct {
	x, y, size, depth float64
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	g.drawBounds(screen, w, h)

	voxels := g.scene.Voxels()
	points := make([]projected, 0, len(voxels))
	for _, v := range voxels {
		x, y, depth, ok := g.cam.Project(v.Position, w, h)
		if !ok {
			continue
		}
		points = append(points, projected{x: x, y: y, depth: depth, size: g.cam.Scale(depth, h)})
	}
	// Painter's order: far voxels first
	slices.SortFunc(points, func(a, b projected) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	for _, p := range points {
		half := p.size / 2
		vector.DrawFilledRect(screen,
			float32(p.x-half), float32(p.y-half), float32(p.size), float32(p.size),
			shade(voxelColor, p.depth/g.cam.Distance), false)
	}

	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) drawBounds(screen *ebiten.Image, w, h int) {
	lo, hi := g.scene.Bounds()
	var corners [8]r3.Vec
	for i := range corners {
		c := lo
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		corners[i] = c
	}
	for a := range corners {
		for _, bit := range []int{1, 2, 4} {
			b := a | bit
			if b == a {
				continue
			}
			x0, y0, _, ok0 := g.cam.Project(corners[a], w, h)
			x1, y1, _, ok1 := g.cam.Project(corners[b], w, h)
			if !ok0 || !ok1 {
				continue
			}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, edgeColor, false)
		}
	}
}

func (g *Game) status() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Births: %d | Deaths: %d | %s | TPS: %.0f\n"+
		"drag/arrows: orbit  wheel: zoom  space: pause  n: step  r: reseed  q: quit",
		g.driver.Generation(), g.scene.Len(), g.lastResult.Births, g.lastResult.Deaths, state, ebiten.ActualTPS())
}

// Layout follows the window size so resizing keeps pixels square
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// shade darkens c for voxels further than the orbit distance
func shade(c color.RGBA, relDepth float64) color.RGBA {
	k := math.Max(0.35, math.Min(1, 1.6-0.6*relDepth))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
