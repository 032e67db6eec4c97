// Package render draws the shapes that make up the game display. Every shape
// is a sequence of dots. There is no frame buffer so the shapes must be
// redrawn continuously. How many times each shape is drawn in a frame decides
// how bright it appears and is the responsibility of the caller.
package render

import (
	"github.com/jetsetilly/xypong/game"
)

// Plotter moves the beam to a point
type Plotter interface {
	DrawPoint(x, y int) error
}

// Delayer holds the beam where it is
type Delayer interface {
	Delay(n int)
}

// Paddle geometry. A paddle is a vertical line of dots PaddleStep apart
const (
	PaddleHeight = 100
	PaddleStep   = 4
)

// Boundary geometry. The roof has half as many dots as the floor
const (
	FloorStep = 16
	RoofStep  = 32
)

// DefaultHold is the delay applied after parking the beam at the foot of a
// paddle
const DefaultHold = 1000

// Renderer draws shapes with a Plotter
type Renderer struct {
	plotter Plotter
	delayer Delayer

	// Hold is the value passed to Delay() after a paddle has been drawn
	Hold int
}

// NewRenderer is the preferred method of initialisation for the Renderer type
func NewRenderer(plotter Plotter, delayer Delayer) *Renderer {
	return &Renderer{
		plotter: plotter,
		delayer: delayer,
		Hold:    DefaultHold,
	}
}

// DrawBall draws a single dot at the ball position
func (r *Renderer) DrawBall(b game.Ball) error {
	return r.plotter.DrawPoint(b.Position.X, b.Position.Y)
}

// DrawPaddle draws a paddle on the vertical line x, centred on y. Dots that
// would be at or below the floor are reflected back above it. Afterwards the
// beam is parked at the bottom of the line for a short time to stop the
// retrace from streaking across the screen
func (r *Renderer) DrawPaddle(x, y int) error {
	top := y - PaddleHeight/2
	for j := 0; j < PaddleHeight; j += PaddleStep {
		py := top + j
		if py < 1 {
			py = -py
		}
		if err := r.plotter.DrawPoint(x, py); err != nil {
			return err
		}
	}

	if err := r.plotter.DrawPoint(x, game.Floor); err != nil {
		return err
	}
	r.delayer.Delay(r.Hold)

	return nil
}

// DrawBoundary draws the floor from left to right and then the roof from right
// to left
func (r *Renderer) DrawBoundary() error {
	for x := game.Left; x < game.Right; x += FloorStep {
		if err := r.plotter.DrawPoint(x, game.Floor); err != nil {
			return err
		}
	}

	for x := game.Right; x > game.Left; x -= RoofStep {
		if err := r.plotter.DrawPoint(x, game.Roof); err != nil {
			return err
		}
	}

	return nil
}
