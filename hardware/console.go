// Package hardware ties the display driver, the paddle sampler and the rules
// of the game together into the frame loop. The Console type doesn't care
// whether the registers it writes to are real or simulated.
package hardware

import (
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/xypong/game"
	"github.com/jetsetilly/xypong/gui"
	"github.com/jetsetilly/xypong/hardware/adc"
	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/dac"
	"github.com/jetsetilly/xypong/hardware/peripherals"
	"github.com/jetsetilly/xypong/hardware/preamble"
	"github.com/jetsetilly/xypong/hardware/timing"
	"github.com/jetsetilly/xypong/logger"
	"github.com/jetsetilly/xypong/prefs"
	"github.com/jetsetilly/xypong/render"
)

// ErrNotInitialised is returned by Frame() if Initialise() has not been called
var ErrNotInitialised = errors.New("console has not been initialised")

// Console is the game running on a board
type Console struct {
	bus bus.Bus

	Timer    *timing.Timer
	Plotter  *dac.Plotter
	Sampler  *adc.Sampler
	Renderer *render.Renderer

	State game.State

	repeat     prefs.Repeat
	servePause int

	// ServeHold keeps the beam parked on the missed ball for this long after
	// the serve pause. The busy-loop of the serve pause is far shorter on a
	// desktop computer than on the board so the simulation sets this value
	ServeHold time.Duration

	initialised bool
	frames      int

	// the gui and paddles are optional. if they are nil then the paddle knobs
	// are physical and there is nobody to send images to
	g       *gui.GUI
	paddles *peripherals.Paddles
	paused  bool
}

// Create a new console for the board on the other side of the bus. The console
// must be initialised before Frame() or Run() are called
func Create(b bus.Bus, p prefs.Prefs) *Console {
	con := &Console{
		bus:        b,
		Timer:      timing.NewTimer(p.Timing.Scale, p.WaitMode()),
		repeat:     p.Repeat,
		servePause: p.Timing.ServePause,
	}

	con.Plotter = dac.NewPlotter(b, con.Timer)
	con.Plotter.Wait = p.Timing.PointWait
	con.Sampler = adc.NewSampler(b, con.Timer)
	con.Renderer = render.NewRenderer(con.Plotter, con.Timer)
	con.Renderer.Hold = p.Timing.PaddleHold

	con.Reset()

	return con
}

// WithGUI connects the console to a GUI. User input from the GUI turns the
// virtual knobs
func (con *Console) WithGUI(g *gui.GUI, knobs peripherals.Knobs) *Console {
	con.g = g
	if knobs != nil {
		con.paddles = peripherals.NewPaddles(knobs)
	}
	return con
}

func (con *Console) String() string {
	return fmt.Sprintf("frame %d: %s", con.frames, con.State)
}

// Initialise the peripherals on the board
func (con *Console) Initialise() error {
	if con.Timer.Mode == timing.WaitLiteral {
		logger.Log(logger.Allow, "console", "conversion waits read the status register once and never wait")
	}
	logger.Logf(logger.Allow, "console", "conversion wait mode: %s", con.Timer.Mode)

	err := preamble.Preamble(con.bus, con.Timer)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	con.initialised = true

	return nil
}

// Reset the game to its starting state
func (con *Console) Reset() {
	con.State = game.NewState()
	con.frames = 0
	if con.paddles != nil {
		con.paddles.Reset()
	}
}

// Frames returns the number of frames completed since the last reset
func (con *Console) Frames() int {
	return con.frames
}

// Clamped returns the number of coordinates that have been clamped by the
// plotter
func (con *Console) Clamped() int {
	return con.Plotter.Clamped()
}

func (con *Console) repeatDraw(n int, draw func() error) error {
	for range n {
		err := draw()
		if err != nil {
			return err
		}
	}
	return nil
}

// hold redraws the point until ServeHold has elapsed
func (con *Console) hold(at game.Vector) error {
	if con.ServeHold <= 0 {
		return nil
	}
	deadline := time.Now().Add(con.ServeHold)
	for time.Now().Before(deadline) {
		err := con.Plotter.DrawPoint(at.X, at.Y)
		if err != nil {
			return err
		}
	}
	return nil
}

// Frame runs one iteration of the game: draw the ball, apply the rules, sample
// the paddles, draw the paddles and the boundary
func (con *Console) Frame() error {
	if !con.initialised {
		return ErrNotInitialised
	}

	err := con.repeatDraw(con.repeat.Ball, func() error {
		return con.Renderer.DrawBall(con.State.Ball)
	})
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	var res game.Result
	parked := con.State.Ball.Position
	con.State, res = game.Step(con.State)
	if res.Outcome == game.Miss {
		logger.Logf(logger.Allow, "game", "%s missed. score %d-%d", res.Player,
			con.State.Scores[game.Player1], con.State.Scores[game.Player2])
		con.Timer.Delay(con.servePause)
		err = con.hold(parked)
		if err != nil {
			return fmt.Errorf("console: %w", err)
		}
	}

	p1, p2, err := con.Sampler.SamplePaddles()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	con.State.Paddles[game.Player1] = p1
	con.State.Paddles[game.Player2] = p2

	err = con.repeatDraw(con.repeat.Paddle, func() error {
		return con.Renderer.DrawPaddle(game.RightLine, con.State.Paddles[game.Player2])
	})
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	err = con.repeatDraw(con.repeat.Boundary, con.Renderer.DrawBoundary)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	err = con.repeatDraw(con.repeat.Paddle, func() error {
		return con.Renderer.DrawPaddle(game.LeftLine, con.State.Paddles[game.Player1])
	})
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	con.frames++

	return nil
}

// Run frames until a value is received on the stop channel. The hook function
// is called after every frame. An error from the hook stops the loop
func (con *Console) Run(stop chan bool, hook func() error) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		con.handleInput()

		if con.paused {
			select {
			case <-stop:
				return nil
			case inp := <-con.g.UserInput:
				con.input(inp)
			}
			continue
		}

		if con.paddles != nil {
			con.paddles.Step()
		}

		err := con.Frame()
		if err != nil {
			return err
		}

		if hook != nil {
			err = hook()
			if err != nil {
				return err
			}
		}
	}
}
