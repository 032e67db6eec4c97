package hardware_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/xypong/game"
	"github.com/jetsetilly/xypong/gui"
	"github.com/jetsetilly/xypong/hardware"
	"github.com/jetsetilly/xypong/hardware/sim"
	"github.com/jetsetilly/xypong/prefs"
	"github.com/jetsetilly/xypong/test"
)

type beam struct {
	points []game.Vector
}

func (b *beam) Point(x, y int) {
	b.points = append(b.points, game.Vector{X: x, Y: y})
}

func newConsole(t *testing.T) (*hardware.Console, *sim.Board, *beam, *[]int) {
	t.Helper()

	bm := &beam{}
	board := sim.NewBoard(bm, 0, 0)
	con := hardware.Create(board, prefs.Default())

	delays := &[]int{}
	con.Timer.Spin = func(n int) {
		*delays = append(*delays, n)
	}

	test.DemandSuccess(t, con.Initialise())

	return con, board, bm, delays
}

func TestNotInitialised(t *testing.T) {
	con := hardware.Create(sim.NewBoard(&beam{}, 0, 0), prefs.Default())
	err := con.Frame()
	test.ExpectSuccess(t, errors.Is(err, hardware.ErrNotInitialised))
}

func TestFrame(t *testing.T) {
	con, _, bm, delays := newConsole(t)

	test.DemandSuccess(t, con.Frame())
	test.ExpectEquality(t, con.Frames(), 1)

	// ball 100 times, two paddles of 25 dots plus the parking dot, and the
	// boundary 10 times
	test.ExpectEquality(t, len(bm.points), 100+26+10*(64+32)+26)

	// the ball is drawn before it moves
	test.ExpectEquality(t, bm.points[0], game.StartPosition)
	test.ExpectEquality(t, bm.points[99], game.StartPosition)
	test.ExpectEquality(t, con.State.Ball.Position, game.Vector{X: 353, Y: 500})

	// the right paddle is drawn first and the left paddle last
	test.ExpectEquality(t, bm.points[100].X, game.RightLine)
	test.ExpectEquality(t, bm.points[len(bm.points)-1], game.Vector{X: game.LeftLine, Y: game.Floor})

	// the only delays are the paddle holds
	test.ExpectEquality(t, len(*delays), 2)
	test.ExpectEquality(t, (*delays)[0], 1000)
	test.ExpectEquality(t, (*delays)[1], 1000)

	test.ExpectEquality(t, con.Clamped(), 0)
}

func TestMiss(t *testing.T) {
	con, _, _, delays := newConsole(t)

	con.State.Ball = game.Ball{
		Position: game.Vector{X: 18, Y: 700},
		Velocity: game.Vector{X: -3, Y: 0},
	}

	test.DemandSuccess(t, con.Frame())
	test.ExpectEquality(t, con.State.Scores, [2]int{0, 1})
	test.ExpectEquality(t, con.State.Ball.Position.X, game.ServeX)
	test.ExpectEquality(t, con.State.Ball.Velocity, game.ServeVelocity)

	// serve pause happens before the paddles are drawn
	test.DemandEquality(t, len(*delays), 3)
	test.ExpectEquality(t, (*delays)[0], 1000000)
}

func TestSamplePaddles(t *testing.T) {
	con, board, _, _ := newConsole(t)

	board.SetKnob(0, 0)
	board.SetKnob(1, 1)
	test.DemandSuccess(t, con.Frame())
	test.ExpectEquality(t, con.State.Paddles, [2]int{0, game.Roof})
}

func TestRun(t *testing.T) {
	con, _, _, _ := newConsole(t)

	stop := make(chan bool, 1)
	err := con.Run(stop, func() error {
		if con.Frames() == 3 {
			stop <- true
		}
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.Frames(), 3)

	hookErr := errors.New("hook")
	err = con.Run(stop, func() error {
		return hookErr
	})
	test.ExpectSuccess(t, errors.Is(err, hookErr))
	test.ExpectEquality(t, con.Frames(), 4)

	con.Reset()
	test.ExpectEquality(t, con.Frames(), 0)
	test.ExpectEquality(t, con.State, game.NewState())
}

func TestUserInput(t *testing.T) {
	con, board, _, _ := newConsole(t)
	g := gui.NewGUI()
	con.WithGUI(g, board)

	g.UserInput <- gui.Input{Action: gui.PaddleSet, Port: gui.Player2, Data: 0.0}

	stop := make(chan bool, 1)
	err := con.Run(stop, func() error {
		stop <- true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.State.Paddles, [2]int{388, 0})
}

func TestPause(t *testing.T) {
	con, board, _, _ := newConsole(t)
	g := gui.NewGUI()
	con.WithGUI(g, board)

	g.UserInput <- gui.Input{Action: gui.Pause}

	stop := make(chan bool, 1)
	result := make(chan error, 1)
	go func() {
		result <- con.Run(stop, nil)
	}()

	test.ExpectEquality(t, <-g.State, gui.StatePaused)
	stop <- true
	test.ExpectSuccess(t, <-result)
	test.ExpectEquality(t, con.Frames(), 0)
}

func TestServeHold(t *testing.T) {
	con, _, bm, _ := newConsole(t)
	con.ServeHold = 5 * time.Millisecond

	con.State.Ball = game.Ball{
		Position: game.Vector{X: 18, Y: 700},
		Velocity: game.Vector{X: -3, Y: 0},
	}

	start := time.Now()
	test.DemandSuccess(t, con.Frame())
	test.ExpectSuccess(t, time.Since(start) >= con.ServeHold)

	// the ball is redrawn where it was last seen for the duration of the hold.
	// everything else in the frame is drawn as usual
	n := len(bm.points) - (100 + 26 + 10*(64+32) + 26)
	test.DemandSuccess(t, n > 0)
	for _, p := range bm.points[100 : 100+n] {
		test.DemandEquality(t, p, game.Vector{X: 18, Y: 700})
	}
	test.ExpectEquality(t, bm.points[100+n].X, game.RightLine)
}

func TestNoServeHoldWithoutMiss(t *testing.T) {
	con, _, bm, _ := newConsole(t)
	con.ServeHold = time.Hour

	test.DemandSuccess(t, con.Frame())
	test.ExpectEquality(t, len(bm.points), 100+26+10*(64+32)+26)
}
