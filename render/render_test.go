package render_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/xypong/game"
	"github.com/jetsetilly/xypong/render"
	"github.com/jetsetilly/xypong/test"
)

type point struct {
	x, y int
}

type recorder struct {
	points []point
	delays []int
	fail   int
}

var fault = errors.New("fault")

func (r *recorder) DrawPoint(x, y int) error {
	if r.fail > 0 && len(r.points) == r.fail {
		return fault
	}
	r.points = append(r.points, point{x, y})
	return nil
}

func (r *recorder) Delay(n int) {
	r.delays = append(r.delays, n)
}

func TestDrawBall(t *testing.T) {
	rec := &recorder{}
	rnd := render.NewRenderer(rec, rec)

	err := rnd.DrawBall(game.Ball{Position: game.Vector{X: 350, Y: 500}})
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(rec.points), 1)
	test.ExpectEquality(t, rec.points[0], point{350, 500})
}

func TestDrawPaddle(t *testing.T) {
	rec := &recorder{}
	rnd := render.NewRenderer(rec, rec)

	err := rnd.DrawPaddle(1008, 400)
	test.DemandSuccess(t, err)

	// 25 dots plus the parked beam
	test.DemandEquality(t, len(rec.points), 26)
	for i, p := range rec.points[:25] {
		test.ExpectEquality(t, p, point{1008, 350 + i*4}, i)
	}
	test.ExpectEquality(t, rec.points[25], point{1008, 0})

	// the hold happens after the beam has been parked
	test.DemandEquality(t, len(rec.delays), 1)
	test.ExpectEquality(t, rec.delays[0], render.DefaultHold)
}

func TestDrawPaddleReflection(t *testing.T) {
	rec := &recorder{}
	rnd := render.NewRenderer(rec, rec)
	rnd.Hold = 10

	// a paddle centred on 20 starts 30 units below the floor
	err := rnd.DrawPaddle(16, 20)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(rec.points), 26)

	for i, p := range rec.points[:25] {
		y := -30 + i*4
		if y < 1 {
			y = -y
		}
		test.ExpectEquality(t, p, point{16, y}, i)
		test.ExpectSuccess(t, p.y >= 0, i)
	}
	test.ExpectEquality(t, rec.points[0], point{16, 30})
	test.ExpectEquality(t, rec.delays[0], 10)
}

func TestDrawBoundary(t *testing.T) {
	rec := &recorder{}
	rnd := render.NewRenderer(rec, rec)

	err := rnd.DrawBoundary()
	test.DemandSuccess(t, err)

	// dot count must be the same every frame for consistent brightness
	test.DemandEquality(t, len(rec.points), 64+32)

	for i, p := range rec.points[:64] {
		test.ExpectEquality(t, p, point{i * 16, 0}, i)
	}
	for i, p := range rec.points[64:] {
		test.ExpectEquality(t, p, point{1023 - i*32, 776}, i)
	}

	test.ExpectEquality(t, len(rec.delays), 0)
}

func TestDrawError(t *testing.T) {
	rec := &recorder{fail: 3}
	rnd := render.NewRenderer(rec, rec)

	err := rnd.DrawBoundary()
	test.ExpectSuccess(t, errors.Is(err, fault))
	test.ExpectEquality(t, len(rec.points), 3)

	rec = &recorder{fail: 25}
	rnd = render.NewRenderer(rec, rec)
	err = rnd.DrawPaddle(16, 400)
	test.ExpectSuccess(t, errors.Is(err, fault))

	// no hold if the beam was never parked
	test.ExpectEquality(t, len(rec.delays), 0)
}
