package game_test

import (
	"testing"

	"github.com/jetsetilly/xypong/game"
	"github.com/jetsetilly/xypong/test"
)

func ball(x, y, vx, vy int) game.Ball {
	return game.Ball{
		Position: game.Vector{X: x, Y: y},
		Velocity: game.Vector{X: vx, Y: vy},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestNewState(t *testing.T) {
	s := game.NewState()
	test.ExpectEquality(t, s.Ball, ball(350, 500, 3, 0))
	test.ExpectEquality(t, s.Scores, [2]int{0, 0})
	test.ExpectEquality(t, s.Paddles, [2]int{388, 388})
}

func TestAdvance(t *testing.T) {
	s := game.State{Ball: ball(100, 200, 3, -2)}
	s = game.Advance(s)
	test.ExpectEquality(t, s.Ball, ball(103, 198, 3, -2))
	s = game.Advance(s)
	test.ExpectEquality(t, s.Ball, ball(106, 196, 3, -2))
}

func TestWallReflection(t *testing.T) {
	for _, y := range []int{-3, -1, 0, 777, 779} {
		for _, vy := range []int{-3, -1, 1, 3} {
			s := game.State{Ball: ball(500, y, 3, vy)}
			r := game.ResolveWalls(s)

			test.ExpectEquality(t, sign(r.Ball.Velocity.Y), -sign(vy), y, vy)
			test.ExpectEquality(t, abs(r.Ball.Velocity.Y), abs(vy), y, vy)

			// nudged by the new velocity
			test.ExpectEquality(t, r.Ball.Position.Y, y+r.Ball.Velocity.Y, y, vy)

			// horizontal motion is untouched
			test.ExpectEquality(t, r.Ball.Position.X, 500)
			test.ExpectEquality(t, r.Ball.Velocity.X, 3)
		}
	}

	// nothing happens between the walls, including at the roof itself
	for _, y := range []int{1, 388, 776} {
		s := game.State{Ball: ball(500, y, 3, 2)}
		test.ExpectEquality(t, game.ResolveWalls(s), s, y)
	}
}

func TestPaddleHitAngle(t *testing.T) {
	const pad = 400

	for d := -game.HitRange + 1; d < game.HitRange; d++ {
		s := game.State{
			Ball:    ball(10, pad+d, -3, 1),
			Paddles: [2]int{pad, 100},
		}
		r, res := game.ResolvePaddles(s)
		test.ExpectEquality(t, res, game.Result{Outcome: game.Hit, Player: game.Player1}, d)

		// go integer division truncates toward zero
		test.ExpectEquality(t, r.Ball.Velocity.Y, d/20, d)
		test.ExpectEquality(t, r.Ball.Velocity.X, 3, d)
		test.ExpectEquality(t, r.Ball.Position, s.Ball.Position, d)
		test.ExpectEquality(t, r.Scores, [2]int{0, 0}, d)
	}

	// truncation toward zero is symmetric
	s := game.State{Ball: ball(1010, pad-39, 3, 0), Paddles: [2]int{0, pad}}
	r, res := game.ResolvePaddles(s)
	test.ExpectEquality(t, res, game.Result{Outcome: game.Hit, Player: game.Player2})
	test.ExpectEquality(t, r.Ball.Velocity, game.Vector{X: -3, Y: -1})
}

func TestPaddleEdges(t *testing.T) {
	// the hit range is exclusive at both ends
	for _, y := range []int{400 + game.HitRange, 400 - game.HitRange} {
		s := game.State{Ball: ball(16, y, -3, 0), Paddles: [2]int{400, 400}}
		_, res := game.ResolvePaddles(s)
		test.ExpectEquality(t, res.Outcome, game.Miss, y)
	}
}

func TestMissLeft(t *testing.T) {
	s := game.State{
		Ball:    ball(10, 600, -3, 2),
		Paddles: [2]int{400, 300},
		Scores:  [2]int{4, 7},
	}
	r, res := game.ResolvePaddles(s)
	test.ExpectEquality(t, res, game.Result{Outcome: game.Miss, Player: game.Player1})

	// player 2 scores. player 1 is unchanged
	test.ExpectEquality(t, r.Scores, [2]int{4, 8})

	test.ExpectEquality(t, r.Ball.Position.X, 504)
	test.ExpectEquality(t, r.Ball.Position.Y, game.Pseudorandom(400, 300, 768))
	test.ExpectEquality(t, r.Ball.Velocity, game.Vector{X: 3, Y: 0})

	// paddles are not touched by the rules
	test.ExpectEquality(t, r.Paddles, s.Paddles)
}

func TestMissRight(t *testing.T) {
	s := game.State{
		Ball:    ball(1010, 100, 3, -1),
		Paddles: [2]int{700, 500},
	}
	r, res := game.ResolvePaddles(s)
	test.ExpectEquality(t, res, game.Result{Outcome: game.Miss, Player: game.Player2})
	test.ExpectEquality(t, r.Scores, [2]int{1, 0})
	test.ExpectEquality(t, r.Ball, ball(504, 432, 3, 0))
}

func TestScenarios(t *testing.T) {
	// ball at (10, pad1) with pad1 = 400 is a hit with no vertical speed
	s := game.State{Ball: ball(10, 400, -3, 2), Paddles: [2]int{400, 250}}
	r, res := game.ResolvePaddles(s)
	test.ExpectEquality(t, res.Outcome, game.Hit)
	test.ExpectEquality(t, r.Ball.Velocity, game.Vector{X: 3, Y: 0})

	// ball at (10, 600) with pad1 = 400 is a miss
	s = game.State{Ball: ball(10, 600, -3, 2), Paddles: [2]int{400, 250}}
	r, res = game.ResolvePaddles(s)
	test.ExpectEquality(t, res.Outcome, game.Miss)
	test.ExpectEquality(t, r.Ball.Position, game.Vector{X: 504, Y: game.Pseudorandom(400, 250, 768)})
	test.ExpectEquality(t, r.Scores[game.Player2], 1)
}

func TestInPlay(t *testing.T) {
	for _, x := range []int{17, 504, 1007} {
		s := game.State{Ball: ball(x, 10, 3, 3), Paddles: [2]int{700, 700}}
		r, res := game.ResolvePaddles(s)
		test.ExpectEquality(t, res.Outcome, game.InPlay, x)
		test.ExpectEquality(t, r, s, x)
	}
}

func TestStepOrder(t *testing.T) {
	// the ball reaches the floor and the left paddle line on the same frame.
	// the wall is resolved first so the paddle sees the nudged position
	s := game.State{
		Ball:    ball(18, 2, -3, -3),
		Paddles: [2]int{60, 60},
	}
	r, res := game.Step(s)

	// advance to (15, -1); wall inverts vy to 3 and nudges y to 2; paddle at
	// 60 is hit with d = -58
	test.ExpectEquality(t, res, game.Result{Outcome: game.Hit, Player: game.Player1})
	test.ExpectEquality(t, r.Ball.Position, game.Vector{X: 15, Y: 2})
	test.ExpectEquality(t, r.Ball.Velocity, game.Vector{X: 3, Y: -2})
}

func TestRally(t *testing.T) {
	// a ball served from the middle of the screen with both paddles tracking
	// the ball is never missed
	s := game.NewState()
	for range 10000 {
		s.Paddles[game.Player1] = s.Ball.Position.Y
		s.Paddles[game.Player2] = s.Ball.Position.Y

		var res game.Result
		s, res = game.Step(s)
		test.DemandInequality(t, res.Outcome, game.Miss)
		test.DemandSuccess(t, s.Ball.Position.X >= game.Left && s.Ball.Position.X <= game.Right)
	}
	test.ExpectEquality(t, s.Scores, [2]int{0, 0})
}
