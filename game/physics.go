package game

// Outcome of ResolvePaddles()
type Outcome int

// List of valid Outcome values
const (
	// the ball has not reached either paddle line
	InPlay Outcome = iota

	// the ball was returned
	Hit

	// the ball was missed and has been reset for the next serve
	Miss
)

func (o Outcome) String() string {
	switch o {
	case InPlay:
		return "in play"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "unknown outcome"
}

// Result describes what happened at a paddle line
type Result struct {
	Outcome Outcome

	// the player whose paddle line the ball reached. not meaningful if the
	// outcome is InPlay
	Player Player
}

// Advance moves the ball by its velocity
func Advance(s State) State {
	s.Ball.Position = s.Ball.Position.Add(s.Ball.Velocity)
	return s
}

// ResolveWalls bounces the ball off the roof and the floor. Rather than
// reflecting the position, the ball is nudged by one step of the inverted
// vertical velocity
func ResolveWalls(s State) State {
	b := &s.Ball
	if b.Position.Y > Roof || b.Position.Y <= Floor {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y += b.Velocity.Y
	}
	return s
}

// inRange is true if the vertical position is covered by the paddle
func inRange(y int, paddle int) bool {
	return y < paddle+HitRange && y > paddle-HitRange
}

// ResolvePaddles decides whether a ball at a paddle line has been hit or
// missed. On a hit the ball is sent back with a vertical speed proportional to
// the distance from the centre of the paddle. On a miss the opponent scores and
// the ball is reset for the next serve
func ResolvePaddles(s State) (State, Result) {
	var p Player
	switch {
	case s.Ball.Position.X <= LeftLine:
		p = Player1
	case s.Ball.Position.X >= RightLine:
		p = Player2
	default:
		return s, Result{Outcome: InPlay}
	}

	b := &s.Ball
	pad := s.Paddles[p]

	if inRange(b.Position.Y, pad) {
		// integer division truncates toward zero. a ball close to the centre
		// of the paddle leaves at a shallower angle than one near the edge
		b.Velocity.Y = (b.Position.Y - pad) / ReboundDivisor
		b.Velocity.X = -b.Velocity.X
		return s, Result{Outcome: Hit, Player: p}
	}

	b.Position = Vector{
		X: ServeX,
		Y: Pseudorandom(s.Paddles[Player1], s.Paddles[Player2], RandomModulus),
	}
	b.Velocity = ServeVelocity
	s.Scores[p.Opponent()]++

	return s, Result{Outcome: Miss, Player: p}
}

// Step applies all rules for a single frame in the correct order
func Step(s State) (State, Result) {
	s = Advance(s)
	s = ResolveWalls(s)
	return ResolvePaddles(s)
}
