package game

import "fmt"

// Vector is used for both position and velocity
type Vector struct {
	X int
	Y int
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Add returns the sum of two vectors
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Ball is the position and velocity of the one and only ball. The sign of each
// velocity component is the direction of travel
type Ball struct {
	Position Vector
	Velocity Vector
}

func (b Ball) String() string {
	return fmt.Sprintf("ball at %s moving %s", b.Position, b.Velocity)
}

// Player identifies one of the two players. Player1 controls the left paddle
type Player int

// List of valid Player values
const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return fmt.Sprintf("unknown player (%d)", int(p))
}

// Opponent returns the other player
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// State is the entire state of the game
type State struct {
	Ball Ball

	// vertical centre of each paddle indexed by Player
	Paddles [2]int

	// indexed by Player
	Scores [2]int
}

// NewState returns the state of the game at program start
func NewState() State {
	return State{
		Ball: Ball{
			Position: StartPosition,
			Velocity: ServeVelocity,
		},
		Paddles: [2]int{StartPaddle, StartPaddle},
	}
}

func (s State) String() string {
	return fmt.Sprintf("%s; paddles %d, %d; score %d-%d", s.Ball,
		s.Paddles[Player1], s.Paddles[Player2],
		s.Scores[Player1], s.Scores[Player2])
}
