package gui

import "fmt"

// Action is the type of user input
type Action int

// List of valid Action values
const (
	Nothing Action = iota

	// the paddle knob is being turned. the Data field is a bool that is true
	// when the turning starts and false when it stops
	PaddleUp
	PaddleDown

	// the paddle knob is set to an absolute position. the Data field is a
	// float64 in the range 0 to 1
	PaddleSet

	// pause or resume the game. the Data field is not used
	Pause
)

func (a Action) String() string {
	switch a {
	case Nothing:
		return "nothing"
	case PaddleUp:
		return "paddle up"
	case PaddleDown:
		return "paddle down"
	case PaddleSet:
		return "paddle set"
	case Pause:
		return "pause"
	}
	return "unknown action"
}

// Port identifies which player the input is for
type Port int

// List of valid Port values
const (
	Undefined Port = iota
	Player1
	Player2
)

func (p Port) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return "undefined"
}

// Input is a single user input event
type Input struct {
	Action Action
	Port   Port
	Data   any
}

func (inp Input) String() string {
	return fmt.Sprintf("%s: %s (%v)", inp.Port, inp.Action, inp.Data)
}
