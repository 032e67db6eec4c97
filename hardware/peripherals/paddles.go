// Package peripherals translates user input into the position of the paddle
// knobs. On the simulated board the knobs are virtual and are turned by the
// keyboard or a gamepad. On the real board the knobs are physical and user
// input is ignored.
package peripherals

import (
	"fmt"

	"github.com/jetsetilly/xypong/gui"
)

// Knobs is implemented by a board with virtual paddle knobs. The value is in
// the range 0 to 1
type Knobs interface {
	SetKnob(player int, value float64)
}

// DefaultSpeed is how far a knob turns every frame while a paddle key is held
const DefaultSpeed = 0.02

type knob struct {
	position float64

	// keys currently held
	up   bool
	down bool
}

func (k *knob) turn(speed float64) bool {
	if k.up == k.down {
		return false
	}
	if k.up {
		k.position += speed
	} else {
		k.position -= speed
	}
	k.position = min(max(k.position, 0), 1)
	return true
}

// Paddles is the pair of paddle knobs
type Paddles struct {
	knobs Knobs
	k     [2]knob

	// Speed is how far a knob turns every frame while a key is held
	Speed float64
}

// NewPaddles is the preferred method of initialisation for the Paddles type
func NewPaddles(knobs Knobs) *Paddles {
	pd := &Paddles{
		knobs: knobs,
		Speed: DefaultSpeed,
	}
	pd.Reset()
	return pd
}

// Reset both knobs to the centre position
func (pd *Paddles) Reset() {
	for i := range pd.k {
		pd.k[i] = knob{position: 0.5}
		pd.knobs.SetKnob(i, pd.k[i].position)
	}
}

// Position returns the position of the knob for the player
func (pd *Paddles) Position(player int) float64 {
	return pd.k[player].position
}

// Update the paddles with user input
func (pd *Paddles) Update(inp gui.Input) error {
	var players []int
	switch inp.Port {
	case gui.Player1:
		players = []int{0}
	case gui.Player2:
		players = []int{1}
	case gui.Undefined:
		players = []int{0, 1}
	default:
		return fmt.Errorf("paddles: unrecognised port: %s", inp.Port)
	}

	switch inp.Action {
	case gui.PaddleUp, gui.PaddleDown:
		held, ok := inp.Data.(bool)
		if !ok {
			return fmt.Errorf("paddles: %s expects a bool", inp.Action)
		}
		for _, p := range players {
			if inp.Action == gui.PaddleUp {
				pd.k[p].up = held
			} else {
				pd.k[p].down = held
			}
		}

	case gui.PaddleSet:
		v, ok := inp.Data.(float64)
		if !ok {
			return fmt.Errorf("paddles: %s expects a float64", inp.Action)
		}
		v = min(max(v, 0), 1)
		for _, p := range players {
			pd.k[p].position = v
			pd.knobs.SetKnob(p, v)
		}
	}

	return nil
}

// Step turns any knob whose key is being held
func (pd *Paddles) Step() {
	for i := range pd.k {
		if pd.k[i].turn(pd.Speed) {
			pd.knobs.SetKnob(i, pd.k[i].position)
		}
	}
}
