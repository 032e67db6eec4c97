// Package gui is the interface between the game and the window that shows the
// virtual oscilloscope. All communication is through channels. The game never
// waits on a channel that is full and the GUI never waits on a channel that
// is empty.
package gui

import (
	"image"
)

// State of the game as shown by the GUI
type State int

// List of valid State values
const (
	StateInitialising State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateInitialising:
		return "initialising"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown state"
}

// GUI is the collection of channels shared between the game and the GUI
type GUI struct {
	// snapshots of the oscilloscope screen
	SetImage chan *image.RGBA

	// paddle knob changes and other user requests
	UserInput chan Input

	// changes in game state
	State chan State

	// audio setup requests. nil if audio is not required
	AudioSetup chan AudioSetup
}

// NewGUI is the preferred method of initialisation for the GUI type
func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan *image.RGBA, 1),
		UserInput: make(chan Input, 10),
		State:     make(chan State, 1),
	}
}

// WithAudio adds the audio setup channel to the GUI
func (g *GUI) WithAudio() *GUI {
	g.AudioSetup = make(chan AudioSetup, 1)
	return g
}

// PushImage sends a new image to the GUI. If the GUI hasn't consumed the
// previous image then the new image is dropped
func (g *GUI) PushImage(img *image.RGBA) bool {
	select {
	case g.SetImage <- img:
		return true
	default:
	}
	return false
}

// PushState sends a state change to the GUI. Any state change that the GUI
// hasn't yet seen is replaced
func (g *GUI) PushState(s State) {
	for {
		select {
		case g.State <- s:
			return
		default:
		}
		select {
		case <-g.State:
		default:
		}
	}
}
