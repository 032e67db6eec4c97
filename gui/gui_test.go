package gui_test

import (
	"image"
	"strings"
	"testing"

	"github.com/jetsetilly/xypong/gui"
	"github.com/jetsetilly/xypong/test"
)

func TestPushImage(t *testing.T) {
	g := gui.NewGUI()
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))

	test.ExpectSuccess(t, g.PushImage(a))

	// the GUI hasn't taken the first image so the second is dropped
	test.ExpectFailure(t, g.PushImage(b))
	test.ExpectEquality(t, <-g.SetImage, a)
}

func TestPushState(t *testing.T) {
	g := gui.NewGUI()
	g.PushState(gui.StateRunning)
	g.PushState(gui.StatePaused)

	// only the most recent state is seen
	test.ExpectEquality(t, <-g.State, gui.StatePaused)
	select {
	case s := <-g.State:
		t.Errorf("unexpected state: %s", s)
	default:
	}
}

func TestPushAudio(t *testing.T) {
	g := gui.NewGUI()
	test.ExpectFailure(t, g.PushAudio(gui.AudioSetup{Freq: 48000}))

	g = gui.NewGUI().WithAudio()
	test.ExpectSuccess(t, g.PushAudio(gui.AudioSetup{Read: strings.NewReader(""), Freq: 48000}))
	test.ExpectEquality(t, (<-g.AudioSetup).Freq, 48000)
}

func TestInputString(t *testing.T) {
	inp := gui.Input{Action: gui.PaddleSet, Port: gui.Player2, Data: 0.5}
	test.ExpectEquality(t, inp.String(), "player 2: paddle set (0.5)")
}
