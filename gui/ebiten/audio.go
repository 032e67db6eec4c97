package ebiten

import (
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/xypong/gui"
)

type audioPlayer struct {
	p *oto.Player
	r io.Reader

	// the state field is accessed by the Read() function via the audio
	// engine, and by the GUI which is in another goroutine. access to the state
	// field therefore, is proctected by a mutex
	crit  sync.Mutex
	state gui.State
}

func (a *audioPlayer) setState(state gui.State) {
	a.crit.Lock()
	defer a.crit.Unlock()
	a.state = state
	if a.p != nil {
		if state == gui.StatePaused {
			a.p.Pause()
		} else {
			a.p.Play()
		}
	}
}

// Read implements the io.Reader interface for the oto player
func (a *audioPlayer) Read(buf []uint8) (int, error) {
	a.crit.Lock()
	defer a.crit.Unlock()
	if a.state != gui.StateRunning {
		// the beam is stationary while the game is paused
		clear(buf)
		return len(buf), nil
	}
	return a.r.Read(buf)
}

// the oto context can only be created once per process
func (a *audioPlayer) create(s gui.AudioSetup, endGui chan bool) (bool, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   s.Freq,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return false, err
	}

	select {
	case <-ready:
	case <-endGui:
		return false, nil
	}

	a.r = s.Read
	a.p = ctx.NewPlayer(a)
	a.p.Play()

	return true, nil
}

func (a *audioPlayer) close() error {
	if a.p == nil {
		return nil
	}
	return a.p.Close()
}
