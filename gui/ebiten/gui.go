// Package ebiten is the window for the virtual oscilloscope. It shows the
// phosphor screen, turns the virtual paddle knobs and plays the beam position
// as stereo audio.
package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/xypong/gui"
	"github.com/jetsetilly/xypong/logger"
	"github.com/jetsetilly/xypong/version"
	input "github.com/quasilyte/ebitengine-input"
)

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	state gui.State

	main *ebiten.Image

	// width/height of incoming image from the scope. not to be confused with
	// window dimensions
	width  int
	height int

	// the audio player is created once on the first audio setup request
	audio audioPlayer

	inputSystem   input.System
	inputHandlers [2]*input.Handler

	// gamepads and the last value of the vertical axis of the left stick
	gamepadIDs      []ebiten.GamepadID
	gamepadAnalogue [2]float64
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.inputKeys()
	if err != nil {
		return err
	}
	eg.inputGamepadAxis()

	// change state if necessary
	select {
	case eg.state = <-eg.g.State:
		eg.audio.setState(eg.state)
	default:
	}

	// create audio if necessary
	if eg.g.AudioSetup != nil && eg.audio.p == nil {
		select {
		case s := <-eg.g.AudioSetup:
			if s.Read != nil {
				ok, err := eg.audio.create(s, eg.endGui)
				if err != nil {
					return fmt.Errorf("ebiten: %w", err)
				}
				if !ok {
					return ebiten.Termination
				}
				logger.Logf(logger.Allow, "gui", "audio at %dHz", s.Freq)
			}
		default:
		}
	}

	// retrieve any pending image
	select {
	case img := <-eg.g.SetImage:
		if eg.main == nil || eg.main.Bounds() != img.Bounds() {
			eg.width = img.Bounds().Dx()
			eg.height = img.Bounds().Dy()
			eg.main = ebiten.NewImage(eg.width, eg.height)
		}
		eg.main.WritePixels(img.Pix)
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	if eg.main != nil {
		var op ebiten.DrawImageOptions

		// the scope is dimmed while the game is paused
		if eg.state == gui.StatePaused {
			op.ColorScale.SetR(0.3)
			op.ColorScale.SetG(0.3)
			op.ColorScale.SetB(0.3)
			op.ColorScale.SetA(1.0)
		}

		screen.DrawImage(eg.main, &op)
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	if eg.main != nil {
		return eg.width, eg.height
	}
	return width, height
}

// Launch the window. The function returns when the window is closed or when
// a value is received on the endGui channel. Must be called from the main
// goroutine
func Launch(endGui chan bool, g *gui.GUI, size int) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		state:  gui.StateInitialising,
		audio: audioPlayer{
			state: gui.StateRunning,
		},
	}
	eg.initialiseInput()

	// wait for the first state change and a possible quit request
	select {
	case eg.state = <-g.State:
		eg.audio.setState(eg.state)
	case <-endGui:
		return nil
	}

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err)
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
		err = eg.audio.close()
		if err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
	}()

	return ebiten.RunGame(eg)
}
