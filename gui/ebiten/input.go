package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/xypong/gui"
	input "github.com/quasilyte/ebitengine-input"
)

// list of actions understood by the input handlers
const (
	actionPaddleUp input.Action = iota
	actionPaddleDown
	actionPause
	actionQuit
)

// player 1 plays with the W and S keys and player 2 with the cursor keys. the
// d-pad of each player's gamepad works too
var keymaps = [2]input.Keymap{
	{
		actionPaddleUp:   {input.KeyW, input.KeyGamepadUp},
		actionPaddleDown: {input.KeyS, input.KeyGamepadDown},
		actionPause:      {input.KeySpace, input.KeyP, input.KeyGamepadStart},
		actionQuit:       {input.KeyEscape},
	},
	{
		actionPaddleUp:   {input.KeyUp, input.KeyGamepadUp},
		actionPaddleDown: {input.KeyDown, input.KeyGamepadDown},
	},
}

var ports = [2]gui.Port{gui.Player1, gui.Player2}

func (eg *guiEbiten) initialiseInput() {
	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	for i := range eg.inputHandlers {
		eg.inputHandlers[i] = eg.inputSystem.NewHandler(uint8(i), keymaps[i])
	}
}

func (eg *guiEbiten) pushInput(inp gui.Input) bool {
	select {
	case eg.g.UserInput <- inp:
		return true
	default:
	}
	return false
}

// inputKeys returns ebiten.Termination if the quit key has been pressed
func (eg *guiEbiten) inputKeys() error {
	eg.inputSystem.Update()

	for i, h := range eg.inputHandlers {
		if h.ActionIsJustPressed(actionQuit) {
			return ebiten.Termination
		}
		if h.ActionIsJustPressed(actionPause) {
			eg.pushInput(gui.Input{Action: gui.Pause, Port: ports[i]})
		}

		for _, a := range []struct {
			action input.Action
			paddle gui.Action
		}{
			{actionPaddleUp, gui.PaddleUp},
			{actionPaddleDown, gui.PaddleDown},
		} {
			if h.ActionIsJustPressed(a.action) {
				eg.pushInput(gui.Input{Action: a.paddle, Port: ports[i], Data: true})
			}
			if h.ActionIsJustReleased(a.action) {
				eg.pushInput(gui.Input{Action: a.paddle, Port: ports[i], Data: false})
			}
		}
	}

	return nil
}

// the vertical axis of the left stick of each gamepad sets the knob directly
func (eg *guiEbiten) inputGamepadAxis() {
	const axis = 1
	const sensitivity = 0.02

	eg.gamepadIDs = ebiten.AppendGamepadIDs(eg.gamepadIDs[:0])
	for i, id := range eg.gamepadIDs {
		if i >= len(eg.gamepadAnalogue) {
			break
		}

		// ignore small movements. this also means that a gamepad that is
		// never touched will not interfere with the keyboard
		v := ebiten.GamepadAxisValue(id, axis)
		if math.Abs(v-eg.gamepadAnalogue[i]) < sensitivity {
			continue
		}

		// pushing the stick forward gives a negative value
		if eg.pushInput(gui.Input{Action: gui.PaddleSet, Port: ports[i], Data: (1 - v) / 2}) {
			eg.gamepadAnalogue[i] = v
		}
	}
}
