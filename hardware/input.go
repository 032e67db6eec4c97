package hardware

import (
	"github.com/jetsetilly/xypong/gui"
	"github.com/jetsetilly/xypong/logger"
)

// handleInput drains all pending user input
func (con *Console) handleInput() {
	if con.g == nil {
		return
	}

	var drained bool
	for !drained {
		select {
		default:
			drained = true
		case inp := <-con.g.UserInput:
			con.input(inp)
		}
	}
}

func (con *Console) input(inp gui.Input) {
	switch inp.Action {
	case gui.Pause:
		con.paused = !con.paused
		if con.paused {
			con.g.PushState(gui.StatePaused)
			logger.Log(logger.Allow, "console", "paused")
		} else {
			con.g.PushState(gui.StateRunning)
			logger.Log(logger.Allow, "console", "resumed")
		}
	case gui.PaddleUp, gui.PaddleDown, gui.PaddleSet:
		if con.paddles == nil {
			return
		}
		err := con.paddles.Update(inp)
		if err != nil {
			logger.Log(logger.Allow, "console", err)
		}
	}
}
