// Package play launches the game on the backend named in the preferences.
// With the simulated board the game draws to a virtual oscilloscope shown in
// a window. With the real board the game runs without a window until it is
// interrupted.
package play

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/jetsetilly/xypong/gui"
	"github.com/jetsetilly/xypong/hardware"
	"github.com/jetsetilly/xypong/hardware/mmio"
	"github.com/jetsetilly/xypong/hardware/scope"
	"github.com/jetsetilly/xypong/hardware/sim"
	"github.com/jetsetilly/xypong/logger"
	"github.com/jetsetilly/xypong/prefs"
	"github.com/jetsetilly/xypong/statsview"
	"github.com/jetsetilly/xypong/wavwriter"
)

// the rate at which snapshots of the scope are sent to the GUI
const refreshRate = 60

// Launch the game. The function returns when a value is received on the quit
// channel, when the process is interrupted or when an error occurs. The GUI
// can be nil if the backend doesn't need one
func Launch(quit chan bool, g *gui.GUI, opts Options) error {
	if opts.Statsview {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log(logger.Allow, "play", "statsview not available in this build")
		}
	}

	if opts.Profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	logger.Logf(logger.Allow, "play", "preferences: %s", opts.Prefs)

	var con *hardware.Console
	var hook func() error

	switch opts.Prefs.Backend {
	case prefs.BackendSim:
		if g == nil {
			return fmt.Errorf("play: the %s backend requires a GUI", opts.Prefs.Backend)
		}

		sc := scope.NewScope(opts.Prefs.Scope.Size, time.Duration(opts.Prefs.Scope.Decay))
		sc.SetSampleRate(opts.Prefs.Scope.SampleRate)
		board := sim.NewBoard(sc,
			time.Duration(opts.Prefs.Sim.TransferTime),
			time.Duration(opts.Prefs.Sim.ConversionTime))
		con = hardware.Create(board, opts.Prefs).WithGUI(g, board)
		con.ServeHold = time.Duration(opts.Prefs.Sim.ServeHold)

		if opts.Wav != "" {
			ww, err := wavwriter.New(opts.Wav, opts.Prefs.Scope.SampleRate)
			if err != nil {
				return err
			}
			sc.SetRecorder(ww)
			defer func() {
				err := ww.EndMixing()
				if err != nil {
					logger.Log(logger.Allow, "play", err)
				}
			}()
		}

		if opts.Prefs.Scope.Audio {
			if !g.PushAudio(gui.AudioSetup{Read: sc.Samples(), Freq: opts.Prefs.Scope.SampleRate}) {
				logger.Log(logger.Allow, "play", "audio is not available")
			}
		}

		refresh := scope.NewRefresh(refreshRate)
		defer refresh.Stop()

		hook = func() error {
			if refresh.Due() {
				g.PushImage(sc.Snapshot())
			}
			return nil
		}

	case prefs.BackendMMIO:
		m, err := mmio.Open()
		if err != nil {
			return err
		}
		defer func() {
			err := m.Close()
			if err != nil {
				logger.Log(logger.Allow, "play", err)
			}
		}()
		con = hardware.Create(m, opts.Prefs)

	default:
		return fmt.Errorf("play: unknown backend: %s", opts.Prefs.Backend)
	}

	err := con.Initialise()
	if err != nil {
		return err
	}

	if g != nil {
		g.PushState(gui.StateRunning)
	}

	// stop the game on interrupt or on request from the caller
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	stop := make(chan bool, 1)
	done := make(chan bool)
	defer close(done)

	go func() {
		select {
		case <-sig:
			logger.Log(logger.Allow, "play", "interrupted")
		case <-quit:
		case <-done:
			return
		}
		stop <- true
	}()

	err = con.Run(stop, hook)

	logger.Logf(logger.Allow, "play", "%d frames. %s", con.Frames(), con)
	if n := con.Clamped(); n > 0 {
		logger.Logf(logger.Allow, "play", "%d coordinates were clamped", n)
	}

	return err
}
