package play

import (
	"flag"
	"fmt"
	"io"

	"github.com/jetsetilly/xypong/hardware/timing"
	"github.com/jetsetilly/xypong/prefs"
	"github.com/jetsetilly/xypong/version"
)

// Options for Launch(). Created by ParseArgs()
type Options struct {
	// path to the preferences file
	Config string

	// write the preferences file and exit
	SaveConfig bool

	// record the beam to a WAV file
	Wav string

	// create a CPU profile
	Profile bool

	// launch the statsview server
	Statsview bool

	// preferences after command line overrides have been applied
	Prefs prefs.Prefs
}

// ParseArgs parses the command line and loads the preferences file. Command
// line flags override values in the preferences file
func ParseArgs(args []string, output io.Writer) (Options, error) {
	var opts Options
	var backend string
	var literal bool
	var audio bool

	flgs := flag.NewFlagSet(version.ApplicationName, flag.ContinueOnError)
	flgs.SetOutput(output)
	flgs.StringVar(&opts.Config, "config", "", "preferences file. defaults to the file in the resources directory")
	flgs.BoolVar(&opts.SaveConfig, "saveconfig", false, "write the preferences to the preferences file and exit")
	flgs.StringVar(&backend, "backend", "", "register backend: sim or mmio")
	flgs.BoolVar(&literal, "literal", false, "conversion waits read the status register once and never wait")
	flgs.StringVar(&opts.Wav, "wav", "", "record the beam position to a WAV file at the scope sample rate (sim backend only, at most ten minutes)")
	flgs.BoolVar(&audio, "audio", false, "play the beam position as stereo audio (sim backend only)")
	flgs.BoolVar(&opts.Profile, "profile", false, "create CPU profile")
	flgs.BoolVar(&opts.Statsview, "statsview", false, "launch the statsview server (requires statsview build tag)")

	err := flgs.Parse(args)
	if err != nil {
		return Options{}, err
	}
	if flgs.NArg() > 0 {
		return Options{}, fmt.Errorf("too many arguments: %v", flgs.Args())
	}

	if opts.Config == "" {
		opts.Config, err = prefs.Path()
		if err != nil {
			return Options{}, err
		}
	}

	opts.Prefs, err = prefs.Load(opts.Config)
	if err != nil {
		return Options{}, err
	}

	if backend != "" {
		opts.Prefs.Backend = backend
	}
	if literal {
		opts.Prefs.Timing.ConversionWait = timing.WaitLiteral.String()
	}
	if audio {
		opts.Prefs.Scope.Audio = true
	}

	err = opts.Prefs.Validate()
	if err != nil {
		return Options{}, err
	}

	return opts, nil
}

// UsesGUI returns true if the options require a window
func (opts Options) UsesGUI() bool {
	return opts.Prefs.Backend == prefs.BackendSim
}
