package prefs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/xypong/hardware/timing"
	"github.com/jetsetilly/xypong/resources"
)

// Filename is the name of the preferences file in the resources directory
const Filename = "xypong.toml"

// List of valid backend values
const (
	BackendSim  = "sim"
	BackendMMIO = "mmio"
)

// Timing preferences. The values are busy-loop iterations
type Timing struct {
	PointWait      int    `toml:"point_wait"`
	PaddleHold     int    `toml:"paddle_hold"`
	ServePause     int    `toml:"serve_pause"`
	Scale          int    `toml:"scale"`
	ConversionWait string `toml:"conversion_wait"`
}

// Repeat is the number of times each shape is drawn every frame
type Repeat struct {
	Ball     int `toml:"ball"`
	Paddle   int `toml:"paddle"`
	Boundary int `toml:"boundary"`
}

// Sim preferences are only used by the simulated board
type Sim struct {
	TransferTime   Duration `toml:"transfer_time"`
	ConversionTime Duration `toml:"conversion_time"`

	// how long the beam stays on the missed ball after the serve pause
	ServeHold Duration `toml:"serve_hold"`
}

// Scope preferences are only used by the virtual oscilloscope
type Scope struct {
	Size       int      `toml:"size"`
	Decay      Duration `toml:"decay"`
	Audio      bool     `toml:"audio"`
	SampleRate int      `toml:"sample_rate"`
}

// Prefs is the complete set of preferences
type Prefs struct {
	Backend string `toml:"backend"`
	Timing  Timing `toml:"timing"`
	Repeat  Repeat `toml:"repeat"`
	Sim     Sim    `toml:"sim"`
	Scope   Scope  `toml:"scope"`
}

// Default returns the default preferences
func Default() Prefs {
	return Prefs{
		Backend: BackendSim,
		Timing: Timing{
			PointWait:      1000,
			PaddleHold:     1000,
			ServePause:     1000000,
			Scale:          1,
			ConversionWait: timing.WaitBitTest.String(),
		},
		Repeat: Repeat{
			Ball:     100,
			Paddle:   1,
			Boundary: 10,
		},
		Sim: Sim{
			TransferTime:   Duration(8 * time.Microsecond),
			ConversionTime: Duration(10 * time.Microsecond),
			ServeHold:      Duration(500 * time.Millisecond),
		},
		Scope: Scope{
			Size:       512,
			Decay:      Duration(40 * time.Millisecond),
			SampleRate: 48000,
		},
	}
}

// Path returns the location of the preferences file in the resources
// directory
func Path() (string, error) {
	return resources.JoinPath(Filename)
}

// Load preferences from the named file. Values not present in the file keep
// their default value. A file that doesn't exist is not an error
func Load(path string) (Prefs, error) {
	p := Default()

	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("prefs: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Default(), fmt.Errorf("prefs: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	err = p.Validate()
	if err != nil {
		return Default(), err
	}

	return p, nil
}

// Save preferences to the named file
func (p Prefs) Save(path string) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("prefs: %w", err)
		}
	}()
	return p.Write(f)
}

// Write preferences in TOML format
func (p Prefs) Write(w io.Writer) error {
	err := toml.NewEncoder(w).Encode(p)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}

// Validate returns an error naming the first key with an invalid value
func (p Prefs) Validate() error {
	switch p.Backend {
	case BackendSim, BackendMMIO:
	default:
		return fmt.Errorf("prefs: backend: unknown value %q", p.Backend)
	}

	positive := []struct {
		key string
		v   int
	}{
		{"timing.scale", p.Timing.Scale},
		{"repeat.ball", p.Repeat.Ball},
		{"repeat.paddle", p.Repeat.Paddle},
		{"repeat.boundary", p.Repeat.Boundary},
		{"scope.size", p.Scope.Size},
		{"scope.sample_rate", p.Scope.SampleRate},
	}
	for _, c := range positive {
		if c.v <= 0 {
			return fmt.Errorf("prefs: %s: must be positive (%d)", c.key, c.v)
		}
	}

	notNegative := []struct {
		key string
		v   int64
	}{
		{"timing.point_wait", int64(p.Timing.PointWait)},
		{"timing.paddle_hold", int64(p.Timing.PaddleHold)},
		{"timing.serve_pause", int64(p.Timing.ServePause)},
		{"sim.transfer_time", int64(p.Sim.TransferTime)},
		{"sim.conversion_time", int64(p.Sim.ConversionTime)},
		{"sim.serve_hold", int64(p.Sim.ServeHold)},
		{"scope.decay", int64(p.Scope.Decay)},
	}
	for _, c := range notNegative {
		if c.v < 0 {
			return fmt.Errorf("prefs: %s: must not be negative (%d)", c.key, c.v)
		}
	}

	if _, err := timing.ParseWaitMode(p.Timing.ConversionWait); err != nil {
		return fmt.Errorf("prefs: timing.conversion_wait: unknown value %q", p.Timing.ConversionWait)
	}

	return nil
}

// WaitMode returns the conversion wait mode. Validate() should have been
// called beforehand, otherwise an invalid value will be returned as
// WaitBitTest
func (p Prefs) WaitMode() timing.WaitMode {
	m, _ := timing.ParseWaitMode(p.Timing.ConversionWait)
	return m
}

func (p Prefs) String() string {
	return fmt.Sprintf("backend=%s wait=%s scale=%d repeat=%d/%d/%d",
		p.Backend, p.Timing.ConversionWait, p.Timing.Scale,
		p.Repeat.Ball, p.Repeat.Paddle, p.Repeat.Boundary)
}
