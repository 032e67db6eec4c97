// Package scope is a model of an oscilloscope in X-Y mode. The beam is moved
// to a point and excites the phosphor there. The phosphor glows and fades
// over time. Nothing else is remembered.
//
// The Scope type is written to by the simulated DAC in the console goroutine
// and read by the GUI and the audio player in other goroutines. Access to the
// phosphor and to the sample ring is protected by a mutex.
package scope

import (
	"image"
	"image/color"
	"math"
	"sync"
	"time"
)

// Resolution is the number of addressable points on each axis
const Resolution = 1024

// energy deposited by the beam for each point and the energy at which the
// phosphor is at half brightness
const (
	pointEnergy = 1.0
	halfGlow    = 4.0
)

// the colour of P31 phosphor at full brightness
var phosphor = color.RGBA{R: 0x4a, G: 0xff, B: 0x6a, A: 0xff}

// Sample is a beam position expressed as a pair of signed audio samples. The
// centre of the screen is zero
type Sample struct {
	X int16
	Y int16
}

// SampleFromPoint converts a screen coordinate into a Sample
func SampleFromPoint(x, y int) Sample {
	return Sample{
		X: int16((x - Resolution/2) * 64),
		Y: int16((y - Resolution/2) * 64),
	}
}

// Recorder is implemented by anything that wants a copy of every sample sent
// to the audio ring
type Recorder interface {
	Record(s Sample)
}

// Scope is the phosphor screen
type Scope struct {
	crit sync.Mutex

	// size of the image returned by Snapshot()
	size int

	// phosphor energy for every pixel in the image
	energy []float32

	// the time it takes for the phosphor glow to halve
	halfLife  time.Duration
	lastDecay time.Time

	// the last position of the beam
	beam Sample

	ring     ring
	recorder Recorder

	// nil unless SetSampleRate() has been called with a positive rate
	resample *resampler

	// total number of points drawn
	points int
}

// NewScope is the preferred method of initialisation for the Scope type. The
// size argument is the width and height of the image returned by Snapshot()
func NewScope(size int, halfLife time.Duration) *Scope {
	size = max(size, 1)
	return &Scope{
		size:      size,
		energy:    make([]float32, size*size),
		halfLife:  halfLife,
		lastDecay: time.Now(),
		ring:      newRing(ringSize),
		beam:      SampleFromPoint(0, 0),
	}
}

// SetRecorder adds a recorder to the scope. A nil value removes the recorder
func (sc *Scope) SetRecorder(r Recorder) {
	sc.crit.Lock()
	defer sc.crit.Unlock()
	sc.recorder = r
}

// SetSampleRate fixes the rate at which samples are pushed to the audio ring
// and to the recorder. The beam position is sampled at that rate against the
// wall clock, so playback and recordings run in real time however fast the
// plotter moves the beam. A rate of zero or less pushes one sample per point
func (sc *Scope) SetSampleRate(rate int) {
	sc.crit.Lock()
	defer sc.crit.Unlock()
	if rate <= 0 {
		sc.resample = nil
		return
	}
	sc.resample = newResampler(rate)
}

// Size returns the width and height of the snapshot image
func (sc *Scope) Size() int {
	return sc.size
}

// emit must be called with the critical section locked
func (sc *Scope) emit(s Sample) {
	sc.ring.push(s)
	if sc.recorder != nil {
		sc.recorder.Record(s)
	}
}

// Points returns the total number of points drawn
func (sc *Scope) Points() int {
	sc.crit.Lock()
	defer sc.crit.Unlock()
	return sc.points
}

// Point moves the beam to (x, y). The origin is the bottom left of the screen
func (sc *Scope) Point(x, y int) {
	sc.point(x, y, time.Now())
}

func (sc *Scope) point(x, y int, now time.Time) {
	sc.crit.Lock()
	defer sc.crit.Unlock()

	sc.points++
	sc.beam = SampleFromPoint(x, y)
	if sc.resample == nil {
		sc.emit(sc.beam)
	} else {
		sc.resample.feed(now, sc.beam, sc.emit)
	}

	if x < 0 || x >= Resolution || y < 0 || y >= Resolution {
		return
	}

	px := x * sc.size / Resolution
	py := (Resolution - 1 - y) * sc.size / Resolution
	sc.energy[py*sc.size+px] += pointEnergy
}

// decay the phosphor according to the time since the last decay. must be
// called with the critical section held
func (sc *Scope) decay(now time.Time) {
	dt := now.Sub(sc.lastDecay)
	sc.lastDecay = now
	if dt <= 0 {
		return
	}

	var f float32
	if sc.halfLife > 0 {
		f = float32(math.Exp2(-float64(dt) / float64(sc.halfLife)))
	}
	for i := range sc.energy {
		sc.energy[i] *= f
	}
}

// glow converts phosphor energy to brightness in the range 0 to 1
func glow(e float32) float32 {
	return e / (e + halfGlow)
}

// Snapshot returns an image of the phosphor as it is now. The image is newly
// allocated and can be handed to another goroutine
func (sc *Scope) Snapshot() *image.RGBA {
	sc.crit.Lock()
	defer sc.crit.Unlock()
	return sc.snapshot(time.Now())
}

func (sc *Scope) snapshot(now time.Time) *image.RGBA {
	sc.decay(now)

	img := image.NewRGBA(image.Rect(0, 0, sc.size, sc.size))
	for i, e := range sc.energy {
		if e == 0 {
			img.Pix[i*4+3] = 0xff
			continue
		}
		g := glow(e)
		img.Pix[i*4] = uint8(float32(phosphor.R) * g)
		img.Pix[i*4+1] = uint8(float32(phosphor.G) * g)
		img.Pix[i*4+2] = uint8(float32(phosphor.B) * g)
		img.Pix[i*4+3] = 0xff
	}

	return img
}
