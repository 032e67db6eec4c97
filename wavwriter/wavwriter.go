// Package wavwriter records the position of the oscilloscope beam as a stereo
// WAV file. The left channel is the X axis and the right channel is the Y
// axis, so the file can be played back into a real oscilloscope in X-Y mode.
//
// The scope must be sampling at the same rate as the one given to New(),
// otherwise the recording will play back at the wrong speed. See
// scope.SetSampleRate().
//
// Samples are buffered in memory and written to disk when EndMixing() is
// called. Recording stops after MaxSeconds.
package wavwriter

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/xypong/hardware/scope"
	"github.com/jetsetilly/xypong/logger"
)

const (
	bitDepth    = 16
	numChannels = 2

	// PCM
	audioFormat = 1
)

// MaxSeconds is the length in seconds of the longest recording. Samples recorded
// after this are dropped
const MaxSeconds = 600

// WavWriter implements the scope.Recorder interface
type WavWriter struct {
	filename   string
	sampleRate int

	crit    sync.Mutex
	buffer  []scope.Sample
	limit   int
	dropped bool
}

// New is the preferred method of initialisation for the WavWriter type
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavwriter: bad sample rate: %d", sampleRate)
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]scope.Sample, 0, 1<<16),
		limit:      sampleRate * MaxSeconds,
	}, nil
}

// Record implements the scope.Recorder interface
func (aw *WavWriter) Record(s scope.Sample) {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	if len(aw.buffer) >= aw.limit {
		if !aw.dropped {
			aw.dropped = true
			logger.Logf(logger.Allow, "wavwriter", "recording limit of %ds reached", MaxSeconds)
		}
		return
	}
	aw.buffer = append(aw.buffer, s)
}

// Frames returns the number of stereo frames recorded so far
func (aw *WavWriter) Frames() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer)
}

// EndMixing writes the recording to disk
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	data := make([]int, 0, len(aw.buffer)*numChannels)
	for _, s := range aw.buffer {
		data = append(data, int(s.X), int(s.Y))
	}

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, audioFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d frames to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	// closing the encoder completes the header
	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
