package gui

import "io"

// AudioSetup is sent to the GUI when audio output is required
type AudioSetup struct {
	// interleaved stereo signed 16 bit little endian samples
	Read io.Reader

	// sample rate in Hz
	Freq int
}

// PushAudio sends the audio setup to the GUI. It returns false if the GUI was
// created without audio
func (g *GUI) PushAudio(s AudioSetup) bool {
	if g.AudioSetup == nil {
		return false
	}
	select {
	case g.AudioSetup <- s:
		return true
	default:
	}
	return false
}
