package scope

import (
	"encoding/binary"
	"io"
)

// the number of samples kept for the audio reader. when the ring is full the
// oldest sample is overwritten
const ringSize = 16384

type ring struct {
	data  []Sample
	head  int
	count int
}

func newRing(size int) ring {
	return ring{
		data: make([]Sample, size),
	}
}

func (r *ring) push(s Sample) {
	r.data[(r.head+r.count)%len(r.data)] = s
	if r.count < len(r.data) {
		r.count++
	} else {
		r.head = (r.head + 1) % len(r.data)
	}
}

func (r *ring) pop() (Sample, bool) {
	if r.count == 0 {
		return Sample{}, false
	}
	s := r.data[r.head]
	r.head = (r.head + 1) % len(r.data)
	r.count--
	return s, true
}

// SampleReader reads the beam positions as interleaved stereo 16 bit little
// endian audio. Left is the X axis and right is the Y axis
type SampleReader struct {
	sc *Scope
}

// Samples returns an io.Reader for the beam positions
func (sc *Scope) Samples() io.Reader {
	return &SampleReader{sc: sc}
}

// Read implements the io.Reader interface. When there are no new beam
// positions the last position is repeated. The beam is always somewhere
func (sr *SampleReader) Read(buf []byte) (int, error) {
	sr.sc.crit.Lock()
	defer sr.sc.crit.Unlock()

	n := len(buf) / 4
	for i := range n {
		s, ok := sr.sc.ring.pop()
		if !ok {
			s = sr.sc.beam
		}
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s.X))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s.Y))
	}

	return n * 4, nil
}
