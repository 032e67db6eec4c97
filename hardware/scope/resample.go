package scope

import "time"

// resampler turns beam movements, which arrive at whatever rate the
// plotter manages, into a stream of samples at a fixed rate. Between
// movements the last beam position is held
type resampler struct {
	period time.Duration
	next   time.Time
	last   Sample

	started bool

	// most samples emitted by a single call to feed(). prevents a stall in
	// the plotter from flooding the ring and the recorder
	catchUp int
}

func newResampler(rate int) *resampler {
	return &resampler{
		period:  time.Second / time.Duration(rate),
		catchUp: rate,
	}
}

// feed notes that the beam moved to s at the time now. emit is called once
// for every sample period that has elapsed since the previous call
func (r *resampler) feed(now time.Time, s Sample, emit func(Sample)) {
	if !r.started {
		r.started = true
		r.next = now
		r.last = s
	}

	var n int
	for !r.next.After(now) {
		if n >= r.catchUp {
			r.next = now.Add(r.period)
			break
		}
		emit(r.last)
		r.next = r.next.Add(r.period)
		n++
	}

	r.last = s
}
