package scope

import "time"

// Refresh decides when a new snapshot should be taken. The display loop runs
// far faster than any monitor and there is no point making a snapshot for
// every frame of the game
type Refresh struct {
	tick *time.Ticker
}

// NewRefresh is the preferred method of initialisation for the Refresh type
func NewRefresh(hz float64) *Refresh {
	return &Refresh{
		tick: time.NewTicker(time.Duration(float64(time.Second) / hz)),
	}
}

// Due returns true if a snapshot is due. It never blocks
func (r *Refresh) Due() bool {
	select {
	case <-r.tick.C:
		return true
	default:
	}
	return false
}

// Stop the refresh ticker
func (r *Refresh) Stop() {
	r.tick.Stop()
}
