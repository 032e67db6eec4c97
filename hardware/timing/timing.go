// Package timing provides the busy-wait primitives that pace every analogue
// operation. There is no scheduler involved in any of these functions. A
// delay occupies the calling goroutine for its entire duration.
package timing

import (
	"fmt"
	"sync/atomic"
)

// the loop in Delay() stores to this value on every iteration. it is package
// level and atomic so that the loop cannot be removed by the compiler
var spin atomic.Uint32

// Delay busy-loops n times. The duration of a single iteration depends entirely
// on the host
func Delay(n int) {
	for range n {
		spin.Add(1)
	}
}

// Waiter reports whether the hardware is still busy
type Waiter func() (bool, error)

// WaitMode selects how a conversion wait interprets the busy condition
type WaitMode int

// List of valid WaitMode values
const (
	// poll the status register until the ready bit is set
	WaitBitTest WaitMode = iota

	// the conversion wait in the board firmware was written as:
	//
	//	while (*SPI_SR & 0x2 == 0)
	//
	// equality binds more tightly than bitwise-and so the condition reduces to
	// (*SPI_SR & 0), which is always false. the status register is read once
	// and the wait never delays
	WaitLiteral
)

func (m WaitMode) String() string {
	switch m {
	case WaitBitTest:
		return "bittest"
	case WaitLiteral:
		return "literal"
	}
	return fmt.Sprintf("unknown wait mode (%d)", int(m))
}

// ParseWaitMode converts the string returned by WaitMode.String() back to a
// WaitMode
func ParseWaitMode(s string) (WaitMode, error) {
	switch s {
	case "bittest", "":
		return WaitBitTest, nil
	case "literal":
		return WaitLiteral, nil
	}
	return WaitBitTest, fmt.Errorf("timing: unknown conversion wait mode: %s", s)
}

// Timer applies the delays requested by the display driver and game loop.
type Timer struct {
	// Scale stretches explicit delays (paddle hold, serve pause). polling
	// delays inside a ConversionWait() are not scaled
	Scale int

	// Mode for ConversionWait()
	Mode WaitMode

	// Spin performs the busy-loop. if it is nil then the Delay() function is
	// used. tests replace it in order to count delays without waiting
	Spin func(n int)
}

// NewTimer is the preferred method of initialisation for the Timer type
func NewTimer(scale int, mode WaitMode) *Timer {
	return &Timer{
		Scale: max(scale, 1),
		Mode:  mode,
	}
}

func (t *Timer) spin(n int) {
	if t.Spin != nil {
		t.Spin(n)
		return
	}
	Delay(n)
}

// Delay busy-loops for n iterations multiplied by the Scale value
func (t *Timer) Delay(n int) {
	t.spin(n * max(t.Scale, 1))
}

// ConversionWait calls Delay(n) repeatedly while busy reports that the
// hardware has not finished. There is no timeout. If the hardware never
// becomes ready then the function never returns
func (t *Timer) ConversionWait(n int, busy Waiter) error {
	if t.Mode == WaitLiteral {
		_, err := busy()
		return err
	}

	for {
		b, err := busy()
		if err != nil {
			return err
		}
		if !b {
			return nil
		}
		t.spin(n)
	}
}
