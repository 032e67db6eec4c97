package adc_test

import (
	"testing"

	"github.com/jetsetilly/xypong/hardware/adc"
	"github.com/jetsetilly/xypong/hardware/bus/bustest"
	"github.com/jetsetilly/xypong/hardware/registers"
	"github.com/jetsetilly/xypong/hardware/timing"
	"github.com/jetsetilly/xypong/test"
)

func TestNormalise(t *testing.T) {
	// the zero offset maps to zero
	test.ExpectEquality(t, adc.Normalise(153), 0)

	// values well above the margin are offset and doubled
	test.ExpectEquality(t, adc.Normalise(353), 400)
	test.ExpectEquality(t, adc.Normalise(541), 776)
	test.ExpectEquality(t, adc.Normalise(178), 50)

	// values below the zero offset produce a negative scaled value. the sign is
	// flipped and the result is the absolute value
	for raw := range adc.ZeroOffset {
		scaled := (raw - adc.ZeroOffset) * adc.Gain
		test.ExpectEquality(t, adc.Normalise(raw), -scaled, raw)
	}

	// positive values less than the margin are already their absolute value
	// and are unchanged. the paddle centre is never negative
	for raw := adc.ZeroOffset + 1; raw < adc.ZeroOffset+adc.Margin/adc.Gain; raw++ {
		scaled := (raw - adc.ZeroOffset) * adc.Gain
		test.ExpectEquality(t, adc.Normalise(raw), scaled, raw)
	}
	test.ExpectEquality(t, adc.Normalise(154), 2)
	test.ExpectEquality(t, adc.Normalise(165), 24)
	test.ExpectEquality(t, adc.Normalise(177), 48)

	// symmetry either side of the zero offset
	for d := range adc.Margin / adc.Gain {
		test.ExpectEquality(t, adc.Normalise(adc.ZeroOffset+d), adc.Normalise(adc.ZeroOffset-d), d)
	}
}

func TestSamplePaddles(t *testing.T) {
	b := bustest.NewBus()
	b.Values[registers.ADC_CDR4] = 353
	b.Values[registers.ADC_CDR5] = 100

	// end of conversion is reported on the second poll
	b.OnRead = func(b *bustest.Bus, address uint32) {
		if address == registers.ADC_SR && b.Reads[address] >= 2 {
			b.Values[address] = registers.ADCEOC4 | registers.ADCEOC5
		}
	}

	var spins int
	tm := timing.NewTimer(1, timing.WaitBitTest)
	tm.Spin = func(n int) {
		spins++
	}

	s := adc.NewSampler(b, tm)
	p1, p2, err := s.SamplePaddles()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p1, 400)
	test.ExpectEquality(t, p2, 106)

	// conversion was started before polling
	test.DemandEquality(t, len(b.Writes), 1)
	test.ExpectEquality(t, b.Writes[0].Address, uint32(registers.ADC_CR))
	test.ExpectEquality(t, b.Writes[0].Data, uint32(registers.ADCStart))
	test.ExpectEquality(t, spins, 1)
	test.ExpectEquality(t, b.Reads[registers.ADC_SR], 2)
}

func TestSamplePaddlesLiteralWait(t *testing.T) {
	b := bustest.NewBus()
	b.Values[registers.ADC_CDR4] = 153
	b.Values[registers.ADC_CDR5] = 541

	var spins int
	tm := timing.NewTimer(1, timing.WaitLiteral)
	tm.Spin = func(n int) {
		spins++
	}

	// the status register never reports end of conversion but the literal
	// wait doesn't care
	s := adc.NewSampler(b, tm)
	p1, p2, err := s.SamplePaddles()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p1, 0)
	test.ExpectEquality(t, p2, 776)
	test.ExpectEquality(t, spins, 0)
}
