package dac_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/bus/bustest"
	"github.com/jetsetilly/xypong/hardware/dac"
	"github.com/jetsetilly/xypong/hardware/registers"
	"github.com/jetsetilly/xypong/hardware/timing"
	"github.com/jetsetilly/xypong/test"
)

func TestLane(t *testing.T) {
	test.ExpectEquality(t, dac.Lane(registers.LaneX, 0), uint32(0xc000))
	test.ExpectEquality(t, dac.Lane(registers.LaneX, 1), uint32(0xc004))
	test.ExpectEquality(t, dac.Lane(registers.LaneX, 1023), uint32(0xcffc))
	test.ExpectEquality(t, dac.Lane(registers.LaneY, 776), uint32(0x4000|776<<2))
}

func TestDrawPoint(t *testing.T) {
	b := bustest.NewBus()
	b.Values[registers.SPI_SR] = registers.SPIReadyTDR

	var spins int
	tm := timing.NewTimer(1, timing.WaitBitTest)
	tm.Spin = func(n int) {
		spins++
	}

	p := dac.NewPlotter(b, tm)
	err := p.DrawPoint(504, 388)
	test.DemandSuccess(t, err)

	// exactly two transmissions, X before Y
	test.DemandEquality(t, len(b.Writes), 2)
	test.ExpectEquality(t, b.Writes[0].Address, uint32(registers.SPI_TDR))
	test.ExpectEquality(t, b.Writes[0].Data, dac.Lane(registers.LaneX, 504))
	test.ExpectEquality(t, b.Writes[1].Address, uint32(registers.SPI_TDR))
	test.ExpectEquality(t, b.Writes[1].Data, dac.Lane(registers.LaneY, 388))

	// status was ready so there was no need to delay. the status register is
	// read once after each transmission
	test.ExpectEquality(t, spins, 0)
	test.ExpectEquality(t, b.Reads[registers.SPI_SR], 2)
	test.ExpectEquality(t, p.Clamped(), 0)
}

func TestDrawPointWaitsForReady(t *testing.T) {
	b := bustest.NewBus()

	// the transmit register becomes ready on every third read of the status
	b.OnRead = func(b *bustest.Bus, address uint32) {
		if address == registers.SPI_SR {
			if b.Reads[address]%3 == 0 {
				b.Values[address] = registers.SPIReadyTDR
			} else {
				b.Values[address] = 0
			}
		}
	}

	var spins []int
	tm := timing.NewTimer(1, timing.WaitBitTest)
	tm.Spin = func(n int) {
		spins = append(spins, n)
	}

	p := dac.NewPlotter(b, tm)
	p.Wait = 250
	err := p.DrawPoint(1, 2)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(spins), 4)
	for _, s := range spins {
		test.ExpectEquality(t, s, 250)
	}
}

func TestDrawPointClamps(t *testing.T) {
	b := bustest.NewBus()
	b.Values[registers.SPI_SR] = registers.SPIReadyTDR

	p := dac.NewPlotter(b, timing.NewTimer(1, timing.WaitBitTest))
	err := p.DrawPoint(-10, 1740)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, len(b.Writes), 2)
	test.ExpectEquality(t, b.Writes[0].Data, dac.Lane(registers.LaneX, dac.MinCoord))
	test.ExpectEquality(t, b.Writes[1].Data, dac.Lane(registers.LaneY, dac.MaxCoord))
	test.ExpectEquality(t, p.Clamped(), 2)

	// the lane tag must never be corrupted by a large coordinate
	test.ExpectEquality(t, b.Writes[1].Data&registers.LaneMask, uint32(registers.LaneY))
}

func TestDrawPointBusError(t *testing.T) {
	b := bustest.NewBus()
	fault := errors.New("bus fault")
	b.Fault[registers.SPI_TDR] = fault

	p := dac.NewPlotter(b, timing.NewTimer(1, timing.WaitBitTest))
	err := p.DrawPoint(0, 0)
	test.ExpectSuccess(t, errors.Is(err, fault))

	// unmapped addresses are reported through the bus package sentinel
	b = bustest.NewBus()
	delete(b.Values, registers.SPI_SR)
	b.Fault[registers.SPI_SR] = bus.UnmappedAddress(registers.SPI_SR)
	p = dac.NewPlotter(b, timing.NewTimer(1, timing.WaitBitTest))
	err = p.DrawPoint(0, 0)
	test.ExpectSuccess(t, errors.Is(err, bus.Unmapped))
}
