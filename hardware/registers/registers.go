// Package registers is the address map for the peripherals used by the game.
// The addresses are those of the AT91SAM7 family of microcontrollers.
//
//	0xfffd8000 - 0xfffd80ff   ADC
//	0xfffe0000 - 0xfffe00ff   SPI
//	0xfffff400 - 0xfffff4ff   PIO controller A
//	0xfffffc00 - 0xfffffcff   power management controller
//
// The register values and bit masks are configuration. Nothing in this package
// has behaviour.
package registers

// Power management controller
const (
	PMC_PCER = 0xfffffc10 // peripheral clock enable
)

// Parallel I/O controller A
const (
	PIO_PER  = 0xfffff400 // PIO enable
	PIO_PDR  = 0xfffff404 // PIO disable (hands pins to a peripheral)
	PIO_OER  = 0xfffff410 // output enable
	PIO_SODR = 0xfffff430 // set output data
	PIO_CODR = 0xfffff434 // clear output data
	PIO_ASR  = 0xfffff470 // peripheral A select
)

// Serial peripheral interface. The SPI feeds the dual-channel DAC that drives
// the X and Y inputs of the oscilloscope
const (
	SPI_CR   = 0xfffe0000 // control
	SPI_MR   = 0xfffe0004 // mode
	SPI_RDR  = 0xfffe0008 // receive data
	SPI_TDR  = 0xfffe000c // transmit data
	SPI_SR   = 0xfffe0010 // status
	SPI_CSR0 = 0xfffe0030 // chip select 0
)

// Analogue to digital converter. Channels 4 and 5 are wired to the paddles
const (
	ADC_CR   = 0xfffd8000 // control
	ADC_MR   = 0xfffd8004 // mode
	ADC_CHER = 0xfffd8010 // channel enable
	ADC_CHSR = 0xfffd8018 // channel status
	ADC_SR   = 0xfffd801c // status
	ADC_CDR4 = 0xfffd8040 // channel 4 data (player one paddle)
	ADC_CDR5 = 0xfffd8044 // channel 5 data (player two paddle)
)

// Peripheral identifiers as used by PMC_PCER
const (
	IDPIOA = 2
	IDADC  = 4
	IDSPI  = 5
)

// Bits in the SPI control and status registers
const (
	SPIEnable   = 0x01
	SPIReset    = 0x80
	SPIReadyTDR = 0x02
)

// Bits in the ADC control and status registers
const (
	ADCReset = 0x01
	ADCStart = 0x02
	ADCEOC4  = 0x10
	ADCEOC5  = 0x20
)

// The DAC receives 16 bit words. The top two bits select the output channel
// and the coordinate sits in bits 2 to 11
const (
	LaneX        = 0xc000
	LaneY        = 0x4000
	LaneMask     = 0xc000
	LaneShift    = 2
	LaneValue    = 0x0ffc
	MaxLaneCoord = 0x3ff
)

// Name returns the mnemonic for a register address or the empty string if the
// address is not known
func Name(address uint32) string {
	switch address {
	case PMC_PCER:
		return "PMC_PCER"
	case PIO_PER:
		return "PIO_PER"
	case PIO_PDR:
		return "PIO_PDR"
	case PIO_OER:
		return "PIO_OER"
	case PIO_SODR:
		return "PIO_SODR"
	case PIO_CODR:
		return "PIO_CODR"
	case PIO_ASR:
		return "PIO_ASR"
	case SPI_CR:
		return "SPI_CR"
	case SPI_MR:
		return "SPI_MR"
	case SPI_RDR:
		return "SPI_RDR"
	case SPI_TDR:
		return "SPI_TDR"
	case SPI_SR:
		return "SPI_SR"
	case SPI_CSR0:
		return "SPI_CSR0"
	case ADC_CR:
		return "ADC_CR"
	case ADC_MR:
		return "ADC_MR"
	case ADC_CHER:
		return "ADC_CHER"
	case ADC_CHSR:
		return "ADC_CHSR"
	case ADC_SR:
		return "ADC_SR"
	case ADC_CDR4:
		return "ADC_CDR4"
	case ADC_CDR5:
		return "ADC_CDR5"
	}
	return ""
}
