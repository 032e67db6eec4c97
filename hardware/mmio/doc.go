// Package mmio gives access to the peripheral registers of the real board. On
// Linux the register page range is mapped into memory through /dev/mem. The
// process needs permission to open /dev/mem, which usually means running as
// root.
//
// On other platforms Open() always returns an error.
package mmio

// The mapped range starts with the ADC and ends with the PMC
const (
	Base   = 0xfffd8000
	Length = 0x28000
)

// DevMem is the default device
const DevMem = "/dev/mem"
