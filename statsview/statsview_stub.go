//go:build !statsview

package statsview

import "io"

// Launch is a stub function for when the statsview build tag is missing
func Launch(_ io.Writer) {
}

// Available returns false if the statsview build tag is missing
func Available() bool {
	return false
}
