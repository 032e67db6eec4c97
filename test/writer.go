package test

import "strings"

// Writer is an implementation of io.Writer that retains everything written
// to it. Useful for testing the output of functions that write to an
// io.Writer
type Writer struct {
	buffer strings.Builder
}

func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear the contents of the Writer
func (tw *Writer) Clear() {
	tw.buffer.Reset()
}

// Compare the contents of the Writer with the supplied string
func (tw *Writer) Compare(s string) bool {
	return tw.buffer.String() == s
}

func (tw *Writer) String() string {
	return tw.buffer.String()
}
