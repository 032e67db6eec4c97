package logger

import (
	"fmt"
	"io"
)

// only allowing one central log for the entire application
var central *logger

// maximum number of entries in the central logger
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger. The detail argument can be of any
// type but will usually be a string or an error
func Log(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, fmt.Sprintf("%v", detail))
	}
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag string, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, fmt.Sprintf(detail, args...))
	}
}

// Clear all entries from central logger
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints new log entries to io.Writer as they are made. A nil writer
// stops the echo. If styled is true then the entries are styled for a
// terminal
func SetEcho(output io.Writer, styled bool) {
	central.setEcho(output, styled)
}
