// Package logger is the central log for the application. Entries are tagged
// with a short string naming the part of the program making the entry.
//
// Consecutive entries with identical tags and details are folded into a
// single entry with a repeat count. This matters for the display driver,
// which can log the same condition many thousands of times a second.
//
// Entries can be echoed to an io.Writer as they are made. The echo is styled
// with lipgloss when the writer is a terminal.
package logger
