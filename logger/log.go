package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// ANSI colour 6 is cyan and colour 8 is grey
var (
	tagStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6))
	repeatStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
)

func (e *Entry) styled() string {
	s := strings.Builder{}
	s.WriteString(tagStyle.Render(e.tag))
	s.WriteString(": ")
	s.WriteString(e.detail)
	if e.repeated > 0 {
		s.WriteString(repeatStyle.Render(fmt.Sprintf(" (repeat x%d)", e.repeated+1)))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// can be used to log to the central logger
type logger struct {
	// the logger is used by the console goroutine and by the GUI goroutine
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	echo       io.Writer
	echoStyled bool
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

func (l *logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || detail != e.detail || tag != e.tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})
		e = &l.entries[len(l.entries)-1]

		// repeated entries are not echoed
		if l.echo != nil {
			if l.echoStyled {
				io.WriteString(l.echo, e.styled())
			} else {
				io.WriteString(l.echo, e.String())
			}
		}
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
}

func (l *logger) clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

func (l *logger) write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	number = min(number, len(l.entries))

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

func (l *logger) setEcho(output io.Writer, styled bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
	l.echoStyled = styled
}
