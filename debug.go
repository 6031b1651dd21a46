package slide

import (
	"fmt"
	"io"
	"os"
)

// SetDebugMode enables or disables debug output. When enabled, phase and
// state transitions, suppressed settle requests and topology errors are
// printed to stderr.
func (l *Layout) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// SetDebugOutput redirects debug output. nil restores stderr.
func (l *Layout) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.debugOut = w
}

// debugf prints one "[slide]" line when debug mode is on.
func (l *Layout) debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	_, _ = fmt.Fprintf(l.debugOut, "[slide] "+format+"\n", args...)
}
