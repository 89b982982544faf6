// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errPrefix  = color.New(color.FgRed, color.Bold)
	warnPrefix = color.New(color.FgYellow)
)

// Errorf prints "error: ..." to dst. The prefix is colored when the
// terminal supports it.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = errPrefix.Fprint(dst, "error:")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}

// Warnf prints "WARN: ..." to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = warnPrefix.Fprint(dst, "WARN:")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}
