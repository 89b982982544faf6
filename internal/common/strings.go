package common

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeLines turns every '\r' into '\n' and removes empty lines.
// A non-empty result always ends with '\n'. Applying it twice is the same
// as applying it once.
func NormalizeLines(text string) string {
	text = strings.ReplaceAll(text, "\r", "\n")
	var b strings.Builder
	b.Grow(len(text))
	for _, ln := range strings.Split(text, "\n") {
		if ln == "" {
			continue
		}
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	return b.String()
}

// Words splits a space-separated flag value; blanks are dropped.
func Words(s string) []string {
	return strings.Fields(s)
}

// ParseInts parses a space-separated list of integers.
func ParseInts(s string) ([]int, error) {
	f := strings.Fields(s)
	out := make([]int, 0, len(f))
	for _, w := range f {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", w)
		}
		out = append(out, n)
	}
	return out, nil
}

// Delimiter maps the literal two-character token `\t` to a tab; any other
// value is used as is.
func Delimiter(s string) string {
	if s == `\t` {
		return "\t"
	}
	return s
}
