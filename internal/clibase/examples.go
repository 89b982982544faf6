// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// Quickstart is the example body shared by the csv2fasta tools.
func Quickstart(name string) func(io.Writer) {
	return func(out io.Writer) {
		_, _ = fmt.Fprintf(out, "  # sequence column by name, no header columns\n")
		_, _ = fmt.Fprintf(out, "  %s --seqs seq table.csv > out.fa\n\n", name)
		_, _ = fmt.Fprintf(out, "  # header from two named columns, tab-separated input\n")
		_, _ = fmt.Fprintf(out, "  %s --sep '\\t' --headers \"id region\" --seqs seq -i table.tsv\n\n", name)
		_, _ = fmt.Fprintf(out, "  # headerless input, columns by position\n")
		_, _ = fmt.Fprintf(out, "  %s --no-header --header-cols \"1 2\" --seqs-col 4 table.csv\n\n", name)
		_, _ = fmt.Fprintf(out, "  # clone-grouped output, germline first in each clone\n")
		_, _ = fmt.Fprintf(out, "  %s --seqs seq --include-germline --germline germ \\\n", name)
		_, _ = fmt.Fprintf(out, "      --include-clone --clone clone_id --label run1 table.csv.gz\n")
	}
}
