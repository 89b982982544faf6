// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"csv2fasta/internal/version"
)

// UsageCommon installs the shared Usage() handler on fs.
// extra prints tool-specific sections before the flag blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – convert delimited tables to FASTA\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] [input.csv[.gz] | -]\n", name)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nFiles:")
		fmt.Fprintln(out, "  -i, --input file            Input table; .gz is decompressed (default: stdin)")
		fmt.Fprintln(out, "  -o, --output file           Output FASTA (default: stdout)")

		fmt.Fprintln(out, "\nColumns (names need a header row and win over indices):")
		fmt.Fprintln(out, "      --headers \"a b\"         Header column names, space-separated")
		fmt.Fprintf(out, "      --header-cols \"1 2\"     Header column indices, 1-based; -1 = none [%s]\n", def("header-cols"))
		fmt.Fprintln(out, "      --seqs string           Sequence column name")
		fmt.Fprintf(out, "      --seqs-col int          Sequence column index [%s]\n", def("seqs-col"))
		fmt.Fprintln(out, "      --germline string       Germline column name")
		fmt.Fprintf(out, "      --germline-col int      Germline column index [%s]\n", def("germline-col"))
		fmt.Fprintln(out, "      --clone string          Clone ID column name")
		fmt.Fprintf(out, "      --clone-col int         Clone ID column index [%s]\n", def("clone-col"))

		fmt.Fprintln(out, "\nFormatting:")
		fmt.Fprintln(out, "      --label string          Prefix every header with \"label|\"")
		fmt.Fprintf(out, "      --sep string            Field delimiter; \\t means tab [%s]\n", def("sep"))
		fmt.Fprintf(out, "      --no-header             Input has no header row [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --include-germline      Append germline value to headers [%s]\n", def("include-germline"))
		fmt.Fprintf(out, "      --include-clone         Append clone ID and group entries by clone [%s]\n", def("include-clone"))
		fmt.Fprintf(out, "      --clone-no-sort         Merge only adjacent rows of a clone [%s]\n", def("clone-no-sort"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --verbose               Debug logging on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
