// internal/cli/options.go
package cli

import (
	"flag"

	"csv2fasta/internal/clibase"
	"csv2fasta/internal/cliutil"
	"csv2fasta/internal/common"
	"csv2fasta/internal/pipeline"
	"csv2fasta/internal/table"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Files
	Input  string
	Output string

	// Columns
	HeaderNames []string
	HeaderCols  []int
	SeqName     string
	SeqCol      int
	GermName    string
	GermCol     int
	CloneName   string
	CloneCol    int

	// Formatting
	Label           string
	Sep             string
	NoHeader        bool
	IncludeGermline bool
	IncludeClone    bool
	CloneNoSort     bool

	// Misc
	Verbose  bool
	Version  bool
	Examples bool
}

// NewFlagSet returns a FlagSet with the csv2fasta usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, nil)
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
// A single positional argument is accepted as the input path.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var headers, headerCols string

	// Files
	fs.StringVar(&opt.Input, "input", "", "input table (default: stdin)")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Output, "output", "", "output FASTA file (default: stdout)")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")

	// Columns
	fs.StringVar(&headers, "headers", "", "space-separated header column names")
	fs.StringVar(&headerCols, "header-cols", "-1", "space-separated 1-based header column indices (-1 = none) [-1]")
	fs.StringVar(&opt.SeqName, "seqs", "", "sequence column name")
	fs.IntVar(&opt.SeqCol, "seqs-col", 1, "sequence column index (1-based) [1]")
	fs.StringVar(&opt.GermName, "germline", "", "germline column name")
	fs.IntVar(&opt.GermCol, "germline-col", 1, "germline column index (1-based) [1]")
	fs.StringVar(&opt.CloneName, "clone", "", "clone ID column name")
	fs.IntVar(&opt.CloneCol, "clone-col", 1, "clone ID column index (1-based) [1]")

	// Formatting
	fs.StringVar(&opt.Label, "label", "", "label prefixed to every header, joined by '|'")
	fs.StringVar(&opt.Sep, "sep", ",", `field delimiter; "\t" means tab [,]`)
	fs.BoolVar(&opt.NoHeader, "no-header", false, "input has no header row [false]")
	fs.BoolVar(&opt.IncludeGermline, "include-germline", false, "append germline value to headers [false]")
	fs.BoolVar(&opt.IncludeClone, "include-clone", false, "append clone ID to headers and group by clone [false]")
	fs.BoolVar(&opt.CloneNoSort, "clone-no-sort", false, "merge only adjacent clone rows, do not sort [false]")

	// Misc
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Examples, "examples", false, "print quickstart examples and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}

	input, err := cliutil.InputPath(opt.Input, posArgs)
	if err != nil {
		return opt, err
	}
	opt.Input = input

	opt.HeaderNames = common.Words(headers)
	cols, err := common.ParseInts(headerCols)
	if err != nil {
		return opt, &table.ConfigError{Msg: "--header-cols: " + err.Error()}
	}
	opt.HeaderCols = cols
	opt.Sep = common.Delimiter(opt.Sep)

	return opt, Validate(opt)
}

// Validate applies the column and delimiter invariants.
func Validate(o Options) error {
	if o.Sep == "" {
		return &table.ConfigError{Msg: "--sep must not be empty"}
	}
	for _, c := range o.HeaderCols {
		if c == 0 {
			return &table.ConfigError{Msg: "--header-cols indices are 1-based (use -1 for none)"}
		}
	}
	checks := []struct {
		flag string
		name string
		col  int
		need bool
	}{
		{"seqs", o.SeqName, o.SeqCol, true},
		{"germline", o.GermName, o.GermCol, o.IncludeGermline},
		{"clone", o.CloneName, o.CloneCol, o.IncludeClone},
	}
	for _, c := range checks {
		if c.need && (c.name == "" || o.NoHeader) && c.col < 1 {
			return &table.ConfigError{Msg: "--" + c.flag + "-col must be ≥ 1 when --" + c.flag + " is not used"}
		}
	}
	return nil
}

// Config translates the options into a pipeline configuration.
func (o Options) Config() pipeline.Config {
	return pipeline.Config{
		Table: table.Options{
			HasHeaderRow:    !o.NoHeader,
			IncludeGermline: o.IncludeGermline,
			IncludeClone:    o.IncludeClone,
			HeaderNames:     o.HeaderNames,
			HeaderCols:      o.HeaderCols,
			Sequence:        table.Ref(o.SeqName, o.SeqCol),
			Germline:        table.Ref(o.GermName, o.GermCol),
			Clone:           table.Ref(o.CloneName, o.CloneCol),
			Delimiter:       o.Sep,
		},
		Label:           o.Label,
		SortBeforeClone: !o.CloneNoSort,
	}
}

// Args renders query-style key/values as argv for ParseArgs. Keys are
// flag names without dashes; values are passed as "--key=value".
func Args(kv map[string][]string) []string {
	var argv []string
	for k, vs := range kv {
		for _, v := range vs {
			argv = append(argv, "--"+k+"="+v)
		}
	}
	return argv
}
