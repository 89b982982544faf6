// internal/pipeline/pipeline.go
package pipeline

import (
	"csv2fasta/internal/common"
	"csv2fasta/internal/fasta"
	"csv2fasta/internal/output"
	"csv2fasta/internal/table"
)

// Config controls one conversion.
type Config struct {
	Table           table.Options
	Label           string // prefixed to every header as "label|"
	SortBeforeClone bool   // sort by clone before grouping; false = adjacent merge only
}

// Result is the rendered output plus counts for logging.
type Result struct {
	Text    string
	Parsed  int // data rows parsed
	Dropped int // rows dropped for an empty sequence
	Emitted int // entries written
	Groups  int // clone groups (0 unless clone grouping is on)
}

// Convert turns delimited text into FASTA text. On error the Result is
// empty; nothing partial is ever returned.
func Convert(cfg Config, text string) (Result, error) {
	entries, err := table.Parse(cfg.Table, common.NormalizeLines(text))
	if err != nil {
		return Result{}, err
	}
	res := Result{Parsed: len(entries)}

	entries, res.Dropped = fasta.DropEmpty(entries)
	fasta.Label(entries, cfg.Label)

	ordered := entries
	if cfg.Table.IncludeClone {
		groups := output.Groups(cfg.SortBeforeClone, entries)
		res.Groups = len(groups)
		ordered = output.Flatten(groups)
	}
	res.Emitted = len(ordered)
	res.Text = fasta.Render(ordered)
	return res, nil
}
