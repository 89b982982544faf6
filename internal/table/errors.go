package table

import "fmt"

// ColumnNotFoundError reports a named column missing from the header row.
type ColumnNotFoundError struct {
	Slot Slot
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s column %q not found in header row", e.Slot, e.Name)
}

// RowTooShortError reports a data row without a field at a required column.
// Line is the 1-based line number in the parsed text; Column is 1-based.
type RowTooShortError struct {
	Line   int
	Slot   Slot
	Column int
	Fields int
}

func (e *RowTooShortError) Error() string {
	return fmt.Sprintf("line %d: %s column %d requested but row has %d field(s)",
		e.Line, e.Slot, e.Column, e.Fields)
}

// ConfigError reports invalid or incomplete parse options.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "invalid configuration: " + e.Msg }

func configErrorf(format string, a ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, a...)}
}
