package table

import (
	"errors"
	"testing"

	"csv2fasta/internal/fasta"
)

func mustParse(t *testing.T, opt Options, text string) []fasta.Entry {
	t.Helper()
	got, err := Parse(opt, text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return got
}

func TestParseSequenceByName(t *testing.T) {
	got := mustParse(t, Options{
		HasHeaderRow: true,
		Sequence:     Ref("seq", 1),
		Delimiter:    ",",
	}, "name,seq\na,ACGT\nb,TTTT\n")
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].Header != "" || got[0].Sequence != "ACGT" || got[1].Sequence != "TTTT" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestParseHeaderNames(t *testing.T) {
	got := mustParse(t, Options{
		HasHeaderRow: true,
		HeaderNames:  []string{"id", "region"},
		HeaderCols:   []int{3},
		Sequence:     ByName("seq"),
		Delimiter:    ",",
	}, "id,region,seq\n1,V,ACGT\n")
	if len(got) != 1 || got[0].Header != "1,V" || got[0].Sequence != "ACGT" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseHeaderNamesKeepOrder(t *testing.T) {
	got := mustParse(t, Options{
		HasHeaderRow: true,
		HeaderNames:  []string{"region", "id"},
		Sequence:     ByName("seq"),
		Delimiter:    "\t",
	}, "id\tregion\tseq\n1\tV\tACGT\n")
	if got[0].Header != "V\t1" {
		t.Fatalf("got %q", got[0].Header)
	}
}

func TestParseHeaderColumnsByIndex(t *testing.T) {
	got := mustParse(t, Options{
		HeaderCols: []int{2, -1, 1},
		Sequence:   ByIndex(3),
		Delimiter:  ";",
	}, "a;b;AC\nc;d;GT\n")
	if got[0].Header != "b;a" || got[1].Header != "d;c" || got[1].Sequence != "GT" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseNoHeaderColumns(t *testing.T) {
	got := mustParse(t, Options{
		HeaderCols: []int{-1},
		Sequence:   ByIndex(1),
		Delimiter:  ",",
	}, "AC,x\n")
	if got[0].Header != "" || got[0].Sequence != "AC" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseNamePreferredOverIndex(t *testing.T) {
	opt := Options{
		HasHeaderRow:    true,
		IncludeGermline: true,
		IncludeClone:    true,
		HeaderNames:     []string{"id"},
		HeaderCols:      []int{2},
		Sequence:        Ref("seq", 1),
		Germline:        Ref("germ", 1),
		Clone:           Ref("clone", 1),
		Delimiter:       ",",
	}
	got := mustParse(t, opt, "id,x,seq,germ,clone\nr1,junk,ACGT,AAAA,c9\n")
	e := got[0]
	if e.Sequence != "ACGT" || e.Germline != "AAAA" || e.Clone != "c9" {
		t.Fatalf("slots resolved by index instead of name: %+v", e)
	}
	if e.Header != "r1,AAAA,c9" {
		t.Fatalf("header %q", e.Header)
	}
}

func TestParseNoHeaderRowIgnoresNames(t *testing.T) {
	got := mustParse(t, Options{
		HeaderNames: []string{"id"},
		HeaderCols:  []int{1},
		Sequence:    Ref("seq", 2),
		Delimiter:   ",",
	}, "id,seq\nr1,ACGT\n")
	if len(got) != 2 {
		t.Fatalf("every line is data without a header row, got %d", len(got))
	}
	if got[0].Header != "id" || got[0].Sequence != "seq" || got[1].Sequence != "ACGT" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseEmptyNameFallsBackToIndex(t *testing.T) {
	got := mustParse(t, Options{
		HasHeaderRow: true,
		Sequence:     Ref("", 2),
		Delimiter:    ",",
	}, "a,b\nx,GG\n")
	if got[0].Sequence != "GG" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseGermlineOnly(t *testing.T) {
	got := mustParse(t, Options{
		HasHeaderRow:    true,
		IncludeGermline: true,
		Sequence:        ByName("seq"),
		Germline:        ByName("germ"),
		Delimiter:       ",",
	}, "seq,germ\nAC,GG\n")
	if got[0].Header != "GG" || got[0].Clone != "" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseFirstHeaderMatchWins(t *testing.T) {
	got := mustParse(t, Options{
		HasHeaderRow: true,
		Sequence:     ByName("seq"),
		Delimiter:    ",",
	}, "seq,seq\nFIRST,SECOND\n")
	if got[0].Sequence != "FIRST" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSkipsEmptyLines(t *testing.T) {
	got := mustParse(t, Options{
		HasHeaderRow: true,
		Sequence:     ByName("s"),
		Delimiter:    ",",
	}, "\ns\n\nA\n\nC")
	if len(got) != 2 || got[0].Sequence != "A" || got[1].Sequence != "C" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseKeepsEmptySequences(t *testing.T) {
	got := mustParse(t, Options{Sequence: ByIndex(2), Delimiter: ","}, "a,\nb,C\n")
	if len(got) != 2 || got[0].Sequence != "" {
		t.Fatalf("parser must not filter, got %+v", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	got := mustParse(t, Options{HasHeaderRow: true, Sequence: ByName("seq"), Delimiter: ","}, "")
	if len(got) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseColumnNotFound(t *testing.T) {
	_, err := Parse(Options{
		HasHeaderRow: true,
		HeaderNames:  []string{"id", "missing"},
		Sequence:     ByName("seq"),
		Delimiter:    ",",
	}, "id,seq\n1,A\n")
	var cnf *ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("want ColumnNotFoundError, got %v", err)
	}
	if cnf.Name != "missing" || cnf.Slot != SlotHeader {
		t.Fatalf("got %+v", cnf)
	}
}

func TestParseRowTooShort(t *testing.T) {
	_, err := Parse(Options{
		HasHeaderRow: true,
		Sequence:     ByName("seq"),
		HeaderCols:   []int{1},
		Delimiter:    ",",
	}, "id,seq\n1,ACGT\n2\n")
	var short *RowTooShortError
	if !errors.As(err, &short) {
		t.Fatalf("want RowTooShortError, got %v", err)
	}
	if short.Line != 3 || short.Slot != SlotSequence || short.Column != 2 || short.Fields != 1 {
		t.Fatalf("got %+v", short)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		opt  Options
	}{
		{"empty delimiter", Options{Sequence: ByIndex(1)}},
		{"no sequence", Options{Delimiter: ","}},
		{"germline unset", Options{Delimiter: ",", Sequence: ByIndex(1), IncludeGermline: true}},
		{"clone unset", Options{Delimiter: ",", Sequence: ByIndex(1), IncludeClone: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.opt, "A\n")
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("want ConfigError, got %v", err)
			}
		})
	}
}

func TestParseConfigErrorsOnEmptyInput(t *testing.T) {
	cases := []struct {
		name string
		opt  Options
	}{
		{"no sequence", Options{HasHeaderRow: true, Delimiter: ","}},
		{"germline unset", Options{HasHeaderRow: true, Delimiter: ",", Sequence: ByName("seq"), IncludeGermline: true}},
		{"clone by name without header", Options{Delimiter: ",", Sequence: ByIndex(1), Clone: ByName("cid"), IncludeClone: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, text := range []string{"", "\n\n"} {
				_, err := Parse(tc.opt, text)
				var ce *ConfigError
				if !errors.As(err, &ce) {
					t.Fatalf("input %q: want ConfigError, got %v", text, err)
				}
			}
		})
	}
}

func TestColumnRefIsNone(t *testing.T) {
	if !(ColumnRef{}).IsNone() || !Ref("", -1).IsNone() {
		t.Fatal("zero ref should select nothing")
	}
	if ByName("x").IsNone() || ByIndex(1).IsNone() {
		t.Fatal("set refs should select something")
	}
}
