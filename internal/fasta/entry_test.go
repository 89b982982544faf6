// internal/fasta/entry_test.go
package fasta

import (
	"bytes"
	"testing"
)

func TestEntryString(t *testing.T) {
	e := Entry{Header: "1,V", Sequence: "ACGT"}
	if got := e.String(); got != ">1,V\nACGT\n" {
		t.Fatalf("got %q", got)
	}
	if got := (Entry{Sequence: "A"}).String(); got != ">\nA\n" {
		t.Fatalf("empty header: got %q", got)
	}
}

func TestRenderAndWrite(t *testing.T) {
	list := []Entry{{Header: "a", Sequence: "AC"}, {Header: "b", Sequence: "GT"}}
	want := ">a\nAC\n>b\nGT\n"
	if got := Render(list); got != want {
		t.Fatalf("render: got %q want %q", got, want)
	}
	var buf bytes.Buffer
	if err := Write(&buf, list); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != want {
		t.Fatalf("write: got %q", buf.String())
	}
	if Render(nil) != "" {
		t.Fatal("empty input should render nothing")
	}
}

func TestDropEmpty(t *testing.T) {
	in := []Entry{{Header: "a", Sequence: "A"}, {Header: "b"}, {Header: "c", Sequence: "C"}}
	out, dropped := DropEmpty(in)
	if dropped != 1 || len(out) != 2 || out[0].Header != "a" || out[1].Header != "c" {
		t.Fatalf("got %v dropped=%d", out, dropped)
	}
	if in[1].Header != "b" {
		t.Fatal("input slice must not be modified")
	}
}

func TestLabel(t *testing.T) {
	list := []Entry{{Header: "x"}, {Header: ""}}
	Label(list, "run7")
	if list[0].Header != "run7|x" || list[1].Header != "run7|" {
		t.Fatalf("got %+v", list)
	}
	Label(list, "")
	if list[0].Header != "run7|x" {
		t.Fatal("empty label must be a no-op")
	}
}
