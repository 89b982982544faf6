// Package pipeline runs one whole-buffer CSV→FASTA conversion:
// normalize line endings, parse rows, drop empty sequences, apply the
// header label, then format (flat or clone-grouped).
//
// Convert is a pure function of its Config and input text; the CLI and the
// HTTP server both call it and own all I/O themselves.
package pipeline
