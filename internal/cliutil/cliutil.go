// Package cliutil lets csv2fasta take its input table as a positional
// argument anywhere on the command line, before or after the flags.
package cliutil

import (
	"errors"
	"flag"
	"strings"
)

// BoolFlags returns the names of flags that take no value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flags (with their values) from
// positional arguments so fs.Parse never stops at the input path.
// "-" is stdin and stays positional; "--" ends flag parsing.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			// --sep=; carries its own value.
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			// A value flag consumes the next word even when it looks like a
			// flag, so --header-cols -1 keeps its "-1".
			if !boolFlags[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	return flagArgs, posArgs
}

// Errors from InputPath.
var (
	ErrTooManyInputs = errors.New("at most one input file may be given")
	ErrInputTwice    = errors.New("input given both as --input and as an argument")
)

// InputPath picks the one input table from --input and the positionals.
// An empty result means stdin.
func InputPath(flagInput string, posArgs []string) (string, error) {
	switch {
	case len(posArgs) > 1:
		return "", ErrTooManyInputs
	case len(posArgs) == 1 && flagInput != "":
		return "", ErrInputTwice
	case len(posArgs) == 1:
		return posArgs[0], nil
	}
	return flagInput, nil
}
