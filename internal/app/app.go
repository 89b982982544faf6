// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"csv2fasta/internal/cli"
	"csv2fasta/internal/clibase"
	"csv2fasta/internal/cmdutil"
	"csv2fasta/internal/config"
	"csv2fasta/internal/input"
	"csv2fasta/internal/logging"
	"csv2fasta/internal/pipeline"
	"csv2fasta/internal/version"
	"csv2fasta/internal/writers"
)

const name = "csv2fasta"

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, configuration, column or row errors, unreadable input
	ExitWrite    = 3 // output could not be written
	ExitCanceled = 130
)

// flushTo writes buffered usage/version text, treating a closed pipe as success.
func flushTo(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return ExitWrite
	}
	return code
}

// RunContext runs one conversion and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushTo(outw, stderr, ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, name, clibase.Quickstart(name))
			return flushTo(outw, stderr, ExitOK)
		}
		cmdutil.Errorf(stderr, "%v", err)
		_, _ = fmt.Fprintf(stderr, "run '%s --help' for usage\n", name)
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushTo(outw, stderr, ExitOK)
	}

	if err := config.LoadDotEnv(); err != nil {
		cmdutil.Warnf(stderr, false, "%v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}
	level := cfg.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	logging.Setup(stderr, level, cfg.Logging.Format)
	log := logging.WithRun(parent, "input", displayPath(opts.Input), "output", displayPath(opts.Output))

	text, err := input.ReadAll(opts.Input, stdin)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}
	if err := parent.Err(); err != nil {
		return ExitCanceled
	}
	log.Debug("input read", "bytes", len(text))

	res, err := pipeline.Convert(opts.Config(), text)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}
	log.Debug("converted",
		"parsed", res.Parsed,
		"dropped_empty", res.Dropped,
		"emitted", res.Emitted,
		"clone_groups", res.Groups,
	)
	if err := parent.Err(); err != nil {
		return ExitCanceled
	}

	if err := writers.Commit(opts.Output, stdout, res.Text); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitWrite
	}
	return ExitOK
}

// Run is RunContext without cancellation and with an empty stdin.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, strings.NewReader(""), stdout, stderr)
}

func displayPath(p string) string {
	if p == "" || p == "-" {
		return "-"
	}
	return p
}
