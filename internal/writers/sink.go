package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// Commit writes text to path, or to stdout when path is "" or "-".
// Files are written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated output file behind.
func Commit(path string, stdout io.Writer, text string) error {
	if path == "" || path == "-" {
		bw := bufio.NewWriter(stdout)
		if _, err := bw.WriteString(text); err != nil {
			return err
		}
		return bw.Flush()
	}
	return writeFileAtomic(path, text)
}

func writeFileAtomic(path, text string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	name := tmp.Name()
	if _, err := io.WriteString(tmp, text); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// IsBrokenPipe reports whether err means the reader of stdout went away,
// as when output is piped into head. That ends the run without failing it.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
