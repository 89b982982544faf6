// internal/input/open.go
package input

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Open returns a reader for path. "" and "-" mean stdin; a ".gz" suffix
// is decompressed transparently.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &gzipFile{Reader: gr, file: fh}, nil
	}
	return fh, nil
}

// gzipFile closes the decompressor and then the file under it.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// ReadAll reads the whole input named by path.
func ReadAll(path string, stdin io.Reader) (string, error) {
	rc, err := Open(path, stdin)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", displayName(path), err)
	}
	return string(b), nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
