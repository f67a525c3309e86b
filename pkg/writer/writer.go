package writer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/goliatone/go-nuxtgen/pkg/render"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Option customises a Writer.
type Option func(*Writer)

// WithLogger sets the logger used for write diagnostics.
func WithLogger(logger log.Interface) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithWriteAll persists every file regardless of its Write flag.
func WithWriteAll(enabled bool) Option {
	return func(w *Writer) {
		w.writeAll = enabled
	}
}

// WithDryRun reports what would change without touching disk.
func WithDryRun(enabled bool) Option {
	return func(w *Writer) {
		w.dryRun = enabled
	}
}

// Writer stores rendered files below a directory.
type Writer struct {
	logger   log.Interface
	writeAll bool
	dryRun   bool
}

// Result lists the filenames handled by a Write call.
type Result struct {
	Written   []string
	Unchanged []string
	Skipped   []string
}

// New constructs a Writer.
func New(options ...Option) *Writer {
	w := &Writer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.logger == nil {
		w.logger = &log.Logger{Handler: discard.New(), Level: log.FatalLevel}
	}
	return w
}

// Write persists files below dir. Existing files with identical contents are
// left untouched.
func (w *Writer) Write(ctx context.Context, dir string, files []render.File) (Result, error) {
	var result Result
	if dir == "" {
		return result, errors.New("writer: output directory is required")
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !file.Write && !w.writeAll {
			result.Skipped = append(result.Skipped, file.Filename)
			continue
		}

		target, err := targetPath(dir, file.Filename)
		if err != nil {
			return result, err
		}

		existing, err := os.ReadFile(target)
		switch {
		case err == nil && bytes.Equal(existing, []byte(file.Contents)):
			result.Unchanged = append(result.Unchanged, file.Filename)
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return result, fmt.Errorf("writer: read %s: %w", file.Filename, err)
		}

		entry := w.logger.WithFields(log.Fields{
			"filename": file.Filename,
			"bytes":    len(file.Contents),
		})
		if w.dryRun {
			entry.Info("would write")
			result.Written = append(result.Written, file.Filename)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return result, fmt.Errorf("writer: create directory for %s: %w", file.Filename, err)
		}
		if err := os.WriteFile(target, []byte(file.Contents), filePerm); err != nil {
			return result, fmt.Errorf("writer: write %s: %w", file.Filename, err)
		}
		entry.Debug("wrote file")
		result.Written = append(result.Written, file.Filename)
	}
	return result, nil
}

// Memory returns the contents of the files that stay virtual, keyed by
// filename.
func Memory(files []render.File) map[string]string {
	out := make(map[string]string)
	for _, file := range files {
		if file.Write {
			continue
		}
		out[file.Filename] = file.Contents
	}
	return out
}

// Filenames returns the sorted keys of a Memory map.
func Filenames(memory map[string]string) []string {
	names := make([]string, 0, len(memory))
	for name := range memory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func targetPath(dir, filename string) (string, error) {
	if filename == "" || filepath.IsAbs(filename) {
		return "", fmt.Errorf("writer: invalid filename %q", filename)
	}
	clean := filepath.Clean(filepath.FromSlash(filename))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("writer: filename %q escapes output directory", filename)
	}
	return filepath.Join(dir, clean), nil
}
