// Package export writes datasets to files in one of several formats.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfake/internal/record"
)

// ErrEmptyDataset is returned by formats that need at least one record.
var ErrEmptyDataset = errors.New("dataset is empty")

// UnsupportedFormatError reports an unknown format selector.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format: %q", e.Format)
}

// Writer serializes a dataset to w.
type Writer interface {
	Write(w io.Writer, ds record.Dataset) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(w io.Writer, ds record.Dataset) error

// Write calls fn(w, ds).
func (fn WriterFunc) Write(w io.Writer, ds record.Dataset) error {
	return fn(w, ds)
}

// writers maps format tags to their serializer. Adding a format means adding
// an entry here.
var writers = map[string]Writer{
	"csv":   WriterFunc(writeCSV),
	"xml":   WriterFunc(writeXML),
	"json":  WriterFunc(writeJSON),
	"jsonl": WriterFunc(writeJSONL),
	"yaml":  WriterFunc(writeYAML),
}

// Formats returns every supported format tag, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the writer for format and its canonical tag. Matching is
// case-insensitive.
func Lookup(format string) (Writer, string, error) {
	tag := strings.ToLower(strings.TrimSpace(format))
	w, ok := writers[tag]
	if !ok {
		return nil, "", &UnsupportedFormatError{Format: format}
	}
	return w, tag, nil
}

// Write serializes ds to w in the given format.
func Write(w io.Writer, ds record.Dataset, format string) error {
	fw, _, err := Lookup(format)
	if err != nil {
		return err
	}
	return fw.Write(w, ds)
}

// Summary describes a completed save.
type Summary struct {
	Records int
	Format  string
	Path    string
	Bytes   int
}

// String returns the confirmation line shown to users.
func (s Summary) String() string {
	return fmt.Sprintf("generated %d records and saved to %s as %s", s.Records, s.Path, s.Format)
}

// Save serializes ds in memory and writes it to path on fsys, creating or
// overwriting the file. The format is resolved first, so an unsupported
// format never touches the filesystem. A failed write may leave a partial
// file behind.
func Save(fsys zfilesystem.ReadWriteFileFS, ds record.Dataset, format, path string) (Summary, error) {
	fw, tag, err := Lookup(format)
	if err != nil {
		return Summary{}, fmt.Errorf("save: %w", err)
	}

	var buf bytes.Buffer
	if err := fw.Write(&buf, ds); err != nil {
		return Summary{}, fmt.Errorf("save %s: encode %s: %w", path, tag, err)
	}

	if err := fsys.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Summary{}, fmt.Errorf("save %s: %w", path, err)
	}

	slog.Debug("dataset written", "path", path, "format", tag, "records", len(ds), "bytes", buf.Len())

	return Summary{Records: len(ds), Format: tag, Path: path, Bytes: buf.Len()}, nil
}
