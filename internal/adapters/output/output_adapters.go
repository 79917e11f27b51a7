package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/texstream/texevents/internal/app"
	"github.com/texstream/texevents/internal/domain/event"
)

// --- Stdout Adapter ---

// StdoutAdapter implements app.EventWriter by printing one event per
// line to standard output.
type StdoutAdapter struct {
	w *bufio.Writer
}

// NewStdoutAdapter creates a new adapter for writing to standard output.
func NewStdoutAdapter() *StdoutAdapter {
	return &StdoutAdapter{w: bufio.NewWriter(os.Stdout)}
}

// WriteEvent prints ev's string form, one event per line.
func (a *StdoutAdapter) WriteEvent(ev event.Event) error {
	if _, err := fmt.Fprintln(a.w, ev.String()); err != nil {
		return fmt.Errorf("failed to write event to stdout: %w", err)
	}
	return nil
}

// Close flushes any buffered output.
func (a *StdoutAdapter) Close() error {
	return a.w.Flush()
}

// --- File Adapter ---

// FileAdapter implements app.EventWriter by writing one event per line
// to a file, overwriting it if it already exists.
type FileAdapter struct {
	f *os.File
	w *bufio.Writer
}

// NewFileAdapter creates a new adapter for writing to filePath.
func NewFileAdapter(filePath string) (*FileAdapter, error) {
	if filePath == "" {
		panic("FileAdapter requires a non-empty file path")
	}
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file '%s': %w", filePath, err)
	}
	return &FileAdapter{f: f, w: bufio.NewWriter(f)}, nil
}

// WriteEvent prints ev's string form, one event per line.
func (a *FileAdapter) WriteEvent(ev event.Event) error {
	if _, err := fmt.Fprintln(a.w, ev.String()); err != nil {
		return fmt.Errorf("failed to write event to file: %w", err)
	}
	return nil
}

// Close flushes buffered output and closes the underlying file.
func (a *FileAdapter) Close() error {
	if err := a.w.Flush(); err != nil {
		a.f.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return a.f.Close()
}

// --- Factory Function ---

// NewWriterAdapter creates the appropriate EventWriter based on the
// output file path. If outputPath is empty, it returns a StdoutAdapter.
// Otherwise, it returns a FileAdapter.
func NewWriterAdapter(outputPath string) (app.EventWriter, error) {
	if outputPath == "" {
		return NewStdoutAdapter(), nil
	}
	return NewFileAdapter(outputPath)
}
