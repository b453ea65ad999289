// Package journal is the append-only decision log. Every probe, decision,
// and error in a cycle is written as one timestamped text line. Write
// failures fall back to a secondary stream; the journal never takes the
// daemon down.
package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// timeLayout matches the line-prefix format readers of the log expect.
const timeLayout = "2006-01-02 15:04:05"

// Journal appends timestamped lines to a log file.
// Safe for concurrent use.
type Journal struct {
	mu       sync.Mutex
	path     string
	file     *os.File
	fallback io.Writer
}

// Open opens (or creates) the journal file for appending. On failure the
// returned Journal is still usable — it writes to the fallback stream
// (stderr) — and the error reports why the file could not be opened.
func Open(path string) (*Journal, error) {
	j := &Journal{path: path, fallback: os.Stderr}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return j, fmt.Errorf("journal: create directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return j, fmt.Errorf("journal: open file: %w", err)
	}
	j.file = file
	return j, nil
}

// Discard returns a journal that swallows everything. Used by one-shot
// commands that print their own output.
func Discard() *Journal {
	return &Journal{fallback: io.Discard}
}

// Printf appends one formatted line with a timestamp prefix. If the file
// write fails, the line goes to the fallback stream along with a warning;
// Printf itself never fails.
func (j *Journal) Printf(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()

	line := fmt.Sprintf("%s %s\n", time.Now().Format(timeLayout), fmt.Sprintf(format, args...))

	if j.file != nil {
		_, err := j.file.WriteString(line)
		if err == nil {
			return
		}
		fmt.Fprintf(j.fallback, "warning: could not write to log file %s: %v\n", j.path, err)
	}
	_, _ = io.WriteString(j.fallback, line)
}

// Close flushes and closes the underlying file, if any.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}
