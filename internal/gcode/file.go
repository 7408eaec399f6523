package gcode

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// InitialBufferSize and MaxLineLength size the scanner buffer that
// ScanHeaderHints uses, so header lines longer than bufio's default token
// limit still scan.
const (
	InitialBufferSize = 64 * 1024
	MaxLineLength     = 1024 * 1024
)

// ReadFile reads and tokenizes an entire G-code program from disk.
func ReadFile(path string) ([]Command, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	commands, err := ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return commands, nil
}

// BufferedWriter wraps a buffered writer for incremental G-code writing,
// flushing every 1000 lines or on explicit Flush.
type BufferedWriter struct {
	writer    *bufio.Writer
	lineCount int
}

// NewBufferedWriter creates a new buffered writer for G-code output.
func NewBufferedWriter(w io.Writer) *BufferedWriter {
	return &BufferedWriter{writer: bufio.NewWriter(w)}
}

// WriteCommand serializes and writes a single command.
func (bw *BufferedWriter) WriteCommand(c Command) error {
	if _, err := bw.writer.WriteString(c.String() + "\n"); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	bw.lineCount++
	if bw.lineCount%1000 == 0 {
		if err := bw.writer.Flush(); err != nil {
			return fmt.Errorf("failed to auto-flush: %w", err)
		}
	}
	return nil
}

// WriteAll writes every command in order.
func (bw *BufferedWriter) WriteAll(commands []Command) error {
	for _, c := range commands {
		if err := bw.WriteCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// Flush ensures all buffered data is written.
func (bw *BufferedWriter) Flush() error {
	if err := bw.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	return nil
}

// LineCount returns the number of lines written so far.
func (bw *BufferedWriter) LineCount() int {
	return bw.lineCount
}

// WriteFile writes a full command sequence to disk.
func WriteFile(path string, commands []Command) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	bw := NewBufferedWriter(file)
	if err := bw.WriteAll(commands); err != nil {
		return err
	}
	return bw.Flush()
}
