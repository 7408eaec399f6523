package gcode

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAndReadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nc")

	commands := []Command{
		NewCommand("G", 21),
		NewCommand("G", 1).WithArg("X", 10).WithArg("Y", 0).WithArg("F", 500),
	}

	if err := WriteFile(path, commands); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	readBack, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(readBack) != len(commands) {
		t.Fatalf("expected %d commands, got %d", len(commands), len(readBack))
	}
	if readBack[0].Major() != 21 {
		t.Errorf("expected G21, got G%d", readBack[0].Major())
	}
}

func TestBufferedWriterLineCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nc")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	bw := NewBufferedWriter(f)
	for i := 0; i < 5; i++ {
		if err := bw.WriteCommand(NewCommand("G", 1)); err != nil {
			t.Fatalf("WriteCommand failed: %v", err)
		}
	}
	if bw.LineCount() != 5 {
		t.Errorf("expected line count 5, got %d", bw.LineCount())
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
}
