package gcode

import (
	"strings"
	"testing"
)

func TestReadAllBasic(t *testing.T) {
	cmds, err := ReadAll(strings.NewReader("G1 X10 Y0 F500\nG90\n"))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}

	if cmds[0].Mnemonic() != "G" || cmds[0].Major() != 1 {
		t.Errorf("expected G1, got %s%d", cmds[0].Mnemonic(), cmds[0].Major())
	}
	x, ok := cmds[0].ValueFor("X")
	if !ok || x != 10 {
		t.Errorf("expected X=10, got %v (ok=%v)", x, ok)
	}
	f, ok := cmds[0].ValueFor("F")
	if !ok || f != 500 {
		t.Errorf("expected F=500, got %v (ok=%v)", f, ok)
	}

	if cmds[1].Major() != 90 {
		t.Errorf("expected G90, got G%d", cmds[1].Major())
	}
}

func TestCommentOnlyLine(t *testing.T) {
	cmds, err := ReadAll(strings.NewReader("; this is a header comment\n"))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	if !cmds[0].IsComment() {
		t.Errorf("expected comment-only line")
	}
}

func TestWithArgAndString(t *testing.T) {
	cmd := NewCommand("G", 1)
	cmd = cmd.WithArg("X", 11.5)
	cmd = cmd.WithArg("Y", 0)

	str := cmd.String()
	if !strings.Contains(str, "G1") {
		t.Errorf("expected G1 in output, got %q", str)
	}
	if !strings.Contains(str, "X11.5") && !strings.Contains(str, "X11.500000") {
		t.Errorf("expected X argument in output, got %q", str)
	}
}

func TestValueForMissing(t *testing.T) {
	cmd := NewCommand("G", 90)
	if _, ok := cmd.ValueFor("X"); ok {
		t.Errorf("expected no X argument on a bare G90")
	}
}
