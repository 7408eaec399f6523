package gcode

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// HeaderHints summarizes diagnostic-only information scanned from the
// leading comment lines of a G-code program: machine/material metadata
// some generators emit as ";key: value" comments. These hints are never
// fed back into the modal state the core derives purely from G20/G21 and
// G17/18/19 commands (see spec.md §4.1) — they exist only so the CLI can
// log a sanity-check diagnostic before rewriting.
type HeaderHints struct {
	UnitHint    string // "mm", "inches", or "" if not advertised
	PlaneHint   string // "XY", "ZX", "YZ", or ""
	Is4Axis     bool   // true if a B-axis argument appears anywhere in the header scan window
	ToolHead    string
	Machine     string
}

// HeaderScanLines bounds how many leading lines are scanned for hints.
const HeaderScanLines = 50

// ScanHeaderHints scans the first HeaderScanLines lines of r for
// ";key: value" header comments.
func ScanHeaderHints(r io.Reader) (HeaderHints, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, InitialBufferSize), MaxLineLength)
	var hints HeaderHints

	for i := 0; scanner.Scan() && i < HeaderScanLines; i++ {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, ";") {
			comment := strings.TrimPrefix(line, ";")
			parts := strings.SplitN(comment, ":", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(parts[0]))
			value := strings.TrimSpace(parts[1])

			switch key {
			case "unit", "units":
				hints.UnitHint = strings.ToLower(value)
			case "plane":
				hints.PlaneHint = strings.ToUpper(value)
			case "tool_head":
				hints.ToolHead = value
			case "machine":
				hints.Machine = value
			}
			continue
		}

		if strings.Contains(line, "B") {
			if cmd, err := ParseCommand(line); err == nil {
				if _, hasB := cmd.ValueFor("B"); hasB {
					hints.Is4Axis = true
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return hints, fmt.Errorf("error scanning header: %w", err)
	}
	return hints, nil
}

// ParseCommand tokenizes a single line of G-code text into a Command.
// Kept for header scanning, which inspects individual lines without a
// full file parse.
func ParseCommand(input string) (Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Command{}, nil
	}
	if strings.HasPrefix(input, ";") {
		return Command{comment: input}, nil
	}

	commands, err := ReadAll(strings.NewReader(input))
	if err != nil {
		return Command{}, fmt.Errorf("failed to parse line: %w", err)
	}
	if len(commands) == 0 {
		return Command{}, nil
	}
	return commands[0], nil
}
