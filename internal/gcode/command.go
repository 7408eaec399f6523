// Package gcode adapts the github.com/256dpi/gcode tokenizer into the
// stable command-record view the dragknife core consumes, and serializes
// rewritten commands back to text. Parsing and serialization are the
// "external tokenizer" collaborator spec.md places out of the core's scope;
// this package is the one piece of the repository allowed to know about
// the 256dpi/gcode wire types.
package gcode

import (
	"fmt"
	"io"

	dpi "github.com/256dpi/gcode"
)

// mnemonicLetters are the command-introducing letters. Every other letter
// on a line is an argument.
var mnemonicLetters = map[string]bool{
	"G": true, "M": true, "T": true, "O": true, "N": true,
}

// Arg is a single letter/value argument on a command (X10.5, F500, ...).
type Arg struct {
	Letter string
	Value  float32
}

// Command is a parsed G-code command record: a mnemonic letter, a major
// number, a set of arguments, and an optional trailing comment.
type Command struct {
	mnemonic string
	major    int
	args     []Arg
	comment  string
}

// NewCommand creates a bare command with no arguments, for synthesized
// output (lift/swivel/plunge, offset-compensated motion).
func NewCommand(mnemonic string, major int) Command {
	return Command{mnemonic: mnemonic, major: major}
}

// FromLine adapts a parsed 256dpi/gcode line into a Command.
func FromLine(line dpi.Line) Command {
	if line.Comment != "" && len(line.Codes) == 0 {
		return Command{comment: line.Comment}
	}

	var c Command
	found := false
	for _, code := range line.Codes {
		if !found && mnemonicLetters[code.Letter] {
			c.mnemonic = code.Letter
			c.major = int(code.Value)
			found = true
			continue
		}
		c.args = append(c.args, Arg{Letter: code.Letter, Value: float32(code.Value)})
	}
	c.comment = line.Comment
	return c
}

// ReadAll tokenizes every line of r into Commands.
func ReadAll(r io.Reader) ([]Command, error) {
	file, err := dpi.ParseFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gcode: %w", err)
	}

	commands := make([]Command, 0, len(file.Lines))
	for _, line := range file.Lines {
		commands = append(commands, FromLine(line))
	}
	return commands, nil
}

// Mnemonic returns the command letter (G, M, T, O, N), or "" for a
// comment-only line.
func (c Command) Mnemonic() string {
	return c.mnemonic
}

// Major returns the command's major number (1 for G1, 90 for G90, ...).
func (c Command) Major() int {
	return c.major
}

// Args returns the command's arguments in encounter order.
func (c Command) Args() []Arg {
	return c.args
}

// Comment returns the trailing or standalone comment text, if any.
func (c Command) Comment() string {
	return c.comment
}

// IsComment reports whether the line carries no command, only a comment.
func (c Command) IsComment() bool {
	return c.mnemonic == "" && c.comment != ""
}

// ValueFor returns the value of the named argument letter, if present.
func (c Command) ValueFor(letter string) (float32, bool) {
	for _, a := range c.args {
		if a.Letter == letter {
			return a.Value, true
		}
	}
	return 0, false
}

// WithArg returns a copy of c with an additional trailing argument.
func (c Command) WithArg(letter string, value float32) Command {
	args := make([]Arg, len(c.args), len(c.args)+1)
	copy(args, c.args)
	c.args = append(args, Arg{Letter: letter, Value: value})
	return c
}

// WithComment returns a copy of c carrying the given comment.
func (c Command) WithComment(comment string) Command {
	c.comment = comment
	return c
}

// ToLine renders c back into a 256dpi/gcode line, ready for serialization.
func (c Command) ToLine() dpi.Line {
	var codes []dpi.GCode
	if c.mnemonic != "" {
		codes = append(codes, dpi.GCode{Letter: c.mnemonic, Value: float64(c.major)})
	}
	for _, a := range c.args {
		codes = append(codes, dpi.GCode{Letter: a.Letter, Value: float64(a.Value)})
	}
	return dpi.Line{Codes: codes, Comment: c.comment}
}

// String renders c as a single line of G-code text.
func (c Command) String() string {
	return c.ToLine().String()
}
