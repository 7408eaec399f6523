package cli

import (
	"fmt"
	"os"

	"github.com/chrisns/dragknife/internal/dragknife"
)

// ArgumentError marks an error as an invalid-argument condition, for exit
// code classification in PrintError.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// PrintWarning prints a warning message to stderr.
// Format: "WARNING: <message>"
func PrintWarning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "WARNING: %s\n", message)
}

// PrintSummary prints rewrite statistics to stdout.
func PrintSummary(stats dragknife.Stats) {
	fmt.Println("\n=== Rewrite Complete ===")
	fmt.Println()

	fmt.Printf("Input lines:     %s\n", FormatNumber(stats.InputLines))
	fmt.Printf("Output lines:    %s\n", FormatNumber(stats.OutputLines))
	fmt.Printf("Swivels added:   %s\n", FormatNumber(stats.SwivelsAdded))
	fmt.Printf("Line growth:     %.1f%%\n", stats.LineGrowthPercent())
	fmt.Println()

	fmt.Printf("Input size:      %s bytes\n", FormatBytes(stats.BytesIn))
	fmt.Printf("Output size:     %s bytes\n", FormatBytes(stats.BytesOut))
	fmt.Printf("Size growth:     %.1f%%\n", stats.FileSizeGrowthPercent())
	fmt.Println()

	fmt.Printf("Processing time: %s\n", FormatDuration(stats.ProcessingTime))
	fmt.Println()
}

// PrintError prints an error message to stderr and returns the process
// exit code to use.
//
// Exit codes:
//
//	0 - No error (nil error)
//	1 - General error (file I/O, parsing, etc.)
//	2 - Invalid arguments
func PrintError(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	switch err.(type) {
	case *ArgumentError:
		return 2
	default:
		return 1
	}
}
