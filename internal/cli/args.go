package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/chrisns/dragknife/internal/dragknife"
	"github.com/chrisns/dragknife/internal/settings"
)

// Version information (set during build with -ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Args contains parsed command-line arguments for a single rewrite.
type Args struct {
	InputFile  string
	OutputFile string
	Force      bool
	Verbose    bool

	KnifeOffset         float64
	SharpAngleThreshold float64 // degrees, as given on the command line
	SwivelFeedrate      float64
	LiftAbsolute        float64
	LiftRelative        float64
	liftRelativeSet     bool
}

// ParseArgs parses command-line arguments. Flags left unset on the command
// line fall back to defaults, the persisted settings so repeated
// invocations on the same job don't need every flag re-typed.
// Expected format: <input> <output> [--offset=N] [FLAGS]
func ParseArgs(args []string, defaults settings.Store) (*Args, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	fs := flag.NewFlagSet("dragknife", flag.ContinueOnError)

	result := &Args{
		SharpAngleThreshold: float64(defaults.SharpAngleThreshold),
		SwivelFeedrate:      float64(defaults.SwivelFeedrate),
		LiftAbsolute:        float64(defaults.LiftHeight),
	}

	liftRelativeDefault := 0.0
	if defaults.LiftKind == settings.LiftRelative {
		liftRelativeDefault = float64(defaults.LiftHeight)
	}

	fs.BoolVar(&result.Force, "force", false, "Overwrite output file without prompting")
	fs.BoolVar(&result.Force, "f", false, "Shorthand for --force")
	fs.BoolVar(&result.Verbose, "verbose", false, "Log diagnostic detail to stderr")
	fs.Float64Var(&result.KnifeOffset, "offset", float64(defaults.KnifeOffset), "Dragknife offset from controlled point to blade tip, in mm (required)")
	fs.Float64Var(&result.SharpAngleThreshold, "threshold", float64(defaults.SharpAngleThreshold), "Sharp-corner swivel threshold, in degrees")
	fs.Float64Var(&result.SwivelFeedrate, "swivel-feedrate", float64(defaults.SwivelFeedrate), "Feedrate used during swivel arcs, in mm/min")
	fs.Float64Var(&result.LiftAbsolute, "lift-height", float64(defaults.LiftHeight), "Absolute Z height to lift to during a swivel, in mm")
	fs.Float64Var(&result.LiftRelative, "lift-offset", liftRelativeDefault, "Relative Z offset above the current cut depth to lift to during a swivel, in mm; overrides --lift-height when given")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, fmt.Errorf("failed to parse flags: %w", err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	visited := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	result.liftRelativeSet = defaults.LiftKind == settings.LiftRelative
	if visited["lift-height"] {
		result.liftRelativeSet = false
	}
	if visited["lift-offset"] {
		result.liftRelativeSet = true
	}

	if len(positional) != 2 {
		return nil, fmt.Errorf("expected 2 arguments (input, output), got %d", len(positional))
	}
	result.InputFile = positional[0]
	result.OutputFile = positional[1]

	if result.KnifeOffset <= 0 {
		return nil, fmt.Errorf("--offset must be a positive number of mm")
	}
	if result.SharpAngleThreshold < 0 || result.SharpAngleThreshold > 180 {
		return nil, fmt.Errorf("--threshold must be between 0 and 180 degrees")
	}

	return result, nil
}

// ToConfig converts parsed arguments into the rewriter's configuration
// bundle, resolving degrees to radians and choosing between the absolute
// and relative lift policies.
func (a *Args) ToConfig() dragknife.Config {
	var lift dragknife.LiftConfig = dragknife.AbsoluteHeight(a.LiftAbsolute)
	if a.liftRelativeSet {
		lift = dragknife.RelativeHeight(a.LiftRelative)
	}
	return dragknife.Config{
		KnifeOffset:         float32(a.KnifeOffset),
		LiftConfig:          lift,
		SharpAngleThreshold: float32(a.SharpAngleThreshold) * (3.14159265 / 180),
		SwivelFeedrate:      float32(a.SwivelFeedrate),
	}
}

// ToStore converts parsed arguments into the record persisted between runs:
// the parameter bundle just used, plus the input/output paths, so the next
// invocation on the same job can omit them.
func (a *Args) ToStore() settings.Store {
	liftKind := settings.LiftAbsolute
	liftHeight := a.LiftAbsolute
	if a.liftRelativeSet {
		liftKind = settings.LiftRelative
		liftHeight = a.LiftRelative
	}
	return settings.Store{
		KnifeOffset:         float32(a.KnifeOffset),
		LiftKind:            liftKind,
		LiftHeight:          float32(liftHeight),
		SharpAngleThreshold: float32(a.SharpAngleThreshold),
		SwivelFeedrate:      float32(a.SwivelFeedrate),
		LastInputPath:       a.InputFile,
		LastOutputPath:      a.OutputFile,
	}
}

// ValidateArgs checks that the input file exists and the output directory
// is writable.
func ValidateArgs(args *Args) error {
	if _, err := os.Stat(args.InputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", args.InputFile)
	} else if err != nil {
		return fmt.Errorf("failed to check input file: %w", err)
	}

	outputDir := filepath.Dir(args.OutputFile)
	if outputDir == "." || outputDir == "" {
		outputDir = "."
	}

	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", outputDir)
	} else if err != nil {
		return fmt.Errorf("failed to check output directory: %w", err)
	}

	if !args.Force {
		if _, err := os.Stat(args.OutputFile); err == nil {
			return fmt.Errorf("output file already exists: %s (use --force to overwrite)", args.OutputFile)
		}
	}

	return nil
}

// ShouldShowHelp checks if --help or -h flag is present.
func ShouldShowHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// ShouldShowVersion checks if --version or -v flag is present.
func ShouldShowVersion(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			return true
		}
	}
	return false
}

// GetHelpText returns the help message text.
func GetHelpText() string {
	var sb strings.Builder

	sb.WriteString("Dragknife G-code Offset/Swivel Rewriter\n\n")
	sb.WriteString("Usage: dragknife <input-file> <output-file> [--offset=N] [FLAGS]\n\n")

	sb.WriteString("Positional Arguments:\n")
	sb.WriteString("  input-file     Path to the nominal-path input G-code file\n")
	sb.WriteString("  output-file    Path for the offset/swivel-corrected output G-code file\n\n")

	sb.WriteString("Flags:\n")
	sb.WriteString("  --offset=<mm>            Distance from controlled point to trailing blade tip\n")
	sb.WriteString("                           (required on first use; persisted thereafter)\n")
	sb.WriteString("  --threshold=<deg>        Sharp-corner swivel threshold (default: 10)\n")
	sb.WriteString("  --swivel-feedrate=<mm/min>  Feedrate during swivel arcs (default: 1000)\n")
	sb.WriteString("  --lift-height=<mm>       Absolute Z height during a swivel (default: 5)\n")
	sb.WriteString("  --lift-offset=<mm>       Relative Z offset above current depth; overrides --lift-height\n")
	sb.WriteString("  --force, -f              Overwrite output file without confirmation\n")
	sb.WriteString("  --verbose                Log diagnostic detail to stderr\n")
	sb.WriteString("  --help, -h               Display this help message\n")
	sb.WriteString("  --version, -v            Display version information\n\n")

	sb.WriteString("Examples:\n")
	sb.WriteString("  dragknife nominal.nc corrected.nc --offset=1.0\n")
	sb.WriteString("  dragknife nominal.nc corrected.nc --offset=0.8 --threshold=15 --force\n")

	return sb.String()
}

// GetVersionText returns the version information text.
func GetVersionText() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("dragknife version %s\n", Version))
	sb.WriteString(fmt.Sprintf("Built with Go %s\n", runtime.Version()))
	sb.WriteString(fmt.Sprintf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH))

	if GitCommit != "unknown" {
		sb.WriteString(fmt.Sprintf("Git commit: %s\n", GitCommit))
	}
	if BuildDate != "unknown" {
		sb.WriteString(fmt.Sprintf("Build date: %s\n", BuildDate))
	}

	return sb.String()
}
