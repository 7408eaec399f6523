package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/chrisns/dragknife/internal/cli"
	"github.com/chrisns/dragknife/internal/dragknife"
	"github.com/chrisns/dragknife/internal/gcode"
	"github.com/chrisns/dragknife/internal/logutil"
	"github.com/chrisns/dragknife/internal/settings"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if cli.ShouldShowHelp(args) {
		fmt.Print(cli.GetHelpText())
		return 0
	}
	if cli.ShouldShowVersion(args) {
		fmt.Print(cli.GetVersionText())
		return 0
	}

	settingsPath, pathErr := settings.DefaultPath()
	store := settings.Default()
	if pathErr == nil {
		if loaded, err := settings.Load(settingsPath); err == nil {
			store = loaded
		} else {
			cli.PrintWarning("failed to load settings, using defaults: %v", err)
		}
	}

	parsedArgs, err := cli.ParseArgs(args, store)
	if err != nil {
		return cli.PrintError(&cli.ArgumentError{Message: err.Error()})
	}

	log := logutil.Default
	if parsedArgs.Verbose {
		log = logutil.New(os.Stderr, zerolog.DebugLevel)
	}

	if err := cli.ValidateArgs(parsedArgs); err != nil {
		return cli.PrintError(&cli.ArgumentError{Message: err.Error()})
	}

	startTime := time.Now()
	reporter := cli.NewPhaseReporter(os.Stderr)

	inputFile, err := os.Open(parsedArgs.InputFile)
	if err != nil {
		return cli.PrintError(fmt.Errorf("failed to open input file: %w", err))
	}
	defer inputFile.Close()

	hints, err := gcode.ScanHeaderHints(inputFile)
	if err != nil {
		return cli.PrintError(fmt.Errorf("failed to scan header: %w", err))
	}
	log.Debug().
		Str("unit_hint", hints.UnitHint).
		Str("plane_hint", hints.PlaneHint).
		Bool("is_4axis", hints.Is4Axis).
		Msg("scanned header hints")
	if hints.Is4Axis {
		cli.PrintWarning("input file appears to use a B-axis; the rewriter ignores rotary axes")
	}

	if _, err := inputFile.Seek(0, 0); err != nil {
		return cli.PrintError(fmt.Errorf("failed to rewind input file: %w", err))
	}

	inputInfo, err := inputFile.Stat()
	if err != nil {
		return cli.PrintError(fmt.Errorf("failed to stat input file: %w", err))
	}

	commands, err := gcode.ReadAll(inputFile)
	if err != nil {
		return cli.PrintError(fmt.Errorf("failed to parse input file: %w", err))
	}
	reporter.Phase("parse", len(commands))

	cfg := parsedArgs.ToConfig()
	records := dragknife.BuildPath(commands)
	reporter.Phase("classify", len(records))

	rewritten := dragknife.Rewrite(records, cfg)
	reporter.Phase("rewrite", len(rewritten))

	if err := gcode.WriteFile(parsedArgs.OutputFile, rewritten); err != nil {
		return cli.PrintError(fmt.Errorf("failed to write output file: %w", err))
	}
	reporter.Phase("write", len(rewritten))
	reporter.Done()

	outputInfo, err := os.Stat(parsedArgs.OutputFile)
	if err != nil {
		return cli.PrintError(fmt.Errorf("failed to stat output file: %w", err))
	}

	stats := dragknife.Stats{
		InputLines:     len(commands),
		OutputLines:    len(rewritten),
		SwivelsAdded:   dragknife.CountSwivels(records, cfg),
		BytesIn:        inputInfo.Size(),
		BytesOut:       outputInfo.Size(),
		ProcessingTime: time.Since(startTime),
	}
	cli.PrintSummary(stats)

	if pathErr == nil {
		if err := settings.Save(settingsPath, parsedArgs.ToStore()); err != nil {
			cli.PrintWarning("failed to save settings: %v", err)
		}
	}

	return 0
}
