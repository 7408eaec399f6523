package cli_test

import (
	"testing"

	"github.com/chrisns/dragknife/internal/cli"
	"github.com/chrisns/dragknife/internal/dragknife"
	"github.com/chrisns/dragknife/internal/settings"
)

func TestParseArgsRequiresOffset(t *testing.T) {
	_, err := cli.ParseArgs([]string{"in.nc", "out.nc"}, settings.Store{})
	if err == nil {
		t.Fatal("expected an error when --offset is missing and no prior settings exist")
	}
}

func TestParseArgsFallsBackToSettingsOffset(t *testing.T) {
	args, err := cli.ParseArgs([]string{"in.nc", "out.nc"}, settings.Store{KnifeOffset: 1.5})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if args.KnifeOffset != 1.5 {
		t.Errorf("expected offset 1.5 from settings, got %v", args.KnifeOffset)
	}
}

func TestParseArgsHappyPath(t *testing.T) {
	args, err := cli.ParseArgs([]string{"--offset=1.0", "in.nc", "out.nc"}, settings.Store{})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if args.InputFile != "in.nc" || args.OutputFile != "out.nc" {
		t.Errorf("unexpected input/output: %+v", args)
	}
	if args.KnifeOffset != 1.0 {
		t.Errorf("expected offset 1.0, got %v", args.KnifeOffset)
	}
}

func TestParseArgsRejectsWrongArgCount(t *testing.T) {
	_, err := cli.ParseArgs([]string{"--offset=1.0", "only-one-file"}, settings.Store{})
	if err == nil {
		t.Fatal("expected an error for wrong positional argument count")
	}
}

func TestToConfigDefaultsToAbsoluteLift(t *testing.T) {
	args, err := cli.ParseArgs([]string{"--offset=1.0", "in.nc", "out.nc"}, settings.Store{})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	cfg := args.ToConfig()
	if _, ok := cfg.LiftConfig.(dragknife.AbsoluteHeight); !ok {
		t.Fatalf("expected an AbsoluteHeight lift config, got %T", cfg.LiftConfig)
	}
}

func TestToStoreRoundTripsLiftKind(t *testing.T) {
	args, err := cli.ParseArgs([]string{"--offset=1.0", "--lift-offset=2.0", "in.nc", "out.nc"}, settings.Store{})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	store := args.ToStore()
	if store.LiftKind != settings.LiftRelative {
		t.Errorf("expected relative lift kind, got %v", store.LiftKind)
	}
	if store.LiftHeight != 2.0 {
		t.Errorf("expected lift height 2.0, got %v", store.LiftHeight)
	}
	if store.LastInputPath != "in.nc" || store.LastOutputPath != "out.nc" {
		t.Errorf("expected last paths to be recorded, got %+v", store)
	}
}

func TestShouldShowHelpAndVersion(t *testing.T) {
	if !cli.ShouldShowHelp([]string{"--help"}) {
		t.Error("expected --help to be detected")
	}
	if !cli.ShouldShowVersion([]string{"-v"}) {
		t.Error("expected -v to be detected")
	}
	if cli.ShouldShowHelp([]string{"in.nc", "out.nc"}) {
		t.Error("did not expect help to be detected")
	}
}
