package settings

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist.yaml")

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store != Default() {
		t.Errorf("expected Default() for a missing file, got %+v", store)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "settings.yaml")

	want := Store{
		KnifeOffset:         1.2,
		LiftKind:            LiftRelative,
		LiftHeight:          3.0,
		SharpAngleThreshold: 12.5,
		SwivelFeedrate:      900,
		LastInputPath:       "in.nc",
		LastOutputPath:      "out.nc",
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "settings.yaml")

	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load failed after Save created parent dirs: %v", err)
	}
}
