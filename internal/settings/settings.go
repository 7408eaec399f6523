// Package settings persists the front-end's last-used configuration —
// the dragknife parameter bundle plus the last input/output paths — as a
// self-describing YAML record. The core (internal/dragknife) neither
// reads nor writes this; it is purely a front-end/CLI collaborator.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LiftKind distinguishes which dragknife.Config.LiftConfig variant was
// persisted, since YAML has no native sum-type support.
type LiftKind string

const (
	LiftAbsolute LiftKind = "absolute"
	LiftRelative LiftKind = "relative"
)

// Store is the persisted record: the dragknife parameter bundle plus the
// last-used input path and output filename.
type Store struct {
	KnifeOffset         float32  `yaml:"knife_offset"`
	LiftKind            LiftKind `yaml:"lift_kind"`
	LiftHeight          float32  `yaml:"lift_height"`
	SharpAngleThreshold float32  `yaml:"sharp_angle_threshold"` // degrees, matching the CLI's own --threshold unit
	SwivelFeedrate      float32  `yaml:"swivel_feedrate"`

	LastInputPath  string `yaml:"last_input_path"`
	LastOutputPath string `yaml:"last_output_path"`
}

// Default returns the baseline settings a fresh install starts from. Its
// KnifeOffset is 0, so a first run has to supply --offset.
func Default() Store {
	return Store{
		KnifeOffset:         0,
		LiftKind:            LiftAbsolute,
		LiftHeight:          5.0,
		SharpAngleThreshold: 10.0,
		SwivelFeedrate:      1000,
	}
}

// DefaultPath returns the settings file location under the user's config
// directory (e.g. ~/.config/dragknife/settings.yaml).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "dragknife", "settings.yaml"), nil
}

// Load reads a Store from path. A missing file is not an error: it
// returns Default(), so a first run proceeds without a settings file.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Store{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	var s Store
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Store{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as YAML, overwriting any existing file. The parent
// directory is created if it does not already exist.
func Save(path string, s Store) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
