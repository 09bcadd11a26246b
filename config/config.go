// Package config loads pillcut settings from an optional YAML file,
// environment overrides, and defaults. Precedence is
// defaults < file < environment
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pillcut/audio"
	"github.com/lixenwraith/pillcut/input"
	"github.com/lixenwraith/pillcut/partition"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = "pillcut.yaml"

// ErrInvalid marks a configuration that violates a threshold constraint
var ErrInvalid = errors.New("invalid configuration")

// Config is the full application configuration
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Partition PartitionConfig `yaml:"partition"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Audio     AudioConfig     `yaml:"audio"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`

	// Key name -> action name overrides, e.g. {"x": "quit", "q": "none"}
	Keys map[string]string `yaml:"keys,omitempty"`
}

// CanvasConfig maps terminal cells to canvas units
type CanvasConfig struct {
	CellWidth     int `yaml:"cell_width"`
	CellHeight    int `yaml:"cell_height"`
	InitialRadius int `yaml:"initial_radius"`
}

// PartitionConfig holds split policy
type PartitionConfig struct {
	FragmentMin int `yaml:"fragment_min"`
	NudgeGap    int `yaml:"nudge_gap"`
}

// GestureConfig holds pointer thresholds
type GestureConfig struct {
	CreateMin int `yaml:"create_min"`
	ClickSlop int `yaml:"click_slop"`
}

// AudioConfig holds sound cue settings
type AudioConfig struct {
	Enabled       bool               `yaml:"enabled"`
	MasterVolume  float64            `yaml:"master_volume"`
	EffectVolumes map[string]float64 `yaml:"effect_volumes,omitempty"`
	SampleRate    int                `yaml:"sample_rate"`
}

// SnapshotConfig controls PNG export
type SnapshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Canvas: CanvasConfig{
			CellWidth:     4,
			CellHeight:    8,
			InitialRadius: partition.DefaultInitialRadius,
		},
		Partition: PartitionConfig{
			FragmentMin: partition.DefaultFragmentMin,
			NudgeGap:    partition.DefaultNudgeGap,
		},
		Gesture: GestureConfig{
			CreateMin: input.DefaultCreateMin,
			ClickSlop: input.DefaultClickSlop,
		},
		Audio: AudioConfig{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
		},
		Snapshot: SnapshotConfig{Dir: "."},
	}
}

// Load builds the configuration from defaults, the YAML file at path if it
// exists, and environment overrides. An empty path means DefaultFileName
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays PILLCUT_* variables read through getenv
func (c *Config) applyEnv(getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"PILLCUT_CELL_WIDTH", &c.Canvas.CellWidth},
		{"PILLCUT_CELL_HEIGHT", &c.Canvas.CellHeight},
		{"PILLCUT_INITIAL_RADIUS", &c.Canvas.InitialRadius},
		{"PILLCUT_FRAGMENT_MIN", &c.Partition.FragmentMin},
		{"PILLCUT_NUDGE_GAP", &c.Partition.NudgeGap},
		{"PILLCUT_CREATE_MIN", &c.Gesture.CreateMin},
		{"PILLCUT_CLICK_SLOP", &c.Gesture.ClickSlop},
		{"PILLCUT_SAMPLE_RATE", &c.Audio.SampleRate},
	}
	for _, e := range ints {
		v := getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}

	if v := getenv("PILLCUT_AUDIO_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PILLCUT_AUDIO_ENABLED: %w", err)
		}
		c.Audio.Enabled = b
	}

	// Master volume as 0-100
	if v := getenv("PILLCUT_MASTER_VOLUME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PILLCUT_MASTER_VOLUME: %w", err)
		}
		c.Audio.MasterVolume = min(1, max(0, float64(n)/100))
	}

	// Effect volumes as JSON, e.g. {"split":0.5}
	if v := getenv("PILLCUT_SFX_VOLUMES"); v != "" {
		var vols map[string]float64
		if err := json.Unmarshal([]byte(v), &vols); err != nil {
			return fmt.Errorf("PILLCUT_SFX_VOLUMES: %w", err)
		}
		if c.Audio.EffectVolumes == nil {
			c.Audio.EffectVolumes = make(map[string]float64, len(vols))
		}
		for k, vol := range vols {
			c.Audio.EffectVolumes[k] = vol
		}
	}

	if v := getenv("PILLCUT_SNAPSHOT_DIR"); v != "" {
		c.Snapshot.Dir = v
	}
	return nil
}

// Validate checks thresholds are usable together
func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"canvas.cell_width", c.Canvas.CellWidth},
		{"canvas.cell_height", c.Canvas.CellHeight},
		{"partition.fragment_min", c.Partition.FragmentMin},
		{"gesture.create_min", c.Gesture.CreateMin},
		{"audio.sample_rate", c.Audio.SampleRate},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%s must be positive, got %d: %w", p.name, p.v, ErrInvalid)
		}
	}

	nonNegative := []struct {
		name string
		v    int
	}{
		{"canvas.initial_radius", c.Canvas.InitialRadius},
		{"partition.nudge_gap", c.Partition.NudgeGap},
		{"gesture.click_slop", c.Gesture.ClickSlop},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("%s must not be negative, got %d: %w", p.name, p.v, ErrInvalid)
		}
	}

	if c.Partition.FragmentMin > c.Gesture.CreateMin {
		return fmt.Errorf("partition.fragment_min (%d) exceeds gesture.create_min (%d): %w",
			c.Partition.FragmentMin, c.Gesture.CreateMin, ErrInvalid)
	}

	for k := range c.Audio.EffectVolumes {
		if _, ok := audio.ParseSoundType(k); !ok {
			return fmt.Errorf("audio.effect_volumes: unknown sound %q: %w", k, ErrInvalid)
		}
	}
	return nil
}

// PartitionPolicy returns the engine policy
func (c *Config) PartitionPolicy() partition.Config {
	return partition.Config{
		FragmentMin:   c.Partition.FragmentMin,
		NudgeGap:      c.Partition.NudgeGap,
		InitialRadius: c.Canvas.InitialRadius,
	}
}

// GesturePolicy returns the controller thresholds
func (c *Config) GesturePolicy() input.Config {
	return input.Config{
		CreateMin:     c.Gesture.CreateMin,
		ClickSlop:     c.Gesture.ClickSlop,
		InitialRadius: c.Canvas.InitialRadius,
	}
}

// AudioSettings converts to the audio package's config
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for k, v := range c.Audio.EffectVolumes {
		if st, ok := audio.ParseSoundType(k); ok {
			ac.EffectVolumes[st] = v
		}
	}
	return ac
}
