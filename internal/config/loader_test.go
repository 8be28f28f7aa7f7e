package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded YAML and DefaultGameConfig() drifted apart:\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("levels:\n  max_level: 6\n  base_count: 3\nscoring:\n  transition_delay: 500ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Levels.MaxLevel != 6 || cfg.Levels.BaseCount != 3 {
		t.Errorf("overrides not applied: %+v", cfg.Levels)
	}
	if cfg.Scoring.TransitionDelay != 500*time.Millisecond {
		t.Errorf("TransitionDelay = %v, expected 500ms", cfg.Scoring.TransitionDelay)
	}
	// Untouched fields keep their defaults
	if cfg.Levels.BaseTime != 15 || cfg.Arena.Width != 800 {
		t.Errorf("defaults lost for unset fields: %+v %+v", cfg.Levels, cfg.Arena)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("arena:\n  width: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "arena") {
		t.Errorf("expected arena validation error, got %v", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Levels.MaxLevel = 0
	cfg.Levels.CountEvery = 0
	cfg.Bugs.StepSpeedMin = 2
	cfg.Bugs.StepSpeedMax = 1
	cfg.Bugs.ReferenceFPS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"max_level", "count_every", "step_speed", "reference_fps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGameConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultGameConfig()

	easy := DefaultGameConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Levels.BaseTime != base.Levels.BaseTime+5 {
		t.Errorf("easy BaseTime = %d", easy.Levels.BaseTime)
	}
	if easy.Levels.BaseCount != base.Levels.BaseCount-2 {
		t.Errorf("easy BaseCount = %d", easy.Levels.BaseCount)
	}
	if easy.Levels.BaseSpeed != 1.5 {
		t.Errorf("easy BaseSpeed = %v, expected 1.5", easy.Levels.BaseSpeed)
	}

	hard := DefaultGameConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Levels.BaseTime != 12 || hard.Levels.BaseCount != 10 || hard.Levels.BaseSpeed != 2.5 {
		t.Errorf("hard preset = %+v", hard.Levels)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	normal := DefaultGameConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestStepInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{0, time.Second},
	}
	for _, tc := range tests {
		b := BugsConfig{ReferenceFPS: tc.fps}
		if got := b.StepInterval(); got != tc.want {
			t.Errorf("StepInterval() at %d fps = %v, expected %v", tc.fps, got, tc.want)
		}
	}
}
