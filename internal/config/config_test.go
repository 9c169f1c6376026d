package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseEngineConfigOverridesDefaults(t *testing.T) {
	c, err := ParseEngineConfig([]byte("placement: learning\nscan: sweep\nmiddle_sweep: true\nseed: 7\n"))
	if err != nil {
		t.Fatalf("ParseEngineConfig error: %v", err)
	}
	if c.Placement != PlacementLearning || c.Scan != ScanSweep || !c.MiddleSweep || c.Seed != 7 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.BoardSize != 10 || c.MinShipLength != 3 || !c.LearningShots {
		t.Fatalf("defaults not kept: %+v", c)
	}
}

func TestParseEngineConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "unknown placement", yaml: "placement: corners", want: "unknown placement"},
		{name: "unknown scan", yaml: "scan: spiral", want: "unknown scan"},
		{name: "board too small", yaml: "board_size: 2", want: "smaller than"},
		{name: "bad ship length", yaml: "min_ship_length: 0", want: "min_ship_length"},
		{name: "negative warmup", yaml: "learning_warmup_rounds: -1", want: "learning_warmup_rounds"},
		{name: "malformed", yaml: "board_size: [", want: "unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEngineConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestReadEngineConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("board_size: 12\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := ReadEngineConfig(path)
	if err != nil {
		t.Fatalf("ReadEngineConfig error: %v", err)
	}
	if c.BoardSize != 12 {
		t.Fatalf("BoardSize = %d, want 12", c.BoardSize)
	}
	if _, err := ReadEngineConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
