package fillrush

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfigEnvDefaults(t *testing.T) {
	cfg, err := LoadConfigEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
	def := DefaultGameConfig()
	if cfg.SpawnInterval != def.SpawnInterval || cfg.Motion.Speed != def.Motion.Speed {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	p := writeEnv(t, `
FILLRUSH_SPAWN_INTERVAL=500ms
FILLRUSH_EMITTER_TTL=2s
FILLRUSH_SPEED=45.5
FILLRUSH_TURNING=2
FILLRUSH_JITTER=10
FILLRUSH_FILL_STEP=20
FILLRUSH_VOLUME_CURVE=clamped
FILLRUSH_DECAY=false
FILLRUSH_PAUSE_HALTS=true
`)
	cfg, err := LoadConfigEnv(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SpawnInterval != 500*time.Millisecond {
		t.Errorf("SpawnInterval = %v", cfg.SpawnInterval)
	}
	if cfg.Motion.TTL != 2*time.Second {
		t.Errorf("TTL = %v", cfg.Motion.TTL)
	}
	if cfg.Motion.Speed != 45.5 || cfg.Motion.TurningStrength != 2 || cfg.Motion.Jitter != 10 {
		t.Errorf("motion = %+v", cfg.Motion)
	}
	if cfg.Bucket.FillStep != 20 || cfg.Bucket.VolumeCurve != VolumeClampedToOne || cfg.Bucket.DecayEnabled {
		t.Errorf("bucket = %+v", cfg.Bucket)
	}
	if !cfg.PauseHaltsSimulation {
		t.Error("PauseHaltsSimulation should be true")
	}
}

func TestLoadConfigEnvProcessOverridesFile(t *testing.T) {
	p := writeEnv(t, "FILLRUSH_FILL_STEP=20\n")
	t.Setenv(EnvFillStep, "5")
	cfg, err := LoadConfigEnv(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bucket.FillStep != 5 {
		t.Errorf("FillStep = %d, want 5", cfg.Bucket.FillStep)
	}
}

func TestLoadConfigEnvInvalid(t *testing.T) {
	cases := []string{
		"FILLRUSH_SPAWN_INTERVAL=soon\n",
		"FILLRUSH_SPEED=fast\n",
		"FILLRUSH_FILL_STEP=1.5\n",
		"FILLRUSH_VOLUME_CURVE=log\n",
		"FILLRUSH_DECAY=maybe\n",
	}
	for _, c := range cases {
		if _, err := LoadConfigEnv(writeEnv(t, c)); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}
