package fillrush

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadConfigEnv.
const (
	EnvSpawnInterval = "FILLRUSH_SPAWN_INTERVAL" // duration, e.g. "250ms"
	EnvEmitterTTL    = "FILLRUSH_EMITTER_TTL"    // duration
	EnvSpeed         = "FILLRUSH_SPEED"          // float
	EnvTurning       = "FILLRUSH_TURNING"        // float
	EnvJitter        = "FILLRUSH_JITTER"         // float
	EnvFillStep      = "FILLRUSH_FILL_STEP"      // int
	EnvVolumeCurve   = "FILLRUSH_VOLUME_CURVE"   // "linear" or "clamped"
	EnvDecay         = "FILLRUSH_DECAY"          // bool
	EnvPauseHalts    = "FILLRUSH_PAUSE_HALTS"    // bool
)

// LoadConfigEnv returns DefaultGameConfig with overrides from the given
// dotenv files and the process environment. Process variables take
// precedence over file values. Missing files are ignored; with no paths,
// ".env" in the working directory is tried.
func LoadConfigEnv(paths ...string) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	vals := map[string]string{}
	for _, p := range paths {
		m, err := godotenv.Read(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("load config %s: %w", p, err)
		}
		for k, v := range m {
			vals[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}

	var err error
	if v, ok := lookup(EnvSpawnInterval); ok {
		if cfg.SpawnInterval, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvSpawnInterval, err)
		}
	}
	if v, ok := lookup(EnvEmitterTTL); ok {
		if cfg.Motion.TTL, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvEmitterTTL, err)
		}
	}
	if v, ok := lookup(EnvSpeed); ok {
		if cfg.Motion.Speed, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvSpeed, err)
		}
	}
	if v, ok := lookup(EnvTurning); ok {
		if cfg.Motion.TurningStrength, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvTurning, err)
		}
	}
	if v, ok := lookup(EnvJitter); ok {
		if cfg.Motion.Jitter, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvJitter, err)
		}
	}
	if v, ok := lookup(EnvFillStep); ok {
		if cfg.Bucket.FillStep, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvFillStep, err)
		}
	}
	if v, ok := lookup(EnvVolumeCurve); ok {
		switch v {
		case "linear":
			cfg.Bucket.VolumeCurve = VolumeLinear
		case "clamped":
			cfg.Bucket.VolumeCurve = VolumeClampedToOne
		default:
			return cfg, fmt.Errorf("load config %s: unknown curve %q", EnvVolumeCurve, v)
		}
	}
	if v, ok := lookup(EnvDecay); ok {
		if cfg.Bucket.DecayEnabled, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvDecay, err)
		}
	}
	if v, ok := lookup(EnvPauseHalts); ok {
		if cfg.PauseHaltsSimulation, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", EnvPauseHalts, err)
		}
	}
	return cfg, nil
}
