package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/xyproto/randomstring"
	"gopkg.in/yaml.v3"
)

// Warning is something Load fell back on. Load runs before logging is set
// up, so the caller logs these once it is.
type Warning struct {
	Message string
	Attrs   []any
}

func (w Warning) Log() {
	slog.Warn(w.Message, w.Attrs...)
}

// Load builds the configuration in layers: defaults, then the YAML file at
// path, then the dotenv file at envPath and the process environment. Empty
// paths and missing files are skipped.
func Load(path, envPath string) (Config, []Warning, error) {
	cfg := Default()
	var warnings []Warning

	if path != "" {
		found, err := loadFile(path, &cfg)
		if err != nil {
			return cfg, warnings, err
		}
		if !found {
			warnings = append(warnings, Warning{"Config file not found, using defaults", []any{"path", path}})
		}
	}

	if envPath != "" {
		// Variables already set in the environment take precedence.
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, warnings, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, warnings, err
	}

	if cfg.Name == "" {
		cfg.Name = randomstring.EnglishFrequencyString(NameLength)
		warnings = append(warnings, Warning{"No simulation name provided, generated one", []any{"name", cfg.Name}})
	}
	return cfg, warnings, cfg.Validate()
}

// loadFile decodes path into cfg. A missing file is not an error; found
// reports whether it existed.
func loadFile(path string, cfg *Config) (found bool, err error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return true, fmt.Errorf("decode config %s: %w", path, err)
	}
	return true, nil
}

// applyEnv overrides fields from LIFTSIM_* variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error
	setInt := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = d
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	setString("NAME", &cfg.Name)
	setInt("ELEVATOR_COUNT", &cfg.ElevatorCount)
	setInt("FLOOR_COUNT", &cfg.FloorCount)
	setInt("ELEVATOR_CAPACITY", &cfg.DefaultElevatorCapacity)
	setDuration("TICK_INTERVAL", &cfg.TickInterval)
	setDuration("REQUEST_INTERVAL", &cfg.RequestInterval)
	setString("LISTEN_ADDR", &cfg.ListenAddr)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("LOG_FILE", &cfg.LogFile)
	if v, ok := lookup(EnvPrefix + "AUTO_START"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sAUTO_START: %w", EnvPrefix, err))
		} else {
			cfg.AutoStart = b
		}
	}
	return errors.Join(errs...)
}
