// Package config gathers runtime settings from the environment. Command
// line flags override them in the entrypoints.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"raywizard/internal/engine"

	"github.com/spf13/pflag"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Save backends.
const (
	SaveNone  = "none"
	SaveBolt  = "bolt"
	SaveRedis = "redis"
)

// AppName names the data directory.
const AppName = "raywizard"

// Config holds every tunable of both entrypoints.
type Config struct {
	Seed        int64 // 0 derives one from the clock
	Level       int   // starting level, for debugging
	LogLevel    string
	LogFormat   string
	LogFile     string // empty discards logs in local play
	SaveBackend string
	DataDir     string
	RedisAddr   string
	SSHPort     int
	HostKey     string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Level:       1,
		LogLevel:    "info",
		LogFormat:   "text",
		SaveBackend: SaveBolt,
		SSHPort:     2222,
		HostKey:     "host_key",
	}
}

// FromEnv starts from Default and applies the environment.
func FromEnv() (Config, error) {
	c := Default()
	if v, ok := os.LookupEnv("RAYWIZARD_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: RAYWIZARD_SEED=%q", ErrInvalid, v)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("LEVEL"); ok && v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: LEVEL=%q", ErrInvalid, v)
		}
		c.Level = level
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("RAYWIZARD_SAVE"); v != "" {
		c.SaveBackend = v
	}
	if v := os.Getenv("RAYWIZARD_REDIS"); v != "" {
		c.RedisAddr = v
	}
	dir, err := DataDir()
	if err != nil {
		return c, err
	}
	c.DataDir = dir
	return c, nil
}

// Validate reports the first bad setting.
func (c *Config) Validate() error {
	if c.Level < 1 || c.Level > engine.FinalLevel {
		return fmt.Errorf("%w: level %d outside 1..%d", ErrInvalid, c.Level, engine.FinalLevel)
	}
	switch c.SaveBackend {
	case SaveNone:
	case SaveBolt:
		if c.DataDir == "" {
			return fmt.Errorf("%w: bolt saves need a data directory", ErrInvalid)
		}
	case SaveRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%w: redis saves need RAYWIZARD_REDIS", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown save backend %q", ErrInvalid, c.SaveBackend)
	}
	if c.SSHPort < 0 || c.SSHPort > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalid, c.SSHPort)
	}
	return nil
}

// ResolveSeed returns the configured seed, or one derived from now.
func (c *Config) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}

// DataDir returns $XDG_DATA_HOME/raywizard, defaulting to
// ~/.local/share/raywizard.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: data dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}

// BindFlags registers the shared command line flags on fs, defaulting to
// the values already in c.
func BindFlags(fs *pflag.FlagSet, c *Config) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "dungeon seed (0 derives one from the clock)")
	fs.IntVar(&c.Level, "level", c.Level, fmt.Sprintf("starting dungeon level, 1..%d", engine.FinalLevel))
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text or json)")
	fs.StringVar(&c.SaveBackend, "save", c.SaveBackend, "save backend (none, bolt or redis)")
	fs.StringVar(&c.RedisAddr, "redis", c.RedisAddr, "redis address for the redis save backend")
	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "directory for saves and the run log")
}
