package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const envPrefix = "MINES"

var ErrUnknownPreset = errors.New("unknown preset")

type Config struct {
	Params      mines.GameParams
	Seed        uint64
	Development bool
	LogFile     string
	LogLevel    slog.Level
	Clock       time.Duration
}

func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("params", c.Params.String()),
		slog.Uint64("seed", c.Seed),
		slog.Bool("development", c.Development),
		slog.String("log file", c.LogFile),
		slog.String("log level", c.LogLevel.String()),
		slog.Duration("clock", c.Clock),
	)
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("mines", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file path")
	fs.StringP("preset", "p", "beginner", "difficulty: beginner, intermediate or expert")
	fs.StringP("game", "g", "", "board as width:height:mines, overrides preset")
	fs.Uint64("seed", 0, "mine placement seed, 0 picks one at random")
	fs.Bool("development", false, "log to stderr at debug level")
	fs.String("log-file", "mines.log", "log file path")
	fs.String("log-level", "info", "log level")
	fs.Duration("clock", time.Second, "status refresh interval")
	return fs
}

// Load reads configuration from command line arguments, MINES_* environment
// variables and an optional config file, in that order of precedence.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	params, err := resolveParams(v.GetString("game"), v.GetString("preset"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Params:      params,
		Seed:        v.GetUint64("seed"),
		Development: v.GetBool("development") || Development(),
		LogFile:     v.GetString("log-file"),
		Clock:       v.GetDuration("clock"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Development {
		cfg.LogLevel = slog.LevelDebug
	}
	if cfg.Clock <= 0 {
		return nil, fmt.Errorf("clock interval must be positive, got %s", cfg.Clock)
	}

	return cfg, nil
}

func resolveParams(game, preset string) (mines.GameParams, error) {
	if game != "" {
		params, err := mines.ParseSeed(game)
		if err != nil {
			return mines.GameParams{}, fmt.Errorf("invalid game %q: %w", game, err)
		}
		return *params, nil
	}
	params, ok := mines.PresetByName(preset)
	if !ok {
		return mines.GameParams{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return params, nil
}
