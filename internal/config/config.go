package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KindHuman = "human"
	KindAI    = "ai"

	LevelGood  = "good"
	LevelSmart = "smart"

	minPlayers = 2
	maxPlayers = 4
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Log        LogConfig        `mapstructure:"log"`
	Input      InputConfig      `mapstructure:"input"`
	Transcript TranscriptConfig `mapstructure:"transcript"`
	Bots       BotsConfig       `mapstructure:"bots"`
}

type GameConfig struct {
	// Seed drives the shuffle and AI tie-breaks. 0 means seed from the clock.
	Seed    int64          `mapstructure:"seed"`
	Players []PlayerConfig `mapstructure:"players"`
}

type PlayerConfig struct {
	Name  string `mapstructure:"name"`
	Kind  string `mapstructure:"kind"`
	Level string `mapstructure:"level"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type InputConfig struct {
	// Timeout bounds each human prompt. 0 waits forever.
	Timeout time.Duration `mapstructure:"timeout"`
}

type TranscriptConfig struct {
	Path string `mapstructure:"path"`
}

type BotsConfig struct {
	Identities string `mapstructure:"identities"`
}

// DefaultPlayers is one human against three AI seats.
func DefaultPlayers() []PlayerConfig {
	return []PlayerConfig{
		{Kind: KindHuman},
		{Kind: KindAI, Level: LevelGood},
		{Kind: KindAI, Level: LevelSmart},
		{Kind: KindAI, Level: LevelGood},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("input.timeout", "0s")
	v.SetDefault("transcript.path", "")
	v.SetDefault("bots.identities", "")
}

// Load reads the YAML file at path, if any, and applies BIGTWO_* environment
// overrides (BIGTWO_LOG_LEVEL, BIGTWO_GAME_SEED, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BIGTWO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if len(cfg.Game.Players) == 0 {
		cfg.Game.Players = DefaultPlayers()
	}
	for i := range cfg.Game.Players {
		p := &cfg.Game.Players[i]
		p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
		p.Level = strings.ToLower(strings.TrimSpace(p.Level))
		if p.Kind == KindAI && p.Level == "" {
			p.Level = LevelGood
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the seat list and logging options.
func (c *Config) Validate() error {
	n := len(c.Game.Players)
	if n < minPlayers || n > maxPlayers {
		return fmt.Errorf("%w: %d players, want %d..%d", ErrInvalidConfig, n, minPlayers, maxPlayers)
	}
	for i, p := range c.Game.Players {
		switch p.Kind {
		case KindHuman:
		case KindAI:
			if p.Level != LevelGood && p.Level != LevelSmart {
				return fmt.Errorf("%w: player %d has unknown level %q", ErrInvalidConfig, i, p.Level)
			}
		default:
			return fmt.Errorf("%w: player %d has unknown kind %q", ErrInvalidConfig, i, p.Kind)
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Input.Timeout < 0 {
		return fmt.Errorf("%w: negative input timeout", ErrInvalidConfig)
	}
	return nil
}
