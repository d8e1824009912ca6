package booker

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/squaredcircle/booker/booker/database"
	"github.com/squaredcircle/booker/booker/session"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig         `toml:"log"`
	Bot    BotConfig         `toml:"bot"`
	DB     database.DBConfig `toml:"db"`
	Game   GameConfig        `toml:"game"`
	Spaces struct {
		Key    string `toml:"key"`
		Secret string `toml:"secret"`
		Region string `toml:"region"`
		Bucket string `toml:"bucket"`
	} `toml:"spaces"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// GameConfig tunes the session timers; zero values fall back to the
// engine defaults.
type GameConfig struct {
	EmailIntervalSeconds int     `toml:"email_interval_seconds"`
	EmailChance          float64 `toml:"email_chance"`
	AutosaveMinutes      int     `toml:"autosave_minutes"`
	AutosaveSlot         int     `toml:"autosave_slot"`
	Seed                 int64   `toml:"seed"`
}

// SessionConfig resolves the tuning section against the defaults.
func (c GameConfig) SessionConfig() session.Config {
	cfg := session.DefaultConfig()
	if c.EmailIntervalSeconds > 0 {
		cfg.EmailInterval = time.Duration(c.EmailIntervalSeconds) * time.Second
	}
	if c.EmailChance > 0 {
		cfg.EmailChance = c.EmailChance
	}
	if c.AutosaveMinutes > 0 {
		cfg.AutosaveEvery = time.Duration(c.AutosaveMinutes) * time.Minute
	}
	if c.AutosaveSlot > 0 {
		cfg.AutosaveSlot = c.AutosaveSlot
	}
	return cfg
}
