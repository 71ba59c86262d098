package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/fleet"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/states"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/targeting"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/taunts"
)

// Config holds all configuration for the application
type Config struct {
	Battle      BattleConfig      `mapstructure:"battle"`
	UI          UIConfig          `mapstructure:"ui"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// BattleConfig holds turn engine settings. Board size and fleet are fixed.
type BattleConfig struct {
	ProjectileDelay      time.Duration `mapstructure:"projectile_delay"`
	DefeatDelay          time.Duration `mapstructure:"defeat_delay"`
	CheatProbability     float64       `mapstructure:"cheat_probability"`
	TauntCapacity        int           `mapstructure:"taunt_capacity"`
	MaxPlacementAttempts int           `mapstructure:"max_placement_attempts"`
	// Seed for the battle RNG; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Dialog DialogConfig `mapstructure:"dialog"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}

// DialogConfig holds taunt dialog box settings
type DialogConfig struct {
	WrapWidth int `mapstructure:"wrap_width"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging    bool `mapstructure:"verbose_logging"`
	ShowOpponentShips bool `mapstructure:"show_opponent_ships"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults mirrors the engine's own defaults so an empty config
// plays the standard game.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("battle.projectile_delay", states.DefaultProjectileDelay)
	v.SetDefault("battle.defeat_delay", states.DefaultDefeatDelay)
	v.SetDefault("battle.cheat_probability", targeting.DefaultCheatProbability)
	v.SetDefault("battle.taunt_capacity", taunts.DefaultCapacity)
	v.SetDefault("battle.max_placement_attempts", fleet.DefaultMaxAttempts)
	v.SetDefault("battle.seed", 0)

	// UI defaults
	v.SetDefault("ui.window.width", 800)
	v.SetDefault("ui.window.height", 600)
	v.SetDefault("ui.window.title", "Battleships... against a unicorn")
	v.SetDefault("ui.window.tps", 30)
	v.SetDefault("ui.dialog.wrap_width", 60)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_opponent_ships", false)
}

// Init initializes the configuration system
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/unicorn-battleships")
	}

	// UNI_BATTLE_SEED overrides battle.seed and so on
	v.SetEnvPrefix("UNI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file, searched for or named, falls back to defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the current configuration. Init must have been called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call config.Init() first")
	}
	return cfg
}

// Set sets a configuration value at runtime and refreshes the typed config
func Set(key string, value interface{}) {
	v.Set(key, value)
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Errorf("unable to decode config after setting %s: %w", key, err))
	}
}

// ConfigFilePath returns the file the configuration was read from, if any
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives
// the refreshed config; a change that fails validation is ignored.
func WatchConfig(onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			return
		}
		if err := Validate(next); err != nil {
			return
		}
		*cfg = *next
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}

// Validate checks the configuration for invalid values
func Validate(c *Config) error {
	if c.Battle.ProjectileDelay < 0 {
		return fmt.Errorf("battle.projectile_delay must be non-negative")
	}
	if c.Battle.DefeatDelay < 0 {
		return fmt.Errorf("battle.defeat_delay must be non-negative")
	}
	if c.Battle.CheatProbability < 0 || c.Battle.CheatProbability > 1 {
		return fmt.Errorf("battle.cheat_probability must be between 0 and 1")
	}
	if c.Battle.TauntCapacity < 1 {
		return fmt.Errorf("battle.taunt_capacity must be at least 1")
	}
	if c.Battle.MaxPlacementAttempts < 1 {
		return fmt.Errorf("battle.max_placement_attempts must be at least 1")
	}

	if c.UI.Window.Width < 800 || c.UI.Window.Height < 600 {
		return fmt.Errorf("ui.window must be at least 800x600 to fit both boards")
	}
	if c.UI.Window.TPS < 1 {
		return fmt.Errorf("ui.window.tps must be positive")
	}
	if c.UI.Dialog.WrapWidth < 10 {
		return fmt.Errorf("ui.dialog.wrap_width must be at least 10")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}
