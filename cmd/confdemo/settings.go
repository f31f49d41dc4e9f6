package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings configures the demo itself, as opposed to the Preferences it edits.
type Settings struct {
	Window struct {
		Width      int32 `mapstructure:"width"`
		Height     int32 `mapstructure:"height"`
		Fullscreen bool  `mapstructure:"fullscreen"`
	} `mapstructure:"window"`

	Theme struct {
		Style string `mapstructure:"style"` // faithful, modern or custom
		File  string `mapstructure:"file"`  // TOML palette; implies custom
	} `mapstructure:"theme"`

	Locale struct {
		Language string `mapstructure:"language"`
		File     string `mapstructure:"file"` // Extra message catalog
	} `mapstructure:"locale"`

	Font struct {
		Path string `mapstructure:"path"`
		Size int    `mapstructure:"size"`
	} `mapstructure:"font"`

	Log struct {
		Level string `mapstructure:"level"`
		Path  string `mapstructure:"path"`
	} `mapstructure:"log"`

	Store struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"store"`

	PowerButton string `mapstructure:"power_button"`
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "confdemo")
}

// loadSettings reads defaults, then the TOML config file, then CONFDEMO_*
// environment variables, then command line flags.
func loadSettings(args []string) (Settings, error) {
	flags := pflag.NewFlagSet("confdemo", pflag.ContinueOnError)
	cfgPath := flags.String("config", os.Getenv("CONFDEMO_CONFIG"), "config file")
	flags.String("lang", "", "interface language, e.g. de or en-US")
	flags.String("theme", "", "theme style: faithful, modern or custom")
	if err := flags.Parse(args); err != nil {
		return Settings{}, err
	}

	v := viper.New()

	v.SetDefault("window.width", 854)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("theme.style", "modern")
	v.SetDefault("theme.file", "")
	v.SetDefault("locale.language", "en")
	v.SetDefault("locale.file", "")
	v.SetDefault("font.path", "")
	v.SetDefault("font.size", 16)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("store.path", filepath.Join(configDir(), "preferences.toml"))
	v.SetDefault("power_button", "")

	v.SetConfigType("toml")
	if *cfgPath != "" {
		v.SetConfigFile(*cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CONFDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag("locale.language", flags.Lookup("lang")); err != nil {
		return Settings{}, err
	}
	if err := v.BindPFlag("theme.style", flags.Lookup("theme")); err != nil {
		return Settings{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *cfgPath != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}
