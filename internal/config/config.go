package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:"ultimate-tictactoe.log"`
	Players  Players `yaml:"players"`
	UI       UI      `yaml:"ui"`
}

type Players struct {
	MarkA string `yaml:"mark-a" env:"PLAYER_A" env-default:"Player 1"`
	MarkB string `yaml:"mark-b" env:"PLAYER_B" env-default:"Player 2"`
}

type UI struct {
	Mouse  bool   `yaml:"mouse" env:"UI_MOUSE"`
	Colors Colors `yaml:"colors"`
}

// Colors are lipgloss colors: ANSI numbers ("205") or hex ("#ff5f87").
type Colors struct {
	MarkA  string `yaml:"mark-a" env-default:"205"`
	MarkB  string `yaml:"mark-b" env-default:"39"`
	Active string `yaml:"active" env-default:"42"`
	Cursor string `yaml:"cursor" env-default:"226"`
	Dim    string `yaml:"dim" env-default:"240"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
