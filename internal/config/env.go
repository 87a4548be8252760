package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "HEARTS_CONFIG"
	EnvSeed       = "HEARTS_SEED"
	EnvWidth      = "HEARTS_WIDTH"
	EnvHeight     = "HEARTS_HEIGHT"
)

// LoadEnv loads variables from the given .env files (".env" when none are
// given). A missing file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	log.Println("Loaded environment overrides")
	return nil
}

// FromEnv builds settings from the file named by HEARTS_CONFIG, or the defaults
// when it is unset, then applies the numeric overrides.
func FromEnv() (*Settings, error) {
	var s *Settings
	if path := os.Getenv(EnvConfigPath); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded settings from %s", path)
		s = loaded
	} else {
		d := Default()
		s = &d
	}

	if err := overrideUint(EnvSeed, &s.Seed); err != nil {
		return nil, err
	}
	if err := overrideInt(EnvWidth, &s.Window.Width); err != nil {
		return nil, err
	}
	if err := overrideInt(EnvHeight, &s.Window.Height); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func overrideInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidSettings, key, v)
	}
	*dst = n
	return nil
}

func overrideUint(key string, dst *uint64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidSettings, key, v)
	}
	*dst = n
	return nil
}
