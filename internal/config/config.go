// Package config resolves startup options from a dotenv file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvSelect     = "KYP_SELECT"
	EnvStylesheet = "KYP_STYLESHEET"
)

// DefaultEnvFile is read when present; its absence is not an error.
const DefaultEnvFile = ".env"

// Config holds the startup options.
type Config struct {
	Select     string // Pin id to show on launch
	Stylesheet string // Stylesheet override path, empty for the built-in one
	EnvFile    string
}

// Load reads options from envFile and the process environment. Variables
// already set in the environment take precedence over the file.
func Load(envFile string) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, os.ErrNotExist) && envFile == DefaultEnvFile:
			log.Printf("No %s file found, using system environment", envFile)
		default:
			return Config{}, fmt.Errorf("read env file %s: %w", envFile, err)
		}
	}

	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	}

	return Config{
		Select:     get(EnvSelect),
		Stylesheet: get(EnvStylesheet),
		EnvFile:    envFile,
	}, nil
}

// Override replaces fields with non-empty values from flags.
func (c Config) Override(selectID, stylesheet string) Config {
	if selectID != "" {
		c.Select = selectID
	}
	if stylesheet != "" {
		c.Stylesheet = stylesheet
	}
	return c
}
