package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Env holds the RVTEST_* variables
type Env struct {
	Profile  string
	Emulator string
	Corpus   string
}

// LoadEnv loads a dotenv file into the process environment. Variables already
// set in the environment are not overridden. A missing file is ignored unless required.
func LoadEnv(path string, required bool) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ReadEnv reads the RVTEST_* variables from the process environment
func ReadEnv() Env {
	return Env{
		Profile:  os.Getenv(EnvProfile),
		Emulator: os.Getenv(EnvEmulator),
		Corpus:   os.Getenv(EnvCorpus),
	}
}

// ApplyTo copies the non-empty variables onto cfg
func (e Env) ApplyTo(cfg *Config) {
	if e.Emulator != "" {
		cfg.Emulator = e.Emulator
	}
	if e.Corpus != "" {
		cfg.CorpusDir = e.Corpus
	}
}
