package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration for a harness invocation
type Config struct {
	Profile string

	// Emulator under test
	Emulator   string
	ArgShape   string
	Convention string

	// Corpus discovery
	CorpusDir  string
	Suffix     string
	NameFilter string
	PadWidth   int
	LongNames  string

	// Run settings
	MultiMode bool

	// Output settings
	Progress string
	ASCII    bool
	NoColor  bool
	JSONPath string
	Browse   bool
	Verbose  bool
}

// New creates a new Config with defaults and the default profile applied
func New() *Config {
	cfg := &Config{
		Emulator:  DefaultEmulator,
		CorpusDir: DefaultCorpusDir,
		LongNames: DefaultLongNames,
		Progress:  DefaultProgress,
	}
	// The default profile is always present in Profiles
	_ = cfg.ApplyProfile(DefaultProfile)
	return cfg
}

// Sources names the configuration inputs layered over the defaults
type Sources struct {
	ConfigFile     string // YAML file, DefaultConfigFile when empty
	ConfigRequired bool   // Fail if ConfigFile does not exist
	EnvFile        string // Dotenv file, DefaultEnvFile when empty
	EnvRequired    bool   // Fail if EnvFile does not exist
	Profile        string // Explicit profile, wins over the file and environment
}

// Load builds a config from defaults, the selected profile, the YAML file and
// the environment, in increasing order of precedence. Command-line flags are
// applied on top by the caller.
func Load(src Sources) (*Config, error) {
	configFile := src.ConfigFile
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	file, err := LoadFile(configFile, src.ConfigRequired)
	if err != nil {
		return nil, err
	}

	envFile := src.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := LoadEnv(envFile, src.EnvRequired); err != nil {
		return nil, err
	}
	env := ReadEnv()

	profile := DefaultProfile
	switch {
	case src.Profile != "":
		profile = src.Profile
	case env.Profile != "":
		profile = env.Profile
	case file != nil && file.Profile != nil:
		profile = *file.Profile
	}

	cfg := New()
	if err := cfg.ApplyProfile(profile); err != nil {
		return nil, err
	}
	file.ApplyTo(cfg)
	env.ApplyTo(cfg)
	return cfg, nil
}

// GetCorpusPath returns the cleaned corpus directory
func (c *Config) GetCorpusPath() string {
	return filepath.Clean(c.CorpusDir)
}

// GetEmulatorPath returns the emulator path. Relative paths keep their leading
// "./" so that exec does not search PATH for them.
func (c *Config) GetEmulatorPath() string {
	if filepath.IsAbs(c.Emulator) || filepath.Base(c.Emulator) != c.Emulator {
		return c.Emulator
	}
	return "." + string(os.PathSeparator) + c.Emulator
}

// Validate checks enumerated settings and their combinations
func (c *Config) Validate() error {
	var errs []error
	if c.Emulator == "" {
		errs = append(errs, errors.New("emulator path is empty"))
	}
	if c.CorpusDir == "" {
		errs = append(errs, errors.New("corpus directory is empty"))
	}
	if c.PadWidth <= 0 {
		errs = append(errs, fmt.Errorf("pad width must be positive, got %d", c.PadWidth))
	}
	if !oneOf(c.ArgShape, ShapeBare, ShapeTesting, ShapeFlagged) {
		errs = append(errs, fmt.Errorf("unknown argument shape %q", c.ArgShape))
	}
	if !oneOf(c.Convention, ConventionPassOnOne, ConventionPassOnZero) {
		errs = append(errs, fmt.Errorf("unknown exit code convention %q", c.Convention))
	}
	if !oneOf(c.LongNames, LongNamesReject, LongNamesUnpadded) {
		errs = append(errs, fmt.Errorf("unknown long name policy %q", c.LongNames))
	}
	if !oneOf(c.Progress, ProgressAuto, ProgressLine, ProgressLog, ProgressBar) {
		errs = append(errs, fmt.Errorf("unknown progress style %q", c.Progress))
	}
	if c.MultiMode && c.ArgShape != ShapeFlagged {
		errs = append(errs, fmt.Errorf("multi-mode testing needs the %q argument shape, got %q", ShapeFlagged, c.ArgShape))
	}
	return errors.Join(errs...)
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
