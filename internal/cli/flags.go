package cli

import (
	"github.com/spf13/pflag"

	"rvtest/internal/config"
)

// Flag names shared by the commands
const (
	FlagConfig     = "config"
	FlagEnvFile    = "env-file"
	FlagProfile    = "profile"
	FlagVerbose    = "verbose"
	FlagNoColor    = "no-color"
	FlagEmulator   = "emulator"
	FlagShape      = "shape"
	FlagConvention = "convention"
	FlagSuffix     = "suffix"
	FlagAllFiles   = "all-files"
	FlagWidth      = "width"
	FlagLongNames  = "long-names"
	FlagMultiMode  = "multi-mode"
	FlagFilter     = "filter"
	FlagProgress   = "progress"
	FlagASCII      = "ascii"
	FlagJSON       = "json"
	FlagBrowse     = "browse"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	EnvFile    string
	Profile    string
	Verbose    bool
	NoColor    bool

	Emulator   string
	ArgShape   string
	Convention string

	Suffix     string
	AllFiles   bool
	Width      int
	LongNames  string
	MultiMode  bool
	NameFilter string

	Progress string
	ASCII    bool
	JSONPath string
	Browse   bool
}

// Sources returns the config layers selected on the command line. Files
// named explicitly must exist.
func (f *Flags) Sources(fs *pflag.FlagSet) config.Sources {
	return config.Sources{
		ConfigFile:     f.ConfigFile,
		ConfigRequired: fs.Changed(FlagConfig),
		EnvFile:        f.EnvFile,
		EnvRequired:    fs.Changed(FlagEnvFile),
		Profile:        f.Profile,
	}
}

// ApplyTo overrides cfg with every flag the user set explicitly, so that
// flag defaults never mask values from the config file or environment.
func (f *Flags) ApplyTo(fs *pflag.FlagSet, cfg *config.Config) {
	changed := func(name string) bool {
		flag := fs.Lookup(name)
		return flag != nil && flag.Changed
	}

	if changed(FlagVerbose) {
		cfg.Verbose = f.Verbose
	}
	if changed(FlagNoColor) {
		cfg.NoColor = f.NoColor
	}
	if changed(FlagEmulator) {
		cfg.Emulator = f.Emulator
	}
	if changed(FlagShape) {
		cfg.ArgShape = f.ArgShape
	}
	if changed(FlagConvention) {
		cfg.Convention = f.Convention
	}
	if changed(FlagSuffix) {
		cfg.Suffix = f.Suffix
	}
	if changed(FlagAllFiles) && f.AllFiles {
		cfg.Suffix = ""
	}
	if changed(FlagWidth) {
		cfg.PadWidth = f.Width
	}
	if changed(FlagLongNames) {
		cfg.LongNames = f.LongNames
	}
	if changed(FlagMultiMode) {
		cfg.MultiMode = f.MultiMode
	}
	if changed(FlagFilter) {
		cfg.NameFilter = f.NameFilter
	}
	if changed(FlagProgress) {
		cfg.Progress = f.Progress
	}
	if changed(FlagASCII) {
		cfg.ASCII = f.ASCII
	}
	if changed(FlagJSON) {
		cfg.JSONPath = f.JSONPath
	}
	if changed(FlagBrowse) {
		cfg.Browse = f.Browse
	}
}
