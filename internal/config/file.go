package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the .rvtest.yaml file. Nil fields were not set.
type FileConfig struct {
	Profile    *string `yaml:"profile"`
	Emulator   *string `yaml:"emulator"`
	Corpus     *string `yaml:"corpus"`
	Suffix     *string `yaml:"suffix"`
	Width      *int    `yaml:"width"`
	LongNames  *string `yaml:"long_names"`
	Convention *string `yaml:"convention"`
	Shape      *string `yaml:"shape"`
	MultiMode  *bool   `yaml:"multi_mode"`
	Progress   *string `yaml:"progress"`
	ASCII      *bool   `yaml:"ascii"`
	NoColor    *bool   `yaml:"no_color"`
}

// LoadFile reads a YAML config file. A missing file yields nil unless required.
func LoadFile(path string, required bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyTo copies every set field onto cfg. The profile is not applied here.
func (fc *FileConfig) ApplyTo(cfg *Config) {
	if fc == nil {
		return
	}
	setString(&cfg.Emulator, fc.Emulator)
	setString(&cfg.CorpusDir, fc.Corpus)
	setString(&cfg.Suffix, fc.Suffix)
	setString(&cfg.LongNames, fc.LongNames)
	setString(&cfg.Convention, fc.Convention)
	setString(&cfg.ArgShape, fc.Shape)
	setString(&cfg.Progress, fc.Progress)
	if fc.Width != nil {
		cfg.PadWidth = *fc.Width
	}
	if fc.MultiMode != nil {
		cfg.MultiMode = *fc.MultiMode
	}
	if fc.ASCII != nil {
		cfg.ASCII = *fc.ASCII
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
