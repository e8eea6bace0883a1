package config

import (
	"fmt"
	"sort"
)

// Profile names
const (
	ProfileLegacy  = "legacy"
	ProfileTesting = "testing"
	ProfileCurrent = "current"
)

// Profile bundles the settings that changed together between harness generations
type Profile struct {
	ArgShape   string
	Convention string
	PadWidth   int
	Suffix     string // Empty means every regular file is a test
}

// Profiles holds the known harness generations
var Profiles = map[string]Profile{
	ProfileLegacy: {
		ArgShape:   ShapeBare,
		Convention: ConventionPassOnOne,
		PadWidth:   20,
	},
	ProfileTesting: {
		ArgShape:   ShapeTesting,
		Convention: ConventionPassOnOne,
		PadWidth:   20,
	},
	ProfileCurrent: {
		ArgShape:   ShapeFlagged,
		Convention: ConventionPassOnZero,
		PadWidth:   30,
		Suffix:     "bin",
	},
}

// ProfileNames returns the known profile names in sorted order
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyProfile overwrites the generation-specific settings with the named profile
func (c *Config) ApplyProfile(name string) error {
	p, ok := Profiles[name]
	if !ok {
		return fmt.Errorf("unknown profile %q (known: %v)", name, ProfileNames())
	}
	c.Profile = name
	c.ArgShape = p.ArgShape
	c.Convention = p.Convention
	c.PadWidth = p.PadWidth
	c.Suffix = p.Suffix
	return nil
}
