package config

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Profiles are named starting points layered under the config file.
var Profiles = map[string]*Config{
	"classroom": {
		Preset: "sample", SortBy: "name", SearchBy: "name", SpeedMs: 2000,
	},
	"stability": {
		Preset: "duplicates", SortBy: "category", SearchBy: "category", SpeedMs: 1000,
	},
	"stress": {
		Preset: "large", SortBy: "price", SearchBy: "name", SpeedMs: 250,
	},
}

// ApplyProfile copies the profile's dataset, field and speed choices onto c.
func (c *Config) ApplyProfile(name string) error {
	p, ok := Profiles[name]
	if !ok {
		return errors.Wrapf(ErrUnknownProfile, "%q (available: %v)", name, ListProfiles())
	}
	c.Preset = p.Preset
	c.SortBy = p.SortBy
	c.SearchBy = p.SearchBy
	c.SpeedMs = p.SpeedMs
	return nil
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
