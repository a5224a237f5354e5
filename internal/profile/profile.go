// Package profile loads named engine presets (aspect ratio, floors, handle
// radius) from a YAML file.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frudas24/boxclip/internal/clipper"
	"github.com/frudas24/boxclip/internal/geom"
	"gopkg.in/yaml.v3"
)

// Profile is a named preset applied over the base engine configuration.
// Zero sizes and radius keep the base value; an absent rotation keeps the
// base rotation while an explicit 0 resets it.
type Profile struct {
	Name         string  `yaml:"name" json:"name"`
	AspectRatio  float64 `yaml:"ratio,omitempty" json:"ratio"`
	MinWidth     float64 `yaml:"minWidth,omitempty" json:"minWidth,omitempty"`
	MinHeight    float64 `yaml:"minHeight,omitempty" json:"minHeight,omitempty"`
	HandleRadius float64 `yaml:"handleRadius,omitempty" json:"handleRadius,omitempty"`
	Rotation     *int    `yaml:"rotation,omitempty" json:"rotation,omitempty"`
}

type file struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads profiles from disk. Missing files return no profiles.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	seen := make(map[string]bool, len(f.Profiles))
	for i, p := range f.Profiles {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("profile %d: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("profile %q defined twice", name)
		}
		seen[name] = true
		f.Profiles[i].Name = name
	}
	return f.Profiles, nil
}

// Save writes profiles to disk, creating parent directories as needed.
func Save(path string, list []Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(file{Profiles: list})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Find returns the profile with the given name.
func Find(list []Profile, name string) (Profile, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Apply overlays p on base and validates the result. The aspect ratio is
// always taken from the profile, so a profile without one is free-form.
func (p Profile) Apply(base clipper.Config) (clipper.Config, error) {
	cfg := base
	cfg.AspectRatio = p.AspectRatio
	if p.MinWidth != 0 {
		cfg.MinWidth = p.MinWidth
	}
	if p.MinHeight != 0 {
		cfg.MinHeight = p.MinHeight
	}
	if p.HandleRadius != 0 {
		cfg.HandleRadius = p.HandleRadius
	}
	if p.Rotation != nil {
		rot, err := geom.ParseRotation(*p.Rotation)
		if err != nil {
			return base, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		cfg.Rotation = rot
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return cfg, nil
}
