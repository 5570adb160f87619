// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCropNotFound is returned by ByName for unknown crop names.
var ErrCropNotFound = errors.New("crop not found")

// Catalog is an immutable crop profile registry. Construct it once at
// startup; afterwards all methods are safe for concurrent use without
// locking.
type Catalog struct {
	profiles []CropProfile
	byName   map[string]int
}

// New builds a catalog from the given profiles. Names are normalized
// to lowercase and must be unique and non-empty.
func New(profiles []CropProfile) (*Catalog, error) {
	c := &Catalog{
		profiles: make([]CropProfile, 0, len(profiles)),
		byName:   make(map[string]int, len(profiles)),
	}
	for _, p := range profiles {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			return nil, fmt.Errorf("crop profile with empty name")
		}
		if _, exists := c.byName[name]; exists {
			return nil, fmt.Errorf("duplicate crop profile %q", name)
		}
		p.Name = name
		c.byName[name] = len(c.profiles)
		c.profiles = append(c.profiles, p)
	}
	return c, nil
}

// Default builds the catalog from the built-in planning table.
func Default() *Catalog {
	c, err := New(defaultProfiles())
	if err != nil {
		// The built-in table is static; a construction failure is a
		// programming error.
		panic(err)
	}
	return c
}

// All returns every profile in catalog order. The returned slice is a
// copy; callers may not mutate catalog state through it.
func (c *Catalog) All() []CropProfile {
	out := make([]CropProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// ByName looks up a profile by crop name, case-insensitively.
// Returns ErrCropNotFound for unknown names.
func (c *Catalog) ByName(name string) (CropProfile, error) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CropProfile{}, fmt.Errorf("%w: %q", ErrCropNotFound, name)
	}
	return c.profiles[idx], nil
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.profiles)
}
