// Package config holds the overridable numeric limits and algorithm
// allowlists the covenant and identity lifecycles enforce. Defaults match
// the protocol's own constants; a profile YAML can tighten them per
// deployment without a code change.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits bounds covenant construction and verification.
type Limits struct {
	MaxConstraints  int `yaml:"max_constraints"`
	MaxChainDepth   int `yaml:"max_chain_depth"`
	MaxDocumentSize int `yaml:"max_document_size"`
}

// DefaultLimits returns the protocol's baseline limits: 256 constraints, a
// chain depth of 16, and a 1 MiB document size ceiling.
func DefaultLimits() Limits {
	return Limits{
		MaxConstraints:  256,
		MaxChainDepth:   16,
		MaxDocumentSize: 1_048_576,
	}
}

// Profile is a named, loadable bundle of limits and the Ed25519-only
// algorithm allowlist. Additional signing algorithms are not supported by
// this protocol; the allowlist exists so a profile can be rejected outright
// if it names anything else.
type Profile struct {
	Name              string   `yaml:"name"`
	Limits            Limits   `yaml:"limits"`
	AllowedAlgorithms []string `yaml:"allowed_algorithms"`
}

// DefaultProfile returns the baseline profile: default limits, Ed25519 only.
func DefaultProfile() Profile {
	return Profile{
		Name:              "default",
		Limits:            DefaultLimits(),
		AllowedAlgorithms: []string{"ed25519"},
	}
}

// LoadProfile reads a YAML profile from path. Zero-valued limits in the file
// fall back to DefaultLimits so a profile only needs to override what it
// changes.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %q: %w", path, err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("parse profile %q: %w", path, err)
	}

	if profile.Limits.MaxConstraints == 0 {
		profile.Limits.MaxConstraints = DefaultLimits().MaxConstraints
	}
	if profile.Limits.MaxChainDepth == 0 {
		profile.Limits.MaxChainDepth = DefaultLimits().MaxChainDepth
	}
	if profile.Limits.MaxDocumentSize == 0 {
		profile.Limits.MaxDocumentSize = DefaultLimits().MaxDocumentSize
	}
	if len(profile.AllowedAlgorithms) == 0 {
		profile.AllowedAlgorithms = []string{"ed25519"}
	}

	return profile, nil
}

// IsAlgorithmAllowed reports whether alg appears in the profile's allowlist.
func (p Profile) IsAlgorithmAllowed(alg string) bool {
	for _, a := range p.AllowedAlgorithms {
		if a == alg {
			return true
		}
	}
	return false
}
