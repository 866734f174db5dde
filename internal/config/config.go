// Package config holds the seed parameters for a generation run: the world
// profile, its defaults, yaml loading and validation.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/ringbolt60/starch2/internal/world"
)

// Profile is the seed-parameter set for one world. Zero-valued numeric
// fields fall back to their defaults when the profile is applied.
type Profile struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // lone | orbited | satellite

	Mass            float64 `yaml:"mass"`
	CompanionMass   float64 `yaml:"companion_mass"`
	PrimaryDistance float64 `yaml:"primary_distance"`
	StarMass        float64 `yaml:"star_mass"`
	StarDistance    float64 `yaml:"star_distance"`
	StarSpectrum    string  `yaml:"star_spectrum"`
	Luminosity      float64 `yaml:"luminosity"`
	Age             float64 `yaml:"age"`
	Eccentricity    float64 `yaml:"eccentricity"`
	Density         float64 `yaml:"density"`
	Metallicity     float64 `yaml:"metallicity"`

	OutsideIceLine      bool `yaml:"outside_ice_line"`
	GrandTack           bool `yaml:"grand_tack"`
	OortCloud           bool `yaml:"oort_cloud"`
	GreenHouse          bool `yaml:"green_house"`
	RockySatOfGasGiant  bool `yaml:"rocky_sat_of_gas_giant"`
	OrbitalTidalHeating bool `yaml:"orbital_tidal_heating"`

	Seed int64 `yaml:"seed"`
}

// Default mirrors the Earth-Luna reference system.
func Default() *Profile {
	return &Profile{
		Name:            "DEFAULT",
		Type:            "orbited",
		Mass:            1.0,
		CompanionMass:   0.0123,
		PrimaryDistance: 384400,
		StarMass:        1.0,
		StarDistance:    1.0,
		StarSpectrum:    "G2",
		Luminosity:      1.0,
		Age:             4.568,
		Eccentricity:    0.07,
		Density:         1.0,
		Metallicity:     1.0,
	}
}

func Load(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := Default()
	if err := yaml.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

var spectrumPattern = regexp.MustCompile(`^([AGKM][0-9]|BD)$`)

// Validate rejects non-physical seed parameters.
func (p *Profile) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"mass", p.Mass},
		{"companion mass", p.CompanionMass},
		{"primary distance", p.PrimaryDistance},
		{"star mass", p.StarMass},
		{"star distance", p.StarDistance},
		{"luminosity", p.Luminosity},
		{"age", p.Age},
		{"density", p.Density},
		{"metallicity", p.Metallicity},
	}
	for _, f := range positives {
		if f.value <= 0 {
			return fmt.Errorf("%s: \"%v\" should be a positive float", f.name, f.value)
		}
	}
	if p.Eccentricity < 0 || p.Eccentricity >= 1 {
		return fmt.Errorf("eccentricity: \"%v\" should be in [0, 1)", p.Eccentricity)
	}
	switch p.Type {
	case "lone", "orbited", "satellite":
	default:
		return fmt.Errorf("type: %q should be lone, orbited or satellite", p.Type)
	}
	if !spectrumPattern.MatchString(p.StarSpectrum) {
		return fmt.Errorf("star spectrum: %q should match [AGKM][0-9] or BD", p.StarSpectrum)
	}
	return nil
}

// Build turns a validated profile into the seed world record.
func (p *Profile) Build() (*world.World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w := world.New()
	w.Name = p.Name
	switch p.Type {
	case "lone":
		w.Type = world.Lone
	case "orbited":
		w.Type = world.Orbited
	case "satellite":
		w.Type = world.Satellite
	}
	w.Mass = p.Mass
	w.CompanionMass = p.CompanionMass
	w.PrimaryDistance = p.PrimaryDistance
	w.StarMass = p.StarMass
	w.StarDistance = p.StarDistance
	w.StarSpectrum = p.StarSpectrum
	w.Luminosity = p.Luminosity
	w.Age = p.Age
	w.Eccentricity = p.Eccentricity
	w.Density = p.Density
	w.Metallicity = p.Metallicity
	w.OutsideIceLine = p.OutsideIceLine
	w.GrandTack = p.GrandTack
	w.OortCloud = p.OortCloud
	w.GreenHouse = p.GreenHouse
	w.RockySatOfGasGiant = p.RockySatOfGasGiant
	w.OrbitalTidalHeating = p.OrbitalTidalHeating
	return w, nil
}
