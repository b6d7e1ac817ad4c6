package tolerance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile carries the per-check tolerances for one inspection class. All
// tolerances are inches; the rate tolerance applies per reference distance.
type Profile struct {
	Name                string  `yaml:"name"`
	SpanTolIn           float64 `yaml:"span_tol_in"`
	StraightnessTolIn   float64 `yaml:"straightness_tol_in"`
	ElevationTolIn      float64 `yaml:"elevation_tol_in"`
	CrossLevelTolIn     float64 `yaml:"cross_level_tol_in"`
	RateTolIn           float64 `yaml:"rate_tol_in"`
	ReferenceDistanceFt float64 `yaml:"reference_distance_ft"`
	StationSpacingFt    float64 `yaml:"station_spacing_ft"`
	// Reference is the citation printed on report rows (standard + table).
	Reference string `yaml:"reference"`
}

// ProfileSet is the top-level structure for a profiles YAML file.
type ProfileSet struct {
	Profiles []Profile `yaml:"profiles"`
}

// DefaultProfile returns the CMAA Class A-D tolerances used when no profiles
// file is supplied.
func DefaultProfile() Profile {
	return Profile{
		Name:                "CMAA Class A-D",
		SpanTolIn:           0.1875,
		StraightnessTolIn:   0.375,
		ElevationTolIn:      0.25,
		CrossLevelTolIn:     0.25,
		RateTolIn:           0.25,
		ReferenceDistanceFt: 20,
		StationSpacingFt:    20,
		Reference:           "CMAA 70 / AIST TR-13",
	}
}

// LoadProfiles reads and parses a profiles YAML file.
func LoadProfiles(path string) (*ProfileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	var ps ProfileSet
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	if len(ps.Profiles) == 0 {
		return nil, fmt.Errorf("parse profiles: no profiles in %s", path)
	}
	for i := range ps.Profiles {
		applyProfileDefaults(&ps.Profiles[i])
	}
	return &ps, nil
}

// Find returns the named profile, matching case-sensitively.
func (ps *ProfileSet) Find(name string) (Profile, bool) {
	for _, p := range ps.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

func applyProfileDefaults(p *Profile) {
	def := DefaultProfile()
	if p.ReferenceDistanceFt <= 0 {
		p.ReferenceDistanceFt = def.ReferenceDistanceFt
	}
	if p.StationSpacingFt <= 0 {
		p.StationSpacingFt = def.StationSpacingFt
	}
	if p.Reference == "" {
		p.Reference = def.Reference
	}
}
