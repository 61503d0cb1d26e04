package tiler

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML file pre-seeding build options, so that
// recurring voxelization setups do not have to be re-typed as flags.
// Flags set on the command line to a non-zero value win over profile
// values; a flag at its zero value (even when given explicitly, such as
// -compress=false) takes the profile's value.
type Profile struct {
	Depth    int     `yaml:"depth"`
	ZOffset  float64 `yaml:"z_offset"`
	Overlap  string  `yaml:"overlap"`
	Compress bool    `yaml:"compress"`
}

func defaultProfile() Profile {
	return Profile{
		Depth:   8,
		Overlap: string(Box),
	}
}

// LoadProfile reads a build profile. An empty path yields the defaults.
func LoadProfile(path string) (Profile, error) {
	p := defaultProfile()
	if strings.TrimSpace(path) == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrapf(err, "profile %s", path)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, errors.Wrapf(err, "profile %s", path)
	}
	if err := p.Validate(); err != nil {
		return p, errors.Wrapf(err, "profile %s", path)
	}
	return p, nil
}

func (p Profile) Validate() error {
	if p.Depth < 1 || p.Depth > 31 {
		return errors.Errorf("depth %d outside [1, 31]", p.Depth)
	}
	if ParseOverlapAlgorithm(p.Overlap) == "" {
		return errors.Errorf("overlap %q is neither BOX nor SAT", p.Overlap)
	}
	return nil
}

// ApplyTo copies the profile into options fields still at their zero
// value.
func (p Profile) ApplyTo(opts *Options) {
	if opts.Depth == 0 {
		opts.Depth = p.Depth
	}
	if opts.ZOffset == 0 {
		opts.ZOffset = p.ZOffset
	}
	if opts.Overlap == "" {
		opts.Overlap = ParseOverlapAlgorithm(p.Overlap)
	}
	if !opts.Compress {
		opts.Compress = p.Compress
	}
}
