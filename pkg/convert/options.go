package convert

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gmodel921/cadglb/pkg/kernel"
)

// Defaults for the tessellation pass-through parameters and the
// deduplication rounding precision.
const (
	DefaultLinearDeflection   = 0.1
	DefaultRelativeDeflection = true
	DefaultAngularDeflection  = 0.5
	DefaultRoundDecimals      = 6
)

// Options carries the conversion configuration. The deflection values are
// passed through to the tessellating kernel; RoundDecimals controls the
// vertex deduplication precision (decimal digits kept per coordinate).
// Values are not range-checked; out-of-range values are the caller's
// responsibility.
type Options struct {
	LinearDeflection   float64 `yaml:"linear_deflection"`
	RelativeDeflection bool    `yaml:"relative_deflection"`
	AngularDeflection  float64 `yaml:"angular_deflection"`
	RoundDecimals      int     `yaml:"round_decimals"`
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		LinearDeflection:   DefaultLinearDeflection,
		RelativeDeflection: DefaultRelativeDeflection,
		AngularDeflection:  DefaultAngularDeflection,
		RoundDecimals:      DefaultRoundDecimals,
	}
}

// LoadOptions reads options from a YAML file, layering the file's values
// over the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options from %s: %w", path, err)
	}
	return opts, nil
}

// kernelOptions maps the pass-through deflection values onto the kernel's
// tessellation options.
func (o Options) kernelOptions() kernel.Options {
	return kernel.Options{
		LinearDeflection:  o.LinearDeflection,
		Relative:          o.RelativeDeflection,
		AngularDeflection: o.AngularDeflection,
	}
}
