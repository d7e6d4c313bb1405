package prettyarray

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options holds the formatting knobs for a single render call. Pass nil
// to [Render] or [Write] to use [DefaultOptions]; to override a subset,
// start from [DefaultOptions] and change fields.
//
// Values are not validated: a negative precision or a non-positive line
// width or threshold is a caller error with undefined output.
type Options struct {
	// EdgeItems is the number of elements shown at each end of a
	// truncated axis.
	EdgeItems int `yaml:"edge_items"`

	// LineWidth is the maximum joined width of a rank-1 array before it
	// truncates. Higher ranks never truncate on line width.
	LineWidth int `yaml:"line_width"`

	// Precision is the number of fractional digits for float elements.
	Precision int `yaml:"precision"`

	// SuppressExp selects fixed-point float notation; when false, floats
	// render in scientific notation.
	SuppressExp bool `yaml:"suppress_exp"`

	// Threshold is the total element count above which an array
	// truncates.
	Threshold int `yaml:"threshold"`
}

// DefaultOptions returns the default formatting knobs.
func DefaultOptions() Options {
	return Options{
		EdgeItems:   3,
		LineWidth:   120,
		Precision:   6,
		SuppressExp: true,
		Threshold:   1000,
	}
}

// OptionsFromYAML parses options from YAML. Keys not present in the
// document keep their default values. Malformed input returns
// [ErrInvalidOptions].
func OptionsFromYAML(data []byte) (*Options, error) {
	o := DefaultOptions()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return &o, nil
}
