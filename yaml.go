package interval

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the interval as a scalar in the canonical text
// form, the shape operating-calendar config files use.
func (i Interval) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// UnmarshalYAML decodes a scalar in the canonical text form,
// re-running the validation [New] applies.
func (i *Interval) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("interval: %w", err)
	}
	return i.UnmarshalText([]byte(s))
}
