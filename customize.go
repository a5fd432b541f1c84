package iconmaker

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadSizeCustomization reads a size customization from a YAML (or
// JSON, which YAML subsumes) file and validates it.
func LoadSizeCustomization(path string) (*SizeCustomization, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading the size customization file")
	}

	var c SizeCustomization
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &ConfigValidationError{Field: path, Reason: err.Error()}
	}
	if _, err := ValidateCustomization(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
