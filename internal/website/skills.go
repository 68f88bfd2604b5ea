package website

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Skill is one entry of the public skills section. The catalogue is static
// content, loaded once at startup from a YAML file.
type Skill struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
	Icon     string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// LoadSkills reads the skills catalogue from path. An empty path returns an
// empty catalogue rather than an error so the section is optional.
func LoadSkills(path string) ([]Skill, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}

	var skills []Skill
	if err := yaml.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills file: %w", err)
	}

	return skills, nil
}
