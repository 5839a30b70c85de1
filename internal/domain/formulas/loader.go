package formulas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/formula"
)

// Catalog file formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

type catalogFile struct {
	Subjects []catalogSubject `yaml:"subjects" toml:"subjects"`
}

type catalogSubject struct {
	Key    string         `yaml:"key" toml:"key"`
	Name   string         `yaml:"name" toml:"name"`
	Topics []catalogTopic `yaml:"topics" toml:"topics"`
}

type catalogTopic struct {
	Key      string           `yaml:"key" toml:"key"`
	Name     string           `yaml:"name" toml:"name"`
	Formulas []catalogFormula `yaml:"formulas" toml:"formulas"`
}

type catalogFormula struct {
	Name        string `yaml:"name" toml:"name"`
	Template    string `yaml:"template" toml:"template"`
	Notation    string `yaml:"notation" toml:"notation"`
	Description string `yaml:"description" toml:"description"`
	Example     string `yaml:"example" toml:"example"`
}

// FormatFromPath picks the catalog format from a file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported catalog format: %s", path)
	}
}

// LoadCatalog reads subjects from a YAML or TOML file
func LoadCatalog(path string) ([]Subject, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data, format)
}

// ParseCatalog decodes a catalog document. Variables are derived from each
// template.
func ParseCatalog(data []byte, format string) ([]Subject, error) {
	var file catalogFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse TOML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", format)
	}

	subjects := make([]Subject, 0, len(file.Subjects))
	for _, cs := range file.Subjects {
		s := Subject{Key: cs.Key, Name: cs.Name}
		for _, ct := range cs.Topics {
			t := Topic{Key: ct.Key, Name: ct.Name}
			for _, cf := range ct.Formulas {
				f := Formula{
					Name:        strings.TrimSpace(cf.Name),
					Template:    strings.TrimSpace(cf.Template),
					Notation:    cf.Notation,
					Description: cf.Description,
					Variables:   formula.ExtractVariables(cf.Template),
				}
				if cf.Example != "" {
					f.Example = formula.ParseExample(cf.Example)
				}
				t.Formulas = append(t.Formulas, f)
			}
			s.Topics = append(s.Topics, t)
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// LoadFile merges a catalog file into the registry
func (r *Registry) LoadFile(path string) error {
	subjects, err := LoadCatalog(path)
	if err != nil {
		return err
	}
	return r.Merge(subjects)
}
