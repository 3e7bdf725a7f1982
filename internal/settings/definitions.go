package settings

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

//go:embed definitions.json
var defaultDefinitions []byte

// Definition declares one setting: its store key, the default that fixes its
// type, whether it is mandatory and its tags.
type Definition struct {
	Name      string    `json:"name"`
	Default   env.Value `json:"default"`
	Mandatory bool      `json:"mandatory,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
}

// Options turns d into the construction options of an [env.Env].
func (d Definition) Options(log *logger.Logger) []env.Option {
	opts := []env.Option{
		env.WithDefault(d.Default),
		env.WithTags(d.Tags...),
		env.WithLogger(log),
	}
	if d.Mandatory {
		opts = append(opts, env.Mandatory())
	}
	return opts
}

// DefaultDefinitions returns the built-in setting definitions.
func DefaultDefinitions() ([]Definition, error) {
	return parseDefinitions(defaultDefinitions, "built-in definitions")
}

// LoadDefinitions reads setting definitions from the JSON file at path.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingDefinitions, err)
	}
	return parseDefinitions(data, path)
}

func parseDefinitions(data []byte, source string) ([]Definition, error) {
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadingDefinitions, source, err)
	}

	seen := make(map[string]struct{}, len(defs))
	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: %s: definition #%d has no name", ErrInvalidDefinition, source, i)
		}
		if d.Default.IsList() && d.Default.Len() != 1 {
			return nil, fmt.Errorf("%w: %s: list default of %s must hold exactly one element", ErrInvalidDefinition, source, d.Name)
		}
		if _, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSetting, d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return defs, nil
}
