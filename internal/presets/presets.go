// Package presets ships fluxbase's built-in named alphabets, so the
// CLI can accept --charset-preset base58 instead of the caller having
// to paste an alphabet. The table is embedded at compile time and
// parsed independently of viper, since it is a static read-only asset
// rather than runtime configuration.
package presets

import (
	"embed"

	"gopkg.in/yaml.v3"

	"github.com/fluxbase/fluxbase/internal/errs"
)

//go:embed presets.yaml
var presetsFS embed.FS

// Alphabet is one named, built-in (charset, pow2) pair.
type Alphabet struct {
	Name    string `yaml:"name"`
	Charset string `yaml:"charset"`
	Pow2    bool   `yaml:"pow2"`
}

type table struct {
	Presets []Alphabet `yaml:"presets"`
}

// All returns every built-in preset, in the order they are declared.
func All() ([]Alphabet, error) {
	raw, err := presetsFS.ReadFile("presets.yaml")
	if err != nil {
		return nil, errs.WrapIO(err, "failed to read embedded presets")
	}
	var t table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, errs.WrapFormat(err, "failed to parse embedded presets")
	}
	return t.Presets, nil
}

// Find looks up a preset by name (case-sensitive, matching the table).
func Find(name string) (Alphabet, error) {
	all, err := All()
	if err != nil {
		return Alphabet{}, err
	}
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	return Alphabet{}, errs.Config("unknown charset preset %q", name)
}
