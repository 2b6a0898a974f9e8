package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/staticfmt/pkg/alphabet"
	"github.com/aretw0/staticfmt/pkg/wordgen"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when --config is not given.
const DefaultPath = ".staticfmt.yaml"

// Config describes a word generation job.
type Config struct {
	Package   string            `mapstructure:"package"`
	Output    string            `mapstructure:"output"`
	Alphabets []string          `mapstructure:"alphabets"`
	Words     map[string]string `mapstructure:"words"`
}

// Default is the job used when no file exists.
func Default() *Config {
	return &Config{
		Package:   "main",
		Alphabets: alphabet.BuiltinNames(),
		Words:     map[string]string{},
	}
}

// Load reads a config file and fills unset fields from Default.
// A missing file is not an error unless it was asked for explicitly.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var file Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &file,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if file.Package != "" {
		cfg.Package = file.Package
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if len(file.Alphabets) > 0 {
		cfg.Alphabets = file.Alphabets
	}
	if file.Words != nil {
		cfg.Words = file.Words
	}
	return cfg, nil
}

// WordList returns the configured words sorted by name.
func (c *Config) WordList() []wordgen.Word {
	words := make([]wordgen.Word, 0, len(c.Words))
	for name, text := range c.Words {
		words = append(words, wordgen.Word{Name: name, Text: text})
	}
	slices.SortFunc(words, func(a, b wordgen.Word) int {
		return strings.Compare(a.Name, b.Name)
	})
	return words
}

// ResolveAlphabets loads every configured table, builtin or file.
func (c *Config) ResolveAlphabets() ([]*alphabet.Alphabet, error) {
	out := make([]*alphabet.Alphabet, 0, len(c.Alphabets))
	for _, ref := range c.Alphabets {
		a, err := alphabet.Resolve(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
