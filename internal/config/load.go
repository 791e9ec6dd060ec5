package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadGame reads a YAML balance file and applies it on top of base. Fields
// missing from the file keep the value from base; unknown fields are an
// error.
func LoadGame(path string, base Game) (Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("failed to read balance file %s: %w", path, err)
	}
	return ParseGame(data, base)
}

// ParseGame decodes YAML balance data on top of base and validates the result.
func ParseGame(data []byte, base Game) (Game, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Game{}, fmt.Errorf("failed to parse balance YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// Validate checks that the balance table has usable values.
func (g Game) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Encode renders the table the way LoadGame reads it.
func (g Game) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
