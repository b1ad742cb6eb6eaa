package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the optional settings file. Nil fields were not set and
// fall back to the caller's defaults.
type Settings struct {
	Prompt   *string `yaml:"prompt"`
	ShowHelp *bool   `yaml:"show_help"`
	Color    *bool   `yaml:"color"`
	MaxDepth int     `yaml:"max_depth"`
}

func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Decode(r io.Reader) (*Settings, error) {
	s := &Settings{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if s.MaxDepth < 0 {
		return nil, fmt.Errorf("max_depth must be >= 0")
	}
	return s, nil
}

func (s *Settings) PromptOr(def string) string {
	if s == nil || s.Prompt == nil {
		return def
	}
	return *s.Prompt
}

func (s *Settings) ShowHelpOr(def bool) bool {
	if s == nil || s.ShowHelp == nil {
		return def
	}
	return *s.ShowHelp
}

func (s *Settings) ColorOr(def bool) bool {
	if s == nil || s.Color == nil {
		return def
	}
	return *s.Color
}
