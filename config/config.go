/*
File    : nimbus/config/config.go
Package : config
*/

// Package config loads optional REPL overrides from a .nimbusrc.yaml file,
// mirroring the teacher's pattern of passing small config-carrying structs
// into repl.NewRepl -- just sourced from disk instead of hardcoded in
// main.go.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// REPL holds the fields of repl.Repl that a .nimbusrc.yaml may override.
// A zero-value field here means "use the default", so every field is
// optional in the file itself.
type REPL struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	Line    string `yaml:"line"`
	License string `yaml:"license"`
	Prompt  string `yaml:"prompt"`
}

// Config is the top-level shape of .nimbusrc.yaml.
type Config struct {
	REPL REPL `yaml:"repl"`
}

const fileName = ".nimbusrc.yaml"

// Load looks for .nimbusrc.yaml first in the current working directory,
// then in the user's home directory. A missing file is not an error --
// it returns a zero-value Config, leaving every default untouched.
func Load() (Config, error) {
	var cfg Config

	for _, dir := range candidateDirs() {
		path := filepath.Join(dir, fileName)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	return cfg, nil
}

func candidateDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// Apply overlays any non-empty fields from the loaded config onto the
// defaults, field by field.
func (c Config) Apply(banner, version, author, line, license, prompt string) (string, string, string, string, string, string) {
	if c.REPL.Banner != "" {
		banner = c.REPL.Banner
	}
	if c.REPL.Version != "" {
		version = c.REPL.Version
	}
	if c.REPL.Author != "" {
		author = c.REPL.Author
	}
	if c.REPL.Line != "" {
		line = c.REPL.Line
	}
	if c.REPL.License != "" {
		license = c.REPL.License
	}
	if c.REPL.Prompt != "" {
		prompt = c.REPL.Prompt
	}
	return banner, version, author, line, license, prompt
}
