/*
File    : nimbus/config/config_test.go
Package : config
*/
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ApplyOverlaysOnlyNonEmptyFields(t *testing.T) {
	cfg := Config{REPL: REPL{Prompt: "ns >>> "}}

	banner, version, author, line, license, prompt := cfg.Apply(
		"default-banner", "v1.0.0", "someone", "----", "MIT", "default >>> ",
	)

	assert.Equal(t, "default-banner", banner)
	assert.Equal(t, "v1.0.0", version)
	assert.Equal(t, "someone", author)
	assert.Equal(t, "----", line)
	assert.Equal(t, "MIT", license)
	assert.Equal(t, "ns >>> ", prompt)
}

func TestConfig_LoadWithNoFileReturnsZeroValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}
