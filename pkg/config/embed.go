package config

import (
	_ "embed"

	"github.com/knadh/koanf/parsers/toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultsContent returns the embedded defaults, used by `nvboot config --defaults`
func DefaultsContent() string {
	return string(defaultConfig)
}

// defaultsProvider serves the embedded defaults to koanf
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) { return defaultConfig, nil }

// Read parses the defaults itself for callers that load without a parser
func (defaultsProvider) Read() (map[string]interface{}, error) {
	return toml.Parser().Unmarshal(defaultConfig)
}
