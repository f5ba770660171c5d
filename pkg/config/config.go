// Package config loads nvboot's configuration.
//
// Values are layered with koanf: the embedded defaults.toml first, then the
// user's config file, then NVBOOT_* environment variables. The merged result is
// decoded into Config with mapstructure.
package config

import (
	"strings"

	"github.com/devboot/nvboot/pkg/errors"
)

// Editor holds what gets installed and how it is configured
type Editor struct {
	Package       string   `koanf:"package" toml:"package"`
	Binary        string   `koanf:"binary" toml:"binary"`
	AppImageURL   string   `koanf:"appimage_url" toml:"appimage_url"`
	Colorscheme   string   `koanf:"colorscheme" toml:"colorscheme"`
	ConfigSource  string   `koanf:"config_source" toml:"config_source"`
	CocExtensions []string `koanf:"coc_extensions" toml:"coc_extensions"`
}

// PluginManager points at the vim-plug bootstrap file
type PluginManager struct {
	URL string `koanf:"url" toml:"url"`
}

// Ctags holds the tagging tool sources for both variants
type Ctags struct {
	BrewTap     string   `koanf:"brew_tap" toml:"brew_tap"`
	BrewFormula string   `koanf:"brew_formula" toml:"brew_formula"`
	RepoURL     string   `koanf:"repo_url" toml:"repo_url"`
	BuildDeps   []string `koanf:"build_deps" toml:"build_deps"`
}

// Lab lists the shared machines that get the no-root branch automatically.
// Patterns use path.Match syntax against the hostname.
type Lab struct {
	HostPatterns []string `koanf:"host_patterns" toml:"host_patterns"`
}

// Test configures the sandbox used by --test
type Test struct {
	SandboxRoot  string   `koanf:"sandbox_root" toml:"sandbox_root"`
	SafeCommands []string `koanf:"safe_commands" toml:"safe_commands"`
}

// Install holds step execution policy
type Install struct {
	// Strict turns failing install commands into errors. Prerequisite checks
	// always abort regardless.
	Strict bool `koanf:"strict" toml:"strict"`
}

// Config is the fully merged configuration
type Config struct {
	Editor        Editor        `koanf:"editor" toml:"editor"`
	PluginManager PluginManager `koanf:"plugin_manager" toml:"plugin_manager"`
	Ctags         Ctags         `koanf:"ctags" toml:"ctags"`
	Lab           Lab           `koanf:"lab" toml:"lab"`
	Test          Test          `koanf:"test" toml:"test"`
	Install       Install       `koanf:"install" toml:"install"`
}

// Validate rejects configurations the installer cannot act on
func (c *Config) Validate() error {
	required := []struct{ key, value string }{
		{"editor.package", c.Editor.Package},
		{"editor.binary", c.Editor.Binary},
		{"editor.appimage_url", c.Editor.AppImageURL},
		{"editor.colorscheme", c.Editor.Colorscheme},
		{"editor.config_source", c.Editor.ConfigSource},
		{"plugin_manager.url", c.PluginManager.URL},
		{"ctags.brew_formula", c.Ctags.BrewFormula},
		{"ctags.repo_url", c.Ctags.RepoURL},
		{"test.sandbox_root", c.Test.SandboxRoot},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", r.key).
				WithDetail("key", r.key)
		}
	}
	for _, ext := range c.Editor.CocExtensions {
		if strings.TrimSpace(ext) == "" {
			return errors.New(errors.ErrConfigValid, "editor.coc_extensions contains an empty entry")
		}
	}
	return nil
}
