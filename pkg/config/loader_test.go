package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devboot/nvboot/pkg/errors"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "neovim", cfg.Editor.Package)
	assert.Equal(t, "nvim", cfg.Editor.Binary)
	assert.Equal(t, "onehalfdark", cfg.Editor.Colorscheme)
	assert.Equal(t, "./scripts/init.vim", cfg.Editor.ConfigSource)
	assert.Equal(t, []string{"coc-pyright"}, cfg.Editor.CocExtensions)
	assert.Equal(t, "https://raw.githubusercontent.com/junegunn/vim-plug/master/plug.vim", cfg.PluginManager.URL)
	assert.Equal(t, []string{"node", "brew", "git"}, cfg.Test.SafeCommands)
	assert.Equal(t, "./tests", cfg.Test.SandboxRoot)
	assert.Contains(t, cfg.Ctags.BuildDeps, "libyaml-dev")
	assert.Empty(t, cfg.Lab.HostPatterns)
	assert.False(t, cfg.Install.Strict)
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nvboot", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`
[editor]
colorscheme = "gruvbox"

[lab]
host_patterns = ["lab-*", "csgate?"]
`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Editor.Colorscheme)
	assert.Equal(t, []string{"lab-*", "csgate?"}, cfg.Lab.HostPatterns)
	// untouched keys keep their defaults
	assert.Equal(t, "neovim", cfg.Editor.Package)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("NVBOOT_EDITOR_COLORSCHEME", "desert")
	t.Setenv("NVBOOT_INSTALL_STRICT", "true")
	t.Setenv("NVBOOT_PLUGIN_MANAGER_URL", "https://mirror.example/plug.vim")
	t.Setenv("NVBOOT_TEST_SAFE_COMMANDS", "git,node")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "desert", cfg.Editor.Colorscheme)
	assert.True(t, cfg.Install.Strict)
	assert.Equal(t, "https://mirror.example/plug.vim", cfg.PluginManager.URL)
	assert.Equal(t, []string{"git", "node"}, cfg.Test.SafeCommands)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "editor.coc_extensions", envKey("NVBOOT_EDITOR_COC_EXTENSIONS"))
	assert.Equal(t, "plugin_manager.url", envKey("NVBOOT_PLUGIN_MANAGER_URL"))
	assert.Equal(t, "lab.host_patterns", envKey("NVBOOT_LAB_HOST_PATTERNS"))
	assert.Equal(t, "unknown", envKey("NVBOOT_UNKNOWN"))
}

func TestFromMap_ValidationFailure(t *testing.T) {
	_, err := FromMap(map[string]interface{}{"editor.colorscheme": " "})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, "editor.colorscheme", errors.GetErrorDetails(err)["key"])
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(Default())
	require.NoError(t, err)

	assert.Contains(t, string(out), "[editor]")
	assert.Contains(t, string(out), "onehalfdark")
	assert.Contains(t, string(out), "[plugin_manager]")
}

func TestDefaultsProvider(t *testing.T) {
	raw, err := defaultsProvider{}.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, DefaultsContent(), string(raw))

	parsed, err := defaultsProvider{}.Read()
	require.NoError(t, err)
	editor, ok := parsed["editor"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "neovim", editor["package"])
}

func TestValidate_RequiresBrewFormula(t *testing.T) {
	_, err := FromMap(map[string]interface{}{"ctags.brew_formula": ""})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, "ctags.brew_formula", errors.GetErrorDetails(err)["key"])
}
