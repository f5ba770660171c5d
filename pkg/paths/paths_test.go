package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/paths"
	"github.com/devboot/nvboot/pkg/platform"
)

func TestNew(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	home := filepath.Join(base, "home")
	work := filepath.Join(base, "work")

	table, err := paths.New(paths.Options{Family: platform.FamilyLinux, Home: home, WorkDir: work})
	require.NoError(t, err)

	assert.False(t, table.Sandbox())
	assert.Empty(t, table.Root())
	assert.Equal(t, filepath.Join(base, "config", "nvim"), table.Get(paths.ConfigFolder))
	assert.Equal(t, filepath.Join(base, "config", "nvim", "init.vim"), table.Get(paths.ConfigFile))
	assert.Equal(t, filepath.Join(base, "data", "nvim", "site", "autoload", "plug.vim"), table.Get(paths.PluginFile))
	assert.Equal(t, paths.DefaultNodeBinary, table.Get(paths.NodeBinary))
	assert.Equal(t, paths.DefaultBrewBinary, table.Get(paths.BrewBinary))
	assert.Equal(t, filepath.Join(home, ".bashrc"), table.Get(paths.ShellRC))
	assert.Equal(t, work, table.Get(paths.WorkDir))
	assert.Equal(t, filepath.Join(base, "state", "nvboot", "nvboot.log"), table.Get(paths.LogFile))
	assert.NoError(t, table.Validate())
}

func TestNew_MacOSUsesZshrc(t *testing.T) {
	home := t.TempDir()
	table, err := paths.New(paths.Options{Family: platform.FamilyMacOS, Home: home, WorkDir: home})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zshrc"), table.Get(paths.ShellRC))
}

func TestNew_ExpandsHomeInWorkDir(t *testing.T) {
	home := t.TempDir()
	table, err := paths.New(paths.Options{Family: platform.FamilyLinux, Home: home, WorkDir: "~/apps"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "apps"), table.Get(paths.WorkDir))
}

func TestNewSandbox(t *testing.T) {
	root := t.TempDir()

	table, err := paths.NewSandbox(root, platform.FamilyLinux)
	require.NoError(t, err)

	assert.True(t, table.Sandbox())
	assert.Equal(t, root, table.Root())
	assert.Equal(t, filepath.Join(root, ".config", "nvim", "init.vim"), table.Get(paths.ConfigFile))
	assert.Equal(t, filepath.Join(root, "plug.vim"), table.Get(paths.PluginFile))
	assert.Equal(t, filepath.Join(root, "local", "bin", "node"), table.Get(paths.NodeBinary))
	assert.Equal(t, filepath.Join(root, "homebrew", "bin", "brew"), table.Get(paths.BrewBinary))
	assert.Equal(t, filepath.Join(root, ".bashrc"), table.Get(paths.ShellRC))
	assert.Equal(t, filepath.Join(root, "work"), table.Get(paths.WorkDir))

	for _, e := range table.All() {
		assert.True(t, paths.IsWithin(root, e.Path), "%s escapes the sandbox", e.Name)
	}
	assert.NoError(t, table.Validate())

	mac, err := paths.NewSandbox(root, platform.FamilyMacOS)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".zshrc"), mac.Get(paths.ShellRC))
}

func TestNewSandbox_DefaultRoot(t *testing.T) {
	table, err := paths.NewSandbox("", platform.FamilyLinux)
	require.NoError(t, err)
	abs, _ := filepath.Abs("./tests")
	assert.Equal(t, abs, table.Root())
}

func TestTable_All(t *testing.T) {
	table, err := paths.NewSandbox(t.TempDir(), platform.FamilyLinux)
	require.NoError(t, err)

	all := table.All()
	require.Len(t, all, len(paths.Names))
	for i, e := range all {
		assert.Equal(t, paths.Names[i], e.Name)
		assert.NotEmpty(t, e.Path)
	}
	assert.Empty(t, table.Get(paths.Name("nope")))
}

func TestTable_ValidateRejectsEscape(t *testing.T) {
	root := t.TempDir()
	table, err := paths.NewSandbox(root, platform.FamilyLinux)
	require.NoError(t, err)

	table.Set(paths.ShellRC, filepath.Join(root, "..", ".bashrc"))

	err = table.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathEscape))
	assert.Equal(t, "shell_rc", errors.GetErrorDetails(err)["name"])
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		root, path string
		want       bool
	}{
		{"/sandbox", "/sandbox", true},
		{"/sandbox", "/sandbox/a/b", true},
		{"/sandbox", "/sandbox/../etc", false},
		{"/sandbox", "/sandboxed/file", false},
		{"/sandbox", "/etc/passwd", false},
		{"/sandbox", "/sandbox/..hidden", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, paths.IsWithin(tt.root, tt.path), "%s in %s", tt.path, tt.root)
	}
}

func TestValidatePath(t *testing.T) {
	assert.Error(t, paths.ValidatePath(""))
	assert.Error(t, paths.ValidatePath("a\x00b"))
	assert.NoError(t, paths.ValidatePath("/ok"))
}
