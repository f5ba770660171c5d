package operations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/executor"
	"github.com/devboot/nvboot/pkg/operations"
	"github.com/devboot/nvboot/pkg/testutil"
)

func TestExecute_FileOperations(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFS(t, fs, "/src/init.vim", "set number\n")
	exec := operations.NewExecutor(testutil.NewFakeRunner(), fs, false)

	results, err := exec.Execute(context.Background(), "copy_config", []operations.Operation{
		operations.Mkdir("/home/u/.config/nvim"),
		operations.Copy("/src/init.vim", "/home/u/.config/nvim/init.vim"),
		operations.Write("/home/u/notes.txt", "hello"),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Success)
		assert.False(t, r.Skipped)
	}

	assert.Equal(t, "set number\n", testutil.ReadFS(t, fs, "/home/u/.config/nvim/init.vim"))
	assert.Equal(t, "hello", testutil.ReadFS(t, fs, "/home/u/notes.txt"))
}

func TestExecute_MkdirExisting(t *testing.T) {
	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll("/cfg", 0755))
	exec := operations.NewExecutor(testutil.NewFakeRunner(), fs, false)

	results, err := exec.Execute(context.Background(), "copy_config", []operations.Operation{operations.Mkdir("/cfg")})
	require.NoError(t, err)
	assert.True(t, results[0].Skipped)
}

func TestExecute_GuardSkips(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFS(t, fs, "/home/u/plug.vim", "existing")
	runner := testutil.NewFakeRunner()
	exec := operations.NewExecutor(runner, fs, false)

	curl := executor.Cmd("curl", "-fLo", "/home/u/plug.vim", "--create-dirs", "https://example.com/plug.vim")
	results, err := exec.Execute(context.Background(), "install_plugin_manager", []operations.Operation{
		operations.Run(curl).Unless("/home/u/plug.vim"),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
	assert.Contains(t, results[0].Message, "already present")
	assert.Empty(t, runner.Calls)
}

func TestExecute_AppendBlockIsIdempotent(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFS(t, fs, "/home/u/.bashrc", "export PATH=$PATH:/opt/bin")
	exec := operations.NewExecutor(testutil.NewFakeRunner(), fs, false)

	op := operations.Append("/home/u/.bashrc", "# Nvim aliases", "alias nvim='/w/nvim'\nalias nv='/w/nvim'")

	results, err := exec.Execute(context.Background(), "add_aliases", []operations.Operation{op})
	require.NoError(t, err)
	assert.False(t, results[0].Skipped)

	results, err = exec.Execute(context.Background(), "add_aliases", []operations.Operation{op})
	require.NoError(t, err)
	assert.True(t, results[0].Skipped)

	assert.Equal(t,
		"export PATH=$PATH:/opt/bin\n# Nvim aliases\nalias nvim='/w/nvim'\nalias nv='/w/nvim'\n",
		testutil.ReadFS(t, fs, "/home/u/.bashrc"))
}

func TestExecute_AppendBlockSkipsExistingContent(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFS(t, fs, "/cfg/init.vim", "set number\nset relativenumber\n")
	exec := operations.NewExecutor(testutil.NewFakeRunner(), fs, false)

	results, err := exec.Execute(context.Background(), "copy_config", []operations.Operation{
		operations.Append("/cfg/init.vim", `" nvboot: init.vim`, "set number\nset relativenumber\n"),
	})
	require.NoError(t, err)
	assert.True(t, results[0].Skipped)
	assert.Equal(t, "set number\nset relativenumber\n", testutil.ReadFS(t, fs, "/cfg/init.vim"))
}

func TestExecute_AppendBlockCreatesFile(t *testing.T) {
	fs := testutil.NewTestFS()
	exec := operations.NewExecutor(testutil.NewFakeRunner(), fs, false)

	_, err := exec.Execute(context.Background(), "finalize", []operations.Operation{
		operations.Append("/cfg/init.vim", `" nvboot: colorscheme`, ":colorscheme onehalfdark"),
	})
	require.NoError(t, err)
	assert.Equal(t, "\" nvboot: colorscheme\n:colorscheme onehalfdark\n", testutil.ReadFS(t, fs, "/cfg/init.vim"))
}

func TestExecute_CommandFailurePolicy(t *testing.T) {
	failing := executor.Cmd("make")
	after := executor.Cmd("sudo", "make", "install")

	t.Run("non-strict continues with a warning", func(t *testing.T) {
		runner := testutil.NewFakeRunner()
		runner.Fail["make"] = true
		exec := operations.NewExecutor(runner, testutil.NewTestFS(), false)

		results, err := exec.Execute(context.Background(), "install_ctags", []operations.Operation{
			operations.Run(failing), operations.Run(after),
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[0].Warning)
		assert.False(t, results[0].Success)
		assert.Error(t, results[0].Error)
		assert.True(t, results[1].Success)
		assert.Equal(t, []string{"make", "sudo make install"}, runner.Commands())
	})

	t.Run("strict stops at the first failure", func(t *testing.T) {
		runner := testutil.NewFakeRunner()
		runner.Fail["make"] = true
		exec := operations.NewExecutor(runner, testutil.NewTestFS(), true)

		results, err := exec.Execute(context.Background(), "install_ctags", []operations.Operation{
			operations.Run(failing), operations.Run(after),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
		require.Len(t, results, 1)
		assert.Equal(t, []string{"make"}, runner.Commands())
	})
}

func TestExecute_FileErrorsAlwaysStop(t *testing.T) {
	fs := testutil.NewTestFS()
	exec := operations.NewExecutor(testutil.NewFakeRunner(), fs, false)

	results, err := exec.Execute(context.Background(), "copy_config", []operations.Operation{
		operations.Copy("/missing/init.vim", "/cfg/init.vim"),
		operations.Write("/cfg/other", "x"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	assert.Len(t, results, 1)
}

func TestExecute_StubbedCommandIsSkipped(t *testing.T) {
	echo := &testutil.RecordingEchoer{}
	stub := executor.NewStubRunner(nil, nil, echo)
	exec := operations.NewExecutor(stub, testutil.NewTestFS(), true)

	results, err := exec.Execute(context.Background(), "install_editor", []operations.Operation{
		operations.Run(executor.Cmd("brew", "install", "neovim")),
	})
	require.NoError(t, err)
	assert.True(t, results[0].Skipped)
	assert.Equal(t, "Recorded: brew install neovim", results[0].Message)
	assert.Equal(t, []string{"brew install neovim"}, echo.Lines)
}

func TestExecute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := operations.NewExecutor(testutil.NewFakeRunner(), testutil.NewTestFS(), false)

	results, err := exec.Execute(ctx, "install_editor", []operations.Operation{operations.Mkdir("/x")})
	require.Error(t, err)
	assert.Empty(t, results)
}

func TestOperation_Describe(t *testing.T) {
	assert.Equal(t, "git --version", operations.Run(executor.Cmd("git", "--version")).Describe())
	assert.Equal(t, "mkdir /a", operations.Mkdir("/a").Describe())
	assert.Equal(t, "copy /a → /b", operations.Copy("/a", "/b").Describe())
	assert.Equal(t, `append "# m" to /rc`, operations.Append("/rc", "# m", "x").Describe())
	assert.Equal(t, "write /f", operations.Write("/f", "x").Describe())
	assert.Equal(t, "/g", operations.Mkdir("/a").Unless("/g").SkipIfExists)
}
