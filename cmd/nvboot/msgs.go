package nvboot

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Bootstrap a Neovim setup"
	MsgInstallShort    = "Install Neovim, its config, plugins and tools"
	MsgStatusShort     = "Verify an installation"
	MsgPathsShort      = "Print the resolved path table"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	MsgTestMode        = "Running in TEST mode"
	MsgInstallComplete = "Installation complete"
	MsgVerifySandbox   = "Verifying sandbox..."

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTest     = "Install into a sandbox and only run safe commands"
	MsgFlagSandbox  = "Sandbox directory for --test (default from test.sandbox_root)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/nvboot/config.toml)"
	MsgFlagLab      = "Lab machine without root: AppImage and aliases instead of packages"
	MsgFlagYes      = "Do not ask for confirmation"
	MsgFlagStrict   = "Abort on the first failing install command"
	MsgFlagSource   = "init.vim to install (default from editor.config_source)"
	MsgFlagWorkDir  = "Directory for the lab AppImage and the ctags checkout (default: current directory)"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
