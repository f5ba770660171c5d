package installer

import (
	"github.com/devboot/nvboot/pkg/executor"
	"github.com/devboot/nvboot/pkg/operations"
	"github.com/devboot/nvboot/pkg/paths"
	"github.com/devboot/nvboot/pkg/platform"
)

// brewVariant installs through Homebrew
type brewVariant struct{}

func (brewVariant) Name() string { return "homebrew" }

func (brewVariant) Family() platform.Family { return platform.FamilyMacOS }

func (brewVariant) Preflight(Env) []Prerequisite {
	return []Prerequisite{{
		Step:     "check_brew",
		Label:    "Brew",
		Program:  "brew",
		Args:     []string{"-v"},
		Fallback: paths.BrewBinary,
	}}
}

func (brewVariant) EditorOps(env Env) []operations.Operation {
	return []operations.Operation{
		operations.Run(executor.Cmd("brew", "install", env.Config.Editor.Package)),
	}
}

func (brewVariant) CtagsOps(env Env) []operations.Operation {
	ctags := env.Config.Ctags
	ops := []operations.Operation{
		// Fails when the command line tools are already present
		operations.Run(executor.Cmd("xcode-select", "--install")),
	}
	if ctags.BrewTap != "" {
		ops = append(ops, operations.Run(executor.Cmd("brew", "tap", ctags.BrewTap)))
	}
	return append(ops, operations.Run(executor.Cmd("brew", "install", "--HEAD", ctags.BrewFormula)))
}

func (brewVariant) EditorBinary(env Env) string {
	return env.Config.Editor.Binary
}
