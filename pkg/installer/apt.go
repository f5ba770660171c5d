package installer

import (
	"path/filepath"

	"github.com/devboot/nvboot/pkg/executor"
	"github.com/devboot/nvboot/pkg/operations"
	"github.com/devboot/nvboot/pkg/paths"
	"github.com/devboot/nvboot/pkg/platform"
)

const appImageName = "nvim.appimage"

// aptVariant installs through apt, or into the working directory on lab
// hosts where there is no root
type aptVariant struct{}

func (aptVariant) Name() string { return "apt" }

func (aptVariant) Family() platform.Family { return platform.FamilyLinux }

func (aptVariant) Preflight(Env) []Prerequisite { return nil }

func (aptVariant) EditorOps(env Env) []operations.Operation {
	if !env.Lab {
		return []operations.Operation{
			operations.Run(executor.Cmd("sudo", "apt", "install", "-y", env.Config.Editor.Package)),
		}
	}

	workDir := env.Paths.Get(paths.WorkDir)
	editor := filepath.Join(workDir, env.Config.Editor.Binary)
	return []operations.Operation{
		operations.Mkdir(workDir),
		operations.Run(executor.Cmd("curl", "-fLO", env.Config.Editor.AppImageURL).In(workDir)).Unless(editor),
		operations.Run(executor.Cmd("chmod", "u+x", appImageName).In(workDir)).Unless(editor),
		operations.Run(executor.Cmd("mv", appImageName, env.Config.Editor.Binary).In(workDir)).Unless(editor),
	}
}

func (aptVariant) CtagsOps(env Env) []operations.Operation {
	workDir := env.Paths.Get(paths.WorkDir)
	checkout := filepath.Join(workDir, "ctags")

	deps := append([]string{"apt", "install", "-y"}, env.Config.Ctags.BuildDeps...)
	return []operations.Operation{
		operations.Mkdir(workDir),
		operations.Run(executor.Cmd("git", "clone", env.Config.Ctags.RepoURL, checkout)).Unless(checkout),
		operations.Run(executor.Cmd("sudo", deps...)),
		operations.Run(executor.Cmd("./autogen.sh").In(checkout)),
		operations.Run(executor.Cmd("./configure").In(checkout)),
		operations.Run(executor.Cmd("make").In(checkout)),
		operations.Run(executor.Cmd("sudo", "make", "install").In(checkout)),
	}
}

func (aptVariant) EditorBinary(env Env) string {
	if env.Lab {
		return filepath.Join(env.Paths.Get(paths.WorkDir), env.Config.Editor.Binary)
	}
	return env.Config.Editor.Binary
}
