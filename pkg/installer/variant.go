package installer

import (
	"github.com/devboot/nvboot/pkg/config"
	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/operations"
	"github.com/devboot/nvboot/pkg/paths"
	"github.com/devboot/nvboot/pkg/platform"
)

// Env is what a variant needs to plan its operations
type Env struct {
	Config *config.Config
	Paths  *paths.Table
	Lab    bool
}

// Prerequisite is a program that must answer before anything is installed
type Prerequisite struct {
	// Step names the check in logs and reports, e.g. check_node
	Step string
	// Label is the human name used in messages
	Label   string
	Program string
	Args    []string
	// Fallback is consulted when Program is not on PATH
	Fallback paths.Name
}

// Variant holds the platform-specific parts of an install
type Variant interface {
	Name() string
	Family() platform.Family
	// Preflight lists the checks that run before the shared prerequisites
	Preflight(env Env) []Prerequisite
	// EditorOps installs the editor
	EditorOps(env Env) []operations.Operation
	// CtagsOps installs universal-ctags
	CtagsOps(env Env) []operations.Operation
	// EditorBinary is the editor the plugin step runs
	EditorBinary(env Env) string
}

// NewVariant selects the variant for family
func NewVariant(family platform.Family) (Variant, error) {
	switch family {
	case platform.FamilyMacOS:
		return brewVariant{}, nil
	case platform.FamilyLinux:
		return aptVariant{}, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedOS, "no installer for platform %q", family).
			WithDetail("family", string(family))
	}
}
