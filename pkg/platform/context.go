package platform

import (
	"fmt"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/logging"
)

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ContextOptions carries the flags that influence the context check
type ContextOptions struct {
	// Lab forces the lab-host branch (--dcu / --lab)
	Lab bool
	// LabPatterns are hostname patterns that enable the lab branch automatically
	LabPatterns []string
	// AssumeYes skips the confirmation prompt (--yes)
	AssumeYes bool
	// Test skips the prompt; nothing real is touched in test mode
	Test bool
}

// Context is the outcome of the privilege and host check
type Context struct {
	Host Host
	// Lab selects the no-root installation branch
	Lab bool
	// LabDetected is true when Lab came from the hostname, not the flag
	LabDetected bool
	// Confirmed is true when the user was asked and agreed
	Confirmed bool
}

// CheckContext decides between the elevated and lab branches. When the process
// is neither elevated nor on a lab host it asks for confirmation, and a decline
// aborts the run.
func CheckContext(host Host, opts ContextOptions, confirmer Confirmer) (Context, error) {
	logger := logging.GetLogger("platform.context")

	ctx := Context{Host: host, Lab: opts.Lab}
	if !ctx.Lab && IsLabHost(host.Hostname, opts.LabPatterns) {
		ctx.Lab = true
		ctx.LabDetected = true
	}

	logger.Debug().
		Bool("elevated", host.Elevated).
		Bool("lab", ctx.Lab).
		Bool("labDetected", ctx.LabDetected).
		Msg("Checking installation context")

	if host.Elevated || ctx.Lab || opts.AssumeYes || opts.Test {
		return ctx, nil
	}

	if confirmer == nil {
		return ctx, errors.New(errors.ErrUserDeclined,
			"Not running as root and no way to ask for confirmation. Re-run with sudo, --dcu or --yes.")
	}

	question := fmt.Sprintf("You are running as %q without root privileges on %q. Installing packages may prompt for sudo. Continue?",
		host.User, host.Hostname)
	ok, err := confirmer.Confirm(question)
	if err != nil {
		return ctx, errors.Wrap(err, errors.ErrInvalidInput, "failed to read confirmation")
	}
	if !ok {
		return ctx, errors.New(errors.ErrUserDeclined, "Installation cancelled.")
	}

	ctx.Confirmed = true
	return ctx, nil
}
