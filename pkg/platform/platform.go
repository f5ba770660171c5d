// Package platform detects the host operating system family and decides
// which installation context applies (elevated, lab host, or neither).
package platform

import (
	"os"
	"os/user"
	"path"
	"runtime"
	"strings"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/logging"
)

// Family is the installer flavor chosen for an OS
type Family string

const (
	// FamilyMacOS installs through Homebrew
	FamilyMacOS Family = "macos"
	// FamilyLinux installs through apt, or without root on lab hosts
	FamilyLinux Family = "linux"
)

func (f Family) String() string { return string(f) }

// Host describes the machine the installer runs on
type Host struct {
	OS       string
	Family   Family
	Hostname string
	User     string
	Elevated bool
}

// DetectFamily maps a GOOS value to an installer family.
// Windows is rejected; every other Unix-like system gets the Linux flavor.
func DetectFamily(goos string) (Family, error) {
	switch goos {
	case "windows":
		return "", errors.New(errors.ErrUnsupportedOS,
			"Windows is not supported. Please use WSL or switch to Linux and run this script again.").
			WithDetail("os", goos)
	case "darwin":
		return FamilyMacOS, nil
	default:
		return FamilyLinux, nil
	}
}

// DetectHost inspects the running process
func DetectHost() (Host, error) {
	logger := logging.GetLogger("platform")

	family, err := DetectFamily(runtime.GOOS)
	if err != nil {
		return Host{}, err
	}

	hostname, err := os.Hostname()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not read hostname")
	}

	host := Host{
		OS:       runtime.GOOS,
		Family:   family,
		Hostname: hostname,
		User:     currentUser(),
		Elevated: os.Geteuid() == 0,
	}

	logger.Debug().
		Str("os", host.OS).
		Str("family", host.Family.String()).
		Str("hostname", host.Hostname).
		Bool("elevated", host.Elevated).
		Msg("Detected host")

	return host, nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

// IsLabHost reports whether hostname matches one of the lab host patterns.
// Patterns use path.Match syntax and compare case-insensitively.
func IsLabHost(hostname string, patterns []string) bool {
	name := strings.ToLower(strings.TrimSpace(hostname))
	if name == "" {
		return false
	}
	// Lab machines often report a fully qualified name
	short := strings.SplitN(name, ".", 2)[0]

	for _, pattern := range patterns {
		p := strings.ToLower(strings.TrimSpace(pattern))
		if p == "" {
			continue
		}
		if ok, _ := path.Match(p, name); ok {
			return true
		}
		if ok, _ := path.Match(p, short); ok {
			return true
		}
	}
	return false
}
