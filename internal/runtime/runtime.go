package runtime

import (
	"context"
	"fmt"
)

// Installer installs the dependencies of the project in dir.
type Installer interface {
	Install(ctx context.Context, dir string) (*Output, error)
}

// Output captures the result of an install.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported package managers.
const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"
	ManagerPNPM = "pnpm"
)

// Managers returns the supported package manager names.
func Managers() []string {
	return []string{ManagerNPM, ManagerPNPM, ManagerYarn}
}

// DispatchInstaller returns the Installer for manager. Unknown names yield an
// installer that always fails.
func DispatchInstaller(manager string) Installer {
	switch manager {
	case ManagerNPM, ManagerYarn, ManagerPNPM:
		return &PackageManager{Bin: manager}
	default:
		return &unknownInstaller{name: manager}
	}
}

type unknownInstaller struct {
	name string
}

func (u *unknownInstaller) Install(_ context.Context, _ string) (*Output, error) {
	return nil, fmt.Errorf("unknown package manager %q: supported are %v", u.name, Managers())
}
