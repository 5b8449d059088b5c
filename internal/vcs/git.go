package vcs

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// Identity returns the user.name and user.email of the global git config.
// Both are empty when git is not configured.
func Identity() (name, email string, err error) {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return "", "", fmt.Errorf("loading global git config: %w", err)
	}
	return cfg.User.Name, cfg.User.Email, nil
}

// Author formats the global git identity as an npm author string
// ("name <email>"), or "" when no name is configured.
func Author() string {
	name, email, err := Identity()
	if err != nil || name == "" {
		return ""
	}
	if email == "" {
		return name
	}
	return name + " <" + email + ">"
}

// InitRepo creates a git repository in dir. It reports false without error
// when dir already is a repository.
func InitRepo(dir string) (bool, error) {
	_, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("initializing git repository in %s: %w", dir, err)
	}
	return true, nil
}
