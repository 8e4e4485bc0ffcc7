// Package gitname finds the user's display name in git configuration.
package gitname

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// ErrNoName is returned when no user.name is configured.
var ErrNoName = errors.New("git user.name is not set")

// Lookup returns user.name for the repository enclosing dir, merged with the
// global and system configuration. Outside a repository only the global
// configuration is read.
func Lookup(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("open git repository: %w", err)
		}
		cfg, err := config.LoadConfig(config.GlobalScope)
		if err != nil {
			return "", fmt.Errorf("read global git config: %w", err)
		}
		return nameFrom(cfg)
	}
	cfg, err := repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return "", fmt.Errorf("read git config: %w", err)
	}
	return nameFrom(cfg)
}

func nameFrom(cfg *config.Config) (string, error) {
	if cfg == nil {
		return "", ErrNoName
	}
	name := strings.TrimSpace(cfg.User.Name)
	if name == "" {
		return "", ErrNoName
	}
	return name, nil
}
