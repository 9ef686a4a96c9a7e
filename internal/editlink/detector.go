// Package editlink maps generated category and version pages back to the
// feature document they include, so a site's "Edit this page" link opens
// the real source instead of the generated stub.
package editlink

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	// ErrNoRepository indicates the project root is not inside a git work tree.
	ErrNoRepository = errors.New("project is not a git repository")
	// ErrNoRemote indicates the configured remote is missing or has no URL.
	ErrNoRemote = errors.New("git remote not found")
	// ErrDetachedHead indicates HEAD is not on a branch and none was configured.
	ErrDetachedHead = errors.New("HEAD is detached; configure edit_links.branch")
	// ErrNoWebURL indicates a remote URL cannot be mapped to a browsable location.
	ErrNoWebURL = errors.New("remote URL has no web equivalent")
)

// RepoInfo is the repository metadata needed to build edit URLs.
type RepoInfo struct {
	RemoteURL string
	Branch    string
}

// Detect reads the remote URL and current branch of the repository containing root.
func Detect(root, remoteName string) (RepoInfo, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return RepoInfo{}, fmt.Errorf("%w: %s: %w", ErrNoRepository, root, err)
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return RepoInfo{}, fmt.Errorf("%w: %s: %w", ErrNoRemote, remoteName, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return RepoInfo{}, fmt.Errorf("%w: %s has no URL", ErrNoRemote, remoteName)
	}

	info := RepoInfo{RemoteURL: urls[0]}

	// Read HEAD unresolved so an unborn branch still reports its name.
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return RepoInfo{}, fmt.Errorf("read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		info.Branch = head.Target().Short()
	}
	return info, nil
}
