package editlink

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// WebURL converts a git remote URL into the repository's browsable https URL.
// SSH forms (git@host:owner/repo.git, ssh://git@host/owner/repo) are mapped to
// https; credentials and the .git suffix are dropped.
func WebURL(remote string) (string, error) {
	normalized := normalizeSSHURL(strings.TrimSpace(remote))

	u, err := url.Parse(normalized)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrNoWebURL, remote)
	}
	var host string
	switch u.Scheme {
	case "http", "https":
		host = u.Host
	case "ssh", "git":
		// SSH ports do not carry over to the web host.
		u.Scheme = "https"
		host = u.Hostname()
	default:
		return "", fmt.Errorf("%w: %s", ErrNoWebURL, remote)
	}
	repoPath := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if repoPath == "" {
		return "", fmt.Errorf("%w: %s", ErrNoWebURL, remote)
	}
	return u.Scheme + "://" + host + "/" + repoPath, nil
}

// normalizeSSHURL converts scp-style SSH URLs to ssh:// form for parsing.
func normalizeSSHURL(repoURL string) string {
	if strings.Contains(repoURL, "://") {
		return repoURL
	}
	at := strings.Index(repoURL, "@")
	colon := strings.Index(repoURL, ":")
	if at < 0 || colon < at {
		return repoURL
	}
	return "ssh://" + repoURL[:colon] + "/" + repoURL[colon+1:]
}

// Builder constructs edit URLs for source documents.
type Builder struct {
	BaseURL     string // browsable repository URL
	Branch      string
	FeaturesDir string // features directory relative to the repository root, slash separated
}

// URL returns the edit location of a document given its path relative to the features directory.
func (b Builder) URL(relativePath string) string {
	return strings.TrimSuffix(b.BaseURL, "/") + "/blob/" + b.Branch + "/" + path.Join(b.FeaturesDir, relativePath)
}
