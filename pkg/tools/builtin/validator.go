// Package builtin implements the tools shipped with the runtime: file
// access, code execution, web search, browser automation, repository
// operations, and knowledge base queries. Every filesystem-touching tool
// shares one PathValidator injected at construction.
package builtin

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultBlockedPatterns are always rejected regardless of the allowlist:
// credentials, key material, and VCS internals.
var DefaultBlockedPatterns = []string{
	".env",
	".envrc",
	"credentials",
	"secrets",
	".ssh/",
	".gnupg/",
	".aws/",
	".kube/config",
	"id_rsa",
	"id_ed25519",
	".pem",
	".pfx",
	".git/",
	".hg/",
	".svn/",
}

// PathValidator decides which filesystem paths built-in tools may touch.
// Paths must resolve inside one of the allowed roots and must not match a
// blocked pattern. Relative paths resolve against the first root.
type PathValidator struct {
	roots   []string
	blocked []string
}

// NewPathValidator builds a validator over the given allowed roots. The
// default blocked patterns are always applied; extra patterns extend them.
func NewPathValidator(roots []string, extraBlocked ...string) (*PathValidator, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("at least one allowed root is required")
	}
	abs := make([]string, 0, len(roots))
	for _, r := range roots {
		a, err := filepath.Abs(r)
		if err != nil {
			return nil, fmt.Errorf("allowed root %q: %w", r, err)
		}
		abs = append(abs, filepath.Clean(a))
	}
	blocked := make([]string, 0, len(DefaultBlockedPatterns)+len(extraBlocked))
	for _, p := range DefaultBlockedPatterns {
		blocked = append(blocked, strings.ToLower(p))
	}
	for _, p := range extraBlocked {
		blocked = append(blocked, strings.ToLower(p))
	}
	return &PathValidator{roots: abs, blocked: blocked}, nil
}

// Validate resolves path to an absolute cleaned form and checks it against
// the blocklist and the allowed roots. The resolved path is returned so
// callers operate on exactly what was checked.
func (v *PathValidator) Validate(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is required")
	}
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(v.roots[0], resolved)
	}
	resolved = filepath.Clean(resolved)

	normalized := strings.ToLower(filepath.ToSlash(resolved))
	for _, pattern := range v.blocked {
		if strings.Contains(normalized, pattern) || strings.HasSuffix(normalized, strings.TrimSuffix(pattern, "/")) {
			return "", fmt.Errorf("path %q matches blocked pattern %q", path, pattern)
		}
	}

	for _, root := range v.roots {
		rel, err := filepath.Rel(root, resolved)
		if err != nil {
			continue
		}
		if rel == "." || (!strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "..") {
			return resolved, nil
		}
	}
	return "", fmt.Errorf("path %q is outside the allowed directories", path)
}

// Root returns the primary allowed root (the project directory).
func (v *PathValidator) Root() string {
	return v.roots[0]
}
