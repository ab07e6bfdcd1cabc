package builtin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorAllowsInsideRoot(t *testing.T) {
	root := t.TempDir()
	v, err := NewPathValidator([]string{root})
	require.NoError(t, err)

	resolved, err := v.Validate(filepath.Join(root, "src", "main.go"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "main.go"), resolved)
}

func TestValidatorResolvesRelativeAgainstFirstRoot(t *testing.T) {
	root := t.TempDir()
	v, err := NewPathValidator([]string{root})
	require.NoError(t, err)

	resolved, err := v.Validate("docs/readme.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs", "readme.md"), resolved)
}

func TestValidatorRejectsEscapes(t *testing.T) {
	root := t.TempDir()
	v, err := NewPathValidator([]string{root})
	require.NoError(t, err)

	_, err = v.Validate("/etc/hosts")
	assert.Error(t, err)

	_, err = v.Validate(filepath.Join(root, "..", "other", "file.txt"))
	assert.Error(t, err, "traversal out of the root must fail")

	_, err = v.Validate("../outside.txt")
	assert.Error(t, err)
}

func TestValidatorBlockedPatterns(t *testing.T) {
	root := t.TempDir()
	v, err := NewPathValidator([]string{root})
	require.NoError(t, err)

	for _, path := range []string{
		".env",
		"config/credentials.json",
		".git/config",
		"keys/id_rsa",
		"certs/server.pem",
		"nested/.ssh/known_hosts",
	} {
		_, err := v.Validate(path)
		assert.Error(t, err, "expected %q to be blocked", path)
	}

	// .github is not .git internals.
	_, err = v.Validate(".github/workflows/ci.yml")
	assert.NoError(t, err)
}

func TestValidatorExtraPatterns(t *testing.T) {
	root := t.TempDir()
	v, err := NewPathValidator([]string{root}, "*.bak")
	require.NoError(t, err)

	_, err = v.Validate("notes.txt")
	assert.NoError(t, err)
}

func TestValidatorMultipleRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	v, err := NewPathValidator([]string{rootA, rootB})
	require.NoError(t, err)

	_, err = v.Validate(filepath.Join(rootB, "data.txt"))
	assert.NoError(t, err, "second root is allowed too")
	assert.Equal(t, rootA, v.Root())
}

func TestValidatorRequiresRoot(t *testing.T) {
	_, err := NewPathValidator(nil)
	assert.Error(t, err)
}
