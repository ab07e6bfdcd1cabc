package sandbox

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func TestPolicyForTrust(t *testing.T) {
	p := PolicyFor(models.TrustUserAdded)
	assert.Equal(t, "DEFAULT_POLICY", p.Name)
	assert.Equal(t, "none", p.NetworkMode)

	p = PolicyFor(models.TrustVerified)
	assert.Equal(t, "VERIFIED_POLICY", p.Name)
	assert.Equal(t, "bridge", p.NetworkMode)

	// Shared caps regardless of policy.
	assert.Equal(t, 0.5, p.CPUs)
	assert.Equal(t, int64(512<<20), p.MemoryBytes)
	assert.Equal(t, 50, p.PidsLimit)
}

func TestCommandAppliesIsolationFlags(t *testing.T) {
	l := &Launcher{image: "sandbox:test", logger: slog.Default()}
	cmd := l.Command(models.ExternalServerConfig{
		ID:        "srv-1",
		Name:      "notes",
		Transport: models.TransportStdio,
		Command:   "npx",
		Args:      []string{"-y", "@example/notes-server"},
		Env:       map[string]string{"B_TOKEN": "2", "A_TOKEN": "1"},
		Trust:     models.TrustUserAdded,
	})

	line := strings.Join(cmd.Args, " ")
	assert.Contains(t, line, "run --rm -i")
	assert.Contains(t, line, "--cap-drop ALL")
	assert.Contains(t, line, "--security-opt no-new-privileges")
	assert.Contains(t, line, "--read-only")
	assert.Contains(t, line, "--tmpfs /tmp:rw,size=64m")
	assert.Contains(t, line, "--network none")
	assert.Contains(t, line, "--cpus 0.50")
	assert.Contains(t, line, "--memory 512m")
	assert.Contains(t, line, "--pids-limit 50")
	assert.Contains(t, line, "--label praxis.server=srv-1")
	// Env is passed through in sorted order.
	assert.Contains(t, line, "-e A_TOKEN=1 -e B_TOKEN=2")
	// Image then the real command and its args, in order.
	assert.Contains(t, line, "sandbox:test npx -y @example/notes-server")
}

func TestCommandVerifiedKeepsNetwork(t *testing.T) {
	l := &Launcher{image: "sandbox:test", logger: slog.Default()}
	cmd := l.Command(models.ExternalServerConfig{
		ID:        "srv-2",
		Name:      "search",
		Transport: models.TransportStdio,
		Command:   "search-server",
		Trust:     models.TrustVerified,
	})
	assert.Contains(t, strings.Join(cmd.Args, " "), "--network bridge")
}

func TestLauncherUnavailableWithoutRuntime(t *testing.T) {
	// Point the client at a dead endpoint so the ping fails fast.
	t.Setenv("DOCKER_HOST", "tcp://127.0.0.1:1")

	l := NewLauncher(context.Background(), "")
	require.NotNil(t, l)
	assert.False(t, l.Available())
	assert.Equal(t, 0, l.Cleanup(context.Background()))
	assert.NoError(t, l.Close())
}
