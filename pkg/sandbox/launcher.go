package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"sort"
	"strconv"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"

	"github.com/praxislabs/praxis/pkg/models"
)

const (
	// DefaultImage is the container image servers run in unless configured
	// otherwise. It must carry the runtimes common tool servers need
	// (node, python).
	DefaultImage = "ghcr.io/praxislabs/tool-sandbox:latest"

	// managedLabel marks containers this process launched, so stale ones
	// can be swept on startup.
	managedLabel = "praxis.managed=true"

	pingTimeout = 3 * time.Second
)

// Launcher wraps stdio tool servers in docker containers. The container
// runtime is probed once at construction; when it is unreachable the
// launcher reports unavailable and servers run unsandboxed.
type Launcher struct {
	cli       *client.Client
	image     string
	available bool
	logger    *slog.Logger
}

// NewLauncher probes the container runtime. image falls back to
// DefaultImage when empty. Never fails: an unreachable runtime produces a
// launcher whose Available() is false.
func NewLauncher(ctx context.Context, image string) *Launcher {
	if image == "" {
		image = DefaultImage
	}
	l := &Launcher{image: image, logger: slog.Default()}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		l.logger.Warn("Container runtime client unavailable, sandbox disabled", "error", err)
		return l
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if _, err := cli.Ping(pingCtx); err != nil {
		l.logger.Warn("Container runtime unreachable, sandbox disabled", "error", err)
		_ = cli.Close()
		return l
	}

	l.cli = cli
	l.available = true
	return l
}

// Available reports whether sandboxed launches are possible.
func (l *Launcher) Available() bool {
	return l.available
}

// Command builds the docker invocation that runs the server command inside
// an isolated container with the policy for its trust level: capabilities
// dropped, no privilege escalation, read-only rootfs with a small writable
// /tmp, CPU, memory, and pid caps, and network per policy. The server's
// stdio flows through the docker process, so the caller can treat the
// returned command exactly like the bare server command.
func (l *Launcher) Command(cfg models.ExternalServerConfig) *exec.Cmd {
	policy := PolicyFor(cfg.Trust)

	args := []string{
		"run", "--rm", "-i",
		"--cap-drop", "ALL",
		"--security-opt", "no-new-privileges",
		"--read-only",
		"--tmpfs", "/tmp:rw,size=" + policy.TmpfsSize,
		"--network", policy.NetworkMode,
		"--cpus", strconv.FormatFloat(policy.CPUs, 'f', 2, 64),
		"--memory", fmt.Sprintf("%dm", policy.MemoryBytes>>20),
		"--pids-limit", strconv.Itoa(policy.PidsLimit),
		"--label", managedLabel,
		"--label", "praxis.server=" + cfg.ID,
	}

	// Sorted env keys keep the invocation deterministic.
	keys := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-e", k+"="+cfg.Env[k])
	}

	args = append(args, l.image, cfg.Command)
	args = append(args, cfg.Args...)

	l.logger.Debug("Sandboxed server launch",
		"server", cfg.Name,
		"policy", policy.Name,
		"image", l.image)
	return exec.Command("docker", args...)
}

// Cleanup force-removes containers left behind by earlier runs. Returns
// the number removed.
func (l *Launcher) Cleanup(ctx context.Context) int {
	if !l.available {
		return 0
	}

	list, err := l.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", managedLabel)),
	})
	if err != nil {
		l.logger.Warn("Failed to list sandbox containers", "error", err)
		return 0
	}

	removed := 0
	for _, c := range list {
		if err := l.cli.ContainerRemove(ctx, c.ID, container.RemoveOptions{Force: true}); err != nil {
			l.logger.Warn("Failed to remove stale sandbox container",
				"container", c.ID, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		l.logger.Info("Removed stale sandbox containers", "count", removed)
	}
	return removed
}

// Close releases the runtime client.
func (l *Launcher) Close() error {
	if l.cli == nil {
		return nil
	}
	return l.cli.Close()
}
