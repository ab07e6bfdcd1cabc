package mcp

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/praxislabs/praxis/pkg/models"
)

// Sandbox wraps stdio server commands in an isolated container. A nil
// Sandbox, or one whose runtime is unavailable, means servers launch
// directly on the host.
type Sandbox interface {
	Available() bool
	Command(cfg models.ExternalServerConfig) *exec.Cmd
}

// createTransport builds the SDK transport for a server config.
func createTransport(cfg models.ExternalServerConfig, sandbox Sandbox) (mcpsdk.Transport, error) {
	switch cfg.Transport {
	case models.TransportStdio:
		return createStdioTransport(cfg, sandbox)
	case models.TransportHTTP:
		return createHTTPTransport(cfg)
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Transport)
	}
}

func createStdioTransport(cfg models.ExternalServerConfig, sandbox Sandbox) (*mcpsdk.CommandTransport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("stdio transport requires command")
	}

	if cfg.SandboxEnabled {
		if sandbox != nil && sandbox.Available() {
			return &mcpsdk.CommandTransport{Command: sandbox.Command(cfg)}, nil
		}
		// Documented downgrade: the server still runs, just without
		// container isolation.
		slog.Warn("Container runtime unavailable, launching external server unsandboxed",
			"server", cfg.Name,
			"trust", cfg.Trust)
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	env := os.Environ()
	for k, v := range cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

func createHTTPTransport(cfg models.ExternalServerConfig) (*mcpsdk.StreamableClientTransport, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("http transport requires url")
	}
	transport := &mcpsdk.StreamableClientTransport{
		Endpoint: cfg.URL,
	}
	if len(cfg.Headers) > 0 {
		transport.HTTPClient = &http.Client{
			Transport: &headerTransport{
				base:    http.DefaultTransport,
				headers: cfg.Headers,
			},
		}
	}
	return transport, nil
}

// headerTransport wraps an http.RoundTripper to add configured headers
// (authorization tokens and the like) to every request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}
