package models

import (
	"fmt"
	"time"
)

// TransportKind selects how an external tool server is reached.
type TransportKind string

// Transports.
const (
	TransportStdio TransportKind = "stdio"
	TransportHTTP  TransportKind = "http"
)

// TrustLevel expresses how much an external server is trusted. It drives
// sandboxing and the default approval requirement of the server's tools.
type TrustLevel string

// Trust levels. user_added servers default to sandboxed launch and their
// tools default to requiring approval.
const (
	TrustBuiltin   TrustLevel = "builtin"
	TrustVerified  TrustLevel = "verified"
	TrustUserAdded TrustLevel = "user_added"
)

// ExternalServerConfig describes one external tool server. Stdio fields are
// meaningful iff Transport==stdio, HTTP fields iff Transport==http.
type ExternalServerConfig struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Transport   TransportKind `json:"transport"`

	// stdio
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`

	// http
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`

	Trust          TrustLevel `json:"trust"`
	SandboxEnabled bool       `json:"sandbox_enabled"`
	Category       string     `json:"category,omitempty"`
	Enabled        bool       `json:"enabled"`
	CreatedAt      time.Time  `json:"created_at,omitempty"`
	LastConnected  *time.Time `json:"last_connected,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
}

// Validate enforces the transport/field pairing invariants.
func (c *ExternalServerConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("server name is required")
	}
	switch c.Transport {
	case TransportStdio:
		if c.Command == "" {
			return fmt.Errorf("server %q: stdio transport requires a command", c.Name)
		}
		if c.URL != "" {
			return fmt.Errorf("server %q: stdio transport must not set url", c.Name)
		}
	case TransportHTTP:
		if c.URL == "" {
			return fmt.Errorf("server %q: http transport requires a url", c.Name)
		}
		if c.Command != "" {
			return fmt.Errorf("server %q: http transport must not set command", c.Name)
		}
	default:
		return fmt.Errorf("server %q: unknown transport %q", c.Name, c.Transport)
	}
	switch c.Trust {
	case TrustBuiltin, TrustVerified, TrustUserAdded:
	default:
		return fmt.Errorf("server %q: unknown trust level %q", c.Name, c.Trust)
	}
	return nil
}

// MCPServersFile is the Claude Desktop / Claude Code configuration shape
// accepted by the import endpoint. Each entry is either a stdio server
// (command/args/env) or an HTTP server (url/headers).
type MCPServersFile struct {
	MCPServers map[string]MCPServerEntry `json:"mcpServers"`
}

// MCPServerEntry is one server in an MCPServersFile.
type MCPServerEntry struct {
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}
