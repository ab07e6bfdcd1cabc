package config

import (
	"net"
	"strconv"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// AllowedWSOrigins lists additional origins accepted for websocket
	// upgrades beyond the listener's own host.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// DefaultServerConfig returns the built-in listener defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "127.0.0.1",
		Port: 8090,
	}
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SandboxConfig controls container isolation for user-added stdio tool
// servers.
type SandboxConfig struct {
	// Image is the container image sandboxed servers are launched in.
	Image string `yaml:"image"`

	// Disabled turns the sandbox off entirely; every stdio server then
	// runs directly on the host.
	Disabled bool `yaml:"disabled,omitempty"`
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Image: "ghcr.io/praxislabs/praxis-sandbox:latest",
	}
}

// ToolsConfig parameterizes the built-in tool set.
type ToolsConfig struct {
	// WorkspaceRoots are the directories file tools may touch. Paths
	// outside every root are rejected before execution.
	WorkspaceRoots []string `yaml:"workspace_roots"`

	// WeaviateURL points at the knowledge base; empty leaves knowledge
	// queries degraded but callable.
	WeaviateURL string `yaml:"weaviate_url,omitempty"`

	// BrowserHeadless runs Chrome without a window. Defaults to true.
	BrowserHeadless *bool `yaml:"browser_headless,omitempty"`
}

// DefaultToolsConfig returns the built-in tool defaults.
func DefaultToolsConfig() *ToolsConfig {
	return &ToolsConfig{
		WorkspaceRoots: []string{"."},
	}
}

// Headless reports whether the browser tool should run headless.
func (c *ToolsConfig) Headless() bool {
	return boolValue(c.BrowserHeadless, true)
}
