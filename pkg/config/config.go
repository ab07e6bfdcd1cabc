// Package config loads and validates the praxis.yaml runtime configuration.
package config

// Config is the umbrella configuration object returned by Initialize() and
// threaded through the application. Every section is non-nil after loading.
type Config struct {
	path string // Configuration file path (for reference)

	Server    *ServerConfig
	LLM       *LLMConfig
	Agent     *AgentConfig
	Sandbox   *SandboxConfig
	Tools     *ToolsConfig
	Queue     *QueueConfig
	Retention *RetentionConfig
}

// Default returns a Config carrying every built-in default. Useful for tests
// and for running without a praxis.yaml at all.
func Default() *Config {
	return &Config{
		Server:    DefaultServerConfig(),
		LLM:       DefaultLLMConfig(),
		Agent:     DefaultAgentConfig(),
		Sandbox:   DefaultSandboxConfig(),
		Tools:     DefaultToolsConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

// Path returns the configuration file path this Config was loaded from, or
// empty when defaults were used.
func (c *Config) Path() string {
	return c.path
}
