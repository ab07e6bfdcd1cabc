package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// praxisYAMLConfig mirrors the praxis.yaml file structure. Nil sections fall
// back to built-in defaults.
type praxisYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	LLM       *LLMConfig       `yaml:"llm"`
	Agent     *AgentConfig     `yaml:"agent"`
	Sandbox   *SandboxConfig   `yaml:"sandbox"`
	Tools     *ToolsConfig     `yaml:"tools"`
	Queue     *QueueConfig     `yaml:"queue"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read praxis.yaml (a missing file means all defaults)
//  2. Expand environment variables
//  3. Merge file sections over built-in defaults
//  4. Apply environment variable overrides
//  5. Validate all configuration
func Initialize(_ context.Context, path string) (*Config, error) {
	log := slog.With("config_file", path)
	log.Info("Initializing configuration")

	cfg, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"llm_provider", cfg.LLM.Provider,
		"workers", cfg.Queue.WorkerCount,
		"default_autonomy", cfg.Agent.DefaultAutonomyLevel,
		"sandbox_disabled", cfg.Sandbox.Disabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Praxis runs fine with zero configuration; everything has a
			// sane local default.
			slog.Info("No configuration file found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, NewLoadError(path, err)
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes the original data through on template errors so the
	// YAML parser produces the clearer message.
	data = ExpandEnv(data)

	var file praxisYAMLConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	// Merge each provided section over its defaults so a partial section
	// keeps the unset defaults.
	if err := mergeSections(cfg, &file); err != nil {
		return nil, NewLoadError(path, err)
	}

	cfg.path = path
	return cfg, nil
}

func mergeSections(cfg *Config, file *praxisYAMLConfig) error {
	if err := mergeSection(cfg.Server, file.Server); err != nil {
		return fmt.Errorf("failed to merge server config: %w", err)
	}
	if err := mergeSection(cfg.LLM, file.LLM); err != nil {
		return fmt.Errorf("failed to merge llm config: %w", err)
	}
	if err := mergeSection(cfg.Agent, file.Agent); err != nil {
		return fmt.Errorf("failed to merge agent config: %w", err)
	}
	if err := mergeSection(cfg.Sandbox, file.Sandbox); err != nil {
		return fmt.Errorf("failed to merge sandbox config: %w", err)
	}
	if err := mergeSection(cfg.Tools, file.Tools); err != nil {
		return fmt.Errorf("failed to merge tools config: %w", err)
	}
	if err := mergeSection(cfg.Queue, file.Queue); err != nil {
		return fmt.Errorf("failed to merge queue config: %w", err)
	}
	if err := mergeSection(cfg.Retention, file.Retention); err != nil {
		return fmt.Errorf("failed to merge retention config: %w", err)
	}
	return nil
}

// mergeSection merges non-zero values from a YAML section over the defaults.
func mergeSection[T any](dst *T, src *T) error {
	if src == nil {
		return nil
	}
	return mergo.Merge(dst, *src, mergo.WithOverride)
}

// applyEnvOverrides applies the recognized PRAXIS_* environment variables on
// top of the file configuration. PRAXIS_TEST_MODE and PRAXIS_DATA_DIR are
// consumed directly by pkg/llm and pkg/database.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PRAXIS_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PRAXIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		} else {
			slog.Warn("Ignoring invalid PRAXIS_PORT", "value", v)
		}
	}
	if v := os.Getenv("PRAXIS_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("PRAXIS_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("PRAXIS_SANDBOX_IMAGE"); v != "" {
		cfg.Sandbox.Image = v
	}
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}
