package builtin

import (
	"fmt"

	"github.com/praxislabs/praxis/pkg/tools"
)

// Options configures the built-in tool set.
type Options struct {
	// Validator gates filesystem access for the file tools and anchors the
	// working directory for code execution.
	Validator *PathValidator
	// WeaviateURL points at the knowledge base; empty leaves knowledge
	// queries degraded.
	WeaviateURL string
	// BrowserHeadless runs Chrome without a window (the default in every
	// non-interactive deployment).
	BrowserHeadless bool
}

// RegisterAll constructs every built-in tool and adds it to the registry.
func RegisterAll(registry *tools.Registry, opts Options) error {
	if opts.Validator == nil {
		return fmt.Errorf("a path validator is required")
	}
	all := []tools.Tool{
		NewWebSearchTool(),
		NewFileReadTool(opts.Validator),
		NewFileWriteTool(opts.Validator),
		NewFileDeleteTool(opts.Validator),
		NewFileListTool(opts.Validator),
		NewCodeExecutionTool(opts.Validator),
		NewBrowserTool(opts.BrowserHeadless),
		NewRepoTool(),
		NewKnowledgeQueryTool(opts.WeaviateURL),
	}
	for _, t := range all {
		if err := registry.RegisterBuiltin(t); err != nil {
			return fmt.Errorf("register built-in tools: %w", err)
		}
	}
	return nil
}
