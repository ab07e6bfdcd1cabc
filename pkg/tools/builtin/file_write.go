package builtin

import (
	"context"
	"os"
	"path/filepath"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// FileWriteTool creates or overwrites files. Overwrites leave a timestamped
// .bak of the prior content behind.
type FileWriteTool struct {
	validator *PathValidator
}

// NewFileWriteTool creates the file_write tool.
func NewFileWriteTool(v *PathValidator) *FileWriteTool {
	return &FileWriteTool{validator: v}
}

func (t *FileWriteTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:          "file_write",
		Description:   "Write content to a file, creating parent directories as needed. Overwriting keeps a timestamped .bak of the previous content.",
		Category:      models.CategoryFilesystem,
		IsDestructive: true,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "File path, absolute or relative to the project directory",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "Content to write",
				},
				"append": map[string]any{
					"type":        "boolean",
					"description": "Append instead of overwrite",
				},
			},
			"required": []string{"path", "content"},
		},
	}
}

func (t *FileWriteTool) Execute(_ context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Path    string `json:"path"`
		Content string `json:"content"`
		Append  bool   `json:"append"`
	}
	if err := decodeParams(params, &args); err != nil {
		return nil, err
	}

	resolved, err := t.validator.Validate(args.Path)
	if err != nil {
		return failure("%v", err), nil
	}

	existed := false
	if info, err := os.Stat(resolved); err == nil {
		if info.IsDir() {
			return failure("%s is a directory", resolved), nil
		}
		existed = true
	}

	backupPath := ""
	if existed && !args.Append {
		backupPath, err = createBackup(resolved)
		if err != nil {
			return failure("backup before overwrite: %v", err), nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return failure("create parent directory: %v", err), nil
	}

	if args.Append {
		f, err := os.OpenFile(resolved, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return failure("open %s for append: %v", resolved, err), nil
		}
		_, werr := f.WriteString(args.Content)
		cerr := f.Close()
		if werr != nil {
			return failure("append to %s: %v", resolved, werr), nil
		}
		if cerr != nil {
			return failure("close %s: %v", resolved, cerr), nil
		}
	} else {
		if err := os.WriteFile(resolved, []byte(args.Content), 0o644); err != nil {
			return failure("write %s: %v", resolved, err), nil
		}
	}

	action := "created"
	switch {
	case existed && args.Append:
		action = "appended"
	case existed:
		action = "overwritten"
	}
	data := map[string]any{
		"path":   resolved,
		"action": action,
		"size":   len(args.Content),
	}
	if backupPath != "" {
		data["backup"] = backupPath
	}
	return success(data), nil
}
