package builtin

import (
	"context"
	"os"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// FileDeleteTool removes files. A backup is mandatory: if the .bak cannot
// be written the deletion does not happen.
type FileDeleteTool struct {
	validator *PathValidator
}

// NewFileDeleteTool creates the file_delete tool.
func NewFileDeleteTool(v *PathValidator) *FileDeleteTool {
	return &FileDeleteTool{validator: v}
}

func (t *FileDeleteTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:          "file_delete",
		Description:   "Delete a file. A timestamped .bak of the content is written first; deletion fails if the backup cannot be created.",
		Category:      models.CategoryFilesystem,
		IsDestructive: true,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "File path, absolute or relative to the project directory",
				},
			},
			"required": []string{"path"},
		},
	}
}

func (t *FileDeleteTool) Execute(_ context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Path string `json:"path"`
	}
	if err := decodeParams(params, &args); err != nil {
		return nil, err
	}

	resolved, err := t.validator.Validate(args.Path)
	if err != nil {
		return failure("%v", err), nil
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return failure("stat %s: %v", resolved, err), nil
	}
	if info.IsDir() {
		return failure("refusing to delete directory %s", resolved), nil
	}

	backupPath, err := createBackup(resolved)
	if err != nil {
		return failure("backup required before delete: %v", err), nil
	}
	if err := os.Remove(resolved); err != nil {
		return failure("delete %s: %v", resolved, err), nil
	}

	return success(map[string]any{
		"path":   resolved,
		"backup": backupPath,
	}), nil
}
