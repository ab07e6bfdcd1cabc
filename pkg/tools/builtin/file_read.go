package builtin

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// maxReadBytes is the largest file the read tool will return (50 MiB).
const maxReadBytes = 50 << 20

// binaryExtensions lists extensions returned base64-encoded instead of as
// text.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".ico": true, ".pdf": true, ".zip": true, ".tar": true, ".gz": true,
	".bz2": true, ".xz": true, ".7z": true, ".exe": true, ".dll": true,
	".so": true, ".dylib": true, ".bin": true, ".wasm": true, ".sqlite": true,
	".db": true, ".mp3": true, ".mp4": true, ".wav": true, ".ogg": true,
	".avi": true, ".mov": true, ".woff": true, ".woff2": true, ".ttf": true,
}

// FileReadTool reads files inside the allowed directories.
type FileReadTool struct {
	validator *PathValidator
}

// NewFileReadTool creates the file_read tool.
func NewFileReadTool(v *PathValidator) *FileReadTool {
	return &FileReadTool{validator: v}
}

func (t *FileReadTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        "file_read",
		Description: "Read a file from the project. Binary files are returned base64-encoded. Files over 50 MiB are refused.",
		Category:    models.CategoryFilesystem,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "File path, absolute or relative to the project directory",
				},
				"encoding": map[string]any{
					"type":        "string",
					"enum":        []string{"utf-8", "base64"},
					"description": "Force the output encoding instead of detecting by extension",
				},
			},
			"required": []string{"path"},
		},
	}
}

func (t *FileReadTool) Execute(_ context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Path     string `json:"path"`
		Encoding string `json:"encoding"`
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
		return failure("%s is a directory, use file_list", resolved), nil
	}
	if info.Size() > maxReadBytes {
		return failure("file too large: %d bytes (limit %d)", info.Size(), maxReadBytes), nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return failure("read %s: %v", resolved, err), nil
	}

	encoding := args.Encoding
	if encoding == "" {
		ext := strings.ToLower(filepath.Ext(resolved))
		if binaryExtensions[ext] {
			encoding = "base64"
		} else {
			encoding = "utf-8"
		}
	}
	var content string
	if encoding == "base64" {
		content = base64.StdEncoding.EncodeToString(data)
	} else {
		content = string(data)
	}

	return success(map[string]any{
		"path":     resolved,
		"content":  content,
		"encoding": encoding,
		"size":     info.Size(),
	}), nil
}
