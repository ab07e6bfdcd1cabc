package builtin

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// maxListEntries caps one listing so a recursive walk over a large tree
// cannot flood the step result.
const maxListEntries = 1000

type listEntry struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	IsDir    bool      `json:"is_dir"`
	Modified time.Time `json:"modified"`
}

// FileListTool enumerates directory contents.
type FileListTool struct {
	validator *PathValidator
}

// NewFileListTool creates the file_list tool.
func NewFileListTool(v *PathValidator) *FileListTool {
	return &FileListTool{validator: v}
}

func (t *FileListTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        "file_list",
		Description: "List directory contents, optionally recursive and filtered by a glob on the file name.",
		Category:    models.CategoryFilesystem,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Directory path, absolute or relative to the project directory",
				},
				"glob": map[string]any{
					"type":        "string",
					"description": "Glob pattern matched against file names, e.g. *.go",
				},
				"recursive": map[string]any{
					"type":        "boolean",
					"description": "Descend into subdirectories",
				},
			},
			"required": []string{"path"},
		},
	}
}

func (t *FileListTool) Execute(_ context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Path      string `json:"path"`
		Glob      string `json:"glob"`
		Recursive bool   `json:"recursive"`
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
	if !info.IsDir() {
		return failure("%s is not a directory", resolved), nil
	}

	entries := make([]listEntry, 0, 64)
	truncated := false
	appendEntry := func(path string, d fs.DirEntry) error {
		if args.Glob != "" {
			matched, merr := filepath.Match(args.Glob, d.Name())
			if merr != nil {
				return merr
			}
			if !matched {
				return nil
			}
		}
		fi, ierr := d.Info()
		if ierr != nil {
			return nil // entry vanished mid-walk
		}
		entries = append(entries, listEntry{
			Name:     d.Name(),
			Path:     path,
			Size:     fi.Size(),
			IsDir:    d.IsDir(),
			Modified: fi.ModTime().UTC(),
		})
		if len(entries) >= maxListEntries {
			truncated = true
			return fs.SkipAll
		}
		return nil
	}

	if args.Recursive {
		err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, werr error) error {
			if werr != nil {
				return nil // unreadable subtree, keep going
			}
			if path == resolved {
				return nil
			}
			return appendEntry(path, d)
		})
	} else {
		var dirEntries []fs.DirEntry
		dirEntries, err = os.ReadDir(resolved)
		if err == nil {
			for _, d := range dirEntries {
				if aerr := appendEntry(filepath.Join(resolved, d.Name()), d); aerr != nil {
					if !errors.Is(aerr, fs.SkipAll) {
						err = aerr
					}
					break
				}
			}
		}
	}
	if err != nil {
		return failure("list %s: %v", resolved, err), nil
	}

	return success(map[string]any{
		"path":      resolved,
		"entries":   entries,
		"count":     len(entries),
		"truncated": truncated,
	}), nil
}
