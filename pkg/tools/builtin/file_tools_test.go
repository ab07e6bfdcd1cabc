package builtin

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func newValidator(t *testing.T) *PathValidator {
	t.Helper()
	v, err := NewPathValidator([]string{t.TempDir()})
	require.NoError(t, err)
	return v
}

func resultData(t *testing.T, res *models.ToolResult) map[string]any {
	t.Helper()
	require.True(t, res.Success, "tool failed: %s", res.Error)
	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	return data
}

func TestFileWriteAndReadRoundTrip(t *testing.T) {
	v := newValidator(t)
	write := NewFileWriteTool(v)
	read := NewFileReadTool(v)
	ctx := context.Background()

	res, err := write.Execute(ctx, map[string]any{"path": "src/hello.txt", "content": "hello"}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, "created", data["action"])

	res, err = read.Execute(ctx, map[string]any{"path": "src/hello.txt"}, nil)
	require.NoError(t, err)
	data = resultData(t, res)
	assert.Equal(t, "hello", data["content"])
	assert.Equal(t, "utf-8", data["encoding"])
}

func TestFileWriteBackupOnOverwrite(t *testing.T) {
	v := newValidator(t)
	write := NewFileWriteTool(v)
	ctx := context.Background()

	_, err := write.Execute(ctx, map[string]any{"path": "a.txt", "content": "v1"}, nil)
	require.NoError(t, err)
	res, err := write.Execute(ctx, map[string]any{"path": "a.txt", "content": "v2"}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, "overwritten", data["action"])

	backup, ok := data["backup"].(string)
	require.True(t, ok, "overwrite must report its backup")
	prior, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(prior))

	current, err := os.ReadFile(filepath.Join(v.Root(), "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(current))
}

func TestFileWriteAppend(t *testing.T) {
	v := newValidator(t)
	write := NewFileWriteTool(v)
	ctx := context.Background()

	_, err := write.Execute(ctx, map[string]any{"path": "log.txt", "content": "one\n"}, nil)
	require.NoError(t, err)
	res, err := write.Execute(ctx, map[string]any{"path": "log.txt", "content": "two\n", "append": true}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, "appended", data["action"])

	content, err := os.ReadFile(filepath.Join(v.Root(), "log.txt"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))
}

func TestBackupPruneKeepsFive(t *testing.T) {
	v := newValidator(t)
	write := NewFileWriteTool(v)
	ctx := context.Background()

	_, err := write.Execute(ctx, map[string]any{"path": "b.txt", "content": "v0"}, nil)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		// Distinct timestamps keep backup names unique.
		time.Sleep(2 * time.Millisecond)
		_, err = write.Execute(ctx, map[string]any{"path": "b.txt", "content": "v"}, nil)
		require.NoError(t, err)
	}

	backups, err := filepath.Glob(filepath.Join(v.Root(), "b.txt.*.bak"))
	require.NoError(t, err)
	assert.Len(t, backups, maxBackupsPerPath)
}

func TestFileDeleteRequiresBackup(t *testing.T) {
	v := newValidator(t)
	write := NewFileWriteTool(v)
	del := NewFileDeleteTool(v)
	ctx := context.Background()

	_, err := write.Execute(ctx, map[string]any{"path": "gone.txt", "content": "bye"}, nil)
	require.NoError(t, err)

	res, err := del.Execute(ctx, map[string]any{"path": "gone.txt"}, nil)
	require.NoError(t, err)
	data := resultData(t, res)

	_, statErr := os.Stat(filepath.Join(v.Root(), "gone.txt"))
	assert.True(t, os.IsNotExist(statErr))
	backup, _ := data["backup"].(string)
	prior, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "bye", string(prior))
}

func TestFileDeleteMissingFileFails(t *testing.T) {
	v := newValidator(t)
	del := NewFileDeleteTool(v)

	res, err := del.Execute(context.Background(), map[string]any{"path": "never.txt"}, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestFileReadBinaryBase64(t *testing.T) {
	v := newValidator(t)
	read := NewFileReadTool(v)
	raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01}
	require.NoError(t, os.WriteFile(filepath.Join(v.Root(), "img.png"), raw, 0o644))

	res, err := read.Execute(context.Background(), map[string]any{"path": "img.png"}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, "base64", data["encoding"])
	decoded, err := base64.StdEncoding.DecodeString(data["content"].(string))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestFileReadRejectsOutsideRoot(t *testing.T) {
	v := newValidator(t)
	read := NewFileReadTool(v)

	res, err := read.Execute(context.Background(), map[string]any{"path": "/etc/passwd"}, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "outside the allowed directories")
}

func TestFileListGlobAndRecursive(t *testing.T) {
	v := newValidator(t)
	list := NewFileListTool(v)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Join(v.Root(), "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root(), "a.go"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root(), "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root(), "sub", "c.go"), []byte("c"), 0o644))

	res, err := list.Execute(ctx, map[string]any{"path": ".", "glob": "*.go"}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	entries := data["entries"].([]listEntry)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.go", entries[0].Name)

	res, err = list.Execute(ctx, map[string]any{"path": ".", "glob": "*.go", "recursive": true}, nil)
	require.NoError(t, err)
	data = resultData(t, res)
	entries = data["entries"].([]listEntry)
	assert.Len(t, entries, 2)
}
