package builtin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// maxBackupsPerPath bounds how many timestamped .bak files are kept for one
// original path; older ones are pruned after each new backup.
const maxBackupsPerPath = 5

const backupTimeFormat = "20060102T150405.000"

// createBackup copies the current content of path to a timestamped sibling
// and prunes old backups. The backup path is returned.
func createBackup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read original for backup: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat original for backup: %w", err)
	}
	backupPath := fmt.Sprintf("%s.%s.bak", path, time.Now().UTC().Format(backupTimeFormat))
	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	pruneBackups(path)
	return backupPath, nil
}

// pruneBackups keeps the newest maxBackupsPerPath backups for path. Prune
// failures are ignored; stale backups are harmless.
func pruneBackups(path string) {
	matches, err := filepath.Glob(path + ".*.bak")
	if err != nil || len(matches) <= maxBackupsPerPath {
		return
	}
	// Timestamps sort lexicographically, newest last.
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-maxBackupsPerPath] {
		_ = os.Remove(old)
	}
}
