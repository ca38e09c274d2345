package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file's path to form its sidecar backup.
const BackupSuffix = ".bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup, replacing an older backup.
// Returns false without error when path does not exist.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat original for backup: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, BackupPath(path), content, stat.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}
