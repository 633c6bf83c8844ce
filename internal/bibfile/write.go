package bibfile

import (
	"context"
	"fmt"
	"time"

	"bibmerge/internal/bib"
	"bibmerge/internal/fileutil"
	"bibmerge/internal/render"
)

const defaultLockTimeout = 5 * time.Second

// WriteOptions tunes Write.
type WriteOptions struct {
	// Backup copies an existing output file to <path>.bak first.
	Backup bool
	// LockTimeout bounds the wait for the output lock; zero uses a default.
	LockTimeout time.Duration
}

// WriteResult reports what Write did.
type WriteResult struct {
	Path       string `json:"path"`
	BackupPath string `json:"backup_path,omitempty"`
	Bytes      int    `json:"bytes"`
	Records    int    `json:"records"`
}

// Write renders collection in the given dialect and replaces the file at path.
func Write(ctx context.Context, path string, collection *bib.Collection, format render.Format, opts WriteOptions) (WriteResult, error) {
	result := WriteResult{Path: path, Records: collection.Len()}
	data := []byte(render.Collection(collection, format))

	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}

	err := fileutil.WithLock(ctx, path, timeout, func() error {
		if opts.Backup {
			backupPath, copied, err := fileutil.Backup(path)
			if err != nil {
				return err
			}
			if copied {
				result.BackupPath = backupPath
			}
		}
		if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
			return err
		}
		result.Bytes = len(data)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("write %s: %w", path, err)
	}
	return result, nil
}
