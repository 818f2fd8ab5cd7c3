package jsonstore

import (
	"io"
	"os"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const backupTimeLayout = "20060102T150405"

// backupPath returns the sibling path for a pre-mutation copy, tagged
// with a colon-free timestamp.
func backupPath(path string, now time.Time) string {
	return path + ".backup-" + now.UTC().Format(backupTimeLayout)
}

// writeBackup copies the current file to its backup sibling. A missing
// source is fine on first write; any other failure aborts the caller's
// mutation so the primary is never overwritten without a backup.
func writeBackup(path string, now time.Time) (string, error) {
	src, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", crerr.Wrap(err, "open store for backup")
	}
	defer src.Close()

	target := backupPath(path, now)
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", crerr.Wrap(err, "create backup file")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return "", crerr.Wrap(err, "copy store to backup")
	}
	if err := dst.Close(); err != nil {
		os.Remove(target)
		return "", crerr.Wrap(err, "flush backup file")
	}

	return target, nil
}

// writeAtomic lands content through a temp sibling and a rename so an
// interrupted run never leaves a torn primary file.
func writeAtomic(path string, content []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return crerr.Wrap(err, "write temp store file")
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return crerr.Wrap(err, "replace store file")
	}

	return nil
}
