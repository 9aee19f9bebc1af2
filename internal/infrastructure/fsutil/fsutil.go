// Package fsutil holds best-effort cleanup helpers for partial job output.
package fsutil

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bnema/vidq/internal/infrastructure/logger"
)

// DeleteFile removes path if it exists. A missing file is not an error and
// other failures are only logged: cleanup must never mask the error that
// caused it.
func DeleteFile(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn.Printf("delete file %s: %v", logger.SanitizeForLog(path), err)
	}
}

// DeleteDir removes path and everything below it, with the same contract
// as DeleteFile.
func DeleteDir(path string) {
	if err := os.RemoveAll(path); err != nil {
		logger.Warn.Printf("delete directory %s: %v", logger.SanitizeForLog(path), err)
	}
}
