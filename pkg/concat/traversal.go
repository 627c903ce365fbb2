package concat

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// collectFiles walks rootDir depth-first and returns the full paths of every
// regular file carrying a tracked suffix. Directories named in IgnoredDirs
// are pruned entirely; the root itself is always walked even if its own name
// matches. Per-entry walk errors are logged and skipped.
func collectFiles(rootDir string, logger *zap.Logger) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != rootDir && IgnoredDirs[d.Name()] {
				logger.Debug("Skipping ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if hasSourceExtension(d.Name()) {
			files = append(files, path)
			logger.Debug("Added file to snapshot list", zap.String("filePath", path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// hasSourceExtension reports whether name ends in one of the tracked
// suffixes. The comparison is case-sensitive.
func hasSourceExtension(name string) bool {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
