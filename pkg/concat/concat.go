// Package concat collects C++ source and header files from a directory tree
// and concatenates them into a single snapshot file.
package concat

import (
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Run walks args.Directory, collects every tracked source file, and writes
// the combined snapshot to args.Output. Traversal completes and the result is
// sorted before any writing begins. A nil error means the output file was
// fully written; on failure before the write phase no output file is created.
func Run(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Info("Starting snapshot",
		zap.String("directory", args.Directory),
		zap.String("output", args.Output))

	info, err := os.Stat(args.Directory)
	if err != nil || !info.IsDir() {
		logger.Error("Directory does not exist", zap.String("directory", args.Directory))
		return fmt.Errorf("directory %q does not exist", args.Directory)
	}

	files, err := collectFiles(args.Directory, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return fmt.Errorf("failed to collect files: %w", err)
	}

	// Sort full paths for a deterministic record order regardless of
	// filesystem traversal order.
	sort.Strings(files)

	if len(files) == 0 {
		logger.Error("No matching files found",
			zap.String("directory", args.Directory),
			zap.Strings("extensions", SourceExtensions))
		return fmt.Errorf("no matching files found in %q", args.Directory)
	}

	logger.Info("Discovered files",
		zap.Int("count", len(files)),
		zap.Strings("files", files))

	if err := writeSnapshot(args.Directory, args.Output, files, logger); err != nil {
		logger.Error("Failed to write snapshot", zap.String("output", args.Output), zap.Error(err))
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	logger.Info("Snapshot complete",
		zap.String("output", args.Output),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
