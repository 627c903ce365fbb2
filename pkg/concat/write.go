package concat

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// writeSnapshot writes one record per file, in the given order, to
// outputPath. Each record is a relative-path header line, a blank line, the
// file's content (newline-terminated), and a blank separator line. A file
// whose read fails gets an inline error marker instead of content and the
// snapshot keeps going; only output-file errors abort the run. The output
// file is created with truncate semantics and closed on all exit paths.
func writeSnapshot(rootDir, outputPath string, files []string, logger *zap.Logger) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(outFile)

	for _, file := range files {
		relPath, relErr := filepath.Rel(rootDir, file)
		if relErr != nil {
			logger.Warn("Unable to determine relative path, using full path",
				zap.String("filePath", file),
				zap.Error(relErr))
			relPath = file
		}

		if _, err := writer.WriteString(relPath + " :\n\n"); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", relPath, err)
		}

		if err := writeFileContent(writer, file, logger); err != nil {
			return err
		}

		// Separator after every record, content or marker alike.
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write separator: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// writeFileContent streams one file's decoded content into the writer,
// padding a missing trailing newline. A read or decode failure becomes an
// error marker line; only writer errors are returned.
func writeFileContent(writer *bufio.Writer, file string, logger *zap.Logger) error {
	raw, readErr := os.ReadFile(file)

	var content string
	if readErr == nil {
		content, readErr = decodeContent(raw)
	}

	if readErr != nil {
		logger.Warn("Failed to read file, writing error marker",
			zap.String("filePath", file),
			zap.Error(readErr))
		if _, err := writer.WriteString(fmt.Sprintf("[error reading file: %v]\n", readErr)); err != nil {
			return fmt.Errorf("failed to write error marker: %w", err)
		}
		return nil
	}

	if _, err := writer.WriteString(content); err != nil {
		return fmt.Errorf("failed to write content for %s: %w", file, err)
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write newline for %s: %w", file, err)
		}
	}

	return nil
}
