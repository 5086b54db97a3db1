package aggregate

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Console colors for user-facing progress lines. Diagnostics go to the
// structured logger instead.
var (
	noticeColor  = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
)

// Run executes one aggregation pass: it truncates the output file, walks
// each configured folder in order, and appends every qualifying text file
// as a path line, the raw contents, and two blank lines. It returns the
// number of files written.
func Run(cfg *Config, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Info("Starting aggregation",
		zap.Strings("folders", cfg.Folders),
		zap.String("output", cfg.Output))

	if cfg.UsingDefaultFolders {
		noticeColor.Printf("No folders given, using default list: %s\n", strings.Join(cfg.Folders, ", "))
	} else {
		noticeColor.Printf("Scanning specified folders: %s\n", strings.Join(cfg.Folders, ", "))
	}

	classifier := NewClassifier(cfg.Patterns, cfg.IncludeFiles, logger)

	outFile, err := os.Create(cfg.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", cfg.Output), zap.Error(err))
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", cfg.Output), zap.Error(closeErr))
		}
	}()
	writer := bufio.NewWriter(outFile)

	// The output file may live inside a scanned folder; never re-ingest it.
	outputAbs, err := filepath.Abs(cfg.Output)
	if err != nil {
		outputAbs = cfg.Output
	}

	cwd, err := os.Getwd()
	if err != nil {
		logger.Warn("Failed to determine working directory, using raw paths", zap.Error(err))
		cwd = ""
	}

	count := 0
	for _, folder := range cfg.Folders {
		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			warnColor.Printf("Warning: folder %s does not exist or is not readable, skipping\n", folder)
			logger.Warn("Skipping folder", zap.String("folder", folder), zap.Error(err))
			continue
		}

		noticeColor.Printf("Scanning folder: %s\n", folder)

		walkErr := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			absPath, absErr := filepath.Abs(path)
			if absErr == nil && absPath == outputAbs {
				return nil
			}

			if !classifier.Qualifies(path) {
				if cfg.Verbose {
					logger.Debug("File does not match allow-lists", zap.String("path", path))
				}
				return nil
			}

			isBinary, binErr := IsBinaryFile(path)
			if binErr != nil {
				logger.Warn("Failed to probe file content", zap.String("path", path), zap.Error(binErr))
				return nil
			}
			if isBinary {
				warnColor.Printf("Skipping binary file: %s\n", path)
				logger.Info("Skipped binary file", zap.String("path", path))
				return nil
			}

			if err := writeEntry(writer, cwd, path, logger); err != nil {
				logger.Warn("Failed to aggregate file", zap.String("path", path), zap.Error(err))
				return nil
			}
			count++
			return nil
		})
		if walkErr != nil {
			logger.Warn("Error walking folder", zap.String("folder", folder), zap.Error(walkErr))
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", cfg.Output), zap.Error(err))
		return count, fmt.Errorf("failed to flush output: %w", err)
	}

	if cfg.TreeFile != "" {
		if err := WriteTree(cfg.Folders, cfg.TreeFile, logger); err != nil {
			logger.Warn("Failed to write tree file", zap.String("file", cfg.TreeFile), zap.Error(err))
		}
	}

	successColor.Printf("Processed %d files\n", count)
	successColor.Printf("Output written to %s\n", outputAbs)
	logger.Info("Aggregation completed",
		zap.Int("filesProcessed", count),
		zap.String("output", outputAbs),
		zap.Duration("elapsed", time.Since(startTime)))
	return count, nil
}

// writeEntry appends one aggregated file: its path relative to the working
// directory (the raw path when relativization fails), the raw bytes, and
// two blank lines as a separator.
func writeEntry(writer *bufio.Writer, cwd, path string, logger *zap.Logger) error {
	relPath := path
	if cwd != "" {
		if rel, err := filepath.Rel(cwd, path); err == nil {
			relPath = rel
		} else {
			logger.Debug("Unable to determine relative path, using raw path",
				zap.String("path", path),
				zap.Error(err))
		}
	}
	relPath = filepath.ToSlash(relPath)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	noticeColor.Printf("Processing: %s\n", relPath)

	if _, err := writer.WriteString(relPath + "\n"); err != nil {
		return fmt.Errorf("error writing path header for %s: %w", relPath, err)
	}
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("error writing contents of %s: %w", relPath, err)
	}
	if _, err := writer.WriteString("\n\n"); err != nil {
		return fmt.Errorf("error writing separator after %s: %w", relPath, err)
	}
	return nil
}
