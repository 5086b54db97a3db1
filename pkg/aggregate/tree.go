package aggregate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// WriteTree writes a directory tree listing of the scanned folders to
// outputPath. The listing is informational only and is kept out of the
// aggregate output file.
func WriteTree(folders []string, outputPath string, logger *zap.Logger) error {
	var treeBuilder strings.Builder

	for _, folder := range folders {
		absPath, err := filepath.Abs(folder)
		if err != nil {
			logger.Warn("Failed to get absolute path for tree generation", zap.String("folder", folder), zap.Error(err))
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil || !info.IsDir() {
			logger.Warn("Cannot stat folder for tree generation", zap.String("folder", absPath), zap.Error(err))
			continue
		}

		treeBuilder.WriteString(fmt.Sprintf("%s/\n", folder))
		subtree, err := buildTreeRecursively(absPath, "", logger)
		if err != nil {
			logger.Warn("Failed to generate subtree", zap.String("folder", absPath), zap.Error(err))
			continue
		}
		if subtree != "" {
			treeBuilder.WriteString(subtree)
			treeBuilder.WriteString("\n")
		}
	}

	if err := os.WriteFile(outputPath, []byte(treeBuilder.String()), 0644); err != nil {
		return fmt.Errorf("failed to write tree file %s: %w", outputPath, err)
	}
	logger.Debug("Wrote tree file", zap.String("file", outputPath))
	return nil
}

// buildTreeRecursively renders one directory level with box-drawing
// connectors, directories first, case-insensitive alphabetical.
func buildTreeRecursively(directory, prefix string, logger *zap.Logger) (string, error) {
	var output []string

	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return "", fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))
			subtree, err := buildTreeRecursively(filepath.Join(directory, entry.Name()), prefix+extension, logger)
			if err != nil {
				continue
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, fmt.Sprintf("%s%s%s", prefix, connector, entry.Name()))
		}
	}

	return strings.Join(output, "\n"), nil
}
