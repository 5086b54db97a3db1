package aggregate

import (
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

// Classifier decides whether a file qualifies for aggregation. A file
// qualifies iff it matches the allow-list or the include-filename list,
// and its content is not binary.
type Classifier struct {
	patterns []*regexp.Regexp
	include  map[string]bool
	logger   *zap.Logger
}

// NewClassifier compiles the glob allow-list and include-filename list.
// Include entries are reduced to their basename, so a config entry like
// "docs/README.md" still matches any README.md encountered.
func NewClassifier(globs, includeFiles []string, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}

	include := make(map[string]bool, len(includeFiles))
	for _, name := range includeFiles {
		base := filepath.Base(name)
		if base != "" && base != "." {
			include[base] = true
		}
	}

	return &Classifier{
		patterns: CompilePatterns(globs, logger),
		include:  include,
		logger:   logger,
	}
}

// IsCodeFile reports whether the file's basename matches any allow-list
// pattern.
func (c *Classifier) IsCodeFile(path string) bool {
	base := filepath.Base(path)
	for _, re := range c.patterns {
		if re.MatchString(base) {
			return true
		}
	}
	return false
}

// IsIncludeFile reports whether the file's basename is on the
// include-filename list.
func (c *Classifier) IsIncludeFile(path string) bool {
	return c.include[filepath.Base(path)]
}

// Qualifies reports whether a file should be aggregated based on its name
// alone; binary detection is a separate content check.
func (c *Classifier) Qualifies(path string) bool {
	return c.IsCodeFile(path) || c.IsIncludeFile(path)
}
