package aggregate

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// DefaultCodePatterns is the built-in extension/basename allow-list.
// Entries are shell-style globs matched against a file's basename.
var DefaultCodePatterns = []string{
	"*.go", "*.py", "*.js", "*.jsx", "*.ts", "*.tsx",
	"*.c", "*.h", "*.cpp", "*.hpp", "*.rs", "*.java", "*.kt",
	"*.rb", "*.php", "*.sh", "*.sql", "*.proto",
	"*.html", "*.css", "*.scss",
	"*.json", "*.yaml", "*.yml", "*.toml", "*.md",
	"Makefile", "Dockerfile",
}

// DefaultIncludeFiles lists basenames aggregated regardless of extension.
var DefaultIncludeFiles = []string{
	"README.md", "LICENSE", "go.mod",
	"package.json", "requirements.txt", "pyproject.toml",
	".gitignore", ".env.example",
}

// CompilePatterns converts glob-style allow-list entries into anchored
// regular expressions matched against basenames. Invalid entries are
// logged and dropped rather than failing the run.
func CompilePatterns(globs []string, logger *zap.Logger) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(globs))
	for _, glob := range globs {
		trimmed := strings.TrimSpace(glob)
		if trimmed == "" {
			continue
		}

		pattern := escapeSpecialChars(trimmed)
		pattern = wildcardToRegex(pattern)

		re, err := regexp.Compile("^" + pattern + "$")
		if err != nil {
			logger.Warn("Invalid allow-list pattern",
				zap.String("pattern", trimmed),
				zap.Error(err))
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// escapeSpecialChars escapes regex special characters except for '*' and '?'.
func escapeSpecialChars(pattern string) string {
	specialChars := `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// wildcardToRegex converts '*' and '?' wildcards to regex equivalents.
// Basenames never contain a path separator, so '*' maps to '.*'.
func wildcardToRegex(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "*", `.*`)
	return strings.ReplaceAll(pattern, "?", ".")
}
