package aggregate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is where the combined output lands when no output path
// is given on the command line or in a config file.
const DefaultOutputFile = "combined_code.txt"

// DefaultFolders is the built-in scan list used when no folders are given.
var DefaultFolders = []string{"src", "lib", "app", "internal", "cmd", "pkg", "scripts", "tests"}

// Config holds the resolved settings for one aggregation run.
type Config struct {
	Output       string   // Destination path for the combined output file.
	Folders      []string // Folders to scan, in order.
	Patterns     []string // Glob-style extension/basename allow-list.
	IncludeFiles []string // Exact basenames aggregated regardless of extension.
	TreeFile     string   // Optional destination for a directory tree listing.
	Verbose      bool     // Enables debug-level logging.

	// UsingDefaultFolders records whether Folders came from the built-in
	// list rather than the caller, for the mode-selection notice.
	UsingDefaultFolders bool
}

// fileConfig is the YAML shape of an optional config file. Extra patterns
// and include names extend the built-in lists; output and folders replace
// the defaults but are still overridden by positional arguments.
type fileConfig struct {
	Output            string   `yaml:"output"`
	Folders           []string `yaml:"folders"`
	ExtraPatterns     []string `yaml:"extra_patterns"`
	ExtraIncludeFiles []string `yaml:"extra_include_files"`
}

// DefaultConfig returns a Config populated with the built-in lists.
func DefaultConfig() *Config {
	return &Config{
		Output:              DefaultOutputFile,
		Folders:             append([]string(nil), DefaultFolders...),
		Patterns:            append([]string(nil), DefaultCodePatterns...),
		IncludeFiles:        append([]string(nil), DefaultIncludeFiles...),
		UsingDefaultFolders: true,
	}
}

// LoadConfig returns the default configuration, merged with the YAML file at
// path when one is given. A missing file is not an error; the defaults stand.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Output != "" {
		cfg.Output = fc.Output
	}
	if len(fc.Folders) > 0 {
		cfg.Folders = fc.Folders
		cfg.UsingDefaultFolders = false
	}
	cfg.Patterns = append(cfg.Patterns, fc.ExtraPatterns...)
	cfg.IncludeFiles = append(cfg.IncludeFiles, fc.ExtraIncludeFiles...)

	return cfg, nil
}

// ApplyArgs overlays positional command-line arguments onto the config:
// the first argument is the output file, the rest replace the folder list.
func (c *Config) ApplyArgs(args []string) {
	if len(args) == 0 {
		return
	}
	c.Output = args[0]
	if len(args) > 1 {
		c.Folders = args[1:]
		c.UsingDefaultFolders = false
	}
}
