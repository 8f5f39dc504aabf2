// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the values into the binary, so a rebranded fork only touches one file.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "cli-builder",
			DisplayName: "CLI Builder",
			Description: "Interactive scaffolding engine for new projects",
			HomeDir:     ".cli-builder",
			EnvPrefix:   "CLI_BUILDER",
			GoModule:    "github.com/OctaEDLP00/cli-builder-core",
			GitHubRepo:  "OctaEDLP00/cli-builder-core",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "cli-builder").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the per-user config directory name (e.g., ".cli-builder").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CLI_BUILDER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path of this repository.
func GoModule() string { load(); return defaults.GoModule }
