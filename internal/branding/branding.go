// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool without touching
// code.
package branding

import (
	_ "embed"
	"strings"
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
	Repository  string `yaml:"repository"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty.
		defaults = brand{
			CLIName:     "golem-examples",
			DisplayName: "Golem Examples",
			Description: "Scaffold Golem components from built-in example templates",
			HomeDir:     ".golem-examples",
			EnvPrefix:   "GOLEM_EXAMPLES",
			Repository:  "https://github.com/golemcloud/golem-examples",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "golem-examples").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".golem-examples").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GOLEM_EXAMPLES").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Repository returns the project URL shown by the version command.
func Repository() string { load(); return defaults.Repository }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("catalog_dir") → "GOLEM_EXAMPLES_CATALOG_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
