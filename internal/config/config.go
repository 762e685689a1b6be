package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/golemcloud/golem-examples/internal/branding"
	"github.com/golemcloud/golem-examples/internal/model"
	"github.com/golemcloud/golem-examples/internal/registry"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyCatalogDir       = "catalog_dir"
	KeyDefaultPackage   = "default_package"
	KeyMetadataPolicy   = "metadata_policy"
	KeyValidateMetadata = "validate_metadata"
	KeyTestTimeout      = "test_timeout"
)

// ErrUnknownKey is returned by Set for keys not listed in Keys.
var ErrUnknownKey = errors.New("unknown config key")

var defaults = map[string]any{
	KeyCatalogDir:       "",
	KeyDefaultPackage:   "golem:component",
	KeyMetadataPolicy:   string(registry.PolicyAbort),
	KeyValidateMetadata: true,
	KeyTestTimeout:      "10m",
}

// Keys returns the recognized keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Settings is the typed view of the configuration.
type Settings struct {
	// CatalogDir is empty when the embedded catalog is used.
	CatalogDir       string
	DefaultPackage   model.PackageName
	MetadataPolicy   registry.MetadataPolicy
	ValidateMetadata bool
	TestTimeout      time.Duration
}

// Dir returns the path to the config directory (~/.golem-examples/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every recognized key with its effective value.
func All() map[string]string {
	values := make(map[string]string, len(defaults))
	for k := range defaults {
		values[k] = viper.GetString(k)
	}
	return values
}

// Set validates and writes a config key-value pair and saves the config
// file.
func Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func validate(key, value string) error {
	switch key {
	case KeyCatalogDir:
		return nil
	case KeyDefaultPackage:
		_, err := model.ParsePackageName(value)
		return err
	case KeyMetadataPolicy:
		_, err := registry.ParseMetadataPolicy(value)
		return err
	case KeyValidateMetadata:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s must be a boolean: %w", key, err)
		}
		return nil
	case KeyTestTimeout:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s must be a duration: %w", key, err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
}

// Current returns the typed settings. Load must have been called.
func Current() (Settings, error) {
	pkg, err := model.ParsePackageName(viper.GetString(KeyDefaultPackage))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyDefaultPackage, err)
	}
	policy, err := registry.ParseMetadataPolicy(viper.GetString(KeyMetadataPolicy))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyMetadataPolicy, err)
	}
	timeout, err := time.ParseDuration(viper.GetString(KeyTestTimeout))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyTestTimeout, err)
	}

	return Settings{
		CatalogDir:       viper.GetString(KeyCatalogDir),
		DefaultPackage:   pkg,
		MetadataPolicy:   policy,
		ValidateMetadata: viper.GetBool(KeyValidateMetadata),
		TestTimeout:      timeout,
	}, nil
}
