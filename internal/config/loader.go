package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables read by apollo.
const (
	envPrefix = "APOLLO"

	EnvConfig         = "APOLLO_CONFIG"
	EnvTemplatePaths  = "APOLLO_TEMPLATE_PATHS"
	EnvPackageManager = "APOLLO_PACKAGE_MANAGER"
	EnvLogTimestamps  = "APOLLO_LOG_TIMESTAMPS"
)

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := DefaultConfig()
	v.SetDefault("install", defaults.Install)
	v.SetDefault("prismaInit", defaults.PrismaInit)
	v.SetDefault("versionLookup", defaults.VersionLookup)

	// templatePaths, packageManager and log.timestamps are resolved with
	// source tracking in the resolver.
	_ = v.BindEnv("install", "APOLLO_INSTALL")
	_ = v.BindEnv("prismaInit", "APOLLO_PRISMA_INIT")
	_ = v.BindEnv("versionLookup", "APOLLO_VERSION_LOOKUP")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error; defaults and environment apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
