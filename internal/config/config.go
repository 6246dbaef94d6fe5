// Package config provides configuration loading and management.
package config

// Config is the apollo configuration file (~/.apollo/config.yaml).
type Config struct {
	// TemplatePaths are directories searched for templates before the
	// project-local and bundled ones, in order.
	TemplatePaths []string `mapstructure:"templatePaths" yaml:"templatePaths,omitempty"`

	// PackageManager pins the package manager used by init (npm, pnpm, yarn).
	// Empty means auto-detect.
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// Install controls whether init installs dependencies.
	Install bool `mapstructure:"install" yaml:"install"`

	// PrismaInit controls whether init runs `prisma init`.
	PrismaInit bool `mapstructure:"prismaInit" yaml:"prismaInit"`

	// VersionLookup controls whether init queries the npm registry for
	// dependency versions. When false every dependency is pinned to "latest".
	VersionLookup bool `mapstructure:"versionLookup" yaml:"versionLookup"`

	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// LogConfig holds logging options.
type LogConfig struct {
	// Timestamps toggles timestamps on log lines. Nil means the default (on).
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Install:       true,
		PrismaInit:    true,
		VersionLookup: true,
	}
}

// GlobalConfig is the resolved configuration shared by all commands.
type GlobalConfig struct {
	// Config is the loaded configuration file merged with env and defaults.
	Config *Config

	// ConfigPath is the config file that was loaded (it may not exist).
	ConfigPath string

	// ProjectRoot is the directory generated files are written under.
	ProjectRoot string

	// TemplatePaths is the resolved list of user template directories.
	TemplatePaths []string

	// PackageManager is the resolved package manager preference ("" for auto).
	PackageManager string

	// Verbose enables debug logging.
	Verbose bool

	// Resolved records where every resolved value came from.
	Resolved []ResolvedValue
}
