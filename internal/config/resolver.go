package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apollo-gears/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin and the
// lower-precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// candidate is one precedence level considered during resolution.
type candidate struct {
	source ConfigSource
	value  any
	set    bool
}

// pick returns the first set candidate and records every later set one as
// shadowed.
func pick(key string, candidates ...candidate) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	for _, c := range candidates {
		if !c.set {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) APOLLO_CONFIG env, (3) ~/.apollo/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	envValue := os.Getenv(EnvConfig)

	return pick("config",
		candidate{SourceFlag, flagValue, flagValue != ""},
		candidate{SourceEnv, envValue, envValue != ""},
		candidate{SourceDefault, paths.ConfigFile, true},
	), nil
}

// ResolveTemplatePaths resolves user template directories using precedence:
// (1) --templates flags, (2) APOLLO_TEMPLATE_PATHS env (os.PathListSeparator
// separated), (3) config.templatePaths. The value is a []string, empty when
// nothing is configured.
func ResolveTemplatePaths(flagValue, configValue []string) ResolvedValue {
	var envValue []string
	for _, p := range filepath.SplitList(os.Getenv(EnvTemplatePaths)) {
		if p = strings.TrimSpace(p); p != "" {
			envValue = append(envValue, p)
		}
	}

	rv := pick("templatePaths",
		candidate{SourceFlag, flagValue, len(flagValue) > 0},
		candidate{SourceEnv, envValue, len(envValue) > 0},
		candidate{SourceConfig, configValue, len(configValue) > 0},
		candidate{SourceDefault, []string{}, true},
	)
	return rv
}

// ResolvePackageManager resolves the preferred package manager using
// precedence: (1) --package-manager flag, (2) APOLLO_PACKAGE_MANAGER env,
// (3) config.packageManager. The default is "" (auto-detect).
func ResolvePackageManager(flagValue, configValue string) ResolvedValue {
	envValue := os.Getenv(EnvPackageManager)

	return pick("packageManager",
		candidate{SourceFlag, flagValue, flagValue != ""},
		candidate{SourceEnv, envValue, envValue != ""},
		candidate{SourceConfig, configValue, configValue != ""},
		candidate{SourceDefault, "", true},
	)
}

// ResolveTimestamps resolves whether log lines carry timestamps using
// precedence: (1) --timestamps flag, (2) APOLLO_LOG_TIMESTAMPS env,
// (3) config log.timestamps, (4) true.
func ResolveTimestamps(flagValue, configValue *bool) (ResolvedValue, error) {
	var env candidate
	if raw := os.Getenv(EnvLogTimestamps); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return ResolvedValue{}, fmt.Errorf("parsing %s: %w", EnvLogTimestamps, err)
		}
		env = candidate{SourceEnv, b, true}
	}

	flag := candidate{source: SourceFlag}
	if flagValue != nil {
		flag.value, flag.set = *flagValue, true
	}
	cfg := candidate{source: SourceConfig}
	if configValue != nil {
		cfg.value, cfg.set = *configValue, true
	}

	return pick("log.timestamps", flag, env, cfg, candidate{SourceDefault, true, true}), nil
}

// ResolveOptions carries the raw flag values the resolver needs.
type ResolveOptions struct {
	ConfigFlag      string
	ProjectRootFlag string
	TemplatesFlag   []string
	TimestampsFlag  *bool
	Verbose         bool
}

// Resolve loads the configuration file and resolves every global value.
func Resolve(opts ResolveOptions) (*GlobalConfig, error) {
	configPath, err := ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	path := configPath.Value.(string)

	cfg, err := NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	root := opts.ProjectRootFlag
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
	}
	root, err = ExpandPath(root)
	if err != nil {
		return nil, fmt.Errorf("expanding project root: %w", err)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	templatePaths := ResolveTemplatePaths(opts.TemplatesFlag, cfg.TemplatePaths)
	packageManager := ResolvePackageManager("", cfg.PackageManager)
	timestamps, err := ResolveTimestamps(opts.TimestampsFlag, cfg.Log.Timestamps)
	if err != nil {
		return nil, err
	}
	ts := timestamps.Value.(bool)
	cfg.Log.Timestamps = &ts

	return &GlobalConfig{
		Config:         cfg,
		ConfigPath:     path,
		ProjectRoot:    root,
		TemplatePaths:  templatePaths.Value.([]string),
		PackageManager: packageManager.Value.(string),
		Verbose:        opts.Verbose,
		Resolved:       []ResolvedValue{configPath, templatePaths, packageManager, timestamps},
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
