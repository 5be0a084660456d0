// Package config loads the global tool configuration and discovers the
// command documents to consult for an invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
	ExitResolutionFailure
)

// Resolution modes for locating the workspace-local document.
const (
	// ResolutionCurrentFolder only looks in the working directory.
	ResolutionCurrentFolder = "current_folder"
	// ResolutionRecursive walks from the working directory up to the
	// filesystem root; closer documents take priority.
	ResolutionRecursive = "recursive"
	// ResolutionGitRoot looks in the repository root and the working
	// directory.
	ResolutionGitRoot = "git_root"
)

// LocalFileNames are the document names recognized during local discovery,
// checked in order.
var LocalFileNames = []string{"ds.yaml", ".ds.yaml"}

// GlobalConfig is the tool-wide configuration from ~/.config/ds/ds.yaml.
type GlobalConfig struct {
	// Files lists always-loaded documents, lowest priority first. Entries
	// may contain globs and a leading tilde.
	Files []string `mapstructure:"files"`
	// OnConflict selects the conflict policy, Override or Error.
	OnConflict string `mapstructure:"on_conflict"`
	// Resolution selects the local discovery mode.
	Resolution string `mapstructure:"resolution"`
	// StrictDefaults makes a dangling group default a hard error instead of
	// degrading to the group itself.
	StrictDefaults bool `mapstructure:"strict_defaults"`
}

// DefaultGlobalConfig is what runs when no global configuration exists.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		OnConflict: "Override",
		Resolution: ResolutionRecursive,
	}
}

// GetGlobalConfigDir returns the global config directory.
func GetGlobalConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ds"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", "ds"), nil
}

// LoadGlobal loads the global configuration, falling back to defaults when
// no file exists.
func LoadGlobal() (*GlobalConfig, error) {
	configDir, err := GetGlobalConfigDir()
	if err != nil {
		return nil, err
	}
	return loadGlobalFrom(configDir)
}

func loadGlobalFrom(configDir string) (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigName("ds")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetDefault("on_conflict", "Override")
	v.SetDefault("resolution", ResolutionRecursive)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultGlobalConfig(), nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var config GlobalConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	return &config, nil
}
