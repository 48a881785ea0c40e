// Package paths resolves configuration and output directory locations
// for the moduli CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative default output directory name.
const DefaultOutputDirName = "moduli-output"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "MODULI_CONFIG_DIR"
	EnvOutputDir = "MODULI_OUTPUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/moduli (fallback ~/.config/moduli)
// macOS:   ~/Library/Application Support/moduli
// Windows: %APPDATA%/moduli
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "moduli"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "moduli"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "moduli"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > MODULI_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveOutputDir returns the output directory following the precedence
// chain: flag > config.yaml output_dir > MODULI_OUTPUT_DIR env >
// $(CWD)/moduli-output.
//
// The CWD-relative default keeps run artifacts next to the invocation,
// which is the primary mode for reproducible local runs.
func ResolveOutputDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvOutputDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultOutputDirName), nil
}
