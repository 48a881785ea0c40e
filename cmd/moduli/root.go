// Root command for the moduli CLI.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moduli/internal/paths"
	"github.com/mesh-intelligence/moduli/pkg/moduli"
)

// Exit codes. User errors (bad parameters, missing files) exit 1;
// internal-consistency failures exit 2.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagOut       string
	flagJSON      bool
	flagLogLevel  string
)

// Values loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configOutputDir string
	configStore     string
)

var rootCmd = &cobra.Command{
	Use:     "moduli",
	Short:   "Moduli samples algebraic curve families and computes sheaf cohomology invariants",
	Version: moduli.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configOutputDir = cfg.GetString(cfgKeyOutputDir)
		configStore = cfg.GetString(cfgKeyStore)

		level := flagLogLevel
		if level == "" {
			level = cfg.GetString(cfgKeyLogLevel)
		}
		setupLogging(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "output directory (default: $(CWD)/moduli-output)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(invariantsCmd)
	rootCmd.AddCommand(pipelineCmd)
}

// setupLogging configures the global zerolog logger with a console
// writer. The core packages never log; everything observable happens at
// this layer.
func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(parsed).
		With().Timestamp().Logger()
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > MODULI_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveOutputDir returns the output directory following the
// precedence: --out flag > config.yaml output_dir > MODULI_OUTPUT_DIR
// env > $(CWD)/moduli-output.
func resolveOutputDir() (string, error) {
	return paths.ResolveOutputDir(flagOut, configOutputDir)
}
