// mcnpwiz is an interactive terminal wizard that generates MCNP universe
// and lattice specifications: containment paths for tallies (F/SD cards)
// and source definitions (SDEF/SI/SP cards), with a visual grid selector
// for lattice element selection.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mcnpwiz/cmd/mcnpwiz/ui"
	"mcnpwiz/internal/config"
	"mcnpwiz/internal/logging"
)

var version = "1.2.0"

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

// rootCmd launches the interactive wizard.
var rootCmd = &cobra.Command{
	Use:   "mcnpwiz",
	Short: "MCNP Universe & Lattice Specification Wizard",
	Long: `mcnpwiz generates proper universe specifications for MCNP tallies
and source definitions.

It walks the containment hierarchy bottom-up (target cell, filling cells,
lattices) and emits the path expression MCNP expects, e.g.

    F4:N ( 101 < 50[3 4 0] < 1 )

Lattice elements can be picked in an interactive grid selector (rectangular
and hexagonal geometries) or typed as indices and ranges.

Run without arguments to start the wizard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The wizard owns the terminal; zap here serves the plain subcommands.
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		zc.OutputPaths = []string{"stderr"}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard()
	},
}

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mcnpwiz version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcnpwiz %s\n", version)
	},
}

// configCmd groups configuration helpers.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mcnpwiz configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("cannot resolve home directory: %w", err)
			}
			path = filepath.Join(home, config.DefaultPath)
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("selector thresholds: %d cells/layer, %d total\n",
			cfg.Selector.MaxCellsPerLayer, cfg.Selector.MaxTotalCells)
		fmt.Printf("dark mode: %v\n", cfg.UI.DarkMode)
		fmt.Printf("logging: enabled=%v level=%s dir=%s\n",
			cfg.Logging.Enabled, cfg.Logging.Level, cfg.LogDir())
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadDefault()
}

func runWizard() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Init(cfg); err != nil {
		// Logging is best-effort; the wizard works without it.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	logging.L(logging.CategoryWizard).Info("wizard started", zap.String("version", version))

	p := tea.NewProgram(ui.NewWizardModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(versionCmd, configCmd, examplesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
