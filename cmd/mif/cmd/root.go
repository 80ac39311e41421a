package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beetlebugorg/mif/pkg/config"
	"github.com/beetlebugorg/mif/pkg/mif"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.DefaultConfig()
	logger = mif.NoopLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mif",
	Short: "Inspect and convert MIF/MID vector layers",
	Long: `mif reads MapInfo interchange layers (a .mif header and geometry file
paired with a .mid attribute file), prints their contents, converts them to
GeoJSON, runs bounding-box queries and rewrites them with new settings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("log-level") {
			level, _ := cmd.Flags().GetString("log-level")
			cfg.Logging.Level = level
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		logger = mif.NewLogger(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
			Level:      cfg.SlogLevel(),
			TimeFormat: time.TimeOnly,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("attributes-only", false, "Skip geometry when reading layers")
}

// layerBase accepts either a base path or a path to one of the layer files.
func layerBase(arg string) string {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".mif", ".mid":
		return strings.TrimSuffix(arg, filepath.Ext(arg))
	}
	return arg
}

func loadOptions(cmd *cobra.Command) mif.LoadOptions {
	opts := mif.DefaultLoadOptions()
	opts.AttributesOnly, _ = cmd.Flags().GetBool("attributes-only")
	opts.Logger = logger
	return opts
}

func loadLayer(cmd *cobra.Command, arg string) (*mif.Dataset, error) {
	ds, err := mif.LoadWithOptions(layerBase(arg), loadOptions(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load layer: %w", err)
	}
	return ds, nil
}
