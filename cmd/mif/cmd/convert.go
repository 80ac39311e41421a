package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Rewrite a layer with new codec settings",
	Long: `Load a layer and write it to a new base path. The delimiter, charset and
precision come from the configuration file, overridden by flags.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("delimiter") {
			cfg.Codec.Delimiter, _ = cmd.Flags().GetString("delimiter")
		}
		if cmd.Flags().Changed("charset") {
			cfg.Codec.Charset, _ = cmd.Flags().GetString("charset")
		}
		if cmd.Flags().Changed("precision") {
			cfg.Codec.CoordPrecision, _ = cmd.Flags().GetInt("precision")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ds, err := loadLayer(cmd, args[0])
		if err != nil {
			return err
		}
		cfg.ApplyHeader(ds.Header())

		opts := cfg.DumpOptions()
		opts.Logger = logger
		if err := ds.DumpWithOptions(layerBase(args[1]), opts); err != nil {
			return fmt.Errorf("failed to write layer: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", ds.Len(), layerBase(args[1]))
		return nil
	},
}

func init() {
	convertCmd.Flags().String("delimiter", "", "Attribute delimiter for the output")
	convertCmd.Flags().String("charset", "", "Charset declared in the output header")
	convertCmd.Flags().Int("precision", 6, "Coordinate decimals (-1 = shortest)")
	rootCmd.AddCommand(convertCmd)
}
