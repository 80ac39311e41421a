package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var geojsonCmd = &cobra.Command{
	Use:   "geojson <layer>",
	Short: "Convert a layer to a GeoJSON FeatureCollection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadLayer(cmd, args[0])
		if err != nil {
			return err
		}

		var data []byte
		if indent, _ := cmd.Flags().GetBool("indent"); indent {
			data, err = json.MarshalIndent(ds.FeatureCollection(), "", "  ")
		} else {
			data, err = json.Marshal(ds.FeatureCollection())
		}
		if err != nil {
			return fmt.Errorf("failed to encode geojson: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	geojsonCmd.Flags().Bool("indent", false, "Pretty-print the output")
	rootCmd.AddCommand(geojsonCmd)
}
