package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records <layer>",
	Short: "Print every record of a layer",
	Long: `Print one line per record: its index, the geometry as WKT and the
attributes sorted by name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadLayer(cmd, args[0])
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		out := cmd.OutOrStdout()
		for i, rec := range ds.Records() {
			if limit > 0 && i >= limit {
				break
			}
			fmt.Fprintf(out, "%d\t%s\n", i, rec)
		}
		return nil
	},
}

func init() {
	recordsCmd.Flags().IntP("limit", "n", 0, "Print at most n records (0 = all)")
	rootCmd.AddCommand(recordsCmd)
}
