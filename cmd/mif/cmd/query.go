package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <layer>",
	Short: "Print records whose bounds intersect a bounding box",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bboxFlag, _ := cmd.Flags().GetString("bbox")
		bbox, err := parseBBox(bboxFlag)
		if err != nil {
			return err
		}

		ds, err := loadLayer(cmd, args[0])
		if err != nil {
			return err
		}
		ds.BuildIndex()

		out := cmd.OutOrStdout()
		matches := ds.RecordsInBounds(bbox)
		for _, rec := range matches {
			fmt.Fprintln(out, rec)
		}
		logger.Info("query complete", "layer", args[0], "matches", len(matches), "records", ds.Len())
		return nil
	},
}

func init() {
	queryCmd.Flags().String("bbox", "", "Bounding box as minx,miny,maxx,maxy")
	_ = queryCmd.MarkFlagRequired("bbox")
	rootCmd.AddCommand(queryCmd)
}

func parseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("bbox must be minx,miny,maxx,maxy, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("invalid bbox value %q: %w", p, err)
		}
		v[i] = f
	}
	if v[0] > v[2] || v[1] > v[3] {
		return orb.Bound{}, fmt.Errorf("bbox minimum exceeds maximum: %q", s)
	}
	return orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}, nil
}
