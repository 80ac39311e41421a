package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beetlebugorg/mif/pkg/mif"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <layer|dir>...",
	Short: "Show header and summary of one or more layers",
	Long: `Show the header, record count and bounds of each layer. Directories are
searched recursively for .mif files and the layers found are loaded in
parallel.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bases, err := expandLayers(args)
		if err != nil {
			return err
		}
		if len(bases) == 0 {
			return fmt.Errorf("no layers found")
		}

		workers, _ := cmd.Flags().GetInt("workers")
		opts := mif.DefaultParallelOptions()
		if workers > 0 {
			opts.Workers = workers
		}
		opts.Load = loadOptions(cmd)
		opts.ErrorLog = cmd.ErrOrStderr()

		datasets, errs := mif.LoadLayers(bases, opts)
		out := cmd.OutOrStdout()
		for i, ds := range datasets {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printInfo(out, ds)
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d of %d layers failed to load", len(errs), len(bases))
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().IntP("workers", "w", 0, "Concurrent layer loads (0 = number of CPUs)")
	rootCmd.AddCommand(infoCmd)
}

func expandLayers(args []string) ([]string, error) {
	var bases []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err == nil && fi.IsDir() {
			found, err := mif.DiscoverLayers(arg)
			if err != nil {
				return nil, err
			}
			bases = append(bases, found...)
			continue
		}
		bases = append(bases, layerBase(arg))
	}
	return bases, nil
}

func printInfo(w io.Writer, ds *mif.Dataset) {
	h := ds.Header()
	fmt.Fprintf(w, "Version:   %d\n", h.Version)
	fmt.Fprintf(w, "Charset:   %s\n", h.Charset)
	fmt.Fprintf(w, "Delimiter: %q\n", string(h.Delimiter))
	fmt.Fprintf(w, "CoordSys:  %s\n", h.CoordSys)
	if h.Transform != "" {
		fmt.Fprintf(w, "Transform: %s\n", h.Transform)
	}
	fmt.Fprintf(w, "Records:   %d\n", ds.Len())

	counts := make(map[string]int)
	for _, rec := range ds.Records() {
		if g := rec.Geometry(); g != nil {
			counts[g.GeoJSONType()]++
		} else {
			counts["None"]++
		}
	}
	if len(counts) > 0 {
		var parts []string
		for _, typ := range []string{"Point", "LineString", "MultiLineString", "Polygon", "MultiPolygon", "None"} {
			if n := counts[typ]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s=%d", typ, n))
			}
		}
		fmt.Fprintf(w, "Geometry:  %s\n", strings.Join(parts, " "))
	}

	if counts["None"] < ds.Len() {
		b := ds.Bounds()
		fmt.Fprintf(w, "Bounds:    %g,%g,%g,%g\n", b.Min[0], b.Min[1], b.Max[0], b.Max[1])
	}

	fmt.Fprintf(w, "Columns:   %d\n", h.ColumnCount())
	for _, c := range h.Columns() {
		fmt.Fprintf(w, "  %-16s %-12s %s\n", c.Name, c.Type, c.Kind())
	}
}
