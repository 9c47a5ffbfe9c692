package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/targets/internal/chart"
	"github.com/san-kum/targets/internal/config"
	"github.com/san-kum/targets/internal/envcheck"
	"github.com/san-kum/targets/internal/logging"
	"github.com/san-kum/targets/internal/storage"
	"github.com/san-kum/targets/internal/targets"
	"github.com/san-kum/targets/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	size       float64
	cmapName   string
	verbose    bool
	trace      bool
	// plot
	plotValue bool
	// surface
	output string
	// slice
	sliceY      float64
	sliceWidth  int
	sliceHeight int
	// export
	jsonOut bool
	// presets
	writeFile string
)

// main registers the targets commands and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "targets",
		Short: "2D log-density targets lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			w := logging.LogWriters{Ops: os.Stderr}
			if verbose {
				w.Diag = os.Stderr
			}
			if trace {
				w.Trace = os.Stderr
			}
			logging.SetLogWriters(w)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".targets", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&size, "size", 0, "grid half-width (default per target)")
	rootCmd.PersistentFlags().StringVar(&cmapName, "cmap", "", "colormap: "+fmt.Sprint(viz.ColormapNames()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log per-point gradient and cursor telemetry to stderr")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range targets.NewRegistry().ListTargets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	valueCmd := &cobra.Command{
		Use:   "value [target] [x] [y]",
		Short: "evaluate log-density, density and gradient at a point",
		Args:  cobra.ExactArgs(3),
		RunE:  evalPoint,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [target]",
		Short: "terminal heatmap of the density",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTarget,
	}
	plotCmd.Flags().BoolVar(&plotValue, "value", false, "plot the log-density instead")

	surfaceCmd := &cobra.Command{
		Use:   "surface [target]",
		Short: "save the density heatmap (.html, .png, .svg, .pdf, .jpg)",
		Args:  cobra.ExactArgs(1),
		RunE:  saveSurface,
	}
	surfaceCmd.Flags().StringVarP(&output, "output", "o", chart.DefaultCanvasFile, "output file")

	sliceCmd := &cobra.Command{
		Use:   "slice [target]",
		Short: "log-density cross-section at fixed y",
		Args:  cobra.ExactArgs(1),
		RunE:  sliceTarget,
	}
	sliceCmd.Flags().Float64Var(&sliceY, "y", 0, "y coordinate of the cross-section")
	sliceCmd.Flags().IntVar(&sliceWidth, "width", 70, "chart width")
	sliceCmd.Flags().IntVar(&sliceHeight, "height", 15, "chart height")

	exploreCmd := &cobra.Command{
		Use:   "explore [target]",
		Short: "interactive heatmap explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  exploreTarget,
	}

	exportCmd := &cobra.Command{
		Use:   "export [target]",
		Short: "store the target surface in the data directory",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTarget,
	}
	exportCmd.Flags().BoolVar(&jsonOut, "json", false, "write {x, y, z} JSON to stdout instead")

	exportsCmd := &cobra.Command{
		Use:   "exports",
		Short: "list stored surfaces",
		RunE:  listExports,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [target]",
		Short: "list available presets for a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if writeFile != "" {
				return writePreset(args[0])
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for target: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}
	presetsCmd.Flags().StringVar(&writeFile, "write", "", "write --preset (or the defaults) as a yaml config")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "compare linked module versions with the tested ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if warnings := envcheck.CheckBinary(envcheck.Tested); len(warnings) == 0 {
				fmt.Println("all modules up to date")
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, valueCmd, plotCmd, surfaceCmd, sliceCmd, exploreCmd, exportCmd, exportsCmd, presetsCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildTarget resolves defaults, then preset, then config file, then flags.
func buildTarget(cmd *cobra.Command, name string) (targets.Target, error) {
	cfg := config.DefaultConfig(name)

	if preset != "" {
		cfg = config.GetPreset(name, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Target != name {
			return nil, fmt.Errorf("config %s is for target %s, not %s", configFile, loaded.Target, name)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("cmap") {
		cfg.Cmap = cmapName
	}

	return targets.NewRegistry().Build(cfg)
}

// writePreset saves the selected preset so it can be edited and passed back
// with --config.
func writePreset(name string) error {
	cfg := config.DefaultConfig(name)
	if preset != "" {
		cfg = config.GetPreset(name, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
	}
	if _, err := targets.NewRegistry().Build(cfg); err != nil {
		return err
	}
	if err := config.Save(writeFile, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", writeFile)
	return nil
}

func evalPoint(cmd *cobra.Command, args []string) error {
	t, err := buildTarget(cmd, args[0])
	if err != nil {
		return err
	}

	xy := make([]float64, 2)
	for i, s := range args[1:] {
		if xy[i], err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
	}

	g := t.Grad(xy)
	fmt.Printf("target:    %s\n", t.Name())
	fmt.Printf("point:     (%.4f, %.4f)\n", xy[0], xy[1])
	fmt.Printf("value:     %.6g\n", t.Value(xy))
	fmt.Printf("exp value: %.6g\n", t.ExpValue(xy))
	fmt.Printf("grad:      (%.6g, %.6g)\n", g[0], g[1])
	return nil
}

func plotTarget(cmd *cobra.Command, args []string) error {
	t, err := buildTarget(cmd, args[0])
	if err != nil {
		return err
	}

	fig := chart.NewFigure(t, os.Stdout)
	if plotValue {
		return fig.PlotValue()
	}
	return fig.Plot()
}

func saveSurface(cmd *cobra.Command, args []string) error {
	t, err := buildTarget(cmd, args[0])
	if err != nil {
		return err
	}

	fig := chart.NewFigure(t, io.Discard)
	if err := fig.PlotSurface(); err != nil {
		return err
	}
	if err := fig.SaveCanvas(output); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", output)
	return nil
}

func sliceTarget(cmd *cobra.Command, args []string) error {
	t, err := buildTarget(cmd, args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.Slice(t, sliceY, sliceWidth, sliceHeight))
	return nil
}

func exploreTarget(cmd *cobra.Command, args []string) error {
	t, err := buildTarget(cmd, args[0])
	if err != nil {
		return err
	}
	cmap, err := viz.LookupColormap(t.Cmap())
	if err != nil {
		return err
	}
	return viz.RunExplorer(t, cmap)
}

func exportTarget(cmd *cobra.Command, args []string) error {
	t, err := buildTarget(cmd, args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		return storage.ExportJSON(os.Stdout, t)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(t)
	if err != nil {
		return err
	}
	fmt.Printf("stored %s\n", id)
	return nil
}

func listExports(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	exports, err := st.List()
	if err != nil {
		return err
	}

	if len(exports) == 0 {
		fmt.Println("no exports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTARGET\tTIME\tSIZE\tCMAP\tMIN\tMAX")

	for _, e := range exports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%.3g\t%.3g\n",
			e.ID,
			e.Target,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Size,
			e.Cmap,
			e.Min,
			e.Max,
		)
	}

	return w.Flush()
}
