package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/maxxl28/modeling-soccer-transfers/internal/config"
	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
	"github.com/maxxl28/modeling-soccer-transfers/internal/export"
	"github.com/maxxl28/modeling-soccer-transfers/internal/games"
	"github.com/maxxl28/modeling-soccer-transfers/internal/storage"
	"github.com/maxxl28/modeling-soccer-transfers/internal/sweep"
	"github.com/maxxl28/modeling-soccer-transfers/internal/tui"
)

var (
	dataDir string
	samples int
	horizon float64
	x0      float64
	y0      float64
	// Player payoff coefficients
	a0    float64
	d0    float64
	b     float64
	pGrow float64
	mGrow float64
	// Config file and preset
	configFile string
	preset     string
	// Sweep flags
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepStep  float64
	// SVG output
	svgOut    string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transfersim",
		Short: "evolutionary-game models of the Saudi transfer market",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive TUI when no command given
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".transfersim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [game]",
		Short: "run a simulation and save the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&samples, "samples", dynamics.DefaultSamples, "grid resolution")
	runCmd.Flags().Float64Var(&horizon, "horizon", config.DefaultHorizon, "time horizon")
	runCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial share (saudi youth / prestige)")
	runCmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial europe youth share (club)")
	runCmd.Flags().Float64Var(&a0, "a0", 2.5, "prestige-vs-prestige base payoff (player)")
	runCmd.Flags().Float64Var(&d0, "d0", 2.0, "money-vs-money base payoff (player)")
	runCmd.Flags().Float64Var(&b, "b", 1.4, "cross payoff (player)")
	runCmd.Flags().Float64Var(&pGrow, "p-grow", 1.0, "prestige payoff growth (player)")
	runCmd.Flags().Float64Var(&mGrow, "m-grow", 5.0, "money payoff growth (player)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved run as an SVG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "trajectory.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "chart width in px")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "chart height in px")

	presetsCmd := &cobra.Command{
		Use:   "presets [game]",
		Short: "list available presets for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for game: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [game]",
		Short: "sweep one parameter and report terminal shares",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "x0", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.0, "range start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.0, "range end")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0.1, "range step")
	sweepCmd.Flags().IntVar(&samples, "samples", dynamics.DefaultSamples, "grid resolution")
	sweepCmd.Flags().Float64Var(&horizon, "horizon", config.DefaultHorizon, "time horizon")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective config: defaults, then preset, then
// config file, with explicitly set CLI flags winning.
func buildConfig(cmd *cobra.Command, game string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Game = game

	if preset != "" {
		p := config.GetPreset(game, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(game))
		}
		cfg.Horizon = p.Horizon
		cfg.Init = p.Init
		if game == "player" {
			cfg.Player = p.Player
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Game = game
		if loaded.Samples == 0 {
			loaded.Samples = cfg.Samples
		}
		cfg = loaded
	}

	flagParams := map[string]string{
		"x0": "x0", "y0": "y0", "horizon": "horizon",
		"a0": "a0", "d0": "d0", "b": "b", "p-grow": "p_grow", "m-grow": "m_grow",
	}
	flagValues := map[string]float64{
		"x0": x0, "y0": y0, "horizon": horizon,
		"a0": a0, "d0": d0, "b": b, "p-grow": pGrow, "m-grow": mGrow,
	}
	for flag, param := range flagParams {
		if cmd.Flags().Changed(flag) {
			cfg.SetParam(param, flagValues[flag])
		}
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}

	return cfg, cfg.Validate()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	game, err := cfg.NewGame()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", cfg.Game)
	start := time.Now()

	stepper := &dynamics.Stepper{Samples: cfg.Samples}
	traj, err := stepper.Run(context.Background(), game, cfg.GetInitState(), cfg.Horizon)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Game, cfg.Horizon, game.StateLabels(), traj)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", traj.Len())
	fmt.Println("\nterminal shares:")
	for i, label := range game.StateLabels() {
		fmt.Printf("  %s: %.6f\n", label, traj.Final()[i])
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGAME\tTIME\tHORIZON\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\n",
			run.ID,
			run.Game,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Horizon,
			run.Samples,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, series, order, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(order) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("game: %s\n", meta.Game)
	fmt.Printf("samples: %d\n\n", meta.Samples)

	for _, name := range order {
		graph := asciigraph.Plot(series[name],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	times, series, order, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, order...)); err != nil {
		return err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, name := range order {
			row = append(row, strconv.FormatFloat(series[name][i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, series, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	data := export.RunData{
		Game:    meta.Game,
		Horizon: meta.Horizon,
		Samples: meta.Samples,
		Times:   times,
		Series:  series,
	}
	return export.WriteJSON(os.Stdout, data)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, series, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to render")
	}

	svg := export.SeriesToSVG(times, meta.Labels, series, svgWidth, svgHeight)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	gameName := args[0]

	if _, err := games.New(gameName); err != nil {
		return err
	}
	names, bounds := config.Bounds(gameName)
	if _, ok := bounds[sweepParam]; !ok {
		return fmt.Errorf("unknown param %q for %s (available: %v)", sweepParam, gameName, names)
	}
	if sweepStep <= 0 {
		return fmt.Errorf("step must be positive, got %g", sweepStep)
	}

	grid := sweep.NewGrid([]string{sweepParam}, [][]float64{sweep.Range(sweepMin, sweepMax, sweepStep)})

	build := func(params map[string]float64) (dynamics.System, dynamics.State, float64, error) {
		cfg := config.DefaultConfig()
		cfg.Game = gameName
		cfg.Horizon = horizon
		for name, val := range params {
			cfg.SetParam(name, val)
		}
		game, err := cfg.NewGame()
		if err != nil {
			return nil, nil, 0, err
		}
		return game, cfg.GetInitState(), cfg.Horizon, nil
	}

	points, err := grid.Run(context.Background(), build, samples)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if len(points) > 0 {
		header := sweepParam
		g, _ := games.New(gameName)
		for _, label := range g.StateLabels() {
			header += "\tfinal " + label
		}
		fmt.Fprintln(w, header)
		for _, pt := range points {
			row := fmt.Sprintf("%.3f", pt.Params[sweepParam])
			for _, label := range g.StateLabels() {
				row += fmt.Sprintf("\t%.6f", pt.Final[label])
			}
			fmt.Fprintln(w, row)
		}
	}

	return w.Flush()
}
