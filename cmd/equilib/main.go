package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"equilib/internal/analysis"
	"equilib/internal/config"
	"equilib/internal/dynamics"
	"equilib/internal/export"
	"equilib/internal/potential"
	"equilib/internal/report"
	"equilib/internal/solver"
	"equilib/internal/storage"
	"equilib/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	solverName  string
	seeds       []float64
	tolRoot     float64
	tolDistinct float64
	xMin        float64
	xMax        float64
	output      string
	svgOut      string
	noSave      bool
	// sweep
	paramName  string
	paramMin   float64
	paramMax   float64
	paramSteps int
	// simulate
	x0        float64
	v0        float64
	damping   float64
	dt        float64
	duration  float64
	integName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "equilib",
		Short: "equilibrium analysis of 1-D potential energy functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: run the textbook lesson.
			return runAnalyze(cmd, []string{"quartic"})
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".equilib", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [potential]",
		Short: "find, classify, and render equilibrium points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	analyzeCmd.Flags().StringVar(&solverName, "solver", "newton", "root solver")
	analyzeCmd.Flags().Float64SliceVar(&seeds, "seeds", nil, "root search seed positions")
	analyzeCmd.Flags().Float64Var(&tolRoot, "tol-root", config.DefaultTolRoot, "max |force| at an accepted root")
	analyzeCmd.Flags().Float64Var(&tolDistinct, "tol-distinct", config.DefaultTolDistinct, "min spacing between accepted roots")
	analyzeCmd.Flags().Float64Var(&xMin, "xmin", 0, "plot range minimum (0,0 = potential domain)")
	analyzeCmd.Flags().Float64Var(&xMax, "xmax", 0, "plot range maximum")
	analyzeCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "png output path")
	analyzeCmd.Flags().StringVar(&svgOut, "svg", "", "also write an svg figure to this path")
	analyzeCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run to the data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep [potential]",
		Short: "sweep a parameter and plot equilibrium branches",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&paramName, "param", "", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&paramMin, "min", 0, "sweep start")
	sweepCmd.Flags().Float64Var(&paramMax, "max", 1, "sweep end")
	sweepCmd.Flags().IntVar(&paramSteps, "steps", 40, "sweep steps")
	sweepCmd.Flags().StringVar(&solverName, "solver", "newton", "root solver")
	sweepCmd.MarkFlagRequired("param")

	simulateCmd := &cobra.Command{
		Use:   "simulate [potential]",
		Short: "relax a damped particle in the potential",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulate,
	}
	simulateCmd.Flags().Float64Var(&x0, "x0", 0.5, "initial position")
	simulateCmd.Flags().Float64Var(&v0, "v0", 0.0, "initial velocity")
	simulateCmd.Flags().Float64Var(&damping, "damping", 0.5, "viscous damping coefficient")
	simulateCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	simulateCmd.Flags().Float64Var(&duration, "time", 20.0, "max duration")
	simulateCmd.Flags().StringVar(&integName, "integrator", "rk4", "integrator")

	liveCmd := &cobra.Command{
		Use:   "live [potential]",
		Short: "interactive particle-on-surface explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&x0, "x0", 0.5, "initial position")
	liveCmd.Flags().StringVar(&solverName, "solver", "newton", "root solver")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's equilibria to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [potential]",
		Short: "list available presets for a potential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for potential: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(analyzeCmd, sweepCmd, simulateCmd, liveCmd, listCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file, and flags into one Config.
// Precedence: flags > config file > preset > defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Potential = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Potential, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Potential))
		}
		cfg.Solver = p.Solver
		cfg.Params = p.Params
		cfg.Seeds = p.Seeds
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) == 0 {
			cfg.Potential = fileCfg.Potential
		}
		cfg.Solver = fileCfg.Solver
		cfg.Params = fileCfg.Params
		cfg.Seeds = fileCfg.Seeds
		cfg.Tolerance = fileCfg.Tolerance
		cfg.Plot = fileCfg.Plot
		cfg.Output = fileCfg.Output
	}

	if cmd.Flags().Changed("solver") {
		cfg.Solver = solverName
	}
	if cmd.Flags().Changed("seeds") {
		cfg.Seeds = seeds
	}
	if cmd.Flags().Changed("tol-root") {
		cfg.Tolerance.Root = tolRoot
	}
	if cmd.Flags().Changed("tol-distinct") {
		cfg.Tolerance.Distinct = tolDistinct
	}
	if cmd.Flags().Changed("xmin") || cmd.Flags().Changed("xmax") {
		cfg.Plot.XMin, cfg.Plot.XMax = xMin, xMax
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = output
	}
	if svgOut != "" {
		cfg.Plot.SVG = true
	}
	return cfg, nil
}

func setupField(cfg *config.Config) (potential.Field, *analysis.Finder, error) {
	field, err := potential.Get(cfg.Potential)
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.Params) > 0 {
		tunable, ok := field.(potential.Configurable)
		if !ok {
			return nil, nil, fmt.Errorf("potential %s does not accept params", cfg.Potential)
		}
		for k, v := range cfg.Params {
			if err := tunable.SetParam(k, v); err != nil {
				return nil, nil, err
			}
		}
	}

	s, err := solver.Get(cfg.Solver)
	if err != nil {
		return nil, nil, err
	}
	finder := analysis.NewFinder(s)
	finder.TolRoot = cfg.Tolerance.Root
	finder.TolDistinct = cfg.Tolerance.Distinct
	return field, finder, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	field, finder, err := setupField(cfg)
	if err != nil {
		return err
	}

	runSeeds := cfg.Seeds
	if len(runSeeds) == 0 {
		runSeeds = potential.DefaultSeeds(field, config.DefaultSeedCount)
	}

	points := finder.FindEquilibria(field, runSeeds)

	if err := report.Write(os.Stdout, field, points); err != nil {
		return err
	}

	plotMin, plotMax := cfg.Plot.XMin, cfg.Plot.XMax
	if plotMin == plotMax {
		plotMin, plotMax = field.Domain()
	}

	fig := viz.NewFigure(field, points, plotMin, plotMax, 70, 14)
	for _, panel := range fig.Panels {
		fmt.Printf("\n%s\n%s", panel.Title, panel.Canvas.String())
	}

	if err := export.WritePNG(cfg.Output, fig); err != nil {
		return err
	}
	fmt.Printf("\nfigure saved: %s\n", cfg.Output)

	if svgOut != "" {
		if err := export.WriteSVG(svgOut, fig, plotMin, plotMax); err != nil {
			return err
		}
		fmt.Printf("svg saved: %s\n", svgOut)
	}

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Potential, cfg.Solver, runSeeds, cfg.Tolerance.Root, cfg.Tolerance.Distinct, points)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	field, finder, err := setupField(cfg)
	if err != nil {
		return err
	}

	runSeeds := cfg.Seeds
	if len(runSeeds) == 0 {
		runSeeds = potential.DefaultSeeds(field, config.DefaultSeedCount)
	}

	data, err := analysis.Branches(field, finder, paramName, paramMin, paramMax, paramSteps, runSeeds)
	if err != nil {
		return err
	}

	fmt.Printf("equilibrium branches: %s, %s ∈ [%g, %g]\n", cfg.Potential, paramName, paramMin, paramMax)
	fmt.Println("● stable   ○ unstable")
	fmt.Println()
	fmt.Print(analysis.BranchesToASCII(data, 70, 20))
	fmt.Printf("\n%-10s left edge %g, right edge %g\n", paramName+":", paramMin, paramMax)
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	field, finder, err := setupField(cfg)
	if err != nil {
		return err
	}

	integ, err := dynamics.GetIntegrator(integName)
	if err != nil {
		return err
	}

	particle := dynamics.NewParticle(field)
	particle.Damping = damping

	simCfg := dynamics.Config{Dt: dt, Duration: duration, SettleTol: 1e-5}

	start := time.Now()
	tr, err := dynamics.Simulate(context.Background(), particle, integ, x0, v0, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	graph := asciigraph.Plot(tr.Positions,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("position vs time"),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("steps: %d (%.0f ms)\n", len(tr.Times)-1, float64(elapsed.Microseconds())/1000)
	fmt.Printf("final position: %.6f\n", tr.Final())
	if tr.Settled {
		points := finder.FindEquilibria(field, []float64{tr.Final()})
		if len(points) == 1 {
			fmt.Printf("settled at %s equilibrium x=%.4f\n", points[0].Stability, points[0].Position)
		}
	} else {
		fmt.Println("did not settle within the time limit")
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	field, finder, err := setupField(cfg)
	if err != nil {
		return err
	}

	e := viz.NewExplorer(field, finder, x0)
	p := tea.NewProgram(e)
	if _, err := p.Run(); err != nil {
		return err
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
	fmt.Fprintln(w, "ID\tPOTENTIAL\tTIME\tSOLVER\tFOUND")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Potential,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Solver,
			run.NumFound,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, points)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"position", "energy", "curvature", "stability"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Position, 'f', 6, 64),
			strconv.FormatFloat(p.Energy, 'f', 6, 64),
			strconv.FormatFloat(p.Curvature, 'f', 6, 64),
			string(p.Stability),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
