package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kmorven/deborbit/internal/analysis"
	"github.com/kmorven/deborbit/internal/config"
	"github.com/kmorven/deborbit/internal/export"
	"github.com/kmorven/deborbit/internal/fit"
	"github.com/kmorven/deborbit/internal/lightcurve"
	"github.com/kmorven/deborbit/internal/limbdark"
	"github.com/kmorven/deborbit/internal/mission"
	"github.com/kmorven/deborbit/internal/orbit"
	"github.com/kmorven/deborbit/internal/phys"
	"github.com/kmorven/deborbit/internal/stellar"
	"github.com/kmorven/deborbit/internal/store"
	"github.com/kmorven/deborbit/internal/tui"
	"github.com/kmorven/deborbit/internal/uncert"
	"github.com/kmorven/deborbit/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	missionName string
	law         string
	flat        bool
	// System parameters
	period      float64
	epoch       float64
	ecc         float64
	omegaDeg    float64
	incDeg      float64
	sumRadii    float64
	radiusRatio float64
	lumRatio    float64
	ld1a, ld1b  float64
	ld2a, ld2b  float64
	// Synthesis
	samples int
	noise   float64
	seed    int64
	outFile string
	// Fit
	fixed      []string
	tolerance  float64
	maxIter    int
	jsonOutput bool
	// Stellar relations
	mass1, mass2 float64
	rad1, rad2   float64
	teff1, teff2 float64
	teffSigma    float64
	loggValue    float64
	scanSpecs    []string
	// Period search
	minPeriod   float64
	maxPeriod   float64
	periodSteps int
	periodBins  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deborbit",
		Short: "detached eclipsing binary light-curve modeling and fitting",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".deborbit", "data directory")

	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "synthesize and plot a model light curve",
		RunE:  predictCurve,
	}
	addSystemFlags(predictCmd)
	predictCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	predictCmd.Flags().Float64Var(&noise, "noise", 0, "gaussian noise sigma")
	predictCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	predictCmd.Flags().StringVar(&outFile, "out", "", "write samples to CSV file")

	fitCmd := &cobra.Command{
		Use:   "fit [curve.csv]",
		Short: "fit a model to observed photometry",
		Args:  cobra.ExactArgs(1),
		RunE:  fitCurve,
	}
	addSystemFlags(fitCmd)
	addFitFlags(fitCmd)
	fitCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the full result as JSON")

	batchCmd := &cobra.Command{
		Use:   "batch [curve.csv ...]",
		Short: "fit several curves concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE:  fitBatch,
	}
	addSystemFlags(batchCmd)
	addFitFlags(batchCmd)

	scanCmd := &cobra.Command{
		Use:   "scan [curve.csv]",
		Short: "grid-scan parameters for an initial guess",
		Args:  cobra.ExactArgs(1),
		RunE:  scanCurve,
	}
	addSystemFlags(scanCmd)
	scanCmd.Flags().StringArrayVar(&scanSpecs, "grid", nil, "grid spec name=lo:hi:n (repeatable)")

	periodCmd := &cobra.Command{
		Use:   "period [curve.csv]",
		Short: "search for the orbital period by phase dispersion",
		Args:  cobra.ExactArgs(1),
		RunE:  searchPeriod,
	}
	periodCmd.Flags().Float64Var(&minPeriod, "min", 0.5, "shortest trial period [days]")
	periodCmd.Flags().Float64Var(&maxPeriod, "max", 10, "longest trial period [days]")
	periodCmd.Flags().IntVar(&periodSteps, "steps", 2000, "number of trial periods")
	periodCmd.Flags().IntVar(&periodBins, "bins", 20, "phase bins per trial")

	liveCmd := &cobra.Command{
		Use:   "live [curve.csv]",
		Short: "fit with a live progress view",
		Args:  cobra.ExactArgs(1),
		RunE:  fitLive,
	}
	addSystemFlags(liveCmd)
	addFitFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export full run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a stored run as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default run_id.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets [mission]",
		Short: "list available presets for a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mission: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	missionsCmd := &cobra.Command{
		Use:   "missions",
		Short: "list known missions and bandpasses",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MISSION\tBANDPASS [nm]")
			for _, name := range mission.Names() {
				m, err := mission.Get(name)
				if err != nil {
					return err
				}
				bp := m.DefaultBandpass()
				fmt.Fprintf(w, "%s\t%.0f - %.0f\n", m.Name(), bp.Lo, bp.Hi)
			}
			return w.Flush()
		},
	}

	ratioCmd := &cobra.Command{
		Use:   "ratio",
		Short: "expected brightness ratio from effective temperatures",
		RunE:  brightnessRatio,
	}
	ratioCmd.Flags().StringVar(&missionName, "mission", "TESS", "mission name")
	ratioCmd.Flags().Float64Var(&teff1, "teff1", 6000, "primary effective temperature [K]")
	ratioCmd.Flags().Float64Var(&teff2, "teff2", 6000, "secondary effective temperature [K]")
	ratioCmd.Flags().Float64Var(&teffSigma, "teff-sigma", 0, "temperature uncertainty [K]")

	ldCmd := &cobra.Command{
		Use:   "limb-darkening",
		Short: "look up limb-darkening coefficients",
		RunE:  lookupLD,
	}
	ldCmd.Flags().StringVar(&missionName, "mission", "TESS", "mission name")
	ldCmd.Flags().StringVar(&law, "law", "quad", "law: quad or pow2")
	ldCmd.Flags().Float64Var(&teff1, "teff", 6000, "effective temperature [K]")
	ldCmd.Flags().Float64Var(&loggValue, "logg", 4.5, "surface gravity log(g) [cgs]")

	systemCmd := &cobra.Command{
		Use:   "system",
		Short: "derived orbital and stellar quantities with uncertainties",
		RunE:  systemRelations,
	}
	systemCmd.Flags().Float64Var(&mass1, "m1", 1.0, "primary mass [Msun]")
	systemCmd.Flags().Float64Var(&mass2, "m2", 1.0, "secondary mass [Msun]")
	systemCmd.Flags().Float64Var(&rad1, "r1", 1.0, "primary radius [Rsun]")
	systemCmd.Flags().Float64Var(&rad2, "r2", 1.0, "secondary radius [Rsun]")
	systemCmd.Flags().Float64Var(&period, "period", 1.0, "orbital period [days]")
	systemCmd.Flags().Float64Var(&ecc, "ecc", 0, "eccentricity")
	systemCmd.Flags().Float64Var(&omegaDeg, "omega", 90, "argument of periastron [deg]")
	systemCmd.Flags().Float64Var(&incDeg, "inc", 89, "inclination [deg]")

	rootCmd.AddCommand(predictCmd, fitCmd, batchCmd, scanCmd, periodCmd, liveCmd, listCmd,
		plotCmd, exportCmd, exportJSONCmd, exportSVGCmd, presetsCmd, missionsCmd,
		ratioCmd, ldCmd, systemCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration (see presets)")
	cmd.Flags().StringVar(&missionName, "mission", "TESS", "mission name")
	cmd.Flags().StringVar(&law, "law", "quad", "limb-darkening law")
	cmd.Flags().BoolVar(&flat, "flat", false, "uniform-disk geometry")
	cmd.Flags().Float64Var(&period, "period", config.DefaultPeriod, "orbital period [days]")
	cmd.Flags().Float64Var(&epoch, "epoch", 0, "time of periastron [days]")
	cmd.Flags().Float64Var(&ecc, "ecc", 0, "eccentricity")
	cmd.Flags().Float64Var(&omegaDeg, "omega", config.DefaultOmegaDeg, "argument of periastron [deg]")
	cmd.Flags().Float64Var(&incDeg, "inc", config.DefaultIncDeg, "inclination [deg]")
	cmd.Flags().Float64Var(&sumRadii, "sum-radii", config.DefaultSumRadii, "fractional radius sum (r1+r2)/a")
	cmd.Flags().Float64Var(&radiusRatio, "ratio", config.DefaultRadiusRatio, "radius ratio r2/r1")
	cmd.Flags().Float64Var(&lumRatio, "lum-ratio", config.DefaultLumRatio, "luminosity ratio L2/L1")
	cmd.Flags().Float64Var(&ld1a, "ld1a", 0.3, "primary first LD coefficient")
	cmd.Flags().Float64Var(&ld1b, "ld1b", 0.2, "primary second LD coefficient")
	cmd.Flags().Float64Var(&ld2a, "ld2a", 0.3, "secondary first LD coefficient")
	cmd.Flags().Float64Var(&ld2b, "ld2b", 0.2, "secondary second LD coefficient")
}

func addFitFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&fixed, "fixed", nil, "parameters held constant")
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "convergence tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "iteration budget")
}

// resolveConfig merges preset, config file and flags into one Config.
// Precedence low to high: defaults, preset, config file, changed flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		key := strings.ToLower(missionName)
		p := config.GetPreset(key, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(key))
		}
		pc := *p
		cfg = &pc
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mission") || cfg.Mission == "" {
		cfg.Mission = missionName
	}
	if flags.Changed("law") || cfg.Law == "" {
		cfg.Law = law
	}
	if flags.Changed("flat") {
		cfg.Flat = flat
	}
	if flags.Changed("period") {
		cfg.System.Period = period
	}
	if flags.Changed("epoch") {
		cfg.System.Epoch = epoch
	}
	if flags.Changed("ecc") {
		cfg.System.Ecc = ecc
	}
	if flags.Changed("omega") {
		cfg.System.OmegaDeg = omegaDeg
	}
	if flags.Changed("inc") {
		cfg.System.IncDeg = incDeg
	}
	if flags.Changed("sum-radii") {
		cfg.System.SumRadii = sumRadii
	}
	if flags.Changed("ratio") {
		cfg.System.RadiusRatio = radiusRatio
	}
	if flags.Changed("lum-ratio") {
		cfg.System.LumRatio = lumRatio
	}
	if flags.Changed("ld1a") {
		cfg.System.LD1[0] = ld1a
	}
	if flags.Changed("ld1b") {
		cfg.System.LD1[1] = ld1b
	}
	if flags.Changed("ld2a") {
		cfg.System.LD2[0] = ld2a
	}
	if flags.Changed("ld2b") {
		cfg.System.LD2[1] = ld2b
	}
	if flags.Lookup("tol") != nil {
		if flags.Changed("tol") || cfg.Fit.Tolerance == 0 {
			cfg.Fit.Tolerance = tolerance
		}
		if flags.Changed("max-iter") || cfg.Fit.MaxIterations == 0 {
			cfg.Fit.MaxIterations = maxIter
		}
		if flags.Changed("fixed") {
			cfg.Fit.Fixed = fixed
		}
	}

	return cfg, nil
}

func predictCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	params := cfg.Params()
	model, err := params.Model(cfg.Law, cfg.Flat, orbit.DefaultSolverConfig())
	if err != nil {
		return err
	}

	n := samples
	if n <= 0 {
		n = config.DefaultSamples
	}
	times := lightcurve.UniformTimes(cfg.System.Epoch, cfg.System.Epoch+cfg.System.Period, n)
	curve, err := lightcurve.Synthesize(model, times, noise, seed)
	if err != nil {
		return err
	}

	fmt.Printf("mission: %s  law: %s  period: %g d\n", cfg.Mission, cfg.Law, cfg.System.Period)
	fmt.Println(viz.PlotFlux(curve, 80, 12))
	fmt.Println(viz.ScatterFolded(curve, cfg.System.Period, cfg.System.Epoch, 80, 10))

	if outFile != "" {
		if err := writeCurveCSV(outFile, curve); err != nil {
			return err
		}
		fmt.Printf("wrote %d samples to %s\n", len(curve), outFile)
	}
	return nil
}

func fitCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	curve, err := readCurveCSV(args[0])
	if err != nil {
		return err
	}

	result, err := fit.Fit(context.Background(), cfg.Params(), curve, cfg.Options())
	if err != nil {
		return err
	}

	model, err := result.Params.Model(cfg.Law, cfg.Flat, orbit.DefaultSolverConfig())
	if err != nil {
		return err
	}
	pred, err := model.Evaluate(curve.Times())
	if err != nil {
		return err
	}

	if jsonOutput {
		return store.ExportJSONStdout(cfg.Mission, cfg.Law, curve, pred, result)
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Mission, cfg.Law, curve, pred, result)
	if err != nil {
		return err
	}

	fmt.Println(viz.FitReport(result))
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func fitBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	jobs := make([]fit.Job, len(args))
	for i, path := range args {
		curve, err := readCurveCSV(path)
		if err != nil {
			return err
		}
		jobs[i] = fit.Job{Guess: cfg.Params(), Curve: curve, Opts: cfg.Options()}
	}

	start := time.Now()
	results, errs := fit.FitBatch(context.Background(), jobs)
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CURVE\tSTATUS\tITER\tCHI2/DOF")
	for i, path := range args {
		if errs[i] != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", path, errs[i])
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4g\n",
			path, results[i].Status, results[i].Iterations, results[i].ReducedChiSq)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d curves in %v\n", len(args), elapsed)
	return nil
}

func scanCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(scanSpecs) == 0 {
		return fmt.Errorf("at least one --grid name=lo:hi:n is required")
	}

	curve, err := readCurveCSV(args[0])
	if err != nil {
		return err
	}

	names := make([]string, len(scanSpecs))
	ranges := make([][]float64, len(scanSpecs))
	for i, spec := range scanSpecs {
		name, values, err := parseGridSpec(spec)
		if err != nil {
			return err
		}
		names[i] = name
		ranges[i] = values
	}

	best, chi2, err := fit.Scan(context.Background(), cfg.Params(), curve, cfg.Options(), names, ranges)
	if err != nil {
		return err
	}

	fmt.Printf("best chi-square: %.6g\n", chi2)
	values := best.Map()
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, values[name])
	}
	return nil
}

func searchPeriod(cmd *cobra.Command, args []string) error {
	curve, err := readCurveCSV(args[0])
	if err != nil {
		return err
	}

	pg, err := analysis.SearchPeriod(curve, minPeriod, maxPeriod, periodSteps, periodBins)
	if err != nil {
		return err
	}

	best, theta := pg.Best()
	fmt.Printf("best period: %.6f d (theta %.4f)\n\n", best, theta)
	fmt.Println(viz.PlotModel(pg.Theta, 80, 10, "dispersion vs trial period"))
	fmt.Println(viz.ScatterFolded(curve, best, 0, 80, 10))
	return nil
}

func fitLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	curve, err := readCurveCSV(args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(cfg.Params(), curve, cfg.Options()))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMISSION\tLAW\tTIME\tSTATUS\tITER\tCHI2/DOF")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%.4g\n",
			run.ID,
			run.Mission,
			run.Law,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Status,
			run.Iterations,
			run.ReducedChiSq,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	curve, model, err := st.LoadCurve(runID)
	if err != nil {
		return err
	}
	if len(curve) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mission: %s  law: %s\n", meta.Mission, meta.Law)
	fmt.Printf("samples: %d\n\n", len(curve))

	fmt.Println(viz.PlotFlux(curve, 80, 12))
	if len(model) == len(curve) {
		fmt.Println(viz.PlotModel(model, 80, 12, "best-fit model"))
	}

	if period, ok := meta.Params["period"]; ok && period > 0 {
		fmt.Println(viz.ScatterFolded(curve, period, meta.Params["epoch"], 80, 10))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportRunJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	return st.Export(os.Stdout, args[0])
}

func exportRunSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	curve, model, err := st.LoadCurve(runID)
	if err != nil {
		return err
	}

	svg := export.CurveToSVG(curve, model, 800, 400)
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func brightnessRatio(cmd *cobra.Command, args []string) error {
	m, err := mission.Get(missionName)
	if err != nil {
		return err
	}

	t1 := uncert.New(teff1, teffSigma)
	t2 := uncert.New(teff2, teffSigma)
	ratio, err := m.ExpectedBrightnessRatio(t1, t2, mission.Bandpass{})
	if err != nil {
		return err
	}

	bp := m.DefaultBandpass()
	fmt.Printf("mission: %s  bandpass: %.0f - %.0f nm\n", m.Name(), bp.Lo, bp.Hi)
	fmt.Printf("J2/J1 for Teff %g K / %g K: %s\n", teff1, teff2, ratio)
	return nil
}

func lookupLD(cmd *cobra.Command, args []string) error {
	switch law {
	case "quad":
		a, b, err := limbdark.QuadCoefficients(loggValue, teff1, missionName)
		if err != nil {
			return err
		}
		fmt.Printf("quadratic coefficients for %s, Teff %g K, log(g) %g: a=%.4f b=%.4f\n",
			missionName, teff1, loggValue, a, b)
	case "pow2":
		g, h, err := limbdark.Pow2Coefficients(loggValue, teff1, missionName)
		if err != nil {
			return err
		}
		fmt.Printf("power-2 coefficients for %s, Teff %g K, log(g) %g: g=%.4f h=%.4f\n",
			missionName, teff1, loggValue, g, h)
	default:
		return fmt.Errorf("no coefficient table for law %q", law)
	}
	return nil
}

func systemRelations(cmd *cobra.Command, args []string) error {
	m1 := phys.MSun.Scale(mass1)
	m2 := phys.MSun.Scale(mass2)
	r1 := phys.RSun.Scale(rad1)
	r2 := phys.RSun.Scale(rad2)
	p := uncert.Exact(period).Scale(phys.SecondsPerDay)

	a := orbit.SemiMajorAxis(m1, m2, p)
	rFrac1 := r1.Div(a)
	rFrac2 := r2.Div(a)

	e := uncert.Exact(ecc)
	omega := uncert.Radians(uncert.Exact(omegaDeg))
	esinw := e.Mul(uncert.Sin(omega))
	ecosw := e.Mul(uncert.Cos(omega))
	inc := uncert.Exact(incDeg)

	fmt.Printf("semi-major axis: %s m (%s AU)\n", a, a.Scale(1/phys.AU))
	fmt.Printf("fractional radii: r1/a = %s, r2/a = %s\n", rFrac1, rFrac2)
	fmt.Printf("log(g): primary %s, secondary %s\n", stellar.LogG(m1, r1), stellar.LogG(m2, r2))
	fmt.Printf("primary impact parameter: %s\n", orbit.ImpactParameter(rFrac1, inc, e, esinw, false))
	fmt.Printf("secondary impact parameter: %s\n", orbit.ImpactParameter(rFrac1, inc, e, esinw, true))
	fmt.Printf("eclipse duration ratio dS/dP: %s\n", orbit.RatioOfEclipseDuration(esinw))
	if ecc > 0 {
		fmt.Printf("secondary eclipse phase: %s\n", orbit.PhaseOfSecondaryEclipse(ecosw, e))
	}
	return nil
}

// readCurveCSV loads observations from a CSV with time, flux and
// flux_err columns. A header row is detected and skipped.
func readCurveCSV(path string) (lightcurve.Curve, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	curve := make(lightcurve.Curve, 0, len(records))
	for i, record := range records {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%s line %d: bad time %q", path, i+1, record[0])
		}
		flux, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad flux %q", path, i+1, record[1])
		}
		fluxErr := 0.001
		if len(record) > 2 {
			fluxErr, err = strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: bad flux_err %q", path, i+1, record[2])
			}
		}
		curve = append(curve, lightcurve.Sample{Time: t, Flux: flux, FluxErr: fluxErr})
	}

	if len(curve) == 0 {
		return nil, fmt.Errorf("%s: no samples", path)
	}
	return curve, nil
}

func writeCurveCSV(path string, curve lightcurve.Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"time", "flux", "flux_err"}); err != nil {
		return err
	}
	for _, s := range curve {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 8, 64),
			strconv.FormatFloat(s.Flux, 'f', 8, 64),
			strconv.FormatFloat(s.FluxErr, 'f', 8, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// parseGridSpec parses name=lo:hi:n into n evenly spaced values.
func parseGridSpec(spec string) (string, []float64, error) {
	name, rangeSpec, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("bad grid spec %q, want name=lo:hi:n", spec)
	}

	parts := strings.Split(rangeSpec, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("bad grid spec %q, want name=lo:hi:n", spec)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, fmt.Errorf("bad grid spec %q: %w", spec, err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, fmt.Errorf("bad grid spec %q: %w", spec, err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 1 {
		return "", nil, fmt.Errorf("bad grid spec %q: need at least one point", spec)
	}

	values := make([]float64, n)
	if n == 1 {
		values[0] = lo
	} else {
		step := (hi - lo) / float64(n-1)
		for i := range values {
			values[i] = lo + float64(i)*step
		}
	}
	return name, values, nil
}
