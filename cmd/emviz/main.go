package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/gui"
	"github.com/san-kum/emviz/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	charge        float64
	current       float64
	labels        bool
	equipotential bool
	vectors       bool
	seed          int64

	format  string
	outFile string
	save    bool

	width   int
	height  int
	svgFile string
	spin    float64
	noColor bool
	theme   string

	law    string
	glyphC float64
	glyphS float64
	source float64
	rFrom  float64
	rTo    float64

	hold     float64
	preview  bool
	previewW int
	previewH int

	sweepControl string
	sweepMin     float64
	sweepMax     float64
	sweepSteps   int

	deleteRun string
)

var log *slog.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:           "emviz",
		Short:         "electromagnetism concept visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))
			slog.SetDefault(log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, "")
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDir, "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	listCmd := &cobra.Command{
		Use:   "list [category]",
		Short: "list concepts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listConcepts,
	}

	describeCmd := &cobra.Command{
		Use:   "describe [concept]",
		Short: "show a concept's description and governing equation",
		Args:  cobra.ExactArgs(1),
		RunE:  describeConcept,
	}

	generateCmd := &cobra.Command{
		Use:   "generate [concept]",
		Short: "generate a visualization and print its primitives",
		Args:  cobra.ExactArgs(1),
		RunE:  generateConcept,
	}
	paramFlags(generateCmd)
	generateCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	generateCmd.Flags().StringVarP(&outFile, "out", "o", "", "write output to file")
	generateCmd.Flags().BoolVar(&save, "save", false, "save to the data directory")

	renderCmd := &cobra.Command{
		Use:   "render [concept]",
		Short: "draw a visualization as a Braille wireframe",
		Args:  cobra.ExactArgs(1),
		RunE:  renderConcept,
	}
	paramFlags(renderCmd)
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "width in cells")
	renderCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "height in cells")
	renderCmd.Flags().StringVar(&svgFile, "svg", "", "also write an svg drawing")
	renderCmd.Flags().Float64Var(&spin, "spin", 0, "animate the orbit for this many seconds")
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "plain output")
	renderCmd.Flags().StringVar(&theme, "theme", "", "svg theme")

	falloffCmd := &cobra.Command{
		Use:   "falloff",
		Short: "plot a glyph length law",
		RunE:  plotFalloff,
	}
	falloffCmd.Flags().StringVar(&law, "law", "inverse-square", "falloff law")
	falloffCmd.Flags().Float64Var(&glyphC, "cap", 1.5, "maximum glyph length")
	falloffCmd.Flags().Float64Var(&glyphS, "scale", 0.5, "glyph scale")
	falloffCmd.Flags().Float64Var(&source, "source", 1, "source strength")
	falloffCmd.Flags().Float64Var(&rFrom, "from", 0.2, "start distance")
	falloffCmd.Flags().Float64Var(&rTo, "to", 6, "end distance")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "generate every concept and check resource release",
		RunE:  conceptStats,
	}
	paramFlags(statsCmd)

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}
	runsCmd.Flags().StringVar(&deleteRun, "delete", "", "delete the run with this id")

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	tourCmd := &cobra.Command{
		Use:   "tour [scenario.yaml]",
		Short: "run a scripted tour, or every concept when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTour,
	}
	tourCmd.Flags().Float64Var(&hold, "hold", 0, "seconds per step for the built-in tour")
	tourCmd.Flags().BoolVar(&preview, "preview", false, "print a wireframe per step")
	tourCmd.Flags().IntVar(&previewW, "width", 60, "preview width in cells")
	tourCmd.Flags().IntVar(&previewH, "height", 20, "preview height in cells")

	sweepCmd := &cobra.Command{
		Use:   "sweep [concept]",
		Short: "reload a concept across a slider range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepControl, "control", "charge", "slider: charge or current")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.5, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", config.MaxCharge, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")

	presetsCmd := &cobra.Command{
		Use:   "presets [concept]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			concepts := config.PresetConcepts()
			if len(args) > 0 {
				concepts = args
			}
			for _, c := range concepts {
				names := config.ListPresets(c)
				if len(names) == 0 {
					fmt.Printf("no presets for concept: %s\n", c)
					continue
				}
				fmt.Printf("presets for %s:\n", c)
				for _, p := range names {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui [concept]",
		Short: "open the 3D window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			cfg, err := resolveConfig(cmd, initial)
			if err != nil {
				return err
			}
			return gui.Run(cfg, log, initial)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [concept]",
		Short: "open the terminal UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			return runTUI(cmd, initial)
		},
	}

	rootCmd.AddCommand(listCmd, describeCmd, generateCmd, renderCmd, falloffCmd, statsCmd,
		runsCmd, showCmd, tourCmd, sweepCmd, presetsCmd, guiCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func paramFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&charge, "charge", config.DefaultCharge, "charge Q")
	cmd.Flags().Float64Var(&current, "current", config.DefaultCurrent, "current I")
	cmd.Flags().BoolVar(&labels, "labels", true, "show labels")
	cmd.Flags().BoolVar(&equipotential, "equipotential", false, "show equipotential surfaces")
	cmd.Flags().BoolVar(&vectors, "vectors", false, "show field vectors")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time)")
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command, concept string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(concept, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(concept))
		}
		pc := *p
		pc.View = cfg.View
		pc.DataDir = cfg.DataDir
		cfg = &pc
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
	}

	flags := cmd.Flags()
	if flags.Changed("charge") {
		cfg.Params.Charge = charge
	}
	if flags.Changed("current") {
		cfg.Params.Current = current
	}
	if flags.Changed("labels") {
		cfg.Params.ShowLabels = labels
	}
	if flags.Changed("equipotential") {
		cfg.Params.ShowEquipotential = equipotential
	}
	if flags.Changed("vectors") {
		cfg.Params.ShowFieldVectors = vectors
	}
	if flags.Changed("seed") {
		cfg.Params.Seed = seed
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if concept != "" {
		d, ok := catalog.Lookup(concept)
		if !ok {
			return nil, fmt.Errorf("unknown concept: %s", concept)
		}
		cfg.Concept = concept
		cfg.Params.Category = d.Category
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// runTUI hands the screen to the terminal UI. Logging goes to a file in the
// data directory while it runs.
func runTUI(cmd *cobra.Command, initial string) error {
	cfg, err := resolveConfig(cmd, initial)
	if err != nil {
		return err
	}
	tl, closer := tuiLogger(cfg.DataDir, logLevel())
	defer closer.Close()

	prev := slog.Default()
	slog.SetDefault(tl)
	defer slog.SetDefault(prev)
	return tui.Run(cfg, tl, initial)
}

const tuiLogFile = "emviz.log"

// tuiLogger opens dir/emviz.log for appending. If the file cannot be
// opened the logger discards everything.
func tuiLogger(dir string, level slog.Level) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: level}
	if err := os.MkdirAll(dir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, tuiLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			return slog.New(slog.NewTextHandler(f, opts)), f
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, opts)), io.NopCloser(nil)
}
