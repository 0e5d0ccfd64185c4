package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/export"
	"github.com/san-kum/emviz/internal/fields"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/scene"
	"github.com/san-kum/emviz/internal/storage"
	"github.com/san-kum/emviz/internal/tour"
	"github.com/san-kum/emviz/internal/tui"
	"github.com/san-kum/emviz/internal/viz"
)

func listConcepts(cmd *cobra.Command, args []string) error {
	descs := catalog.All()
	if len(args) > 0 {
		c, ok := catalog.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("unknown category: %s", args[0])
		}
		descs = catalog.ByCategory(c)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tLABEL")
	for _, d := range descs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Category, d.Label)
	}
	return w.Flush()
}

func describeConcept(cmd *cobra.Command, args []string) error {
	d, ok := catalog.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown concept: %s", args[0])
	}
	fmt.Printf("%s [%s]\n\n", d.Label, d.Category.Title())
	fmt.Printf("%s\n\n", d.Description)
	fmt.Printf("  %s\n\n", d.Equation)

	var names []string
	for _, c := range config.ControlsFor(d.Category) {
		names = append(names, c.String())
	}
	fmt.Printf("controls: %s\n", strings.Join(names, ", "))
	if presets := config.ListPresets(d.ID); len(presets) > 0 {
		fmt.Printf("presets:  %s\n", strings.Join(presets, ", "))
	}
	return nil
}

// install loads concept into a fresh root and returns what the host would
// draw.
func install(concept string, p config.Params) (*scene.Root, *lifecycle.Manager, *scene.Tracker) {
	root := scene.NewRoot()
	dev := scene.NewTracker()
	mgr := lifecycle.New(root, dev, lifecycle.WithLogger(log))
	if err := mgr.SwitchCategory(p.Category); err != nil {
		log.Warn("switch category", "err", err)
	}
	if err := mgr.Load(concept, p); err != nil {
		log.Warn("load", "err", err)
	}
	return root, mgr, dev
}

func generateConcept(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	_, mgr, dev := install(cfg.Concept, cfg.Params)
	elapsed := time.Since(start)
	g := mgr.Active()

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Concept, cfg.Params, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "run id: %s\n", runID)
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if format != "text" {
		return export.Write(out, format, export.Dump(cfg.Concept, cfg.Params, g))
	}

	d, _ := catalog.Lookup(cfg.Concept)
	fmt.Fprintf(out, "%s (%s)\n", d.Label, cfg.Concept)
	fmt.Fprintf(out, "generated in %v\n\n", elapsed)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tCOUNT")
	hist := g.Histogram()
	for _, k := range scene.Kinds() {
		if n := hist[k]; n > 0 {
			fmt.Fprintf(w, "%s\t%d\n", k, n)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nprimitives: %d\nhandles:    %d\n", g.Len(), g.Handles())
	fmt.Fprintf(out, "geometries: %d  materials: %d  textures: %d\n",
		dev.LiveOf(scene.GeometryResource), dev.LiveOf(scene.MaterialResource), dev.LiveOf(scene.TextureResource))
	return mgr.Clear()
}

func renderConcept(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("width") && cfg.View.Width > 0 {
		width = cfg.View.Width
	}
	if !cmd.Flags().Changed("height") && cfg.View.Height > 0 {
		height = cfg.View.Height
	}

	root, mgr, _ := install(cfg.Concept, cfg.Params)
	defer mgr.Clear()

	orbit := viz.NewOrbit()
	orbit.AutoRotate = cfg.View.AutoRotate
	orbit.AutoRotateSpeed = cfg.View.AutoRotateSpeed

	if svgFile != "" {
		name := cfg.View.Theme
		if theme != "" {
			name = theme
		}
		svg := export.WireframeToSVG(viz.Build(root), orbit.Camera(), width*8, height*16, viz.GetTheme(name))
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", svgFile)
	}

	if spin > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		d, _ := catalog.Lookup(cfg.Concept)
		lr := tui.NewLiveRenderer(os.Stdout, d.Label, 30, width, height, !noColor)
		return lr.Run(ctx, root, orbit, time.Duration(spin*float64(time.Second)))
	}

	c := viz.Snapshot(root, orbit, width, height)
	if noColor {
		fmt.Print(c.String())
	} else {
		fmt.Print(c.Render())
	}
	return nil
}

func plotFalloff(cmd *cobra.Command, args []string) error {
	f, err := fields.ParseFalloff(law)
	if err != nil {
		return err
	}
	if rTo <= rFrom {
		return fmt.Errorf("empty range [%g, %g]", rFrom, rTo)
	}
	g := fields.Glyph{Law: f, Scale: glyphS, Cap: glyphC}
	data := g.Sample(source, rFrom, rTo, falloffSamples)

	caption := fmt.Sprintf("%s glyph length, r = %.2f .. %.2f, cap %.2f", f, rFrom, rTo, glyphC)
	if lo, hi, ok := saturatedRange(g, source, rFrom, rTo, falloffSamples); ok {
		caption += fmt.Sprintf(", clipped for r in [%.2f, %.2f]", lo, hi)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

const falloffSamples = 80

// saturatedRange returns the smallest and largest sampled distances at
// which the glyph is clipped to its cap.
func saturatedRange(g fields.Glyph, source, r0, r1 float64, n int) (lo, hi float64, ok bool) {
	if n < 2 {
		n = 2
	}
	for i := 0; i < n; i++ {
		r := r0 + (r1-r0)*float64(i)/float64(n-1)
		if !g.Saturated(source, r) {
			continue
		}
		if !ok {
			lo, ok = r, true
		}
		hi = r
	}
	return lo, hi, ok
}

func conceptStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	start := time.Now()
	batches := fields.GenerateAll(cfg.Params)
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONCEPT\tCATEGORY\tPRIMITIVES\tHANDLES\tARROWS\tTUBES")
	total := 0
	for _, b := range batches {
		hist := b.Graph.Histogram()
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			b.Concept, b.Concept.Category(), b.Graph.Len(), b.Graph.Handles(),
			hist[scene.KindArrow], hist[scene.KindTube])
		total += b.Graph.Len()
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d primitives across %d concepts in %v\n", total, len(batches), elapsed)

	// Every concept through one manager must leave nothing live.
	root := scene.NewRoot()
	dev := scene.NewTracker()
	mgr := lifecycle.New(root, dev, lifecycle.WithLogger(log))
	for _, d := range catalog.All() {
		p := cfg.Params
		p.Category = d.Category
		if err := mgr.Load(d.ID, p); err != nil {
			return err
		}
	}
	if err := mgr.Clear(); err != nil {
		return err
	}
	if n := dev.Live(); n != 0 || root.Len() != 0 {
		return fmt.Errorf("leak: %d live resources, %d root children after clear", n, root.Len())
	}
	fmt.Printf("load/clear cycle: %d allocations, 0 live\n", dev.Total())
	return nil
}

// openStore resolves the data directory the same way generate and tour do.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	if deleteRun != "" {
		if err := st.Delete(deleteRun); err != nil {
			return err
		}
		fmt.Printf("deleted run: %s\n", deleteRun)
		return nil
	}

	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONCEPT\tTIME\tCHARGE\tCURRENT\tPRIMITIVES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%d\n",
			run.ID,
			run.Concept,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.Charge,
			run.Params.Current,
			run.Primitives,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	prims, err := st.LoadPrimitives(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("concept: %s (%s)\n", meta.Label, meta.Concept)
	fmt.Printf("time: %s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Printf("charge: %.1f  current: %.1f  labels: %v  equipotential: %v  vectors: %v\n",
		meta.Params.Charge, meta.Params.Current,
		meta.Params.ShowLabels, meta.Params.ShowEquipotential, meta.Params.ShowFieldVectors)
	fmt.Printf("primitives: %d  handles: %d\n\n", meta.Primitives, meta.Handles)

	kinds := make([]string, 0, len(meta.Counts))
	for k := range meta.Counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-10s %d\n", k, meta.Counts[k])
	}

	var lengths []float64
	for _, p := range prims {
		if p.Kind == scene.KindArrow.String() {
			lengths = append(lengths, p.Length)
		}
	}
	if len(lengths) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(lengths,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("arrow lengths in generation order"),
		))
	}
	return nil
}

func runTour(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	sc := tour.Full(hold)
	if len(args) > 0 {
		if sc, err = tour.LoadScenario(args[0]); err != nil {
			return err
		}
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	root := scene.NewRoot()
	orbit := viz.NewOrbit()
	r := &tour.Runner{
		Manager: lifecycle.New(root, scene.NewTracker(), lifecycle.WithLogger(log)),
		Base:    cfg.Params,
		Store:   st,
		Log:     log,
	}
	if preview {
		r.OnStep = func(res tour.Result) {
			fmt.Print(viz.Snapshot(root, orbit, previewW, previewH).Render())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := r.Run(ctx, sc)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tCONCEPT\tPRIMITIVES\tHANDLES\tRUN")
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", res.Step, res.Concept, res.Primitives, res.Handles, res.RunID)
	}
	w.Flush()
	if cerr := r.Manager.Clear(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sw := tour.Sweep{Concept: cfg.Concept, Min: sweepMin, Max: sweepMax, Steps: sweepSteps}
	switch sweepControl {
	case "charge":
		sw.Control = config.ControlCharge
	case "current":
		sw.Control = config.ControlCurrent
	default:
		return fmt.Errorf("unknown control: %s", sweepControl)
	}

	root := scene.NewRoot()
	r := &tour.Runner{
		Manager: lifecycle.New(root, scene.NewTracker(), lifecycle.WithLogger(log)),
		Base:    cfg.Params,
		Log:     log,
	}
	points, err := r.RunSweep(sw)
	if err != nil {
		return err
	}
	defer r.Manager.Clear()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tPRIMITIVES\tHANDLES\tMAX ARROW\n", strings.ToUpper(sweepControl))
	lengths := make([]float64, len(points))
	for i, pt := range points {
		fmt.Fprintf(w, "%.2f\t%d\t%d\t%.3f\n", pt.Value, pt.Primitives, pt.Handles, pt.MaxArrow)
		lengths[i] = pt.MaxArrow
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(lengths,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("longest arrow vs %s", sweepControl)),
	))
	return nil
}
