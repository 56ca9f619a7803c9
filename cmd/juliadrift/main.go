package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/san-kum/juliadrift/internal/anim"
	"github.com/san-kum/juliadrift/internal/capture"
	"github.com/san-kum/juliadrift/internal/config"
	"github.com/san-kum/juliadrift/internal/julia"
	"github.com/san-kum/juliadrift/internal/render"
	"github.com/san-kum/juliadrift/internal/tui"
	"github.com/san-kum/juliadrift/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	width      int
	height     int
	maxIters   int
	fps        float64
	seed       uint64
	workers    int
	radius     float64
	accel      float64
	damping    float64
	baseRe     float64
	baseIm     float64
	// snapshot/profile
	warmup    int
	numFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "juliadrift",
		Short: "animated julia set in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".juliadrift", "capture directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "grid width (0 = terminal width)")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "grid height (0 = terminal height)")
	rootCmd.PersistentFlags().IntVar(&maxIters, "iters", config.DefaultMaxIters, "escape iteration cap")
	rootCmd.PersistentFlags().Float64Var(&fps, "fps", config.DefaultFPS, "target frame rate")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "walk seed (0 = fixed default)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "render workers (0 = all cpus)")
	rootCmd.PersistentFlags().Float64Var(&radius, "radius", config.DefaultRadius, "walk soft radius")
	rootCmd.PersistentFlags().Float64Var(&accel, "accel", config.DefaultAccel, "walk acceleration")
	rootCmd.PersistentFlags().Float64Var(&damping, "damping", config.DefaultDamping, "walk damping")
	rootCmd.PersistentFlags().Float64Var(&baseRe, "base-re", config.DefaultBaseRe, "base parameter, real part")
	rootCmd.PersistentFlags().Float64Var(&baseIm, "base-im", config.DefaultBaseIm, "base parameter, imaginary part")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "raw full-screen animation loop",
		RunE:  runLive,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame and save it",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&warmup, "warmup", 0, "walk steps before capturing")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list captures",
		RunE:  listCaptures,
	}

	showCmd := &cobra.Command{
		Use:   "show [capture_id]",
		Short: "print a saved capture",
		Args:  cobra.ExactArgs(1),
		RunE:  showCapture,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "measure offscreen frame cost",
		RunE:  runProfile,
	}
	profileCmd.Flags().IntVar(&numFrames, "frames", 120, "frames to render")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRADIUS\tACCEL\tDAMPING\tITERS\tFPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%d\t%.0f\n",
					name, p.Walk.Radius, p.Walk.Accel, p.Walk.Damping, p.MaxIters, p.FPS)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(liveCmd, snapshotCmd, listCmd, showCmd, profileCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves precedence: defaults, then preset, then config
// file, then any explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("iters") {
		cfg.MaxIters = maxIters
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("radius") {
		cfg.Walk.Radius = radius
	}
	if flags.Changed("accel") {
		cfg.Walk.Accel = accel
	}
	if flags.Changed("damping") {
		cfg.Walk.Damping = damping
	}
	if flags.Changed("base-re") {
		cfg.Walk.BaseRe = baseRe
	}
	if flags.Changed("base-im") {
		cfg.Walk.BaseIm = baseIm
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	var stop atomic.Bool
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		stop.Store(true)
	}()
	defer signal.Stop(sigs)

	runner := &tui.Runner{
		Out: os.Stdout,
		Size: func() (int, int) {
			w, h, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				return 80, 24
			}
			return w, h
		},
	}

	sum, err := runner.Run(cfg, &stop)
	if err != nil {
		return err
	}

	fmt.Printf("exited. frames: %d time: %.2fs avg fps: %.2f\n",
		sum.Frames, sum.Elapsed.Seconds(), sum.AvgFPS())
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	walk := anim.Config{
		Base:    complex(cfg.Walk.BaseRe, cfg.Walk.BaseIm),
		Radius:  cfg.Walk.Radius,
		Accel:   cfg.Walk.Accel,
		Damping: cfg.Walk.Damping,
	}
	state := anim.NewState(cfg.Seed)
	c := anim.Parameter(walk, state)
	for i := 0; i < warmup; i++ {
		state, c = anim.Advance(walk, state, 1.0/cfg.FPS)
	}

	var frame bytes.Buffer
	renderer := &render.Renderer{Workers: cfg.Workers}
	directives, err := renderer.Frame(julia.Field{C: c, MaxIters: cfg.MaxIters}, w, h, cfg.MaxIters, &frame)
	if err != nil {
		return err
	}

	st := capture.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(capture.Metadata{
		Width: w, Height: h, MaxIters: cfg.MaxIters, Seed: cfg.Seed,
		ParamRe: real(c), ParamIm: imag(c), Directives: directives,
	}, frame.Bytes())
	if err != nil {
		return err
	}

	fmt.Printf("saved %s (%dx%d, %d directives)\n", id, w, h, directives)
	return nil
}

func listCaptures(cmd *cobra.Command, args []string) error {
	st := capture.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("no captures found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tITERS\tC\tDIRECTIVES")
	for _, m := range metas {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t(%+.3f,%+.3f)\t%d\n",
			m.ID,
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.Width, m.Height,
			m.MaxIters,
			m.ParamRe, m.ParamIm,
			m.Directives,
		)
	}
	return w.Flush()
}

func showCapture(cmd *cobra.Command, args []string) error {
	st := capture.New(dataDir)
	frame, err := st.LoadFrame(args[0])
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(frame)
	return err
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if numFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", numFrames)
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	walk := anim.Config{
		Base:    complex(cfg.Walk.BaseRe, cfg.Walk.BaseIm),
		Radius:  cfg.Walk.Radius,
		Accel:   cfg.Walk.Accel,
		Damping: cfg.Walk.Damping,
	}
	state := anim.NewState(cfg.Seed)
	renderer := &render.Renderer{Workers: cfg.Workers}

	fmt.Printf("profiling %d frames at %dx%d, %d iters\n\n", numFrames, w, h, cfg.MaxIters)

	costs := make([]float64, 0, numFrames)
	totalDirectives := 0
	var c complex128

	for i := 0; i < numFrames; i++ {
		state, c = anim.Advance(walk, state, 1.0/cfg.FPS)

		start := time.Now()
		n, err := renderer.Frame(julia.Field{C: c, MaxIters: cfg.MaxIters}, w, h, cfg.MaxIters, io.Discard)
		if err != nil {
			return err
		}
		costs = append(costs, float64(time.Since(start).Microseconds())/1000)
		totalDirectives += n
	}

	graph := asciigraph.Plot(costs,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("frame cost (ms)"),
	)
	fmt.Println(graph)
	fmt.Println()

	minC, maxC, sum := costs[0], costs[0], 0.0
	for _, v := range costs {
		if v < minC {
			minC = v
		}
		if v > maxC {
			maxC = v
		}
		sum += v
	}
	mean := sum / float64(len(costs))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MIN\tMEAN\tMAX\tBUDGET\tDIRECTIVES/FRAME")
	fmt.Fprintf(tw, "%.2fms\t%.2fms\t%.2fms\t%.2fms\t%d\n",
		minC, mean, maxC, 1000/cfg.FPS, totalDirectives/numFrames)
	return tw.Flush()
}
