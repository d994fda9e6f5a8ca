package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"obj-setup/internal/config"
	"obj-setup/internal/logging"
	"obj-setup/internal/pipeline"
	"obj-setup/internal/report"
	"obj-setup/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.yaml file")
	dir := flag.String("dir", "", "Folder (or a file inside it) to scan for .obj models")
	useBump := flag.Bool("use-bump", false, "Wire normal textures through a height bump node")
	bumpStrength := flag.Float64("bump-strength", 0, "Height bump strength (default: 0.2)")
	margin := flag.Float64("margin", 0, "Gap between placed objects (default: 1.0)")
	axis := flag.String("axis", "", "Placement axis x, y or z (default: x)")
	up := flag.String("up", "", "Up axis of the model files x, y or z (default: z)")
	claim := flag.String("claim", "", "Texture claim policy longest or shared (default: longest)")
	probe := flag.Bool("probe", false, "Read image headers of matched textures")
	applyScale := flag.Bool("apply-scale", false, "Bake scale of imported objects after import")
	lineUp := flag.Bool("line-up", false, "Line up all objects by name after import")
	manifest := flag.String("manifest", "", "Write a JSON manifest to this path")
	metricsOut := flag.String("metrics", "", "Write Prometheus textfile metrics to this path")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")

	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	flags := config.Flags{
		FolderPath:   *dir,
		ManifestPath: *manifest,
		MetricsPath:  *metricsOut,
		Axis:         *axis,
		SourceUp:     *up,
		ClaimPolicy:  *claim,
		LogLevel:     *logLevel,
	}
	if set["use-bump"] {
		flags.UseBump = useBump
	}
	if set["bump-strength"] {
		flags.BumpStrength = bumpStrength
	}
	if set["margin"] {
		flags.Margin = margin
	}
	if set["probe"] {
		flags.Probe = probe
	}
	if flags.FolderPath == "" && flag.NArg() > 0 {
		flags.FolderPath = flag.Arg(0)
	}
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	opts := pipeline.Options{
		Material: cfg.MaterialOptions(),
		Axis:     cfg.LayoutAxis(),
		Margin:   cfg.Margin,
		Claim:    cfg.Claim(),
		Probe:    cfg.ProbeTextures,
		SourceUp: cfg.SourceUpAxis(),
	}
	p := pipeline.New(scene.New(), opts, log, nil)

	fmt.Printf("OBJ setup: %s\n", cfg.FolderPath)
	fmt.Printf("Axis: %s, Margin: %.2f, Claim: %s, Bump: %v\n", opts.Axis, opts.Margin, opts.Claim, opts.Material.UseBump)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	res, err := p.ScanAndImport(cfg.FolderPath)
	if err != nil {
		log.Error("scan failed", zap.Error(err))
		os.Exit(1)
	}

	if *applyScale {
		n := p.ApplyScale(nil)
		fmt.Printf("Scale applied: %d objects\n", n)
	}
	if *lineUp {
		p.LineUp(nil)
		fmt.Printf("Lined up: %d objects\n", p.Scene.Len())
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs\n", elapsed.Seconds())
	fmt.Printf("Imported: %d, Models: %d, Images: %d\n", res.Imported, len(res.Models), p.Images.Len())

	for _, mr := range res.Models {
		state := "new"
		if mr.Asset.AlreadyPresent {
			state = "present"
		}
		fmt.Printf("  %-24s %-8s textures=%d nodes=%d\n", mr.Asset.Name, state, len(mr.Images), len(mr.Graph.Nodes()))
	}

	if len(res.Notices) > 0 {
		fmt.Printf("\nNotices (%d):\n", len(res.Notices))
		for _, n := range res.Notices {
			fmt.Printf("  [%s] %s\n", n.Kind, n.Message)
		}
	}

	if cfg.ManifestPath != "" {
		if err := report.WriteManifest(cfg.ManifestPath, res); err != nil {
			log.Error("manifest not written", zap.Error(err))
		} else {
			fmt.Printf("Manifest: %s\n", cfg.ManifestPath)
		}
	}
	if cfg.MetricsPath != "" {
		if err := p.Metrics().WriteTextfile(cfg.MetricsPath); err != nil {
			log.Error("metrics not written", zap.Error(err))
		}
	}
}
