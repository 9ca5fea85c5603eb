// landforge is a CLI utility that turns grayscale heightmap images into
// landscape import data: a power-of-two elevation grid plus world scales.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/landforge/internal/config"
	"github.com/Faultbox/landforge/internal/host"
	"github.com/Faultbox/landforge/internal/logger"
	"github.com/Faultbox/landforge/pkg/heightmap"
	"github.com/Faultbox/landforge/pkg/landscape"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "import":
		cmdImport(args)
	case "gen":
		cmdGen(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`landforge - heightmap to landscape import utility

Usage:
  landforge <command> [options]

Commands:
  info <heightmap>               Show heightmap and grid information
  import [options] <heightmap>   Build and export landscape import data
  gen [options] <out.png>        Generate a synthetic perlin heightmap

Examples:
  landforge info terrain.png
  landforge import -blocks 4 -o ./world terrain.png
  landforge gen -size 512 -seed 7 terrain.png`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: landforge info <heightmap>")
		os.Exit(1)
	}

	img, err := heightmap.DecodeFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	edge, err := landscape.ComputeGridEdge(img.Width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	field, err := landscape.BuildHeightField(img, edge)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lo, hi := field.ElevationRange()

	fmt.Printf("Heightmap: %s\n", args[0])
	fmt.Printf("Size:      %dx%d\n", img.Width, img.Height)
	fmt.Printf("Grid edge: %d\n", edge)
	fmt.Printf("Samples:   %d-%d\n", lo, hi)
	if img.Height > edge {
		fmt.Printf("Note: %d rows beyond the square grid will be cropped\n", img.Height-edge)
	}
}

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	blocks := fs.Int("blocks", 0, "World blocks to cover (0 = from config)")
	blockSize := fs.Float64("block-size", 0, "Physical block size in world units (0 = from config)")
	verticalScale := fs.Float64("vertical-scale", 0, "Fixed vertical scale (0 = from config)")
	auto := fs.Bool("auto", false, "Fit vertical scale to the sample range")
	outDir := fs.String("o", "", "Output directory")
	name := fs.String("name", "", "Output base name")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: landforge import [options] <heightmap>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *blocks > 0 {
		cfg.Terrain.Blocks = *blocks
	}
	if *blockSize > 0 {
		cfg.Terrain.BlockSize = *blockSize
	}
	if *verticalScale > 0 {
		cfg.Terrain.VerticalScale = *verticalScale
	}
	if *auto {
		cfg.Terrain.AutoScale = true
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *name != "" {
		cfg.Output.Name = *name
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	img, err := heightmap.DecodeFile(fs.Arg(0))
	if err != nil {
		logger.Error("failed to load heightmap", zap.String("path", fs.Arg(0)), zap.Error(err))
		os.Exit(1)
	}

	req, err := landscape.GenerateImage(img, cfg.Terrain.Blocks, cfg.Options())
	if err != nil {
		logger.Error("failed to build landscape data", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("sized landscape grid",
		zap.Int("original_width", img.Width),
		zap.Int("original_height", img.Height),
		zap.Int("grid_edge", req.Field.Edge))
	logger.Info("planned landscape geometry",
		zap.Int("component_quads", req.Geometry.ComponentQuads),
		zap.Int("subsection_quads", req.Geometry.SubsectionQuads),
		zap.Int("grid_side", req.Geometry.GridSide),
		zap.Float64("horizontal_scale", req.Geometry.HorizontalScale),
		zap.Float64("vertical_scale", req.Geometry.VerticalScale))

	exporter := &host.RawExporter{Dir: cfg.Output.Dir, Name: cfg.Output.Name}
	if err := exporter.Import(req); err != nil {
		logger.Error("failed to export landscape", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("exported landscape",
		zap.String("dir", cfg.Output.Dir),
		zap.String("name", cfg.Output.Name),
		zap.Int("cells", len(req.Field.Elevations)))
}

func cmdGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	size := fs.Int("size", 512, "Heightmap width and height in pixels")
	width := fs.Int("width", 0, "Heightmap width (overrides -size)")
	height := fs.Int("height", 0, "Heightmap height (overrides -size)")
	seed := fs.Int64("seed", 1, "Noise seed")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: landforge gen [options] <out.png>")
		os.Exit(1)
	}

	w, h := *size, *size
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}
	if w <= 0 || h <= 0 {
		fmt.Fprintln(os.Stderr, "Error: size must be positive")
		os.Exit(1)
	}

	img := heightmap.Synthesize(w, h, *seed)

	f, err := os.Create(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := heightmap.EncodePNG(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated: %s (%dx%d, seed %d)\n", fs.Arg(0), w, h, *seed)
}
