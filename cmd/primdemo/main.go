// Command primdemo renders a frame containing every primitive kind with the
// CPU rasterizer and saves it as PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/atlas"
	"github.com/gogpu/prim/raster"
)

type config struct {
	width, height int
	output        string
	mode          prim.CoordMode
	workers       int
	tile          int
	blend         raster.BlendMode
	term          bool
	verbose       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("primdemo: %v", err)
	}
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("primdemo", flag.ContinueOnError)
	var (
		width   = fs.Int("width", 480, "image width")
		height  = fs.Int("height", 320, "image height")
		output  = fs.String("output", "demo.png", "output file")
		mode    = fs.String("mode", "pixel", "instance coordinates: pixel or ndc")
		workers = fs.Int("workers", 0, "rasterizer workers (0 = GOMAXPROCS)")
		tile    = fs.Int("tile", 64, "tile size in pixels")
		blend   = fs.String("blend", "source-over", "blend mode")
		term    = fs.Bool("term", false, "print a preview to the terminal")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		width:   *width,
		height:  *height,
		output:  *output,
		workers: *workers,
		tile:    *tile,
		term:    *term,
		verbose: *verbose,
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return config{}, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	switch *mode {
	case "pixel":
		cfg.mode = prim.PixelSpace
	case "ndc":
		cfg.mode = prim.NDCSpace
	default:
		return config{}, fmt.Errorf("unknown mode %q (want pixel or ndc)", *mode)
	}
	bm, err := raster.ParseBlendMode(*blend)
	if err != nil {
		return config{}, err
	}
	cfg.blend = bm
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.verbose {
		prim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	glyphs := atlas.New(atlas.FormatCoverageMask, atlas.WithSize(256, 256), atlas.WithLabel("primdemo"))
	instances, err := buildScene(cfg.width, cfg.height, glyphs)
	if err != nil {
		return err
	}

	target := raster.NewPixmapTarget(cfg.width, cfg.height)
	target.Clear(prim.Hex("#101418"))

	f := prim.Frame{Viewport: target.Viewport(), Mode: cfg.mode}
	if cfg.mode == prim.NDCSpace {
		for i := range instances {
			instances[i] = f.Viewport.InstanceToNDC(instances[i])
		}
	}

	r := raster.New(
		raster.WithWorkers(cfg.workers),
		raster.WithTileSize(cfg.tile),
		raster.WithBlendMode(cfg.blend),
		raster.WithAtlas(glyphs),
	)
	defer r.Close()
	if err := r.Render(target, f, instances); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := savePNG(cfg.output, target); err != nil {
		return err
	}
	log.Printf("Demo saved to %s (%dx%d, %s, %d instances)", cfg.output, cfg.width, cfg.height, cfg.mode, len(instances))

	if cfg.term {
		_, err := fmt.Fprintln(stdout, preview(target.Image(), previewColumns))
		return err
	}
	return nil
}

func savePNG(path string, t *raster.PixmapTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, t.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
