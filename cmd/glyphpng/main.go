//go:build gtxt

package main

import "os"
import "flag"
import "image"
import "strings"
import "log/slog"
import "image/png"
import "image/color"

import "github.com/tinne26/celltxt"
import "github.com/tinne26/celltxt/mask"
import "github.com/tinne26/celltxt/cache"
import "github.com/tinne26/celltxt/internal/hexcolor"

// Renders text to a PNG file on the CPU, without Ebitengine. Useful
// to preview fonts in headless environments:
//   go run -tags gtxt github.com/tinne26/celltxt/cmd/glyphpng -font font.ttf -out text.png -text "Hello ▓▒░"

type options struct {
	fontPath string
	outPath string
	lines []string
	pointSize float64
	cellHeight int
	fg, bg hexcolor.Flag
}

func main() {
	var opts options
	opts.fg.Color = color.RGBA{255, 255, 255, 255}
	opts.bg.Color = color.RGBA{0, 0, 0, 255}

	text := flag.String("text", "Hello ▓▒░", "text to draw, lines separated by \\n")
	flag.StringVar(&opts.fontPath, "font", "", "path to a .ttf or .otf font (required)")
	flag.StringVar(&opts.outPath, "out", "glyphs.png", "output PNG path")
	flag.Float64Var(&opts.pointSize, "size", mask.DefaultPointSize, "rasterization size in pixels per em")
	flag.IntVar(&opts.cellHeight, "height", 32, "cell height in pixels")
	flag.Var(&opts.fg, "fg", "text color (#RRGGBB or #RRGGBBAA)")
	flag.Var(&opts.bg, "bg", "background color (#RRGGBB or #RRGGBBAA)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	celltxt.SetLogger(logger)
	opts.lines = strings.Split(strings.ReplaceAll(*text, `\n`, "\n"), "\n")

	if opts.fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	err := run(&opts, logger)
	if err != nil {
		logger.Error("glyphpng failed", "err", err)
		os.Exit(1)
	}
}

func run(opts *options, logger *slog.Logger) error {
	if opts.cellHeight <= 0 { return celltxt.ErrInvalidCellHeight }

	glyphs, err := cache.Build(opts.fontPath, opts.pointSize, color.White)
	if err != nil { return err }
	defer glyphs.Release()
	compositor := celltxt.NewCompositor(glyphs)

	// measure first to size the image
	width := 0
	for _, line := range opts.lines {
		lineWidth, err := compositor.MeasureText(line, opts.cellHeight)
		if err != nil { return err }
		if lineWidth > width { width = lineWidth }
	}
	padding := opts.cellHeight/2
	bounds := image.Rect(0, 0, width + padding*2, len(opts.lines)*opts.cellHeight + padding*2)
	target := image.NewRGBA(bounds)
	surface := celltxt.NewImageSurface(target)
	surface.Clear(opts.bg.Color)

	for i, line := range opts.lines {
		origin := image.Pt(padding, padding + i*opts.cellHeight)
		err := compositor.DrawText(surface, line, opts.fg.Color, opts.bg.Color, origin, opts.cellHeight)
		if err != nil { return err }
	}

	file, err := os.Create(opts.outPath)
	if err != nil { return err }
	err = png.Encode(file, target)
	if err != nil {
		_ = file.Close()
		return err
	}
	logger.Info("image written", "path", opts.outPath, "width", bounds.Dx(), "height", bounds.Dy())
	return file.Close()
}
