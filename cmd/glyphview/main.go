package main

import "os"
import "flag"
import "image"
import "image/color"
import "strings"
import "log/slog"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/tinne26/celltxt"
import "github.com/tinne26/celltxt/mask"
import "github.com/tinne26/celltxt/cache"
import "github.com/tinne26/celltxt/internal/hexcolor"

// Opens a window and draws text with a glyph cache, one line per
// cell row. Up/down arrows change the cell height, F toggles
// fullscreen and Escape quits. Run it like this:
//   go run github.com/tinne26/celltxt/cmd/glyphview -font path/to/font.ttf

const defaultText = ` !"#$%&'()*+,-./0123456789:;<=>?
@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\]^_
` + "`" + `abcdefghijklmnopqrstuvwxyz{|}~
▀▁▂▃▄▅▆▇█▉▊▋▌▍▎▏
▐░▒▓▔▕▖▗▘▙▚▛▜▝▞▟`

type Game struct {
	compositor *celltxt.Compositor
	lines []string
	fg, bg hexcolor.Flag
	cellHeight int
	logger *slog.Logger
}

func (self *Game) Layout(winWidth, winHeight int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	return int(float64(winWidth)*scale), int(float64(winHeight)*scale)
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) { return ebiten.Termination }
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		self.cellHeight += 2
		self.logger.Debug("cell height changed", "height", self.cellHeight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && self.cellHeight > 2 {
		self.cellHeight -= 2
		self.logger.Debug("cell height changed", "height", self.cellHeight)
	}
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	surface := celltxt.NewEbitenSurface(screen)
	surface.Clear(self.bg.Color)
	for i, line := range self.lines {
		origin := image.Pt(self.cellHeight/2, self.cellHeight/2 + i*self.cellHeight)
		err := self.compositor.DrawText(surface, line, self.fg.Color, self.bg.Color, origin, self.cellHeight)
		if err != nil {
			// keep going, the error is most likely an unsupported rune
			self.logger.Error("draw failed", "line", i, "err", err)
		}
	}
}

func main() {
	var game Game
	game.fg.Color = color.RGBA{255, 0, 0, 255}
	game.bg.Color = color.RGBA{0, 0, 0, 255}

	fontPath  := flag.String("font", "assets/InputMono-Regular.ttf", "path to a .ttf or .otf font")
	text      := flag.String("text", defaultText, "text to draw, lines separated by \\n")
	pointSize := flag.Float64("size", mask.DefaultPointSize, "rasterization size in pixels per em")
	verbose   := flag.Bool("v", false, "enable debug logging")
	flag.IntVar(&game.cellHeight, "height", 32, "cell height in pixels")
	flag.Var(&game.fg, "fg", "text color (#RRGGBB or #RRGGBBAA)")
	flag.Var(&game.bg, "bg", "background color (#RRGGBB or #RRGGBBAA)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose { level = slog.LevelDebug }
	game.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	celltxt.SetLogger(game.logger)
	game.lines = strings.Split(strings.ReplaceAll(*text, `\n`, "\n"), "\n")

	err := run(&game, *fontPath, *pointSize)
	if err != nil {
		game.logger.Error("glyphview failed", "err", err)
		os.Exit(1)
	}
}

func run(game *Game, fontPath string, pointSize float64) error {
	if game.cellHeight <= 0 { return celltxt.ErrInvalidCellHeight }

	glyphs, err := cache.Build(fontPath, pointSize, color.White)
	if err != nil { return err }
	defer glyphs.Release()
	game.logger.Info("glyph cache ready", "cache", glyphs.String(), "bytes", glyphs.ByteSize())
	game.compositor = celltxt.NewCompositor(glyphs)

	ebiten.SetWindowTitle("glyphview")
	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
