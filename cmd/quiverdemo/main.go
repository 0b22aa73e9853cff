// Command quiverdemo renders a sample connector diagram: five node
// boxes linked by arrows exercising every router, both head modes,
// dashing, and the hover width. Output goes to PNG and optionally PDF.
// With -watch it keeps running and re-renders whenever the theme file
// changes.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/quiver"
	"github.com/gogpu/quiver/pdf"
	"github.com/gogpu/quiver/raster"
	"github.com/gogpu/quiver/theme"
)

type renderConfig struct {
	width, height int
	pngPath       string
	pdfPath       string
	style         quiver.Style
	log           *slog.Logger
}

func main() {
	var (
		width     = flag.Int("width", 640, "image width")
		height    = flag.Int("height", 480, "image height")
		output    = flag.String("output", "arrows.png", "output PNG file")
		pdfOut    = flag.String("pdf", "", "optional PDF output file")
		themePath = flag.String("theme", "", "YAML theme file")
		logFile   = flag.String("logfile", "", "rotating JSON log file")
		verbose   = flag.Bool("v", false, "debug logging")
		watch     = flag.Bool("watch", false, "re-render when the theme file changes")
	)
	flag.Parse()

	logger := newLogger(*logFile, *verbose)
	quiver.SetLogger(logger)

	cfg := renderConfig{
		width:   *width,
		height:  *height,
		pngPath: *output,
		pdfPath: *pdfOut,
		style:   quiver.DefaultStyle(),
		log:     logger,
	}
	if *themePath != "" {
		style, err := loadStyle(*themePath)
		if err != nil {
			logger.Error("theme load failed", "path", *themePath, "err", err)
			os.Exit(1)
		}
		cfg.style = style
	}

	if err := render(cfg); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}

	if *watch && *themePath != "" {
		if err := watchTheme(*themePath, cfg); err != nil {
			logger.Error("watch failed", "err", err)
			os.Exit(1)
		}
	}
}

func newLogger(file string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if file != "" {
		w := &lj.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadStyle(path string) (quiver.Style, error) {
	th, err := theme.Load(path)
	if err != nil {
		return quiver.Style{}, err
	}
	return th.Style()
}

// node boxes laid out on a 640x480 canvas; arrows anchor to their
// edges.
var (
	boxA = quiver.NewRect(quiver.Pt(40, 40), quiver.Pt(160, 100))
	boxB = quiver.NewRect(quiver.Pt(480, 40), quiver.Pt(600, 100))
	boxC = quiver.NewRect(quiver.Pt(40, 360), quiver.Pt(160, 420))
	boxD = quiver.NewRect(quiver.Pt(480, 360), quiver.Pt(600, 420))
	boxE = quiver.NewRect(quiver.Pt(260, 200), quiver.Pt(380, 260))
)

func buildArrows(style quiver.Style, ks quiver.KeySource) []*quiver.Arrow {
	dashed := style.WithDash(8, 4).WithMode(quiver.HeadIntegrated).WithColor(quiver.Hex("#336699"))
	hovered := style.WithColor(quiver.Hex("#cc3333"))

	direct := quiver.NewArrow(quiver.Pt(boxA.Max.X, 70),
		quiver.WithKey(ks.Next()), quiver.WithStyle(style),
	).To(quiver.Pt(boxB.Min.X, 70))

	elbowHV := quiver.NewArrow(quiver.Pt(100, boxA.Max.Y),
		quiver.WithKey(ks.Next()), quiver.WithStyle(style), quiver.WithRouter(quiver.ElbowHV),
	).To(quiver.Pt(320, boxE.Min.Y))

	elbowVH := quiver.NewArrow(quiver.Pt(540, boxB.Max.Y),
		quiver.WithKey(ks.Next()), quiver.WithStyle(style), quiver.WithRouter(quiver.ElbowVH),
	).To(quiver.Pt(boxE.Max.X, 230))

	midH := quiver.NewArrow(quiver.Pt(boxC.Max.X, 390),
		quiver.WithKey(ks.Next()), quiver.WithStyle(style), quiver.WithRouter(quiver.MidpointH),
	).To(quiver.Pt(320, boxE.Max.Y))

	midV := quiver.NewArrow(quiver.Pt(380, 245),
		quiver.WithKey(ks.Next()), quiver.WithStyle(style), quiver.WithRouter(quiver.MidpointV),
	).To(quiver.Pt(540, boxD.Min.Y))

	dashedUp := quiver.NewArrow(quiver.Pt(100, boxC.Min.Y),
		quiver.WithKey(ks.Next()), quiver.WithStyle(dashed),
	).To(quiver.Pt(100, boxA.Max.Y))

	hot := quiver.NewArrow(quiver.Pt(boxA.Max.X, 85),
		quiver.WithKey(ks.Next()), quiver.WithStyle(hovered),
	).To(quiver.Pt(boxB.Min.X, 85))
	hot.PointerEnter()

	return []*quiver.Arrow{direct, elbowHV, elbowVH, midH, midV, dashedUp, hot}
}

func drawNodes(c *raster.Canvas) {
	fill := color.RGBA{R: 0xe8, G: 0xee, B: 0xf7, A: 0xff}
	border := color.RGBA{R: 0x4a, G: 0x5a, B: 0x78, A: 0xff}
	for _, box := range []quiver.Rect{boxA, boxB, boxC, boxD, boxE} {
		c.FillRect(box, fill)
		c.StrokeRect(box, 2, border)
	}
}

func render(cfg renderConfig) error {
	arrows := buildArrows(cfg.style, quiver.NewKeySource())

	c := raster.New(cfg.width, cfg.height, raster.WithBackground(color.White))
	drawNodes(c)
	for _, a := range arrows {
		if err := a.Draw(c); err != nil {
			return fmt.Errorf("draw arrow %d: %w", a.Key(), err)
		}
	}
	if err := c.SavePNG(cfg.pngPath); err != nil {
		return err
	}
	cfg.log.Info("rendered", "arrows", len(arrows), "output", cfg.pngPath)

	if cfg.pdfPath != "" {
		if err := renderPDF(cfg, arrows); err != nil {
			return err
		}
		cfg.log.Info("rendered", "arrows", len(arrows), "output", cfg.pdfPath)
	}
	return nil
}

func renderPDF(cfg renderConfig, arrows []*quiver.Arrow) error {
	c := pdf.New(float64(cfg.width), float64(cfg.height))
	for _, a := range arrows {
		if err := a.Draw(c); err != nil {
			return fmt.Errorf("draw arrow %d: %w", a.Key(), err)
		}
	}
	return c.WriteFile(cfg.pdfPath)
}

// watchTheme blocks, re-rendering on every change to the theme file.
// It watches the parent directory so editors that replace the file
// keep being seen.
func watchTheme(path string, cfg renderConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch theme: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	cfg.log.Info("watching theme", "path", path)

	target := filepath.Clean(path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			style, err := loadStyle(path)
			if err != nil {
				cfg.log.Warn("theme reload failed", "err", err)
				continue
			}
			cfg.style = style
			if err := render(cfg); err != nil {
				cfg.log.Error("render failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.log.Warn("watch error", "err", err)
		}
	}
}
