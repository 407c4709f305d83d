// SPDX-License-Identifier: Unlicense OR MIT

// Command hudterm runs a demo user interface in a terminal, or
// renders it to a PNG image with -o.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hudkit/hud/io/pointer"
	"github.com/hudkit/hud/ui"
	"github.com/hudkit/hud/widget"
)

var (
	fps        = flag.Int("fps", 20, "animation frames per second")
	cellAspect = flag.Float64("cell", 2, "height per width ratio of a terminal cell")
	logPath    = flag.String("log", "", "write debug logs to this file")
	destPath   = flag.String("o", "", "render a single frame to this PNG file instead of the terminal")
	size       = flag.String("size", "800x600", "image size for -o, in pixels")
)

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "hudterm: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *fps <= 0 {
		return fmt.Errorf("invalid -fps %d", *fps)
	}
	if *cellAspect <= 0 {
		return fmt.Errorf("invalid -cell %g", *cellAspect)
	}
	var logw io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		logw = f
	}
	logger := slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := newDemo(widget.NewTheme())
	if *destPath != "" {
		var w, h int
		if _, err := fmt.Sscanf(*size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("invalid -size %q", *size)
		}
		return snapshot(d, *destPath, w, h)
	}
	return run(d, logger)
}

// run drives the demo in the terminal until the user quits.
func run(d *demo, logger *slog.Logger) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()
	scr.EnableMouse()
	scr.EnableFocus()

	cols, rows := scr.Size()
	e := ui.New(d, viewport(cols, rows), ui.WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Wake the event loop to advance animations.
		ticker := time.NewTicker(time.Second / time.Duration(*fps))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				scr.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	})

	err = loop(scr, e, logger)
	cancel()
	return errors.Join(err, g.Wait())
}

func loop(scr tcell.Screen, e *ui.Engine, logger *slog.Logger) error {
	for {
		cols, rows := scr.Size()
		f := newFrame(cols, rows)
		f.draw(e.Draw())
		f.flush(scr)
		scr.Show()

		switch ev := scr.PollEvent().(type) {
		case nil:
			return errors.New("screen closed")
		case *tcell.EventResize:
			cols, rows := ev.Size()
			e.SetViewport(viewport(cols, rows))
			scr.Sync()
		case *tcell.EventMouse:
			x, y := ev.Position()
			down := ev.Buttons()&tcell.Button1 != 0
			e.SetCursor(pointer.At(cellCenter(x, y, cols, rows)), down)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
				logger.Debug("manual rebuild")
				e.Rebuild()
			}
		case *tcell.EventFocus:
			if !ev.Focused {
				e.SetCursor(pointer.Outside, false)
			}
		}
	}
}

// viewport returns the height per width ratio of a terminal.
func viewport(cols, rows int) float32 {
	if cols == 0 {
		return 1
	}
	return float32(rows) * float32(*cellAspect) / float32(cols)
}
