// Command maprender draws the plot outlines and numbers over the map and
// writes the result as a PNG, for checking annotations without the GUI.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/spf13/pflag"

	"github.com/bsmietanka/interactive-map/internal/app"
	"github.com/bsmietanka/interactive-map/internal/config"
	"github.com/bsmietanka/interactive-map/internal/logger"
	"github.com/bsmietanka/interactive-map/internal/render"
)

func main() {
	fs := pflag.NewFlagSet("maprender", pflag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	outPath := fs.String("out", "", "output PNG path (required)")
	highlight := fs.String("highlight", "", "plot number to highlight")
	full := fs.Bool("full", false, "draw on the full-resolution map instead of the display copy")
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if *outPath == "" {
		fmt.Println("Usage: maprender --out <file.png> [--highlight <numer>] [--full] [config flags]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	lggr, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger: %v\n", err)
		os.Exit(1)
	}

	snap, err := app.LoadSnapshot(cfg, lggr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load failed: %v\n", err)
		os.Exit(1)
	}
	scene := snap.Scene
	fmt.Printf("Loaded %s map: %dx%d pixels, %d plots, %d warnings\n",
		snap.Layer.Format, scene.Width, scene.Height, snap.Table.Len(), len(snap.Report.Warnings))

	overlay := render.Overlay{Outlines: true, Selected: -1, Hovered: -1}
	if *highlight != "" {
		row, ok := snap.Table.Lookup(*highlight)
		if !ok {
			fmt.Fprintf(os.Stderr, "No plot numbered %q\n", *highlight)
			os.Exit(1)
		}
		overlay.Selected = row
	}

	src := scene.Display
	if *full {
		src = scene.Image
	}
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	scene.DrawOverlay(out, float64(b.Dx())/float64(scene.Width), overlay)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Create output: %v\n", err)
		os.Exit(1)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Encode PNG: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Close output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", *outPath, b.Dx(), b.Dy())
}
