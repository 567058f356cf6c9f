package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/nativekit"
	"github.com/wippyai/nativekit/cairo"
	"github.com/wippyai/nativekit/gio"
)

func main() {
	var (
		mounts      = flag.Bool("mounts", false, "List unix mount entries and exit")
		demo        = flag.String("demo", "", "Render a demo image to the given PNG path")
		verbose     = flag.Bool("v", false, "Log native library loading")
		cairoLib    = flag.String("cairo-lib", "", "Override the cairo library name")
		glibLib     = flag.String("glib-lib", "", "Override the glib library name")
		gobjectLib  = flag.String("gobject-lib", "", "Override the gobject library name")
		gioLib      = flag.String("gio-lib", "", "Override the gio library name")
		pangoLib    = flag.String("pango-lib", "", "Override the pango library name")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		nativekit.SetLogger(logger)
	}

	cfg := nativekit.Config{
		CairoLibrary:   *cairoLib,
		GLibLibrary:    *glibLib,
		GObjectLibrary: *gobjectLib,
		GioLibrary:     *gioLib,
		PangoLibrary:   *pangoLib,
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *mounts, *demo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg nativekit.Config, listMounts bool, demoPath string) error {
	if !listMounts && demoPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -mounts")
		fmt.Fprintln(os.Stderr, "       inspect -demo <out.png>")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		return nil
	}

	if listMounts {
		cfg.SkipCairo = true
		cfg.SkipPango = true
		if err := nativekit.Load(cfg); err != nil {
			return err
		}
		return printMounts()
	}

	cfg.SkipGio = true
	cfg.SkipPango = true
	if err := nativekit.Load(cfg); err != nil {
		return err
	}
	return renderDemo(demoPath)
}

func printMounts() error {
	entries, err := gio.UnixMounts()
	if err != nil {
		return err
	}
	fmt.Printf("Mount entries: %d\n\n", len(entries))
	for _, e := range entries {
		fmt.Printf("  %-24s %-24s %s\n", e.MountPath(), e.DevicePath(), e.FSType())
		e.Close()
	}
	return nil
}

// renderDemo draws a stroked diagonal with a caption, exercising the
// context, surface and pattern paths end to end.
func renderDemo(path string) error {
	surface, err := cairo.NewImageSurface(cairo.FormatARGB32, 320, 240)
	if err != nil {
		return err
	}
	defer surface.Close()

	cr, err := cairo.NewContext(surface)
	if err != nil {
		return err
	}
	defer cr.Close()

	cr.SetSourceRGB(1, 1, 1)
	if err := cr.Paint(); err != nil {
		return err
	}

	cr.SetSourceRGB(0.2, 0.4, 0.8)
	cr.SetLineWidth(3)
	cr.MoveTo(20, 20)
	cr.LineTo(300, 220)
	if err := cr.Stroke(); err != nil {
		return err
	}

	cr.SetSourceRGB(0.1, 0.1, 0.1)
	cr.SelectFontFace("sans-serif", cairo.FontSlantNormal, cairo.FontWeightBold)
	cr.SetFontSize(18)
	cr.MoveTo(20, 220)
	if err := cr.ShowText("nativekit"); err != nil {
		return err
	}

	if err := surface.WriteToPNG(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
