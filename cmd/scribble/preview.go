package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/example/scribble/internal/hotspot"
)

type previewCmd struct {
	*root
	fs       *flag.FlagSet
	vp       viewport
	output   string
	hotspots string
	page     string
}

func (p *previewCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func newPreviewCmd(r *root) *previewCmd {
	fs := newFlagSet("preview")
	c := &previewCmd{root: r.subcommand("preview"), fs: fs}
	fs.Float64Var(&c.vp.width, "width", 960, "viewport width in CSS pixels")
	fs.Float64Var(&c.vp.height, "height", 720, "viewport height in CSS pixels")
	fs.Float64Var(&c.vp.density, "density", 1, "device pixel ratio")
	fs.StringVar(&c.output, "output", "preview.png", "output PNG file")
	fs.StringVar(&c.hotspots, "hotspots", "", "hotspot variant for pages that do not set one (overlay, region)")
	return c
}

func parsePreviewCmd(args []string, r *root) (*previewCmd, error) {
	c := newPreviewCmd(r)
	if err := parseFlags(c, args); err != nil {
		return nil, err
	}
	if c.fs.NArg() > 1 {
		return nil, usageErrorf(c, "preview takes at most one page")
	}
	c.page = c.fs.Arg(0)
	if c.output == "" {
		return nil, usageErrorf(c, "output file is required")
	}
	if c.vp.width <= 0 || c.vp.height <= 0 {
		return nil, usageErrorf(c, "viewport size must be positive")
	}
	if c.hotspots != "" {
		if _, err := hotspot.ParseKind(c.hotspots); err != nil {
			return nil, usageErrorf(c, "%v", err)
		}
		c.config.Hotspots = c.hotspots
	}
	return c, nil
}

func (p *previewCmd) Run() error {
	h, err := openHeadless(p.page, p.config, p.activeTheme, p.vp, p.verbose)
	if err != nil {
		return err
	}
	defer h.Close()

	if err := writePNG(p.output, h.ctrl.Frame()); err != nil {
		return err
	}
	fmt.Fprintf(p.stdout, "wrote %s\n", p.output)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
