package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/example/scribble/internal/hotspot"
	"github.com/example/scribble/internal/surface"
)

type layoutCmd struct {
	*root
	fs       *flag.FlagSet
	vp       viewport
	asJSON   bool
	hotspots string
	page     string
}

func (l *layoutCmd) FlagSet() *flag.FlagSet {
	return l.fs
}

func newLayoutCmd(r *root) *layoutCmd {
	fs := newFlagSet("layout")
	c := &layoutCmd{root: r.subcommand("layout"), fs: fs}
	fs.Float64Var(&c.vp.width, "width", 800, "viewport width in CSS pixels")
	fs.Float64Var(&c.vp.height, "height", 600, "viewport height in CSS pixels")
	fs.Float64Var(&c.vp.density, "density", 1, "device pixel ratio")
	fs.BoolVar(&c.asJSON, "json", false, "print JSON instead of a table")
	fs.StringVar(&c.hotspots, "hotspots", "", "hotspot variant for pages that do not set one (overlay, region)")
	return c
}

func parseLayoutCmd(args []string, r *root) (*layoutCmd, error) {
	c := newLayoutCmd(r)
	if err := parseFlags(c, args); err != nil {
		return nil, err
	}
	if c.fs.NArg() > 1 {
		return nil, usageErrorf(c, "layout takes at most one page")
	}
	c.page = c.fs.Arg(0)
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

type layoutReport struct {
	Page     string          `json:"page"`
	Variant  hotspot.Kind    `json:"variant"`
	Surface  surface.Size    `json:"surface"`
	Image    [2]int          `json:"image"`
	Fit      surface.FitRect `json:"fit"`
	Hotspots []hotspot.Rect  `json:"hotspots"`
}

func (l *layoutCmd) Run() error {
	h, err := openHeadless(l.page, l.config, l.activeTheme, l.vp, l.verbose)
	if err != nil {
		return err
	}
	defer h.Close()

	g := h.ctrl.Geometry()
	rep := layoutReport{
		Page:     h.page.Ref,
		Variant:  h.ctrl.Strategy().Kind(),
		Surface:  g.Size,
		Image:    [2]int{g.Image.X, g.Image.Y},
		Fit:      g.Fit,
		Hotspots: h.ctrl.Rects(),
	}
	if l.asJSON {
		enc := json.NewEncoder(l.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(l.stdout, "page     %s (%s)\n", rep.Page, rep.Variant)
	fmt.Fprintf(l.stdout, "surface  %dx%d px, %gx%g css at %g\n", g.Size.PixelWidth, g.Size.PixelHeight, g.Size.CSSWidth, g.Size.CSSHeight, g.Size.Scale)
	fmt.Fprintf(l.stdout, "image    %dx%d\n", g.Image.X, g.Image.Y)
	fmt.Fprintf(l.stdout, "fit      %g,%g %gx%g\n", g.Fit.OffsetX, g.Fit.OffsetY, g.Fit.Width, g.Fit.Height)
	if len(rep.Hotspots) == 0 {
		return nil
	}
	fmt.Fprintln(l.stdout)
	tw := tabwriter.NewWriter(l.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tX\tY\tWIDTH\tHEIGHT\tTARGET")
	for _, r := range rep.Hotspots {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n", r.ID, r.X, r.Y, r.Width, r.Height, r.Target)
	}
	return tw.Flush()
}
