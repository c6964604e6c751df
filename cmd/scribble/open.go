package main

import (
	"flag"

	"github.com/example/scribble/internal/appstate"
	"github.com/example/scribble/internal/hotspot"
)

type openCmd struct {
	*root
	fs       *flag.FlagSet
	width    int
	height   int
	hotspots string
	page     string
}

func (o *openCmd) FlagSet() *flag.FlagSet {
	return o.fs
}

func newOpenCmd(r *root) *openCmd {
	fs := newFlagSet("open")
	c := &openCmd{root: r.subcommand("open"), fs: fs}
	fs.IntVar(&c.width, "width", 960, "initial window width in CSS pixels")
	fs.IntVar(&c.height, "height", 720, "initial window height in CSS pixels")
	fs.StringVar(&c.hotspots, "hotspots", "", "hotspot variant for pages that do not set one (overlay, region)")
	return c
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	c := newOpenCmd(r)
	if err := parseFlags(c, args); err != nil {
		return nil, err
	}
	if c.fs.NArg() > 1 {
		return nil, usageErrorf(c, "open takes at most one page")
	}
	c.page = c.fs.Arg(0)
	if c.width <= 0 || c.height <= 0 {
		return nil, usageErrorf(c, "window size must be positive")
	}
	if c.hotspots != "" {
		if _, err := hotspot.ParseKind(c.hotspots); err != nil {
			return nil, usageErrorf(c, "%v", err)
		}
		c.config.Hotspots = c.hotspots
	}
	return c, nil
}

func (o *openCmd) Run() error {
	opts := []appstate.Option{appstate.WithSize(o.width, o.height)}
	if o.page != "" {
		opts = append(opts, appstate.WithPage(o.page))
	}
	o.state(opts...).Run()
	return nil
}
