package main

import (
	"flag"
	"fmt"

	"github.com/example/scribble/internal/appstate"
	"github.com/example/scribble/internal/render"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func newColorsCmd(r *root) *colorsCmd {
	fs := newFlagSet("colors")
	cmd := &colorsCmd{root: r.subcommand("colors"), fs: fs}
	return cmd
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	cmd := newColorsCmd(r)
	if err := parseFlags(cmd, args); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	pal, err := appstate.NewPalette(c.config.Palette)
	if err != nil {
		return err
	}
	if pal.Len() == 0 {
		fmt.Fprintln(c.stdout, "no colors available")
		return nil
	}
	current := pal.Index(c.config.Color)
	fmt.Fprintln(c.stdout, "available colors (* marks the starting color):")
	for i, pc := range pal.Colors() {
		marker := " "
		if i == current {
			marker = "*"
		}
		key := " "
		if i < 9 {
			key = fmt.Sprint(i + 1)
		}
		fmt.Fprintf(c.stdout, "%s %s  %-8s %s\n", marker, key, pc.Name, render.Hex(pc.Color))
	}
	return nil
}
