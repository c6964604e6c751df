package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/scribble/internal/config"
)

type configCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func newConfigCmd(r *root) *configCmd {
	fs := newFlagSet("config")
	c := &configCmd{root: r.subcommand("config"), fs: fs}
	return c
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	c := newConfigCmd(r)
	if err := parseFlags(c, args); err != nil {
		return nil, err
	}
	if c.fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	switch sub := c.fs.Arg(0); sub {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return usageErrorf(c, "unknown config command: %s", sub)
	}
}

func (c *configCmd) runPrint() error {
	fmt.Fprint(c.stdout, c.config.String())
	return nil
}

func (c *configCmd) runSave() error {
	path := config.NewLoader(version, c.configPath).SavePath()
	if err := c.config.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}
