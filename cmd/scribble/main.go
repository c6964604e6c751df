package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/scribble/internal/appstate"
	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/notify"
	"github.com/example/scribble/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs      *flag.FlagSet
	program string
	stdout  io.Writer

	configPath  string
	themeName   string
	verbose     bool
	navAlerts   bool
	copyAlerts  bool
	loadAlerts  bool
	config      *config.Config
	notifier    *notify.Notifier
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	c := *r
	c.fs = nil
	c.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &c
}

func newRoot() *root {
	r := &root{
		fs:      newFlagSet("scribble"),
		program: "scribble",
		stdout:  os.Stdout,
	}
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "configuration file")
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (light, dark, high_contrast)")
	r.fs.BoolVar(&r.verbose, "v", false, "verbose logging")
	r.fs.BoolVar(&r.navAlerts, "notify-navigate", false, "show a desktop notification when a hotspot opens a link")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying a link")
	r.fs.BoolVar(&r.loadAlerts, "notify-load-failure", true, "show a desktop notification when a page fails to load")
	return r
}

// setup loads the configuration and theme once flags are parsed.
// Precedence: CLI > Env > Config > Default.
func (r *root) setup() {
	loader := config.NewLoader(version, r.configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	r.config = cfg

	set := map[string]bool{}
	r.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["notify-navigate"] {
		r.navAlerts = cfg.Notify.Navigate
	}
	if !set["notify-copy"] {
		r.copyAlerts = cfg.Notify.Copy
	}
	if !set["notify-load-failure"] {
		r.loadAlerts = cfg.Notify.LoadFailure
	}
	r.notifier = notify.New(notify.LoadPreferences())
	r.notifier.Enable(notify.EventNavigate, r.navAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.notifier.Enable(notify.EventLoadFailure, r.loadAlerts)

	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("SCRIBBLE_THEME")
	}
	t, err := cfg.ResolveTheme(nil, themeName)
	if err != nil {
		if themeName != "" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		}
		t = theme.Default()
	}
	r.activeTheme = t
}

// state builds the window state shared by the commands that open one.
func (r *root) state(opts ...appstate.Option) *appstate.AppState {
	base := []appstate.Option{
		appstate.WithConfig(r.config),
		appstate.WithTheme(r.activeTheme),
		appstate.WithNotifier(r.notifier),
		appstate.WithVerbose(r.verbose),
	}
	return appstate.New(append(base, opts...)...)
}

func (r *root) Run(args []string) error {
	if err := parseFlags(r, args); err != nil {
		return err
	}
	r.setup()

	cmdName := "open"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "open":
		cmd, err = parseOpenCmd(subArgs, r)
	case "layout":
		cmd, err = parseLayoutCmd(subArgs, r)
	case "preview":
		cmd, err = parsePreviewCmd(subArgs, r)
	case "verify":
		cmd, err = parseVerifyCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	case "help":
		cmd, err = parseHelpCmd(subArgs, r)
	default:
		if strings.HasSuffix(cmdName, ".page") || strings.Contains(cmdName, ":") {
			cmd, err = parseOpenCmd(r.fs.Args(), r)
		} else {
			err = &UsageError{of: r}
		}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	r := newRoot()
	if err := r.Run(args); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
