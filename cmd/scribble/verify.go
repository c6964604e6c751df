package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/example/scribble/internal/strokes"
	"github.com/example/scribble/internal/surface"
)

type verifyCmd struct {
	*root
	fs     *flag.FlagSet
	script string
	output string
	page   string
}

func (v *verifyCmd) FlagSet() *flag.FlagSet {
	return v.fs
}

func newVerifyCmd(r *root) *verifyCmd {
	fs := newFlagSet("verify")
	c := &verifyCmd{root: r.subcommand("verify"), fs: fs}
	fs.StringVar(&c.script, "script", "", "input script (JSON)")
	fs.StringVar(&c.output, "output", "", "output PNG file")
	return c
}

func parseVerifyCmd(args []string, r *root) (*verifyCmd, error) {
	c := newVerifyCmd(r)
	if err := parseFlags(c, args); err != nil {
		return nil, err
	}
	if c.fs.NArg() > 1 {
		return nil, usageErrorf(c, "verify takes at most one page")
	}
	c.page = c.fs.Arg(0)
	if c.script == "" || c.output == "" {
		return nil, usageErrorf(c, "-script and -output are required")
	}
	return c, nil
}

// Script drives a headless window. Coordinates are CSS pixels.
type Script struct {
	Page    string  `json:"page"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Density float64 `json:"density"`
	Steps   []Step  `json:"steps"`
}

// Step is one input event. Op is one of down, move, up, leave, cancel,
// undo, color or resize.
type Step struct {
	Op     string  `json:"op"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

var errUnknownOp = errors.New("unknown op")

// Result summarises a replayed script.
type Result struct {
	Strokes    int      `json:"strokes"`
	Points     int      `json:"points"`
	Navigated  []string `json:"navigated"`
	FinalColor string   `json:"final_color"`
}

func loadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s := &Script{Width: 800, Height: 600, Density: 1}
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return s, nil
}

func (h *headless) replay(steps []Step, density float64) error {
	for i, st := range steps {
		p := strokes.Point{X: st.X, Y: st.Y}
		switch st.Op {
		case "down":
			h.ctrl.PointerDown(p)
		case "move":
			h.ctrl.PointerMove(p)
		case "up":
			h.ctrl.PointerUp(p)
		case "leave":
			h.ctrl.PointerLeave()
		case "cancel":
			h.ctrl.PointerCancel()
		case "undo":
			h.ctrl.Undo()
		case "color":
			if err := h.ctrl.SetColor(st.Color); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case "resize":
			h.ctrl.Resize(surface.ComputeSize(st.Width, st.Height, density))
		default:
			return fmt.Errorf("step %d: %w %q", i, errUnknownOp, st.Op)
		}
	}
	return nil
}

func (h *headless) result() Result {
	res := Result{Navigated: append([]string{}, h.nav.targets...), FinalColor: h.ctrl.Color()}
	for _, st := range h.ctrl.History() {
		res.Strokes++
		res.Points += len(st.Points)
	}
	return res
}

func (v *verifyCmd) Run() error {
	s, err := loadScript(v.script)
	if err != nil {
		return err
	}
	ref := v.page
	if ref == "" {
		ref = s.Page
	}
	h, err := openHeadless(ref, v.config, v.activeTheme, viewport{width: s.Width, height: s.Height, density: s.Density}, v.verbose)
	if err != nil {
		return err
	}
	defer h.Close()

	if err := h.replay(s.Steps, s.Density); err != nil {
		return err
	}
	if err := writePNG(v.output, h.ctrl.Frame()); err != nil {
		return err
	}
	enc := json.NewEncoder(v.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(h.result())
}
