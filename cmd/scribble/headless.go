package main

import (
	"context"
	"fmt"
	"time"

	"github.com/example/scribble/internal/appstate"
	"github.com/example/scribble/internal/asset"
	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/hotspot"
	"github.com/example/scribble/internal/page"
	"github.com/example/scribble/internal/surface"
	"github.com/example/scribble/internal/theme"
)

// loadTimeout bounds page and background fetches of the headless commands.
const loadTimeout = 30 * time.Second

// viewport is a headless window size.
type viewport struct {
	width   float64
	height  float64
	density float64
}

// recorder is the Navigator of headless controllers. Nothing is opened.
type recorder struct {
	targets []string
}

func (r *recorder) Navigate(target string) error {
	r.targets = append(r.targets, target)
	return nil
}

// headless is a controller with a loaded page and no window.
type headless struct {
	page *page.Page
	ctrl *appstate.Controller
	nav  *recorder
}

// openHeadless loads ref and its background and lays it out in vp.
func openHeadless(ref string, cfg *config.Config, t *theme.Theme, vp viewport, verbose bool) (*headless, error) {
	if ref == "" {
		ref = cfg.Page
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	p, err := page.Load(ctx, page.Normalize(ref))
	if err != nil {
		return nil, err
	}
	if p.Background == "" {
		return nil, fmt.Errorf("%s: page has no background", p.Ref)
	}
	img, err := asset.Load(ctx, p.Background)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Ref, err)
	}

	kind := p.Kind(appstate.DefaultKind(cfg))
	h := &headless{page: p, nav: &recorder{}}
	h.ctrl = appstate.NewController(appstate.ControllerConfig{
		Color:     cfg.Color,
		LineWidth: appstate.LineWidthFor(p, cfg, kind),
		Letterbox: t.Background,
		Specs:     p.Specs,
		Strategy:  hotspot.StrategyFor(kind),
		Navigator: h.nav,
		Buttons:   appstate.ButtonStyleFromTheme(t, cfg.Shadow),
		LabelFace: appstate.LabelFace,
		Verbose:   verbose,
	})
	h.ctrl.Resize(surface.ComputeSize(vp.width, vp.height, vp.density))
	h.ctrl.ImageLoaded(img)
	return h, nil
}

func (h *headless) Close() error {
	return h.ctrl.Close()
}
