package appstate

import (
	"fmt"
	"image"
	"log"
	"time"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/hotspot"
	"github.com/example/scribble/internal/navigate"
	"github.com/example/scribble/internal/page"
	"github.com/example/scribble/internal/render"
	"github.com/example/scribble/internal/strokes"
	"github.com/example/scribble/internal/surface"
	"github.com/example/scribble/internal/theme"
)

// ButtonStyleFromTheme returns the hotspot button colours of t.
func ButtonStyleFromTheme(t *theme.Theme, shadow bool) render.ButtonStyle {
	return render.ButtonStyle{
		Fill:    t.HotspotFill,
		Pressed: t.HotspotPressed,
		Border:  t.HotspotBorder,
		Text:    t.HotspotText,
		Shadow:  shadow,
	}
}

// DefaultKind returns the hotspot variant configured in cfg.
func DefaultKind(cfg *config.Config) hotspot.Kind {
	k, err := hotspot.ParseKind(cfg.Hotspots)
	if err != nil {
		return hotspot.KindOverlay
	}
	return k
}

// LineWidthFor picks the stroke width for a page: the page's own setting,
// then the config, then the variant default. Image maps draw hairlines.
func LineWidthFor(p *page.Page, cfg *config.Config, kind hotspot.Kind) float64 {
	if p != nil && p.LineWidth > 0 {
		return p.LineWidth
	}
	if cfg != nil && cfg.LineWidth > 0 {
		return cfg.LineWidth
	}
	if kind == hotspot.KindRegion {
		return 1
	}
	return render.DefaultLineWidth
}

// session is the event loop state of one window. Every method runs on the
// window's event goroutine except send, which may be called from anywhere.
type session struct {
	app    *AppState
	ctrl   *Controller
	pal    *Palette
	style  *chromeStyle
	bar    *toolbar
	router *navigate.Router
	loader *pageLoader
	send   func(any)
	now    func() time.Time

	kind    hotspot.Kind
	current string
	themes  []string
	themeAt int

	width, height int
	scale         float64
	probed        float64

	msg       banner
	mouseDown bool
	barPress  int
	touching  bool
	touchSeq  touch.Sequence

	actions        map[string]func()
	keyboardAction map[KeyShortcut]string
}

func newSession(a *AppState, send func(any)) (*session, error) {
	cfg := a.Config
	pal, err := NewPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	selected, err := pal.Ensure(cfg.Color, "")
	if err != nil {
		return nil, fmt.Errorf("initial color: %w", err)
	}
	s := &session{
		app:      a,
		pal:      pal,
		style:    styleFromTheme(a.Theme),
		send:     send,
		now:      time.Now,
		kind:     DefaultKind(cfg),
		scale:    1,
		barPress: -1,
		themes:   theme.Names(),
	}
	s.router = &navigate.Router{
		OpenPage: s.open,
		OpenURI:  a.openURI,
		OnExternal: func(uri string) {
			s.message("opening " + uri)
			a.notifier.Navigate(uri)
		},
	}
	s.ctrl = NewController(ControllerConfig{
		Color:     pal.At(selected).Token,
		Letterbox: a.Theme.Background,
		Strategy:  hotspot.StrategyFor(s.kind),
		Navigator: s.router,
		Buttons:   ButtonStyleFromTheme(a.Theme, cfg.Shadow),
		LabelFace: LabelFace,
		Verbose:   a.Verbose,
	})
	s.bar = newToolbar(s.style, []toolAction{
		{label: "Undo", fn: func() { s.trigger("undo") }},
		{label: "Copy", fn: func() { s.trigger("copy") }},
		{label: "Home", fn: func() { s.trigger("home") }},
	}, pal, s.selectSwatch)
	s.bar.selected = selected
	s.loader = newPageLoader(send)
	s.registerActions()
	return s, nil
}

func (s *session) registerActions() {
	s.actions = map[string]func(){}
	s.keyboardAction = map[KeyShortcut]string{}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		s.actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				s.keyboardAction[sc] = name
			}
		}
	}

	register("undo", shortcutList{{Rune: 'z', Modifiers: key.ModControl}, {Rune: 'u'}}, func() {
		if !s.ctrl.Undo() {
			s.message("nothing to undo")
		}
	})
	register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		if err := s.app.copyImage(s.ctrl.Frame()); err != nil {
			log.Printf("copy: %v", err)
			s.message("copy failed")
			return
		}
		s.message("image copied to clipboard")
	})
	register("home", shortcutList{{Code: key.CodeHome}, {Rune: 'h'}}, func() {
		s.open(s.app.Page)
	})
	register("reload", shortcutList{{Rune: 'r', Modifiers: key.ModControl}}, func() {
		if s.current != "" {
			s.open(s.current)
		}
	})
	register("toolbar", shortcutList{{Code: key.CodeTab}}, func() {
		s.bar.hidden = !s.bar.hidden
	})
	register("theme", shortcutList{{Rune: 't'}}, s.nextTheme)
	for i := 0; i < s.pal.Len() && i < 9; i++ {
		idx := i
		register(fmt.Sprintf("swatch%d", i+1), shortcutList{{Rune: rune('1' + i)}}, func() { s.selectSwatch(idx) })
	}
}

// start opens the configured page.
func (s *session) start() {
	s.open(s.app.Page)
}

func (s *session) close() {
	s.loader.stop()
	if err := s.ctrl.Close(); err != nil {
		log.Printf("close surface: %v", err)
	}
}

// open starts loading a page. The result arrives as pageLoadedEvent.
func (s *session) open(ref string) {
	ref = page.Normalize(ref)
	if ref == "" {
		ref = config.DefaultPage
	}
	if s.app.Verbose {
		log.Printf("open page %s", ref)
	}
	s.loader.load(ref)
}

func (s *session) trigger(action string) {
	if fn, ok := s.actions[action]; ok {
		fn()
	}
	s.requestPaint()
}

func (s *session) requestPaint() {
	s.send(paint.Event{})
}

func (s *session) message(text string) {
	s.msg.set(text, s.now())
	log.Print(text)
	time.AfterFunc(messageDuration, s.requestPaint)
}

func (s *session) selectSwatch(idx int) {
	if idx < 0 || idx >= s.pal.Len() {
		return
	}
	pc := s.pal.At(idx)
	if err := s.ctrl.SetColor(pc.Token); err != nil {
		log.Printf("select swatch %s: %v", pc.Name, err)
		return
	}
	s.bar.selected = idx
}

func (s *session) nextTheme() {
	if len(s.themes) == 0 {
		return
	}
	s.themeAt = (s.themeAt + 1) % len(s.themes)
	name := s.themes[s.themeAt]
	t, err := s.app.Config.ResolveTheme(nil, name)
	if err != nil {
		log.Printf("theme %s: %v", name, err)
		return
	}
	s.app.Theme = t
	s.bar.restyle(styleFromTheme(t))
	s.ctrl.SetStyle(t.Background, ButtonStyleFromTheme(t, s.app.Config.Shadow))
	s.message("theme " + name)
}

// handle processes one window event other than paint. It reports true when
// the window should close.
func (s *session) handle(e any) bool {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			return true
		}
		if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
			s.mouseDown = false
			s.touching = false
			s.ctrl.PointerCancel()
		}
	case size.Event:
		s.resize(e)
	case mouse.Event:
		s.mouse(e)
	case touch.Event:
		s.touch(e)
	case key.Event:
		return s.key(e)
	case pageLoadedEvent:
		s.pageLoaded(e)
	case imageLoadedEvent:
		s.imageLoaded(e)
	case error:
		log.Printf("window: %v", e)
	}
	if s.ctrl.Dirty() {
		s.requestPaint()
	}
	return false
}

func (s *session) density(e size.Event) float64 {
	if d := s.app.Config.Density; d > 0 {
		return d
	}
	if e.PixelsPerPt > 0 {
		return surface.DensityFromPixelsPerPt(e.PixelsPerPt)
	}
	if s.probed == 0 {
		d, err := s.app.probe()
		if err != nil {
			if s.app.Verbose {
				log.Printf("density probe: %v", err)
			}
			d = 1
		}
		s.probed = d
	}
	return s.probed
}

func (s *session) resize(e size.Event) {
	s.width, s.height = e.WidthPx, e.HeightPx
	s.scale = s.density(e)
	s.bar.layout(s.scale)
	s.ctrl.Resize(surface.FromPixels(e.WidthPx, e.HeightPx, s.scale))
	s.requestPaint()
}

func (s *session) cssPoint(x, y float32) strokes.Point {
	return strokes.Point{X: float64(x) / s.scale, Y: float64(y) / s.scale}
}

func (s *session) inWindow(x, y float32) bool {
	return x >= 0 && y >= 0 && int(x) < s.width && int(y) < s.height
}

func (s *session) mouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	if e.Direction == mouse.DirPress && s.msg.active(s.now()) {
		s.msg.dismiss()
		s.requestPaint()
	}

	if !s.mouseDown && (s.barPress >= 0 || s.bar.contains(p)) {
		s.toolbarMouse(e, p)
		return
	}
	if s.bar.hover >= 0 {
		s.bar.hover = -1
		s.requestPaint()
	}

	if e.Direction == mouse.DirNone {
		if !s.mouseDown {
			return
		}
		if !s.inWindow(e.X, e.Y) {
			s.mouseDown = false
			s.ctrl.PointerLeave()
			return
		}
		s.ctrl.PointerMove(s.cssPoint(e.X, e.Y))
		return
	}
	switch e.Button {
	case mouse.ButtonLeft:
		switch e.Direction {
		case mouse.DirPress:
			s.mouseDown = true
			s.ctrl.PointerDown(s.cssPoint(e.X, e.Y))
		case mouse.DirRelease:
			s.mouseDown = false
			s.ctrl.PointerUp(s.cssPoint(e.X, e.Y))
		}
	case mouse.ButtonRight:
		if e.Direction == mouse.DirPress {
			s.copyTarget(s.cssPoint(e.X, e.Y))
		}
	}
}

func (s *session) toolbarMouse(e mouse.Event, p image.Point) {
	idx := s.bar.hit(p)
	if e.Button == mouse.ButtonLeft {
		switch e.Direction {
		case mouse.DirPress:
			s.barPress = idx
		case mouse.DirRelease:
			pressed := s.barPress
			s.barPress = -1
			if pressed >= 0 && pressed == idx {
				s.bar.buttons[idx].Activate()
			}
		}
	}
	if idx != s.bar.hover {
		s.bar.hover = idx
	}
	s.requestPaint()
}

func (s *session) touch(e touch.Event) {
	switch e.Type {
	case touch.TypeBegin:
		if s.touching {
			return
		}
		p := image.Pt(int(e.X), int(e.Y))
		if s.bar.contains(p) {
			if idx := s.bar.hit(p); idx >= 0 {
				s.bar.buttons[idx].Activate()
				s.requestPaint()
			}
			return
		}
		s.touching = true
		s.touchSeq = e.Sequence
		s.ctrl.PointerDown(s.cssPoint(e.X, e.Y))
	case touch.TypeMove:
		if s.touching && e.Sequence == s.touchSeq {
			s.ctrl.PointerMove(s.cssPoint(e.X, e.Y))
		}
	case touch.TypeEnd:
		if s.touching && e.Sequence == s.touchSeq {
			s.touching = false
			s.ctrl.PointerUp(s.cssPoint(e.X, e.Y))
		}
	}
}

// lookupShortcut matches rune shortcuts without Shift and code shortcuts
// as pressed.
func (s *session) lookupShortcut(e key.Event) (string, bool) {
	mods := e.Modifiers
	if e.Rune > 0 {
		r := unicode.ToLower(e.Rune)
		if e.Modifiers&key.ModControl != 0 && r < ' ' {
			r += 'a' - 1
		}
		if action, ok := s.keyboardAction[KeyShortcut{Rune: r, Modifiers: mods &^ key.ModShift}]; ok {
			return action, true
		}
	}
	action, ok := s.keyboardAction[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return action, ok
}

func (s *session) key(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	if e.Code == key.CodeEscape || (e.Modifiers == 0 && (e.Rune == 'q' || e.Rune == 'Q')) {
		return true
	}
	if action, ok := s.lookupShortcut(e); ok {
		s.trigger(action)
	}
	return false
}

func (s *session) copyTarget(p strokes.Point) {
	target, ok := s.ctrl.TargetAt(p.X, p.Y)
	if !ok {
		return
	}
	if err := s.app.copyText(target); err != nil {
		log.Printf("copy target: %v", err)
		s.message("copy failed")
		return
	}
	s.message("copied " + target)
	s.app.notifier.Copy(target)
}

func (s *session) pageLoaded(e pageLoadedEvent) {
	if !s.loader.current(e.seq) {
		return
	}
	if e.err != nil {
		s.loadFailed(e.ref, e.err)
		return
	}
	kind := e.page.Kind(s.kind)
	s.ctrl.LoadPage(e.page.Specs, hotspot.StrategyFor(kind), LineWidthFor(e.page, s.app.Config, kind))
	s.current = e.page.Ref
	if s.app.Verbose {
		log.Printf("page %s: %d hotspots, %s variant", e.page.Ref, len(e.page.Specs), kind)
	}
}

func (s *session) imageLoaded(e imageLoadedEvent) {
	if !s.loader.current(e.seq) {
		return
	}
	if e.err != nil {
		s.loadFailed(e.ref, e.err)
		return
	}
	s.ctrl.ImageLoaded(e.img)
}

func (s *session) loadFailed(ref string, err error) {
	s.ctrl.ImageFailed(fmt.Errorf("%s: %w", ref, err))
	s.message("could not load " + ref)
	s.app.notifier.LoadFailure(ref, err)
}

// compose returns the frame to show: the surface with its hotspots, then
// the toolbar and any message on top.
func (s *session) compose() *image.RGBA {
	frame := s.ctrl.Frame()
	if frame.Bounds().Empty() {
		return nil
	}
	s.bar.draw(frame)
	if s.msg.active(s.now()) {
		drawMessage(frame, s.msg.text, faceAt(messageTextSize, s.scale), s.style, s.scale)
	}
	return frame
}
