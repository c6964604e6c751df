package appstate

import (
	"context"
	"image"
	"image/draw"
	"log"
	"log/slog"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/paint"

	"github.com/example/scribble/internal/clipboard"
	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/display"
	"github.com/example/scribble/internal/notify"
	"github.com/example/scribble/internal/platform"
	"github.com/example/scribble/internal/theme"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// Initial window size in CSS pixels.
const (
	defaultWidth  = 960
	defaultHeight = 720
)

// AppState holds application configuration for the UI.
type AppState struct {
	Config  *config.Config
	Theme   *theme.Theme
	Page    string
	Width   int
	Height  int
	Verbose bool

	notifier *notify.Notifier
	onClose  func()

	closeOnce sync.Once

	// Desktop integration, replaced in tests.
	openURI   func(string) error
	copyText  func(string) error
	copyImage func(image.Image) error
	probe     func() (float64, error)
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithConfig sets the configuration. The page, colour and palette come
// from it unless overridden.
func WithConfig(cfg *config.Config) Option { return func(a *AppState) { a.Config = cfg } }

// WithTheme sets the colours of the chrome and the hotspot buttons.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithPage sets the page opened at start and by the Home button.
func WithPage(ref string) Option { return func(a *AppState) { a.Page = ref } }

// WithSize sets the initial window size in CSS pixels.
func WithSize(w, h int) Option {
	return func(a *AppState) {
		a.Width = w
		a.Height = h
	}
}

// WithVerbose enables debug logging.
func WithVerbose(v bool) Option { return func(a *AppState) { a.Verbose = v } }

// WithNotifier sets the desktop notifier.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Width:     defaultWidth,
		Height:    defaultHeight,
		openURI:   platform.OpenURI,
		copyText:  clipboard.WriteText,
		copyImage: clipboard.WriteImage,
		probe:     display.Density,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Config == nil {
		a.Config = config.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Page == "" {
		a.Page = a.Config.Page
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() {
	if a.Verbose {
		gg.SetLogger(slog.Default())
	}
	driver.Main(a.Main)
}

// paintState is one composed frame waiting to be uploaded.
type paintState struct {
	frame *image.RGBA
}

func (a *AppState) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: a.Width, Height: a.Height, Title: platform.AppName})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()
	defer a.notifyClose()

	sess, err := newSession(a, w.Send)
	if err != nil {
		log.Printf("start: %v", err)
		return
	}
	defer sess.close()

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	stopPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	sess.start()

	for {
		e := w.NextEvent()
		if _, ok := e.(paint.Event); ok {
			frame := sess.compose()
			if frame == nil {
				continue
			}
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			st := paintState{frame: frame}
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
			continue
		}
		if sess.handle(e) {
			stopPaint()
			return
		}
	}
}

// drawFrame uploads a composed frame. The paint goroutine owns nothing but
// the frame it was handed.
func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	size := st.frame.Bounds().Size()
	b, err := s.NewBuffer(size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	draw.Draw(b.RGBA(), b.Bounds(), st.frame, st.frame.Bounds().Min, draw.Src)
	if ctx.Err() != nil {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
