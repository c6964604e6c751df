package appstate

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/example/scribble/internal/asset"
	"github.com/example/scribble/internal/page"
)

var errNoBackground = errors.New("page has no background")

// pageLoadedEvent is sent to the window once a page file is parsed.
type pageLoadedEvent struct {
	seq  uint64
	ref  string
	page *page.Page
	err  error
}

// imageLoadedEvent follows pageLoadedEvent with the decoded background.
type imageLoadedEvent struct {
	seq uint64
	ref string
	img image.Image
	err error
}

// pageLoader fetches pages off the event goroutine and posts the results
// back with send. Starting a load cancels the previous one, and events
// from superseded loads are recognised by their sequence number.
type pageLoader struct {
	send func(any)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func newPageLoader(send func(any)) *pageLoader {
	return &pageLoader{send: send}
}

// load starts fetching ref and returns the sequence number of its events.
func (l *pageLoader) load(ref string) uint64 {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.mu.Unlock()

	go func() {
		p, err := page.Load(ctx, ref)
		if err != nil {
			l.send(pageLoadedEvent{seq: seq, ref: ref, err: err})
			return
		}
		l.send(pageLoadedEvent{seq: seq, ref: p.Ref, page: p})
		if p.Background == "" {
			l.send(imageLoadedEvent{seq: seq, ref: p.Ref, err: errNoBackground})
			return
		}
		img, err := asset.Load(ctx, p.Background)
		l.send(imageLoadedEvent{seq: seq, ref: p.Background, img: img, err: err})
	}()
	return seq
}

// current reports whether seq belongs to the latest load.
func (l *pageLoader) current(seq uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return seq == l.seq
}

func (l *pageLoader) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
