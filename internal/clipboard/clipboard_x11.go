//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	owner    *x11Owner
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		o, err := newX11Owner()
		if err != nil {
			initErr = fmt.Errorf("x11 clipboard: %w", err)
			return
		}
		owner = o
	})
	return initErr
}

// WriteImage encodes the provided image as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	return owner.publish(offer{image: buf.Bytes()})
}

// WriteText writes text data to the clipboard.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return owner.publish(offer{text: []byte(text)})
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	utf8      xproto.Atom
	textPlain xproto.Atom
	png       xproto.Atom
}

// offer is the data currently owned by this process. Only one of text or
// image is set.
type offer struct {
	text  []byte
	image []byte
}

// reply is what a selection request is answered with.
type reply struct {
	typ     xproto.Atom
	format  byte
	payload []byte
}

// length is the element count ChangeProperty expects for the format.
func (r reply) length() uint32 {
	return uint32(len(r.payload) / int(r.format/8))
}

// answer resolves a requested target against the offer. It reports false
// when the target cannot be served.
func (o offer) answer(atoms atomSet, target xproto.Atom) (reply, bool) {
	switch target {
	case atoms.targets:
		list := []xproto.Atom{atoms.targets}
		if len(o.text) > 0 {
			list = append(list, atoms.utf8, xproto.AtomString, atoms.textPlain)
		}
		if len(o.image) > 0 {
			list = append(list, atoms.png)
		}
		return reply{typ: xproto.AtomAtom, format: 32, payload: atomBytes(list)}, true
	case atoms.utf8, xproto.AtomString, atoms.textPlain:
		if len(o.text) == 0 {
			return reply{}, false
		}
		return reply{typ: atoms.utf8, format: 8, payload: o.text}, true
	case atoms.png:
		if len(o.image) == 0 {
			return reply{}, false
		}
		return reply{typ: atoms.png, format: 8, payload: o.image}, true
	}
	return reply{}, false
}

type x11Owner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atomSet

	mu      sync.RWMutex
	current offer
}

func newX11Owner() (*x11Owner, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	const mask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{mask}).Check(); err != nil {
		conn.Close()
		return nil, err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return nil, err
	}
	o := &x11Owner{conn: conn, window: window, atoms: atoms}
	go o.serve()
	return o, nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "image/png"}
	got := make([]xproto.Atom, len(names))
	for i, name := range names {
		r, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atomSet{}, fmt.Errorf("intern %s: %w", name, err)
		}
		got[i] = r.Atom
	}
	return atomSet{
		clipboard: got[0],
		targets:   got[1],
		utf8:      got[2],
		textPlain: got[3],
		png:       got[4],
	}, nil
}

func (o *x11Owner) publish(next offer) error {
	o.mu.Lock()
	o.current = offer{
		text:  append([]byte(nil), next.text...),
		image: append([]byte(nil), next.image...),
	}
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *x11Owner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.respond(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.current = offer{}
			o.mu.Unlock()
		}
	}
}

func (o *x11Owner) respond(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	o.mu.RLock()
	r, ok := o.current.answer(o.atoms, e.Target)
	o.mu.RUnlock()
	if ok {
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, r.typ, r.format, r.length(), r.payload)
	} else {
		property = xproto.AtomNone
	}
	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

func atomBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, a := range atoms {
		xgb.Put32(buf[i*4:], uint32(a))
	}
	return buf
}
