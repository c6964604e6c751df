// Package notify sends desktop notifications for navigation, load failures
// and clipboard copies.
package notify

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/example/scribble/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventNavigate fires when a hotspot opens an external URI.
	EventNavigate Event = "navigate"
	// EventLoadFailure fires when a page or background cannot be loaded.
	EventLoadFailure Event = "load_failure"
	// EventCopy fires when a hotspot target is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Events: map[Event]EventPreference{
			EventNavigate:    {Template: "Opening %s"},
			EventLoadFailure: {Template: "Could not load %s"},
			EventCopy:        {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SCRIBBLE_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("SCRIBBLE_NOTIFY_NAVIGATE_TEXT", EventNavigate)
	apply("SCRIBBLE_NOTIFY_LOAD_FAILURE_TEXT", EventLoadFailure)
	apply("SCRIBBLE_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// send is platform.Notify, replaced in tests.
var send = platform.Notify

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Navigate reports an external URI being opened.
func (n *Notifier) Navigate(target string) {
	n.dispatch(EventNavigate, target, platform.Options{})
}

// LoadFailure reports a page or background that could not be loaded.
func (n *Notifier) LoadFailure(ref string, err error) {
	detail := strings.TrimSpace(ref)
	if err != nil {
		detail = fmt.Sprintf("%s: %v", detail, err)
	}
	n.dispatch(EventLoadFailure, detail, platform.Options{Urgent: true})
}

// Copy sends a clipboard notification.
func (n *Notifier) Copy(detail string) {
	if strings.TrimSpace(detail) == "" {
		detail = "link"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}
