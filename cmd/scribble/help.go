package main

import (
	"bytes"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
	// msg, when set, is printed above the usage text.
	msg string
}

func usageErrorf(of HelpData, format string, args ...any) *UsageError {
	return &UsageError{of: of, msg: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	if e.msg != "" {
		return e.msg + "\n\n" + help
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of)
	if err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags parses args into the command's flag set. Failures come back
// as a UsageError carrying the command's help.
func parseFlags(of HelpData, args []string) error {
	err := of.FlagSet().Parse(args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, flag.ErrHelp):
		return &UsageError{of: of}
	default:
		return usageErrorf(of, "%v", err)
	}
}

type helpCmd struct {
	*root
	topic HelpData
}

func parseHelpCmd(args []string, r *root) (*helpCmd, error) {
	c := &helpCmd{root: r, topic: r}
	if len(args) == 0 {
		return c, nil
	}
	topics := map[string]func() HelpData{
		"open":    func() HelpData { return newOpenCmd(r) },
		"layout":  func() HelpData { return newLayoutCmd(r) },
		"preview": func() HelpData { return newPreviewCmd(r) },
		"verify":  func() HelpData { return newVerifyCmd(r) },
		"colors":  func() HelpData { return newColorsCmd(r) },
		"config":  func() HelpData { return newConfigCmd(r) },
		"version": func() HelpData { return &versionCmd{r: r} },
	}
	build, ok := topics[args[0]]
	if !ok {
		return nil, usageErrorf(r, "unknown help topic %q", args[0])
	}
	c.topic = build()
	return c, nil
}

func (h *helpCmd) Run() error {
	text, err := (&UsageError{of: h.topic}).renderHelp()
	if err != nil {
		return err
	}
	fmt.Fprint(h.stdout, text)
	return nil
}

func (r *root) Template() string {
	return "root.txt"
}

func (o *openCmd) Template() string {
	return "open.txt"
}

func (l *layoutCmd) Template() string {
	return "layout.txt"
}

func (p *previewCmd) Template() string {
	return "preview.txt"
}

func (v *verifyCmd) Template() string {
	return "verify.txt"
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}

func (v *versionCmd) Template() string {
	return "version.txt"
}
