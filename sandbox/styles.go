package sandbox

import (
	_ "embed"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/npillmayer/querysandbox/style/css"
	"github.com/npillmayer/querysandbox/style/cssom"
	"github.com/npillmayer/querysandbox/style/cssom/douceuradapter"
	"github.com/npillmayer/querysandbox/widget"
)

// DefaultStylesheet is used if no stylesheet file is configured.
//
//go:embed default.css
var DefaultStylesheet string

// Styler holds the compiled stylesheet used to render playgrounds.
type Styler struct {
	path  string // empty for the default stylesheet
	cssom *cssom.CSSOM
}

// NewStyler creates a styler from a stylesheet file, or from the default
// stylesheet if path is empty. Rules with selectors which cannot be parsed
// are skipped and do not result in an error.
func NewStyler(path string) (*Styler, error) {
	s := &Styler{path: path, cssom: cssom.NewCSSOM(nil)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the path of the stylesheet file, or an empty string for the
// default stylesheet.
func (s *Styler) Path() string {
	return s.path
}

// Reload re-reads the stylesheet. If the stylesheet cannot be read or parsed,
// the rules in effect are kept.
func (s *Styler) Reload() error {
	var sheet *douceuradapter.CSSStyles
	var err error
	if s.path == "" {
		sheet, err = douceuradapter.Parse(DefaultStylesheet)
	} else {
		sheet, err = douceuradapter.ParseFile(s.path)
	}
	if err != nil {
		return err
	}
	c := cssom.NewCSSOM(nil)
	if sheet.Empty() {
		tracer().Infof("stylesheet %q is empty", s.path)
		s.cssom = c
		return nil
	}
	skipped, err := c.AddStylesForScope(sheet)
	if skipped > 0 {
		tracer().Errorf("%d style rules skipped: %v", skipped, err)
	}
	s.cssom = c
	tracer().Debugf("stylesheet loaded with %d rules", c.RuleCount())
	return nil
}

// Style computes the styles of a widget tree.
func (s *Styler) Style(root *widget.Widget) (*css.Styles, error) {
	return s.cssom.Style(root)
}

// --- Watching the stylesheet file ------------------------------------------

// StylesheetChangedMsg is sent to the sandbox when the stylesheet file
// has been written to.
type StylesheetChangedMsg struct {
	Path string
}

// StylesheetWatchErrMsg is sent when the stylesheet watcher fails. The
// watcher stops after sending it.
type StylesheetWatchErrMsg struct {
	Err error
}

// WatchStylesheet watches a stylesheet file and sends a message to a
// program for every change. Editors often replace files instead of writing
// them, thus the directory of the file is watched. Clients should close
// the returned watcher when done.
func WatchStylesheet(path string, send func(tea.Msg)) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating stylesheet watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					send(StylesheetChangedMsg{Path: path})
				}
			case err, ok := <-watcher.Errors:
				if ok {
					send(StylesheetWatchErrMsg{Err: err})
				}
				return
			}
		}
	}()
	tracer().Infof("watching stylesheet %s", abs)
	return watcher, nil
}
