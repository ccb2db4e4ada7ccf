package widget

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoPlaygrounds is returned for definition files without playgrounds.
var ErrNoPlaygrounds = errors.New("no playgrounds defined")

// ErrDuplicatePlayground is returned if two playgrounds share a name.
var ErrDuplicatePlayground = errors.New("duplicate playground name")

// Definitions is the YAML representation of a set of playgrounds:
//
//    playgrounds:
//      - name: mine
//        children:
//          - type: Vertical
//            id: outer
//            classes: [foo, bar]
//            children:
//              - type: Static
//                text: Hello
type Definitions struct {
	Playgrounds []PlaygroundDef `yaml:"playgrounds"`
}

// PlaygroundDef defines a single playground.
type PlaygroundDef struct {
	Name     string    `yaml:"name"`
	Children []NodeDef `yaml:"children"`
}

// NodeDef defines a widget and its children. The kind of the widget is
// derived from its content: widgets with text are labeled leafs, widgets
// with children are containers, all others are leafs.
type NodeDef struct {
	Type      string    `yaml:"type"`
	ID        string    `yaml:"id,omitempty"`
	Classes   []string  `yaml:"classes,omitempty"`
	Title     string    `yaml:"title,omitempty"`
	Text      string    `yaml:"text,omitempty"`
	Container bool      `yaml:"container,omitempty"`
	Children  []NodeDef `yaml:"children,omitempty"`
}

// Load reads playground definitions from r and builds a screen holding
// all of them.
func Load(r io.Reader) (*Widget, error) {
	var defs Definitions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPlaygrounds
		}
		return nil, fmt.Errorf("decoding playground definitions: %w", err)
	}
	return defs.Build()
}

// LoadFile reads playground definitions from a YAML file.
func LoadFile(path string) (*Widget, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening playground definitions: %w", err)
	}
	defer f.Close()
	screen, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded %d playgrounds from %s", len(Playgrounds(screen)), path)
	return screen, nil
}

// Build creates a screen from definitions.
func (defs Definitions) Build() (*Widget, error) {
	if len(defs.Playgrounds) == 0 {
		return nil, ErrNoPlaygrounds
	}
	screen := NewScreen()
	names := make(map[string]bool)
	for i, pdef := range defs.Playgrounds {
		name := pdef.Name
		if name == "" {
			name = fmt.Sprintf("playground-%d", i+1)
		}
		if names[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayground, name)
		}
		names[name] = true
		pg := NewPlayground(name)
		for _, ndef := range pdef.Children {
			w, err := ndef.build()
			if err != nil {
				return nil, fmt.Errorf("playground %q: %w", name, err)
			}
			if err = pg.AddChild(w); err != nil {
				return nil, err
			}
		}
		if err := screen.AddChild(pg); err != nil {
			return nil, err
		}
	}
	return screen, nil
}

func (def NodeDef) build() (*Widget, error) {
	if def.Type == "" {
		return nil, ErrNoType
	}
	opts := []Option{ID(def.ID), Classes(def.Classes...), Title(def.Title)}
	var w *Widget
	switch {
	case def.Text != "":
		if len(def.Children) > 0 {
			return nil, fmt.Errorf("%s: %w", def.Type, ErrLeafHasNoChildren)
		}
		w = NewLabeledLeaf(def.Type, def.Text, opts...)
	case def.Container || len(def.Children) > 0:
		w = NewContainer(def.Type, opts...)
	default:
		w = NewLeaf(def.Type, opts...)
	}
	for _, chdef := range def.Children {
		ch, err := chdef.build()
		if err != nil {
			return nil, err
		}
		if err = w.AddChild(ch); err != nil {
			return nil, err
		}
	}
	return w, nil
}
