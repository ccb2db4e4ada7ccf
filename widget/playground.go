package widget

import "fmt"

// NewScreen creates the root of a widget tree, holding playgrounds.
func NewScreen(playgrounds ...*Widget) *Widget {
	return NewContainer(TypeScreen).With(playgrounds...)
}

// NewPlayground creates an empty playground with a name.
func NewPlayground(name string) *Widget {
	return NewContainer(TypePlayground, Name(name), Title(TypePlayground))
}

// Playgrounds returns the playgrounds of a screen, in order.
func Playgrounds(screen *Widget) []*Widget {
	if screen == nil {
		return nil
	}
	var pgs []*Widget
	for _, ch := range screen.Children() {
		if ch.Type() == TypePlayground {
			pgs = append(pgs, ch)
		}
	}
	return pgs
}

// DefaultScreen creates a screen with the built-in playgrounds
// "nesting", "lists" and "grid".
func DefaultScreen() *Widget {
	return NewScreen(Nesting(), Lists(), Grid())
}

// Nesting creates a playground with deeply nested containers:
//
//    Playground
//     └─ Vertical#one.foo.bar
//         └─ Vertical#two
//             ├─ Horizontal#three.baz
//             │   ├─ Vertical#three-0.wibble.wobble-0
//             │   ├─ Vertical#three-1.wibble.wobble-1
//             │   └─ Vertical#three-2.wibble.wobble-2
//             └─ Vertical#four
//                 └─ Vertical#innermost.foo.baz
func Nesting() *Widget {
	three := NewContainer(TypeHorizontal, ID("three"), Classes("baz"))
	for n := 0; n < 3; n++ {
		three.With(NewLeaf(TypeVertical,
			ID(fmt.Sprintf("three-%d", n)),
			Classes("wibble", fmt.Sprintf("wobble-%d", n)),
		))
	}
	return NewPlayground("nesting").With(
		NewContainer(TypeVertical, ID("one"), Classes("foo bar")).With(
			NewContainer(TypeVertical, ID("two")).With(
				three,
				NewContainer(TypeVertical, ID("four")).With(
					NewLeaf(TypeVertical, ID("innermost"), Classes("foo", "baz")),
				),
			),
		),
	)
}

// Lists creates a playground with labeled items, useful for trying
// sibling combinators and pseudo classes like `:first-child`.
func Lists() *Widget {
	menu := NewContainer(TypeVertical, ID("menu"), Classes("list"))
	for i, item := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		cls := []string{"item"}
		switch i {
		case 0:
			cls = append(cls, "first")
		case 3:
			cls = append(cls, "last")
		}
		menu.With(NewLabeledLeaf(TypeStatic, item, Classes(cls...)))
	}
	return NewPlayground("lists").With(
		menu,
		NewContainer(TypeHorizontal, ID("toolbar")).With(
			NewLabeledLeaf(TypeStatic, "OK", ID("ok"), Classes("button primary")),
			NewLabeledLeaf(TypeStatic, "Cancel", ID("cancel"), Classes("button")),
		),
	)
}

// Grid creates a playground with a 3×3 grid of cells.
func Grid() *Widget {
	pg := NewPlayground("grid")
	for r := 0; r < 3; r++ {
		row := NewContainer(TypeHorizontal, ID(fmt.Sprintf("row-%d", r)), Classes("row"))
		for c := 0; c < 3; c++ {
			cls := []string{"cell", fmt.Sprintf("col-%d", c)}
			if r == c {
				cls = append(cls, "diagonal")
			}
			row.With(NewLabeledLeaf(TypeStatic, fmt.Sprintf("%d,%d", r, c), Classes(cls...)))
		}
		pg.With(row)
	}
	return pg
}
