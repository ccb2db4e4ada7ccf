package sandbox

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/querysandbox/style/css"
	"github.com/npillmayer/querysandbox/widget"
)

// RenderTree renders a widget and its descendents with given styles.
// If width is greater than zero, the outermost box is stretched to this
// width (including border and margins), unless its width is set by a style.
//
// Vertical containers (including playgrounds and screens) stack their
// children, horizontal containers place them side by side. Widths given
// as percentages or fractions ("1fr") are resolved against the content
// width of the parent, if known.
func RenderTree(w *widget.Widget, styles *css.Styles, width int) string {
	if w == nil || styles == nil {
		return ""
	}
	return render(w, styles.Box(w).Fit(width), styles)
}

func render(w *widget.Widget, box css.Box, styles *css.Styles) string {
	if box.Hidden {
		return ""
	}
	return box.Render(content(w, box.ContentWidth(), styles), w.Title())
}

func content(w *widget.Widget, avail int, styles *css.Styles) string {
	switch w.Kind() {
	case widget.LabeledLeaf:
		return w.Text()
	case widget.Leaf:
		return ""
	}
	var parts []string
	if w.Type() == widget.TypeHorizontal {
		parts = row(w.Children(), avail, styles)
	} else {
		parts = column(w.Children(), avail, styles)
	}
	if len(parts) == 0 {
		return ""
	}
	if w.Type() == widget.TypeHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// column renders children stacked vertically. Percentages refer to the
// available width, fractions take all of it.
func column(children []*widget.Widget, avail int, styles *css.Styles) []string {
	parts := make([]string, 0, len(children))
	for _, ch := range children {
		box := styles.Box(ch)
		if outer, ok := box.WidthDim.Resolve(avail); ok && !isFixed(box) {
			box = box.Fit(outer)
		} else if box.WidthDim.IsFraction() {
			box = box.Fit(avail)
		}
		if r := render(ch, box, styles); r != "" {
			parts = append(parts, r)
		}
	}
	return parts
}

// row renders children side by side. Children with fractional widths share
// the space left over by their siblings, in proportion to their fractions.
func row(children []*widget.Widget, avail int, styles *css.Styles) []string {
	parts := make([]string, len(children))
	boxes := make([]css.Box, len(children))
	used, total := 0, 0
	for i, ch := range children {
		boxes[i] = styles.Box(ch)
		if boxes[i].Hidden {
			continue
		}
		var f int
		switch m := boxes[i].WidthDim.Match(); m {
		case m.Fraction(&f):
			if avail > 0 {
				total += f
				continue
			}
		case m.Percentage(nil):
			if outer, ok := boxes[i].WidthDim.Resolve(avail); ok {
				boxes[i] = boxes[i].Fit(outer)
			}
		}
		parts[i] = render(ch, boxes[i], styles)
		used += lipgloss.Width(parts[i])
	}
	if total > 0 {
		rest := avail - used
		for i, ch := range children {
			var f int
			if boxes[i].Hidden || boxes[i].WidthDim.Match().Fraction(&f) == nil {
				continue
			}
			share := 0
			if rest > 0 {
				share = rest * f / total
				rest -= share
				total -= f
			}
			parts[i] = render(ch, boxes[i].Fit(share), styles)
		}
	}
	visible := parts[:0]
	for _, p := range parts {
		if p != "" {
			visible = append(visible, p)
		}
	}
	return visible
}

func isFixed(box css.Box) bool {
	_, fixed := box.WidthDim.Resolve(0)
	return fixed
}
