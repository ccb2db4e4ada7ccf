package css

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/widget"
)

// Backdrop is the color translucent backgrounds are blended over, if no
// ancestor has a background color set.
var Backdrop = colorful.Color{R: 0, G: 0, B: 0}

// Box is the terminal realization of the styles of a widget.
type Box struct {
	Hidden      bool           // display: none
	Invisible   bool           // visibility: hidden
	BorderStyle string         // e.g. "panel", "round", "none"
	Inner       lipgloss.Style // border, padding, colors
	Margins     lipgloss.Style // margins only
	Title       lipgloss.Style // style of the border title
	Width       int            // width in cells (incl. padding), 0 for auto
	Height      int            // height in cells (incl. padding), 0 for auto
	WidthDim    DimenT         // width as styled
	MinWidth    int            // 0 for no minimum
	MaxWidth    int            // 0 for no maximum
}

// HasBorder is true if a border will be drawn.
func (box Box) HasBorder() bool {
	return box.BorderStyle != "none" && box.BorderStyle != ""
}

// Box resolves the styles of a widget and realizes them as a Box.
func (s *Styles) Box(w *widget.Widget) Box {
	box := Box{
		Hidden:      s.GetProperty(w, "display") == "none",
		Invisible:   s.GetProperty(w, "visibility") == "hidden",
		BorderStyle: s.GetProperty(w, "border-style").String(),
	}
	inner := lipgloss.NewStyle()
	bg, hasBg := s.background(w)
	if hasBg {
		inner = inner.Background(lipgloss.Color(bg.Hex()))
	}
	backdrop := bg
	if !hasBg {
		backdrop = Backdrop
	}
	if fg, ok := s.GetProperty(w, "color").ColorOver(backdrop); ok {
		inner = inner.Foreground(lipgloss.Color(fg.Hex()))
	}
	inner = textStyle(inner, s.GetProperty(w, "text-style"))
	switch s.GetProperty(w, "text-align") {
	case "center":
		inner = inner.Align(lipgloss.Center)
	case "right":
		inner = inner.Align(lipgloss.Right)
	}
	inner = inner.Padding(s.cells(w, "padding-top"), s.cells(w, "padding-right"),
		s.cells(w, "padding-bottom"), s.cells(w, "padding-left"))
	title := lipgloss.NewStyle()
	if box.HasBorder() {
		inner = inner.Border(BorderFor(box.BorderStyle))
		if bc, ok := s.GetProperty(w, "border-color").ColorOver(s.parentBackdrop(w)); ok {
			inner = inner.BorderForeground(lipgloss.Color(bc.Hex()))
			title = title.Foreground(lipgloss.Color(bc.Hex()))
			if box.BorderStyle == "panel" {
				title = title.Reverse(true)
			}
		}
		if tc, ok := s.GetProperty(w, "border-title-color").ColorOver(backdrop); ok {
			title = title.Foreground(lipgloss.Color(tc.Hex()))
		}
		if hasBg {
			inner = inner.BorderBackground(lipgloss.Color(bg.Hex()))
		}
		title = textStyle(title, s.GetProperty(w, "border-title-style"))
	}
	box.Inner = inner
	box.Title = title
	box.Margins = lipgloss.NewStyle().Margin(s.cells(w, "margin-top"), s.cells(w, "margin-right"),
		s.cells(w, "margin-bottom"), s.cells(w, "margin-left"))
	box.WidthDim = s.dimen(w, "width")
	box.Width, _ = box.WidthDim.Resolve(0)
	box.Height, _ = s.dimen(w, "height").Resolve(0)
	box.MinWidth, _ = s.dimen(w, "min-width").Resolve(0)
	box.MaxWidth, _ = s.dimen(w, "max-width").Resolve(0)
	box.Width = box.clamp(box.Width)
	return box
}

// Frame returns the number of cells occupied horizontally by margins and
// border.
func (box Box) Frame() int {
	return box.Margins.GetHorizontalMargins() + box.Inner.GetHorizontalBorderSize()
}

// ContentWidth returns the width available for children, or 0 if the
// width of box is not known.
func (box Box) ContentWidth() int {
	if box.Width == 0 {
		return 0
	}
	if w := box.Width - box.Inner.GetHorizontalPadding(); w > 0 {
		return w
	}
	return 0
}

// Fit sizes a box to occupy outer cells, including margins and border.
// Boxes with a fixed width are left unchanged.
func (box Box) Fit(outer int) Box {
	if outer <= 0 {
		return box
	}
	if _, fixed := box.WidthDim.Resolve(0); fixed {
		return box
	}
	if w := box.clamp(outer - box.Frame()); w > 0 {
		box.Width = w
	}
	return box
}

func (box Box) clamp(w int) int {
	if w == 0 {
		return 0
	}
	if box.MaxWidth > 0 && w > box.MaxWidth {
		w = box.MaxWidth
	}
	if w < box.MinWidth {
		w = box.MinWidth
	}
	return w
}

// Render renders content into a box, with an optional title embedded into
// the top border.
func (box Box) Render(content string, title string) string {
	if box.Hidden {
		return ""
	}
	inner := box.Inner
	if box.Width > 0 {
		inner = inner.Width(box.Width)
	}
	if box.Height > 0 {
		inner = inner.Height(box.Height)
	}
	if box.Invisible {
		content = blank(content)
		title = ""
	}
	if !box.HasBorder() || title == "" {
		return box.Margins.Render(inner.Render(content))
	}
	if box.Width == 0 { // make room for the title
		need := runewidth.StringWidth(title) + 4 - inner.GetHorizontalPadding()
		if lipgloss.Width(content) < need {
			content = lipgloss.PlaceHorizontal(need, lipgloss.Left, content)
		}
	}
	body := inner.BorderTop(false).Render(content)
	width := lipgloss.Width(body)
	return box.Margins.Render(lipgloss.JoinVertical(lipgloss.Left,
		box.topBorder(width, title), body))
}

// topBorder creates a top border line of a given width with a title.
func (box Box) topBorder(width int, title string) string {
	b := BorderFor(box.BorderStyle)
	border := lipgloss.NewStyle().
		Foreground(box.Inner.GetBorderTopForeground()).
		Background(box.Inner.GetBorderTopBackground())
	room := width - 2 // corners
	if room <= 0 {
		return border.Render(b.TopLeft + b.TopRight)
	}
	if room < 5 { // not enough room for a title
		return border.Render(b.TopLeft + strings.Repeat(b.Top, room) + b.TopRight)
	}
	title = runewidth.Truncate(" "+title+" ", room-2, "… ")
	rest := room - 1 - runewidth.StringWidth(title)
	if rest < 0 {
		rest = 0
	}
	return border.Render(b.TopLeft+b.Top) + box.Title.Render(title) +
		border.Render(strings.Repeat(b.Top, rest)+b.TopRight)
}

// BorderFor maps border style names to lipgloss borders. Unknown names
// result in a normal border.
func BorderFor(name string) lipgloss.Border {
	switch name {
	case "round":
		return lipgloss.RoundedBorder()
	case "heavy", "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	case "hidden", "blank":
		return lipgloss.HiddenBorder()
	case "tall", "outer":
		return lipgloss.OuterHalfBlockBorder()
	case "wide", "inner":
		return lipgloss.InnerHalfBlockBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "panel", "solid", "normal":
		return lipgloss.NormalBorder()
	}
	tracer().Debugf("unknown border style %q, using normal border", name)
	return lipgloss.NormalBorder()
}

// background computes the effective background color of a widget, with
// translucent backgrounds blended over the background of the parent.
// Background color does not cascade, but shines through.
func (s *Styles) background(w *widget.Widget) (colorful.Color, bool) {
	p := GetLocalProperty(s.Local(w), "background-color")
	if p.IsEmpty() || p.IsInitial() {
		return colorful.Color{}, false
	}
	if p.IsInherit() {
		if w.Parent() == nil {
			return colorful.Color{}, false
		}
		return s.background(w.Parent())
	}
	return p.ColorOver(s.parentBackdrop(w))
}

func (s *Styles) parentBackdrop(w *widget.Widget) colorful.Color {
	for p := w.Parent(); p != nil; p = p.Parent() {
		if bg, ok := s.background(p); ok {
			return bg
		}
	}
	return Backdrop
}

func (s *Styles) dimen(w *widget.Widget, key string) DimenT {
	d, err := ParseDimen(s.GetProperty(w, key))
	if err != nil {
		tracer().P("widget", w.Label()).Debugf("%s: %v", key, err)
	}
	return d
}

func (s *Styles) cells(w *widget.Widget, key string) int {
	n, _ := s.GetProperty(w, key).Cells()
	return n
}

// textStyle switches on text attributes, leaving others as they are.
func textStyle(st lipgloss.Style, p style.Property) lipgloss.Style {
	for flag := range p.Flags() {
		switch flag {
		case "bold":
			st = st.Bold(true)
		case "italic":
			st = st.Italic(true)
		case "underline":
			st = st.Underline(true)
		case "strike":
			st = st.Strikethrough(true)
		case "reverse":
			st = st.Reverse(true)
		case "dim":
			st = st.Faint(true)
		}
	}
	return st
}

func blank(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(l))
	}
	return strings.Join(lines, "\n")
}
