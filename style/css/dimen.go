package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/querysandbox/style"
)

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001 // cells
	dimenAuto     uint32 = 0x0002
	dimenPercent  uint32 = 0x0010 // percentage of the available width
	dimenFraction uint32 = 0x0020 // share of the remaining width
	kindMask      uint32 = 0x00ff
)

// DimenT is an option type for widget dimensions in a terminal. A
// dimension is either auto, a number of cells, a percentage of the space
// available, or a fraction of the space left over by siblings ("fr").
type DimenT struct {
	n     int
	flags uint32
}

/*
type DimenT
	= Auto
	| JustCells n
	| Percentage n
	| Fraction n
*/

// Auto is the dimension of a widget sized by its content.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustCells creates a dimension with a fixed number of cells.
func JustCells(n int) DimenT {
	return DimenT{n: n, flags: dimenAbsolute}
}

// Percentage creates a dimension relative to the available space.
func Percentage(n int) DimenT {
	return DimenT{n: n, flags: dimenPercent}
}

// Fraction creates a dimension taking a share of the remaining space.
func Fraction(n int) DimenT {
	return DimenT{n: n, flags: dimenFraction}
}

// ParseDimen interprets a style property as a dimension. Accepted values
// are "auto", "12", "12ch", "50%" and "2fr". Other values result in Auto
// and an error.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.TrimSpace(p.String())
	if s == "" || s == "auto" || s == "none" || p.IsInitial() {
		return Auto(), nil
	}
	var mk func(int) DimenT
	switch {
	case strings.HasSuffix(s, "%"):
		s, mk = strings.TrimSuffix(s, "%"), Percentage
	case strings.HasSuffix(s, "fr"):
		s, mk = strings.TrimSuffix(s, "fr"), Fraction
	default:
		s, mk = strings.TrimSuffix(s, "ch"), JustCells
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Auto(), fmt.Errorf("not a dimension: %q", p)
	}
	return mk(n), nil
}

// IsAuto is true for content sized dimensions.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto || d.flags == dimenNone
}

// IsFraction is true for "fr" dimensions.
func (d DimenT) IsFraction() bool {
	return d.flags&dimenFraction > 0
}

// Resolve calculates the number of cells for a dimension, given the space
// available. Auto and fractions do not resolve and return false. A
// percentage of unknown space (avail ≤ 0) does not resolve either.
func (d DimenT) Resolve(avail int) (int, bool) {
	switch d.flags & kindMask {
	case dimenAbsolute:
		return d.n, true
	case dimenPercent:
		if avail <= 0 {
			return 0, false
		}
		return avail * d.n / 100, true
	}
	return 0, false
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAbsolute:
		return strconv.Itoa(d.n)
	case dimenPercent:
		return fmt.Sprintf("%d%%", d.n)
	case dimenFraction:
		return fmt.Sprintf("%dfr", d.n)
	}
	return "auto"
}

// ---------------------------------------------------------------------------

// Match returns a matcher for a dimension, to be used in switch statements:
//
//     switch m := d.Match(); m {
//     case m.Just(&n): …
//     case m.Fraction(&n): …
//     }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches dimensions by kind.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if m.dimen.IsAuto() && d.IsAuto() || m.dimen.flags&kindMask == d.flags&kindMask {
		return m
	}
	return nil
}

// Just matches a fixed number of cells.
func (m *Matcher) Just(n *int) *Matcher {
	return m.with(dimenAbsolute, n)
}

// Percentage matches a percentage.
func (m *Matcher) Percentage(p *int) *Matcher {
	return m.with(dimenPercent, p)
}

// Fraction matches a fraction.
func (m *Matcher) Fraction(f *int) *Matcher {
	return m.with(dimenFraction, f)
}

func (m *Matcher) with(kind uint32, n *int) *Matcher {
	if m.dimen.flags&kind == 0 {
		return nil
	}
	if n != nil {
		*n = m.dimen.n
	}
	return m
}
