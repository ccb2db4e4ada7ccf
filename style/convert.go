package style

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color interprets a property as a color. Accepted are CSS color names
// ("cornflowerblue"), hex notation ("#6495ed", "#fff") and either of these
// followed by an alpha percentage ("red 40%"). Alpha is returned in [0…1];
// it is 1 if no percentage is given.
//
// "default", "transparent" and invalid values return ok = false.
func (p Property) Color() (c colorful.Color, alpha float64, ok bool) {
	fields := strings.Fields(p.String())
	if len(fields) == 0 || len(fields) > 2 {
		return c, 0, false
	}
	alpha = 1.0
	if len(fields) == 2 {
		pcnt := strings.TrimSuffix(fields[1], "%")
		a, err := strconv.ParseFloat(pcnt, 64)
		if err != nil || pcnt == fields[1] {
			return c, 0, false
		}
		alpha = clamp01(a / 100)
	}
	name := fields[0]
	if strings.HasPrefix(name, "#") {
		if len(name) == 4 { // #rgb
			name = string([]byte{'#', name[1], name[1], name[2], name[2], name[3], name[3]})
		}
		col, err := colorful.Hex(name)
		if err != nil {
			return c, 0, false
		}
		return col, alpha, true
	}
	rgba, found := colornames.Map[name]
	if !found {
		return c, 0, false
	}
	col, _ := colorful.MakeColor(rgba)
	return col, alpha, true
}

// ColorOver computes a property's color blended over a backdrop color,
// respecting the alpha value of the property.
func (p Property) ColorOver(backdrop colorful.Color) (colorful.Color, bool) {
	c, alpha, ok := p.Color()
	if !ok {
		return backdrop, false
	}
	if alpha >= 1.0 {
		return c, true
	}
	return backdrop.BlendRgb(c, alpha).Clamped(), true
}

// Cells interprets a property as a number of character cells.
// Values may carry a unit suffix of "ch"; "auto", "none" and invalid values
// return ok = false.
func (p Property) Cells() (n int, ok bool) {
	s := strings.TrimSuffix(p.String(), "ch")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Flags interprets a property as a whitespace separated set of keywords,
// e.g. "bold underline". "none" returns an empty set.
func (p Property) Flags() map[string]bool {
	flags := make(map[string]bool)
	for _, f := range strings.Fields(p.String()) {
		if f != "none" {
			flags[f] = true
		}
	}
	return flags
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
