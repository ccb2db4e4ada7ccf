package css

import (
	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/widget"
)

// Styles holds the local style properties of the widgets of a tree.
// Widgets without any matching style rule do not have local properties.
type Styles struct {
	defaults *style.PropertyMap
	local    map[*widget.Widget]*style.PropertyMap
}

// NewStyles creates an empty set of styles with default properties.
func NewStyles(defaults *style.PropertyMap) *Styles {
	if defaults == nil {
		defaults = style.InitializeDefaultPropertyValues(nil)
	}
	return &Styles{
		defaults: defaults,
		local:    make(map[*widget.Widget]*style.PropertyMap),
	}
}

// Set sets the local properties of a widget.
func (s *Styles) Set(w *widget.Widget, pmap *style.PropertyMap) {
	s.local[w] = pmap
}

// Local returns the local properties of a widget, which may be nil.
func (s *Styles) Local(w *widget.Widget) *style.PropertyMap {
	return s.local[w]
}

// GetCascadedProperty gets the value of a property. The search cascades to
// parent widgets, and finally to the default properties.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
func (s *Styles) GetCascadedProperty(w *widget.Widget, key string) style.Property {
	for n := w; n != nil; n = n.Parent() {
		p, ok := s.Local(n).Property(key)
		if ok && !p.IsEmpty() && !p.IsInherit() {
			return p
		}
	}
	return s.defaultProperty(key)
}

// GetProperty gets the value of a property. If the property is not set
// locally on the widget and the property is inheritable, the search
// cascades to parent widgets.
//
// A locally set value of "inherit" always cascades, a value of "initial"
// always resolves to the default.
func (s *Styles) GetProperty(w *widget.Widget, key string) style.Property {
	p := GetLocalProperty(s.Local(w), key)
	switch {
	case p.IsInitial():
		return s.defaultProperty(key)
	case p.IsInherit():
		return s.GetCascadedProperty(w.Parent(), key)
	case !p.IsEmpty():
		return p
	case style.IsCascading(key):
		return s.GetCascadedProperty(w.Parent(), key)
	}
	return s.defaultProperty(key)
}

func (s *Styles) defaultProperty(key string) style.Property {
	if p, ok := s.defaults.Property(key); ok {
		return p
	}
	return style.GetUserAgentDefaultProperty(key)
}

// GetLocalProperty returns a style property value, if it is set locally
// for a widget's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	group := pmap.Group(style.GroupNameFromPropertyKey(key))
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}
