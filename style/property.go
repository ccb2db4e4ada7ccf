package style

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//     border: panel red
//
// a property value of "panel red" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Groups ---------------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// The mapping of properties into groups is documented with
// GroupNameFromPropertyKey.
type PropertyGroup struct {
	name      string
	Parent    *PropertyGroup
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	var sb strings.Builder
	sb.WriteString("[" + pg.name + "] =\n")
	for _, kv := range pg.Properties() {
		sb.WriteString(fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value))
	}
	return sb.String()
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg == nil || pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg == nil || pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.ToLower(strings.TrimSpace(string(p))))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if _, exists := pg.Get(key); !exists {
		pg.Set(key, p)
	}
}

// Cascade finds the ancesting PropertyGroup containing the given property-key,
// starting with pg itself. Returns nil if no group in the chain holds key.
func (pg *PropertyGroup) Cascade(key string) *PropertyGroup {
	it := pg
	for it != nil && !it.IsSet(key) {
		it = it.Parent
	}
	return it
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":         PGMargins,
	"margin-left":        PGMargins,
	"margin-right":       PGMargins,
	"margin-bottom":      PGMargins,
	"padding-top":        PGPadding,
	"padding-left":       PGPadding,
	"padding-right":      PGPadding,
	"padding-bottom":     PGPadding,
	"border-style":       PGBorder,
	"border-color":       PGBorder,
	"border-title-color": PGBorder,
	"border-title-style": PGBorder,
	"width":              PGDimension,
	"height":             PGDimension,
	"min-width":          PGDimension,
	"max-width":          PGDimension,
	"display":            PGDisplay,
	"visibility":         PGDisplay,
	"color":              PGColor,
	"background-color":   PGColor,
	"text-style":         PGText,
	"text-align":         PGText,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	switch key {
	case "color", "text-style", "text-align", "visibility":
		return true
	}
	return false
}

// IsCompound returns true for shortcut properties, which will be split up
// by SplitCompoundProperty.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border", "background":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "1 2")
// will return
//    "padding-top"    => "1"
//    "padding-right"  => "2"
//    "padding-bottom" => "1"
//    "padding-left"   => "2"
//
// Borders are split into style and color, where the color may carry an
// alpha percentage:
//    SplitCompoundProperty("border", "panel red 40%")
// will return
//    "border-style" => "panel"
//    "border-color" => "red 40%"
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", fourDirs, fields)
	case "border":
		if len(fields) == 0 {
			return nil, fmt.Errorf("expecting border style and color")
		}
		r := []KeyValue{{"border-style", Property(fields[0])}}
		if len(fields) > 1 {
			r = append(r, KeyValue{"border-color", Property(strings.Join(fields[1:], " "))})
		}
		return r, nil
	case "background":
		if len(fields) == 0 {
			return nil, fmt.Errorf("expecting background color")
		}
		return []KeyValue{{"background-color", value}}, nil
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// Logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_padding.asp
func feazeCompound4(pre string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", pre)
	}
	var values [4]string
	switch l {
	case 1:
		values = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		values = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		values = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		values = [4]string{fields[0], fields[1], fields[2], fields[3]}
	}
	r := make([]KeyValue, 4)
	for i := range dirs {
		r[i] = KeyValue{pre + "-" + dirs[i], Property(values[i])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// --- Property Map -----------------------------------------------------

// PropertyMap holds style properties. nil is a legal (empty) property map.
// A property map is the entity styling a widget: a widget links to a property map,
// which contains zero or more property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	if pmap == nil {
		return "Property Map = {}"
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	s := "Property Map = {\n"
	for _, name := range names {
		s += pmap.m[name].String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	for _, kv := range group.Properties() {
		if overwrite {
			pmap.Set(kv.Key, kv.Value)
		} else {
			pmap.Add(kv.Key, kv.Value)
		}
	}
	return pmap
}

// Set sets a property of this property map, e.g.,
//
//    pm.Set("border-style", "round")
//
// Compound properties are split up into their components.
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap == nil {
		return
	}
	if IsCompound(key) {
		kvs, err := SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Errorf("style: %v", err)
			return
		}
		for _, kv := range kvs {
			pmap.Set(kv.Key, kv.Value)
		}
		return
	}
	pmap.group(key).Set(key, value)
}

// Add adds a property to this property map, if it is not yet set.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if _, exists := pmap.Property(key); exists {
		return
	}
	pmap.Set(key, value)
}

func (pmap *PropertyMap) group(key string) *PropertyGroup {
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	return group
}
