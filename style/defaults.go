package style

// Values "default" have the following semantics:
// Treat this as an inherent terminal default, which should not be
// instantiated, but rather will be treated implicitely by rendering code.
var userAgentDefaults = map[string]Property{
	"margin-top":         "0",
	"margin-left":        "0",
	"margin-right":       "0",
	"margin-bottom":      "0",
	"padding-top":        "0",
	"padding-left":       "0",
	"padding-right":      "0",
	"padding-bottom":     "0",
	"border-style":       "none",
	"border-color":       "default",
	"border-title-color": "default",
	"border-title-style": "bold",
	"width":              "auto",
	"height":             "auto",
	"min-width":          "0",
	"max-width":          "none",
	"display":            "block",
	"visibility":         "visible",
	"color":              "default",
	"background-color":   "default",
	"text-style":         "none",
	"text-align":         "left",
}

// GetUserAgentDefaultProperty returns the default property for a given key.
// Unknown keys return NullStyle.
func GetUserAgentDefaultProperty(key string) Property {
	if p, ok := userAgentDefaults[key]; ok {
		return p
	}
	return NullStyle
}

// InitializeDefaultPropertyValues creates a property map holding the
// default values for all known style properties, plus additional ones
// supplied by the client (put into group "X").
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	pmap := NewPropertyMap()
	for key, value := range userAgentDefaults {
		pmap.Set(key, value)
	}
	x := NewPropertyGroup(PGX) // special group for extension properties
	for _, kv := range additionalProps {
		x.Set(kv.Key, kv.Value)
	}
	pmap.m[PGX] = x
	return pmap
}
