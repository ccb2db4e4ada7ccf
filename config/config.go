/*
Package config holds the application configuration of the query sandbox.

Configuration values are read from defaults, an optional configuration file,
the environment (prefix QUERYSANDBOX_) and command line flags, in increasing
order of precedence. Conf implements schuko.Configuration, so the tracing
facade reads its settings (adapter, destination, trace levels) from the same
source.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// tracer writes to trace with key 'sandbox.config'
func tracer() tracing.Trace {
	return tracing.Select("sandbox.config")
}

// Name of the application. It is used to locate configuration files and as
// the environment prefix.
const Name = "querysandbox"

// Configuration keys.
const (
	KeySelector    = "selector"
	KeyPlaygrounds = "playgrounds"
	KeyStylesheet  = "stylesheet"
	KeyWatch       = "watch"
	KeyColor       = "color"
	KeyAdapter     = "tracing.adapter"
	KeyDestination = "tracing.destination"
	KeyTraceLevels = "tracelevel"
)

// DefaultSelector is the selector the input field is pre-filled with.
const DefaultSelector = "Playground *"

// ErrUnknownColorProfile is returned by Validate for an unsupported value
// of key "color".
var ErrUnknownColorProfile = errors.New("unknown color profile")

// ColorProfiles lists the accepted values for key "color".
var ColorProfiles = []string{"auto", "ascii", "ansi", "ansi256", "truecolor"}

// Conf is a configuration backed by a private viper instance.
type Conf struct {
	v *viper.Viper
}

// New creates a configuration with defaults set. Clients call Load to read
// a configuration file and the environment.
func New() *Conf {
	c := &Conf{v: viper.New()}
	c.InitDefaults()
	c.v.SetEnvPrefix(strings.ToUpper(Name))
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()
	return c
}

// InitDefaults sets the base set of key/value pairs.
//
// Interface schuko.Configuration
func (c *Conf) InitDefaults() {
	c.v.SetDefault(KeySelector, DefaultSelector)
	c.v.SetDefault(KeyPlaygrounds, "")
	c.v.SetDefault(KeyStylesheet, "")
	c.v.SetDefault(KeyWatch, true)
	c.v.SetDefault(KeyColor, "auto")
	c.v.SetDefault(KeyAdapter, "go")
	c.v.SetDefault(KeyDestination, "file://"+Name+".log")
	c.v.SetDefault(KeyTraceLevels+".root", "Error")
}

// Load reads configuration from a file. If path is empty, a file named
// querysandbox.{yaml,toml,json} is searched for in the working directory and
// in $HOME/.config/querysandbox. A missing configuration file is not an
// error if no explicit path has been given.
func (c *Conf) Load(path string) error {
	if path == "" {
		path = os.Getenv(strings.ToUpper(Name) + "_CONFIG")
	}
	if path != "" {
		c.v.SetConfigFile(path)
	} else {
		c.v.SetConfigName(Name)
		c.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			c.v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			tracer().Debugf("no configuration file found, using defaults")
			return nil
		}
		return fmt.Errorf("reading configuration: %w", err)
	}
	tracer().Infof("configuration read from %s", c.v.ConfigFileUsed())
	return nil
}

// BindFlags binds command line flags to configuration keys of the same
// name. Flags which have not been changed do not override other sources.
func (c *Conf) BindFlags(flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", key, err)
		}
	}
	return nil
}

// Set overrides a configuration value.
func (c *Conf) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Validate checks values which have a restricted domain.
func (c *Conf) Validate() error {
	color := strings.ToLower(c.GetString(KeyColor))
	for _, p := range ColorProfiles {
		if p == color {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownColorProfile, color)
}

// IsSet is a predicate wether a configuration key is set.
//
// Interface schuko.Configuration
func (c *Conf) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetString returns a configuration property as a string.
//
// Interface schuko.Configuration
func (c *Conf) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns a configuration property as an integer.
//
// Interface schuko.Configuration
func (c *Conf) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool returns a configuration property as a boolean value.
//
// Interface schuko.Configuration
func (c *Conf) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// IsInteractive is always true, the sandbox is an interactive application.
//
// Interface schuko.Configuration
func (c *Conf) IsInteractive() bool {
	return true
}

var _ schuko.Configuration = &Conf{}

// --- Typed access ----------------------------------------------------------

// Selector is the initial selector of the input field.
func (c *Conf) Selector() string {
	return c.GetString(KeySelector)
}

// Playgrounds is the path of a YAML file with playground definitions, or
// empty for the built-in playgrounds.
func (c *Conf) Playgrounds() string {
	return c.GetString(KeyPlaygrounds)
}

// Stylesheet is the path of a CSS file replacing the default stylesheet,
// or empty.
func (c *Conf) Stylesheet() string {
	return c.GetString(KeyStylesheet)
}

// Watch is true if the stylesheet file should be reloaded on change.
func (c *Conf) Watch() bool {
	return c.GetBool(KeyWatch)
}

// Color is the name of the terminal color profile.
func (c *Conf) Color() string {
	return strings.ToLower(c.GetString(KeyColor))
}
