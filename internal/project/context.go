package project

import (
	"fmt"
	"time"

	"github.com/videojs/vjsplugin/internal/license"
	"github.com/videojs/vjsplugin/internal/naming"
)

// Context is the GenerationContext: the resolved options, the derived
// names and run metadata. It is created once per run and read by the
// manifest synthesizer and the templates; nothing mutates it afterwards.
type Context struct {
	Options
	Names            naming.Name
	LicenseName      string // canonical manifest name, "" for unknown keys
	GeneratorVersion string
	Version          string // explicit package version, "" keeps the existing one
	Year             int
}

// NewContext validates opts and derives the generation context.
func NewContext(opts Options, generatorVersion string) (*Context, error) {
	names, err := naming.New(opts.Name, opts.Scope)
	if err != nil {
		return nil, err
	}
	if !ValidPluginType(opts.PluginType) {
		return nil, fmt.Errorf("invalid plugin type %q: must be one of %v", opts.PluginType, pluginTypes)
	}
	if !ValidBuilder(opts.Builder) {
		return nil, fmt.Errorf("invalid builder %q: must be one of %v", opts.Builder, builders)
	}

	opts.Name = names.Basic
	opts.Scope = names.Scope

	return &Context{
		Options:          opts,
		Names:            names,
		LicenseName:      license.Name(opts.License),
		GeneratorVersion: generatorVersion,
		Year:             time.Now().Year(),
	}, nil
}

// IsPrivate reports whether the project is closed source.
func (c *Context) IsPrivate() bool {
	return license.IsPrivate(c.License)
}

// IsAdvanced reports whether the plugin is class based.
func (c *Context) IsAdvanced() bool {
	return c.PluginType == PluginAdvanced
}
