package project

import (
	"fmt"
	"slices"
)

// Plugin types.
const (
	PluginAdvanced = "advanced"
	PluginBasic    = "basic"
)

// Builders.
const (
	BuilderNPM   = "npm"
	BuilderGrunt = "grunt"
)

var (
	pluginTypes = []string{PluginAdvanced, PluginBasic}
	builders    = []string{BuilderGrunt, BuilderNPM}
)

// Options are the recognized generation options. They double as prompt
// defaults and as the persisted answers of a previous run.
type Options struct {
	Name        string `yaml:"name" json:"name"`
	Scope       string `yaml:"scope,omitempty" json:"scope"`
	Author      string `yaml:"author" json:"author"`
	Description string `yaml:"description" json:"description"`
	License     string `yaml:"license" json:"license"`
	PluginType  string `yaml:"pluginType" json:"pluginType"`
	Builder     string `yaml:"builder" json:"builder"`
	CSS         bool   `yaml:"css" json:"css"`
	Docs        bool   `yaml:"docs" json:"docs"`
	Lang        bool   `yaml:"lang" json:"lang"`
	Library     bool   `yaml:"library" json:"library"`
	Precommit   bool   `yaml:"precommit" json:"precommit"`
	Prepush     bool   `yaml:"prepush" json:"prepush"`
}

// Option keys as they appear in the answers file and in user config.
const (
	KeyName        = "name"
	KeyScope       = "scope"
	KeyAuthor      = "author"
	KeyDescription = "description"
	KeyLicense     = "license"
	KeyPluginType  = "pluginType"
	KeyBuilder     = "builder"
	KeyCSS         = "css"
	KeyDocs        = "docs"
	KeyLang        = "lang"
	KeyLibrary     = "library"
	KeyPrecommit   = "precommit"
	KeyPrepush     = "prepush"
)

// PluginTypes returns the accepted plugin types.
func PluginTypes() []string { return slices.Clone(pluginTypes) }

// Builders returns the accepted builders.
func Builders() []string { return slices.Clone(builders) }

// ValidPluginType reports whether t is an accepted plugin type.
func ValidPluginType(t string) bool { return slices.Contains(pluginTypes, t) }

// ValidBuilder reports whether b is an accepted builder.
func ValidBuilder(b string) bool { return slices.Contains(builders, b) }

// FeatureFlags returns the enabled feature flags in a stable order, for
// logging and summaries.
func (o Options) FeatureFlags() []string {
	var flags []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{KeyCSS, o.CSS},
		{KeyDocs, o.Docs},
		{KeyLang, o.Lang},
		{KeyLibrary, o.Library},
		{KeyPrecommit, o.Precommit},
		{KeyPrepush, o.Prepush},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	return flags
}

func (o Options) String() string {
	return fmt.Sprintf("%s (license=%s type=%s builder=%s features=%v)",
		o.Name, o.License, o.PluginType, o.Builder, o.FeatureFlags())
}
