package prompt

import (
	"strings"

	"github.com/videojs/vjsplugin/internal/license"
	"github.com/videojs/vjsplugin/internal/manifest"
	"github.com/videojs/vjsplugin/internal/naming"
	"github.com/videojs/vjsplugin/internal/project"
)

// Defaults are the option values offered to the user as prompt defaults.
type Defaults = project.Options

// Source is a keyed configuration layer. *viper.Viper satisfies it.
type Source interface {
	IsSet(key string) bool
	GetString(key string) string
	GetBool(key string) bool
}

// Sources are the layers Resolve reads. Any of them may be nil.
type Sources struct {
	Persisted Source           // answers file of a previous run
	Existing  *manifest.Object // package.json already in the destination
	User      Source           // user-level config
}

// user-level config keys that map onto options
var userKeys = []string{
	project.KeyAuthor,
	project.KeyLicense,
	project.KeyScope,
	project.KeyBuilder,
}

var stringKeys = []string{
	project.KeyName,
	project.KeyScope,
	project.KeyAuthor,
	project.KeyDescription,
	project.KeyLicense,
	project.KeyPluginType,
	project.KeyBuilder,
}

var boolKeys = []string{
	project.KeyCSS,
	project.KeyDocs,
	project.KeyLang,
	project.KeyLibrary,
	project.KeyPrecommit,
	project.KeyPrepush,
}

// ConstantDefaults returns the built-in defaults.
func ConstantDefaults() Defaults {
	return Defaults{
		License:    license.MIT,
		PluginType: project.PluginAdvanced,
		Builder:    project.BuilderNPM,
	}
}

// Resolve merges the layers in src over ConstantDefaults. The returned name
// is always in its basic form.
func Resolve(src Sources) Defaults {
	d := ConstantDefaults()

	if src.User != nil {
		for _, key := range userKeys {
			if src.User.IsSet(key) {
				if v := src.User.GetString(key); v != "" {
					setString(&d, key, v)
				}
			}
		}
	}

	fromManifest(&d, src.Existing)

	if src.Persisted != nil {
		for _, key := range stringKeys {
			if src.Persisted.IsSet(key) {
				setString(&d, key, src.Persisted.GetString(key))
			}
		}
		for _, key := range boolKeys {
			if src.Persisted.IsSet(key) {
				setBool(&d, key, src.Persisted.GetBool(key))
			}
		}
	}

	if d.Scope == "" && strings.HasPrefix(d.Name, "@") {
		d.Scope = naming.GetScope(d.Name)
	}
	d.Name = naming.GetBasicName(d.Name)
	d.Scope = naming.GetScope(d.Scope)
	return d
}

// fromManifest copies the fields of an existing package.json that double
// as answers.
func fromManifest(d *Defaults, m *manifest.Object) {
	if m == nil {
		return
	}

	if name := m.GetString("name"); name != "" {
		d.Name = naming.GetBasicName(name)
		if scope := naming.GetScope(name); scope != "" {
			d.Scope = scope
		}
	}
	if desc := m.GetString("description"); desc != "" {
		d.Description = desc
	}
	if name := m.GetString("license"); name != "" {
		if key, ok := license.KeyForName(name); ok {
			d.License = key
		}
	}
	if author := manifestAuthor(m); author != "" {
		d.Author = author
	}
}

// manifestAuthor reads "author" as either a string or a {name, email}
// object, rendering the latter as "name <email>".
func manifestAuthor(m *manifest.Object) string {
	if s := m.GetString("author"); s != "" {
		return s
	}
	obj, ok := m.GetObject("author")
	if !ok {
		return ""
	}
	name, email := obj.GetString("name"), obj.GetString("email")
	switch {
	case name != "" && email != "":
		return name + " <" + email + ">"
	case name != "":
		return name
	default:
		return email
	}
}

func setString(d *Defaults, key, v string) {
	switch key {
	case project.KeyName:
		d.Name = v
	case project.KeyScope:
		d.Scope = v
	case project.KeyAuthor:
		d.Author = v
	case project.KeyDescription:
		d.Description = v
	case project.KeyLicense:
		d.License = v
	case project.KeyPluginType:
		d.PluginType = v
	case project.KeyBuilder:
		d.Builder = v
	}
}

func setBool(d *Defaults, key string, v bool) {
	switch key {
	case project.KeyCSS:
		d.CSS = v
	case project.KeyDocs:
		d.Docs = v
	case project.KeyLang:
		d.Lang = v
	case project.KeyLibrary:
		d.Library = v
	case project.KeyPrecommit:
		d.Precommit = v
	case project.KeyPrepush:
		d.Prepush = v
	}
}
