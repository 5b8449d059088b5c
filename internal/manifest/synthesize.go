package manifest

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/videojs/vjsplugin/internal/naming"
	"github.com/videojs/vjsplugin/internal/project"
)

// DefaultVersion is the version given to a brand new plugin.
const DefaultVersion = "0.0.0"

// Synthesize produces the package.json for ctx. The generated fields are
// merged over existing (which may be nil) following Merge, the collections
// are re-sorted, and "private" is set only for closed-source projects.
// existing is not modified.
func Synthesize(existing *Object, ctx *project.Context) (*Object, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	version, err := resolveVersion(existing, ctx.Version)
	if err != nil {
		return nil, err
	}

	on, off := fragmentsFor(ctx)
	generated := NewObject()
	for _, frag := range on {
		part, err := frag(ctx)
		if err != nil {
			return nil, fmt.Errorf("building manifest fragment: %w", err)
		}
		layer(generated, part)
	}
	generated = withVersion(generated, version)

	merged := Merge(existing, generated)
	if existing != nil {
		if err := dropDisabled(merged, generated, ctx, off); err != nil {
			return nil, err
		}
	}
	alphabetize(merged)

	if ctx.LicenseName == "" {
		merged.Delete("license")
	}
	if ctx.IsPrivate() {
		merged.Set("private", true)
	} else {
		merged.Delete("private")
	}

	return merged, nil
}

func checkContext(ctx *project.Context) error {
	if ctx == nil {
		return &ConfigurationError{Field: "context", Reason: "is missing"}
	}
	if ctx.Names.Basic == "" || ctx.Names.Package == "" {
		return &ConfigurationError{Field: "name", Reason: "is required"}
	}
	if err := naming.ValidateName(ctx.Names.Basic); err != nil {
		return &ConfigurationError{Field: "name", Reason: err.Error()}
	}
	if !project.ValidBuilder(ctx.Builder) {
		return &ConfigurationError{Field: "builder", Reason: fmt.Sprintf("unknown builder %q", ctx.Builder)}
	}
	if !project.ValidPluginType(ctx.PluginType) {
		return &ConfigurationError{Field: "pluginType", Reason: fmt.Sprintf("unknown plugin type %q", ctx.PluginType)}
	}
	return nil
}

// dropDisabled removes from m what the fragments in off contribute, so that
// turning a feature or builder off on regeneration takes its scripts and
// dependencies with it. Entries an applied fragment also generates stay, as
// do entries the user added. Other top-level keys are only removed while
// they still hold the generated value.
func dropDisabled(m, generated *Object, ctx *project.Context, off []fragment) error {
	for _, frag := range off {
		part, err := frag(ctx)
		if err != nil {
			return fmt.Errorf("building manifest fragment: %w", err)
		}
		for _, key := range part.keys {
			if !slices.Contains(collectionKeys, key) {
				if v, ok := m.Get(key); ok && !generated.Has(key) && reflect.DeepEqual(v, part.values[key]) {
					m.Delete(key)
				}
				continue
			}
			coll, ok := m.GetObject(key)
			if !ok {
				continue
			}
			owned, _ := part.GetObject(key)
			kept, _ := generated.GetObject(key)
			for _, k := range owned.Keys() {
				if !kept.Has(k) {
					coll.Delete(k)
				}
			}
		}
	}
	return nil
}

// resolveVersion picks the package version: an explicit version wins, then
// a valid semver version from the existing manifest, then DefaultVersion.
func resolveVersion(existing *Object, explicit string) (string, error) {
	if explicit != "" {
		v, err := semver.StrictNewVersion(explicit)
		if err != nil {
			return "", &ConfigurationError{Field: "version", Reason: fmt.Sprintf("%q is not a semantic version", explicit)}
		}
		return v.String(), nil
	}
	if current := existing.GetString("version"); current != "" {
		if v, err := semver.StrictNewVersion(current); err == nil {
			return v.String(), nil
		}
	}
	return DefaultVersion, nil
}

// withVersion returns m with "version" inserted right after "name".
func withVersion(m *Object, version string) *Object {
	out := NewObject()
	for _, k := range m.keys {
		out.Set(k, m.values[k])
		if k == "name" {
			out.Set("version", version)
		}
	}
	if !out.Has("version") {
		out.Set("version", version)
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
