package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Prefix is the mandatory package name prefix for video.js plugins.
const Prefix = "videojs-"

// GetScope returns the npm scope contained in input without its leading "@".
// It accepts "scope", "@scope" and "@scope/name". Anything that is not a
// recognizable scope yields "".
func GetScope(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	hasAt := strings.HasPrefix(s, "@")
	s = strings.TrimPrefix(s, "@")

	if before, _, found := strings.Cut(s, "/"); found {
		// "foo/bar" is a path, not a scoped name.
		if !hasAt {
			return ""
		}
		s = before
	}

	if !scopePattern.MatchString(s) {
		return ""
	}
	return s
}

// GetBasicName reduces name to its basic form: the last "/" segment with every
// leading "videojs-" prefix removed. It is idempotent.
func GetBasicName(name string) string {
	segments := strings.Split(strings.TrimSpace(name), "/")
	basic := segments[len(segments)-1]
	for strings.HasPrefix(basic, Prefix) {
		basic = strings.TrimPrefix(basic, Prefix)
	}
	return basic
}

// GetPrefixedName returns the basic form of name with the "videojs-" prefix.
func GetPrefixedName(name string) string {
	basic := GetBasicName(name)
	if basic == "" {
		return ""
	}
	return Prefix + basic
}

// GetPackageName returns the npm package name: "@scope/videojs-name" when a
// scope is present, "videojs-name" otherwise.
func GetPackageName(name, scope string) string {
	prefixed := GetPrefixedName(name)
	if prefixed == "" {
		return ""
	}
	if s := GetScope(scope); s != "" {
		return "@" + s + "/" + prefixed
	}
	return prefixed
}

// GetPluginFunctionName returns the lower camel case basic name ("foo-bar" → "fooBar").
func GetPluginFunctionName(name string) string {
	return strcase.ToLowerCamel(GetBasicName(name))
}

// GetPluginClassName returns the upper camel case basic name ("foo-bar" → "FooBar").
func GetPluginClassName(name string) string {
	return strcase.ToCamel(GetBasicName(name))
}

// GetModuleName returns the lower camel case prefixed name ("foo-bar" → "videojsFooBar").
func GetModuleName(name string) string {
	return strcase.ToLowerCamel(GetPrefixedName(name))
}
