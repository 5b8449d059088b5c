// Package license maps the license choices offered by the generator to the
// canonical SPDX names written to package.json and to the license text
// template rendered into LICENSE.
package license

import "sort"

// Supported license keys.
const (
	Apache2 = "apache2"
	MIT     = "mit"
	ISC     = "isc"
	Private = "private"
)

// Choice describes one selectable license.
type Choice struct {
	Key      string // internal key, e.g. "apache2"
	Name     string // canonical manifest value, e.g. "Apache-2.0"
	Label    string // prompt label
	Template string // license text template, empty for closed source
}

var choices = map[string]Choice{
	Apache2: {Key: Apache2, Name: "Apache-2.0", Label: "Apache-2.0", Template: "LICENSE-apache2"},
	MIT:     {Key: MIT, Name: "MIT", Label: "MIT", Template: "LICENSE-mit"},
	ISC:     {Key: ISC, Name: "ISC", Label: "ISC", Template: "LICENSE-isc"},
	Private: {Key: Private, Name: "UNLICENSED", Label: "Private/Closed Source"},
}

// Lookup returns the choice registered under key.
func Lookup(key string) (Choice, bool) {
	c, ok := choices[key]
	return c, ok
}

// Name returns the canonical manifest name for key, or "" for unknown keys.
func Name(key string) string {
	return choices[key].Name
}

// Template returns the license text template for key. Unknown keys and the
// private license have no template.
func Template(key string) string {
	return choices[key].Template
}

// IsPrivate reports whether key selects the closed-source license.
func IsPrivate(key string) bool {
	return key == Private
}

// KeyForName performs the reverse lookup from a canonical manifest name
// (e.g. "MIT") to its key. The second result is false when no choice uses
// that name.
func KeyForName(name string) (string, bool) {
	for _, c := range choices {
		if c.Name == name {
			return c.Key, true
		}
	}
	return "", false
}

// Choices returns all license choices ordered by key.
func Choices() []Choice {
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
