package prompt

import (
	"fmt"
	"sort"

	"github.com/videojs/vjsplugin/internal/license"
	"github.com/videojs/vjsplugin/internal/project"
)

// Policy is an organization's fixed answers. Non-empty fields override the
// defaults and remove the matching prompt.
type Policy struct {
	Name    string
	Author  string
	License string
	Scope   string
}

// Skip records the option keys whose prompt must not be shown.
type Skip map[string]bool

var policies = map[string]Policy{
	"brightcove": {
		Name:    "brightcove",
		Author:  "Brightcove, Inc.",
		License: license.Private,
		Scope:   "brightcove",
	},
}

// LookupPolicy returns the built-in policy called name.
func LookupPolicy(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		return Policy{}, fmt.Errorf("unknown policy %q: must be one of %v", name, PolicyNames())
	}
	return p, nil
}

// PolicyNames returns the built-in policy names, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for n := range policies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ApplyPolicy returns d with p's fields forced, plus the prompts p makes
// unnecessary. d is not modified.
func ApplyPolicy(d Defaults, p Policy) (Defaults, Skip) {
	skip := Skip{}
	if p.Author != "" {
		d.Author = p.Author
		skip[project.KeyAuthor] = true
	}
	if p.License != "" {
		d.License = p.License
		skip[project.KeyLicense] = true
	}
	if p.Scope != "" {
		d.Scope = p.Scope
		skip[project.KeyScope] = true
	}
	return d, skip
}
