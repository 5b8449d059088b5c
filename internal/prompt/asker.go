package prompt

import (
	"fmt"
	"strings"

	"github.com/videojs/vjsplugin/internal/naming"
	"github.com/videojs/vjsplugin/internal/project"
)

// Asker turns defaults into the final options of a run.
type Asker interface {
	Ask(d Defaults, skip Skip) (project.Options, error)
}

// StaticAsker accepts the defaults without asking anything. It is used for
// non-interactive runs, where the name has to come from a flag or a
// previous run.
type StaticAsker struct{}

// Ask validates d and returns it unchanged.
func (StaticAsker) Ask(d Defaults, _ Skip) (project.Options, error) {
	if err := naming.ValidateName(d.Name); err != nil {
		return project.Options{}, fmt.Errorf("non-interactive run: %w", err)
	}
	if err := naming.ValidateScope(d.Scope); err != nil {
		return project.Options{}, fmt.Errorf("non-interactive run: %w", err)
	}
	return normalize(d), nil
}

// questions lists the option keys that will be asked, in order.
func questions(skip Skip) []string {
	var keys []string
	for _, group := range [][]string{stringKeys, boolKeys} {
		for _, k := range group {
			if !skip[k] {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// normalize reduces the name to its basic form. A scope is only taken from
// the name when the name itself is scoped.
func normalize(o project.Options) project.Options {
	if o.Scope == "" {
		if strings.HasPrefix(o.Name, "@") {
			o.Scope = naming.GetScope(o.Name)
		}
	} else {
		o.Scope = naming.GetScope(o.Scope)
	}
	o.Name = naming.GetBasicName(o.Name)
	return o
}
