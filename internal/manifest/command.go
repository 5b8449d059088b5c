package manifest

import (
	"fmt"
	"strings"
)

const placeholder = "%s"

// CommandTemplate is a shell command with "%s" placeholders, filled in with
// Build. The number of placeholders is fixed when the template is created.
type CommandTemplate struct {
	parts []string
}

// NewCommandTemplate parses tmpl and checks that it has exactly want
// placeholders.
func NewCommandTemplate(tmpl string, want int) (CommandTemplate, error) {
	parts := strings.Split(tmpl, placeholder)
	if got := len(parts) - 1; got != want {
		return CommandTemplate{}, fmt.Errorf("command template %q has %d placeholders, want %d", tmpl, got, want)
	}
	return CommandTemplate{parts: parts}, nil
}

// MustCommandTemplate is like NewCommandTemplate but panics on mismatch. It
// is meant for package-level templates.
func MustCommandTemplate(tmpl string, want int) CommandTemplate {
	t, err := NewCommandTemplate(tmpl, want)
	if err != nil {
		panic(err)
	}
	return t
}

// Placeholders returns the number of values Build expects.
func (t CommandTemplate) Placeholders() int {
	if len(t.parts) == 0 {
		return 0
	}
	return len(t.parts) - 1
}

// Build substitutes args into the template.
func (t CommandTemplate) Build(args ...string) (string, error) {
	if len(args) != t.Placeholders() {
		return "", fmt.Errorf("command template needs %d values, got %d", t.Placeholders(), len(args))
	}
	if len(t.parts) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(t.parts[0])
	for i, arg := range args {
		b.WriteString(arg)
		b.WriteString(t.parts[i+1])
	}
	return b.String(), nil
}
