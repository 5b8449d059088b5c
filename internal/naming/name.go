package naming

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	namePattern  = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	scopePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
)

// ValidationError reports a name or scope that does not match the naming
// grammar.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ValidateName checks a user-supplied plugin name. Scoped ("@scope/name") and
// prefixed ("videojs-name") input is accepted as long as the basic name
// matches [a-z][a-z0-9-]*.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Value: name, Reason: "must not be empty"}
	}
	if strings.Count(name, "/") > 1 || (strings.Contains(name, "/") && !strings.HasPrefix(name, "@")) {
		return &ValidationError{Field: "name", Value: name, Reason: "only a single @scope/ segment is allowed"}
	}
	basic := GetBasicName(name)
	if basic == "" {
		return &ValidationError{Field: "name", Value: name, Reason: "must contain more than the " + Prefix + " prefix"}
	}
	if !namePattern.MatchString(basic) {
		return &ValidationError{Field: "name", Value: name, Reason: "must match [a-z][a-z0-9-]*"}
	}
	if strings.HasSuffix(basic, "-") || strings.Contains(basic, "--") {
		return &ValidationError{Field: "name", Value: name, Reason: "hyphens must separate words"}
	}
	return nil
}

// ValidateScope checks a user-supplied npm scope. The empty scope is valid.
func ValidateScope(scope string) error {
	s := strings.TrimPrefix(strings.TrimSpace(scope), "@")
	if s == "" {
		return nil
	}
	if !scopePattern.MatchString(s) {
		return &ValidationError{Field: "scope", Value: scope, Reason: "must match [a-z0-9][a-z0-9._-]*"}
	}
	return nil
}

// Name holds every derived representation of a plugin name.
type Name struct {
	Basic    string `json:"basicName"`
	Prefixed string `json:"prefixedName"`
	Scope    string `json:"scope,omitempty"`
	Package  string `json:"packageName"`
	Function string `json:"functionName"`
	Class    string `json:"className"`
	Module   string `json:"moduleName"`
}

// New validates name and scope and derives all name variants. A scope
// embedded in name ("@scope/name") is used when scope is empty.
func New(name, scope string) (Name, error) {
	if err := ValidateName(name); err != nil {
		return Name{}, err
	}
	if err := ValidateScope(scope); err != nil {
		return Name{}, err
	}

	s := GetScope(scope)
	if s == "" && strings.HasPrefix(name, "@") {
		s = GetScope(name)
	}

	return Name{
		Basic:    GetBasicName(name),
		Prefixed: GetPrefixedName(name),
		Scope:    s,
		Package:  GetPackageName(name, s),
		Function: GetPluginFunctionName(name),
		Class:    GetPluginClassName(name),
		Module:   GetModuleName(name),
	}, nil
}

// ScopeDisplay returns the scope rendered with its leading "@", or "".
func (n Name) ScopeDisplay() string {
	if n.Scope == "" {
		return ""
	}
	return "@" + n.Scope
}
