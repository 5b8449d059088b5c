package manifest

import "fmt"

// ConfigurationError reports a generation context that cannot produce a
// valid manifest.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}
