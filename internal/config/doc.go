// Package config manages user-level settings stored at ~/.vjsplugin/config.yaml.
// The stored keys (author, license, scope, builder, policy) become prompt
// defaults for every plugin the user generates.
package config
