// Package manifest synthesizes the package.json of a generated plugin.
//
// Manifests are held as ordered objects (Object) so that key order is an
// explicit property of the data rather than an accident of map iteration.
// Synthesize builds the generated manifest from a project.Context, layers in
// builder and feature fragments, merges it over any existing package.json and
// re-sorts the dependency-like collections. Marshal writes the result with
// two-space indentation, and Validate checks it against an embedded JSON
// schema.
package manifest
