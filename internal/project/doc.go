// Package project defines the generation options a user chooses, the
// GenerationContext built from them once per run, and the per-project
// answers file (.vjsplugin.yaml) that lets a project be regenerated with the
// same choices.
//
// CompareVersions and GeneratedByNewer compare the generator version an
// answers file was written with against the running one.
package project
