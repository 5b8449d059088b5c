// Package runtime runs the JavaScript package manager that installs a
// generated project's dependencies. DispatchInstaller selects the
// implementation for a package manager name.
package runtime
