// Package vcs wraps the git operations the generator needs: reading the
// user's identity from the global git config and initializing a repository
// in a freshly generated project.
package vcs
