// Package prompt resolves the default answers offered to the user and asks
// the generation questions.
//
// Defaults come from four layers, highest precedence first: the answers
// persisted by a previous run, the fields of an existing package.json, the
// user's config (~/.vjsplugin/config.yaml) and the built-in constants. An
// organization Policy may then force some answers and skip their prompts.
// An Asker turns the defaults into final options, either through an
// interactive form or, for --yes runs, by accepting them as they are.
package prompt
