// Package scaffold writes a video.js plugin project to disk. It powers the
// "vjsplugin create" command: it renders the embedded templates selected by
// the project options, synthesizes package.json over any existing one,
// records the answers for later regeneration, and optionally initializes git
// and installs dependencies.
package scaffold
