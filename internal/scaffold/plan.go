package scaffold

import (
	"github.com/videojs/vjsplugin/internal/license"
	"github.com/videojs/vjsplugin/internal/project"
)

// File is one entry of the generation plan.
type File struct {
	Path     string // output path relative to the project, slash separated
	Template string // template path inside the embedded templates directory
	Keep     bool   // an existing copy is user content and is left alone
	Merge    bool   // missing lines are appended to an existing copy
}

// Plan returns the files generated for ctx, in write order.
func Plan(ctx *project.Context) []File {
	files := []File{
		{Path: ".editorconfig", Template: "editorconfig.tmpl"},
		{Path: ".gitignore", Template: "gitignore.tmpl", Merge: true},
		{Path: ".npmignore", Template: "npmignore.tmpl"},
		{Path: "CHANGELOG.md", Template: "CHANGELOG.md.tmpl", Keep: true},
		{Path: "CONTRIBUTING.md", Template: "CONTRIBUTING.md.tmpl"},
	}

	if ctx.Builder == project.BuilderGrunt {
		files = append(files, File{Path: "Gruntfile.js", Template: "Gruntfile.js.tmpl"})
	}

	if tmpl := license.Template(ctx.License); tmpl != "" {
		files = append(files, File{Path: "LICENSE", Template: "license/" + tmpl + ".tmpl"})
	}

	files = append(files,
		File{Path: "README.md", Template: "README.md.tmpl", Keep: true},
		File{Path: "index.html", Template: "index.html.tmpl"},
	)

	if ctx.Lang {
		files = append(files, File{Path: "lang/en.json", Template: "lang/en.json.tmpl", Keep: true})
	}

	files = append(files, File{Path: "scripts/karma.conf.js", Template: "scripts/karma.conf.js.tmpl"})
	if ctx.Docs {
		files = append(files, File{Path: "scripts/jsdoc.json", Template: "scripts/jsdoc.json.tmpl"})
	}
	if ctx.CSS {
		files = append(files, File{Path: "scripts/postcss.config.js", Template: "scripts/postcss.config.js.tmpl"})
	}
	if ctx.Builder == project.BuilderNPM {
		files = append(files, File{Path: "scripts/rollup.config.js", Template: "scripts/rollup.config.js.tmpl"})
	}

	if ctx.CSS {
		files = append(files, File{Path: "src/plugin.css", Template: "src/plugin.css.tmpl", Keep: true})
	}
	pluginTmpl := "src/plugin-basic.js.tmpl"
	if ctx.IsAdvanced() {
		pluginTmpl = "src/plugin-advanced.js.tmpl"
	}
	files = append(files,
		File{Path: "src/plugin.js", Template: pluginTmpl, Keep: true},
		File{Path: "test/plugin.test.js", Template: "test/plugin.test.js.tmpl", Keep: true},
	)

	return files
}
