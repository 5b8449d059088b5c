package manifest

import (
	"fmt"

	"github.com/videojs/vjsplugin/internal/project"
)

// GeneratorKey holds the generator metadata block in package.json.
const GeneratorKey = "generator-videojs-plugin"

var (
	buildCSSNPM   = MustCommandTemplate("postcss --verbose -o dist/%s.css --config scripts/postcss.config.js src/plugin.css", 1)
	cleanNPM      = MustCommandTemplate("shx rm -rf ./dist ./test/dist %s && shx mkdir -p ./dist ./test/dist %s", 2)
	serverCommand = MustCommandTemplate("karma start scripts/karma.conf.js --singleRun=false --auto-watch", 0)
)

// fragment returns the additions one part of the configuration makes to
// the manifest. Fragments are combined with layer.
type fragment func(ctx *project.Context) (*Object, error)

// baseFragment holds the fields every generated plugin gets, regardless of
// builder and features.
func baseFragment(ctx *project.Context) (*Object, error) {
	prefixed := ctx.Names.Prefixed

	m := NewObject()
	m.Set("name", ctx.Names.Package)
	m.Set("description", ctx.Description)
	m.Set("main", fmt.Sprintf("dist/%s.cjs.js", prefixed))
	m.Set("module", fmt.Sprintf("dist/%s.es.js", prefixed))
	m.Set(GeneratorKey, pairs("version", ctx.GeneratorVersion))
	m.Set("browserslist", list("defaults", "ie 11"))
	m.Set("engines", pairs("node", ">=14", "npm", ">=6"))
	m.Set(keyScripts, pairs(
		"lint", "vjsstandard",
		"preversion", "npm test",
		"update-changelog", "conventional-changelog -p videojs -i CHANGELOG.md -s",
		"version", "is-prerelease || npm run update-changelog && git add CHANGELOG.md",
	))
	m.Set(keyKeywords, list("videojs", "videojs-plugin"))
	m.Set("author", ctx.Author)
	if ctx.LicenseName != "" {
		m.Set("license", ctx.LicenseName)
	}
	m.Set("vjsstandard", NewObject().Set("ignore", list("dist", "docs", "test/dist")))
	m.Set("files", list("CONTRIBUTING.md", "dist/", "docs/", "index.html", "scripts/", "src/", "test/"))
	m.Set(keyDependencies, pairs(
		"global", "^4.4.0",
		"video.js", "^6 || ^7 || ^8",
	))
	m.Set(keyDevDependencies, pairs(
		"conventional-changelog-cli", "^2.2.2",
		"conventional-changelog-videojs", "^3.0.2",
		"karma", "^6.4.2",
		"not-prerelease", "^1.0.1",
		"qunit", "^2.19.4",
		"sinon", "^15.0.4",
		"videojs-generate-karma-config", "^8.0.1",
		"videojs-standard", "^9.0.1",
	))
	return m, nil
}

func npmBuilderFragment(ctx *project.Context) (*Object, error) {
	extra := ""
	if ctx.Library {
		extra = "./es ./cjs"
	}
	clean, err := cleanNPM.Build(extra, extra)
	if err != nil {
		return nil, err
	}
	server, err := serverCommand.Build()
	if err != nil {
		return nil, err
	}

	m := NewObject()
	m.Set(keyScripts, pairs(
		"build", "npm-run-all -s clean -p build:*",
		"build:js", "rollup -c scripts/rollup.config.js",
		"clean", collapseSpaces(clean),
		"server", server,
		"start", "npm-run-all -p server watch",
		"test", "npm-run-all lint build && karma start scripts/karma.conf.js",
		"posttest", "shx cat test/dist/coverage/text.txt",
		"watch", "npm-run-all -p watch:*",
		"watch:js", "npm run build:js -- -w",
	))
	m.Set(keyDevDependencies, pairs(
		"npm-run-all", "^4.1.5",
		"rollup", "^2.79.1",
		"shx", "^0.3.4",
		"videojs-generate-rollup-config", "^7.0.1",
	))
	return m, nil
}

func gruntBuilderFragment(ctx *project.Context) (*Object, error) {
	m := NewObject()
	m.Set(keyScripts, pairs(
		"build", "grunt build",
		"clean", "grunt clean",
		"start", "grunt watch",
		"test", "grunt test",
	))
	m.Set(keyDevDependencies, pairs(
		"grunt", "^1.6.1",
		"grunt-cli", "^1.4.3",
		"grunt-contrib-clean", "^2.0.1",
		"grunt-contrib-watch", "^1.1.0",
		"grunt-karma", "^4.0.2",
		"grunt-rollup", "^11.9.0",
		"load-grunt-tasks", "^5.1.0",
		"videojs-generate-rollup-config", "^7.0.1",
	))
	return m, nil
}

func cssFragment(ctx *project.Context) (*Object, error) {
	m := NewObject()
	switch ctx.Builder {
	case project.BuilderGrunt:
		m.Set(keyScripts, pairs("build:css", "grunt postcss"))
		m.Set(keyDevDependencies, pairs(
			"grunt-postcss", "^0.9.0",
			"videojs-generate-postcss-config", "^3.0.1",
		))
	default:
		cmd, err := buildCSSNPM.Build(ctx.Names.Prefixed)
		if err != nil {
			return nil, err
		}
		m.Set(keyScripts, pairs(
			"build:css", cmd,
			"watch:css", "npm run build:css -- -w",
		))
		m.Set(keyDevDependencies, pairs(
			"postcss-cli", "^10.1.0",
			"videojs-generate-postcss-config", "^3.0.1",
		))
	}
	return m, nil
}

func docsFragment(ctx *project.Context) (*Object, error) {
	m := NewObject()
	m.Set(keyScripts, pairs(
		"docs", "npm-run-all docs:*",
		"docs:api", "jsdoc src -c scripts/jsdoc.json -r -d docs/api",
		"docs:toc", "doctoc --notitle README.md",
	))
	m.Set(keyDevDependencies, pairs(
		"doctoc", "^2.2.1",
		"jsdoc", "^4.0.2",
		"npm-run-all", "^4.1.5",
	))
	return m, nil
}

func langFragment(ctx *project.Context) (*Object, error) {
	m := NewObject()
	m.Set(keyScripts, pairs("build:lang", "vjslang --dir dist/lang"))
	m.Set("files", list("lang/"))
	m.Set(keyDevDependencies, pairs("videojs-languages", "^2.0.0"))
	return m, nil
}

func libraryFragment(ctx *project.Context) (*Object, error) {
	prefixed := ctx.Names.Prefixed
	m := NewObject()
	m.Set("browser", fmt.Sprintf("dist/%s.js", prefixed))
	m.Set(keyScripts, pairs("prepublishOnly", "npm-run-all build && vjsverify --verbose"))
	m.Set("files", list("cjs/", "es/"))
	m.Set(keyDevDependencies, pairs("videojs-generator-verify", "^4.1.0"))
	return m, nil
}

func precommitFragment(ctx *project.Context) (*Object, error) {
	m := NewObject()
	m.Set("husky", NewObject().Set("hooks", pairs("pre-commit", "lint-staged")))
	m.Set("lint-staged", pairs(
		"*.js", "vjsstandard --fix",
		"README.md", "doctoc --notitle",
	))
	m.Set(keyDevDependencies, pairs(
		"husky", "^4.3.8",
		"lint-staged", "^13.2.2",
	))
	return m, nil
}

func prepushFragment(ctx *project.Context) (*Object, error) {
	m := NewObject()
	m.Set("husky", NewObject().Set("hooks", pairs("pre-push", "npm run test")))
	m.Set(keyDevDependencies, pairs("husky", "^4.3.8"))
	return m, nil
}

// fragmentsFor splits the fragments into those that apply to ctx, in
// layering order, and those that do not.
func fragmentsFor(ctx *project.Context) (on, off []fragment) {
	grunt := ctx.Builder == project.BuilderGrunt
	for _, f := range []struct {
		on   bool
		frag fragment
	}{
		{true, baseFragment},
		{!grunt, npmBuilderFragment},
		{grunt, gruntBuilderFragment},
		{ctx.CSS, cssFragment},
		{ctx.Docs, docsFragment},
		{ctx.Lang, langFragment},
		{ctx.Library, libraryFragment},
		{ctx.Precommit, precommitFragment},
		{ctx.Prepush, prepushFragment},
	} {
		if f.on {
			on = append(on, f.frag)
		} else {
			off = append(off, f.frag)
		}
	}
	return on, off
}
