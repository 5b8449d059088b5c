//go:build integration

package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/videojs/vjsplugin/internal/config"
	"github.com/videojs/vjsplugin/internal/manifest"
	"github.com/videojs/vjsplugin/internal/prompt"
)

// TestFullFlowGenerateAndRegenerate tests the complete flow:
// user config -> generate with git -> user edits -> regenerate from answers.
func TestFullFlowGenerateAndRegenerate(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.HomeDir, ".gitconfig"), "[user]\n\tname = Git User\n\temail = git@example.com\n")

	// Step 1: User-level defaults.
	if err := config.Set(config.KeyLicense, "apache2"); err != nil {
		t.Fatalf("config.Set: %v", err)
	}
	if err := config.Set(config.KeyBuilder, "npm"); err != nil {
		t.Fatalf("config.Set: %v", err)
	}

	// Step 2: First generation.
	result := generate(t, env.ProjectDir, "", func(d *prompt.Defaults) {
		d.Name = "videojs-fancy-thing"
		d.Author = "Jane Doe"
		d.CSS = true
	})
	if !result.GitInit {
		t.Error("expected a git repository to be initialized")
	}
	assertDirExists(t, filepath.Join(env.ProjectDir, ".git"))
	assertFileContains(t, filepath.Join(env.ProjectDir, "LICENSE"), "Apache License")
	assertFileContains(t, filepath.Join(env.ProjectDir, "src", "plugin.js"), "class FancyThing extends Plugin")
	assertFileContains(t, filepath.Join(env.ProjectDir, "package.json"), `"license": "Apache-2.0"`)
	assertFileExists(t, filepath.Join(env.ProjectDir, "src", "plugin.css"))

	// Step 3: User edits the project.
	pkgPath := filepath.Join(env.ProjectDir, "package.json")
	m, err := manifest.ParseFile(pkgPath)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	m.Set("version", "1.1.0")
	m.Set("homepage", "https://example.com/fancy")
	scripts, _ := m.GetObject("scripts")
	scripts.Set("deploy", "echo deploy")
	if err := manifest.WriteFile(pkgPath, m); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	writeFile(t, filepath.Join(env.ProjectDir, "src", "plugin.js"), "// mine\n")

	// Step 4: Regenerate, enabling docs; everything else comes from the answers file.
	result = generate(t, env.ProjectDir, "", func(d *prompt.Defaults) { d.Docs = true })
	if result.GitInit {
		t.Error("existing repository should not be re-initialized")
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	regenerated, err := manifest.ParseFile(pkgPath)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if regenerated.GetString("name") != "videojs-fancy-thing" {
		t.Errorf("name = %q", regenerated.GetString("name"))
	}
	if regenerated.GetString("version") != "1.1.0" {
		t.Errorf("version = %q, want the user's 1.1.0", regenerated.GetString("version"))
	}
	if regenerated.GetString("homepage") != "https://example.com/fancy" {
		t.Error("user field homepage lost")
	}
	regenScripts, _ := regenerated.GetObject("scripts")
	for _, k := range []string{"deploy", "build:css", "docs", "docs:api", "docs:toc"} {
		if !regenScripts.Has(k) {
			t.Errorf("script %q missing after regeneration", k)
		}
	}
	assertFileContains(t, filepath.Join(env.ProjectDir, "src", "plugin.js"), "// mine")
	assertFileExists(t, filepath.Join(env.ProjectDir, "scripts", "jsdoc.json"))
	assertFileContains(t, filepath.Join(env.ProjectDir, ".vjsplugin.yaml"), "docs: true")

	// Step 5: Regenerate with docs turned back off.
	generate(t, env.ProjectDir, "", func(d *prompt.Defaults) { d.Docs = false })
	final, err := manifest.ParseFile(pkgPath)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	finalScripts, _ := final.GetObject("scripts")
	for _, k := range []string{"docs", "docs:api", "docs:toc"} {
		if finalScripts.Has(k) {
			t.Errorf("script %q kept after disabling docs", k)
		}
	}
	if !finalScripts.Has("deploy") || !finalScripts.Has("build:css") {
		t.Errorf("scripts = %v, want deploy and build:css kept", finalScripts.Keys())
	}
}

// TestFullFlowPolicy generates a closed-source scoped plugin through the
// built-in organization policy.
func TestFullFlowPolicy(t *testing.T) {
	env := setupTestEnv(t)

	generate(t, env.ProjectDir, "brightcove", func(d *prompt.Defaults) {
		d.Name = "player-stats"
	})

	pkgPath := filepath.Join(env.ProjectDir, "package.json")
	assertFileContains(t, pkgPath, `"name": "@brightcove/videojs-player-stats"`)
	assertFileContains(t, pkgPath, `"author": "Brightcove, Inc."`)
	assertFileContains(t, pkgPath, `"license": "UNLICENSED"`)
	assertFileContains(t, pkgPath, `"private": true`)
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "LICENSE"))

	result, err := manifest.ValidateFile(pkgPath)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Errorf("generated manifest is invalid: %v", result.Issues)
	}
}

// TestFullFlowAdoptExistingPackage regenerates over a hand-written
// package.json that was never produced by the generator.
func TestFullFlowAdoptExistingPackage(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.ProjectDir, "package.json"), `{
  "name": "@acme/videojs-legacy",
  "version": "3.2.1",
  "description": "An old plugin",
  "author": {"name": "Old Team", "email": "team@acme.test"},
  "license": "ISC",
  "keywords": ["legacy"],
  "scripts": {"build": "make"}
}
`)

	generate(t, env.ProjectDir, "", nil)

	m, err := manifest.ParseFile(filepath.Join(env.ProjectDir, "package.json"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if m.GetString("name") != "@acme/videojs-legacy" || m.GetString("version") != "3.2.1" {
		t.Errorf("name/version = %q/%q", m.GetString("name"), m.GetString("version"))
	}
	if m.GetString("author") != "Old Team <team@acme.test>" {
		t.Errorf("author = %q", m.GetString("author"))
	}
	if m.GetString("license") != "ISC" {
		t.Errorf("license = %q", m.GetString("license"))
	}
	kw, _ := m.Get("keywords")
	if got, ok := kw.([]any); !ok || len(got) != 3 || got[0] != "legacy" {
		t.Errorf("keywords = %v, want legacy plus the generator keywords", kw)
	}
	assertFileContains(t, filepath.Join(env.ProjectDir, "LICENSE"), "Old Team")
}
