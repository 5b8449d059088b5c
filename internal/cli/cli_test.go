package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/videojs/vjsplugin/internal/manifest"
	"github.com/videojs/vjsplugin/internal/project"
	"github.com/videojs/vjsplugin/internal/prompt"
)

// execute runs the root command with args in an isolated home and returns
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("VJSPLUGIN_HOME", filepath.Join(home, ".vjsplugin"))
	t.Cleanup(viper.Reset)

	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

// resetFlags restores every flag of cmd and its children to its default so
// that state does not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestNamesCommand(t *testing.T) {
	out, err := execute(t, "names", "@acme/videojs-foo-bar")
	if err != nil {
		t.Fatalf("names error: %v", err)
	}
	for _, want := range []string{"foo-bar", "videojs-foo-bar", "@acme", "@acme/videojs-foo-bar", "fooBar", "FooBar", "videojsFooBar"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNamesCommandJSON(t *testing.T) {
	out, err := execute(t, "names", "foo", "--scope", "org", "--json")
	if err != nil {
		t.Fatalf("names error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got["packageName"] != "@org/videojs-foo" || got["className"] != "Foo" {
		t.Errorf("names = %v", got)
	}
}

func TestNamesCommandRejectsInvalidName(t *testing.T) {
	if _, err := execute(t, "names", "Not Valid"); err == nil {
		t.Fatal("expected error for invalid name")
	}
}

func TestManifestCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "manifest", dir, "--name", "thing", "--license", "private", "--docs", "--author", "Jane")
	if err != nil {
		t.Fatalf("manifest error: %v", err)
	}

	m, err := manifest.Parse([]byte(out))
	if err != nil {
		t.Fatalf("output is not a manifest: %v\n%s", err, out)
	}
	if m.GetString("name") != "videojs-thing" {
		t.Errorf("name = %q", m.GetString("name"))
	}
	if v, _ := m.Get("private"); v != true {
		t.Errorf("private = %v, want true", v)
	}
	scripts, _ := m.GetObject("scripts")
	if !scripts.Has("docs:api") {
		t.Error("docs scripts missing")
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("manifest wrote files: %v", entries)
	}
}

func TestManifestCommandRequiresName(t *testing.T) {
	if _, err := execute(t, "manifest", t.TempDir()); err == nil {
		t.Fatal("expected error without a name")
	}
}

func TestCreateCommandNonInteractive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "videojs-thing")
	out, err := execute(t, "create", dir, "--yes", "--skip-git", "--skip-install",
		"--name", "thing", "--author", "Jane", "--css", "--builder", "grunt")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if !strings.Contains(out, "Created videojs-thing at") {
		t.Errorf("output does not name the package:\n%s", out)
	}

	m, err := manifest.ParseFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if m.GetString("name") != "videojs-thing" {
		t.Errorf("name = %q, want videojs-thing", m.GetString("name"))
	}

	for _, f := range []string{"package.json", "Gruntfile.js", "src/plugin.css", ".vjsplugin.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("%s not created: %v", f, err)
		}
	}

	answers, err := project.LoadAnswers(dir)
	if err != nil || answers == nil {
		t.Fatalf("LoadAnswers() = %v, %v", answers, err)
	}
	if answers.GetString("scope") != "" {
		t.Errorf("scope = %q persisted for an unscoped name", answers.GetString("scope"))
	}
	if answers.GetString("builder") != "grunt" || !answers.GetBool("css") {
		t.Errorf("answers not persisted: %v", answers.AllSettings())
	}
}

func TestCreateCommandRegeneratesFromAnswers(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "create", dir, "--yes", "--skip-git", "--skip-install",
		"--name", "thing", "--author", "Jane", "--lang"); err != nil {
		t.Fatalf("first create error: %v", err)
	}

	if _, err := execute(t, "create", dir, "--yes", "--skip-git", "--skip-install", "--docs"); err != nil {
		t.Fatalf("second create error: %v", err)
	}

	m, err := manifest.ParseFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	scripts, _ := m.GetObject("scripts")
	if !scripts.Has("build:lang") || !scripts.Has("docs") {
		t.Errorf("regenerated scripts = %v, want persisted lang plus new docs", scripts.Keys())
	}
	if m.GetString("author") != "Jane" {
		t.Errorf("author = %q, want persisted Jane", m.GetString("author"))
	}
}

func TestCreateCommandUnknownPackageManager(t *testing.T) {
	_, err := execute(t, "create", t.TempDir(), "--yes", "--name", "thing", "--package-manager", "bower")
	if err == nil || !strings.Contains(err.Error(), "package manager") {
		t.Errorf("error = %v, want unknown package manager", err)
	}
}

func TestConfigSetAndGet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("VJSPLUGIN_HOME", home)
	t.Cleanup(viper.Reset)

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"config", "set", "author", "Jane Doe"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config set error: %v", err)
	}

	viper.Reset()
	out.Reset()
	rootCmd.SetArgs([]string{"config", "get", "author"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "Jane Doe" {
		t.Errorf("config get = %q, want %q", out.String(), "Jane Doe")
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	if _, err := execute(t, "config", "set", "color", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestVersionCommand(t *testing.T) {
	buildVersion = "1.2.3"
	t.Cleanup(func() { buildVersion = "" })

	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}
}

func TestOptionFlagsApply(t *testing.T) {
	var f optionFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	if err := fs.Parse([]string{"--name", "foo", "--plugin-type", "basic", "--css=false"}); err != nil {
		t.Fatal(err)
	}

	in := prompt.ConstantDefaults()
	in.CSS = true
	in.Author = "Kept"

	got, skip := f.apply(fs, in, nil)
	if got.Name != "foo" || got.PluginType != "basic" || got.CSS {
		t.Errorf("apply() = %+v", got)
	}
	if got.Author != "Kept" || got.License != "mit" {
		t.Errorf("unchanged flags overrode defaults: %+v", got)
	}
	for _, k := range []string{project.KeyName, project.KeyPluginType, project.KeyCSS} {
		if !skip[k] {
			t.Errorf("prompt %q not skipped", k)
		}
	}
	if skip[project.KeyAuthor] {
		t.Error("author prompt skipped without a flag")
	}
}
