//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/videojs/vjsplugin/internal/config"
	"github.com/videojs/vjsplugin/internal/project"
	"github.com/videojs/vjsplugin/internal/prompt"
	"github.com/videojs/vjsplugin/internal/scaffold"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holding the global git config
	ConfigDir  string // VJSPLUGIN_HOME, holding config.yaml
	ProjectDir string // where the plugin is generated
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all generator operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ConfigDir:  t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "videojs-plugin"),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
	t.Setenv("VJSPLUGIN_HOME", env.ConfigDir)
	t.Cleanup(viper.Reset)
	config.Load()

	return env
}

// generate runs one non-interactive generation the way "create --yes" does:
// resolve defaults from dir, apply policy and overrides, then scaffold.
func generate(t *testing.T, dir string, policy string, override func(*prompt.Defaults)) *scaffold.Result {
	t.Helper()

	answers, err := project.LoadAnswers(dir)
	if err != nil {
		t.Fatalf("LoadAnswers: %v", err)
	}
	existing, err := scaffold.ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}

	src := prompt.Sources{Existing: existing, User: config.Viper()}
	if answers != nil {
		src.Persisted = answers
	}
	d := prompt.Resolve(src)

	var skip prompt.Skip
	if policy != "" {
		p, err := prompt.LookupPolicy(policy)
		if err != nil {
			t.Fatalf("LookupPolicy: %v", err)
		}
		d, skip = prompt.ApplyPolicy(d, p)
	}
	if override != nil {
		override(&d)
	}

	opts, err := prompt.StaticAsker{}.Ask(d, skip)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	ctx, err := project.NewContext(opts, "1.0.0")
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	result, err := scaffold.Generate(context.Background(), ctx, scaffold.Options{
		OutputDir:   dir,
		SkipInstall: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return result
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
