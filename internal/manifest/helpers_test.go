package manifest

import (
	"testing"

	"github.com/videojs/vjsplugin/internal/project"
)

type testOptions = project.Options

// testContext builds a valid context for "videojs-test", letting callers
// adjust the options first.
func testContext(t *testing.T, mutate func(*testOptions)) *project.Context {
	t.Helper()
	opts := project.Options{
		Name:        "test",
		Author:      "Jane Doe",
		Description: "This is the description",
		License:     "mit",
		PluginType:  project.PluginAdvanced,
		Builder:     project.BuilderNPM,
	}
	if mutate != nil {
		mutate(&opts)
	}
	ctx, err := project.NewContext(opts, "9.9.9")
	if err != nil {
		t.Fatalf("NewContext() error: %v", err)
	}
	return ctx
}

func mustParse(t *testing.T, src string) *Object {
	t.Helper()
	o, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return o
}

func assertKeys(t *testing.T, o *Object, want ...string) {
	t.Helper()
	got := o.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
}

func assertStrings(t *testing.T, v any, want ...string) {
	t.Helper()
	got, ok := stringSlice(v)
	if !ok {
		t.Fatalf("value %v is not a string array", v)
	}
	if len(got) != len(want) {
		t.Fatalf("array = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("array = %v, want %v", got, want)
		}
	}
}
