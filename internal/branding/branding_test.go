package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if CLIName() != "vjsplugin" {
		t.Errorf("CLIName() = %q, want %q", CLIName(), "vjsplugin")
	}
	if HomeDir() != ".vjsplugin" {
		t.Errorf("HomeDir() = %q, want %q", HomeDir(), ".vjsplugin")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "VJSPLUGIN_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", got, "VJSPLUGIN_HOME")
	}
}
