package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "simplespec" {
		t.Errorf("CLIName() = %q, want %q", got, "simplespec")
	}
	if got := HomeDir(); got != ".simplespec" {
		t.Errorf("HomeDir() = %q, want %q", got, ".simplespec")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"HOME", "SIMPLESPEC_HOME"},
		{"install_mode", "SIMPLESPEC_INSTALL_MODE"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
