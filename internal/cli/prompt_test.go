package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

var testInfos = []runtime.Info{
	{ID: "codex", DisplayName: "Codex", InstallRootPath: ".codex"},
	{ID: "kilocode", DisplayName: "Kilo Code", InstallRootPath: ".kilocode"},
	{ID: "claude-code", DisplayName: "Claude Code", InstallRootPath: ".claude"},
}

func TestParseRuntimeSelection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		defaults []string
		want     string
		wantErr  bool
	}{
		{"single", "1", nil, "codex", false},
		{"several with spaces", "3, 1", nil, "claude-code,codex", false},
		{"duplicates collapse", "2,2", nil, "kilocode", false},
		{"all", "ALL", nil, "codex,kilocode,claude-code", false},
		{"empty uses defaults", "", []string{"kilocode"}, "kilocode", false},
		{"empty without defaults", "", nil, "", true},
		{"out of range", "4", nil, "", true},
		{"not a number", "codex", nil, "", true},
		{"only commas", ",,", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRuntimeSelection(tt.input, testInfos, tt.defaults)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Join(got, ",") != tt.want {
				t.Errorf("got %v, want %s", got, tt.want)
			}
		})
	}
}

func TestPromptRuntimes(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("2\n"))

	got, err := promptRuntimes(reader, &out, testInfos, []string{"codex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "kilocode" {
		t.Errorf("got %v, want [kilocode]", got)
	}
	if !strings.Contains(out.String(), "* 1) Codex (.codex)") {
		t.Errorf("default marker missing from menu:\n%s", out.String())
	}
}

func TestPromptMode(t *testing.T) {
	tests := []struct {
		input   string
		want    mapping.Mode
		wantErr bool
	}{
		{"\n", mapping.ModeSymlink, false},
		{"2\n", mapping.ModeCopy, false},
		{"copy\n", mapping.ModeCopy, false},
		{"3\n", "", true},
		{"hardlink\n", "", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptMode(bufio.NewReader(strings.NewReader(tt.input)), &out, mapping.ModeSymlink)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromptModeEOF(t *testing.T) {
	var out bytes.Buffer
	if _, err := promptMode(bufio.NewReader(strings.NewReader("")), &out, mapping.ModeSymlink); err == nil {
		t.Error("expected error on closed input")
	}
}
