package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

var modeDescriptions = map[mapping.Mode]string{
	mapping.ModeSymlink: "Symlink directories (recommended for new projects and projects without existing custom prompts/commands)",
	mapping.ModeCopy:    "Copy files (recommended when isolated runtime prompts already exist or are needed)",
}

// promptRuntimes shows a numbered runtime menu and reads a comma-separated
// selection. "all" selects every runtime; an empty answer keeps defaults.
func promptRuntimes(reader *bufio.Reader, w io.Writer, infos []runtime.Info, defaults []string) ([]string, error) {
	fmt.Fprintln(w, "Select runtimes to support:")
	for i, info := range infos {
		marker := " "
		for _, d := range defaults {
			if d == info.ID {
				marker = "*"
			}
		}
		fmt.Fprintf(w, "  %s %d) %s %s\n", marker, i+1, info.DisplayName, styled(w, dimStyle, "("+info.InstallRootPath+")"))
	}
	fmt.Fprint(w, "\nEnter numbers separated by commas, or \"all\": ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("reading runtime selection: %w", err)
	}
	return parseRuntimeSelection(strings.TrimSpace(line), infos, defaults)
}

func parseRuntimeSelection(input string, infos []runtime.Info, defaults []string) ([]string, error) {
	if input == "" {
		if len(defaults) == 0 {
			return nil, fmt.Errorf("no runtimes selected")
		}
		return defaults, nil
	}

	if strings.EqualFold(input, "all") {
		ids := make([]string, len(infos))
		for i, info := range infos {
			ids[i] = info.ID
		}
		return ids, nil
	}

	var ids []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(infos) {
			return nil, fmt.Errorf("invalid selection %q: enter numbers between 1 and %d", part, len(infos))
		}
		id := infos[n-1].ID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no runtimes selected")
	}
	return ids, nil
}

// promptMode asks how runtime directories should be installed.
func promptMode(reader *bufio.Reader, w io.Writer, def mapping.Mode) (mapping.Mode, error) {
	modes := mapping.AllModes()

	fmt.Fprintln(w, "\nHow should runtime prompt directories be installed?")
	for i, m := range modes {
		marker := " "
		if m == def {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %d) %s\n", marker, i+1, modeDescriptions[m])
	}
	fmt.Fprint(w, "\nEnter choice: ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading install mode: %w", err)
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(modes) {
			return "", fmt.Errorf("invalid choice %d: enter 1-%d", n, len(modes))
		}
		return modes[n-1], nil
	}
	return mapping.ParseMode(input)
}
