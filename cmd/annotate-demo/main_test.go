package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/annotate"
	"github.com/iw2rmb/annotate/internal/config"
	"github.com/iw2rmb/annotate/markdown"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-version"}, &out, io.Discard); err != nil {
		t.Fatalf("run -version: %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), annotate.VersionTag(); got != want {
		t.Fatalf("version output: got %q, want %q", got, want)
	}
}

func TestRunPrintDefaultSeed(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-print"}, &out, io.Discard); err != nil {
		t.Fatalf("run -print: %v", err)
	}
	if got := strings.TrimSuffix(out.String(), "\n"); got != defaultSeed {
		t.Fatalf("print output: got %q, want %q", got, defaultSeed)
	}
}

func TestRunPrintMarkdownSeed(t *testing.T) {
	md := writeFile(t, "seed.md", "**Hello** *big* world, a < b\n")

	var out bytes.Buffer
	if err := run([]string{"-print", "-markdown", md}, &out, io.Discard); err != nil {
		t.Fatalf("run -print -markdown: %v", err)
	}
	if got, want := out.String(), "<b>Hello</b> <i>big</i> world, a &lt; b\n"; got != want {
		t.Fatalf("print output: got %q, want %q", got, want)
	}

	cfg := writeFile(t, "annotate.toml", "[render]\nescape = false\n")
	out.Reset()
	if err := run([]string{"-print", "-markdown", md, "-config", cfg}, &out, io.Discard); err != nil {
		t.Fatalf("run -print with config: %v", err)
	}
	if got, want := out.String(), "<b>Hello</b> <i>big</i> world, a < b\n"; got != want {
		t.Fatalf("unescaped print output: got %q, want %q", got, want)
	}
}

func TestRunPrintMarkdownSeedDecodesEscapes(t *testing.T) {
	md := writeFile(t, "seed.md", "Tom \\*and\\* Jerry &amp; **friends**\n")

	var out bytes.Buffer
	if err := run([]string{"-print", "-markdown", md}, &out, io.Discard); err != nil {
		t.Fatalf("run -print -markdown: %v", err)
	}
	if got, want := out.String(), "Tom *and* Jerry &amp; <b>friends</b>\n"; got != want {
		t.Fatalf("print output: got %q, want %q", got, want)
	}
}

func TestRunErrors(t *testing.T) {
	bad := writeFile(t, "bad.toml", "[editor]\ninput_ratio = 2\n")

	cases := map[string][]string{
		"unknown flag":     {"-nope"},
		"extra argument":   {"-print", "extra"},
		"missing config":   {"-print", "-config", filepath.Join(t.TempDir(), "missing.toml")},
		"invalid config":   {"-print", "-config", bad},
		"missing markdown": {"-print", "-markdown", filepath.Join(t.TempDir(), "missing.md")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if err := run(args, io.Discard, io.Discard); err == nil {
				t.Fatalf("run %v: got nil error", args)
			}
		})
	}
}

func TestRunHelpIsNotAnError(t *testing.T) {
	var stderr bytes.Buffer
	if err := run([]string{"-h"}, io.Discard, &stderr); err != nil {
		t.Fatalf("run -h: %v", err)
	}
	if !strings.Contains(stderr.String(), "-markdown") {
		t.Fatalf("usage output does not list -markdown:\n%s", stderr.String())
	}
}

func TestModelFormatsAndQuits(t *testing.T) {
	m := newModel(config.Default(), loadSeedOrFail(t, ""))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	m = updated.(model)
	for _, k := range []tea.KeyType{tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyCtrlB} {
		updated, _ = m.Update(tea.KeyMsg{Type: k})
		m = updated.(model)
	}
	if got, want := m.editor.Markup(), "<b>Select</b> text"; !strings.HasPrefix(got, want) {
		t.Fatalf("markup: got %q, want prefix %q", got, want)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("ctrl+q: got nil cmd, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+q: cmd did not produce tea.QuitMsg")
	}
}

func loadSeedOrFail(t *testing.T, path string) markdown.Document {
	t.Helper()
	doc, err := loadSeed(path)
	if err != nil {
		t.Fatalf("loadSeed(%q): %v", path, err)
	}
	return doc
}
