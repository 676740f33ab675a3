package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCmdExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "haikumator" {
		t.Errorf("rootCmd.Use = %q, want 'haikumator'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("rootCmd.Short should not be empty")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"synonymize", "zenize", "lengthen", "antonymize", "batch", "season", "lookup", "init-config"}

	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			if err != nil {
				t.Fatalf("Find(%q) failed: %v", name, err)
			}
			if cmd.Name() != name {
				t.Errorf("found %q, want %q", cmd.Name(), name)
			}
		})
	}
}

func TestTransformCmdFlags(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		shorthand string
		present   bool
	}{
		{"zenize", "poem", "p", true},
		{"zenize", "synonyms", "s", true},
		{"zenize", "save", "", true},
		{"zenize", "antonyms", "a", false},
		{"antonymize", "antonyms", "a", true},
		{"batch", "output", "o", true},
		{"season", "poem", "p", true},
		{"lookup", "lexicon", "l", true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.flag, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.name})
			if err != nil {
				t.Fatalf("Find(%q) failed: %v", tt.name, err)
			}
			f := cmd.Flags().Lookup(tt.flag)
			if (f != nil) != tt.present {
				t.Fatalf("flag %q present = %v, want %v", tt.flag, f != nil, tt.present)
			}
			if f != nil && f.Shorthand != tt.shorthand {
				t.Errorf("%s shorthand = %q, want %q", tt.flag, f.Shorthand, tt.shorthand)
			}
		})
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "seed", "log-level", "verbose", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("rootCmd should have a persistent %q flag", name)
		}
	}
}

// execute runs the CLI with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	configPath, seed, logLevel, verbose, logToFile = "", 0, "", false, false
	poemPath, synonymsPath, antonymsPath, savePath, outputDir, lexiconPath = "", "", "", "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestZenizeCommand(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "haiku.txt", "An old silent pond,\na frog jumps in.\nSplash! Quiet again.\n")
	s := writeFile(t, dir, "syn.txt", "old: ancient, aged\nquiet: calm\n")
	saved := filepath.Join(dir, "result.txt")

	out, err := execute(t, "zenize", "-p", p, "-s", s, "--save", saved, "--log-level", "error")
	if err != nil {
		t.Fatalf("zenize failed: %v", err)
	}

	want := "An aged silent pond,\nA frog jumps in.\nSplash! Calm again."
	if !strings.Contains(out, "The Zen-ized Haiku after processing:\n"+want) {
		t.Errorf("output missing processed poem:\n%s", out)
	}
	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("result not saved: %v", err)
	}
	if string(data) != want {
		t.Errorf("saved = %q, want %q", data, want)
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "haiku.txt", "old pond\nquiet frog\n")
	s := writeFile(t, dir, "syn.txt", "old: ancient, aged\nquiet: calm\n")

	out, err := execute(t, "batch", "-p", p, "-s", s, "-o", dir, "--log-level", "error")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if !strings.Contains(out, "..\nBatch processing completed with 2 permutations") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "v2.txt")); err != nil {
		t.Errorf("v2.txt not written: %v", err)
	}
}

func TestBatchCommandNothingReplaceable(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "haiku.txt", "old pond\n")
	s := writeFile(t, dir, "syn.txt", "rain: storm\n")

	out, err := execute(t, "batch", "-p", p, "-s", s, "-o", dir, "--log-level", "error")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if !strings.Contains(out, "No replaceable words found in thesaurus.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLookupCommand(t *testing.T) {
	dir := t.TempDir()
	l := writeFile(t, dir, "syn.txt", "happy: glad, joyful\nsad: blue\n")

	out, err := execute(t, "lookup", "Happy", "-l", l, "--log-level", "error")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !strings.Contains(out, "happy: glad, joyful") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = execute(t, "lookup", "hapy", "-l", l, "--log-level", "error")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !strings.Contains(out, "'hapy' not found in lexicon.") || !strings.Contains(out, "Did you mean: happy?") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestMissingLexiconIsAnError(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "haiku.txt", "old pond\n")

	if _, err := execute(t, "synonymize", "-p", p, "--log-level", "error"); err == nil {
		t.Error("expected an error without a synonym lexicon")
	}
}

func TestSetupSendsMenuLogsToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath, logLevel, verbose, logToFile = "", "error", false, false

	tests := []struct {
		name     string
		cmd      *cobra.Command
		wantFile bool
	}{
		{"root opens the menu", rootCmd, true},
		{"subcommand keeps stderr", zenizeCmd, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := setup(tt.cmd, nil); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			if cfg.Log.File != tt.wantFile {
				t.Errorf("Log.File = %v, want %v", cfg.Log.File, tt.wantFile)
			}
		})
	}
}
