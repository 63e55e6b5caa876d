package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadPuzzleInline(t *testing.T) {
	inlinePuzzle = "1030030130100103"
	defer func() { inlinePuzzle = "" }()
	input, err := readPuzzle(nil)
	if err != nil {
		t.Fatalf("Failed to read inline puzzle: %v", err)
	}
	if input != inlinePuzzle {
		t.Errorf("Read %q, expected %q", input, inlinePuzzle)
	}
}

func TestReadPuzzleFile(t *testing.T) {
	content := "1 . 3 .\n. 3 . 1\n3 . 1 .\n. 1 . 3\n"
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write puzzle file: %v", err)
	}
	input, err := readPuzzle([]string{path})
	if err != nil {
		t.Fatalf("Failed to read puzzle file: %v", err)
	}
	if input != content {
		t.Errorf("Read %q, expected %q", input, content)
	}
}

func TestReadPuzzleMissingFile(t *testing.T) {
	if _, err := readPuzzle([]string{filepath.Join(t.TempDir(), "absent.txt")}); err == nil {
		t.Errorf("Reading a missing file didn't fail")
	}
}

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"solve", "show", "storage"}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Command %q is not registered", name)
		}
	}
}
