package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "out", "converted")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestLowerExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"song.WAV", "wav"},
		{"/music/take 1.flac", "flac"},
		{"C:\\audio\\mix.Aiff", "aiff"},
		{"  spaced.aif  ", "aif"},
		{"noext", ""},
		{"trailingdot.", ""},
		{"", ""},
	}

	for _, test := range tests {
		if got := LowerExtension(test.path); got != test.expected {
			t.Errorf("LowerExtension(%q) = %q, want %q", test.path, got, test.expected)
		}
	}
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "in.wav")
	if err := os.WriteFile(file, []byte("RIFF"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(file) {
		t.Errorf("Expected %s to exist", file)
	}
	if FileExists(tempDir) {
		t.Error("Directories should not count as files")
	}
	if FileExists(filepath.Join(tempDir, "missing.wav")) {
		t.Error("Missing file reported as existing")
	}
}

func TestFindSox(t *testing.T) {
	path := FindSox()
	if path == "" {
		t.Skip("sox is not installed")
	}
	if !FileExists(path) {
		t.Errorf("FindSox returned a path that does not exist: %s", path)
	}
}

func TestFindSox_FromPath(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("shell script stub is unix only")
	}

	binDir := t.TempDir()
	stub := filepath.Join(binDir, SoxBinaryName)
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("Failed to create stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	if got := FindSox(); got != stub {
		t.Errorf("Expected %s, got %s", stub, got)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "nonexistent.wav"))
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager("  "); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "nonexistent.wav"))
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}
