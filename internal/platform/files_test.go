package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "out", "nested")

	// Directory should not exist initially
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

func TestEnsureWritableDir(t *testing.T) {
	tempDir := t.TempDir()
	outDir := filepath.Join(tempDir, "converted")

	if err := EnsureWritableDir(outDir); err != nil {
		t.Fatalf("EnsureWritableDir failed: %v", err)
	}

	// The probe file must not be left behind
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("Failed to read directory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty directory, found %d entries", len(entries))
	}
}

func TestEnsureWritableDir_Errors(t *testing.T) {
	if err := EnsureWritableDir(""); err == nil {
		t.Error("Expected error for empty directory")
	}

	tempFile := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(tempFile, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	err := EnsureWritableDir(tempFile)
	if err == nil {
		t.Fatal("Expected error when output path is a file")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestGetDefaultOutputDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir, err := GetDefaultOutputDir()
	if err != nil {
		t.Fatalf("Failed to get default output directory: %v", err)
	}
	if dir != home {
		t.Errorf("Expected home directory %s without Documents or Downloads, got %s", home, dir)
	}

	downloads := filepath.Join(home, "Downloads")
	if err := os.Mkdir(downloads, 0755); err != nil {
		t.Fatal(err)
	}
	if dir, _ = GetDefaultOutputDir(); dir != downloads {
		t.Errorf("Expected %s, got %s", downloads, dir)
	}

	documents := filepath.Join(home, "Documents")
	if err := os.Mkdir(documents, 0755); err != nil {
		t.Fatal(err)
	}
	if dir, _ = GetDefaultOutputDir(); dir != documents {
		t.Errorf("Expected Documents to be preferred, got %s", dir)
	}
}

func TestOpenFolder_NonExistent(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for non-existent folder, got nil")
	}
	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("Error message should contain 'folder does not exist', got: %v", err)
	}
}

func TestOpenFolder_Existing(t *testing.T) {
	// We can't really test the actual opening without user interaction
	if err := OpenFolder(t.TempDir()); err != nil {
		t.Logf("OpenFolder failed (expected on headless systems): %v", err)
	}
}
