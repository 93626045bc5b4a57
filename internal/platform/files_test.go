package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestEnsureParentDir(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "a", "b", "grades.json")

	if err := EnsureParentDir(filePath); err != nil {
		t.Fatalf("Failed to ensure parent dir: %v", err)
	}

	info, err := os.Stat(filepath.Dir(filePath))
	if err != nil {
		t.Fatalf("Parent directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", filepath.Dir(filePath))
	}

	// Bare file names live in the working directory
	if err := EnsureParentDir("grades.json"); err != nil {
		t.Errorf("Expected no error for bare file name, got %v", err)
	}
}

func TestResolveDataFile(t *testing.T) {
	absPath, err := ResolveDataFile("datos_notas.json")
	if err != nil {
		t.Fatalf("Failed to resolve data file: %v", err)
	}

	if !filepath.IsAbs(absPath) {
		t.Errorf("Expected absolute path, got %s", absPath)
	}
	if filepath.Base(absPath) != "datos_notas.json" {
		t.Errorf("Expected base name datos_notas.json, got %s", filepath.Base(absPath))
	}

	if _, err := ResolveDataFile(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.json")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}
