package common

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSourceHash(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cmd", "api", "cmd.go"), "package main")

	first, err := SourceHash(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	writeFile(t, filepath.Join(root, "infra", "main.go"), "package main")
	same, err := SourceHash(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same != first {
		t.Fatalf("infra changes should not change the hash")
	}

	writeFile(t, filepath.Join(root, "cmd", "api", "cmd.go"), "package main\n")
	changed, err := SourceHash(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed == first {
		t.Fatalf("expected hash to change after editing source")
	}
}
