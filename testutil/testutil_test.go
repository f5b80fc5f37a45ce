package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTempFileString(t *testing.T) {
	path := TempFileString(t, "app.lz", "App:\n    k:v\n")

	if filepath.Base(path) != "app.lz" {
		t.Errorf("base = %q, want %q", filepath.Base(path), "app.lz")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read temp file: %v", err)
	}
	if string(data) != "App:\n    k:v\n" {
		t.Errorf("content = %q", string(data))
	}
}

func TestWriteTree(t *testing.T) {
	files := map[string]string{
		"conf/sub/app.lz": "App:\n",
		"top.lz":          "Top:\n",
	}

	dir := WriteTree(t, files)

	for path, want := range files {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(path)))
		if err != nil {
			t.Errorf("file %s does not exist: %v", path, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", path, string(data), want)
		}
	}
}

func TestFakeGitRoot(t *testing.T) {
	dir := FakeGitRoot(t, map[string]string{".app.lz": "App:\n"})

	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil || !info.IsDir() {
		t.Fatalf(".git directory missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".app.lz")); err != nil {
		t.Errorf("expected .app.lz to exist: %v", err)
	}
}

func TestLookup(t *testing.T) {
	lookup := Lookup(map[string]string{"HOME": "/home/test", "EMPTY": ""})

	if v, ok := lookup("HOME"); !ok || v != "/home/test" {
		t.Errorf("HOME = %q, %v", v, ok)
	}
	if v, ok := lookup("EMPTY"); !ok || v != "" {
		t.Errorf("EMPTY = %q, %v; want set but empty", v, ok)
	}
	if _, ok := lookup("MISSING"); ok {
		t.Error("MISSING should not be set")
	}
}
