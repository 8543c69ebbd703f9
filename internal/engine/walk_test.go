package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func collectWalk(t *testing.T, cfg Config) []string {
	t.Helper()
	var seen []string
	if err := walk(context.Background(), cfg, func(rel string, _ []byte) {
		seen = append(seen, filepath.ToSlash(rel))
	}); err != nil {
		t.Fatal(err)
	}
	return seen
}

func TestWalk_SkipsBinary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "code.go", []byte("package main\n"))
	writeFile(t, dir, "logo.png", []byte("not really an image"))
	writeFile(t, dir, "blob.dat", []byte{'a', 'b', 0x00, 'c'})

	seen := collectWalk(t, Config{Target: dir})
	if len(seen) != 1 || seen[0] != "code.go" {
		t.Fatalf("expected only code.go, got %v", seen)
	}
}

func TestWalk_SkipsDefaultDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/app.py", []byte("x = 1\n"))
	writeFile(t, dir, "node_modules/pkg/index.js", []byte("var a\n"))
	writeFile(t, dir, ".git/config", []byte("[core]\n"))

	seen := collectWalk(t, Config{Target: dir})
	if len(seen) != 1 || seen[0] != "src/app.py" {
		t.Fatalf("expected only src/app.py, got %v", seen)
	}
}

func TestWalk_Globs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", []byte("1\n"))
	writeFile(t, dir, "b.js", []byte("2\n"))
	writeFile(t, dir, "sub/c.py", []byte("3\n"))

	seen := collectWalk(t, Config{Target: dir, IncludeGlobs: "**/*.py"})
	if len(seen) != 2 {
		t.Fatalf("expected two .py files, got %v", seen)
	}

	seen = collectWalk(t, Config{Target: dir, ExcludeGlobs: "*.py"})
	if len(seen) != 1 || seen[0] != "b.js" {
		t.Fatalf("expected only b.js, got %v", seen)
	}
}

func TestWalk_MaxBytes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.txt", []byte("ok\n"))
	big := make([]byte, 4096)
	for i := range big {
		big[i] = 'x'
	}
	writeFile(t, dir, "large.txt", big)

	seen := collectWalk(t, Config{Target: dir, MaxBytes: 1024})
	if len(seen) != 1 || seen[0] != "small.txt" {
		t.Fatalf("expected only small.txt, got %v", seen)
	}
}

func TestWalk_Cancellation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("1\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := walk(ctx, Config{Target: dir}, func(string, []byte) {
		t.Fatal("no file should be handled after cancellation")
	})
	if err == nil {
		t.Fatal("expected context error")
	}
}
