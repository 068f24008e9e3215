package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLintFlagsMissingMarkers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.go", "package q\n\nconst QOk = `--sql 3c0f5b8e-6f0a-4c59-9a6e-1b7d2e4f8a21\nselect 1;\n`\n")
	writeFile(t, dir, "bad.go", "package q\n\nconst QBad = \"select token from client_tokens\"\n\nconst Greeting = \"hello\"\n")

	violations, err := lint([]string{dir})
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(violations) != 1 || violations[0].name != "QBad" {
		t.Fatalf("violations = %v", violations)
	}
}

func TestLintFlagsReusedMarker(t *testing.T) {
	dir := t.TempDir()
	marker := "--sql 9e2d4a71-5b3c-4f8e-8d16-7a0c9b2e5f34"
	writeFile(t, dir, "a.go", "package q\n\nconst QA = `"+marker+"\nselect 1;\n`\n")
	writeFile(t, dir, "b.go", "package q\n\nconst QB = `"+marker+"\ndelete from t;\n`\n")

	violations, err := lint([]string{dir})
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(violations) != 1 || !strings.Contains(violations[0].message, "already used by QA") {
		t.Fatalf("violations = %v", violations)
	}
}

func TestLintSkipsTestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x_test.go", "package q\n\nconst raw = \"select 1\"\n")

	violations, err := lint([]string{dir})
	if err != nil || len(violations) != 0 {
		t.Fatalf("lint = %v, %v", violations, err)
	}
}

func TestLintRepositoryStatements(t *testing.T) {
	violations, err := lint([]string{filepath.Join("..", "..", "sqlinline")})
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("sqlinline violations: %v", violations)
	}
}
