package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func migrationsPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	return filepath.Join(repoRoot, "db", "migrations")
}

func readMigrations(t *testing.T) map[string]string {
	t.Helper()
	dir := migrationsPath(t)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}

	out := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		out[e.Name()] = string(b)
	}
	return out
}

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	for name, s := range readMigrations(t) {
		if !strings.Contains(s, "-- +goose Up") {
			t.Fatalf("%s missing '-- +goose Up'", name)
		}
		if !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s missing '-- +goose Down'", name)
		}
	}
}

func TestSQLMigrations_EnforceNaturalKeysInSchema(t *testing.T) {
	migrations := readMigrations(t)

	authors, ok := migrations["0001_create_authors.sql"]
	if !ok {
		t.Fatal("authors migration not found")
	}
	if !strings.Contains(authors, "CREATE UNIQUE INDEX authors_full_name_key") {
		t.Fatal("authors migration missing unique full name index")
	}

	books, ok := migrations["0002_create_books.sql"]
	if !ok {
		t.Fatal("books migration not found")
	}
	if !strings.Contains(books, "CREATE UNIQUE INDEX books_isbn_key") {
		t.Fatal("books migration missing unique isbn index")
	}
	if !strings.Contains(books, "ON DELETE CASCADE") {
		t.Fatal("books migration missing cascade delete on author fk")
	}
}
