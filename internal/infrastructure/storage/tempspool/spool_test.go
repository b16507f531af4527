package tempspool

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	spool, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path, err := spool.Save(context.Background(), "plan.PDF", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Ext(path) != ".pdf" {
		t.Fatalf("spooled file %q should keep a lowercase extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read spooled file: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("spooled content = %q", data)
	}

	if err := spool.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err = %v", err)
	}

	// Removing twice is fine.
	if err := spool.Remove(path); err != nil {
		t.Fatalf("second Remove() error = %v", err)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	spool, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	a, err := spool.Save(context.Background(), "plan.txt", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	b, err := spool.Save(context.Background(), "plan.txt", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if a == b {
		t.Fatalf("same-name uploads must not collide: %s", a)
	}
}
