package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherAddReportsNewFile(t *testing.T) {
	first := filepath.Join(t.TempDir(), "first.tengo")
	otherDir := t.TempDir()
	second := filepath.Join(otherDir, "second.tengo")
	for _, f := range []string{first, second} {
		if err := os.WriteFile(f, []byte("a"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	w, err := NewWatcher(first)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := w.Add(second); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := w.Add(second); err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if err := os.WriteFile(second, []byte("b"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	want, _ := filepath.Abs(second)
	select {
	case name := <-w.Events:
		if name != want {
			t.Fatalf("event for %s, want %s", name, want)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for added file")
	}
}
