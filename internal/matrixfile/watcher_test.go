package matrixfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.yaml")
	if err := os.WriteFile(path, []byte("threads: [1]\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("threads: [1, 2]\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	select {
	case got := <-w.Events():
		if filepath.Base(got) != "matrix.yaml" {
			t.Errorf("event path = %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event within timeout")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.yaml")
	if err := os.WriteFile(path, []byte("threads: [1]\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case got := <-w.Events():
		t.Fatalf("unexpected event for sibling file: %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	if err := os.WriteFile(path, []byte("threads: [1]\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("second Start must fail")
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	// Stopping again is a no-op.
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop failed: %v", err)
	}
}

func TestWatcherStopWithoutStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	if err := os.WriteFile(path, []byte("threads: [1]\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	// Stop without Start must still release the fsnotify handle.
	if err := w.Stop(); err != nil {
		t.Errorf("Stop without Start failed: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("Start after Stop must fail: the underlying watcher is closed")
	}
}
