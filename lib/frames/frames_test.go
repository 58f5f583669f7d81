package frames

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFrame(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirOrdering(t *testing.T) {
	dir := t.TempDir()
	// Written out of order; lexical order must win.
	writeFrame(t, dir, "out0003.jpg.txt", "three")
	writeFrame(t, dir, "out0001.jpg.txt", "one")
	writeFrame(t, dir, "out0002.jpg.txt", "two")
	writeFrame(t, dir, "README.md", "not a frame")

	set, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}
	for i, want := range []string{"one", "two", "three"} {
		if got := set.Frame(i); got != want {
			t.Errorf("Frame(%d) = %q, want %q", i, got, want)
		}
	}
	if set.FPS != DefaultFPS {
		t.Errorf("FPS = %v, want default %v", set.FPS, DefaultFPS)
	}
}

func TestLoadDirFallbackPattern(t *testing.T) {
	dir := t.TempDir()
	writeFrame(t, dir, "frame-b.txt", "b")
	writeFrame(t, dir, "frame-a.txt", "a")

	set, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if set.Len() != 2 || set.Frame(0) != "a" || set.Frame(1) != "b" {
		t.Errorf("frames = %v", set.Frames)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	set, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}

func TestPackRoundtrip(t *testing.T) {
	src := &Set{FPS: 24, Frames: []string{"a\nmulti\nline", "b"}}

	var buf bytes.Buffer
	if err := src.WritePack(&buf); err != nil {
		t.Fatalf("WritePack() error = %v", err)
	}
	got, err := LoadPack(&buf)
	if err != nil {
		t.Fatalf("LoadPack() error = %v", err)
	}

	if got.FPS != 24 {
		t.Errorf("FPS = %v, want 24", got.FPS)
	}
	if got.Len() != 2 || got.Frame(0) != "a\nmulti\nline" || got.Frame(1) != "b" {
		t.Errorf("frames = %v", got.Frames)
	}
}

func TestLoadPackDefaultsFPS(t *testing.T) {
	var buf bytes.Buffer
	src := &Set{Frames: []string{"a"}}
	if err := src.WritePack(&buf); err != nil {
		t.Fatalf("WritePack() error = %v", err)
	}
	got, err := LoadPack(&buf)
	if err != nil {
		t.Fatalf("LoadPack() error = %v", err)
	}
	if got.FPS != DefaultFPS {
		t.Errorf("FPS = %v, want default %v", got.FPS, DefaultFPS)
	}
}

func TestLoadPackRejectsGarbage(t *testing.T) {
	if _, err := LoadPack(bytes.NewReader([]byte("not a pack"))); err == nil {
		t.Fatal("LoadPack() on garbage = nil error")
	}
}

func TestLoadDetectsSource(t *testing.T) {
	dir := t.TempDir()
	writeFrame(t, dir, "out0001.jpg.txt", "frame")

	set, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(dir) error = %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}

	packPath := filepath.Join(t.TempDir(), "frames.pack")
	f, err := os.Create(packPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := set.WritePack(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	fromPack, err := Load(packPath)
	if err != nil {
		t.Fatalf("Load(pack) error = %v", err)
	}
	if fromPack.Len() != 1 || fromPack.Frame(0) != "frame" {
		t.Errorf("frames = %v", fromPack.Frames)
	}
}
