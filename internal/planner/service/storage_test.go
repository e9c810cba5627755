package service

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveWallImageRoundTrip(t *testing.T) {
	root := t.TempDir()
	storage := NewFileStorage(root)
	data := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}

	path, err := storage.SaveWallImage("p1", "w1", data, "photo.png")
	if err != nil {
		t.Fatalf("SaveWallImage: %v", err)
	}
	if want := filepath.Join(root, "p1", "w1_photo.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	got, err := storage.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("round trip mismatch: %v != %v", got, data)
	}
}

func TestSaveWallImageOverwrites(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	if _, err := storage.SaveWallImage("p1", "w1", []byte("first"), "a.jpg"); err != nil {
		t.Fatalf("first save: %v", err)
	}
	path, err := storage.SaveWallImage("p1", "w1", []byte("second"), "a.jpg")
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, _ := storage.Load(path)
	if string(got) != "second" {
		t.Errorf("content = %q, want second", got)
	}
}

func TestWallImagePathStripsDirectories(t *testing.T) {
	root := t.TempDir()
	storage := NewFileStorage(root)

	path := storage.WallImagePath("p1", "w1", "../../etc/passwd")
	if want := filepath.Join(root, "p1", "w1_passwd"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}
}

func TestSaveRejectsEscapingNames(t *testing.T) {
	parent := t.TempDir()
	storage := NewFileStorage(filepath.Join(parent, "uploads"))

	tests := []struct {
		name      string
		projectID string
		wallID    string
	}{
		{name: "wall climbs out", projectID: "p1", wallID: "../../escaped"},
		{name: "wall with separator", projectID: "p1", wallID: "a/b"},
		{name: "wall with backslash", projectID: "p1", wallID: `..\x`},
		{name: "dot dot wall", projectID: "p1", wallID: ".."},
		{name: "empty wall", projectID: "p1", wallID: ""},
		{name: "project climbs out", projectID: "../p2", wallID: "w1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := storage.SaveWallImage(tt.projectID, tt.wallID, []byte("x"), "photo.png"); !errors.Is(err, ErrInvalidName) {
				t.Errorf("SaveWallImage err = %v, want ErrInvalidName", err)
			}
			if _, err := storage.SaveRenderedWall(tt.projectID, tt.wallID, []byte("x")); !errors.Is(err, ErrInvalidName) {
				t.Errorf("SaveRenderedWall err = %v, want ErrInvalidName", err)
			}
			if storage.RenderExists(tt.projectID, tt.wallID) {
				t.Error("RenderExists = true for invalid name")
			}
		})
	}

	// ничего не должно появиться рядом с корнем хранилища
	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatalf("read parent: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "uploads" {
			t.Errorf("unexpected entry %s next to storage root", e.Name())
		}
	}
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"w1", "north-wall", "wall.2", "..w"} {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "/abs"} {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}

func TestSaveRenderedWall(t *testing.T) {
	root := t.TempDir()
	storage := NewFileStorage(root)

	if storage.RenderExists("p1", "w1") {
		t.Fatal("render should not exist yet")
	}

	path, err := storage.SaveRenderedWall("p1", "w1", []byte("png"))
	if err != nil {
		t.Fatalf("SaveRenderedWall: %v", err)
	}
	if want := filepath.Join(root, "p1", "renders", "w1_render.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}
	if !storage.RenderExists("p1", "w1") {
		t.Error("render should exist after save")
	}

	if _, err := storage.SaveRenderedWall("p1", "w1", []byte("png2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "png2" {
		t.Errorf("render not overwritten: %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	_, err := storage.Load(filepath.Join(storage.Root(), "nope.png"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}
}
