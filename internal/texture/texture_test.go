package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		rel, expected string
	}{
		{"pointer.png", "pointer"},
		{filepath.Join("other", "pointer.png"), "other.pointer"},
		{filepath.Join("modifiers", "low_shield.png"), "modifiers.low_shield"},
		{filepath.Join("a", "b", "c.jpeg"), "a.b.c"},
	}

	for _, tc := range tests {
		if got := Key(tc.rel); got != tc.expected {
			t.Errorf("Key(%q) = %q, expected %q", tc.rel, got, tc.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "other", "pointer.png"), color.RGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(root, "modifiers", "low_shield.png"), color.RGBA{B: 255, A: 255})
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("skip"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	atlas, err := Load(root)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	expected := []string{PlaceholderKey, "modifiers.low_shield", "other.pointer"}
	if got := atlas.Keys(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Keys() = %v, expected %v", got, expected)
	}

	pointer := atlas.Texture("other.pointer")
	if atlas.IsPlaceholder(pointer) {
		t.Error("known key should not return the placeholder")
	}
	if got := Average(pointer); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Average(pointer) = %v, expected opaque red", got)
	}
}

func TestUnknownKeyReturnsPlaceholder(t *testing.T) {
	atlas := NewAtlas(nil)

	img := atlas.Texture("ships.missing")
	if !atlas.IsPlaceholder(img) {
		t.Fatal("unknown key should return the placeholder")
	}
	if img != atlas.Texture(PlaceholderKey) {
		t.Error("placeholder should also be reachable under its reserved key")
	}

	b := img.Bounds()
	if b.Dx() != PlaceholderSize || b.Dy() != PlaceholderSize {
		t.Errorf("placeholder size = %dx%d, expected %dx%d", b.Dx(), b.Dy(), PlaceholderSize, PlaceholderSize)
	}
	if got := Average(img); got != (color.RGBA{A: 255}) {
		t.Errorf("Average(placeholder) = %v, expected opaque black", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Load() should fail for a missing directory")
	}

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "broken.png"), []byte("not a png"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(root); err == nil {
		t.Error("Load() should fail for an undecodable image")
	}
}

func TestAverageTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := Average(img); got != (color.RGBA{}) {
		t.Errorf("Average(transparent) = %v, expected zero", got)
	}
}
