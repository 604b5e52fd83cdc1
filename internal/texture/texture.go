// Package texture indexes image assets by dotted key and hands out a
// reserved placeholder for keys that are not present.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // registers the JPEG decoder
	_ "image/png"  // registers the PNG decoder
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PlaceholderKey is the reserved key of the placeholder texture.
const PlaceholderKey = "__empty__"

// PlaceholderSize is the edge length of the placeholder texture in pixels.
const PlaceholderSize = 32

// extensions lists the file types picked up by Load.
var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Atlas holds decoded textures keyed by their dotted asset path.
type Atlas struct {
	textures    map[string]image.Image
	placeholder image.Image
}

// newPlaceholder returns the opaque black square used for unknown keys.
func newPlaceholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 0xff}), image.Point{}, draw.Src)
	return img
}

// NewAtlas builds an atlas from already decoded images.
func NewAtlas(textures map[string]image.Image) *Atlas {
	a := &Atlas{
		textures:    make(map[string]image.Image, len(textures)+1),
		placeholder: newPlaceholder(),
	}
	for k, v := range textures {
		a.textures[k] = v
	}
	a.textures[PlaceholderKey] = a.placeholder
	return a
}

// Key converts a path relative to the asset root into a texture key:
// separators become dots and the extension is dropped.
// "ships/hull/frigate.png" -> "ships.hull.frigate".
func Key(rel string) string {
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}

// Load walks root and decodes every image file it finds.
func Load(root string) (*Atlas, error) {
	textures := make(map[string]image.Image)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		textures[Key(rel)] = img
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: cannot load %s: %w", root, err)
	}

	return NewAtlas(textures), nil
}

// Texture returns the image for key, or the placeholder when key is unknown.
func (a *Atlas) Texture(key string) image.Image {
	if a == nil {
		return newPlaceholder()
	}
	if img, ok := a.textures[key]; ok {
		return img
	}
	return a.placeholder
}

// IsPlaceholder reports whether img is this atlas's placeholder texture.
func (a *Atlas) IsPlaceholder(img image.Image) bool {
	if a == nil {
		return true
	}
	return img == a.placeholder
}

// Keys returns all texture keys, including the placeholder, in sorted order.
func (a *Atlas) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, 0, len(a.textures))
	for k := range a.textures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Average returns the alpha-weighted mean color of img.
// Fully transparent images average to transparent black.
func Average(img image.Image) color.RGBA {
	var r, g, b, a uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			b += uint64(pb)
			a += uint64(pa)
		}
	}
	if a == 0 {
		return color.RGBA{}
	}
	// RGBA() is alpha-premultiplied, so dividing by total alpha un-premultiplies.
	return color.RGBA{
		R: uint8(r * 0xff / a),
		G: uint8(g * 0xff / a),
		B: uint8(b * 0xff / a),
		A: uint8(a / uint64(bounds.Dx()*bounds.Dy()) >> 8),
	}
}
