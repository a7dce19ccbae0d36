package core

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"strings"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// BuiltinSpritePrefix selects a procedurally generated sprite instead of a file.
const BuiltinSpritePrefix = "builtin:"

// TextureHandle is an RGBA8 sprite shared read-only by every burst.
// Renderers upload it lazily, keyed by ID.
type TextureHandle struct {
	ID     uuid.UUID
	Path   string
	Width  uint32
	Height uint32
	Texels []uint8
}

func (h TextureHandle) Valid() bool {
	return h.ID != uuid.Nil
}

// SpriteDecoder turns an opaque sprite path into pixels.
type SpriteDecoder func(path string) (*image.RGBA, error)

// TextureBank is the fixed, index-addressable set of sprites loaded at start.
type TextureBank struct {
	handles []TextureHandle
}

// LoadTextureBank decodes every path in order. The first failure is returned
// to the caller; nothing is retried.
func LoadTextureBank(decode SpriteDecoder, paths []string) (*TextureBank, error) {
	bank := &TextureBank{handles: make([]TextureHandle, 0, len(paths))}
	for _, p := range paths {
		img, err := decode(p)
		if err != nil {
			return nil, fmt.Errorf("load sprite %q: %w", p, err)
		}
		b := img.Bounds()
		bank.handles = append(bank.handles, TextureHandle{
			ID:     uuid.New(),
			Path:   p,
			Width:  uint32(b.Dx()),
			Height: uint32(b.Dy()),
			Texels: img.Pix,
		})
	}
	return bank, nil
}

func (b *TextureBank) Len() int {
	return len(b.handles)
}

func (b *TextureBank) Get(i int) (TextureHandle, error) {
	if i < 0 || i >= len(b.handles) {
		return TextureHandle{}, fmt.Errorf("sprite %d of %d: %w", i, len(b.handles), ErrSpriteIndex)
	}
	return b.handles[i], nil
}

// DecodeSprite loads PNG, BMP or WebP files, or a builtin sprite when the path
// starts with BuiltinSpritePrefix.
func DecodeSprite(path string) (*image.RGBA, error) {
	if name, ok := strings.CutPrefix(path, BuiltinSpritePrefix); ok {
		return BuiltinSprite(name, builtinSpriteSize)
	}
	return DecodeSpriteFile(path)
}

func DecodeSpriteFile(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
