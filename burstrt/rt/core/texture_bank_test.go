package core

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadTextureBank_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writePNG(t, a, 4, 2)
	writePNG(t, b, 8, 8)

	bank, err := LoadTextureBank(DecodeSprite, []string{a, b})
	require.NoError(t, err)
	require.Equal(t, 2, bank.Len())

	h0, err := bank.Get(0)
	require.NoError(t, err)
	assert.Equal(t, a, h0.Path)
	assert.Equal(t, uint32(4), h0.Width)
	assert.Equal(t, uint32(2), h0.Height)
	assert.Len(t, h0.Texels, 4*2*4)
	assert.Equal(t, []uint8{255, 128, 0, 255}, h0.Texels[:4])
	assert.True(t, h0.Valid())

	h1, err := bank.Get(1)
	require.NoError(t, err)
	assert.NotEqual(t, h0.ID, h1.ID)
}

func TestLoadTextureBank_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.png")
	_, err := LoadTextureBank(DecodeSprite, []string{missing})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.png")
}

func TestLoadTextureBank_Builtins(t *testing.T) {
	bank, err := LoadTextureBank(DecodeSprite, DefaultSpritePaths())
	require.NoError(t, err)
	assert.Equal(t, len(BuiltinSpriteNames), bank.Len())

	h, err := bank.Get(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(builtinSpriteSize), h.Width)
	// Centre of the soft disc is bright, the corner is dark.
	centre := (builtinSpriteSize/2*builtinSpriteSize + builtinSpriteSize/2) * 4
	assert.Greater(t, h.Texels[centre], uint8(200))
	assert.Equal(t, uint8(0), h.Texels[0])
}

func TestLoadTextureBank_UnknownBuiltin(t *testing.T) {
	_, err := LoadTextureBank(DecodeSprite, []string{BuiltinSpritePrefix + "comet"})
	assert.Error(t, err)
}

func TestTextureBank_GetOutOfRange(t *testing.T) {
	bank, err := LoadTextureBank(DecodeSprite, nil)
	require.NoError(t, err)
	_, err = bank.Get(0)
	assert.ErrorIs(t, err, ErrSpriteIndex)
	_, err = bank.Get(-1)
	assert.ErrorIs(t, err, ErrSpriteIndex)
}
