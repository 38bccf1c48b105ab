package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := solid(30, 20, color.RGBA{R: 200, G: 180, B: 140, A: 255})

	encoders := map[string]func(f *os.File) error{
		"map.png": func(f *os.File) error { return png.Encode(f, src) },
		"map.tif": func(f *os.File) error { return tiff.Encode(f, src, nil) },
		"map.bmp": func(f *os.File) error { return bmp.Encode(f, src) },
	}
	wantFormat := map[string]string{"map.png": "png", "map.tif": "tiff", "map.bmp": "bmp"}

	for name, encode := range encoders {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, encode(f))
		require.NoError(t, f.Close())

		layer, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, wantFormat[name], layer.Format, name)
		assert.Equal(t, 30, layer.Width(), name)
		assert.Equal(t, 20, layer.Height(), name)
		assert.InDelta(t, 30.0, layer.Size().Width, 1e-9)

		r, _, _, _ := layer.Image.At(1, 1).RGBA()
		assert.Equal(t, uint32(200)*0x101, r, name)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o600))
	_, err = Load(junk)
	require.ErrorIs(t, err, image.ErrFormat)
}

func TestIsSupportedFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSupportedFormat("data/small.png"))
	assert.True(t, IsSupportedFormat("SCAN.TIF"))
	assert.True(t, IsSupportedFormat("map.webp"))
	assert.False(t, IsSupportedFormat("polygons.json"))
	assert.Contains(t, SupportedFormats(), ".jpeg")
}

func TestFitWithin(t *testing.T) {
	t.Parallel()

	big := solid(3600, 1000, color.White)
	scaled, factor := FitWithin(big, 1800, 1000)
	assert.InDelta(t, 0.5, factor, 1e-9)
	assert.Equal(t, image.Rect(0, 0, 1800, 500), scaled.Bounds())

	small := solid(100, 50, color.White)
	same, factor := FitWithin(small, 1800, 1000)
	assert.Equal(t, 1.0, factor)
	assert.Same(t, small, same)
}

func TestBlendPixel(t *testing.T) {
	t.Parallel()

	dst := solid(2, 1, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	BlendPixel(dst, 0, 0, color.RGBA{R: 255, G: 255, B: 0, A: 255}, BlendMultiply, 1)
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 0, A: 255}, dst.RGBAAt(0, 0))

	BlendPixel(dst, 1, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255}, BlendNormal, 0.5)
	assert.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, dst.RGBAAt(1, 0))

	assert.NotPanics(t, func() {
		BlendPixel(dst, 5, 5, color.RGBA{A: 255}, BlendMultiply, 1)
	})
}
