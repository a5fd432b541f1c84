package iconmaker

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.png")
	file, err := os.Create(path)
	assert.NoError(t, err)
	defer file.Close()
	assert.NoError(t, png.Encode(file, img))
	return path
}

func TestFileImageSource_Load(t *testing.T) {
	assert := assert.New(t)

	path := writeTestPNG(t, testImage(50, 30, color.NRGBA{R: 255, A: 255}))

	src := NewFileImageSource(1024)
	img, info, err := src.Load(path)
	assert.NoError(err)
	assert.Equal(50, info.Width)
	assert.Equal(30, info.Height)
	assert.Equal("png", info.Format)
	assert.Equal(50, img.Bounds().Dx())
}

func TestFileImageSource_DecodeError(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "bogus.png")
	assert.NoError(os.WriteFile(path, []byte("not an image"), 0644))

	src := NewFileImageSource(1024)
	_, _, err := src.Load(path)
	var decodeErr *DecodeError
	assert.ErrorAs(err, &decodeErr)

	_, _, err = src.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorAs(err, &decodeErr)
}

func TestNormalizeSource_UpscalesToMinimum(t *testing.T) {
	assert := assert.New(t)

	// A 512 square against a 1024 minimum is upscaled uniformly and
	// needs no padding.
	out := normalizeSource(testImage(512, 512, color.NRGBA{R: 1, A: 255}), 1024)
	assert.Equal(1024, out.Bounds().Dx())
	assert.Equal(1024, out.Bounds().Dy())
	_, _, _, a := out.At(0, 0).RGBA()
	assert.EqualValues(0xffff, a)
}

func TestNormalizeSource_SquaresOnTransparentCanvas(t *testing.T) {
	assert := assert.New(t)

	// An 800x400 source above the minimum is centered on an 800 square
	// with transparent bands at the top and bottom.
	out := normalizeSource(testImage(800, 400, color.NRGBA{G: 128, A: 255}), 512)
	assert.Equal(800, out.Bounds().Dx())
	assert.Equal(800, out.Bounds().Dy())

	_, _, _, a := out.At(400, 10).RGBA()
	assert.Zero(a, "top band should be transparent")
	_, _, _, a = out.At(400, 790).RGBA()
	assert.Zero(a, "bottom band should be transparent")
	_, _, _, a = out.At(400, 400).RGBA()
	assert.EqualValues(0xffff, a, "center keeps the source content")
}

func TestIsImageFile(t *testing.T) {
	assert := assert.New(t)

	path := writeTestPNG(t, testImage(8, 8, color.NRGBA{A: 255}))
	assert.True(isImageFile(path))

	text := filepath.Join(t.TempDir(), "notes.txt")
	assert.NoError(os.WriteFile(text, []byte("plain text"), 0644))
	assert.False(isImageFile(text))
}

func TestImgToNRGBA_OffsetBounds(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(4, 4, 12, 12))
	src.SetNRGBA(4, 4, color.NRGBA{R: 9, A: 255})

	out := imgToNRGBA(src)
	assert.Equal(image.Pt(0, 0), out.Bounds().Min)
	assert.Equal(8, out.Bounds().Dx())
	assert.EqualValues(color.NRGBA{R: 9, A: 255}, out.At(0, 0))
}
