package layer

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func opaqueImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Source{}, Parse(""))
	assert.Equal(FromColor("#FF5722"), Parse("#FF5722"))
	assert.Equal(FromImage("fg.png"), Parse("fg.png"))
	assert.False(Parse("").IsSet())
	assert.True(Parse("#111").IsSet())
}

func TestContentRatio_Clamped(t *testing.T) {
	assert := assert.New(t)

	pad := DefaultPadding()
	assert.InDelta(AndroidForegroundRatio, pad.ContentRatio(Android), 1e-9)
	assert.InDelta(IOSForegroundRatio, pad.ContentRatio(IOS), 1e-9)

	// A zero scale on the Android base still yields the clamped floor,
	// never a zero-size content area.
	pad.AndroidScale = 0
	assert.InDelta(MinContentRatio, pad.ContentRatio(Android), 1e-9)

	pad.IOSScale = 0.01
	assert.InDelta(MinContentRatio, pad.ContentRatio(IOS), 1e-9)
}

func TestRenderColor(t *testing.T) {
	assert := assert.New(t)

	img, err := RenderColor("#FF5722", 64)
	assert.NoError(err)
	assert.Equal(64, img.Bounds().Dx())
	assert.Equal(64, img.Bounds().Dy())

	want := color.NRGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}
	assert.EqualValues(want, img.At(0, 0))
	assert.EqualValues(want, img.At(32, 32))

	_, err = RenderColor("orange", 64)
	assert.Error(err)
}

func TestRenderBackground_CoversCanvas(t *testing.T) {
	assert := assert.New(t)

	src := opaqueImage(200, 100, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out := RenderBackground(src, 64)

	assert.Equal(64, out.Bounds().Dx())
	assert.Equal(64, out.Bounds().Dy())

	// Cover policy: no transparent pixel anywhere on the canvas.
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			_, _, _, a := out.At(x, y).RGBA()
			assert.EqualValues(0xffff, a, "pixel (%d,%d)", x, y)
		}
	}
}

func TestRenderForeground_PaddedCorners(t *testing.T) {
	assert := assert.New(t)

	src := opaqueImage(100, 100, color.NRGBA{R: 200, A: 255})
	out := RenderForeground(src, 100, 0.54)

	assert.Equal(100, out.Bounds().Dx())
	assert.Equal(100, out.Bounds().Dy())

	// Content occupies the centered 54x54 area; the corner regions are
	// transparent padding.
	for _, pt := range []image.Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		_, _, _, a := out.At(pt.X, pt.Y).RGBA()
		assert.Zero(a, "corner %v", pt)
	}
	_, _, _, a := out.At(50, 50).RGBA()
	assert.EqualValues(0xffff, a)
}

func TestRenderForeground_PaddingAbsorbsRounding(t *testing.T) {
	assert := assert.New(t)

	// 101 * 0.54 rounds to 55, leaving 46 pixels of padding split 23/23;
	// an odd remainder must still produce the exact target size.
	src := opaqueImage(64, 64, color.NRGBA{B: 255, A: 255})
	out := RenderForeground(src, 101, 0.54)
	assert.Equal(101, out.Bounds().Dx())
	assert.Equal(101, out.Bounds().Dy())
}

func TestRenderForeground_ZoomCrop(t *testing.T) {
	assert := assert.New(t)

	src := opaqueImage(100, 100, color.NRGBA{G: 128, A: 255})
	out := RenderForeground(src, 80, 1.5)

	// Crop mode still produces the exact target size, fully covered by
	// content at the center.
	assert.Equal(80, out.Bounds().Dx())
	assert.Equal(80, out.Bounds().Dy())
	_, _, _, a := out.At(40, 40).RGBA()
	assert.EqualValues(0xffff, a)
	_, _, _, a = out.At(0, 0).RGBA()
	assert.EqualValues(0xffff, a)
}

func TestRenderForeground_UpscalesSmallSource(t *testing.T) {
	assert := assert.New(t)

	// A source smaller than the content area is scaled up to fill it,
	// not pasted at its native size.
	src := opaqueImage(50, 50, color.NRGBA{R: 200, A: 255})
	out := RenderForeground(src, 200, 0.54)

	assert.Equal(200, out.Bounds().Dx())
	assert.Equal(200, out.Bounds().Dy())

	// contentSize = round(200 * 0.54) = 108, so the content box spans
	// 46..153 on both axes.
	for _, pt := range []image.Point{{60, 100}, {100, 60}, {47, 100}, {100, 152}} {
		_, _, _, a := out.At(pt.X, pt.Y).RGBA()
		assert.EqualValues(0xffff, a, "content pixel %v", pt)
	}
	for _, pt := range []image.Point{{0, 0}, {199, 199}, {45, 100}, {100, 154}} {
		_, _, _, a := out.At(pt.X, pt.Y).RGBA()
		assert.Zero(a, "padding pixel %v", pt)
	}
}

func TestRenderForeground_ZoomCropUpscalesSmallSource(t *testing.T) {
	assert := assert.New(t)

	// Crop mode renders the content oversized even when the source is
	// smaller than the target, so the extracted window is fully covered.
	src := opaqueImage(50, 50, color.NRGBA{G: 128, A: 255})
	out := RenderForeground(src, 100, 1.5)

	assert.Equal(100, out.Bounds().Dx())
	assert.Equal(100, out.Bounds().Dy())
	for _, pt := range []image.Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}, {50, 50}} {
		_, _, _, a := out.At(pt.X, pt.Y).RGBA()
		assert.EqualValues(0xffff, a, "pixel %v", pt)
	}
}

func TestRenderForeground_NonSquareContain(t *testing.T) {
	assert := assert.New(t)

	// The longer edge of a 50x25 source scales to the content size; the
	// shorter edge keeps the aspect ratio, leaving bands above and below.
	src := opaqueImage(50, 25, color.NRGBA{B: 255, A: 255})
	out := RenderForeground(src, 200, 0.5)

	// Content is 100x50 centered at (50..149, 75..124).
	_, _, _, a := out.At(100, 100).RGBA()
	assert.EqualValues(0xffff, a)
	_, _, _, a = out.At(100, 70).RGBA()
	assert.Zero(a)
	_, _, _, a = out.At(100, 130).RGBA()
	assert.Zero(a)
}

func TestFlatten_OpaqueResult(t *testing.T) {
	assert := assert.New(t)

	bg, err := RenderColor(DefaultBackgroundColor, 32)
	assert.NoError(err)
	fg := RenderForeground(opaqueImage(32, 32, color.NRGBA{R: 255, A: 255}), 32, 0.5)

	out := Flatten(fg, bg)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			_, _, _, a := out.At(x, y).RGBA()
			assert.EqualValues(0xffff, a, "pixel (%d,%d)", x, y)
		}
	}
	// The foreground shows at the center, the background at the edges.
	assert.EqualValues(color.NRGBA{R: 255, A: 255}, out.At(16, 16))
	assert.EqualValues(color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 255}, out.At(0, 0))
}
