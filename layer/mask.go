package layer

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// CircleMask renders an opaque inscribed circle on a transparent
// canvas. Only its alpha channel matters to the masking operation.
func CircleMask(size int) *image.NRGBA {
	dc := gg.NewContext(size, size)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	half := float64(size) / 2
	dc.DrawCircle(half, half, half)
	dc.Fill()
	return imaging.Clone(dc.Image())
}

// ApplyRoundMask makes every pixel outside the inscribed circle fully
// transparent while keeping the source alpha inside, using a
// destination-in composition of the circle over the icon.
func ApplyRoundMask(img *image.NRGBA) *image.NRGBA {
	mask := CircleMask(img.Bounds().Dx())
	bmp := NewBitmap(img.Bounds())
	op := NewComposite()
	op.Set(DstIn)
	op.Draw(bmp, mask, img)
	return bmp.Img
}
