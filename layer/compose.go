// Package layer renders adaptive icon layers: solid color fills,
// cover-cropped backgrounds and padded (or zoom-cropped) foregrounds.
// It also implements the small set of Porter-Duff composition
// operations the generators need, since the image/draw core package
// only provides source and source-over-destination.
package layer

import (
	"image"
	"image/color"
	"math"

	"github.com/narek589/ino-icon-maker-sub001/utils"
)

// The supported composition operations. SrcOver flattens a foreground
// layer onto its backdrop; DstIn keeps the backdrop only where the
// source is opaque, which is how the circular launcher mask is applied.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstIn   = "dst_in"
)

// Bitmap wraps the destination raster of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap initializes an empty composition target.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewComposite initializes a Composite with SrcOver active.
func NewComposite() *Composite {
	return &Composite{
		current: SrcOver,
		ops:     []string{Copy, SrcOver, DstIn},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src over dst into the bitmap using the active
// operation. Both images are interpreted through their straight-alpha
// channels, so partially transparent layers blend correctly.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA) {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	var rn, gn, bn, an float64

	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			s := src.NRGBAAt(x, y)
			d := dst.NRGBAAt(x, y)

			rsn := float64(s.R) / 255
			gsn := float64(s.G) / 255
			bsn := float64(s.B) / 255
			asn := float64(s.A) / 255

			rbn := float64(d.R) / 255
			gbn := float64(d.G) / 255
			bbn := float64(d.B) / 255
			abn := float64(d.A) / 255

			switch op.current {
			case Copy:
				rn, gn, bn, an = asn*rsn, asn*gsn, asn*bsn, asn
			case SrcOver:
				rn = asn*rsn + abn*rbn*(1-asn)
				gn = asn*gsn + abn*gbn*(1-asn)
				bn = asn*bsn + abn*bbn*(1-asn)
				an = asn + abn*(1-asn)
			case DstIn:
				rn = abn * rbn * asn
				gn = abn * gbn * asn
				bn = abn * bbn * asn
				an = abn * asn
			}

			// The channels above are alpha-premultiplied; divide the
			// alpha back out before storing into the NRGBA buffer.
			var r, g, b uint8
			if an > 0 {
				r = uint8(math.Round(rn / an * 255))
				g = uint8(math.Round(gn / an * 255))
				b = uint8(math.Round(bn / an * 255))
			}
			a := uint8(math.Round(an * 255))

			bitmap.Img.Set(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
}
