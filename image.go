package iconmaker

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/narek589/ino-icon-maker-sub001/utils"
)

// ImageInfo describes a decoded source image.
type ImageInfo struct {
	Width  int
	Height int
	Format string
}

// ImageSource loads source rasters for the generators. Implementations
// fail with a DecodeError on unreadable or unsupported input.
type ImageSource interface {
	Load(path string) (*image.NRGBA, *ImageInfo, error)
	SupportedFormats() []string
}

// fileImageSource decodes local files. Raster formats go through the
// registered image decoders; SVG files are rasterized with oksvg.
type fileImageSource struct {
	// svgSize is the minimum edge SVG sources are rasterized at, so
	// vector input enters the pipeline sharp instead of being upscaled.
	svgSize int
}

// NewFileImageSource returns an ImageSource reading local files. SVG
// sources are rasterized at no less than svgSize pixels on their longer
// edge.
func NewFileImageSource(svgSize int) ImageSource {
	return &fileImageSource{svgSize: svgSize}
}

func (f *fileImageSource) SupportedFormats() []string {
	return []string{"png", "jpeg", "gif", "bmp", "webp", "svg"}
}

func (f *fileImageSource) Load(path string) (*image.NRGBA, *ImageInfo, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err := f.rasterizeSVG(path)
		if err != nil {
			return nil, nil, err
		}
		return img, &ImageInfo{
			Width:  img.Bounds().Dx(),
			Height: img.Bounds().Dy(),
			Format: "svg",
		}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Reason: err.Error()}
	}
	defer file.Close()

	src, format, err := image.Decode(file)
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Reason: err.Error()}
	}

	img := imgToNRGBA(src)
	return img, &ImageInfo{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Format: format,
	}, nil
}

// rasterizeSVG renders an SVG file onto a raster sized from its view
// box, but never below the configured minimum edge.
func (f *fileImageSource) rasterizeSVG(path string) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Reason: err.Error()}
	}
	defer file.Close()

	icon, err := oksvg.ReadIconStream(file)
	if err != nil {
		return nil, &DecodeError{Path: path, Reason: err.Error()}
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	size := utils.Max(utils.Max(w, h), f.svgSize)

	sw := size
	sh := size
	if w > 0 && h > 0 {
		if w >= h {
			sh = int(math.Round(float64(size) * float64(h) / float64(w)))
		} else {
			sw = int(math.Round(float64(size) * float64(w) / float64(h)))
		}
	}

	icon.SetTarget(0, 0, float64(sw), float64(sh))
	rgba := image.NewRGBA(image.Rect(0, 0, sw, sh))
	dasher := rasterx.NewDasher(sw, sh, rasterx.NewScannerGV(sw, sh, rgba, rgba.Bounds()))
	icon.Draw(dasher, 1.0)

	return imgToNRGBA(rgba), nil
}

// isImageFile is a format probing predicate: it only answers yes or no
// and never raises, per the error propagation policy.
func isImageFile(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return true
	}
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(ctype, "image/")
}

// normalizeSource prepares a decoded raster for the per-size resize
// pass: images smaller than minSize on their longer edge are upscaled
// uniformly with Lanczos resampling, and non-square images are centered
// on a transparent square canvas sized to the larger dimension.
func normalizeSource(img *image.NRGBA, minSize int) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	if longer := utils.Max(w, h); longer < minSize {
		factor := float64(minSize) / float64(longer)
		w = int(math.Round(float64(w) * factor))
		h = int(math.Round(float64(h) * factor))
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	if w != h {
		side := utils.Max(w, h)
		canvas := imaging.New(side, side, color.NRGBA{})
		img = imaging.PasteCenter(canvas, img)
	}
	return img
}

// imgToNRGBA converts any image type to *image.NRGBA with the min point
// at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}
	return dst
}
