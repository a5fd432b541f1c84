package layer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/narek589/ino-icon-maker-sub001/utils"
)

// Role tells the renderer how a layer participates in an adaptive icon.
type Role int

const (
	// Foreground layers are fit into the safe zone of the canvas and
	// padded (or zoom-cropped when the content ratio exceeds 1).
	Foreground Role = iota
	// Background layers cover the whole canvas with no padding.
	Background
)

// Platform selects which padding defaults apply.
type Platform int

const (
	IOS Platform = iota
	Android
)

const (
	// IOSForegroundRatio is the default fraction of the canvas the iOS
	// composite foreground occupies.
	IOSForegroundRatio = 0.8

	// AndroidForegroundRatio is the default content ratio for Android
	// adaptive foregrounds. It intentionally stays below the documented
	// safe zone so output matches earlier releases; see
	// AndroidSafeZoneRatio.
	AndroidForegroundRatio = 0.54

	// AndroidSafeZoneRatio is the safe zone the adaptive icon format
	// defines: 66dp of content on a 108dp canvas (~0.611). Note that it
	// disagrees with AndroidForegroundRatio above; both are kept as
	// separate constants so the difference stays visible.
	AndroidSafeZoneRatio = 66.0 / 108.0

	// MinContentRatio is the floor for the effective content ratio, so
	// foreground content can never collapse to a zero-size raster.
	MinContentRatio = 0.1

	// DefaultBackgroundColor fills background layers when no explicit
	// source is given.
	DefaultBackgroundColor = "#111111"
)

// SourceKind tags the variants of a layer source.
type SourceKind int

const (
	// DefaultSource leaves the choice to the renderer: the default dark
	// background for background layers, unset for foregrounds.
	DefaultSource SourceKind = iota
	// ColorSource is a solid hex color fill.
	ColorSource
	// ImageSource is a path to an image file.
	ImageSource
)

// Source identifies where a layer's pixels come from: a solid color, an
// image file, or the platform default.
type Source struct {
	Kind  SourceKind
	Color string
	Path  string
}

// FromColor builds a solid color source.
func FromColor(hex string) Source { return Source{Kind: ColorSource, Color: hex} }

// FromImage builds an image file source.
func FromImage(path string) Source { return Source{Kind: ImageSource, Path: path} }

// Parse interprets a command line layer value: strings starting with
// "#" are hex colors, everything else is an image path. The empty
// string is the default source.
func Parse(s string) Source {
	switch {
	case s == "":
		return Source{}
	case strings.HasPrefix(s, "#"):
		return FromColor(s)
	default:
		return FromImage(s)
	}
}

// IsSet reports whether the source was explicitly supplied.
func (s Source) IsSet() bool { return s.Kind != DefaultSource }

// PaddingConfig carries the per-platform content ratios and the caller
// adjustable scale factors. It is passed explicitly on every render
// call instead of living as mutable state on a shared processor, so one
// engine instance can serve concurrent generations safely.
type PaddingConfig struct {
	IOSRatio     float64
	AndroidRatio float64
	IOSScale     float64
	AndroidScale float64
}

// DefaultPadding returns the built-in ratios with neutral scales.
func DefaultPadding() PaddingConfig {
	return PaddingConfig{
		IOSRatio:     IOSForegroundRatio,
		AndroidRatio: AndroidForegroundRatio,
		IOSScale:     1.0,
		AndroidScale: 1.0,
	}
}

// ContentRatio resolves the effective foreground content ratio for a
// platform. The result never drops below MinContentRatio.
func (p PaddingConfig) ContentRatio(platform Platform) float64 {
	ratio, scale := p.IOSRatio, p.IOSScale
	if platform == Android {
		ratio, scale = p.AndroidRatio, p.AndroidScale
	}
	return utils.Max(ratio*scale, MinContentRatio)
}

// parseHexColor validates and parses a "#RGB" or "#RRGGBB" color.
func parseHexColor(hex string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 7:
		_, err = fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(hex, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("hex color must be of the form #RGB or #RRGGBB")
	}
	if err != nil {
		return c, fmt.Errorf("invalid color %q: %v", hex, err)
	}
	return c, nil
}

// RenderColor produces a flat opaque raster of the given hex color.
func RenderColor(hex string, size int) (*image.NRGBA, error) {
	if _, err := parseHexColor(hex); err != nil {
		return nil, err
	}
	dc := gg.NewContext(size, size)
	dc.SetHexColor(hex)
	dc.Clear()
	return imaging.Clone(dc.Image()), nil
}

// RenderBackground resizes an image with a cover policy: the whole
// canvas is filled, the aspect ratio is preserved and the overflow is
// cropped around the center.
func RenderBackground(img image.Image, size int) *image.NRGBA {
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
}

// RenderForeground fits an image into the content area given by ratio.
// When the content fits (ratio <= 1) the result is centered on a
// transparent canvas; the two paddings of each axis are computed
// independently so integer rounding remainders land on one side. When
// ratio exceeds 1 the content is rendered oversized and the centered
// target window is extracted, cropping the overflow.
func RenderForeground(img image.Image, size int, ratio float64) *image.NRGBA {
	contentSize := int(math.Round(float64(size) * ratio))
	if contentSize < 1 {
		contentSize = 1
	}

	fitted := containResize(img, contentSize)
	fw, fh := fitted.Bounds().Dx(), fitted.Bounds().Dy()

	canvas := imaging.New(size, size, color.NRGBA{})
	left := (size - fw) / 2
	top := (size - fh) / 2

	// Paste clips to the canvas bounds, so negative offsets in the
	// zoom/crop case extract the centered window for free.
	return imaging.Paste(canvas, fitted, image.Pt(left, top))
}

// containResize scales an image so its longer edge equals side while
// preserving the aspect ratio. Unlike a plain fit it also upscales
// sources smaller than the target, so the content always fills the
// requested area.
func containResize(img image.Image, side int) *image.NRGBA {
	b := img.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	scale := float64(side) / utils.Max(sw, sh)

	w := int(math.Round(sw * scale))
	h := int(math.Round(sh * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Flatten composes the foreground over the background and returns the
// result. With an opaque background the output raster is opaque.
func Flatten(foreground, background *image.NRGBA) *image.NRGBA {
	bmp := NewBitmap(background.Bounds())
	op := NewComposite()
	op.Set(SrcOver)
	op.Draw(bmp, foreground, background)
	return bmp.Img
}
