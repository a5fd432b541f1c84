package iconmaker

import (
	"encoding/json"
	"image"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/narek589/ino-icon-maker-sub001/layer"
)

// iosCompositeSize is the resolution adaptive layers are flattened at
// before the composite enters the standard per-size pass.
const iosCompositeSize = 1024

// IOSGenerator produces an AppIcon.appiconset: one flat PNG per size
// spec plus the Contents.json manifest.
type IOSGenerator struct {
	deps Deps
	cfg  *PlatformConfig
}

// NewIOSGenerator returns the iOS platform generator.
func NewIOSGenerator(deps Deps) *IOSGenerator {
	return &IOSGenerator{deps: deps, cfg: iosConfig}
}

func (g *IOSGenerator) Config() *PlatformConfig {
	return g.cfg
}

// LoadSource returns the normalized input raster, or, in adaptive mode,
// a flattened foreground-over-background composite that then flows
// through the pipeline as if it were the source image.
func (g *IOSGenerator) LoadSource(opts *Options) (*image.NRGBA, error) {
	if opts.Adaptive != nil {
		return compositeLayers(g.deps, opts.Adaptive, iosCompositeSize, layer.IOS, opts.Padding)
	}
	return loadNormalizedSource(g.deps, g.cfg, opts)
}

// iosPixelSize derives the pixel edge of a spec: point size times the
// numeric scale suffix, rounded to the nearest integer.
func iosPixelSize(s IconSize) (int, error) {
	points, _, err := parseSizeString(s.Size)
	if err != nil {
		return 0, err
	}
	scale, err := parseScaleSuffix(s.Scale)
	if err != nil {
		return 0, err
	}
	return int(math.Round(points * float64(scale))), nil
}

// GenerateIcons resizes the prepared source once per size spec and
// writes every file directly into the icon set directory. All specs are
// rendered concurrently.
func (g *IOSGenerator) GenerateIcons(cfg *PlatformConfig, src *image.NRGBA, outDir string, opts *Options) ([]string, error) {
	files := make([]string, len(cfg.IconSizes))
	tasks := make([]func() error, len(cfg.IconSizes))

	for i, spec := range cfg.IconSizes {
		i, spec := i, spec
		tasks[i] = func() error {
			px, err := iosPixelSize(spec)
			if err != nil {
				return &GenerationError{Platform: cfg.Name, Asset: spec.Filename, Err: err}
			}
			img := imaging.Resize(src, px, px, imaging.Lanczos)
			if err := g.deps.Writer.WriteRaster(img, filepath.Join(outDir, spec.Filename)); err != nil {
				return &GenerationError{Platform: cfg.Name, Asset: spec.Filename, Err: err}
			}
			files[i] = spec.Filename
			return nil
		}
	}

	if err := runAll(tasks); err != nil {
		return nil, err
	}
	return files, nil
}

type contentsImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Platform string `json:"platform"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contentsFile struct {
	Images []contentsImage `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// GenerateMetadata writes the Contents.json manifest with one entry per
// size spec and returns its path.
func (g *IOSGenerator) GenerateMetadata(cfg *PlatformConfig, outDir string) (string, error) {
	manifest := contentsFile{
		Images: make([]contentsImage, len(cfg.IconSizes)),
		Info:   contentsInfo{Author: "ino-icon-maker", Version: 1},
	}
	for i, spec := range cfg.IconSizes {
		manifest.Images[i] = contentsImage{
			Filename: spec.Filename,
			Idiom:    spec.Idiom,
			Platform: string(cfg.Key),
			Scale:    spec.Scale,
			Size:     spec.Size,
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding the icon set manifest")
	}

	path := filepath.Join(outDir, cfg.MetadataFile)
	if err := g.deps.Writer.WriteText(string(data)+"\n", path); err != nil {
		return "", errors.Wrap(err, "writing the icon set manifest")
	}
	return path, nil
}
