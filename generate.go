package iconmaker

import (
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/narek589/ino-icon-maker-sub001/layer"
)

// Deps bundles the collaborators shared by every platform generator.
type Deps struct {
	Source   ImageSource
	Writer   FileWriter
	Archiver Archiver
}

// AdaptiveLayers holds the layer sources of an adaptive generation
// request. Foreground is mandatory; Background falls back to the
// default dark fill and Monochrome falls back to the foreground source.
type AdaptiveLayers struct {
	Foreground layer.Source
	Background layer.Source
	Monochrome layer.Source
}

// Options configures one generate call.
type Options struct {
	Input         string
	OutputDir     string
	Force         bool
	CreateArchive bool
	Customization *SizeCustomization
	Adaptive      *AdaptiveLayers
	Padding       layer.PaddingConfig
}

// Platform supplies the platform specific steps the shared pipeline
// invokes: source preparation, per-size icon generation and the
// optional metadata manifest.
type Platform interface {
	Config() *PlatformConfig
	LoadSource(opts *Options) (*image.NRGBA, error)
	GenerateIcons(cfg *PlatformConfig, src *image.NRGBA, outDir string, opts *Options) ([]string, error)
	GenerateMetadata(cfg *PlatformConfig, outDir string) (string, error)
}

// Generate runs the shared generation pipeline for one platform:
// validate the input, resolve the effective size table, prepare the
// output directory, load the source, generate every asset, emit the
// metadata and optionally archive the result. Errors from any state
// abort the pipeline and are wrapped with the platform name; assets
// already written to disk are left in place, and a re-run with Force
// starts over in the same directory.
func Generate(p Platform, deps Deps, opts *Options) (*GenerationResult, error) {
	base := p.Config()

	result, err := generate(p, deps, opts, base)
	if err != nil {
		return nil, errors.Wrap(err, base.Name)
	}
	return result, nil
}

func generate(p Platform, deps Deps, opts *Options, base *PlatformConfig) (*GenerationResult, error) {
	if err := validateInput(deps, opts); err != nil {
		return nil, err
	}

	cfg, err := ApplySizeCustomization(base, opts.Customization)
	if err != nil {
		return nil, err
	}

	outDir := opts.OutputDir
	if cfg.OutputDirName != "" {
		outDir = filepath.Join(outDir, cfg.OutputDirName)
	}
	if deps.Writer.Exists(outDir) && !opts.Force {
		return nil, &OutputConflictError{Dir: outDir}
	}
	if err := deps.Writer.EnsureDirectory(outDir); err != nil {
		return nil, err
	}

	src, err := p.LoadSource(opts)
	if err != nil {
		return nil, err
	}

	files, err := p.GenerateIcons(cfg, src, outDir, opts)
	if err != nil {
		return nil, err
	}

	metadataPath, err := p.GenerateMetadata(cfg, outDir)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{
		Success:      true,
		Platform:     string(cfg.Key),
		OutputDir:    outDir,
		Files:        files,
		MetadataPath: metadataPath,
	}

	if opts.CreateArchive {
		dest := filepath.Join(opts.OutputDir, cfg.ArchiveName)
		rootName := cfg.OutputDirName
		if rootName == "" {
			rootName = string(cfg.Key)
		}
		zipPath, err := deps.Archiver.CreateArchive(outDir, dest, rootName)
		if err != nil {
			return nil, err
		}
		result.ZipPath = zipPath
	}
	return result, nil
}

// validateInput checks the generation input before any work starts. In
// adaptive mode the foreground source is mandatory; otherwise the input
// file must exist and look like a supported image.
func validateInput(deps Deps, opts *Options) error {
	if opts.Adaptive != nil {
		fg := opts.Adaptive.Foreground
		if !fg.IsSet() {
			return &InputValidationError{Reason: "adaptive mode requires a foreground layer"}
		}
		if fg.Kind == layer.ImageSource {
			return validateImagePath(fg.Path)
		}
		return nil
	}
	return validateImagePath(opts.Input)
}

func validateImagePath(path string) error {
	if path == "" {
		return &InputValidationError{Path: path, Reason: "no input file given"}
	}
	if _, err := os.Stat(path); err != nil {
		return &InputValidationError{Path: path, Reason: "file does not exist"}
	}
	if !isImageFile(path) {
		return &InputValidationError{Path: path, Reason: "not a supported image format"}
	}
	return nil
}

// loadNormalizedSource is the default LoadSource used outside adaptive
// mode: decode the input and normalize it to a square raster of at
// least the platform's minimum source size.
func loadNormalizedSource(deps Deps, cfg *PlatformConfig, opts *Options) (*image.NRGBA, error) {
	img, _, err := deps.Source.Load(opts.Input)
	if err != nil {
		return nil, err
	}
	return normalizeSource(img, cfg.MinSourceSize), nil
}

// renderLayer resolves one layer source into a raster of the requested
// size. Image foregrounds honor the effective content ratio from the
// padding configuration; image backgrounds cover the canvas.
func renderLayer(deps Deps, src layer.Source, size int, role layer.Role, platform layer.Platform, pad layer.PaddingConfig) (*image.NRGBA, error) {
	switch src.Kind {
	case layer.ColorSource:
		img, err := renderColorLayer(src.Color, size)
		if err != nil {
			return nil, err
		}
		return img, nil
	case layer.DefaultSource:
		if role == layer.Background {
			return renderColorLayer(layer.DefaultBackgroundColor, size)
		}
		return nil, &InputValidationError{Reason: "missing layer source"}
	}

	img, _, err := deps.Source.Load(src.Path)
	if err != nil {
		return nil, err
	}
	if role == layer.Background {
		return layer.RenderBackground(img, size), nil
	}
	return layer.RenderForeground(img, size, pad.ContentRatio(platform)), nil
}

func renderColorLayer(hex string, size int) (*image.NRGBA, error) {
	img, err := layer.RenderColor(hex, size)
	if err != nil {
		return nil, &ConfigValidationError{Field: "layer color", Reason: err.Error()}
	}
	return img, nil
}

// compositeLayers flattens the foreground over the background at the
// given size, producing the opaque raster single-image workflows feed
// into their standard per-size resize pass.
func compositeLayers(deps Deps, layers *AdaptiveLayers, size int, platform layer.Platform, pad layer.PaddingConfig) (*image.NRGBA, error) {
	background, err := renderLayer(deps, layers.Background, size, layer.Background, platform, pad)
	if err != nil {
		return nil, err
	}
	foreground, err := renderLayer(deps, layers.Foreground, size, layer.Foreground, platform, pad)
	if err != nil {
		return nil, err
	}
	return layer.Flatten(foreground, background), nil
}

// runAll executes the per-asset tasks concurrently and joins on all of
// them, a fan-out/fan-in barrier with fail-fast semantics: every task
// runs to completion but the first error wins. Tasks share the source
// raster read-only; every transform allocates its own output.
func runAll(tasks []func() error) error {
	var wg sync.WaitGroup
	errc := make(chan error, len(tasks))

	wg.Add(len(tasks))
	for _, task := range tasks {
		task := task
		go func() {
			defer wg.Done()
			if err := task(); err != nil {
				errc <- err
			}
		}()
	}
	wg.Wait()
	close(errc)

	return <-errc
}
