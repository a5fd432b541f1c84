package iconmaker

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/narek589/ino-icon-maker-sub001/layer"
)

// androidLegacyBaseSize is the resolution the adaptive layers are
// flattened at before being re-resized into every legacy density.
const androidLegacyBaseSize = 512

// androidXMLDir holds the adaptive launcher XML documents.
const androidXMLDir = "mipmap-anydpi-v26"

// AndroidGenerator produces density-bucketed launcher mipmaps and, in
// adaptive mode, the layered adaptive icon assets plus their XML
// documents and flattened legacy fallbacks.
type AndroidGenerator struct {
	deps Deps
	cfg  *PlatformConfig
}

// NewAndroidGenerator returns the Android platform generator.
func NewAndroidGenerator(deps Deps) *AndroidGenerator {
	return &AndroidGenerator{deps: deps, cfg: androidConfig}
}

func (g *AndroidGenerator) Config() *PlatformConfig {
	return g.cfg
}

// LoadSource returns the normalized input raster. In adaptive mode it
// instead flattens the layers once at the legacy base resolution; the
// per-density adaptive layers are rendered separately in GenerateIcons.
func (g *AndroidGenerator) LoadSource(opts *Options) (*image.NRGBA, error) {
	if opts.Adaptive != nil {
		return compositeLayers(g.deps, opts.Adaptive, androidLegacyBaseSize, layer.Android, opts.Padding)
	}
	return loadNormalizedSource(g.deps, g.cfg, opts)
}

// GenerateIcons renders the legacy mipmaps and, in adaptive mode, the
// per-density layer files and launcher XML documents as well. The src
// raster is the normalized input, or the flattened layer composite in
// adaptive mode.
func (g *AndroidGenerator) GenerateIcons(cfg *PlatformConfig, src *image.NRGBA, outDir string, opts *Options) ([]string, error) {
	files, err := g.generateLegacy(cfg, src, outDir)
	if err != nil {
		return nil, err
	}

	if opts.Adaptive != nil {
		adaptive, err := g.generateAdaptive(cfg, outDir, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, adaptive...)
	}
	return files, nil
}

// generateLegacy resizes the source into every legacy spec. Filenames
// containing "_round" receive a circular alpha mask so the corners
// become transparent. All folders are created up front, then every spec
// is rendered concurrently.
func (g *AndroidGenerator) generateLegacy(cfg *PlatformConfig, src *image.NRGBA, outDir string) ([]string, error) {
	if err := g.ensureFolders(cfg, outDir); err != nil {
		return nil, err
	}

	files := make([]string, len(cfg.IconSizes))
	tasks := make([]func() error, len(cfg.IconSizes))

	for i, spec := range cfg.IconSizes {
		i, spec := i, spec
		rel := filepath.Join(spec.Folder, spec.Filename)
		tasks[i] = func() error {
			img := imaging.Resize(src, spec.Pixels, spec.Pixels, imaging.Lanczos)
			if strings.Contains(spec.Filename, "_round") {
				img = layer.ApplyRoundMask(img)
			}
			if err := g.deps.Writer.WriteRaster(img, filepath.Join(outDir, rel)); err != nil {
				return &GenerationError{Platform: cfg.Name, Asset: rel, Err: err}
			}
			files[i] = rel
			return nil
		}
	}

	if err := runAll(tasks); err != nil {
		return nil, err
	}
	return files, nil
}

// generateAdaptive renders the foreground, background and monochrome
// layer of every adaptive density bucket, one task per layer file, then
// writes the two launcher XML documents.
func (g *AndroidGenerator) generateAdaptive(cfg *PlatformConfig, outDir string, opts *Options) ([]string, error) {
	layers := opts.Adaptive

	// The monochrome layer defaults to the foreground source when it is
	// not supplied explicitly.
	monochrome := layers.Monochrome
	if !monochrome.IsSet() {
		monochrome = layers.Foreground
	}

	type unit struct {
		source   layer.Source
		role     layer.Role
		filename string
	}
	units := []unit{
		{layers.Foreground, layer.Foreground, "ic_launcher_foreground.png"},
		{layers.Background, layer.Background, "ic_launcher_background.png"},
		{monochrome, layer.Foreground, "ic_launcher_monochrome.png"},
	}

	files := make([]string, 0, len(cfg.AdaptiveSizes)*len(units)+2)
	var tasks []func() error

	for _, spec := range cfg.AdaptiveSizes {
		if err := g.deps.Writer.EnsureDirectory(filepath.Join(outDir, spec.Folder)); err != nil {
			return nil, err
		}
		for _, u := range units {
			spec, u := spec, u
			rel := filepath.Join(spec.Folder, u.filename)
			files = append(files, rel)
			tasks = append(tasks, func() error {
				img, err := renderLayer(g.deps, u.source, spec.Pixels, u.role, layer.Android, opts.Padding)
				if err != nil {
					return &GenerationError{Platform: cfg.Name, Asset: rel, Err: err}
				}
				if err := g.deps.Writer.WriteRaster(img, filepath.Join(outDir, rel)); err != nil {
					return &GenerationError{Platform: cfg.Name, Asset: rel, Err: err}
				}
				return nil
			})
		}
	}

	if err := runAll(tasks); err != nil {
		return nil, err
	}

	xmlFiles, err := g.writeLauncherXML(outDir, layers.Monochrome.IsSet())
	if err != nil {
		return nil, err
	}
	return append(files, xmlFiles...), nil
}

// writeLauncherXML emits ic_launcher.xml and ic_launcher_round.xml with
// identical content. The monochrome element is only referenced when a
// monochrome source was supplied explicitly.
func (g *AndroidGenerator) writeLauncherXML(outDir string, withMonochrome bool) ([]string, error) {
	xmlDir := filepath.Join(outDir, androidXMLDir)
	if err := g.deps.Writer.EnsureDirectory(xmlDir); err != nil {
		return nil, err
	}

	monochrome := ""
	if withMonochrome {
		monochrome = "\n    <monochrome android:drawable=\"@mipmap/ic_launcher_monochrome\"/>"
	}
	content := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<adaptive-icon xmlns:android="http://schemas.android.com/apk/res/android">
    <background android:drawable="@mipmap/ic_launcher_background"/>
    <foreground android:drawable="@mipmap/ic_launcher_foreground"/>%s
</adaptive-icon>
`, monochrome)

	var files []string
	for _, name := range []string{"ic_launcher.xml", "ic_launcher_round.xml"} {
		rel := filepath.Join(androidXMLDir, name)
		if err := g.deps.Writer.WriteText(content, filepath.Join(outDir, rel)); err != nil {
			return nil, err
		}
		files = append(files, rel)
	}
	return files, nil
}

// ensureFolders creates every density folder referenced by the resolved
// size table before any concurrent rendering starts.
func (g *AndroidGenerator) ensureFolders(cfg *PlatformConfig, outDir string) error {
	seen := make(map[string]bool)
	for _, spec := range cfg.IconSizes {
		if seen[spec.Folder] {
			continue
		}
		seen[spec.Folder] = true
		if err := g.deps.Writer.EnsureDirectory(filepath.Join(outDir, spec.Folder)); err != nil {
			return err
		}
	}
	return nil
}

// GenerateMetadata is a no-op: Android has no central manifest file.
func (g *AndroidGenerator) GenerateMetadata(cfg *PlatformConfig, outDir string) (string, error) {
	return "", nil
}
