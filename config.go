package iconmaker

import (
	"fmt"
	"strings"
)

// PlatformKind identifies one of the supported target platforms.
type PlatformKind string

const (
	IOS     PlatformKind = "ios"
	Android PlatformKind = "android"
)

// IconSize describes a single output asset. iOS entries carry a point
// size, a scale suffix and an idiom; Android entries carry a density
// bucket, a pixel size and a destination folder. The filename is common
// to both and is unique within one platform table.
type IconSize struct {
	Size     string `yaml:"size,omitempty" json:"size,omitempty"`
	Scale    string `yaml:"scale,omitempty" json:"scale,omitempty"`
	Idiom    string `yaml:"idiom,omitempty" json:"idiom,omitempty"`
	Density  string `yaml:"density,omitempty" json:"density,omitempty"`
	Pixels   int    `yaml:"pixels,omitempty" json:"pixels,omitempty"`
	Folder   string `yaml:"folder,omitempty" json:"folder,omitempty"`
	Filename string `yaml:"filename,omitempty" json:"filename,omitempty"`
}

// AdaptiveSize describes one density bucket of the Android adaptive
// icon table. Each bucket produces a foreground, a background and a
// monochrome layer file.
type AdaptiveSize struct {
	Density string
	Pixels  int
	Folder  string
}

// PlatformConfig is the immutable template describing everything one
// platform generator needs: the output layout, the metadata file and
// the ordered size tables. Instances are constant program data; size
// customization always operates on a Clone.
type PlatformConfig struct {
	Name          string
	Key           PlatformKind
	OutputDirName string // empty when assets go directly into the output directory
	MetadataFile  string // empty when the platform has no central manifest
	MinSourceSize int
	ArchiveName   string
	IconSizes     []IconSize
	AdaptiveSizes []AdaptiveSize
}

// Clone returns a structural deep copy. The receiver is never mutated
// by any transform in this package.
func (c *PlatformConfig) Clone() *PlatformConfig {
	dup := *c
	dup.IconSizes = make([]IconSize, len(c.IconSizes))
	copy(dup.IconSizes, c.IconSizes)
	if c.AdaptiveSizes != nil {
		dup.AdaptiveSizes = make([]AdaptiveSize, len(c.AdaptiveSizes))
		copy(dup.AdaptiveSizes, c.AdaptiveSizes)
	}
	return &dup
}

// SizeSummary renders a human readable listing of the size tables. It
// is built from the resolved tables, so a customized configuration
// describes the entries it will actually generate.
func (c *PlatformConfig) SizeSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s icon set (%d files):\n", c.Name, len(c.IconSizes))
	for _, s := range c.IconSizes {
		if s.Size != "" {
			fmt.Fprintf(&b, "  %s @%s  %s\n", s.Size, s.Scale, s.Filename)
			continue
		}
		name := s.Filename
		if s.Folder != "" {
			name = s.Folder + "/" + s.Filename
		}
		fmt.Fprintf(&b, "  %-8s %4dpx  %s\n", s.Density, s.Pixels, name)
	}
	if len(c.AdaptiveSizes) > 0 {
		b.WriteString("adaptive layers:\n")
		for _, s := range c.AdaptiveSizes {
			fmt.Fprintf(&b, "  %-8s %4dpx  %s\n", s.Density, s.Pixels, s.Folder)
		}
	}
	return b.String()
}

// PlatformCustomization holds the per-platform part of a size
// customization request. A nil Scale means "not set"; an explicit zero
// is rejected by validation.
type PlatformCustomization struct {
	Scale        *float64   `yaml:"scale,omitempty" json:"scale,omitempty"`
	AddSizes     []IconSize `yaml:"add,omitempty" json:"add,omitempty"`
	ExcludeSizes []string   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// SizeCustomization describes how the built-in size tables should be
// transformed for one generation request. Applying it never mutates the
// base configuration.
type SizeCustomization struct {
	Scale   *float64               `yaml:"scale,omitempty" json:"scale,omitempty"`
	IOS     *PlatformCustomization `yaml:"ios,omitempty" json:"ios,omitempty"`
	Android *PlatformCustomization `yaml:"android,omitempty" json:"android,omitempty"`
}

func (c *SizeCustomization) forPlatform(key PlatformKind) *PlatformCustomization {
	switch key {
	case IOS:
		return c.IOS
	case Android:
		return c.Android
	}
	return nil
}

// GenerationResult is handed to the caller after one generate call. It
// is immutable after construction; the engine keeps no reference to it.
type GenerationResult struct {
	Success      bool
	Platform     string
	OutputDir    string
	Files        []string
	MetadataPath string
	ZipPath      string
}

func iosIcon(size, scale string) IconSize {
	return IconSize{
		Size:     size,
		Scale:    scale,
		Idiom:    "universal",
		Filename: fmt.Sprintf("AppIcon-%s@%s.png", size, scale),
	}
}

func androidIcons(density string, px int) []IconSize {
	folder := "mipmap-" + density
	return []IconSize{
		{Density: density, Pixels: px, Folder: folder, Filename: "ic_launcher.png"},
		{Density: density, Pixels: px, Folder: folder, Filename: "ic_launcher_round.png"},
		{Density: density, Pixels: px, Folder: folder, Filename: "ic_launcher_monochrome.png"},
	}
}

// iosConfig is the Xcode 15 style universal app icon set.
var iosConfig = &PlatformConfig{
	Name:          "iOS",
	Key:           IOS,
	OutputDirName: "AppIcon.appiconset",
	MetadataFile:  "Contents.json",
	MinSourceSize: 1024,
	ArchiveName:   "AppIcon-ios.zip",
	IconSizes: []IconSize{
		iosIcon("20x20", "2x"),
		iosIcon("20x20", "3x"),
		iosIcon("29x29", "2x"),
		iosIcon("29x29", "3x"),
		iosIcon("38x38", "2x"),
		iosIcon("38x38", "3x"),
		iosIcon("40x40", "2x"),
		iosIcon("40x40", "3x"),
		iosIcon("60x60", "2x"),
		iosIcon("60x60", "3x"),
		iosIcon("64x64", "2x"),
		iosIcon("64x64", "3x"),
		iosIcon("68x68", "2x"),
		iosIcon("76x76", "2x"),
		iosIcon("83.5x83.5", "2x"),
		iosIcon("1024x1024", "1x"),
	},
}

// androidConfig covers the legacy launcher mipmaps for every density
// bucket plus the Play Store artwork and the adaptive icon table.
var androidConfig = &PlatformConfig{
	Name:          "Android",
	Key:           Android,
	MinSourceSize: 512,
	ArchiveName:   "AppIcon-android.zip",
	IconSizes: concat(
		androidIcons("ldpi", 36),
		androidIcons("mdpi", 48),
		androidIcons("hdpi", 72),
		androidIcons("xhdpi", 96),
		androidIcons("xxhdpi", 144),
		androidIcons("xxxhdpi", 192),
		[]IconSize{{Density: "web", Pixels: 512, Filename: "ic_launcher-playstore.png"}},
	),
	AdaptiveSizes: []AdaptiveSize{
		{Density: "mdpi", Pixels: 108, Folder: "mipmap-mdpi"},
		{Density: "hdpi", Pixels: 162, Folder: "mipmap-hdpi"},
		{Density: "xhdpi", Pixels: 216, Folder: "mipmap-xhdpi"},
		{Density: "xxhdpi", Pixels: 324, Folder: "mipmap-xxhdpi"},
		{Density: "xxxhdpi", Pixels: 432, Folder: "mipmap-xxxhdpi"},
	},
}

func concat(groups ...[]IconSize) []IconSize {
	var out []IconSize
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
