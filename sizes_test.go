package iconmaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scaleOf(v float64) *float64 { return &v }

func TestApplyScale_IOS(t *testing.T) {
	assert := assert.New(t)

	sizes := []IconSize{
		{Size: "20x20", Scale: "2x", Filename: "a.png"},
		{Size: "83.5x83.5", Scale: "2x", Filename: "b.png"},
	}

	scaled, err := ApplyScale(sizes, 1.2, IOS)
	assert.NoError(err)
	assert.Equal("24x24", scaled[0].Size)
	assert.Equal("100x100", scaled[1].Size)

	// The input table is left untouched.
	assert.Equal("20x20", sizes[0].Size)
}

func TestApplyScale_Android(t *testing.T) {
	assert := assert.New(t)

	sizes := []IconSize{{Density: "hdpi", Pixels: 72, Folder: "mipmap-hdpi", Filename: "ic_launcher.png"}}

	scaled, err := ApplyScale(sizes, 1.5, Android)
	assert.NoError(err)
	assert.Equal(108, scaled[0].Pixels)
	assert.Equal(72, sizes[0].Pixels)
}

func TestAddCustomSizes_Validation(t *testing.T) {
	assert := assert.New(t)

	base := []IconSize{{Size: "20x20", Scale: "2x", Filename: "a.png"}}

	_, err := AddCustomSizes(base, []IconSize{{Size: "50x50", Scale: "2x"}}, IOS)
	var cfgErr *ConfigValidationError
	assert.ErrorAs(err, &cfgErr)
	assert.Contains(cfgErr.Field, "addSizes[0]")

	_, err = AddCustomSizes(base, []IconSize{{Density: "hdpi", Folder: "mipmap-hdpi", Filename: "x.png"}}, Android)
	assert.ErrorAs(err, &cfgErr)

	// Duplicate filenames are rejected.
	_, err = AddCustomSizes(base, []IconSize{{Size: "50x50", Scale: "2x", Filename: "a.png"}}, IOS)
	assert.ErrorAs(err, &cfgErr)

	out, err := AddCustomSizes(base, []IconSize{{Size: "50x50", Scale: "2x", Filename: "c.png"}}, IOS)
	assert.NoError(err)
	assert.Len(out, 2)
	assert.Equal("universal", out[1].Idiom)
	assert.Len(base, 1)
}

func TestExcludeSizes_IOSPatterns(t *testing.T) {
	assert := assert.New(t)

	sizes := []IconSize{
		{Size: "20x20", Scale: "2x", Filename: "a.png"},
		{Size: "20x20", Scale: "3x", Filename: "b.png"},
		{Size: "60x60", Scale: "2x", Filename: "c.png"},
		{Size: "60x60", Scale: "3x", Filename: "d.png"},
	}

	// Exact size and scale.
	out := ExcludeSizes(sizes, []string{"20x20@2x"}, IOS)
	assert.Len(out, 3)
	assert.Equal("b.png", out[0].Filename)

	// Bare size removes every scale of it.
	out = ExcludeSizes(sizes, []string{"20x20"}, IOS)
	assert.Len(out, 2)

	// Bare scale removes every size with it.
	out = ExcludeSizes(sizes, []string{"@3x"}, IOS)
	assert.Len(out, 2)
	assert.Equal("a.png", out[0].Filename)
	assert.Equal("c.png", out[1].Filename)
}

func TestExcludeSizes_AndroidPatterns(t *testing.T) {
	assert := assert.New(t)
	sizes := androidConfig.IconSizes

	// An exact density only removes that bucket.
	out := ExcludeSizes(sizes, []string{"ldpi"}, Android)
	assert.Len(out, len(sizes)-3)
	for _, s := range out {
		assert.NotEqual("ldpi", s.Density)
	}

	// The monochrome token removes every filename containing it and
	// nothing else.
	out = ExcludeSizes(sizes, []string{"monochrome"}, Android)
	assert.Len(out, len(sizes)-6)
	for _, s := range out {
		assert.NotContains(s.Filename, "monochrome")
	}

	// Folder names match exactly.
	out = ExcludeSizes(sizes, []string{"mipmap-xhdpi"}, Android)
	for _, s := range out {
		assert.NotEqual("mipmap-xhdpi", s.Folder)
	}

	out = ExcludeSizes(sizes, []string{"round"}, Android)
	for _, s := range out {
		assert.NotContains(s.Filename, "round")
	}
}

func TestApplySizeCustomization_PureAndIdempotent(t *testing.T) {
	assert := assert.New(t)

	snapshot := iosConfig.Clone()
	custom := &SizeCustomization{
		Scale: scaleOf(1.2),
		IOS:   &PlatformCustomization{ExcludeSizes: []string{"@3x"}},
	}

	first, err := ApplySizeCustomization(iosConfig, custom)
	assert.NoError(err)
	second, err := ApplySizeCustomization(iosConfig, custom)
	assert.NoError(err)

	assert.Equal(first, second)
	assert.Equal(snapshot, iosConfig)

	// Scenario: 20x20 @2x scaled by 1.2 becomes 24x24, 48 pixels.
	assert.Equal("24x24", first.IconSizes[0].Size)
	px, err := iosPixelSize(first.IconSizes[0])
	assert.NoError(err)
	assert.Equal(48, px)
}

func TestApplySizeCustomization_PerPlatformScaleWins(t *testing.T) {
	assert := assert.New(t)

	custom := &SizeCustomization{
		Scale:   scaleOf(2.0),
		Android: &PlatformCustomization{Scale: scaleOf(1.0)},
	}

	cfg, err := ApplySizeCustomization(androidConfig, custom)
	assert.NoError(err)
	assert.Equal(androidConfig.IconSizes, cfg.IconSizes)
	assert.Equal(androidConfig.AdaptiveSizes, cfg.AdaptiveSizes)
}

func TestApplySizeCustomization_ScalesAdaptiveTable(t *testing.T) {
	assert := assert.New(t)

	cfg, err := ApplySizeCustomization(androidConfig, &SizeCustomization{Scale: scaleOf(2.0)})
	assert.NoError(err)
	assert.Equal(216, cfg.AdaptiveSizes[0].Pixels)
	assert.Equal(108, androidConfig.AdaptiveSizes[0].Pixels)
}

func TestSizeSummary_ReflectsCustomization(t *testing.T) {
	assert := assert.New(t)

	assert.Contains(iosConfig.SizeSummary(), "20x20 @2x")
	assert.Contains(androidConfig.SizeSummary(), "ldpi")

	cfg, err := ApplySizeCustomization(iosConfig, &SizeCustomization{Scale: scaleOf(1.2)})
	assert.NoError(err)
	summary := cfg.SizeSummary()
	assert.Contains(summary, "24x24 @2x")
	assert.NotContains(summary, "20x20 @2x")

	cfg, err = ApplySizeCustomization(androidConfig, &SizeCustomization{
		Scale:   scaleOf(2.0),
		Android: &PlatformCustomization{ExcludeSizes: []string{"ldpi"}},
	})
	assert.NoError(err)
	summary = cfg.SizeSummary()
	assert.NotContains(summary, "ldpi")
	assert.Contains(summary, "216px")
}

func TestValidateCustomization_Ranges(t *testing.T) {
	assert := assert.New(t)

	for _, bad := range []float64{0, -1, 5.0001} {
		_, err := ValidateCustomization(&SizeCustomization{Scale: scaleOf(bad)})
		var cfgErr *ConfigValidationError
		assert.ErrorAs(err, &cfgErr, "scale %v should be rejected", bad)
	}

	for _, ok := range []float64{0.5, 1, 3} {
		warnings, err := ValidateCustomization(&SizeCustomization{Scale: scaleOf(ok)})
		assert.NoError(err)
		assert.Empty(warnings, "scale %v should not warn", ok)
	}

	for _, odd := range []float64{0.4, 3.1} {
		warnings, err := ValidateCustomization(&SizeCustomization{Scale: scaleOf(odd)})
		assert.NoError(err)
		assert.Len(warnings, 1, "scale %v should warn", odd)
	}
}
