package iconmaker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hard and soft bounds for customization scale factors. Values outside
// the soft range are accepted but reported as warnings.
const (
	maxScaleFactor     = 5.0
	softMinScaleFactor = 0.5
	softMaxScaleFactor = 3.0
)

// parseSizeString parses a "WxH" size string into its two dimensions.
func parseSizeString(s string) (w, h float64, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, &ConfigValidationError{Field: "size", Reason: fmt.Sprintf("%q is not of the form WxH", s)}
	}
	if w, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, &ConfigValidationError{Field: "size", Reason: fmt.Sprintf("%q has a non numeric width", s)}
	}
	if h, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return 0, 0, &ConfigValidationError{Field: "size", Reason: fmt.Sprintf("%q has a non numeric height", s)}
	}
	return w, h, nil
}

// parseScaleSuffix parses an iOS scale suffix such as "2x".
func parseScaleSuffix(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(s, "x"))
	if err != nil || n <= 0 {
		return 0, &ConfigValidationError{Field: "scale", Reason: fmt.Sprintf("%q is not a valid scale suffix", s)}
	}
	return n, nil
}

// ApplyScale scales every entry of a size table by the given factor and
// returns a new table. iOS point sizes are parsed, scaled, rounded to
// the nearest integer and re-serialized; Android pixel sizes are scaled
// directly. The input slice is left untouched.
func ApplyScale(sizes []IconSize, factor float64, kind PlatformKind) ([]IconSize, error) {
	out := make([]IconSize, len(sizes))
	copy(out, sizes)

	for i := range out {
		switch kind {
		case IOS:
			w, h, err := parseSizeString(out[i].Size)
			if err != nil {
				return nil, err
			}
			sw := int(math.Round(w * factor))
			sh := int(math.Round(h * factor))
			out[i].Size = fmt.Sprintf("%dx%d", sw, sh)
		case Android:
			out[i].Pixels = int(math.Round(float64(out[i].Pixels) * factor))
		}
	}
	return out, nil
}

func scaleAdaptiveSizes(sizes []AdaptiveSize, factor float64) []AdaptiveSize {
	out := make([]AdaptiveSize, len(sizes))
	copy(out, sizes)
	for i := range out {
		out[i].Pixels = int(math.Round(float64(out[i].Pixels) * factor))
	}
	return out
}

// AddCustomSizes validates each addition against the platform's
// mandatory fields and appends it to a new copy of the table. Filenames
// must stay unique within the table.
func AddCustomSizes(sizes []IconSize, additions []IconSize, kind PlatformKind) ([]IconSize, error) {
	out := make([]IconSize, len(sizes), len(sizes)+len(additions))
	copy(out, sizes)

	seen := make(map[string]bool, len(out))
	for _, s := range out {
		seen[s.Filename] = true
	}

	for i, add := range additions {
		entry := fmt.Sprintf("addSizes[%d]", i)
		switch kind {
		case IOS:
			if add.Size == "" || add.Scale == "" || add.Filename == "" {
				return nil, &ConfigValidationError{Field: entry, Reason: "iOS additions need size, scale and filename"}
			}
			if _, _, err := parseSizeString(add.Size); err != nil {
				return nil, &ConfigValidationError{Field: entry, Reason: fmt.Sprintf("malformed size %q", add.Size)}
			}
			if _, err := parseScaleSuffix(add.Scale); err != nil {
				return nil, &ConfigValidationError{Field: entry, Reason: fmt.Sprintf("malformed scale %q", add.Scale)}
			}
			if add.Idiom == "" {
				add.Idiom = "universal"
			}
		case Android:
			if add.Density == "" || add.Pixels <= 0 || add.Folder == "" || add.Filename == "" {
				return nil, &ConfigValidationError{Field: entry, Reason: "Android additions need density, a positive pixel size, folder and filename"}
			}
		}
		if seen[add.Filename] {
			return nil, &ConfigValidationError{Field: entry, Reason: fmt.Sprintf("duplicate filename %q", add.Filename)}
		}
		seen[add.Filename] = true
		out = append(out, add)
	}
	return out, nil
}

// matchIOSPattern reports whether an iOS entry matches one exclusion
// pattern. Supported forms: "WxH@Nx" (exact), "WxH" (any scale) and
// "@Nx" (any size).
func matchIOSPattern(s IconSize, pattern string) bool {
	if strings.HasPrefix(pattern, "@") {
		return s.Scale == strings.TrimPrefix(pattern, "@")
	}
	if size, scale, found := strings.Cut(pattern, "@"); found {
		return s.Size == size && s.Scale == scale
	}
	return s.Size == pattern
}

// matchAndroidPattern reports whether an Android entry matches one
// exclusion pattern: an exact density, an exact folder name or a
// filename substring. The "monochrome" and "round" tokens are plain
// filename substrings.
func matchAndroidPattern(s IconSize, pattern string) bool {
	if s.Density == pattern || s.Folder == pattern {
		return true
	}
	return strings.Contains(s.Filename, pattern)
}

// ExcludeSizes removes every entry matching any of the given patterns
// and returns the remaining entries as a new slice.
func ExcludeSizes(sizes []IconSize, patterns []string, kind PlatformKind) []IconSize {
	out := make([]IconSize, 0, len(sizes))
	for _, s := range sizes {
		excluded := false
		for _, p := range patterns {
			if kind == IOS && matchIOSPattern(s, p) {
				excluded = true
				break
			}
			if kind == Android && matchAndroidPattern(s, p) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, s)
		}
	}
	return out
}

func excludeAdaptiveSizes(sizes []AdaptiveSize, patterns []string) []AdaptiveSize {
	out := make([]AdaptiveSize, 0, len(sizes))
	for _, s := range sizes {
		excluded := false
		for _, p := range patterns {
			if s.Density == p || s.Folder == p {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, s)
		}
	}
	return out
}

// ApplySizeCustomization clones the base configuration and applies the
// customization to it: the effective scale first (a per-platform scale
// beats the global one), then additions, then exclusions, on both the
// icon table and, for Android, the adaptive table. The base is never
// mutated; applying the same customization twice from the same base
// yields identical results.
func ApplySizeCustomization(base *PlatformConfig, c *SizeCustomization) (*PlatformConfig, error) {
	cfg := base.Clone()
	if c == nil {
		return cfg, nil
	}
	if _, err := ValidateCustomization(c); err != nil {
		return nil, err
	}

	pc := c.forPlatform(base.Key)

	var scale float64
	if c.Scale != nil {
		scale = *c.Scale
	}
	if pc != nil && pc.Scale != nil {
		scale = *pc.Scale
	}
	if scale != 0 && scale != 1 {
		var err error
		if cfg.IconSizes, err = ApplyScale(cfg.IconSizes, scale, base.Key); err != nil {
			return nil, err
		}
		if base.Key == Android {
			cfg.AdaptiveSizes = scaleAdaptiveSizes(cfg.AdaptiveSizes, scale)
		}
	}

	if pc != nil && len(pc.AddSizes) > 0 {
		var err error
		if cfg.IconSizes, err = AddCustomSizes(cfg.IconSizes, pc.AddSizes, base.Key); err != nil {
			return nil, err
		}
	}

	if pc != nil && len(pc.ExcludeSizes) > 0 {
		cfg.IconSizes = ExcludeSizes(cfg.IconSizes, pc.ExcludeSizes, base.Key)
		if base.Key == Android {
			cfg.AdaptiveSizes = excludeAdaptiveSizes(cfg.AdaptiveSizes, pc.ExcludeSizes)
		}
	}
	return cfg, nil
}

func checkScale(field string, scale *float64, warnings []string) ([]string, error) {
	if scale == nil {
		return warnings, nil
	}
	if *scale <= 0 || *scale > maxScaleFactor {
		return warnings, &ConfigValidationError{
			Field:  field,
			Reason: fmt.Sprintf("scale %v is out of range (0, %v]", *scale, maxScaleFactor),
		}
	}
	if *scale < softMinScaleFactor || *scale > softMaxScaleFactor {
		warnings = append(warnings, fmt.Sprintf(
			"%s: scale %v is outside the usual range [%v, %v]",
			field, *scale, softMinScaleFactor, softMaxScaleFactor))
	}
	return warnings, nil
}

// ValidateCustomization range-checks every scale factor before any
// transform runs. It returns non-fatal warnings for unusual but
// accepted values.
func ValidateCustomization(c *SizeCustomization) ([]string, error) {
	if c == nil {
		return nil, nil
	}
	var warnings []string
	var err error

	if warnings, err = checkScale("scale", c.Scale, warnings); err != nil {
		return warnings, err
	}
	if c.IOS != nil {
		if warnings, err = checkScale("ios.scale", c.IOS.Scale, warnings); err != nil {
			return warnings, err
		}
	}
	if c.Android != nil {
		if warnings, err = checkScale("android.scale", c.Android.Scale, warnings); err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}
