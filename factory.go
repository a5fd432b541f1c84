package iconmaker

import "fmt"

// Platforms lists the supported platform keys in generation order.
func Platforms() []PlatformKind {
	return []PlatformKind{IOS, Android}
}

// NewGenerator maps a platform key to its concrete generator with the
// shared collaborators injected.
func NewGenerator(key PlatformKind, deps Deps) (Platform, error) {
	switch key {
	case IOS:
		return NewIOSGenerator(deps), nil
	case Android:
		return NewAndroidGenerator(deps), nil
	}
	return nil, fmt.Errorf("unsupported platform %q", key)
}

// DefaultDeps wires the production collaborators: the local file image
// source, the disk writer and the zip archiver.
func DefaultDeps() Deps {
	return Deps{
		Source:   NewFileImageSource(1024),
		Writer:   NewDiskWriter(),
		Archiver: NewZipArchiver(),
	}
}
