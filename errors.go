package iconmaker

import "fmt"

// InputValidationError is returned when the source image is missing,
// unreadable or not a supported format.
type InputValidationError struct {
	Path   string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Path, e.Reason)
}

// ConfigValidationError is returned when a size customization cannot be
// applied: a scale factor out of range or a malformed add/exclude entry.
type ConfigValidationError struct {
	Field  string
	Reason string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("invalid configuration %q: %s", e.Field, e.Reason)
}

// OutputConflictError is returned when the target directory already
// exists and the force option was not set.
type OutputConflictError struct {
	Dir string
}

func (e *OutputConflictError) Error() string {
	return fmt.Sprintf("output directory %q already exists, use force to overwrite", e.Dir)
}

// DecodeError is returned by an ImageSource when the file content
// cannot be decoded into a raster.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode %q: %s", e.Path, e.Reason)
}

// GenerationError wraps a per-asset transform failure with the platform
// and asset that produced it.
type GenerationError struct {
	Platform string
	Asset    string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: generating %q: %v", e.Platform, e.Asset, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ArchiveError wraps a failure of the archiving collaborator.
type ArchiveError struct {
	Dest string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("could not create archive %q: %v", e.Dest, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }
