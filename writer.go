package iconmaker

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileWriter persists generated assets. The generators only depend on
// this narrow contract so tests can capture output in memory.
type FileWriter interface {
	EnsureDirectory(path string) error
	WriteRaster(img image.Image, path string) error
	WriteText(content string, path string) error
	Exists(path string) bool
}

// diskWriter writes assets to the local filesystem.
type diskWriter struct{}

// NewDiskWriter returns the filesystem-backed FileWriter.
func NewDiskWriter() FileWriter {
	return &diskWriter{}
}

func (d *diskWriter) EnsureDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

func (d *diskWriter) WriteRaster(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	defer file.Close()

	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(file, img, &jpeg.Options{Quality: 100})
	default:
		return png.Encode(file, img)
	}
}

func (d *diskWriter) WriteText(content string, path string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func (d *diskWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
