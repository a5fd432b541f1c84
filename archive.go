package iconmaker

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
)

// Archiver packages a prepared output directory into a distributable
// archive and returns the archive path.
type Archiver interface {
	CreateArchive(sourceDir, destPath, rootName string) (string, error)
}

// zipArchiver writes standard zip archives.
type zipArchiver struct{}

// NewZipArchiver returns the zip-backed Archiver.
func NewZipArchiver() Archiver {
	return &zipArchiver{}
}

func (z *zipArchiver) CreateArchive(sourceDir, destPath, rootName string) (string, error) {
	out, err := os.Create(destPath)
	if err != nil {
		return "", &ArchiveError{Dest: destPath, Err: err}
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	absDest, _ := filepath.Abs(destPath)

	err = filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		// The archive may be created next to (or inside) the directory
		// being packaged; never include it in itself.
		if abs, err := filepath.Abs(path); err == nil && abs == absDest {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if rootName != "" {
			name = rootName + "/" + name
		}

		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(w, file)
		return err
	})
	if err != nil {
		return "", &ArchiveError{Dest: destPath, Err: err}
	}
	return destPath, nil
}
