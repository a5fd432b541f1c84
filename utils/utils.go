package utils

import (
	"net/http"
	"os"
)

// Contains reports whether a slice contains the given element.
func Contains[T comparable](values []T, value T) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// DetectContentType detects the file type by reading the MIME type
// information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil {
		return "", err
	}

	// Always returns a valid content type, falling back to
	// "application/octet-stream" if nothing else matched.
	return http.DetectContentType(buffer[:n]), nil
}
