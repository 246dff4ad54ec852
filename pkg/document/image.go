package document

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// DataURI encodes an image payload as a base64 data URI. When mime is empty
// the type is sniffed from the content.
func DataURI(mime string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(mime)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DataURIFromFile reads path and encodes it with DataURI.
func DataURIFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("document: read image: %w", err)
	}
	return DataURI("", data)
}

// IsImageDataURI reports whether uri is a base64 image data URI.
func IsImageDataURI(uri string) bool {
	if !strings.HasPrefix(uri, "data:image/") {
		return false
	}
	return strings.Contains(uri, ";base64,")
}
