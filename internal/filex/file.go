// Package filex reads local files for upload.
package filex

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxImageSize bounds images accepted by ReadImage.
const MaxImageSize = 10 << 20

var ErrNotImage = errors.New("file is not an image")

// ReadImage loads the file at path and sniffs its media type. Files larger
// than MaxImageSize or not detected as image/* are rejected.
func ReadImage(path string) ([]byte, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxImageSize {
		return nil, "", fmt.Errorf("%s is larger than %d bytes", path, MaxImageSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("%w: %s", ErrNotImage, contentType)
	}

	return data, contentType, nil
}
