package devtools

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// SaveScreenshot writes img as screenshot-<timestamp>.png in dir and returns
// the file's path.
func SaveScreenshot(img image.Image, dir string, now time.Time) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.png", now.Format("20060102-150405"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	return path, nil
}
