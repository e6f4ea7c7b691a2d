package pdfrenderer

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
)

// imageCache keeps decoded raster files for the lifetime of the renderer. The
// logo is the same on every label, so it is read from disk once.
type imageCache struct {
	mu     sync.Mutex
	images map[string]image.Image
}

func newImageCache() *imageCache {
	return &imageCache{images: make(map[string]image.Image)}
}

func (c *imageCache) load(path string) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[path]; ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode image %s: empty image", path)
	}

	c.images[path] = img
	return img, nil
}
