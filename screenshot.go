package heartbloom

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Draw. The PNG is written to RunConfig.ScreenshotDir with a
// timestamped filename.
func (h *host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label.
func (h *host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	defer func() { h.screenshotQueue = h.screenshotQueue[:0] }()

	dir := h.cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.log.Error("screenshot", "dir", dir, "err", err)
		return
	}

	bounds := screen.Bounds()
	w, ht := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*ht)
	screen.ReadPixels(pixels)
	h.saveScreenshots(dir, time.Now().Format("20060102_150405"), unpremultiply(pixels, w, ht))
}

// saveScreenshots writes img once per queued label.
func (h *host) saveScreenshots(dir, stamp string, img image.Image) {
	for _, label := range h.screenshotQueue {
		name, altered := screenshotName(stamp, label)
		if altered {
			h.log.Warn("screenshot label rewritten", "label", label, "file", name)
		}
		path := filepath.Join(dir, name)
		if err := savePNG(path, img); err != nil {
			h.log.Error("screenshot", "err", err)
			continue
		}
		h.log.Info("screenshot saved", "path", path, "time", h.engine.Time())
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// savePNG encodes img at path with the fastest PNG compression.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("screenshot: %w", cerr))
		}
	}()
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot: encode %s: %w", path, err)
	}
	return nil
}

// screenshotName builds "<stamp>_<label>.png". Characters outside
// [A-Za-z0-9._-] become underscores and an empty label becomes "frame".
// altered reports whether the label had to change.
func screenshotName(stamp, label string) (name string, altered bool) {
	clean := strings.TrimSpace(label)
	if clean == "" {
		clean = "frame"
	}
	clean = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '.', r == '_':
			return r
		}
		return '_'
	}, clean)
	return stamp + "_" + clean + ".png", clean != label
}
