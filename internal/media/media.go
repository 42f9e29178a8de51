// Package media turns fetched bytes into pictures a presentation can embed.
//
// PNG, JPEG and GIF are embedded as-is. WebP, BMP and TIFF are decoded and
// re-encoded as PNG so every viewer can display them. Anything that is not
// a raster image is rejected.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Sentinel errors for image decoding.
var (
	ErrEmpty       = errors.New("empty image data")
	ErrNotImage    = errors.New("content is not an image")
	ErrUnsupported = errors.New("unsupported image format")
	ErrCorrupt     = errors.New("corrupt image data")
	ErrTooLarge    = errors.New("image dimensions too large")
)

// MaxPixels bounds width times height of any accepted image. Dimensions
// are read from the header before anything is decoded.
const MaxPixels = 40_000_000

// Image is a decoded, embeddable picture.
type Image struct {
	Data        []byte
	ContentType string // e.g. "image/png"
	Ext         string // file extension without dot, e.g. "png"
	Width       int    // pixels
	Height      int    // pixels
}

// native maps embeddable MIME types to their part extension.
var native = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/gif":  "gif",
}

// convertible lists formats that are re-encoded as PNG.
var convertible = map[string]bool{
	"image/webp": true,
	"image/bmp":  true,
	"image/tiff": true,
}

// Decode sniffs data and returns an embeddable Image.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	mime := mimetype.Detect(data).String()
	// Strip parameters such as "; charset=binary".
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}

	if ext, ok := native[mime]; ok {
		cfg, err := decodeConfig(data)
		if err != nil {
			return nil, err
		}
		return &Image{Data: data, ContentType: mime, Ext: ext, Width: cfg.Width, Height: cfg.Height}, nil
	}

	if convertible[mime] {
		return toPNG(data)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupported, mime)
}

// decodeConfig reads the image header and enforces MaxPixels.
func decodeConfig(data []byte) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Config{}, fmt.Errorf("%w: %dx%d", ErrCorrupt, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return image.Config{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, MaxPixels)
	}
	return cfg, nil
}

// toPNG decodes a registered format and re-encodes it as PNG.
func toPNG(data []byte) (*Image, error) {
	if _, err := decodeConfig(data); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: re-encoding as png: %v", ErrCorrupt, err)
	}

	bounds := img.Bounds()
	return &Image{
		Data:        buf.Bytes(),
		ContentType: "image/png",
		Ext:         "png",
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// HeightFor returns the height that keeps the aspect ratio at the given width.
// Zero dimensions yield the width itself (square).
func (i *Image) HeightFor(width int64) int64 {
	if i == nil || i.Width <= 0 || i.Height <= 0 {
		return width
	}
	return width * int64(i.Height) / int64(i.Width)
}
