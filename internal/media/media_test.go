package media

// Notes:
// - Fixtures are generated in-process with image/png and image/gif so the
//   tests do not depend on binary files.
// - WebP conversion is covered indirectly: x/image only decodes WebP, so the
//   BMP path exercises the same re-encode branch.

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"runtime"
	"testing"

	"golang.org/x/image/bmp"
)

func solidImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 116, B: 218, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Parallel()

	var gifBuf bytes.Buffer
	if err := gif.Encode(&gifBuf, solidImage(3, 2), nil); err != nil {
		t.Fatal(err)
	}
	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, solidImage(5, 4)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		data     []byte
		wantType string
		wantExt  string
		wantW    int
		wantH    int
		wantErr  error
	}{
		{name: "png passthrough", data: encodePNG(t, 4, 2), wantType: "image/png", wantExt: "png", wantW: 4, wantH: 2},
		{name: "gif passthrough", data: gifBuf.Bytes(), wantType: "image/gif", wantExt: "gif", wantW: 3, wantH: 2},
		{name: "bmp converted", data: bmpBuf.Bytes(), wantType: "image/png", wantExt: "png", wantW: 5, wantH: 4},
		{name: "empty", data: nil, wantErr: ErrEmpty},
		{name: "html is not an image", data: []byte("<html><body>404</body></html>"), wantErr: ErrNotImage},
		{name: "svg unsupported", data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`), wantErr: ErrUnsupported},
		{name: "truncated png", data: encodePNG(t, 4, 2)[:20], wantErr: ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if got.ContentType != tt.wantType || got.Ext != tt.wantExt {
				t.Errorf("Decode() type = %s/%s, want %s/%s", got.ContentType, got.Ext, tt.wantType, tt.wantExt)
			}
			if got.Width != tt.wantW || got.Height != tt.wantH {
				t.Errorf("Decode() size = %dx%d, want %dx%d", got.Width, got.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Oversized dimensions - rejected from the header alone
// ---------------------------------------------------------------------------

// bmpHeader is a 54-byte uncompressed 32bpp BMP header with no pixel data.
func bmpHeader(w, h int32) []byte {
	b := make([]byte, 54)
	copy(b, "BM")
	binary.LittleEndian.PutUint32(b[2:], 54)
	binary.LittleEndian.PutUint32(b[10:], 54)
	binary.LittleEndian.PutUint32(b[14:], 40)
	binary.LittleEndian.PutUint32(b[18:], uint32(w))
	binary.LittleEndian.PutUint32(b[22:], uint32(h))
	binary.LittleEndian.PutUint16(b[26:], 1)
	binary.LittleEndian.PutUint16(b[28:], 32)
	return b
}

// pngWithSize rewrites the IHDR dimensions of a small PNG.
func pngWithSize(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := encodePNG(t, 1, 1)
	binary.BigEndian.PutUint32(data[16:], w)
	binary.BigEndian.PutUint32(data[20:], h)
	binary.BigEndian.PutUint32(data[29:], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestDecode_TooLarge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "bmp header", data: bmpHeader(12000, 12000)},
		{name: "png header", data: pngWithSize(t, 10000, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Decode(tt.data); !errors.Is(err, ErrTooLarge) {
				t.Errorf("Decode() error = %v, want ErrTooLarge", err)
			}
		})
	}
}

func TestDecode_TooLargeDoesNotAllocatePixels(t *testing.T) {
	data := bmpHeader(12000, 12000)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := Decode(data)
	runtime.ReadMemStats(&after)

	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Decode() error = %v, want ErrTooLarge", err)
	}
	if grew := after.TotalAlloc - before.TotalAlloc; grew > 16<<20 {
		t.Errorf("Decode() allocated %d bytes for a 54-byte header, want < 16MiB", grew)
	}
}

func TestDecode_WithinBudget(t *testing.T) {
	t.Parallel()

	img, err := Decode(pngWithSize(t, 4000, 3000))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if img.Width != 4000 || img.Height != 3000 {
		t.Errorf("Decode() size = %dx%d, want 4000x3000", img.Width, img.Height)
	}
}

func TestImage_HeightFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		img   *Image
		width int64
		want  int64
	}{
		{name: "landscape", img: &Image{Width: 200, Height: 100}, width: 1000, want: 500},
		{name: "portrait", img: &Image{Width: 100, Height: 300}, width: 10, want: 30},
		{name: "unknown size", img: &Image{}, width: 42, want: 42},
		{name: "nil image", img: nil, width: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.img.HeightFor(tt.width); got != tt.want {
				t.Errorf("HeightFor(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}
