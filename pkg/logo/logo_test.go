package logo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDataURL(t *testing.T) {
	data := pngBytes(t, 64, 32)

	url, err := DataURL(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("unexpected data URL prefix: %.40s", url)
	}
}

func TestDataURL_RejectsOversized(t *testing.T) {
	data := pngBytes(t, 8, 8)

	_, err := DataURL(bytes.NewReader(data), MaxUploadSize+1)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("declared oversize: err = %v, want ErrTooLarge", err)
	}

	// declared size lies; the actual payload is still capped
	big := bytes.Repeat([]byte{0xFF}, MaxUploadSize+10)
	_, err = DataURL(bytes.NewReader(big), 100)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("actual oversize: err = %v, want ErrTooLarge", err)
	}
}

func TestDataURL_RejectsNonImage(t *testing.T) {
	_, err := DataURL(strings.NewReader("not an image"), 12)
	if !errors.Is(err, ErrUndecodable) {
		t.Errorf("err = %v, want ErrUndecodable", err)
	}
}
