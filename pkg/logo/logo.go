package logo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// MaxUploadSize is the ceiling for logo uploads (2MB). Oversized files are
// rejected before any invoice state is touched.
const MaxUploadSize = 2 * 1024 * 1024

// maxEdge bounds the stored logo; invoices only ever show it at header size.
const maxEdge = 512

var (
	ErrTooLarge    = fmt.Errorf("logo: file exceeds %d bytes", MaxUploadSize)
	ErrUndecodable = fmt.Errorf("logo: file is not a decodable image")
)

// DataURL reads an uploaded image, validates the size ceiling, downsizes it to
// a sane bound and returns a PNG data URL for the invoice logo field.
func DataURL(r io.Reader, size int64) (string, error) {
	if size > MaxUploadSize {
		return "", ErrTooLarge
	}

	// the declared size is client-supplied; cap the read as well
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("logo: failed to read upload: %w", err)
	}
	if int64(len(data)) > MaxUploadSize {
		return "", ErrTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrUndecodable
	}

	img = fit(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("logo: failed to encode image: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func fit(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxEdge && b.Dy() <= maxEdge {
		return img
	}
	return imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
}
