package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// PNGOptions control PNG encoding
type PNGOptions struct {
	Gamma float64 // zero means DefaultGamma

	// A non-zero preview size scales the image with bilinear filtering.
	// If only one side is set the other keeps the aspect ratio.
	PreviewWidth  uint
	PreviewHeight uint
}

func (o PNGOptions) gamma() float64 {
	if o.Gamma <= 0 {
		return DefaultGamma
	}
	return o.Gamma
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img *Image, opts PNGOptions) error {
	var out image.Image = img.ToRGBA(opts.gamma())
	if opts.PreviewWidth > 0 || opts.PreviewHeight > 0 {
		out = resize.Resize(opts.PreviewWidth, opts.PreviewHeight, out, resize.Bilinear)
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// PNGBytes encodes img as PNG into memory
func PNGBytes(img *Image, opts PNGOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
