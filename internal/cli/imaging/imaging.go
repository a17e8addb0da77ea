// Package imaging downscales photos on the caller's own device before
// upload, the way the web client resizes through a canvas. The server only
// ever sees the compressed data URL.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxEdge is the longest allowed side after downscaling, in pixels.
	MaxEdge = 1280
	// JPEGQuality matches the web client's canvas export quality.
	JPEGQuality = 80
)

// Downscale decodes the image, scales it down so the longest side is at
// most maxEdge (never scaling up), and re-encodes as JPEG.
func Downscale(src []byte, maxEdge, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxEdge || h > maxEdge {
		var nw, nh int
		if w >= h {
			nw = maxEdge
			nh = h * maxEdge / w
		} else {
			nh = maxEdge
			nw = w * maxEdge / h
		}
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Bytes(), nil
}

// DataURL wraps JPEG bytes into the inline payload the API expects.
func DataURL(jpegData []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegData)
}
