// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package snapshot post-processes screenshots captured over a session:
// decoding, cropping, scaling, and writing them out as PNG or JPEG.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Snapshot wraps a decoded screenshot.
type Snapshot struct {
	img image.Image
}

// Decode decodes raw screenshot bytes. WebDriver servers produce PNG,
// but any format registered with image.Decode is accepted.
func Decode(data []byte) (*Snapshot, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}
	return &Snapshot{img: img}, nil
}

// Image returns the underlying image.
func (s *Snapshot) Image() image.Image { return s.img }

// Bounds returns the snapshot's pixel bounds.
func (s *Snapshot) Bounds() image.Rectangle { return s.img.Bounds() }

// Crop returns a snapshot restricted to the given rectangle.
func (s *Snapshot) Crop(rect image.Rectangle) *Snapshot {
	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	if si, ok := s.img.(subImager); ok {
		return &Snapshot{img: si.SubImage(rect)}
	}

	cropped := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(cropped, cropped.Bounds(), s.img, rect.Min, draw.Src)
	return &Snapshot{img: cropped}
}

// Scale resizes the snapshot to the given width and height using
// CatmullRom interpolation. A zero width or height keeps the source
// aspect ratio.
func (s *Snapshot) Scale(width, height int) *Snapshot {
	bounds := s.img.Bounds()
	if width == 0 && height == 0 {
		return s
	}
	if width == 0 {
		width = bounds.Dx() * height / bounds.Dy()
	}
	if height == 0 {
		height = bounds.Dy() * width / bounds.Dx()
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), s.img, bounds, draw.Over, nil)
	return &Snapshot{img: dst}
}

// Save writes the snapshot to path. The extension picks the format:
// .jpg/.jpeg encodes JPEG at quality 90, anything else PNG.
func (s *Snapshot) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(f, s.img, &jpeg.Options{Quality: 90}); err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}
	default:
		if err := png.Encode(f, s.img); err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}
	}
	return nil
}
