// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solidImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	data := encodePNG(t, solidImage(40, 20, color.White))

	snap, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 40, snap.Bounds().Dx())
	assert.Equal(t, 20, snap.Bounds().Dy())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestCrop(t *testing.T) {
	snap, err := Decode(encodePNG(t, solidImage(100, 100, color.Black)))
	require.NoError(t, err)

	cropped := snap.Crop(image.Rect(10, 10, 60, 40))
	assert.Equal(t, 50, cropped.Bounds().Dx())
	assert.Equal(t, 30, cropped.Bounds().Dy())
}

func TestScale(t *testing.T) {
	snap, err := Decode(encodePNG(t, solidImage(100, 50, color.White)))
	require.NoError(t, err)

	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{"both set", 200, 80, 200, 80},
		{"keep aspect from width", 50, 0, 50, 25},
		{"keep aspect from height", 0, 100, 200, 100},
		{"zero is identity", 0, 0, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled := snap.Scale(tt.width, tt.height)
			assert.Equal(t, tt.wantWidth, scaled.Bounds().Dx())
			assert.Equal(t, tt.wantHeight, scaled.Bounds().Dy())
		})
	}
}

func TestSaveFormats(t *testing.T) {
	dir := t.TempDir()
	snap, err := Decode(encodePNG(t, solidImage(10, 10, color.White)))
	require.NoError(t, err)

	pngPath := filepath.Join(dir, "shot.png")
	require.NoError(t, snap.Save(pngPath))
	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	jpgPath := filepath.Join(dir, "shot.jpg")
	require.NoError(t, snap.Save(jpgPath))
	data, err = os.ReadFile(jpgPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xff, 0xd8}))
}
