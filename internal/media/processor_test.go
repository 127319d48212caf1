package media

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"

	"github.com/dommestudio/lash-studio-api/internal/httperr"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func decodeWebp(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	return img
}

func TestProcess(t *testing.T) {

	t.Run("png pequeno vira webp sem redimensionar", func(t *testing.T) {
		out, err := Process(encodePNG(t, 800, 600))
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		img := decodeWebp(t, out)
		if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 600 {
			t.Fatalf("expected 800x600, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
		}
	})

	t.Run("lado maior é limitado preservando proporção", func(t *testing.T) {
		out, err := Process(encodePNG(t, 3200, 1600))
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		img := decodeWebp(t, out)
		if img.Bounds().Dx() != MaxDimension || img.Bounds().Dy() != MaxDimension/2 {
			t.Fatalf("expected %dx%d, got %dx%d",
				MaxDimension, MaxDimension/2, img.Bounds().Dx(), img.Bounds().Dy())
		}
	})

	t.Run("retrato também respeita o limite", func(t *testing.T) {
		out, err := Process(encodePNG(t, 1000, 4000))
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		img := decodeWebp(t, out)
		if img.Bounds().Dy() != MaxDimension || img.Bounds().Dx() != 400 {
			t.Fatalf("expected 400x%d, got %dx%d",
				MaxDimension, img.Bounds().Dx(), img.Bounds().Dy())
		}
	})

	t.Run("bytes que não são imagem viram erro de negócio", func(t *testing.T) {
		_, err := Process(strings.NewReader("definitivamente não é uma imagem"))
		if !httperr.IsBusiness(err, "invalid_image") {
			t.Fatalf("expected invalid_image, got %v", err)
		}
	})
}
