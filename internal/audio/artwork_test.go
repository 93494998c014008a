package audio

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeArtwork_DownscalesOversized(t *testing.T) {
	data := encodePNG(t, 1500, 1000)

	out, changed, err := NormalizeArtwork(data, 800)
	if err != nil {
		t.Fatalf("NormalizeArtwork failed: %v", err)
	}
	if !changed {
		t.Fatal("oversized image reported unchanged")
	}

	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}

	b := img.Bounds()
	if b.Dx() != 800 {
		t.Errorf("width = %d, want 800", b.Dx())
	}
	if b.Dy() != 533 {
		t.Errorf("height = %d, want 533", b.Dy())
	}
}

func TestNormalizeArtwork_ConvertsFittingPNG(t *testing.T) {
	data := encodePNG(t, 400, 400)

	out, changed, err := NormalizeArtwork(data, 800)
	if err != nil {
		t.Fatalf("NormalizeArtwork failed: %v", err)
	}
	if !changed {
		t.Fatal("PNG input reported unchanged; want JPEG conversion")
	}

	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Errorf("bounds = %dx%d, want unchanged 400x400", b.Dx(), b.Dy())
	}
}

func TestNormalizeArtwork_PassesThroughFittingJPEG(t *testing.T) {
	data := encodeJPEG(t, 600, 400)

	out, changed, err := NormalizeArtwork(data, 800)
	if err != nil {
		t.Fatalf("NormalizeArtwork failed: %v", err)
	}
	if changed {
		t.Error("fitting JPEG reported changed")
	}
	if !bytes.Equal(out, data) {
		t.Error("fitting JPEG bytes were rewritten")
	}
}

func TestNormalizeArtwork_RejectsGarbage(t *testing.T) {
	if _, _, err := NormalizeArtwork([]byte("not an image"), 800); err == nil {
		t.Error("garbage input did not fail")
	}
}
