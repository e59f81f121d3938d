package measure

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// ─── Sniff Tests ──────────────────────────────

func TestSniff_PNG(t *testing.T) {
	if got := Sniff(encodePNG(t, 10, 10)); got != "png" {
		t.Errorf("expected png, got %q", got)
	}
}

func TestSniff_JPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(10, 10), nil); err != nil {
		t.Fatal(err)
	}
	if got := Sniff(buf.Bytes()); got != "jpeg" {
		t.Errorf("expected jpeg, got %q", got)
	}
}

func TestSniff_GIF(t *testing.T) {
	var buf bytes.Buffer
	if err := gif.Encode(&buf, testImage(10, 10), nil); err != nil {
		t.Fatal(err)
	}
	if got := Sniff(buf.Bytes()); got != "gif" {
		t.Errorf("expected gif, got %q", got)
	}
}

func TestSniff_DXF(t *testing.T) {
	data := []byte("  0\nSECTION\n  2\nHEADER\n  0\nENDSEC\n")
	if got := Sniff(data); got != "dxf" {
		t.Errorf("expected dxf, got %q", got)
	}
}

func TestSniff_Unknown(t *testing.T) {
	if got := Sniff([]byte("plain text payload")); got != "" {
		t.Errorf("expected empty type, got %q", got)
	}
}

// ─── Bytes Tests ──────────────────────────────

func TestBytes_PNGAtDPI(t *testing.T) {
	// 300x150 pixels at 300 DPI is a 1.0 x 0.5 inch item.
	data := encodePNG(t, 300, 150)

	w, h, ctype, err := Bytes(data, Options{DPI: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctype != "png" {
		t.Errorf("expected png, got %q", ctype)
	}
	if w != 1.0 || h != 0.5 {
		t.Errorf("expected 1.0 x 0.5, got %v x %v", w, h)
	}
}

func TestBytes_DPIScaling(t *testing.T) {
	data := encodePNG(t, 300, 300)

	w, h, _, err := Bytes(data, Options{DPI: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 2.0 || h != 2.0 {
		t.Errorf("expected 2.0 x 2.0 at 150 DPI, got %v x %v", w, h)
	}
}

func TestBytes_UnsupportedPayload(t *testing.T) {
	if _, _, _, err := Bytes([]byte("not an image"), Options{DPI: 300}); err == nil {
		t.Error("expected error for unknown payload")
	}
}

// ─── File Tests ──────────────────────────────

func TestFile_ReadsAndMeasures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	payload := encodePNG(t, 600, 300)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatal(err)
	}

	data, w, h, ctype, err := File(path, Options{DPI: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != len(payload) {
		t.Error("payload should be returned intact")
	}
	if ctype != "png" || w != 2.0 || h != 1.0 {
		t.Errorf("unexpected measurement: %v x %v (%s)", w, h, ctype)
	}
}

func TestFile_Missing(t *testing.T) {
	if _, _, _, _, err := File(filepath.Join(t.TempDir(), "nope.png"), Options{DPI: 300}); err == nil {
		t.Error("expected error for missing file")
	}
}
