package debug

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedCapture(dir string) *ScreenshotCapture {
	sc := NewScreenshotCapture(dir, "learn3d")
	sc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC) }
	return sc
}

func TestFilename(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"", "learn3d_2024-03-09_14-05-06.png"},
		{"Torus Knot", "learn3d_torus-knot_2024-03-09_14-05-06.png"},
		{"Great Pyramid of Giza!", "learn3d_great-pyramid-of-giza_2024-03-09_14-05-06.png"},
		{"DNA Double Helix", "learn3d_dna-double-helix_2024-03-09_14-05-06.png"},
	}

	sc := fixedCapture("")
	for _, tt := range tests {
		if got := sc.Filename(tt.label); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestCaptureWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := fixedCapture(dir)

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	path, err := sc.Capture(img, "Cube")
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("Capture() wrote to %q, want dir %q", path, dir)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("decoded size = %v", decoded.Bounds())
	}
}
