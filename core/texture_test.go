package core

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(4, 2, color.White, color.Black)

	tests := []struct {
		x, y int
		want color.Color
	}{
		{0, 0, color.White},
		{1, 1, color.White},
		{2, 0, color.Black},
		{0, 2, color.Black},
		{3, 3, color.White},
	}
	for _, tt := range tests {
		r, g, b, _ := img.At(tt.x, tt.y).RGBA()
		wr, wg, wb, _ := tt.want.RGBA()
		if r != wr || g != wg || b != wb {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, img.At(tt.x, tt.y), tt.want)
		}
	}
}

func TestCheckerboardWithoutSquares(t *testing.T) {
	for _, squares := range []int{0, -3} {
		img := Checkerboard(16, squares, color.White, color.Black)
		r, _, _, _ := img.At(15, 15).RGBA()
		if r != 0xffff {
			t.Errorf("squares %d: expected a plain image, got %v at (15,15)", squares, img.At(15, 15))
		}
	}
}

func TestFlipRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})

	flipped := flipRGBA(img)
	if got := flipped.RGBAAt(0, 0); got.B != 255 {
		t.Errorf("expected bottom row first, got %v", got)
	}
	if got := flipped.RGBAAt(0, 1); got.R != 255 {
		t.Errorf("expected top row last, got %v", got)
	}
}

func TestFlipRGBAOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 12, 11))
	img.Set(10, 10, color.RGBA{G: 255, A: 255})

	flipped := flipRGBA(img)
	if flipped.Rect != image.Rect(0, 0, 2, 1) {
		t.Errorf("expected rect at origin, got %v", flipped.Rect)
	}
	if got := flipped.RGBAAt(0, 0); got.G != 255 {
		t.Errorf("expected green at origin, got %v", got)
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, Checkerboard(8, 2, color.White, color.Black)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage returned error: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("expected width 8, got %d", img.Bounds().Dx())
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTextureBindAndRelease(t *testing.T) {
	b := newFakeBackend()
	tex := NewTexture(b, Checkerboard(4, 2, color.White, color.Black))

	tex.Bind(1)
	if got := b.calls[len(b.calls)-1]; got != "texture 1@1" {
		t.Errorf("unexpected bind call %q", got)
	}

	tex.Release()
	tex.Release()
	if b.deleted[tex.Handle()] != 1 {
		t.Errorf("expected texture deleted once, got %d", b.deleted[tex.Handle()])
	}
}
