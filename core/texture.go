package core

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // jpeg textures
	_ "image/png"  // png textures
	"os"
)

// Texture is a 2D RGBA texture with mipmaps.
type Texture struct {
	backend  TextureBackend
	handle   uint32
	width    int
	height   int
	released bool
}

// NewTexture uploads img. The image is flipped vertically first, since GL
// expects the first row to be the bottom of the texture.
func NewTexture(backend TextureBackend, img image.Image) *Texture {
	rgba := flipRGBA(img)
	size := rgba.Rect.Size()
	return &Texture{
		backend: backend,
		handle:  backend.CreateTexture(rgba),
		width:   size.X,
		height:  size.Y,
	}
}

// LoadImage decodes a png or jpeg file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open texture file %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture image %s: %w", path, err)
	}
	return img, nil
}

// Checkerboard returns a size x size image of squares cells across, for
// programs run without a texture file. Fewer than one square gives a plain
// image of a.
func Checkerboard(size, squares int, a, b color.Color) *image.RGBA {
	if squares < 1 {
		squares = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / squares
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

func (t *Texture) Handle() uint32 { return t.handle }
func (t *Texture) Width() int     { return t.width }
func (t *Texture) Height() int    { return t.height }

// Bind makes the texture current on texture unit.
func (t *Texture) Bind(unit uint32) {
	t.backend.BindTexture(unit, t.handle)
}

// Release deletes the texture. Calling it again does nothing.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.backend.DeleteTexture(t.handle)
	t.released = true
}

// flipRGBA copies img into a new RGBA image with the rows reversed.
func flipRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(src, src.Bounds(), img, bounds.Min, draw.Src)

	dst := image.NewRGBA(src.Bounds())
	rowLen := src.Stride
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		copy(dst.Pix[y*rowLen:(y+1)*rowLen], src.Pix[(height-1-y)*rowLen:(height-y)*rowLen])
	}
	return dst
}
