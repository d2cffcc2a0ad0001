package genart

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for image formats the pixmap cannot encode.
var ErrUnknownFormat = errors.New("genart: unknown image format")

// ImageFormat selects the encoding used by Pixmap.Encode.
type ImageFormat int

const (
	// FormatPNG encodes lossless PNG.
	FormatPNG ImageFormat = iota
	// FormatBMP encodes uncompressed BMP.
	FormatBMP
	// FormatTIFF encodes deflate-compressed TIFF.
	FormatTIFF
)

// String returns the usual file extension of the format without the dot.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses a format name or file extension, with or without
// the leading dot.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath returns the image format implied by the file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	return ParseImageFormat(filepath.Ext(path))
}

// Pixmap represents a rectangular RGBA8 pixel buffer, row 0 at the top.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Rows returns the pixel data of rows [y0, y1). Distinct row ranges never
// overlap, so bands can be written concurrently.
func (p *Pixmap) Rows(y0, y1 int) []uint8 {
	stride := p.width * 4
	return p.data[y0*stride : y1*stride]
}

// SetRGBA sets the color of a single pixel.
func (p *Pixmap) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// RGBAAt returns the color of a single pixel.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Encode writes the pixmap to w in the given format.
func (p *Pixmap) Encode(w io.Writer, format ImageFormat) error {
	img := p.ToImage()
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// Save writes the pixmap to path, choosing the format from its extension.
func (p *Pixmap) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := p.Encode(w, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("genart: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SavePNG saves the pixmap to a PNG file regardless of the extension.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return p.Encode(f, FormatPNG)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
