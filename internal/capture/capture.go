// Package capture grabs a widget's pixels from the window canvas and encodes
// them to an image file.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

var (
	// ErrImageWrite wraps failures to encode or store an exported image
	ErrImageWrite = errors.New("could not write image")
	// ErrUnsupportedFormat is returned for a file extension with no encoder
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrEmptyRegion is returned when the region to capture has no pixels
	ErrEmptyRegion = errors.New("nothing to capture")
)

// Extensions lists the file extensions Encode understands
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff"}

// Region converts an on-canvas rectangle in Fyne units to pixels
func Region(pos fyne.Position, size fyne.Size, scale float32) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	return image.Rect(
		int(math.Floor(float64(pos.X*scale))),
		int(math.Floor(float64(pos.Y*scale))),
		int(math.Ceil(float64((pos.X+size.Width)*scale))),
		int(math.Ceil(float64((pos.Y+size.Height)*scale))),
	)
}

// Crop copies r out of img into a new image anchored at the origin. The
// region is clipped to the image bounds first.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, ErrEmptyRegion
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst, nil
}

// Object captures the canvas c and crops it to the area covered by o
func Object(c fyne.Canvas, o fyne.CanvasObject) (*image.NRGBA, error) {
	if c == nil || o == nil {
		return nil, ErrEmptyRegion
	}
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(o)
	return Crop(c.Capture(), Region(pos, o.Size(), c.Scale()))
}

// Bounded is implemented by widgets that report where they sit on the canvas
type Bounded interface {
	ScreenBounds() (fyne.Position, fyne.Size)
}

// Visible captures the part of target that shows through viewport, such as
// a widget inside a scroll container. A nil target captures the viewport.
func Visible(c fyne.Canvas, target Bounded, viewport fyne.CanvasObject) (*image.NRGBA, error) {
	if target == nil {
		return Object(c, viewport)
	}
	if c == nil || viewport == nil {
		return nil, ErrEmptyRegion
	}
	pos, size := target.ScreenBounds()
	view := fyne.CurrentApp().Driver().AbsolutePositionForObject(viewport)
	r := Region(pos, size, c.Scale()).Intersect(Region(view, viewport.Size(), c.Scale()))
	return Crop(c.Capture(), r)
}

// FormatFor returns the encoder name for the extension of path
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".gif":
		return "gif", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes img to w in the named format
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	case "gif":
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageWrite, err)
	}
	return nil
}

// Save encodes img into w using the format implied by name, then closes w.
// w is closed even when encoding fails.
func Save(w io.WriteCloser, name string, img image.Image) error {
	format, err := FormatFor(name)
	if err != nil {
		w.Close()
		return err
	}
	if err := Encode(w, img, format); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrImageWrite, err)
	}
	return nil
}
