// Package imgio decodes image files into pixel buffers.
//
// Decoding mirrors a color imread: EXIF orientation is applied, alpha is
// dropped without compositing and 16-bit samples keep their high byte.
// Grayscale sources decode to single-channel buffers.
package imgio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cwbudde/iqa/internal/colorspace"
	_ "github.com/cwbudde/iqa/internal/imgio/text"
	"github.com/cwbudde/iqa/internal/pixbuf"
)

// ErrDecode matches any *DecodeError via errors.Is.
var ErrDecode = &DecodeError{}

// DecodeError reports an image that could not be read or decoded. Index is
// the 1-based position of the image on the command line, 0 if unknown.
type DecodeError struct {
	Index int
	Path  string
	Err   error
}

func (e *DecodeError) Error() string {
	what := "the image"
	if e.Index > 0 {
		what = fmt.Sprintf("the image %d", e.Index)
	}
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("couldn't read %s: no such file %q", what, e.Path)
	}
	return fmt.Sprintf("couldn't decode %s %q: %v", what, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

// Load opens and decodes the image at path.
func Load(path string) (*pixbuf.PixelBuffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	buf := FromImage(img)
	slog.Debug("Image loaded", "path", path, "width", buf.Width, "height", buf.Height, "channels", buf.Channels)
	return buf, nil
}

// Decode reads an image from r.
func Decode(r io.Reader) (*pixbuf.PixelBuffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return FromImage(img), nil
}

// LoadPair loads both images of a comparison. Errors carry the image index.
// When exactly one of the two is grayscale it is expanded to three channels,
// the same way a color decode would have produced it.
func LoadPair(path1, path2 string) (*pixbuf.PixelBuffer, *pixbuf.PixelBuffer, error) {
	a, err := Load(path1)
	if err != nil {
		return nil, nil, withIndex(err, 1)
	}
	b, err := Load(path2)
	if err != nil {
		return nil, nil, withIndex(err, 2)
	}

	if a.Channels != b.Channels {
		if a, err = colorspace.ExpandGray(a); err != nil {
			return nil, nil, err
		}
		if b, err = colorspace.ExpandGray(b); err != nil {
			return nil, nil, err
		}
	}
	return a, b, nil
}

func withIndex(err error, index int) error {
	var de *DecodeError
	if errors.As(err, &de) {
		de.Index = index
		return de
	}
	return &DecodeError{Index: index, Err: err}
}

// FromImage converts a decoded image into a pixel buffer.
func FromImage(img image.Image) *pixbuf.PixelBuffer {
	switch m := img.(type) {
	case *image.Gray:
		return pixbuf.FromGray(m)
	case *image.Gray16:
		return pixbuf.FromGray(gray16To8(m))
	default:
		return pixbuf.FromNRGBA(imaging.Clone(img))
	}
}

func gray16To8(src *image.Gray16) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = src.Pix[src.PixOffset(b.Min.X+x, b.Min.Y+y)]
		}
	}
	return dst
}
