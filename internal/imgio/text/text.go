// Package text contains a plain text image format encoder and decoder.
//
// The format looks like:
//
//	! SKTEXTSIMPLE
//	width height
//	0x000000ff 0xffffffff ...
//	0xddddddff 0xffffff88 ...
//
// Color pixels are written as 0xRRGGBBAA and grayscale pixels as 0xXX. An
// image whose pixels all use the grayscale notation decodes to *image.Gray,
// anything else decodes to *image.NRGBA.
package text

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
)

const header = "! SKTEXTSIMPLE"

func readDims(scanner *bufio.Scanner) (int, int, error) {
	if !scanner.Scan() {
		return 0, 0, fmt.Errorf("missing SKTEXT header: %v", scanner.Err())
	}
	if strings.TrimSpace(scanner.Text()) != header {
		return 0, 0, fmt.Errorf("not a valid SKTEXT file: header %q", scanner.Text())
	}
	if !scanner.Scan() {
		return 0, 0, fmt.Errorf("missing SKTEXT dimensions: %v", scanner.Err())
	}
	var width, height int
	if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("invalid SKTEXT dimensions %q: %w", scanner.Text(), err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid SKTEXT dimensions %dx%d", width, height)
	}
	return width, height, nil
}

// Decode reads an SKTEXT image from r.
func Decode(r io.Reader) (image.Image, error) {
	scanner := bufio.NewScanner(r)
	width, height, err := readDims(scanner)
	if err != nil {
		return nil, err
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	allGray := true
	y := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if y >= height {
			return nil, fmt.Errorf("too many rows: more than %d", height)
		}
		if len(fields) != width {
			return nil, fmt.Errorf("row %d: got %d pixels, want %d", y, len(fields), width)
		}
		for x, h := range fields {
			if !strings.HasPrefix(h, "0x") || (len(h) != 4 && len(h) != 10) {
				return nil, fmt.Errorf("invalid pixel %q at (%d,%d), must be 0xRRGGBBAA or 0xXX", h, x, y)
			}
			v, err := strconv.ParseUint(h[2:], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid pixel %q at (%d,%d): %w", h, x, y, err)
			}
			var c color.NRGBA
			if len(h) == 10 {
				allGray = false
				c = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
			} else {
				c = color.NRGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 0xff}
			}
			nrgba.SetNRGBA(x, y, c)
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading SKTEXT pixels: %w", err)
	}
	if y != height {
		return nil, fmt.Errorf("got %d rows, want %d", y, height)
	}

	if !allGray {
		return nrgba, nil
	}
	gray := image.NewGray(nrgba.Rect)
	for i := range gray.Pix {
		gray.Pix[i] = nrgba.Pix[i*4]
	}
	return gray, nil
}

// DecodeConfig returns the dimensions of an SKTEXT image without decoding
// the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	width, height, err := readDims(bufio.NewScanner(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      width,
		Height:     height,
	}, nil
}

// Encode writes m in SKTEXT format. *image.Gray uses the grayscale notation,
// every other image is written as 0xRRGGBBAA.
func Encode(w io.Writer, m image.Image) error {
	bw := bufio.NewWriter(w)
	b := m.Bounds()
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", header, b.Dx(), b.Dy()); err != nil {
		return err
	}

	gray, isGray := m.(*image.Gray)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x > b.Min.X {
				bw.WriteByte(' ')
			}
			if isGray {
				fmt.Fprintf(bw, "0x%02x", gray.GrayAt(x, y).Y)
				continue
			}
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			fmt.Fprintf(bw, "0x%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
		}
		if y < b.Max.Y-1 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func init() {
	image.RegisterFormat("sktext", header, Decode, DecodeConfig)
}

// MustDecode decodes an image from a string literal. It panics on malformed
// input and is meant for test fixtures.
func MustDecode(s string) image.Image {
	img, err := Decode(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("Failed to decode a valid image: %s", err))
	}
	return img
}
