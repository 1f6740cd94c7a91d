package text

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validImage = `! SKTEXTSIMPLE
2 2
0x112233ff 0xffffffff
0xddeeff00 0xffffff88`

func TestDecode_ValidImage_Success(t *testing.T) {
	img, err := Decode(strings.NewReader(validImage))
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 2, 2), nrgba.Bounds())
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, nrgba.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nrgba.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 0xdd, G: 0xee, B: 0xff, A: 0x00}, nrgba.NRGBAAt(0, 1))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x88}, nrgba.NRGBAAt(1, 1))
}

func TestDecode_GrayscaleNotation_ReturnsGray(t *testing.T) {
	img, err := Decode(strings.NewReader("! SKTEXTSIMPLE\n2 2\n0x12 0x34\n0xab 0xcd\n"))
	require.NoError(t, err)

	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, []uint8{0x12, 0x34, 0xab, 0xcd}, gray.Pix)
}

func TestDecode_MixedNotation_ReturnsNRGBA(t *testing.T) {
	img, err := Decode(strings.NewReader("! SKTEXTSIMPLE\n2 1\n0x12 0x010203ff"))
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}, nrgba.NRGBAAt(0, 0))
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"bad header":     "! NOTSKTEXT\n1 1\n0x00",
		"no dimensions":  "! SKTEXTSIMPLE\n",
		"zero width":     "! SKTEXTSIMPLE\n0 1\n",
		"too few rows":   "! SKTEXTSIMPLE\n1 2\n0x00",
		"too many rows":  "! SKTEXTSIMPLE\n1 1\n0x00\n0x00",
		"short row":      "! SKTEXTSIMPLE\n2 1\n0x00",
		"long row":       "! SKTEXTSIMPLE\n1 1\n0x00 0x00",
		"bad pixel":      "! SKTEXTSIMPLE\n1 1\n0x0",
		"missing prefix": "! SKTEXTSIMPLE\n1 1\n1234",
		"not hex":        "! SKTEXTSIMPLE\n1 1\n0xzz",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(validImage))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
}

func TestRegisteredFormat(t *testing.T) {
	img, format, err := image.Decode(strings.NewReader(validImage))
	require.NoError(t, err)
	assert.Equal(t, "sktext", format)
	assert.Equal(t, 2, img.Bounds().Dx())
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, MustDecode(validImage)))
	assert.Equal(t, validImage, buf.String())

	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	gray.Pix = []uint8{0, 0x7f, 0xff}
	buf.Reset()
	require.NoError(t, Encode(&buf, gray))
	assert.Equal(t, "! SKTEXTSIMPLE\n3 1\n0x00 0x7f 0xff", buf.String())

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, gray.Pix, back.(*image.Gray).Pix)
}

func TestMustDecode_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustDecode("nope") })
}
