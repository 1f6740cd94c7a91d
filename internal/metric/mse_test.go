package metric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/iqa/internal/pixbuf"
)

func TestMSE_Identity(t *testing.T) {
	for _, ch := range []int{1, 3} {
		t.Run(fmt.Sprintf("channels=%d", ch), func(t *testing.T) {
			a := randomBuffer(t, 17, 23, ch, 42)
			got, err := MSE(a, a)
			require.NoError(t, err)
			assert.Equal(t, 0.0, got)
		})
	}
}

func TestMSE_Symmetric(t *testing.T) {
	a := randomBuffer(t, 31, 7, 3, 1)
	b := randomBuffer(t, 31, 7, 3, 2)

	ab, err := MSE(a, b)
	require.NoError(t, err)
	ba, err := MSE(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Greater(t, ab, 0.0)
}

func TestMSE_SingleChannelExample(t *testing.T) {
	a := solidBuffer(t, 2, 2, 0)
	b := solidBuffer(t, 2, 2, 10)

	got, err := MSE(a, b)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestMSE_WhiteVsBlack(t *testing.T) {
	white := solidBuffer(t, 2, 2, 255, 255, 255)
	black := solidBuffer(t, 2, 2, 0, 0, 0)

	// Each sample differs by 255: 255^2 * 12 samples / (4 pixels * 3 channels) = 65025
	got, err := MSE(white, black)
	require.NoError(t, err)
	assert.Equal(t, 65025.0, got)
}

func TestMSE_SinglePixel(t *testing.T) {
	a := solidBuffer(t, 2, 2, 255, 255, 255)
	b := solidBuffer(t, 2, 2, 255, 255, 255)
	b.Pix[1], b.Pix[2] = 0, 0

	// One pixel differs: white vs red
	// Diff: R=0, G=255^2, B=255^2
	// MSE = (0 + 65025 + 65025) / (4 pixels * 3 channels) = 10837.5
	got, err := MSE(a, b)
	require.NoError(t, err)
	assert.Equal(t, 10837.5, got)
}

func TestMSE_ShapeMismatch(t *testing.T) {
	a := randomBuffer(t, 4, 4, 3, 1)
	cases := map[string]*pixbuf.PixelBuffer{
		"width":    randomBuffer(t, 5, 4, 3, 1),
		"height":   randomBuffer(t, 4, 3, 3, 1),
		"channels": randomBuffer(t, 4, 4, 1, 1),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := MSE(a, b)
			assert.ErrorIs(t, err, pixbuf.ErrShapeMismatch)
		})
	}
}
