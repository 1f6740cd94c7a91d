package metric

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/iqa/internal/pixbuf"
)

// randomBuffer creates a buffer with random samples
func randomBuffer(t *testing.T, width, height, channels int, seed int64) *pixbuf.PixelBuffer {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf, err := pixbuf.New(width, height, channels)
	require.NoError(t, err)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(rng.Intn(256))
	}
	return buf
}

// solidBuffer creates a buffer where every sample of channel c is values[c]
func solidBuffer(t *testing.T, width, height int, values ...uint8) *pixbuf.PixelBuffer {
	t.Helper()
	buf, err := pixbuf.New(width, height, len(values))
	require.NoError(t, err)
	for i := range buf.Pix {
		buf.Pix[i] = values[i%len(values)]
	}
	return buf
}

// noisyCopy perturbs every sample of src by up to +/-amplitude
func noisyCopy(t *testing.T, src *pixbuf.PixelBuffer, amplitude int, seed int64) *pixbuf.PixelBuffer {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	samples := make([]uint8, len(src.Pix))
	for i, v := range src.Pix {
		n := int(v) + rng.Intn(2*amplitude+1) - amplitude
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		samples[i] = uint8(n)
	}
	buf, err := pixbuf.FromSamples(src.Width, src.Height, src.Channels, samples)
	require.NoError(t, err)
	return buf
}
