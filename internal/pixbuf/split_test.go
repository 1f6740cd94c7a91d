package pixbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_PreservesChannelOrder(t *testing.T) {
	// 2x1 RGB: (1,2,3) (4,5,6)
	buf, err := FromSamples(2, 1, 3, []uint8{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	set, err := Split(buf, RGB)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	want := []struct {
		ch  Channel
		pix []uint8
	}{
		{Red, []uint8{1, 4}},
		{Green, []uint8{2, 5}},
		{Blue, []uint8{3, 6}},
	}
	for i, w := range want {
		assert.Equal(t, w.ch, set.Planes[i].Channel)
		assert.Equal(t, w.pix, set.Planes[i].Buffer.Pix)
		assert.Equal(t, 1, set.Planes[i].Buffer.Channels)
	}

	blue, ok := set.Get(Blue)
	require.True(t, ok)
	assert.Equal(t, []uint8{3, 6}, blue.Pix)

	_, ok = set.Get(Luma)
	assert.False(t, ok)
}

func TestSplit_DoesNotAliasSource(t *testing.T) {
	buf, _ := FromSamples(1, 1, 1, []uint8{42})
	set, err := Split(buf, Gray)
	require.NoError(t, err)

	set.Planes[0].Buffer.Pix[0] = 0
	assert.Equal(t, uint8(42), buf.Pix[0])
}

func TestSplit_ChannelCountMismatch(t *testing.T) {
	buf, _ := New(2, 2, 1)
	_, err := Split(buf, YUV)
	assert.Error(t, err)
}

func TestChannelLabels(t *testing.T) {
	assert.Equal(t, "Y", Luma.String())
	assert.Equal(t, "U", ChromaU.String())
	assert.Equal(t, "V", ChromaV.String())
	assert.Equal(t, "R", Red.String())
	assert.Equal(t, "G", Green.String())
	assert.Equal(t, "B", Blue.String())
	assert.Equal(t, "unknown", Channel(42).String())
	assert.Equal(t, "yuv", YUV.String())
}
