package pixbuf

import "fmt"

// Channel identifies one plane of a buffer by color-space meaning.
type Channel int

const (
	Luma Channel = iota
	ChromaU
	ChromaV
	Red
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Luma:
		return "Y"
	case ChromaU:
		return "U"
	case ChromaV:
		return "V"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "unknown"
	}
}

// ColorSpace names the sample layout of a buffer.
type ColorSpace int

const (
	Gray ColorSpace = iota // one luma plane
	YUV                    // Y, U, V interleaved
	RGB                    // R, G, B interleaved
)

func (s ColorSpace) String() string {
	switch s {
	case Gray:
		return "gray"
	case YUV:
		return "yuv"
	case RGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Channels returns the plane labels of the color space in storage order.
func (s ColorSpace) Channels() []Channel {
	switch s {
	case Gray:
		return []Channel{Luma}
	case YUV:
		return []Channel{Luma, ChromaU, ChromaV}
	case RGB:
		return []Channel{Red, Green, Blue}
	default:
		return nil
	}
}

// Plane is a single-channel buffer with its label.
type Plane struct {
	Channel Channel
	Buffer  *PixelBuffer
}

// ChannelSet is the ordered result of splitting one buffer.
type ChannelSet struct {
	Space  ColorSpace
	Planes []Plane
}

// Len returns the number of planes.
func (cs *ChannelSet) Len() int {
	return len(cs.Planes)
}

// Get returns the plane with the given label.
func (cs *ChannelSet) Get(c Channel) (*PixelBuffer, bool) {
	for _, p := range cs.Planes {
		if p.Channel == c {
			return p.Buffer, true
		}
	}
	return nil, false
}

// Split copies every channel of buf into its own single-channel buffer,
// preserving channel order, and labels the planes with space.
func Split(buf *PixelBuffer, space ColorSpace) (*ChannelSet, error) {
	labels := space.Channels()
	if len(labels) != buf.Channels {
		return nil, fmt.Errorf("cannot split %d-channel buffer as %s", buf.Channels, space)
	}

	n := buf.PixelCount()
	planes := make([]Plane, buf.Channels)
	for c := range planes {
		pix := make([]uint8, n)
		for i, j := 0, c; i < n; i, j = i+1, j+buf.Channels {
			pix[i] = buf.Pix[j]
		}
		planes[c] = Plane{
			Channel: labels[c],
			Buffer:  &PixelBuffer{Width: buf.Width, Height: buf.Height, Channels: 1, Pix: pix},
		}
	}
	return &ChannelSet{Space: space, Planes: planes}, nil
}
