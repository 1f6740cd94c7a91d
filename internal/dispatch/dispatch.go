package dispatch

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/iqa/internal/colorspace"
	"github.com/cwbudde/iqa/internal/metric"
	"github.com/cwbudde/iqa/internal/pixbuf"
)

// Value is one reported score.
type Value struct {
	Label string  `json:"label"`
	Score float64 `json:"value"`
}

// Result holds the scores of one dispatch, in reporting order.
type Result struct {
	Mode   Mode    `json:"mode"`
	Values []Value `json:"values"`
}

// Scalar returns the score of a single-valued result.
func (r *Result) Scalar() (float64, bool) {
	if len(r.Values) != 1 {
		return 0, false
	}
	return r.Values[0].Score, true
}

// Scores returns the bare scores in reporting order.
func (r *Result) Scores() []float64 {
	out := make([]float64, len(r.Values))
	for i, v := range r.Values {
		out[i] = v.Score
	}
	return out
}

type plan struct {
	space   pixbuf.ColorSpace
	order   []pixbuf.Channel // reporting order
	average bool
	label   string // label of the averaged score
}

var plans = map[Mode]plan{
	ModeLuma:           {space: pixbuf.Gray, order: []pixbuf.Channel{pixbuf.Luma}},
	ModeMeanLumaChroma: {space: pixbuf.YUV, order: []pixbuf.Channel{pixbuf.Luma, pixbuf.ChromaU, pixbuf.ChromaV}, average: true, label: "mean YUV"},
	ModeMeanRGB:        {space: pixbuf.RGB, order: []pixbuf.Channel{pixbuf.Red, pixbuf.Green, pixbuf.Blue}, average: true, label: "mean RGB"},
	ModeEachLumaChroma: {space: pixbuf.YUV, order: []pixbuf.Channel{pixbuf.Luma, pixbuf.ChromaU, pixbuf.ChromaV}},
	ModeEachRGB:        {space: pixbuf.RGB, order: []pixbuf.Channel{pixbuf.Red, pixbuf.Green, pixbuf.Blue}},
}

// Run evaluates fn on the channel set selected by mode and aggregates the
// per-channel scores. a and b must have identical shapes.
//
// A 1-channel pair is treated as gray: mode 0 uses it directly, the other
// modes expand it to three identical RGB channels first.
func Run(mode Mode, fn metric.Func, a, b *pixbuf.PixelBuffer) (*Result, error) {
	p, ok := plans[mode]
	if !ok {
		return nil, &InvalidModeError{Value: fmt.Sprint(int(mode))}
	}
	if err := pixbuf.CheckShape(a, b); err != nil {
		return nil, err
	}

	setA, err := channelSet(a, p.space)
	if err != nil {
		return nil, fmt.Errorf("image 1: %w", err)
	}
	setB, err := channelSet(b, p.space)
	if err != nil {
		return nil, fmt.Errorf("image 2: %w", err)
	}

	scores, err := evaluate(fn, setA, setB, p.order)
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: mode}
	if p.average {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		res.Values = []Value{{Label: p.label, Score: sum / float64(len(scores))}}
		return res, nil
	}

	res.Values = make([]Value, len(scores))
	for i, ch := range p.order {
		res.Values[i] = Value{Label: ch.String(), Score: scores[i]}
	}
	return res, nil
}

// channelSet converts buf into space and splits it into planes.
func channelSet(buf *pixbuf.PixelBuffer, space pixbuf.ColorSpace) (*pixbuf.ChannelSet, error) {
	var (
		converted *pixbuf.PixelBuffer
		err       error
	)
	switch space {
	case pixbuf.Gray:
		converted, err = colorspace.Luma(buf)
	case pixbuf.RGB:
		converted, err = colorspace.ExpandGray(buf)
	case pixbuf.YUV:
		converted, err = colorspace.ExpandGray(buf)
		if err == nil {
			converted, err = colorspace.ToLumaChroma(converted)
		}
	default:
		err = fmt.Errorf("unsupported color space %s", space)
	}
	if err != nil {
		return nil, err
	}
	return pixbuf.Split(converted, space)
}

// evaluate scores every requested channel concurrently. Each channel writes
// only its own slot, so the result does not depend on scheduling.
func evaluate(fn metric.Func, setA, setB *pixbuf.ChannelSet, order []pixbuf.Channel) ([]float64, error) {
	scores := make([]float64, len(order))

	var g errgroup.Group
	for i, ch := range order {
		i, ch := i, ch // per-iteration copies (Go <1.22 loop semantics)
		pa, okA := setA.Get(ch)
		pb, okB := setB.Get(ch)
		if !okA || !okB {
			return nil, fmt.Errorf("channel %s missing from %s channel set", ch, setA.Space)
		}
		g.Go(func() error {
			s, err := fn(pa, pb)
			if err != nil {
				return fmt.Errorf("channel %s: %w", ch, err)
			}
			scores[i] = s
			slog.Debug("Channel scored", "channel", ch.String(), "score", s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
