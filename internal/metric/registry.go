package metric

import (
	"fmt"
	"sort"

	"github.com/cwbudde/iqa/internal/pixbuf"
)

// Func is the uniform shape shared by every metric: two same-shape buffers in,
// one score out.
type Func func(a, b *pixbuf.PixelBuffer) (float64, error)

const (
	NameMSE  = "mse"
	NamePSNR = "psnr"
	NameSSIM = "ssim"
)

var metrics = map[string]Func{
	NameMSE:  MSE,
	NamePSNR: PSNR,
	NameSSIM: SSIM,
}

// metricNames contains the sorted names of all metrics.
var metricNames []string

func init() {
	metricNames = make([]string, 0, len(metrics))
	for k := range metrics {
		metricNames = append(metricNames, k)
	}
	sort.Strings(metricNames)
}

// Names returns the names of the available metrics in sorted order.
func Names() []string {
	return append([]string(nil), metricNames...)
}

// Lookup returns the metric registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (available: %v)", name, metricNames)
	}
	return fn, nil
}
