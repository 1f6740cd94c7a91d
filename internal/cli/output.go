package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/iqa/internal/dispatch"
)

// OutputOptions controls how a result is printed.
type OutputOptions struct {
	Bare      bool // values only, no label lines
	Precision int  // significant digits
	JSON      bool
}

// DefaultPrecision matches the default six significant digits of C-style
// stream output.
const DefaultPrecision = 6

type jsonReport struct {
	Metric string           `json:"metric"`
	Mode   int              `json:"mode"`
	Values []dispatch.Value `json:"values"`
}

// WriteResult prints res in the fixed reporting order of its mode.
func WriteResult(w io.Writer, metricName string, res *dispatch.Result, opts OutputOptions) error {
	if opts.JSON {
		enc := json.NewEncoder(w)
		return enc.Encode(jsonReport{Metric: metricName, Mode: int(res.Mode), Values: res.Values})
	}

	precision := opts.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	for _, v := range res.Values {
		if !opts.Bare {
			if _, err := fmt.Fprintf(w, "%s :\n", v.Label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, formatScore(v.Score, precision)); err != nil {
			return err
		}
	}
	return nil
}

func formatScore(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
