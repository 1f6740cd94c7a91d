// Package cli builds the command line shell shared by the mse, psnr and ssim
// tools.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/iqa/internal/dispatch"
	"github.com/cwbudde/iqa/internal/imgio"
	"github.com/cwbudde/iqa/internal/metric"
)

// Options holds everything parsed from the command line.
type Options struct {
	Output   OutputOptions
	LogLevel string
}

var metricTitles = map[string]string{
	metric.NameMSE:  "Mean Squared Error",
	metric.NamePSNR: "Peak Signal-to-Noise Ratio",
	metric.NameSSIM: "Structural Similarity Index",
}

// NewCommand returns the command for one metric:
//
//	<name> [-n] image1 image2 [mode]
func NewCommand(name string, fn metric.Func) *cobra.Command {
	opts := &Options{}

	title := metricTitles[name]
	if title == "" {
		title = strings.ToUpper(name)
	}

	cmd := &cobra.Command{
		Use:   name + " [-n] image1 image2 [mode]",
		Short: fmt.Sprintf("Compute %s between two images", title),
		Long: fmt.Sprintf(`Compute %s (%s) between two images of identical size.

%s
When mode is omitted it defaults to 0.`, title, strings.ToUpper(name), dispatch.Usage()),
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), opts.LogLevel)
			slog.Debug("SSD kernel", "backend", metric.ActiveSSDBackend.String())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return compare(cmd, name, fn, args, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UnknownFlagError{Err: err}
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Output.Bare, "bare", "n", false, "Print bare values without labels")
	flags.IntVarP(&opts.Output.Precision, "precision", "p", DefaultPrecision, "Significant digits of printed values")
	flags.BoolVar(&opts.Output.JSON, "json", false, "Print the result as a JSON object")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	return cmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return &ArgumentCountError{Got: len(args)}
	}
	return nil
}

func compare(cmd *cobra.Command, name string, fn metric.Func, args []string, opts *Options) error {
	a, b, err := imgio.LoadPair(args[0], args[1])
	if err != nil {
		return err
	}

	mode := dispatch.DefaultMode
	if len(args) == 3 {
		if mode, err = dispatch.ParseMode(args[2]); err != nil {
			return err
		}
	}

	slog.Info("Comparing images",
		"metric", name,
		"mode", int(mode),
		"width", a.Width,
		"height", a.Height,
	)

	res, err := dispatch.Run(mode, fn, a, b)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return WriteResult(cmd.OutOrStdout(), name, res, opts.Output)
}

// Execute runs cmd, reports any error on its error stream and returns the
// process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
	return ExitCode(err)
}
