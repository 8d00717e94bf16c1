// Package main implements a tool to render histogram of uniformly generated measurements.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bool64/dev/version"
	"github.com/vearutop/binhist-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
}

func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		zapcore.Lock(os.Stderr), level,
	))
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: %s [flags] <bin_count> <min_meas> <max_meas> <data_count> <thread_count>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	seed := flag.Uint64("seed", 0, "Seed of random data generator.")
	unit := flag.Int("unit", 1, "Number of measurements per histogram marker.")
	png := flag.String("png", "", "Path to PNG file to save bar chart to.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	ver := flag.Bool("version", false, "Print version.")

	flag.Usage = usage
	flag.Parse()

	if *ver {
		fmt.Println(version.Info().Version)

		return
	}

	cfg, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)
	cfg.Seed = *seed
	cfg.Logger = logger

	if err := run(cfg, *unit, *png); err != nil {
		logger.Error("quitting", zap.Error(err))
		_ = logger.Sync()

		os.Exit(1)
	}

	_ = logger.Sync()
}

func run(cfg binhist.Config, unit int, png string) error {
	hist, data, err := binhist.ComputeWithData(cfg)
	if err != nil {
		return err
	}

	summary, err := binhist.Summarize(data, cfg.MinMeas, cfg.MaxMeas, cfg.Workers)
	if err != nil {
		return err
	}

	for _, p := range []float64{99.9, 99, 90, 75, 50} {
		fmt.Printf("%.1f%% < %.3f (bin < %.3f)\n", p, summary.ValueAt(p), hist.Percentile(p))
	}

	fmt.Printf("mean %.3f, stddev %.3f\n\n", summary.Mean(), summary.StdDev())
	fmt.Print(hist.Format(unit))

	if png != "" {
		if err := savePlot(hist, png); err != nil {
			return err
		}

		cfg.Logger.Info("bar chart saved", zap.String("file", png))
	}

	return nil
}
