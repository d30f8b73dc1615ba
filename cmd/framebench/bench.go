package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/colframe/internal/bench"
	"github.com/ajitpratap0/colframe/pkg/config"
	"github.com/ajitpratap0/colframe/pkg/errors"
	"github.com/ajitpratap0/colframe/pkg/logger"
	"github.com/ajitpratap0/colframe/pkg/metrics"
	"github.com/ajitpratap0/colframe/pkg/observability"
	"github.com/ajitpratap0/colframe/pkg/performance"
)

type benchFlags struct {
	configPath  string
	rows        int
	seed        uint64
	logLevel    string
	metricsAddr string
	trace       bool
	jsonReport  bool
	cpuProfile  string
	memProfile  string
}

func newBenchCmd() *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time copy and consume appends on generated rows",
		Long: `Generate random (int32, float32) and (string, string) rows and time
insertion by copy, insertion by consume, table append by copy and table
append by consume.

Settings come from --config, then FRAME_* environment variables, then flags.

Example:
  framebench bench --rows 1000000 --seed 42 --metrics-addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, &f)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runBench(cmd.Context(), cmd.OutOrStdout(), cfg, &f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().IntVarP(&f.rows, "rows", "n", 0, "Rows generated per workload")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (0 picks one)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Export a span per phase")
	cmd.Flags().BoolVar(&f.jsonReport, "json", false, "Print the report as JSON after the run")
	cmd.Flags().StringVar(&f.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	cmd.Flags().StringVar(&f.memProfile, "memprofile", "", "Write a heap profile to this file")
	return cmd
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, f *benchFlags) {
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Bench.Rows = f.rows
	}
	if flags.Changed("seed") {
		cfg.Bench.Seed = f.seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = f.metricsAddr
	}
	if flags.Changed("trace") {
		cfg.Tracing.Enabled = f.trace
	}
}

func runBench(ctx context.Context, out io.Writer, cfg *config.Config, f *benchFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := logger.Init(cfg.Logging); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "init logger")
	}
	defer func() { _ = logger.Sync() }()
	log := logger.With(zap.String("component", "framebench"))

	if cfg.Metrics.Enabled {
		srv, err := metrics.Start(cfg.Metrics.Addr, log)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "start metrics server").
				WithDetail("addr", cfg.Metrics.Addr)
		}
		defer shutdown(log, "metrics server", srv.Shutdown)
	}

	if cfg.Tracing.Enabled {
		w, closeOutput, err := traceOutput(cfg.Tracing.Output)
		if err != nil {
			return err
		}
		defer closeOutput()
		tcfg := observability.DefaultTracingConfig()
		tcfg.ServiceName = cfg.Tracing.ServiceName
		tcfg.ServiceVersion = version
		tracing, err := observability.InitTracing(tcfg, w)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "init tracing")
		}
		defer shutdown(log, "tracing", tracing.Shutdown)
	}

	if f.cpuProfile != "" {
		pf, err := os.Create(f.cpuProfile)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "create cpu profile")
		}
		defer pf.Close()
		if err := pprof.StartCPUProfile(pf); err != nil {
			return errors.Wrap(err, errors.ErrorTypeInternal, "start cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	opts := []bench.RunnerOption{
		bench.WithLogger(log),
		bench.WithOutput(out),
		bench.WithCollector(metrics.NewCollector()),
	}
	if monitor, err := performance.NewResourceMonitor(); err != nil {
		log.Warn("resource monitor unavailable", zap.Error(err))
	} else {
		opts = append(opts, bench.WithResourceMonitor(monitor))
	}

	runner, err := bench.NewRunner(cfg, opts...)
	if err != nil {
		return err
	}
	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if f.memProfile != "" {
		if err := writeHeapProfile(f.memProfile); err != nil {
			return err
		}
	}

	if f.jsonReport {
		enc := gojson.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, errors.ErrorTypeInternal, "encode report")
		}
	}
	return nil
}

func traceOutput(output string) (io.Writer, func(), error) {
	switch output {
	case "stdout":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	}
	file, err := os.Create(output) //nolint:gosec // path comes from the operator's config
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeFile, "create trace output").
			WithDetail("path", output)
	}
	return file, func() { _ = file.Close() }, nil
}

func writeHeapProfile(path string) error {
	pf, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "create heap profile")
	}
	defer pf.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(pf); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "write heap profile")
	}
	return nil
}

func shutdown(log *zap.Logger, what string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn("shutdown failed", zap.String("component", what), zap.Error(err))
	}
}
