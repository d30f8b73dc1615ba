package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ajitpratap0/colframe/pkg/columnar"
	"github.com/ajitpratap0/colframe/pkg/config"
	"github.com/ajitpratap0/colframe/pkg/errors"
	"github.com/ajitpratap0/colframe/pkg/logger"
	"github.com/ajitpratap0/colframe/pkg/metrics"
	"github.com/ajitpratap0/colframe/pkg/observability"
	"github.com/ajitpratap0/colframe/pkg/performance"
)

// Phase names one timed step of a workload
type Phase string

const (
	PhaseCopyInsert    Phase = "copy_insert"
	PhaseConsumeInsert Phase = "consume_insert"
	PhaseTableCopy     Phase = "table_copy"
	PhaseTableConsume  Phase = "table_consume"
)

// Title returns the progress line label of the phase
func (p Phase) Title() string {
	switch p {
	case PhaseCopyInsert:
		return "Insertion by copy"
	case PhaseConsumeInsert:
		return "Insertion by consume"
	case PhaseTableCopy:
		return "Append by copy"
	case PhaseTableConsume:
		return "Append by consume"
	default:
		return string(p)
	}
}

// PhaseResult is the measurement of one phase
type PhaseResult struct {
	Phase         Phase         `json:"phase"`
	Rows          int           `json:"rows"`
	Duration      time.Duration `json:"duration_ns"`
	RowsPerSecond float64       `json:"rows_per_second"`
	Reallocations int           `json:"reallocations"`
	RSSBefore     uint64        `json:"rss_before_bytes"`
	RSSAfter      uint64        `json:"rss_after_bytes"`
}

// WorkloadReport holds the phases run for one row type
type WorkloadReport struct {
	Name   string        `json:"name"`
	Label  string        `json:"label"`
	Phases []PhaseResult `json:"phases"`
}

// Report is the outcome of a benchmark run
type Report struct {
	RunID     string           `json:"run_id"`
	Seed      uint64           `json:"seed"`
	Rows      int              `json:"rows"`
	StartedAt time.Time        `json:"started_at"`
	Workloads []WorkloadReport `json:"workloads"`
}

// Runner executes the configured workloads
type Runner struct {
	cfg       *config.Config
	logger    *zap.Logger
	out       io.Writer
	collector *metrics.Collector
	monitor   *performance.ResourceMonitor
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithOutput sets where progress lines are written
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithCollector sets the metrics collector observing every table
func WithCollector(c *metrics.Collector) RunnerOption {
	return func(r *Runner) {
		if c != nil {
			r.collector = c
		}
	}
}

// WithResourceMonitor enables RSS sampling around each phase
func WithResourceMonitor(m *performance.ResourceMonitor) RunnerOption {
	return func(r *Runner) { r.monitor = m }
}

// NewRunner creates a runner for cfg
func NewRunner(cfg *config.Config, opts ...RunnerOption) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrorTypeConfig, "config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:       cfg,
		logger:    zap.NewNop(),
		out:       io.Discard,
		collector: metrics.NewCollector(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type workload[R any] struct {
	name     string
	label    string
	schema   func() (*columnar.Schema[R], error)
	generate func(g *Generator, n int) []R
}

var (
	numericWorkload = workload[NumericRow]{
		name:     "numeric",
		label:    "int, float",
		schema:   NumericSchema,
		generate: (*Generator).NumericRows,
	}
	textWorkload = workload[TextRow]{
		name:     "text",
		label:    "string, string",
		schema:   TextSchema,
		generate: (*Generator).TextRows,
	}
)

// Run executes every enabled workload and returns the measurements
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	gen := NewGenerator(r.cfg.Bench)
	report := &Report{
		RunID:     uuid.NewString(),
		Seed:      gen.Seed(),
		Rows:      r.cfg.Bench.Rows,
		StartedAt: time.Now(),
	}
	ctx = logger.ContextWith(ctx, logger.RunIDKey, report.RunID)
	logger.FromContext(ctx, r.logger).Info("benchmark started",
		zap.Int("rows", report.Rows),
		zap.Uint64("seed", report.Seed))

	if r.cfg.Scenarios.Numeric {
		wr, err := runWorkload(ctx, r, gen, numericWorkload)
		if err != nil {
			return report, err
		}
		report.Workloads = append(report.Workloads, wr)
	}
	if r.cfg.Scenarios.Text {
		wr, err := runWorkload(ctx, r, gen, textWorkload)
		if err != nil {
			return report, err
		}
		report.Workloads = append(report.Workloads, wr)
	}

	logger.FromContext(ctx, r.logger).Info("benchmark finished",
		zap.Duration("elapsed", time.Since(report.StartedAt)))
	return report, nil
}

func runWorkload[R any](ctx context.Context, r *Runner, gen *Generator, w workload[R]) (WorkloadReport, error) {
	report := WorkloadReport{Name: w.name, Label: w.label}
	ctx = logger.ContextWith(ctx, logger.TableKey, w.name)

	schema, err := w.schema()
	if err != nil {
		return report, err
	}
	newTable := func(phase Phase) (*columnar.Table[R], error) {
		return columnar.NewTable(schema,
			columnar.WithName(w.name+"."+string(phase)),
			columnar.WithLogger(r.logger),
			columnar.WithObserver(r.collector))
	}

	n := r.cfg.Bench.Rows
	fmt.Fprintf(r.out, "Speed test, %s elements (%s)\n", ShortNumber(n), w.label)
	fmt.Fprintln(r.out, "Generate data...")
	rows := w.generate(gen, n)

	scen := r.cfg.Scenarios
	var filled *columnar.Table[R]

	if scen.CopyInsert {
		dst, err := newTable(PhaseCopyInsert)
		if err != nil {
			return report, err
		}
		res, err := r.phase(ctx, PhaseCopyInsert, n, dst.Name(), func() error {
			for i := range rows {
				if err := dst.Append(rows[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return report, err
		}
		report.Phases = append(report.Phases, res)
		filled = dst
	}

	if scen.ConsumeInsert {
		dst, err := newTable(PhaseConsumeInsert)
		if err != nil {
			return report, err
		}
		res, err := r.phase(ctx, PhaseConsumeInsert, n, dst.Name(), func() error {
			for i := range rows {
				if err := dst.AppendConsume(&rows[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return report, err
		}
		report.Phases = append(report.Phases, res)
	}
	rows = nil

	if scen.TableCopy {
		dst, err := newTable(PhaseTableCopy)
		if err != nil {
			return report, err
		}
		res, err := r.phase(ctx, PhaseTableCopy, filled.Size(), dst.Name(), func() error {
			return dst.AppendTable(filled)
		})
		if err != nil {
			return report, err
		}
		report.Phases = append(report.Phases, res)
	}

	if scen.TableConsume {
		dst, err := newTable(PhaseTableConsume)
		if err != nil {
			return report, err
		}
		res, err := r.phase(ctx, PhaseTableConsume, filled.Size(), dst.Name(), func() error {
			return dst.ConsumeTable(filled)
		})
		if err != nil {
			return report, err
		}
		report.Phases = append(report.Phases, res)
	}

	fmt.Fprintln(r.out)
	return report, nil
}

func (r *Runner) phase(ctx context.Context, phase Phase, rows int, table string, fn func() error) (PhaseResult, error) {
	res := PhaseResult{Phase: phase, Rows: rows}
	if err := ctx.Err(); err != nil {
		return res, errors.Wrap(err, errors.ErrorTypeInternal, "benchmark cancelled")
	}
	ctx = logger.ContextWith(ctx, logger.PhaseKey, string(phase))
	log := logger.FromContext(ctx, r.logger)

	fmt.Fprintf(r.out, "%s...", phase.Title())
	res.RSSBefore = r.rss()
	grows := r.collector.Reallocations(table)
	tracker := metrics.NewThroughputTracker(string(phase))

	d, err := observability.TracePhase(ctx, string(phase), rows, func(context.Context) error {
		return fn()
	})
	if err != nil {
		fmt.Fprintln(r.out, " failed")
		return res, errors.Wrap(err, errors.ErrorTypeInternal, "benchmark phase failed").
			WithDetail("phase", string(phase)).
			WithDetail("table", table)
	}

	tracker.Increment(int64(rows))
	tracker.GetAndReset()
	metrics.RecordPhase(string(phase), d)

	res.Duration = d
	if secs := d.Seconds(); secs > 0 {
		res.RowsPerSecond = float64(rows) / secs
	}
	res.Reallocations = r.collector.Reallocations(table) - grows
	res.RSSAfter = r.rss()
	if res.RSSAfter > 0 {
		metrics.ResidentMemory.Set(float64(res.RSSAfter))
	}

	fmt.Fprintf(r.out, " Elapsed time: %d ms\n", d.Milliseconds())
	log.Info("phase complete",
		zap.Int("rows", rows),
		zap.Duration("duration", d),
		zap.Float64("rows_per_second", res.RowsPerSecond),
		zap.Int("reallocations", res.Reallocations),
		zap.Uint64("rss_bytes", res.RSSAfter))
	return res, nil
}

func (r *Runner) rss() uint64 {
	if r.monitor == nil {
		return 0
	}
	usage, err := r.monitor.Usage()
	if err != nil {
		r.logger.Debug("resource sample failed", zap.Error(err))
		return 0
	}
	return usage.MemoryRSS
}
