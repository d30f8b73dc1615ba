package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/ajitpratap0/colframe/pkg/config"
	"github.com/ajitpratap0/colframe/pkg/errors"
	"github.com/ajitpratap0/colframe/pkg/metrics"
	"github.com/ajitpratap0/colframe/pkg/performance"
	"github.com/ajitpratap0/colframe/pkg/testutil"
)

type RunnerSuite struct {
	suite.Suite
	cfg       *config.Config
	out       *bytes.Buffer
	collector *metrics.Collector
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.cfg = config.Default()
	s.cfg.Bench.Rows = 1000
	s.cfg.Bench.Seed = 1
	s.out = &bytes.Buffer{}
	s.collector = metrics.NewCollector()
}

func (s *RunnerSuite) newRunner(opts ...RunnerOption) *Runner {
	opts = append([]RunnerOption{
		WithOutput(s.out),
		WithCollector(s.collector),
		WithLogger(testutil.TestLogger(s.T())),
	}, opts...)
	r, err := NewRunner(s.cfg, opts...)
	s.Require().NoError(err)
	return r
}

func (s *RunnerSuite) TestAllPhases() {
	monitor, err := performance.NewResourceMonitor()
	s.Require().NoError(err)

	report, err := s.newRunner(WithResourceMonitor(monitor)).Run(testutil.TestContext(s.T()))
	s.Require().NoError(err)

	s.Equal(uint64(1), report.Seed)
	s.Equal(1000, report.Rows)
	s.NotEmpty(report.RunID)
	s.Require().Len(report.Workloads, 2)

	for _, w := range report.Workloads {
		s.Require().Len(w.Phases, 4, w.Name)
		phases := []Phase{PhaseCopyInsert, PhaseConsumeInsert, PhaseTableCopy, PhaseTableConsume}
		for i, p := range w.Phases {
			s.Equal(phases[i], p.Phase)
			s.Equal(1000, p.Rows)
			s.Greater(p.RSSAfter, uint64(0))
		}
		// 1000 rows grow through 1, 2, 4, ..., 1024
		s.Equal(11, w.Phases[0].Reallocations, w.Name)
		s.Equal(11, w.Phases[1].Reallocations, w.Name)
		// bulk copy reserves once; consume into an empty table adopts
		s.Equal(1, w.Phases[2].Reallocations, w.Name)
		s.Equal(1, w.Phases[3].Reallocations, w.Name)
	}

	out := s.out.String()
	s.Contains(out, "Speed test, 1K elements (int, float)\n")
	s.Contains(out, "Speed test, 1K elements (string, string)\n")
	s.Equal(2, strings.Count(out, "Insertion by consume... Elapsed time: "))
	s.Equal(2, strings.Count(out, "Append by consume... Elapsed time: "))
}

func (s *RunnerSuite) TestSelectedScenarios() {
	s.cfg.Scenarios.Text = false
	s.cfg.Scenarios.ConsumeInsert = false
	s.cfg.Scenarios.TableConsume = false

	report, err := s.newRunner().Run(context.Background())
	s.Require().NoError(err)
	s.Require().Len(report.Workloads, 1)
	s.Equal("numeric", report.Workloads[0].Name)
	s.Require().Len(report.Workloads[0].Phases, 2)
	s.Equal(PhaseTableCopy, report.Workloads[0].Phases[1].Phase)
	s.NotContains(s.out.String(), "string, string")
}

func (s *RunnerSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.newRunner().Run(ctx)
	s.Require().Error(err)
	s.True(errors.Is(err, context.Canceled))
}

func (s *RunnerSuite) TestInvalidConfig() {
	s.cfg.Bench.Rows = 0
	_, err := NewRunner(s.cfg)
	s.True(errors.IsType(err, errors.ErrorTypeConfig))

	_, err = NewRunner(nil)
	s.True(errors.IsType(err, errors.ErrorTypeConfig))
}

func (s *RunnerSuite) TestLogsPhaseContext() {
	log, logs := testutil.ObservedLogger()
	s.cfg.Scenarios.Text = false

	report, err := s.newRunner(WithLogger(log)).Run(context.Background())
	s.Require().NoError(err)

	entries := logs.FilterMessage("phase complete").All()
	s.Require().Len(entries, 4)
	fields := entries[0].ContextMap()
	s.Equal(report.RunID, fields["run_id"])
	s.Equal("numeric", fields["table"])
	s.Equal(string(PhaseCopyInsert), fields["phase"])
	s.Equal(int64(1000), fields["rows"])

	s.Equal(1, logs.FilterMessage("benchmark started").FilterField(zap.Uint64("seed", 1)).Len())
}
