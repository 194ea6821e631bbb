package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"ftr/internal/domain"
)

// NewRegistry returns a registry holding gauges for the summary
func NewRegistry(s domain.Summary) (*prometheus.Registry, error) {
	files := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ftr_test_files",
		Help: "Test files in the last run by status.",
	}, []string{"status"})
	cases := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ftr_test_cases",
		Help: "Test cases in the last run by status.",
	}, []string{"status"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ftr_duration_seconds",
		Help: "Summed test file duration of the last run.",
	})
	resultFiles := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ftr_result_files",
		Help: "Results files aggregated into the last summary.",
	})

	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{files, cases, duration, resultFiles} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	files.WithLabelValues(domain.StatusPassed).Set(float64(s.PassedTestFiles))
	files.WithLabelValues(domain.StatusFailed).Set(float64(s.FailedTestFiles))
	cases.WithLabelValues(domain.StatusPassed).Set(float64(s.PassedTestCases))
	cases.WithLabelValues(domain.StatusFailed).Set(float64(s.FailedTestCases))
	cases.WithLabelValues(domain.StatusPending).Set(float64(s.PendingTestCases))
	duration.Set(s.Duration.Seconds())
	resultFiles.Set(float64(s.ResultFiles))

	return reg, nil
}

// WriteTextfile writes the summary in Prometheus text format for the
// node_exporter textfile collector. The file is replaced atomically.
func WriteTextfile(path string, s domain.Summary) error {
	reg, err := NewRegistry(s)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
