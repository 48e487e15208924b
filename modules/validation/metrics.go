package validation

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// Metrics records validation outcomes. The zero value is not usable; build
// one with NewMetrics.
type Metrics struct {
	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics registers the validation collectors on reg.
//
// Collectors:
//   - formcheck_validations_total{form, valid}
//   - formcheck_field_failures_total{form, field, rule}
//   - formcheck_validation_duration_seconds{form}
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formcheck_validations_total",
			Help: "Number of form validation passes.",
		}, []string{"form", "valid"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formcheck_field_failures_total",
			Help: "Number of failed fields by the rule that rejected them.",
		}, []string{"form", "field", "rule"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "formcheck_validation_duration_seconds",
			Help:    "Time spent evaluating a form.",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"form"}),
	}
	reg.MustRegister(m.validations, m.failures, m.duration)
	return m
}

// Observe records one validation pass of the named form.
func (m *Metrics) Observe(form string, report validator.Report, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(form, strconv.FormatBool(report.Valid())).Inc()
	m.duration.WithLabelValues(form).Observe(elapsed.Seconds())
	for _, res := range report.Invalid() {
		rule := res.Rule
		if rule == "" {
			rule = "unknown"
		}
		m.failures.WithLabelValues(form, res.ID, rule).Inc()
	}
}
