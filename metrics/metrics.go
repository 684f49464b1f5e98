package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/reusee/caesar/caesarlang"
)

type Metrics struct {
	Registry *prometheus.Registry

	Parses       *prometheus.CounterVec
	Statements   *prometheus.CounterVec
	Errors       *prometheus.CounterVec
	ParseSeconds prometheus.Histogram
}

func (Module) Metrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		Parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caesar_parses_total",
				Help: "Count of parsed sources by result",
			}, []string{"result"},
		),

		Statements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caesar_statements_total",
				Help: "Count of statements in accepted programs by kind",
			}, []string{"kind"},
		),

		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caesar_parse_errors_total",
				Help: "Count of parse errors by category",
			}, []string{"category"},
		),

		ParseSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "caesar_parse_seconds",
				Help:    "Latency of parsing one source",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
			},
		),
	}
	m.Registry.MustRegister(m.Parses, m.Statements, m.Errors, m.ParseSeconds)
	return m
}

// Observe records one finished parse.
func (m *Metrics) Observe(result *caesarlang.ParseResult, elapsed time.Duration) {
	m.ParseSeconds.Observe(elapsed.Seconds())

	if !result.OK() {
		m.Parses.WithLabelValues("rejected").Inc()
		for _, err := range result.Errors {
			m.Errors.WithLabelValues(Category(err)).Inc()
		}
		return
	}

	m.Parses.WithLabelValues("accepted").Inc()
	for _, stmt := range result.Program.Statements {
		switch stmt.(type) {
		case *caesarlang.ShiftDecl:
			m.Statements.WithLabelValues("shift").Inc()
		case *caesarlang.EncodeStmt:
			m.Statements.WithLabelValues("encode").Inc()
		case *caesarlang.DecodeStmt:
			m.Statements.WithLabelValues("decode").Inc()
		}
	}
}

// Category names the kind of a parse error for labelling.
func Category(err error) string {
	var (
		lexErr *caesarlang.LexicalError
		synErr *caesarlang.SyntaxError
		semErr *caesarlang.SemanticError
	)
	switch {
	case errors.As(err, &lexErr):
		return "lexical"
	case errors.As(err, &synErr):
		return "syntax"
	case errors.As(err, &semErr):
		return "semantic"
	}
	return "io"
}
