package reasoning

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// callsTotal counts completion calls.
	// Labels: operation (assessment, similarity), status (success, error)
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aqualab",
		Subsystem: "reasoning",
		Name:      "calls_total",
		Help:      "Total reasoning service calls",
	}, []string{"operation", "status"})

	callLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aqualab",
		Subsystem: "reasoning",
		Name:      "latency_seconds",
		Help:      "Reasoning service call latency in seconds",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
	}, []string{"operation"})
)

type instrumented struct {
	next      Completer
	operation string
}

// Instrument wraps c so every call is counted and timed under operation.
func Instrument(c Completer, operation string) Completer {
	return &instrumented{next: c, operation: operation}
}

func (i *instrumented) Complete(ctx context.Context, system, prompt string, structured bool) (string, error) {
	start := time.Now()
	out, err := i.next.Complete(ctx, system, prompt, structured)
	callLatency.WithLabelValues(i.operation).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
	}
	callsTotal.WithLabelValues(i.operation, status).Inc()
	return out, err
}
