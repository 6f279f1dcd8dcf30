package analysis

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/reasoning"
)

// assessmentFallbacks counts assessments replaced by the fallback text.
// Labels: reason (unavailable, malformed)
var assessmentFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "aqualab",
	Subsystem: "analysis",
	Name:      "assessment_fallbacks_total",
	Help:      "Assessments that fell back because the reply was unusable or the service failed",
}, []string{"reason"})

func recordFallback(err error) {
	reason := "unavailable"
	if errors.Is(err, reasoning.ErrMalformedResponse) {
		reason = "malformed"
	}
	assessmentFallbacks.WithLabelValues(reason).Inc()
}
