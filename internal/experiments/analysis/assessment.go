package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/reasoning"
)

// FallbackSummary replaces the summary whenever the assessment call fails.
const FallbackSummary = "AI analysis unavailable at this time."

// Assessment is the outcome of one assessment attempt. Summary and
// Solution are always safe to persist; Err records why the fallback was
// used, if it was.
type Assessment struct {
	Summary  string
	Solution string
	Err      error
}

// Fallback reports whether the fallback text was substituted.
func (a Assessment) Fallback() bool { return a.Err != nil }

type AssessmentGenerator struct {
	completer reasoning.Completer
}

func NewAssessmentGenerator(c reasoning.Completer) *AssessmentGenerator {
	return &AssessmentGenerator{completer: c}
}

type assessmentReply struct {
	Summary  *string `json:"summary"`
	Solution *string `json:"solution"`
}

// Assess asks the reasoning service for a summary and remediation advice.
// It never fails; errors produce the fallback assessment.
func (g *AssessmentGenerator) Assess(ctx context.Context, r domain.SensorReadings) Assessment {
	raw, err := g.completer.Complete(ctx, assessmentSystem, assessmentPrompt(r), true)
	if err != nil {
		return fallbackAssessment(err)
	}

	var reply assessmentReply
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &reply); err != nil {
		return fallbackAssessment(fmt.Errorf("%w: %v", reasoning.ErrMalformedResponse, err))
	}
	if reply.Summary == nil || strings.TrimSpace(*reply.Summary) == "" {
		return fallbackAssessment(fmt.Errorf("%w: missing summary", reasoning.ErrMalformedResponse))
	}

	a := Assessment{Summary: strings.TrimSpace(*reply.Summary)}
	if reply.Solution != nil {
		a.Solution = strings.TrimSpace(*reply.Solution)
	}
	return a
}

func fallbackAssessment(err error) Assessment {
	recordFallback(err)
	return Assessment{Summary: FallbackSummary, Solution: "", Err: err}
}

// stripCodeFence removes a ```json fence some models wrap around JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
