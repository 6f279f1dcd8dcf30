package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/reasoning"
)

// BankReader lists historical samples, most recent first.
type BankReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.HistoricalSample, error)
}

// Similarity is the optional enrichment attached to an update response.
type Similarity struct {
	Analysis string
	Err      error
}

// Present reports whether there is analysis text to return.
func (s Similarity) Present() bool { return s.Err == nil && s.Analysis != "" }

// SimilarityMatcher compares new readings against the experiments bank.
type SimilarityMatcher struct {
	completer   reasoning.Completer
	bank        BankReader
	maxSamples  int
	bankTimeout time.Duration
}

func NewSimilarityMatcher(c reasoning.Completer, bank BankReader, maxSamples int, bankTimeout time.Duration) *SimilarityMatcher {
	return &SimilarityMatcher{completer: c, bank: bank, maxSamples: maxSamples, bankTimeout: bankTimeout}
}

// LoadBank fetches at most maxSamples of the most recent historical samples.
// The query is abandoned after bankTimeout.
func (m *SimilarityMatcher) LoadBank(ctx context.Context) ([]domain.HistoricalSample, error) {
	if m.bankTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.bankTimeout)
		defer cancel()
	}
	return m.bank.ListRecent(ctx, m.maxSamples)
}

// Compare asks the reasoning service which sample is closest to r. An
// empty bank yields an empty result without calling the service.
func (m *SimilarityMatcher) Compare(ctx context.Context, r domain.SensorReadings, samples []domain.HistoricalSample) Similarity {
	if len(samples) == 0 {
		return Similarity{}
	}
	if m.maxSamples > 0 && len(samples) > m.maxSamples {
		samples = samples[:m.maxSamples]
	}

	out, err := m.completer.Complete(ctx, similaritySystem, similarityPrompt(r, samples), false)
	if err != nil {
		return Similarity{Err: err}
	}
	return Similarity{Analysis: strings.TrimSpace(out)}
}
