package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/analysis"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/validation"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/logger"
)

// ExperimentStore is the persistence the experiment services need.
type ExperimentStore interface {
	Create(ctx context.Context, req domain.CreateExperimentRequest) (*domain.Experiment, error)
	FindByID(ctx context.Context, id string) (*domain.Experiment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Experiment, error)
	Update(ctx context.Context, id string, patch domain.ExperimentPatch) (*domain.Experiment, error)
}

// EventPublisher announces persisted updates. Failures are logged only.
type EventPublisher interface {
	PublishUpdated(ctx context.Context, e *domain.Experiment) error
}

type Assessor interface {
	Assess(ctx context.Context, r domain.SensorReadings) analysis.Assessment
}

type Matcher interface {
	LoadBank(ctx context.Context) ([]domain.HistoricalSample, error)
	Compare(ctx context.Context, r domain.SensorReadings, samples []domain.HistoricalSample) analysis.Similarity
}

// UpdateInput is the raw update request as received.
type UpdateInput struct {
	ID          string
	ContentType string
	Body        []byte
}

// UpdateResult is a successful update. SimilarExperimentAnalysis is nil
// when the enrichment produced nothing.
type UpdateResult struct {
	Experiment                *domain.Experiment
	SimilarExperimentAnalysis *string
}

// UpdateService runs the sensor-update pipeline: validate, assess, persist,
// then enrich with a similarity analysis. Only validation, not-found and
// storage errors are returned; reasoning failures are absorbed.
type UpdateService struct {
	store     ExperimentStore
	assessor  Assessor
	matcher   Matcher
	publisher EventPublisher
	log       *logger.Logger
}

func NewUpdateService(store ExperimentStore, assessor Assessor, matcher Matcher, publisher EventPublisher, log *logger.Logger) *UpdateService {
	return &UpdateService{
		store:     store,
		assessor:  assessor,
		matcher:   matcher,
		publisher: publisher,
		log:       log,
	}
}

func (s *UpdateService) Update(ctx context.Context, in UpdateInput) (*UpdateResult, error) {
	log := logger.FromContext(ctx, s.log).With("experiment_id", in.ID)

	readings, err := validation.ValidateUpdate(in.ContentType, in.Body, in.ID)
	if err != nil {
		return nil, err
	}

	patch := domain.NewPatch(readings)

	// The bank does not depend on the assessment, so load it meanwhile.
	// LoadBank bounds the query; bankCtx also stops it early when the
	// update itself fails.
	bankCtx, cancelBank := context.WithCancel(ctx)
	defer cancelBank()

	var (
		bank    []domain.HistoricalSample
		bankErr error
		g       errgroup.Group
	)
	g.Go(func() error {
		bank, bankErr = s.matcher.LoadBank(bankCtx)
		return nil
	})

	assessment := s.assessor.Assess(ctx, readings)
	if assessment.Fallback() {
		log.Warn("assessment unavailable, using fallback", "error", assessment.Err)
	}
	patch.Summary = &assessment.Summary
	patch.Solution = &assessment.Solution

	updated, err := s.store.Update(ctx, in.ID, patch)
	if err != nil {
		cancelBank()
		_ = g.Wait()
		if errors.Is(err, domain.ErrExperimentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("persist experiment update: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishUpdated(ctx, updated); err != nil {
			log.Warn("failed to publish experiment update", "error", err)
		}
	}

	result := &UpdateResult{Experiment: updated}

	_ = g.Wait()
	if bankErr != nil {
		log.Warn("failed to load experiments bank, skipping similarity", "error", bankErr)
		return result, nil
	}

	sim := s.matcher.Compare(ctx, readings, bank)
	if sim.Err != nil {
		log.Warn("similarity analysis unavailable", "error", sim.Err)
	}
	if sim.Present() {
		analysisText := sim.Analysis
		result.SimilarExperimentAnalysis = &analysisText
	}

	log.Info("experiment updated",
		"assessment_fallback", assessment.Fallback(),
		"bank_samples", len(bank),
		"similarity", sim.Present(),
	)
	return result, nil
}
