package service

import (
	"context"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/validation"
)

// ExperimentService handles experiment create and read operations
type ExperimentService struct {
	store ExperimentStore
}

// NewExperimentService creates a new ExperimentService
func NewExperimentService(store ExperimentStore) *ExperimentService {
	return &ExperimentService{store: store}
}

// Create validates and stores a new experiment
func (s *ExperimentService) Create(ctx context.Context, contentType string, body []byte) (*domain.Experiment, error) {
	req, err := validation.ValidateCreateExperiment(contentType, body)
	if err != nil {
		return nil, err
	}
	return s.store.Create(ctx, req)
}

// Get retrieves an experiment by its ID
func (s *ExperimentService) Get(ctx context.Context, id string) (*domain.Experiment, error) {
	if err := validation.ValidateExperimentID(id); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// ListByUser retrieves all experiments for a user
func (s *ExperimentService) ListByUser(ctx context.Context, userID string) ([]domain.Experiment, error) {
	if err := validation.ValidateUserIDQuery(userID); err != nil {
		return nil, err
	}
	return s.store.ListByUser(ctx, userID)
}
