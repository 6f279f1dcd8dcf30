package http

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/service"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/logger"
)

type Updater interface {
	Update(ctx context.Context, in service.UpdateInput) (*service.UpdateResult, error)
}

type Experiments interface {
	Create(ctx context.Context, contentType string, body []byte) (*domain.Experiment, error)
	Get(ctx context.Context, id string) (*domain.Experiment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Experiment, error)
}

// EventSource opens a Pub/Sub subscription for one experiment.
type EventSource interface {
	Subscribe(ctx context.Context, id string) *redis.PubSub
}

// Handler bundles the dependencies for experiment HTTP endpoints.
type Handler struct {
	updates     Updater
	experiments Experiments
	events      EventSource
	log         *logger.Logger
	keepAlive   time.Duration

	closing   chan struct{}
	closeOnce sync.Once
}

// New builds a Handler. events may be nil, in which case the stream route
// is not registered.
func New(updates Updater, experiments Experiments, events EventSource, log *logger.Logger) *Handler {
	return &Handler{
		updates:     updates,
		experiments: experiments,
		events:      events,
		log:         log,
		keepAlive:   15 * time.Second,
		closing:     make(chan struct{}),
	}
}

// Close ends every open event stream. Other requests are unaffected, so it
// can run at the start of a graceful shutdown.
func (h *Handler) Close() {
	h.closeOnce.Do(func() { close(h.closing) })
}
