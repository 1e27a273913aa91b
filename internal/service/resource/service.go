package resource

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/pkg/errors"
	"github.com/jwalitptl/clinic-api/pkg/event"
	"github.com/jwalitptl/clinic-api/pkg/messaging"
	"github.com/jwalitptl/clinic-api/pkg/metrics"
)

const (
	opCreate = "create"
	opList   = "list"
	opUpdate = "update"
	opDelete = "delete"
)

// Service runs the four operations of one clinic resource. Req is the decoded
// body, W the normalized column set it produces and R the listed row.
type Service[Req model.Request[W], W any, R any] struct {
	name      string
	repo      repository.Repository[W, R]
	publisher messaging.Publisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewService wires a resource service. A nil publisher disables change events.
func NewService[Req model.Request[W], W any, R any](
	name string,
	repo repository.Repository[W, R],
	publisher messaging.Publisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Service[Req, W, R] {
	if publisher == nil {
		publisher = messaging.NewPublisher(messaging.NewNoopBroker(), "")
	}
	return &Service[Req, W, R]{
		name:      name,
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With().Str("resource", name).Logger(),
	}
}

func (s *Service[Req, W, R]) Create(ctx context.Context, req Req) (int64, error) {
	w := req.Normalize()

	start := time.Now()
	id, err := s.repo.Create(ctx, &w)
	s.observe(opCreate, err, start)
	if err != nil {
		return 0, s.fail(opCreate, err)
	}

	s.publish(ctx, event.ActionCreated, strconv.FormatInt(id, 10))
	return id, nil
}

func (s *Service[Req, W, R]) List(ctx context.Context) ([]R, error) {
	start := time.Now()
	rows, err := s.repo.List(ctx)
	s.observe(opList, err, start)
	if err != nil {
		return nil, s.fail(opList, err)
	}
	return rows, nil
}

func (s *Service[Req, W, R]) Update(ctx context.Context, id string, req Req) (model.Result, error) {
	w := req.Normalize()

	start := time.Now()
	result, err := s.repo.Update(ctx, id, &w)
	s.observe(opUpdate, err, start)
	if err != nil {
		return model.Result{}, s.fail(opUpdate, err)
	}

	if result.AffectedRows > 0 {
		s.publish(ctx, event.ActionUpdated, id)
	}
	return result, nil
}

func (s *Service[Req, W, R]) Delete(ctx context.Context, id string) (model.Result, error) {
	start := time.Now()
	result, err := s.repo.Delete(ctx, id)
	s.observe(opDelete, err, start)
	if err != nil {
		return model.Result{}, s.fail(opDelete, err)
	}

	if result.AffectedRows > 0 {
		s.publish(ctx, event.ActionDeleted, id)
	}
	return result, nil
}

func (s *Service[Req, W, R]) observe(op string, err error, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveDatabase(s.name, op, err, time.Since(start))
	}
}

func (s *Service[Req, W, R]) fail(op string, err error) error {
	qErr := errors.FromQuery(err)
	s.logger.Warn().
		Err(err).
		Str("op", op).
		Str("code", qErr.Code).
		Msg("query failed")
	return qErr
}

// publish never fails the request; a lost event is logged and counted.
func (s *Service[Req, W, R]) publish(ctx context.Context, action event.Action, id string) {
	err := s.publisher.Publish(ctx, event.NewChange(s.name, action, id))
	if s.metrics != nil {
		s.metrics.ObserveEvent(s.name, string(action), err)
	}
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("action", string(action)).
			Str("id", id).
			Msg("failed to publish change event")
	}
}
