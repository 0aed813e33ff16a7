package services

import (
	"context"
	"errors"
	"fmt"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"

	"go.uber.org/zap"
)

// SubmissionCallbacks are notified during a submission: OnStart first, then
// exactly one of OnSuccess or OnError. Nil callbacks are skipped.
type SubmissionCallbacks struct {
	OnStart   func()
	OnSuccess func(result response_models.ItineraryResult)
	OnError   func(err error)
}

// SubmissionObserver is told about every successful submission.
type SubmissionObserver interface {
	RecordItinerary(ctx context.Context, result response_models.ItineraryResult) error
}

type SubmissionServiceInterface interface {
	// Submit sends tree to the itinerary service and returns the tree the form
	// should hold afterwards: empty on success, tree itself on failure.
	Submit(ctx context.Context, tree request_models.ItineraryInput, callbacks SubmissionCallbacks) (request_models.ItineraryInput, error)
}

type SubmissionService struct {
	client   utils.ItineraryClientInterface
	clock    utils.Clock
	observer SubmissionObserver
	logger   *zap.Logger
}

func NewSubmissionService(
	client utils.ItineraryClientInterface,
	clock utils.Clock,
	observer SubmissionObserver,
	logger *zap.Logger,
) SubmissionServiceInterface {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &SubmissionService{
		client:   client,
		clock:    clock,
		observer: observer,
		logger:   logger,
	}
}

// FinalizeItineraryInput returns the payload for tree with its derived title set.
func FinalizeItineraryInput(tree request_models.ItineraryInput, clock utils.Clock) request_models.ItineraryInput {
	payload := tree
	payload.Title = fmt.Sprintf("%s %d", tree.Destination, clock().Year())
	return payload
}

func (s *SubmissionService) Submit(
	ctx context.Context,
	tree request_models.ItineraryInput,
	callbacks SubmissionCallbacks,
) (request_models.ItineraryInput, error) {
	payload := FinalizeItineraryInput(tree, s.clock)

	if callbacks.OnStart != nil {
		callbacks.OnStart()
	}

	s.logger.Info("submitting itinerary request",
		zap.String("destination", payload.Destination),
		zap.String("title", payload.Title))

	result, err := s.createItinerary(ctx, payload)
	if err != nil {
		s.logger.Warn("itinerary submission failed", zap.Error(err))
		if callbacks.OnError != nil {
			callbacks.OnError(err)
		}
		return tree, err
	}

	if callbacks.OnSuccess != nil {
		callbacks.OnSuccess(result)
	}

	if s.observer != nil {
		if err := s.observer.RecordItinerary(ctx, result); err != nil {
			s.logger.Warn("failed to record itinerary", zap.String("itinerary_id", result.ID), zap.Error(err))
		}
	}

	return request_models.NewEmptyItineraryInput(), nil
}

func (s *SubmissionService) createItinerary(ctx context.Context, payload request_models.ItineraryInput) (response_models.ItineraryResult, error) {
	envelope, err := s.client.CreateItinerary(ctx, payload)
	if err != nil {
		if errors.Is(err, utils.ErrMalformedResponse) {
			return response_models.ItineraryResult{}, err
		}
		return response_models.ItineraryResult{}, fmt.Errorf("%w: %w", utils.ErrTransportFailure, err)
	}
	return NormalizeItineraryResponse(envelope)
}
