package services

import (
	"context"
	"sync"
	"time"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"

	"go.uber.org/zap"
)

// FormSnapshot is a consistent copy of a session's state.
type FormSnapshot struct {
	ID         string
	Tree       request_models.ItineraryInput
	View       ViewState
	Submitting bool
	UpdatedAt  time.Time
}

// CanSubmit reports whether the submit control is enabled.
func (s FormSnapshot) CanSubmit() bool {
	_, onForm := s.View.(FormView)
	return onForm && !s.Submitting
}

// FormSession owns one preference tree and its view state. All mutators are
// serialized by mu; the remote call runs on its own goroutine and is the only
// work done outside the lock.
type FormSession struct {
	id        string
	submitter SubmissionServiceInterface
	validate  func(request_models.ItineraryInput) error
	clock     utils.Clock
	logger    *zap.Logger

	mu         sync.Mutex
	tree       request_models.ItineraryInput
	machine    *ViewStateMachine
	submitting bool
	updatedAt  time.Time

	inFlight sync.WaitGroup
}

func NewFormSession(
	id string,
	submitter SubmissionServiceInterface,
	validate func(request_models.ItineraryInput) error,
	clock utils.Clock,
	logger *zap.Logger,
) *FormSession {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &FormSession{
		id:        id,
		submitter: submitter,
		validate:  validate,
		clock:     clock,
		logger:    logger.With(zap.String("session_id", id)),
		tree:      request_models.NewEmptyItineraryInput(),
		machine:   NewViewStateMachine(),
		updatedAt: clock(),
	}
}

func (s *FormSession) ID() string { return s.id }

func (s *FormSession) Snapshot() FormSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *FormSession) snapshotLocked() FormSnapshot {
	return FormSnapshot{
		ID:         s.id,
		Tree:       s.tree,
		View:       s.machine.State(),
		Submitting: s.submitting,
		UpdatedAt:  s.updatedAt,
	}
}

// UpdateField applies one field change. The tree is frozen while a submission
// is in flight.
func (s *FormSession) UpdateField(fieldID, value string) (FormSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return s.snapshotLocked(), utils.ErrSubmissionInFlight
	}
	next, err := ApplyField(s.tree, fieldID, value)
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.tree = next
	s.updatedAt = s.clock()
	return s.snapshotLocked(), nil
}

// Submit starts a submission and returns once the view is Pending. The
// submission keeps running on ctx after Submit returns; it cannot be cancelled
// through the session.
func (s *FormSession) Submit(ctx context.Context) (FormSnapshot, error) {
	s.mu.Lock()
	if s.submitting {
		defer s.mu.Unlock()
		return s.snapshotLocked(), utils.ErrSubmissionInFlight
	}
	if _, onForm := s.machine.State().(FormView); !onForm {
		defer s.mu.Unlock()
		return s.snapshotLocked(), s.machine.StartSubmission()
	}
	if s.validate != nil {
		if err := s.validate(s.tree); err != nil {
			defer s.mu.Unlock()
			return s.snapshotLocked(), err
		}
	}
	s.submitting = true
	tree := s.tree
	s.mu.Unlock()

	started := make(chan struct{})
	var startOnce sync.Once
	markStarted := func() { startOnce.Do(func() { close(started) }) }

	s.inFlight.Add(1)
	go func() {
		defer s.inFlight.Done()
		defer markStarted()
		s.run(ctx, tree, markStarted)
	}()

	<-started
	return s.Snapshot(), nil
}

func (s *FormSession) run(ctx context.Context, tree request_models.ItineraryInput, markStarted func()) {
	next, err := s.submitter.Submit(ctx, tree, SubmissionCallbacks{
		OnStart: func() {
			s.mu.Lock()
			if err := s.machine.StartSubmission(); err != nil {
				s.logger.Error("unexpected view transition", zap.Error(err))
			}
			s.updatedAt = s.clock()
			s.mu.Unlock()
			markStarted()
		},
		OnSuccess: func(result response_models.ItineraryResult) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if err := s.machine.SubmissionSucceeded(result); err != nil {
				s.logger.Error("unexpected view transition", zap.Error(err))
			}
		},
		OnError: func(err error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if terr := s.machine.SubmissionFailed(err.Error()); terr != nil {
				s.logger.Error("unexpected view transition", zap.Error(terr))
			}
		},
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = next
	s.submitting = false
	s.updatedAt = s.clock()
	if err == nil {
		s.logger.Info("itinerary ready")
	}
}

func (s *FormSession) CloseResult() (FormSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.machine.CloseResult(); err != nil {
		return s.snapshotLocked(), err
	}
	s.updatedAt = s.clock()
	return s.snapshotLocked(), nil
}

// Wait blocks until no submission is running.
func (s *FormSession) Wait() {
	s.inFlight.Wait()
}
