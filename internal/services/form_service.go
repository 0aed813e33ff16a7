package services

import (
	"context"
	"fmt"
	"sync"
	"tripplanner/internal/models/request_models"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FormServiceInterface interface {
	CreateSession(ctx context.Context) (FormSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (FormSnapshot, error)
	UpdateField(ctx context.Context, sessionID, fieldID, value string) (FormSnapshot, error)
	Submit(ctx context.Context, sessionID string) (FormSnapshot, error)
	CloseResult(ctx context.Context, sessionID string) (FormSnapshot, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Schema() []request_models.FormField
	Drain(ctx context.Context) error
}

type FormService struct {
	sessions  mem.SessionStore[*FormSession]
	submitter SubmissionServiceInterface
	validator *RequiredFieldValidator
	clock     utils.Clock
	logger    *zap.Logger

	inFlight sync.WaitGroup
}

func NewFormService(
	sessions mem.SessionStore[*FormSession],
	submitter SubmissionServiceInterface,
	validator *RequiredFieldValidator,
	clock utils.Clock,
	logger *zap.Logger,
) FormServiceInterface {
	return &FormService{
		sessions:  sessions,
		submitter: submitter,
		validator: validator,
		clock:     clock,
		logger:    logger,
	}
}

func (f *FormService) CreateSession(ctx context.Context) (FormSnapshot, error) {
	var validate func(request_models.ItineraryInput) error
	if f.validator != nil {
		validate = f.validator.Validate
	}
	session := NewFormSession(uuid.NewString(), f.submitter, validate, f.clock, f.logger)
	f.sessions.Set(session.ID(), session)

	f.logger.Debug("form session created", zap.String("session_id", session.ID()))
	return session.Snapshot(), nil
}

func (f *FormService) GetSession(ctx context.Context, sessionID string) (FormSnapshot, error) {
	session, err := f.session(sessionID)
	if err != nil {
		return FormSnapshot{}, err
	}
	return session.Snapshot(), nil
}

func (f *FormService) UpdateField(ctx context.Context, sessionID, fieldID, value string) (FormSnapshot, error) {
	session, err := f.session(sessionID)
	if err != nil {
		return FormSnapshot{}, err
	}
	return session.UpdateField(fieldID, value)
}

// Submit detaches the submission from ctx's cancellation so it outlives the
// request that triggered it.
func (f *FormService) Submit(ctx context.Context, sessionID string) (FormSnapshot, error) {
	session, err := f.session(sessionID)
	if err != nil {
		return FormSnapshot{}, err
	}
	f.inFlight.Add(1)
	snapshot, err := session.Submit(context.WithoutCancel(ctx))
	if err != nil {
		f.inFlight.Done()
		return snapshot, err
	}
	go func() {
		defer f.inFlight.Done()
		session.Wait()
	}()
	return snapshot, nil
}

// Drain waits for every submission started through Submit to finish, or for
// ctx to end. Call it once no new submissions can arrive.
func (f *FormService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		f.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		f.logger.Warn("shutdown before in-flight submissions finished", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

func (f *FormService) CloseResult(ctx context.Context, sessionID string) (FormSnapshot, error) {
	session, err := f.session(sessionID)
	if err != nil {
		return FormSnapshot{}, err
	}
	return session.CloseResult()
}

func (f *FormService) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := f.session(sessionID); err != nil {
		return err
	}
	f.sessions.Delete(sessionID)
	return nil
}

func (f *FormService) Schema() []request_models.FormField {
	return request_models.FormSchema()
}

func (f *FormService) session(sessionID string) (*FormSession, error) {
	session, ok := f.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	return session, nil
}
