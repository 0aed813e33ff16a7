package services

import (
	"fmt"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// ViewState is one of FormView, PendingView or ResultView.
type ViewState interface {
	Name() string
	isViewState()
}

// FormView shows the editable form, with the last submission error if any.
type FormView struct {
	ErrorMessage string
}

// PendingView is shown while a submission is in flight.
type PendingView struct{}

// ResultView shows a generated itinerary.
type ResultView struct {
	Result response_models.ItineraryResult
}

func (FormView) Name() string    { return response_models.ViewForm }
func (PendingView) Name() string { return response_models.ViewPending }
func (ResultView) Name() string  { return response_models.ViewResult }

func (FormView) isViewState()    {}
func (PendingView) isViewState() {}
func (ResultView) isViewState()  {}

// ViewStateMachine drives Form -> Pending -> Result -> Form, and Pending -> Form
// on a failed submission. A transition requested from the wrong state returns
// ErrInvalidTransition and leaves the state as it was.
type ViewStateMachine struct {
	state ViewState
}

func NewViewStateMachine() *ViewStateMachine {
	return &ViewStateMachine{state: FormView{}}
}

func (m *ViewStateMachine) State() ViewState { return m.state }

func (m *ViewStateMachine) StartSubmission() error {
	if _, ok := m.state.(FormView); !ok {
		return m.invalid("startSubmission")
	}
	m.state = PendingView{}
	return nil
}

func (m *ViewStateMachine) SubmissionSucceeded(result response_models.ItineraryResult) error {
	if _, ok := m.state.(PendingView); !ok {
		return m.invalid("submissionSucceeded")
	}
	m.state = ResultView{Result: result}
	return nil
}

func (m *ViewStateMachine) SubmissionFailed(message string) error {
	if _, ok := m.state.(PendingView); !ok {
		return m.invalid("submissionFailed")
	}
	m.state = FormView{ErrorMessage: message}
	return nil
}

func (m *ViewStateMachine) CloseResult() error {
	if _, ok := m.state.(ResultView); !ok {
		return m.invalid("closeResult")
	}
	m.state = FormView{}
	return nil
}

func (m *ViewStateMachine) invalid(transition string) error {
	return fmt.Errorf("%w: %s from %s", utils.ErrInvalidTransition, transition, m.state.Name())
}
