// Package wizard implements the multi-step questionnaire flow: forward
// transitions gated on per-step validation of the shared intake schema,
// unconditional backward transitions, and a final submission with at most one
// request in flight per wizard instance.
package wizard

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/transport/http/dto"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a previous
	// submission has not completed.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// ErrAlreadySubmitted is returned once a wizard has submitted successfully.
	ErrAlreadySubmitted = errors.New("form has already been submitted")

	// ErrNotOnFinalStep is returned when Submit is called before the wizard
	// has advanced through every step.
	ErrNotOnFinalStep = errors.New("not on the final step")
)

// validate mirrors gin's binding engine: the same validator implementation
// reading the same `binding` tags, so a step that passes here passes the
// server too.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// SubmitFunc delivers a completed form to the submission flow.
type SubmitFunc func(ctx context.Context, form *entity.UserForm) (*entity.UserForm, error)

// Wizard is one in-progress questionnaire. It is safe for concurrent use.
type Wizard struct {
	submit SubmitFunc

	mu       sync.Mutex
	form     dto.CreateUserFormReq
	step     int
	inFlight bool
	done     bool
}

// New creates a wizard positioned on the first step with an empty form.
func New(submit SubmitFunc) *Wizard {
	return &Wizard{submit: submit}
}

// Step returns the zero-based index of the active step.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Form returns a copy of the answers collected so far.
func (w *Wizard) Form() dto.CreateUserFormReq {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Update applies answers to the form. Values for any step may be set at any
// time; validation only happens on Next and Submit.
func (w *Wizard) Update(apply func(form *dto.CreateUserFormReq)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	apply(&w.form)
}

// Next validates the active step's fields against the shared schema and, on
// success, advances to the following step. The returned error carries
// validator.ValidationErrors with the offending fields.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := validate.StructPartial(w.form, Steps[w.step].Fields...); err != nil {
		return err
	}
	if w.step < len(Steps)-1 {
		w.step++
	}
	return nil
}

// Back moves to the previous step. Backward transitions are unconditional.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > 0 {
		w.step--
	}
}

// Submit validates the full form and delivers it via the submit function.
// Only one submission may be in flight; a failed submission releases the
// latch so the user can retry, a successful one pins the wizard done.
func (w *Wizard) Submit(ctx context.Context) (*entity.UserForm, error) {
	w.mu.Lock()
	if w.done {
		w.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if w.step != len(Steps)-1 {
		w.mu.Unlock()
		return nil, ErrNotOnFinalStep
	}
	if err := validate.Struct(w.form); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	form, err := w.form.ToEntity()
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.inFlight = true
	w.mu.Unlock()

	// The lock is not held across the request so Step/Form stay responsive
	// while the submission is in flight.
	out, submitErr := w.submit(ctx, form)

	w.mu.Lock()
	w.inFlight = false
	if submitErr == nil {
		w.done = true
	}
	w.mu.Unlock()

	return out, submitErr
}
