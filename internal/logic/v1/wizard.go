package v1

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrLastStep is returned by Next on the last step; use Submit there.
	ErrLastStep = errors.New("wizard is on its last step")
	// ErrNotLastStep is returned by Submit before the last step.
	ErrNotLastStep = errors.New("wizard can only be submitted from its last step")
)

// Step names the struct fields collected on one page of a wizard.
// Field paths are Go field names, dotted for embedded structs ("ImageInput.URL").
type Step struct {
	Name   string
	Title  string
	Fields []string
}

var wizardValidator = newValidator()

// Wizard gates forward navigation behind the validity of the current step.
// Previous only exists to tell the direction of the last move.
type Wizard[D any] struct {
	steps    []Step
	current  int
	previous int
	draft    D
}

func NewWizard[D any](steps []Step) *Wizard[D] {
	if len(steps) == 0 {
		panic("wizard needs at least one step")
	}
	return &Wizard[D]{steps: steps}
}

func (w *Wizard[D]) Current() int  { return w.current }
func (w *Wizard[D]) Previous() int { return w.previous }
func (w *Wizard[D]) Step() Step    { return w.steps[w.current] }
func (w *Wizard[D]) Steps() []Step { return w.steps }
func (w *Wizard[D]) Draft() D      { return w.draft }
func (w *Wizard[D]) IsFirst() bool { return w.current == 0 }
func (w *Wizard[D]) IsLast() bool  { return w.current == len(w.steps)-1 }

// Direction is 1 after moving forward, -1 after moving back and 0 before any move.
func (w *Wizard[D]) Direction() int {
	switch {
	case w.current > w.previous:
		return 1
	case w.current < w.previous:
		return -1
	}
	return 0
}

// Next validates the current step's fields of in, merges them into the draft and advances.
// On invalid input the step does not change and a *ValidationError is returned.
func (w *Wizard[D]) Next(in D) error {
	if err := w.accept(in); err != nil {
		return err
	}
	if w.IsLast() {
		return ErrLastStep
	}
	w.previous = w.current
	w.current++
	return nil
}

// Prev moves one step back and never below the first step.
func (w *Wizard[D]) Prev() {
	if w.current == 0 {
		return
	}
	w.previous = w.current
	w.current--
}

// Submit accepts the last step and hands the whole draft to submit.
func (w *Wizard[D]) Submit(ctx context.Context, in D, submit func(ctx context.Context, draft D) error) error {
	if !w.IsLast() {
		return ErrNotLastStep
	}
	if err := w.accept(in); err != nil {
		return err
	}
	// State from earlier steps travelled through the browser; check it all again.
	if err := wizardValidator.Struct(w.draft); err != nil {
		return w.validationError(err)
	}
	return submit(ctx, w.draft)
}

func (w *Wizard[D]) accept(in D) error {
	fields := w.steps[w.current].Fields
	if len(fields) > 0 {
		if err := wizardValidator.StructPartial(in, fields...); err != nil {
			return w.validationError(err)
		}
	}
	dst := reflect.ValueOf(&w.draft).Elem()
	src := reflect.ValueOf(in)
	for _, path := range fields {
		fieldByPath(dst, path).Set(fieldByPath(src, path))
	}
	return nil
}

func (w *Wizard[D]) validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate wizard step: %w", err)
	}
	return &ValidationError{Fields: FieldErrorsOf(err, w.draft)}
}

func fieldByPath(v reflect.Value, path string) reflect.Value {
	for _, name := range strings.Split(path, ".") {
		v = v.FieldByName(name)
	}
	return v
}

type wizardState[D any] struct {
	Step  int `json:"s"`
	Prev  int `json:"p"`
	Draft D   `json:"d"`
}

// State encodes the wizard for a hidden form field. Password inputs are never included.
func (w *Wizard[D]) State() (string, error) {
	draft := w.draft
	clearPasswords(reflect.ValueOf(&draft).Elem())
	raw, err := sonic.Marshal(wizardState[D]{Step: w.current, Prev: w.previous, Draft: draft})
	if err != nil {
		return "", fmt.Errorf("encode wizard state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// RestoreWizard rebuilds a wizard from State output. An empty state starts from the first step.
func RestoreWizard[D any](steps []Step, state string) (*Wizard[D], error) {
	w := NewWizard[D](steps)
	if state == "" {
		return w, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		return nil, fmt.Errorf("decode wizard state: %w", err)
	}
	var st wizardState[D]
	if err := sonic.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode wizard state: %w", err)
	}
	w.current = clamp(st.Step, 0, len(steps)-1)
	w.previous = clamp(st.Prev, 0, len(steps)-1)
	w.draft = st.Draft
	return w, nil
}

func clearPasswords(v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		switch {
		case sf.Anonymous && sf.Type.Kind() == reflect.Struct:
			clearPasswords(v.Field(i))
		case sf.IsExported() && sf.Tag.Get("input") == "password":
			v.Field(i).SetZero()
		}
	}
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
