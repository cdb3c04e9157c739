// Package wizard implements a linear multi-step form where each step needs one answer.
package wizard

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrStepIncomplete = errors.New("the current step has no answer")
	ErrUnknownOption  = errors.New("unknown option for the current step")
)

type (
	Option struct {
		Value       string `json:"value"`
		Label       string `json:"label"`
		Description string `json:"description,omitempty"`
	}

	Step struct {
		Key      string   `json:"key"`
		Title    string   `json:"title"`
		Subtitle string   `json:"subtitle"`
		Options  []Option `json:"options"`
	}

	Wizard struct {
		Steps []Step
	}

	// State is the position in the wizard (1-based) and the answers given so far, keyed by step key.
	State struct {
		Step    int               `json:"step"`
		Answers map[string]string `json:"answers"`
	}

	Outcome int
)

const (
	Stay Outcome = iota
	Advanced
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Completed:
		return "completed"
	default:
		return "stay"
	}
}

func New(steps ...Step) *Wizard {
	return &Wizard{Steps: steps}
}

func (w *Wizard) Total() int { return len(w.Steps) }

func (w *Wizard) Start() State {
	return State{Step: 1, Answers: map[string]string{}}
}

// Current returns the step being shown, or the zero Step when state is out of bounds.
func (w *Wizard) Current(state State) Step {
	if state.Step < 1 || state.Step > w.Total() {
		return Step{}
	}
	return w.Steps[state.Step-1]
}

// Answer returns the answer given for the current step, if any.
func (w *Wizard) Answer(state State) string {
	return state.Answers[w.Current(state).Key]
}

// Select records value as the answer of the current step. It never advances.
func (w *Wizard) Select(state State, value string) (State, error) {
	step := w.Current(state)
	if !step.has(value) {
		return state, ErrUnknownOption
	}
	next := state.clone()
	next.Answers[step.Key] = value
	return next, nil
}

func (w *Wizard) CanContinue(state State) bool {
	return w.Answer(state) != ""
}

// Continue advances to the next step, or reports Completed on the last one.
func (w *Wizard) Continue(state State) (State, Outcome, error) {
	if !w.CanContinue(state) {
		return state, Stay, ErrStepIncomplete
	}
	if state.Step >= w.Total() {
		return state, Completed, nil
	}
	next := state.clone()
	next.Step++
	return next, Advanced, nil
}

func (w *Wizard) CanGoBack(state State) bool {
	return state.Step > 1
}

// Back moves to the previous step, keeping every answer.
func (w *Wizard) Back(state State) State {
	if !w.CanGoBack(state) {
		return state
	}
	next := state.clone()
	next.Step--
	return next
}

// Skip completes the wizard without validating any step.
func (w *Wizard) Skip(state State) (State, Outcome) {
	return state, Completed
}

// Normalize clamps state into the wizard's bounds and drops answers for unknown keys or options.
func (w *Wizard) Normalize(state State) State {
	next := State{Step: state.Step, Answers: make(map[string]string, len(state.Answers))}
	if next.Step < 1 {
		next.Step = 1
	}
	if next.Step > w.Total() {
		next.Step = w.Total()
	}
	for _, step := range w.Steps {
		if v, ok := state.Answers[step.Key]; ok && step.has(v) {
			next.Answers[step.Key] = v
		}
	}
	return next
}

// Progress is the completion percentage of the current step, rounded.
func (w *Wizard) Progress(state State) int {
	if w.Total() == 0 {
		return 0
	}
	return int(math.Round(float64(state.Step) / float64(w.Total()) * 100))
}

func (s Step) has(value string) bool {
	for _, opt := range s.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	answers := make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	return State{Step: s.Step, Answers: answers}
}
