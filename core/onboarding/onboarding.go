// Package onboarding defines the questionnaire new students go through after signing up.
package onboarding

import (
	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/wizard"
)

// CompletedPath is where a finished (or skipped) onboarding lands.
const CompletedPath = "/dashboard"

// Steps of the questionnaire, in order.
var Steps = []wizard.Step{
	{
		Key:      "goal",
		Title:    "What is your primary goal?",
		Subtitle: "This helps us recommend the best learning path for you.",
		Options: []wizard.Option{
			{Value: "career", Label: "Advance my career", Description: "Get promoted or switch to AI roles"},
			{Value: "freelance", Label: "Start freelancing", Description: "Build a freelance AI business"},
			{Value: "business", Label: "Grow my business", Description: "Use AI to scale my company"},
			{Value: "learn", Label: "Learn for fun", Description: "Explore AI out of curiosity"},
		},
	},
	{
		Key:      "experience",
		Title:    "What is your experience level?",
		Subtitle: "We will tailor the content to match your current skills.",
		Options: []wizard.Option{
			{Value: "beginner", Label: "Complete beginner", Description: "No prior AI or coding experience"},
			{Value: "some", Label: "Some experience", Description: "Used AI tools, want to go deeper"},
			{Value: "intermediate", Label: "Intermediate", Description: "Built some projects, want to level up"},
			{Value: "advanced", Label: "Advanced", Description: "Experienced, looking for cutting-edge skills"},
		},
	},
	{
		Key:      "background",
		Title:    "What is your background?",
		Subtitle: "This helps us recommend relevant projects and examples.",
		Options: []wizard.Option{
			{Value: "tech", Label: "Tech/Engineering", Description: "Developer, engineer, or technical role"},
			{Value: "creative", Label: "Creative", Description: "Designer, writer, or marketer"},
			{Value: "business", Label: "Business", Description: "Manager, consultant, or entrepreneur"},
			{Value: "other", Label: "Other", Description: "Student, researcher, or other field"},
		},
	},
	{
		Key:      "timeCommitment",
		Title:    "How much time can you commit?",
		Subtitle: "We will create a schedule that works for you.",
		Options: []wizard.Option{
			{Value: "minimal", Label: "1-2 hours/week", Description: "Casual learning pace"},
			{Value: "moderate", Label: "3-5 hours/week", Description: "Steady progress"},
			{Value: "dedicated", Label: "6-10 hours/week", Description: "Fast track learning"},
			{Value: "intensive", Label: "10+ hours/week", Description: "Full immersion"},
		},
	},
}

// Actions a visitor can take on a step.
const (
	ActionSelect   = "select"
	ActionContinue = "continue"
	ActionBack     = "back"
	ActionSkip     = "skip"
)

// Messages shown when an action is refused.
const (
	MsgIncomplete    = "Please choose an option to continue."
	MsgUnknownOption = "Please choose one of the options below."
)

var messages = map[error]string{
	wizard.ErrStepIncomplete: MsgIncomplete,
	wizard.ErrUnknownOption:  MsgUnknownOption,
}

// Command is one posted onboarding action.
type Command struct {
	Action string `form:"action" validate:"required,oneof=select continue back skip"`
	Value  string `form:"value" validate:"required_if=Action select"`
}

// New returns the onboarding wizard.
func New() *wizard.Wizard {
	return wizard.New(Steps...)
}

// Apply runs cmd against state and returns the new state and outcome.
// A refused action returns the state unchanged and a *core.ValidationError wrapping
// wizard.ErrStepIncomplete or wizard.ErrUnknownOption, with the message on the "value" field.
func Apply(w *wizard.Wizard, state wizard.State, cmd Command) (wizard.State, wizard.Outcome, error) {
	next, outcome, err := apply(w, w.Normalize(state), cmd)
	if msg, ok := messages[err]; ok {
		return next, outcome, core.NewValidationError(err, core.FieldError{Field: "value", Error: msg})
	}
	return next, outcome, err
}

func apply(w *wizard.Wizard, state wizard.State, cmd Command) (wizard.State, wizard.Outcome, error) {
	switch cmd.Action {
	case ActionSelect:
		next, err := w.Select(state, cmd.Value)
		return next, wizard.Stay, err
	case ActionContinue:
		return w.Continue(state)
	case ActionBack:
		return w.Back(state), wizard.Stay, nil
	case ActionSkip:
		next, outcome := w.Skip(state)
		return next, outcome, nil
	}
	return state, wizard.Stay, nil
}
