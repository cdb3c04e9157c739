package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(values ...string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v})
	}
	return opts
}

func newTestWizard() *Wizard {
	return New(
		Step{Key: "goal", Options: options("career", "freelance", "business", "learn")},
		Step{Key: "experience", Options: options("beginner", "some", "intermediate", "advanced")},
		Step{Key: "background", Options: options("tech", "creative", "business", "other")},
		Step{Key: "timeCommitment", Options: options("minimal", "moderate", "dedicated", "intensive")},
	)
}

func TestContinueDisabledWithoutAnswer(t *testing.T) {
	w := newTestWizard()
	state := w.Start()

	for step := 1; step <= w.Total(); step++ {
		require.Equal(t, step, state.Step)
		assert.False(t, w.CanContinue(state), "step %d", step)

		_, outcome, err := w.Continue(state)
		assert.Equal(t, ErrStepIncomplete, err, "step %d", step)
		assert.Equal(t, Stay, outcome, "step %d", step)

		state, err = w.Select(state, w.Current(state).Options[0].Value)
		require.NoError(t, err)
		state, _, err = w.Continue(state)
		require.NoError(t, err)
	}
}

func TestBackThenReselect(t *testing.T) {
	w := newTestWizard()
	state := w.Start()

	answers := []string{"career", "some", "tech"}
	var err error
	for _, a := range answers {
		state, err = w.Select(state, a)
		require.NoError(t, err)
		state, _, err = w.Continue(state)
		require.NoError(t, err)
	}
	require.Equal(t, 4, state.Step)

	state = w.Back(state)
	state = w.Back(state)
	require.Equal(t, 2, state.Step)
	assert.Equal(t, "some", w.Answer(state))

	state, err = w.Select(state, "advanced")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"goal": "career", "experience": "advanced", "background": "tech"}, state.Answers)
}

func TestOnboardingScenario(t *testing.T) {
	w := newTestWizard()
	state := w.Start()
	assert.Equal(t, 1, state.Step)
	assert.Empty(t, state.Answers)
	assert.False(t, w.CanContinue(state))
	assert.False(t, w.CanGoBack(state))

	state, err := w.Select(state, "freelance")
	require.NoError(t, err)
	assert.True(t, w.CanContinue(state))
	assert.Equal(t, 1, state.Step, "selecting never advances")

	state, outcome, err := w.Continue(state)
	require.NoError(t, err)
	assert.Equal(t, Advanced, outcome)
	assert.Equal(t, 2, state.Step)

	state = w.Back(state)
	assert.Equal(t, 1, state.Step)
	assert.Equal(t, "freelance", w.Answer(state))
}

func TestComplete(t *testing.T) {
	w := newTestWizard()
	state := State{Step: 4, Answers: map[string]string{"timeCommitment": "dedicated"}}

	got, outcome, err := w.Continue(state)
	require.NoError(t, err)
	assert.Equal(t, Completed, outcome)
	assert.Equal(t, 4, got.Step)
}

func TestSkip(t *testing.T) {
	w := newTestWizard()
	_, outcome := w.Skip(w.Start())
	assert.Equal(t, Completed, outcome)
}

func TestSelectUnknownOption(t *testing.T) {
	w := newTestWizard()
	state := w.Start()

	got, err := w.Select(state, "astronaut")
	assert.Equal(t, ErrUnknownOption, err)
	assert.Equal(t, state, got)

	_, err = w.Select(state, "")
	assert.Equal(t, ErrUnknownOption, err)
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	w := newTestWizard()
	state := w.Start()
	_, err := w.Select(state, "learn")
	require.NoError(t, err)
	assert.Empty(t, state.Answers)
}

func TestBackOnFirstStep(t *testing.T) {
	w := newTestWizard()
	state := w.Start()
	assert.Equal(t, state, w.Back(state))
}

func TestNormalize(t *testing.T) {
	w := newTestWizard()
	tests := []struct {
		name  string
		state State
		want  State
	}{
		{
			name:  "zero value",
			state: State{},
			want:  State{Step: 1, Answers: map[string]string{}},
		},
		{
			name:  "step too high",
			state: State{Step: 9, Answers: map[string]string{"goal": "learn"}},
			want:  State{Step: 4, Answers: map[string]string{"goal": "learn"}},
		},
		{
			name:  "unknown keys and values dropped",
			state: State{Step: 2, Answers: map[string]string{"goal": "fame", "pet": "cat", "experience": "some"}},
			want:  State{Step: 2, Answers: map[string]string{"experience": "some"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Normalize(tt.state))
		})
	}
}

func TestProgress(t *testing.T) {
	w := newTestWizard()
	for step, want := range map[int]int{1: 25, 2: 50, 3: 75, 4: 100} {
		assert.Equal(t, want, w.Progress(State{Step: step}))
	}
	assert.Equal(t, 33, New(Step{}, Step{}, Step{}).Progress(State{Step: 1}))
	assert.Equal(t, 0, New().Progress(State{Step: 1}))
}

func TestEmptyWizard(t *testing.T) {
	w := New()
	state := w.Normalize(w.Start())

	assert.Equal(t, Step{}, w.Current(state))
	assert.Equal(t, "", w.Answer(state))
	assert.False(t, w.CanContinue(state))

	_, err := w.Select(state, "career")
	assert.Equal(t, ErrUnknownOption, err)

	_, outcome, err := w.Continue(state)
	assert.Equal(t, ErrStepIncomplete, err)
	assert.Equal(t, Stay, outcome)
}
