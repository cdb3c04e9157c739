package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/wizard"
)

func TestSteps(t *testing.T) {
	require.Len(t, Steps, 4)
	keys := make([]string, 0, len(Steps))
	for _, s := range Steps {
		keys = append(keys, s.Key)
		assert.Len(t, s.Options, 4, s.Key)
	}
	assert.Equal(t, []string{"goal", "experience", "background", "timeCommitment"}, keys)
}

func TestApply(t *testing.T) {
	w := New()
	state := w.Start()

	tests := []struct {
		name        string
		cmd         Command
		wantStep    int
		wantOutcome wizard.Outcome
		wantErr     error
	}{
		{name: "continue without answer", cmd: Command{Action: ActionContinue}, wantStep: 1, wantErr: wizard.ErrStepIncomplete},
		{name: "select unknown", cmd: Command{Action: ActionSelect, Value: "fame"}, wantStep: 1, wantErr: wizard.ErrUnknownOption},
		{name: "select", cmd: Command{Action: ActionSelect, Value: "career"}, wantStep: 1},
		{name: "continue", cmd: Command{Action: ActionContinue}, wantStep: 2, wantOutcome: wizard.Advanced},
		{name: "back", cmd: Command{Action: ActionBack}, wantStep: 1},
		{name: "back on first step", cmd: Command{Action: ActionBack}, wantStep: 1},
		{name: "skip", cmd: Command{Action: ActionSkip}, wantStep: 1, wantOutcome: wizard.Completed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, outcome, err := Apply(w, state, tt.cmd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, map[string]string{"value": messages[tt.wantErr]}, core.FieldErrors(err, nil))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantStep, next.Step)
			state = next
		})
	}
	assert.Equal(t, "career", state.Answers["goal"], "answers survive going back")
}

func TestApply_FullRun(t *testing.T) {
	w := New()
	state := w.Start()
	var (
		outcome wizard.Outcome
		err     error
	)
	for _, step := range Steps {
		state, _, err = Apply(w, state, Command{Action: ActionSelect, Value: step.Options[1].Value})
		require.NoError(t, err)
		state, outcome, err = Apply(w, state, Command{Action: ActionContinue})
		require.NoError(t, err)
	}
	assert.Equal(t, wizard.Completed, outcome)
	assert.Equal(t, map[string]string{
		"goal": "freelance", "experience": "some", "background": "creative", "timeCommitment": "moderate",
	}, state.Answers)
}
