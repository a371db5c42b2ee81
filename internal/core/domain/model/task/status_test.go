package task_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := map[string]task.Status{
		"NEW":         task.New,
		"in_progress": task.InProgress,
		" Completed ": task.Completed,
		"cancelled":   task.Cancelled,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			status, err := task.ParseStatus(input)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		})
	}

	for _, input := range []string{"", "UNKNOWN", "DONE", "IN PROGRESS"} {
		t.Run(fmt.Sprintf("rejects %q", input), func(t *testing.T) {
			_, err := task.ParseStatus(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "NEW", task.New.String())
	assert.Equal(t, "IN_PROGRESS", task.InProgress.String())
	assert.Equal(t, "COMPLETED", task.Completed.String())
	assert.Equal(t, "CANCELLED", task.Cancelled.String())
	assert.Equal(t, "UNKNOWN", task.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []task.Status{task.New, task.InProgress, task.Completed, task.Cancelled} {
		require.NoError(t, s.Validate())
	}
	for _, s := range []task.Status{task.Unknown, task.Status(-1), task.Status(5)} {
		err := s.Validate()
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	all := []task.Status{task.New, task.InProgress, task.Completed, task.Cancelled}
	allowed := map[task.Status][]task.Status{
		task.New:        {task.New, task.InProgress, task.Cancelled},
		task.InProgress: {task.InProgress, task.Completed, task.Cancelled},
		task.Completed:  {task.Completed},
		task.Cancelled:  {task.Cancelled},
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if contains(allowed[from], to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					assert.True(t, from.CanTransitionTo(to))
					return
				}

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
				assert.Equal(t, from, next)
				assert.False(t, from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatus_TransitionToInvalid(t *testing.T) {
	_, err := task.New.TransitionTo(task.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = task.Unknown.TransitionTo(task.New)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, task.New.IsTerminal())
	assert.False(t, task.InProgress.IsTerminal())
	assert.True(t, task.Completed.IsTerminal())
	assert.True(t, task.Cancelled.IsTerminal())
}

func contains(statuses []task.Status, s task.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}
