package task_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduled = time.Date(2024, 5, 17, 8, 0, 0, 0, time.UTC)

func newTask(t *testing.T, orderID *kernel.UUID) *task.Task {
	t.Helper()
	tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), orderID, task.Placement, scheduled, task.Details{
		Address:     " Str. Unirii 1, Arad ",
		ClientName:  "Ion Popescu",
		ClientPhone: "0721000001",
	})
	require.NoError(t, err)
	return tk
}

func TestNewTask(t *testing.T) {
	orderID := kernel.NewUUID()

	tk := newTask(t, &orderID)

	assert.Equal(t, task.New, tk.Status())
	assert.Equal(t, task.Placement, tk.Type())
	assert.Equal(t, scheduled, tk.ScheduledTime())
	assert.Equal(t, "Str. Unirii 1, Arad", tk.Details().Address)
	require.NotNil(t, tk.OrderID())
	assert.True(t, orderID.IsEqual(*tk.OrderID()))
	assert.Empty(t, tk.Photos())
	require.NoError(t, tk.Validate())

	events := tk.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, task.EventCreated, events[0].Type)
	assert.Equal(t, task.New, events[0].Status)
	assert.Empty(t, tk.PullEvents())
}

func TestNewTask_ManualTaskHasNoOrder(t *testing.T) {
	tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), nil, task.Maintenance, scheduled, task.Details{})

	require.NoError(t, err)
	assert.Nil(t, tk.OrderID())
}

func TestNewTask_Invalid(t *testing.T) {
	_, err := task.NewTask(kernel.UUID{}, kernel.UUID{}, nil, task.Type("REPAIR"), time.Time{}, task.Details{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, task.ErrScheduledTimeIsRequired)
}

func TestTask_OrderIDIsACopy(t *testing.T) {
	orderID := kernel.NewUUID()
	tk := newTask(t, &orderID)

	got := tk.OrderID()
	*got = kernel.NewUUID()

	assert.True(t, orderID.IsEqual(*tk.OrderID()))
}

func TestTask_ChangeStatus(t *testing.T) {
	tk := newTask(t, nil)
	tk.PullEvents()
	at := scheduled.Add(time.Hour)

	changed, err := tk.ChangeStatus(task.InProgress, at)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = tk.ChangeStatus(task.InProgress, at)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = tk.ChangeStatus(task.Completed, at)
	require.NoError(t, err)
	assert.True(t, changed)

	events := tk.PullEvents()
	require.Len(t, events, 2)
	assert.Equal(t, task.EventStatusChanged, events[1].Type)
	assert.Equal(t, task.InProgress, events[1].Previous)
	assert.Equal(t, task.Completed, events[1].Status)
	assert.Equal(t, at, events[1].OccurredAt)
}

func TestTask_ChangeStatus_TerminalIsProtected(t *testing.T) {
	tk := newTask(t, nil)
	_, err := tk.ChangeStatus(task.InProgress, scheduled)
	require.NoError(t, err)
	_, err = tk.ChangeStatus(task.Completed, scheduled)
	require.NoError(t, err)

	changed, err := tk.ChangeStatus(task.New, scheduled)

	require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
	assert.False(t, changed)
	assert.Equal(t, task.Completed, tk.Status())
}

func TestTask_Photos(t *testing.T) {
	tk := newTask(t, nil)
	photo, err := task.NewPhoto(kernel.NewUUID(), "https://storage.googleapis.com/b/Task Photos/p.jpg", "before")
	require.NoError(t, err)

	require.NoError(t, tk.AddPhoto(photo))
	assert.Len(t, tk.Photos(), 1)
	assert.Equal(t, []string{photo.ImageURL()}, tk.PhotoURLs())

	removed, err := tk.RemovePhoto(photo.ID())
	require.NoError(t, err)
	assert.True(t, removed.ID().IsEqual(photo.ID()))
	assert.Empty(t, tk.Photos())

	_, err = tk.RemovePhoto(photo.ID())
	require.ErrorIs(t, err, task.ErrPhotoNotFound)

	require.ErrorIs(t, tk.AddPhoto(&task.Photo{}), task.ErrPhotoIsNotConstructed)
}

func TestNewPhoto_RequiresURL(t *testing.T) {
	_, err := task.NewPhoto(kernel.NewUUID(), " ", "")
	require.ErrorIs(t, err, task.ErrImageURLIsRequired)
}

func TestTask_DetachOrderAndDelete(t *testing.T) {
	orderID := kernel.NewUUID()
	tk := newTask(t, &orderID)
	tk.PullEvents()

	tk.DetachOrder()
	tk.MarkDeleted(scheduled)

	assert.Nil(t, tk.OrderID())
	events := tk.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, task.EventDeleted, events[0].Type)
}

func TestRestoreTask_KeepsStatusWithoutEvents(t *testing.T) {
	photo, err := task.NewPhoto(kernel.NewUUID(), "https://x/p.jpg", "")
	require.NoError(t, err)

	tk, err := task.RestoreTask(kernel.NewUUID(), kernel.NewUUID(), nil, task.Pickup, scheduled, task.Cancelled,
		task.Details{}, []*task.Photo{photo})

	require.NoError(t, err)
	assert.Equal(t, task.Cancelled, tk.Status())
	assert.Len(t, tk.Photos(), 1)
	assert.Empty(t, tk.PullEvents())
}
