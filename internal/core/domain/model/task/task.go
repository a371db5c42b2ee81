package task

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task was not created via NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask constructor")
	// ErrScheduledTimeIsRequired is returned for a task without a scheduled time.
	ErrScheduledTimeIsRequired = errs.NewValueIsRequiredError("scheduled time")
	// ErrPhotoNotFound is returned when removing a photo the task does not own.
	ErrPhotoNotFound = errors.New("photo not found")
)

// Details are the descriptive fields of a task: where the work happens and
// who to call, copied from the client when the task is created so later
// edits to the client do not rewrite the history of the route.
type Details struct {
	Address       string
	ClientName    string
	ClientPhone   string
	InternalNotes string
}

// Task is a single unit of field work scheduled on a route. It is the
// aggregate root for its photos.
//
// Invariants:
//   - belongs to exactly one route
//   - references at most one order, and an order is referenced by at most
//     one task (enforced by storage)
//   - status only moves along the Status transition table
//
// Example usage:
//
//	t, err := task.NewTask(kernel.NewUUID(), routeID, &orderID,
//	    task.MapOrderType("amplasare"), clock.Now(),
//	    task.Details{ClientName: "Ion Popescu", Address: "Arad"})
//	if err != nil {
//	    return err
//	}
//	changed, err := t.ChangeStatus(task.InProgress, clock.Now())
type Task struct {
	id            kernel.UUID
	routeID       kernel.UUID
	orderID       *kernel.UUID
	taskType      Type
	scheduledTime time.Time
	status        Status
	details       Details
	photos        []*Photo
	events        []Event
	guard         guard.ConstructorGuard
}

// NewTask creates a task in status NEW and records EventCreated.
//
// Parameters:
//   - id: identifier of the task
//   - routeID: the owning route
//   - orderID: the originating order, nil for manual tasks
//   - taskType: kind of work
//   - scheduledTime: when the work is planned
//   - details: address and client snapshot
//
// Returns a joined validation error when any argument is invalid.
func NewTask(
	id kernel.UUID,
	routeID kernel.UUID,
	orderID *kernel.UUID,
	taskType Type,
	scheduledTime time.Time,
	details Details,
) (*Task, error) {
	t, err := RestoreTask(id, routeID, orderID, taskType, scheduledTime, New, details, nil)
	if err != nil {
		return nil, err
	}

	t.record(EventCreated, Unknown, scheduledTime)
	return t, nil
}

// RestoreTask rebuilds a task with its photos from storage. No events are
// recorded.
func RestoreTask(
	id kernel.UUID,
	routeID kernel.UUID,
	orderID *kernel.UUID,
	taskType Type,
	scheduledTime time.Time,
	status Status,
	details Details,
	photos []*Photo,
) (*Task, error) {
	t := &Task{
		details: normalizeDetails(details),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setRouteID(routeID),
		t.setOrderID(orderID),
		taskType.Validate(),
		t.setScheduledTime(scheduledTime),
		status.Validate(),
		t.setPhotos(photos),
	); err != nil {
		return nil, err
	}

	t.taskType = taskType
	t.status = status
	return t, nil
}

// Validate ensures the Task was created through a constructor.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// IsEqual compares two tasks by identifier.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Task) ID() kernel.UUID {
	return t.id
}

func (t *Task) RouteID() kernel.UUID {
	return t.routeID
}

// OrderID returns the originating order, nil for manual tasks or after the
// order was deleted.
func (t *Task) OrderID() *kernel.UUID {
	if t.orderID == nil {
		return nil
	}
	id := *t.orderID
	return &id
}

func (t *Task) Type() Type {
	return t.taskType
}

func (t *Task) ScheduledTime() time.Time {
	return t.scheduledTime
}

func (t *Task) Status() Status {
	return t.status
}

func (t *Task) Details() Details {
	return t.details
}

// Photos returns a copy of the photo list.
func (t *Task) Photos() []*Photo {
	out := make([]*Photo, len(t.photos))
	copy(out, t.photos)
	return out
}

// PhotoURLs lists the stored image of every photo, for object cleanup.
func (t *Task) PhotoURLs() []string {
	urls := make([]string, 0, len(t.photos))
	for _, p := range t.photos {
		urls = append(urls, p.ImageURL())
	}
	return urls
}

// ChangeStatus moves the task to next following the Status transition
// table.
//
// Returns:
//   - (true, nil) when the status changed; EventStatusChanged is recorded
//   - (false, nil) when next equals the current status
//   - (false, error) when the transition is refused
func (t *Task) ChangeStatus(next Status, at time.Time) (bool, error) {
	previous := t.status
	status, err := previous.TransitionTo(next)
	if err != nil {
		return false, err
	}
	if status == previous {
		return false, nil
	}

	t.status = status
	t.record(EventStatusChanged, previous, at)
	return true, nil
}

// AddPhoto attaches an uploaded photo.
func (t *Task) AddPhoto(photo *Photo) error {
	if err := photo.Validate(); err != nil {
		return err
	}
	t.photos = append(t.photos, photo)
	return nil
}

// RemovePhoto detaches a photo and returns it so its image can be deleted.
func (t *Task) RemovePhoto(photoID kernel.UUID) (*Photo, error) {
	for i, p := range t.photos {
		if p.ID().IsEqual(photoID) {
			t.photos = append(t.photos[:i], t.photos[i+1:]...)
			return p, nil
		}
	}
	return nil, ErrPhotoNotFound
}

// DetachOrder clears the weak reference to the originating order.
func (t *Task) DetachOrder() {
	t.orderID = nil
}

// MarkDeleted records EventDeleted. The caller removes the task from
// storage in the same transaction.
func (t *Task) MarkDeleted(at time.Time) {
	t.record(EventDeleted, t.status, at)
}

// PullEvents returns the recorded events and clears them.
func (t *Task) PullEvents() []Event {
	events := t.events
	t.events = nil
	return events
}

func (t *Task) record(eventType EventType, previous Status, at time.Time) {
	t.events = append(t.events, Event{
		Type:       eventType,
		TaskID:     t.id,
		RouteID:    t.routeID,
		OrderID:    t.OrderID(),
		TaskType:   t.taskType,
		Status:     t.status,
		Previous:   previous,
		OccurredAt: at,
	})
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route", err)
	}
	t.routeID = routeID
	return nil
}

func (t *Task) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	t.orderID = &id
	return nil
}

func (t *Task) setScheduledTime(at time.Time) error {
	if at.IsZero() {
		return ErrScheduledTimeIsRequired
	}
	t.scheduledTime = at
	return nil
}

func (t *Task) setPhotos(photos []*Photo) error {
	t.photos = make([]*Photo, 0, len(photos))
	for _, p := range photos {
		if err := p.Validate(); err != nil {
			return err
		}
		t.photos = append(t.photos, p)
	}
	return nil
}

func normalizeDetails(d Details) Details {
	return Details{
		Address:       strings.TrimSpace(d.Address),
		ClientName:    strings.TrimSpace(d.ClientName),
		ClientPhone:   strings.TrimSpace(d.ClientPhone),
		InternalNotes: d.InternalNotes,
	}
}
