package taskrepo_test

import (
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/adapters/out/postgres/taskrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type TaskRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *taskrepo.GormTaskRepository
	routeID    kernel.UUID
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
	suite.db = pgtest.OpenSQLite(suite.T())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = taskrepo.NewGormTaskRepository(suite.db, suite.tracker)
	suite.routeID = kernel.NewUUID()
}

func (suite *TaskRepositoryTestSuite) newTask(orderID *kernel.UUID) *task.Task {
	t, err := task.NewTask(kernel.NewUUID(), suite.routeID, orderID, task.Pickup,
		time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC),
		task.Details{
			Address:       "Calea Aurel Vlaicu 10, Arad",
			ClientName:    "Acme SRL",
			ClientPhone:   "0257000000",
			InternalNotes: "Cheia la paznic",
		})
	suite.Require().NoError(err)
	return t
}

func (suite *TaskRepositoryTestSuite) newPhoto(url string) *task.Photo {
	p, err := task.NewPhoto(kernel.NewUUID(), url, "")
	suite.Require().NoError(err)
	return p
}

func (suite *TaskRepositoryTestSuite) TestAddAndGet() {
	ctx := suite.T().Context()
	orderID := kernel.NewUUID()
	t := suite.newTask(&orderID)
	suite.Require().NoError(t.AddPhoto(suite.newPhoto("https://cdn.example/task/1.jpg")))

	suite.Require().NoError(suite.repository.Add(ctx, t))

	loaded, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(t))
	suite.Equal(task.New, loaded.Status())
	suite.Equal(task.Pickup, loaded.Type())
	suite.Equal(t.Details(), loaded.Details())
	suite.Require().NotNil(loaded.OrderID())
	suite.True(orderID.IsEqual(*loaded.OrderID()))
	suite.Equal([]string{"https://cdn.example/task/1.jpg"}, loaded.PhotoURLs())
	suite.Empty(loaded.PullEvents(), "restored tasks carry no events")

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", t.ID(), t)
}

func (suite *TaskRepositoryTestSuite) TestAdd_SecondTaskForSameOrderIsRefused() {
	ctx := suite.T().Context()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTask(&orderID)))

	err := suite.repository.Add(ctx, suite.newTask(&orderID))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *TaskRepositoryTestSuite) TestAdd_ManualTasksDoNotCollide() {
	ctx := suite.T().Context()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newTask(nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTask(nil)))
}

func (suite *TaskRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_StatusAndPhotos() {
	ctx := suite.T().Context()
	t := suite.newTask(nil)
	kept := suite.newPhoto("https://cdn.example/task/kept.jpg")
	dropped := suite.newPhoto("https://cdn.example/task/dropped.jpg")
	suite.Require().NoError(t.AddPhoto(kept))
	suite.Require().NoError(t.AddPhoto(dropped))
	suite.Require().NoError(suite.repository.Add(ctx, t))

	_, err := t.ChangeStatus(task.InProgress, time.Now())
	suite.Require().NoError(err)
	_, err = t.RemovePhoto(dropped.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(t.AddPhoto(suite.newPhoto("https://cdn.example/task/new.jpg")))

	suite.Require().NoError(suite.repository.Update(ctx, t))

	loaded, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.InProgress, loaded.Status())
	suite.ElementsMatch(
		[]string{"https://cdn.example/task/kept.jpg", "https://cdn.example/task/new.jpg"},
		loaded.PhotoURLs(),
	)

	var photoRows int64
	suite.Require().NoError(suite.db.Model(&taskrepo.PhotoDTO{}).Count(&photoRows).Error)
	suite.EqualValues(2, photoRows)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_DetachOrderClearsReference() {
	ctx := suite.T().Context()
	orderID := kernel.NewUUID()
	t := suite.newTask(&orderID)
	suite.Require().NoError(suite.repository.Add(ctx, t))

	t.DetachOrder()
	suite.Require().NoError(suite.repository.Update(ctx, t))

	loaded, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.OrderID())

	exists, err := suite.repository.ExistsForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_UnknownTask() {
	err := suite.repository.Update(suite.T().Context(), suite.newTask(nil))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TaskRepositoryTestSuite) TestGetByOrderAndExistsForOrder() {
	ctx := suite.T().Context()
	orderID := kernel.NewUUID()

	exists, err := suite.repository.ExistsForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.False(exists)

	_, err = suite.repository.GetByOrder(ctx, orderID)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	t := suite.newTask(&orderID)
	suite.Require().NoError(suite.repository.Add(ctx, t))

	exists, err = suite.repository.ExistsForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(exists)

	loaded, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(t))
}

func (suite *TaskRepositoryTestSuite) TestDelete_RemovesPhotos() {
	ctx := suite.T().Context()
	t := suite.newTask(nil)
	suite.Require().NoError(t.AddPhoto(suite.newPhoto("https://cdn.example/task/1.jpg")))
	suite.Require().NoError(suite.repository.Add(ctx, t))

	suite.Require().NoError(suite.repository.Delete(ctx, t))

	_, err := suite.repository.Get(ctx, t.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	var photoRows int64
	suite.Require().NoError(suite.db.Model(&taskrepo.PhotoDTO{}).Count(&photoRows).Error)
	suite.Zero(photoRows)
}

func (suite *TaskRepositoryTestSuite) TestLoadForRoute_KeepsInsertionOrderWithoutPauses() {
	ctx := suite.T().Context()

	const count = 20
	want := make([]kernel.UUID, 0, count)
	for range count {
		t := suite.newTask(nil)
		suite.Require().NoError(t.AddPhoto(suite.newPhoto("https://cdn.example/task/a.jpg")))
		suite.Require().NoError(t.AddPhoto(suite.newPhoto("https://cdn.example/task/b.jpg")))
		suite.Require().NoError(suite.repository.Add(ctx, t))
		want = append(want, t.ID())
	}

	dtos, err := taskrepo.LoadForRoute(suite.db, suite.routeID.Bytes())
	suite.Require().NoError(err)
	suite.Require().Len(dtos, count)

	for i, dto := range dtos {
		suite.Equal(want[i].Bytes(), dto.ID, "task %d", i)
		suite.Require().Len(dto.Photos, 2)
		suite.Equal("https://cdn.example/task/a.jpg", dto.Photos[0].ImageURL)
		suite.Equal("https://cdn.example/task/b.jpg", dto.Photos[1].ImageURL)
		if i > 0 {
			suite.Greater(dto.Seq, dtos[i-1].Seq)
		}
	}
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
