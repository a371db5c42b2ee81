package clientrepo_test

import (
	"testing"

	"dispatch/internal/adapters/out/postgres/clientrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

func newRepository(t *testing.T) *clientrepo.GormClientRepository {
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	return clientrepo.NewGormClientRepository(pgtest.OpenSQLite(t), tracker)
}

func TestGormClientRepository_CompanyRoundTrip(t *testing.T) {
	ctx := t.Context()
	repo := newRepository(t)

	c, err := client.NewCompany(kernel.NewUUID(),
		client.Contact{Email: "office@acme.ro", Phone: "0257000000", Address: "Calea Aurel Vlaicu 10, Arad"},
		client.CompanyDetails{LegalName: "Acme SRL", RegistrationID: "RO123456", AdminContact: "Maria Ionescu"})
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, c))

	loaded, err := repo.Get(ctx, c.ID())
	require.NoError(t, err)

	assert.Equal(t, client.KindCompany, loaded.Kind())
	assert.Equal(t, c.Contact(), loaded.Contact())
	details, ok := loaded.Company()
	require.True(t, ok)
	assert.Equal(t, "Acme SRL", details.LegalName)
	assert.Equal(t, "RO123456", details.RegistrationID)
	_, ok = loaded.Individual()
	assert.False(t, ok)
}

func TestGormClientRepository_UpdateAttachesIDPhoto(t *testing.T) {
	ctx := t.Context()
	repo := newRepository(t)

	c, err := client.NewIndividual(kernel.NewUUID(),
		client.Contact{Phone: "0721000001"},
		client.IndividualDetails{FullName: "Ion Popescu", NationalID: "1800101020031"})
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, c))

	require.NoError(t, c.AttachIDPhoto("https://cdn.example/ids/ion.jpg"))
	require.NoError(t, repo.Update(ctx, c))

	loaded, err := repo.Get(ctx, c.ID())
	require.NoError(t, err)
	details, ok := loaded.Individual()
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/ids/ion.jpg", details.IDPhotoURL)
	assert.Equal(t, "Ion Popescu", details.FullName)
}

func TestGormClientRepository_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := newRepository(t)

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	c, err := client.NewIndividual(kernel.NewUUID(), client.Contact{}, client.IndividualDetails{FullName: "Nobody"})
	require.NoError(t, err)
	require.ErrorIs(t, repo.Update(ctx, c), errs.ErrObjectNotFound)
}
