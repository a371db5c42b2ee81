package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientQueryHandler(t *testing.T) {
	s := newStore(t)
	company := s.company("Acme SRL")
	handler := queries.NewGetClientQueryHandler(s.db)

	query, err := queries.NewGetClientQuery(company.ID())
	require.NoError(t, err)

	got, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.True(t, company.ID().IsEqual(got.ID))
	assert.Equal(t, "COMPANY", got.Kind)
	assert.Equal(t, "Acme SRL", got.DisplayName)
	assert.Equal(t, "RO1", got.RegistrationID)
	assert.Empty(t, got.FullName)

	query, err = queries.NewGetClientQuery(kernel.NewUUID())
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), query)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListClientsQueryHandler_OrdersByDisplayName(t *testing.T) {
	s := newStore(t)
	s.company("Zeta Construct SRL")
	s.individual("Ana Pop")
	s.company("Beta Events SRL")

	got, err := queries.NewListClientsQueryHandler(s.db).Handle(t.Context(), queries.NewListClientsQuery())

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Ana Pop", got[0].DisplayName)
	assert.Equal(t, "INDIVIDUAL", got[0].Kind)
	assert.Equal(t, "Beta Events SRL", got[1].DisplayName)
	assert.Equal(t, "Zeta Construct SRL", got[2].DisplayName)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetClientQuery{}.Validate(), queries.ErrGetClientQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListClientsQuery{}.Validate(), queries.ErrListClientsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListProductsQuery{}.Validate(), queries.ErrListProductsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetRouteQuery{}.Validate(), queries.ErrGetRouteQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListRoutesQuery{}.Validate(), queries.ErrListRoutesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetTaskQuery{}.Validate(), queries.ErrGetTaskQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListTasksQuery{}.Validate(), queries.ErrListTasksQueryIsNotConstructed)
	assert.ErrorIs(t, queries.OrderHasTaskQuery{}.Validate(), queries.ErrOrderHasTaskQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetEmployeeQuery{}.Validate(), queries.ErrGetEmployeeQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListEmployeesQuery{}.Validate(), queries.ErrListEmployeesQueryIsNotConstructed)

	_, err := queries.NewGetClientQuery(kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewListRoutesByCountyQuery("  ")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
