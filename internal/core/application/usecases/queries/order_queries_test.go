package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler(t *testing.T) {
	s := newStore(t)
	c := s.company("Acme SRL")
	o := s.order(1001, c.ID(), nil)
	handler := queries.NewGetOrderQueryHandler(s.db)

	query, err := queries.NewGetOrderQuery(o.ID())
	require.NoError(t, err)
	got, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(1001), got.Number)
	assert.Equal(t, "Acme SRL", got.ClientName)
	assert.Equal(t, "amplasare", got.Type)
	assert.Nil(t, got.ProductID)
	assert.Nil(t, got.RouteDefinitionID)
	assert.Equal(t, 2, got.Details.Quantity)
	assert.Equal(t, "Cheia la paznic", got.Details.Notes)
	require.NotNil(t, got.Details.StartDate)
	assert.Equal(t, "2024-06-01", got.Details.StartDate.Format("2006-01-02"))
	assert.Nil(t, got.Details.EndDate)

	query, err = queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), query)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListOrdersQueryHandler_Filters(t *testing.T) {
	s := newStore(t)
	acme := s.company("Acme SRL")
	ion := s.individual("Ion Popescu")
	north := s.definition("Arad Nord", "Arad")

	s.order(3, acme.ID(), nil)
	s.order(1, acme.ID(), func() *kernel.UUID { id := north.ID(); return &id }())
	s.order(2, ion.ID(), nil)

	handler := queries.NewListOrdersQueryHandler(s.db)

	all, err := handler.Handle(t.Context(), queries.NewListOrdersQuery())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].Number, all[1].Number, all[2].Number})
	assert.Equal(t, "Ion Popescu", all[1].ClientName)

	byClient, err := queries.NewListOrdersByClientQuery(acme.ID())
	require.NoError(t, err)
	got, err := handler.Handle(t.Context(), byClient)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Number)
	assert.Equal(t, int64(3), got[1].Number)

	byDefinition, err := queries.NewListOrdersByRouteDefinitionQuery(north.ID())
	require.NoError(t, err)
	got, err = handler.Handle(t.Context(), byDefinition)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].RouteDefinitionID)
	assert.True(t, north.ID().IsEqual(*got[0].RouteDefinitionID))
}

func TestListRouteDefinitionsQueryHandler(t *testing.T) {
	s := newStore(t)
	s.definition("Timisoara Sud", "Timisoara")
	s.definition("Arad Sud", "Arad")
	s.definition("Arad Nord", "Arad")

	got, err := queries.NewListRouteDefinitionsQueryHandler(s.db).
		Handle(t.Context(), queries.NewListRouteDefinitionsQuery())

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Arad Nord", got[0].Name)
	assert.Equal(t, "Arad Sud", got[1].Name)
	assert.Equal(t, "Timisoara Sud", got[2].Name)
}
