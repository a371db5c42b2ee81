package catalog_test

import (
	"testing"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()

	p, err := catalog.NewProduct(id, " Pachet servicii 1 ", "Description for packet 1", decimal.NewFromInt(150))

	require.NoError(t, err)
	assert.True(t, id.IsEqual(p.ID()))
	assert.Equal(t, "Pachet servicii 1", p.Name())
	assert.True(t, decimal.NewFromInt(150).Equal(p.Price()))
	assert.NoError(t, p.Validate())
}

func TestNewProduct_FreeProductIsAllowed(t *testing.T) {
	p, err := catalog.NewProduct(kernel.NewUUID(), "Consultanta", "", decimal.Zero)

	require.NoError(t, err)
	assert.True(t, p.Price().IsZero())
}

func TestNewProduct_Invalid(t *testing.T) {
	_, err := catalog.NewProduct(kernel.UUID{}, "", "", decimal.RequireFromString("-0.01"))

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, catalog.ErrNameIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestProduct_ZeroValueIsInvalid(t *testing.T) {
	var p catalog.Product
	assert.ErrorIs(t, p.Validate(), catalog.ErrProductIsNotConstructed)
}
