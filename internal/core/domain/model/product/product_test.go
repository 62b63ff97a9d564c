package product_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), " Apples ", 120, 5)

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, "Apples", p.Name())
	assert.Equal(t, 5, p.Stock())

	_, err = product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "", -1, -1)
	assert.ErrorIs(t, err, product.ErrNameIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestProduct_ReserveAndRestock(t *testing.T) {
	p, _ := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Pears", 80, 3)

	require.NoError(t, p.Reserve(2))
	assert.Equal(t, 1, p.Stock())

	err := p.Reserve(2)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, errs.CodeInsufficientStock, errs.CodeOf(err))
	assert.Equal(t, 1, p.Stock())

	require.NoError(t, p.Restock(2))
	assert.Equal(t, 3, p.Stock())

	assert.ErrorIs(t, p.Reserve(0), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, p.Restock(-1), errs.ErrValueIsInvalid)
}
