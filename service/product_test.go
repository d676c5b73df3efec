package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db)

	t.Run("create and list newest first", func(t *testing.T) {
		_, err := products.Create("كريسبي 2", 50, 30, nil)
		require.NoError(t, err)
		image := "/uploads/products/kibbeh.jpg"
		_, err = products.Create("كبة لبنية", 45, 40, &image)
		require.NoError(t, err)

		list, err := products.List()
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("rejects empty name and negative price", func(t *testing.T) {
		_, err := products.Create("", 10, 0, nil)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = products.Create("روستيد", -1, 0, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("update keeps image when none supplied", func(t *testing.T) {
		image := "/uploads/products/x.jpg"
		created, err := products.Create("روستيد 2 كغ", 55, 20, &image)
		require.NoError(t, err)

		updated, err := products.Update(created.ID, "روستيد 2 كغ", 60, 15, nil)
		require.NoError(t, err)
		assert.Equal(t, float64(60), updated.Price)
		assert.Equal(t, 15, updated.InStock)
		require.NotNil(t, updated.ImageURL)
		assert.Equal(t, image, *updated.ImageURL)
	})

	t.Run("delete unknown product", func(t *testing.T) {
		err := products.Delete("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
