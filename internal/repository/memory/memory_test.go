package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcn-coffee/fieldbook/internal/domain/models"
	"github.com/tcn-coffee/fieldbook/internal/repository/recordstore"
)

func TestStore_CreateAssignsIdentity(t *testing.T) {
	store := New()

	created, err := store.Create(context.Background(), models.CollectionFarmers, models.Record{
		"id":          "ignored",
		"farmer_code": "FAR-0001",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created["id"])
	assert.NotEqual(t, "ignored", created["id"])
	assert.Equal(t, "FAR-0001", created["farmer_code"])
}

func TestStore_ListAllKeepsInsertionOrder(t *testing.T) {
	store := New()
	for i := 0; i < 5; i++ {
		_, err := store.Create(context.Background(), models.CollectionFarmers, models.Record{
			"farmer_code": fmt.Sprintf("FAR-%04d", i),
		})
		require.NoError(t, err)
	}

	records, err := store.ListAll(context.Background(), models.CollectionFarmers)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("FAR-%04d", i), r["farmer_code"])
	}
}

func TestStore_ListAllReturnsCopies(t *testing.T) {
	store := New()
	_, err := store.Create(context.Background(), models.CollectionFarmers, models.Record{"farmer_code": "FAR-0001"})
	require.NoError(t, err)

	records, err := store.ListAll(context.Background(), models.CollectionFarmers)
	require.NoError(t, err)
	records[0]["farmer_code"] = "mutated"

	again, err := store.ListAll(context.Background(), models.CollectionFarmers)
	require.NoError(t, err)
	assert.Equal(t, "FAR-0001", again[0]["farmer_code"])
}

func TestStore_UnknownCollection(t *testing.T) {
	store := New()

	_, err := store.ListAll(context.Background(), models.Collection("users"))
	assert.ErrorIs(t, err, recordstore.ErrUnknownCollection)

	_, err = store.Create(context.Background(), models.Collection("users"), models.Record{})
	assert.ErrorIs(t, err, recordstore.ErrUnknownCollection)
}
