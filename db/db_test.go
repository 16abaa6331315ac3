package db_test

import (
	"testing"
	"time"

	"github.com/dasdy/stockroom/db"
	"github.com/dasdy/stockroom/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *db.SQLiteStore {
	t.Helper()

	store, err := db.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(store.Close)

	return store
}

func TestInventoryRoundtrip(t *testing.T) {
	store := openTestStore(t)

	inv := &model.Inventory{
		ID:        "inv-1",
		Name:      "Cold store",
		Capacity:  500,
		IsActive:  true,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CreateInventory(inv))

	got, err := store.Inventory("inv-1")
	require.NoError(t, err)
	assert.Equal(t, "Cold store", got.Name)
	assert.Equal(t, 500, got.Capacity)
	assert.True(t, got.IsActive)

	inv.Capacity = 750
	require.NoError(t, store.UpdateInventory(inv))

	got, err = store.Inventory("inv-1")
	require.NoError(t, err)
	assert.Equal(t, 750, got.Capacity)

	all, err := store.Inventories()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, store.DeleteInventory("inv-1"))

	_, err = store.Inventory("inv-1")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestMissingRecordsReportNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Inventory("nope")
	assert.ErrorIs(t, err, db.ErrNotFound)

	_, err = store.RawMaterial("nope")
	assert.ErrorIs(t, err, db.ErrNotFound)

	_, err = store.QCRecord("nope")
	assert.ErrorIs(t, err, db.ErrNotFound)

	assert.ErrorIs(t, store.DeleteInventory("nope"), db.ErrNotFound)
	assert.ErrorIs(t, store.DeleteRawMaterial("nope"), db.ErrNotFound)
	assert.ErrorIs(t, store.DeleteSupplier("nope"), db.ErrNotFound)
}

func TestDeleteRawMaterialLeavesOthersUntouched(t *testing.T) {
	store := openTestStore(t)

	first := &model.RawMaterial{ID: "rm-1", Name: "Chamomile", IsActive: true, ReceivedAt: time.Now().UTC()}
	second := &model.RawMaterial{ID: "rm-2", Name: "Lavender", IsActive: true, ReceivedAt: time.Now().UTC()}
	require.NoError(t, store.CreateRawMaterial(first))
	require.NoError(t, store.CreateRawMaterial(second))

	require.NoError(t, store.DeleteRawMaterial("rm-1"))

	got, err := store.RawMaterial("rm-2")
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	all, err := store.RawMaterials()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "rm-2", all[0].ID)
}

func TestInventoryContentsScopedToInventory(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.AddInventoryItem(&model.InventoryItem{
		ID: "it-1", InventoryID: "inv-1", MaterialName: "Chamomile", Quantity: 20, Unit: "kg",
	}))
	require.NoError(t, store.AddInventoryItem(&model.InventoryItem{
		ID: "it-2", InventoryID: "inv-2", MaterialName: "Lavender", Quantity: 5, Unit: "kg",
	}))

	items, err := store.InventoryContents("inv-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chamomile", items[0].MaterialName)

	empty, err := store.InventoryContents("inv-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestQCReviewUpdatePersistsReason(t *testing.T) {
	store := openTestStore(t)

	rec := &model.QCRecord{
		ID:           "qc-1",
		MaterialName: "Chamomile",
		BatchNumber:  "B-77",
		Status:       model.QCPending,
		ReceivedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.CreateQCRecord(rec))

	rec.Status = model.QCRejected
	rec.Reason = "moisture over threshold"
	require.NoError(t, store.UpdateQCRecord(rec))

	got, err := store.QCRecord("qc-1")
	require.NoError(t, err)
	assert.Equal(t, model.QCRejected, got.Status)
	assert.Equal(t, "moisture over threshold", got.Reason)
}
