package routes_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dasdy/stockroom/model"
	"github.com/dasdy/stockroom/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInventories(t *testing.T) {
	tests := []struct {
		name           string
		storeReturns   []model.Inventory
		storeError     error
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "success case",
			storeReturns: []model.Inventory{
				{ID: "inv-1", Name: "Cold store", Capacity: 500, IsActive: true},
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "empty list stays a list",
			storeReturns:   []model.Inventory{},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "store error",
			storeError:     errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := routes.ServerHandler{Store: &StoreMock{
				InventoriesData: tc.storeReturns,
				Err:             tc.storeError,
			}}

			req := httptest.NewRequest(http.MethodGet, "/api/inventories", nil)
			w := httptest.NewRecorder()

			handler.ListInventories(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var got []model.Inventory
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Len(t, got, tc.expectedLen)
			}
		})
	}
}

func TestCreateInventoryValidation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid",
			body:           `{"name":"Cold store","capacity":500,"isActive":true}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"capacity":500}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "inventory name is required",
		},
		{
			name:           "non-positive capacity",
			body:           `{"name":"Cold store","capacity":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "capacity must be positive",
		},
		{
			name:           "garbage body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := &StoreMock{}
			handler := routes.ServerHandler{Store: mock}

			req := httptest.NewRequest(http.MethodPost, "/api/inventories", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.CreateInventory(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusCreated {
				var got model.Inventory
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.NotEmpty(t, got.ID)
				assert.Equal(t, "Cold store", got.Name)
				assert.Equal(t, 500, got.Capacity)
				assert.True(t, got.IsActive)
				assert.Len(t, mock.InventoriesData, 1)
			} else {
				assert.Contains(t, w.Body.String(), tc.expectedMsg)
				assert.Empty(t, mock.InventoriesData)
			}
		})
	}
}

func TestGetInventoryNotFound(t *testing.T) {
	handler := routes.ServerHandler{Store: &StoreMock{}}

	req := httptest.NewRequest(http.MethodGet, "/api/inventories/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetInventory(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "inventory not found")
}

func TestDeleteInventoryReturnsNoContent(t *testing.T) {
	mock := &StoreMock{InventoriesData: []model.Inventory{{ID: "inv-1"}}}
	handler := routes.ServerHandler{Store: mock}

	req := httptest.NewRequest(http.MethodDelete, "/api/inventories/inv-1", nil)
	req.SetPathValue("id", "inv-1")
	w := httptest.NewRecorder()

	handler.DeleteInventory(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, mock.InventoriesData)
}

func TestInventoryContentsRequiresInventory(t *testing.T) {
	mock := &StoreMock{
		InventoriesData: []model.Inventory{{ID: "inv-1", Name: "Cold store"}},
		ItemsData: []model.InventoryItem{
			{ID: "it-1", InventoryID: "inv-1", MaterialName: "Chamomile"},
			{ID: "it-2", InventoryID: "inv-2", MaterialName: "Lavender"},
		},
	}
	handler := routes.ServerHandler{Store: mock}

	req := httptest.NewRequest(http.MethodGet, "/api/inventories/inv-1/contents", nil)
	req.SetPathValue("id", "inv-1")
	w := httptest.NewRecorder()

	handler.InventoryContents(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Chamomile", got[0].MaterialName)

	req = httptest.NewRequest(http.MethodGet, "/api/inventories/ghost/contents", nil)
	req.SetPathValue("id", "ghost")
	w = httptest.NewRecorder()

	handler.InventoryContents(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
