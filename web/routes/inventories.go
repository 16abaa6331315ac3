package routes

import (
	"net/http"
	"time"

	"github.com/dasdy/stockroom/model"
	"github.com/google/uuid"
)

type inventoryInput struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"isActive"`
}

func (in *inventoryInput) validate(w http.ResponseWriter) bool {
	if in.Name == "" {
		writeMessage(w, http.StatusBadRequest, "inventory name is required")

		return false
	}

	if in.Capacity <= 0 {
		writeMessage(w, http.StatusBadRequest, "capacity must be positive")

		return false
	}

	return true
}

func (s *ServerHandler) ListInventories(w http.ResponseWriter, _ *http.Request) {
	items, err := s.Store.Inventories()
	if err != nil {
		storeError(w, err, "inventories")

		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *ServerHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	inv, err := s.Store.Inventory(r.PathValue("id"))
	if err != nil {
		storeError(w, err, "inventory")

		return
	}

	writeJSON(w, http.StatusOK, inv)
}

func (s *ServerHandler) InventoryContents(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := s.Store.Inventory(id); err != nil {
		storeError(w, err, "inventory")

		return
	}

	items, err := s.Store.InventoryContents(id)
	if err != nil {
		storeError(w, err, "inventory contents")

		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *ServerHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var in inventoryInput

	if !decodeBody(w, r, &in) || !in.validate(w) {
		return
	}

	inv := model.Inventory{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Capacity:  in.Capacity,
		IsActive:  in.IsActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.CreateInventory(&inv); err != nil {
		storeError(w, err, "inventory")

		return
	}

	writeJSON(w, http.StatusCreated, inv)
}

func (s *ServerHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	var in inventoryInput

	if !decodeBody(w, r, &in) || !in.validate(w) {
		return
	}

	inv, err := s.Store.Inventory(r.PathValue("id"))
	if err != nil {
		storeError(w, err, "inventory")

		return
	}

	inv.Name = in.Name
	inv.Capacity = in.Capacity
	inv.IsActive = in.IsActive

	if err := s.Store.UpdateInventory(inv); err != nil {
		storeError(w, err, "inventory")

		return
	}

	writeJSON(w, http.StatusOK, inv)
}

func (s *ServerHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteInventory(r.PathValue("id")); err != nil {
		storeError(w, err, "inventory")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
