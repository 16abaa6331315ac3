package api

import (
	"context"
	"net/http"

	"github.com/dasdy/stockroom/model"
)

type InventoriesService struct {
	c *Client
}

// InventoryInput is the create/update payload. Fields arrive from the form
// layer as strings and are coerced by the screen before reaching here.
type InventoryInput struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"isActive"`
}

func (s *InventoriesService) GetAll(ctx context.Context) ([]model.Inventory, error) {
	var out []model.Inventory

	if err := s.c.do(ctx, http.MethodGet, "/api/inventories", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *InventoriesService) GetByID(ctx context.Context, id string) (*model.Inventory, error) {
	var out model.Inventory

	if err := s.c.do(ctx, http.MethodGet, "/api/inventories/"+id, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *InventoriesService) GetContents(ctx context.Context, inventoryID string) ([]model.InventoryItem, error) {
	var out []model.InventoryItem

	if err := s.c.do(ctx, http.MethodGet, "/api/inventories/"+inventoryID+"/contents", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *InventoriesService) Create(ctx context.Context, input InventoryInput) (*model.Inventory, error) {
	var out model.Inventory

	if err := s.c.do(ctx, http.MethodPost, "/api/inventories", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *InventoriesService) Update(ctx context.Context, id string, input InventoryInput) (*model.Inventory, error) {
	var out model.Inventory

	if err := s.c.do(ctx, http.MethodPut, "/api/inventories/"+id, input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *InventoriesService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/inventories/"+id, nil, nil)
}
