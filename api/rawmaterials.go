package api

import (
	"context"
	"net/http"

	"github.com/dasdy/stockroom/model"
)

type RawMaterialsService struct {
	c *Client
}

// ReceiveInput moves an approved QC record into stock.
type ReceiveInput struct {
	QCRecordID string  `json:"qcRecordId"`
	SupplierID string  `json:"supplierId"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

func (s *RawMaterialsService) GetAll(ctx context.Context) ([]model.RawMaterial, error) {
	var out []model.RawMaterial

	if err := s.c.do(ctx, http.MethodGet, "/api/raw-materials", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *RawMaterialsService) GetByID(ctx context.Context, id string) (*model.RawMaterial, error) {
	var out model.RawMaterial

	if err := s.c.do(ctx, http.MethodGet, "/api/raw-materials/"+id, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ReceiveFromQC registers a raw material out of an approved QC record.
func (s *RawMaterialsService) ReceiveFromQC(ctx context.Context, input ReceiveInput) (*model.RawMaterial, error) {
	var out model.RawMaterial

	if err := s.c.do(ctx, http.MethodPost, "/api/raw-materials/receive", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *RawMaterialsService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/raw-materials/"+id, nil, nil)
}
