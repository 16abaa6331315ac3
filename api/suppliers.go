package api

import (
	"context"
	"net/http"

	"github.com/dasdy/stockroom/model"
)

type SuppliersService struct {
	c *Client
}

type SupplierInput struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	InvoiceRef string `json:"invoiceRef"`
}

func (s *SuppliersService) GetAll(ctx context.Context) ([]model.Supplier, error) {
	var out []model.Supplier

	if err := s.c.do(ctx, http.MethodGet, "/api/suppliers", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *SuppliersService) Create(ctx context.Context, input SupplierInput) (*model.Supplier, error) {
	var out model.Supplier

	if err := s.c.do(ctx, http.MethodPost, "/api/suppliers", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateWithInvoice registers a supplier together with its first invoice
// reference in one call.
func (s *SuppliersService) CreateWithInvoice(ctx context.Context, input SupplierInput) (*model.Supplier, error) {
	var out model.Supplier

	if err := s.c.do(ctx, http.MethodPost, "/api/suppliers/with-invoice", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *SuppliersService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/suppliers/"+id, nil, nil)
}
