package api

import (
	"context"
	"net/http"

	"github.com/dasdy/stockroom/model"
)

type QualityControlService struct {
	c *Client
}

// ReviewInput records an operator decision. On rejection the comments become
// the stored reason.
type ReviewInput struct {
	Decision string `json:"decision"`
	Comments string `json:"comments"`
}

func (s *QualityControlService) GetAll(ctx context.Context) ([]model.QCRecord, error) {
	var out []model.QCRecord

	if err := s.c.do(ctx, http.MethodGet, "/api/quality-control", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *QualityControlService) GetByID(ctx context.Context, id string) (*model.QCRecord, error) {
	var out model.QCRecord

	if err := s.c.do(ctx, http.MethodGet, "/api/quality-control/"+id, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *QualityControlService) Review(ctx context.Context, id string, input ReviewInput) (*model.QCRecord, error) {
	var out model.QCRecord

	if err := s.c.do(ctx, http.MethodPost, "/api/quality-control/"+id+"/review", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
