package routes

import (
	"net/http"
	"time"

	"github.com/dasdy/stockroom/model"
	"github.com/google/uuid"
)

type receiveInput struct {
	QCRecordID string  `json:"qcRecordId"`
	SupplierID string  `json:"supplierId"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

func (s *ServerHandler) ListRawMaterials(w http.ResponseWriter, _ *http.Request) {
	items, err := s.Store.RawMaterials()
	if err != nil {
		storeError(w, err, "raw materials")

		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *ServerHandler) GetRawMaterial(w http.ResponseWriter, r *http.Request) {
	rm, err := s.Store.RawMaterial(r.PathValue("id"))
	if err != nil {
		storeError(w, err, "raw material")

		return
	}

	writeJSON(w, http.StatusOK, rm)
}

// ReceiveFromQC turns an approved quality-control record into stock.
func (s *ServerHandler) ReceiveFromQC(w http.ResponseWriter, r *http.Request) {
	var in receiveInput

	if !decodeBody(w, r, &in) {
		return
	}

	if in.Quantity <= 0 {
		writeMessage(w, http.StatusBadRequest, "quantity must be positive")

		return
	}

	rec, err := s.Store.QCRecord(in.QCRecordID)
	if err != nil {
		storeError(w, err, "quality-control record")

		return
	}

	if rec.Status != model.QCApproved {
		writeMessage(w, http.StatusBadRequest, "only approved records can be received")

		return
	}

	rm := model.RawMaterial{
		ID:         uuid.NewString(),
		Name:       rec.MaterialName,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		Unit:       in.Unit,
		IsActive:   true,
		ReceivedAt: time.Now().UTC(),
	}

	if err := s.Store.CreateRawMaterial(&rm); err != nil {
		storeError(w, err, "raw material")

		return
	}

	writeJSON(w, http.StatusCreated, rm)
}

func (s *ServerHandler) DeleteRawMaterial(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteRawMaterial(r.PathValue("id")); err != nil {
		storeError(w, err, "raw material")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
