package routes

import (
	"net/http"

	"github.com/dasdy/stockroom/model"
	"github.com/google/uuid"
)

type supplierInput struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	InvoiceRef string `json:"invoiceRef"`
}

func (s *ServerHandler) ListSuppliers(w http.ResponseWriter, _ *http.Request) {
	items, err := s.Store.Suppliers()
	if err != nil {
		storeError(w, err, "suppliers")

		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *ServerHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	s.createSupplier(w, r, false)
}

// CreateSupplierWithInvoice additionally requires the first invoice reference.
func (s *ServerHandler) CreateSupplierWithInvoice(w http.ResponseWriter, r *http.Request) {
	s.createSupplier(w, r, true)
}

func (s *ServerHandler) createSupplier(w http.ResponseWriter, r *http.Request, requireInvoice bool) {
	var in supplierInput

	if !decodeBody(w, r, &in) {
		return
	}

	if in.Name == "" {
		writeMessage(w, http.StatusBadRequest, "supplier name is required")

		return
	}

	if requireInvoice && in.InvoiceRef == "" {
		writeMessage(w, http.StatusBadRequest, "invoice reference is required")

		return
	}

	sup := model.Supplier{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Contact:    in.Contact,
		InvoiceRef: in.InvoiceRef,
	}

	if err := s.Store.CreateSupplier(&sup); err != nil {
		storeError(w, err, "supplier")

		return
	}

	writeJSON(w, http.StatusCreated, sup)
}

func (s *ServerHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteSupplier(r.PathValue("id")); err != nil {
		storeError(w, err, "supplier")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
