// Package web serves the resource contract consumed by the terminal client as
// JSON over HTTP, backed by the sqlite store. It stands in for the remote
// backend during local development and in tests.
package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/stockroom/db"
	"github.com/dasdy/stockroom/web/routes"
)

func BuildServer(store db.Store) *http.ServeMux {
	mux := http.NewServeMux()

	handler := routes.ServerHandler{Store: store}

	mux.HandleFunc("GET /api/inventories", handler.ListInventories)
	mux.HandleFunc("POST /api/inventories", handler.CreateInventory)
	mux.HandleFunc("GET /api/inventories/{id}", handler.GetInventory)
	mux.HandleFunc("PUT /api/inventories/{id}", handler.UpdateInventory)
	mux.HandleFunc("DELETE /api/inventories/{id}", handler.DeleteInventory)
	mux.HandleFunc("GET /api/inventories/{id}/contents", handler.InventoryContents)

	mux.HandleFunc("GET /api/raw-materials", handler.ListRawMaterials)
	mux.HandleFunc("GET /api/raw-materials/{id}", handler.GetRawMaterial)
	mux.HandleFunc("DELETE /api/raw-materials/{id}", handler.DeleteRawMaterial)
	mux.HandleFunc("POST /api/raw-materials/receive", handler.ReceiveFromQC)

	mux.HandleFunc("GET /api/quality-control", handler.ListQCRecords)
	mux.HandleFunc("GET /api/quality-control/{id}", handler.GetQCRecord)
	mux.HandleFunc("POST /api/quality-control/{id}/review", handler.ReviewQCRecord)

	mux.HandleFunc("GET /api/suppliers", handler.ListSuppliers)
	mux.HandleFunc("POST /api/suppliers", handler.CreateSupplier)
	mux.HandleFunc("POST /api/suppliers/with-invoice", handler.CreateSupplierWithInvoice)
	mux.HandleFunc("DELETE /api/suppliers/{id}", handler.DeleteSupplier)

	return mux
}

func StartServer(port int, store db.Store) error {
	slog.Info("running development API server", "port", port)

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), BuildServer(store))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
