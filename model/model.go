package model

import (
	"time"
)

// QCStatus is the review state of a quality-control record.
type QCStatus string

const (
	QCPending  QCStatus = "Pending"
	QCApproved QCStatus = "Approved"
	QCRejected QCStatus = "Rejected"
)

type Inventory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// InventoryItem is a single stored lot inside an inventory.
type InventoryItem struct {
	ID           string  `json:"id"`
	InventoryID  string  `json:"inventoryId"`
	MaterialName string  `json:"materialName"`
	BatchNumber  string  `json:"batchNumber"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

type RawMaterial struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SupplierID string    `json:"supplierId"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	IsActive   bool      `json:"isActive"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type QCRecord struct {
	ID           string    `json:"id"`
	MaterialName string    `json:"materialName"`
	BatchNumber  string    `json:"batchNumber"`
	Status       QCStatus  `json:"status"`
	Reason       string    `json:"reason"`
	ReceivedAt   time.Time `json:"receivedAt"`
}

type Supplier struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	InvoiceRef string `json:"invoiceRef"`
}

// Counts is the dashboard roll-up across resources.
type Counts struct {
	Inventories  int `json:"inventories"`
	RawMaterials int `json:"rawMaterials"`
	PendingQC    int `json:"pendingQc"`
	Suppliers    int `json:"suppliers"`
}
