package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dasdy/stockroom/model"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a requested record does not exist. The web
// layer converts it into a 404 with a resource-specific message.
var ErrNotFound = errors.New("not found")

type Store interface {
	Inventories() ([]model.Inventory, error)
	Inventory(id string) (*model.Inventory, error)
	InventoryContents(inventoryID string) ([]model.InventoryItem, error)
	CreateInventory(inv *model.Inventory) error
	UpdateInventory(inv *model.Inventory) error
	DeleteInventory(id string) error

	RawMaterials() ([]model.RawMaterial, error)
	RawMaterial(id string) (*model.RawMaterial, error)
	CreateRawMaterial(rm *model.RawMaterial) error
	DeleteRawMaterial(id string) error

	QCRecords() ([]model.QCRecord, error)
	QCRecord(id string) (*model.QCRecord, error)
	CreateQCRecord(rec *model.QCRecord) error
	UpdateQCRecord(rec *model.QCRecord) error

	Suppliers() ([]model.Supplier, error)
	CreateSupplier(s *model.Supplier) error
	DeleteSupplier(id string) error

	AddInventoryItem(item *model.InventoryItem) error

	Close()
}

type SQLiteStore struct {
	db *sql.DB
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`create table if not exists inventories(
			id text primary key, name text, capacity int, is_active bool, created_at datetime);`,
		`create table if not exists inventory_items(
			id text primary key, inventory_id text, material_name text, batch_number text,
			quantity real, unit text);`,
		`create index if not exists inventory_items_invix on inventory_items (inventory_id);`,
		`create table if not exists raw_materials(
			id text primary key, name text, supplier_id text, quantity real, unit text,
			is_active bool, received_at datetime);`,
		`create table if not exists qc_records(
			id text primary key, material_name text, batch_number text, status text,
			reason text, received_at datetime);`,
		`create table if not exists suppliers(
			id text primary key, name text, contact text, invoice_ref text);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			slog.Error("schema statement failed", "stmt", stmt, "error", err)

			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func Connect(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := initSchema(db); err != nil {
		return nil, err
	}

	return &SQLiteStore{db}, nil
}

func (s *SQLiteStore) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("closing database", "error", err)
	}
}

func (s *SQLiteStore) Inventories() ([]model.Inventory, error) {
	rows, err := s.db.Query(
		`select id, name, capacity, is_active, created_at from inventories order by created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Inventory, 0)

	for rows.Next() {
		var inv model.Inventory

		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Capacity, &inv.IsActive, &inv.CreatedAt); err != nil {
			return nil, err
		}

		result = append(result, inv)
	}

	return result, rows.Err()
}

func (s *SQLiteStore) Inventory(id string) (*model.Inventory, error) {
	var inv model.Inventory

	err := s.db.QueryRow(
		`select id, name, capacity, is_active, created_at from inventories where id = ?`, id).
		Scan(&inv.ID, &inv.Name, &inv.Capacity, &inv.IsActive, &inv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &inv, nil
}

func (s *SQLiteStore) InventoryContents(inventoryID string) ([]model.InventoryItem, error) {
	rows, err := s.db.Query(
		`select id, inventory_id, material_name, batch_number, quantity, unit
		from inventory_items where inventory_id = ?`, inventoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.InventoryItem, 0)

	for rows.Next() {
		var item model.InventoryItem

		if err := rows.Scan(&item.ID, &item.InventoryID, &item.MaterialName,
			&item.BatchNumber, &item.Quantity, &item.Unit); err != nil {
			return nil, err
		}

		result = append(result, item)
	}

	return result, rows.Err()
}

func (s *SQLiteStore) CreateInventory(inv *model.Inventory) error {
	_, err := s.db.Exec(
		`insert into inventories(id, name, capacity, is_active, created_at) values(?, ?, ?, ?, ?)`,
		inv.ID, inv.Name, inv.Capacity, inv.IsActive, inv.CreatedAt)

	return err
}

func (s *SQLiteStore) UpdateInventory(inv *model.Inventory) error {
	res, err := s.db.Exec(
		`update inventories set name = ?, capacity = ?, is_active = ? where id = ?`,
		inv.Name, inv.Capacity, inv.IsActive, inv.ID)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

func (s *SQLiteStore) DeleteInventory(id string) error {
	res, err := s.db.Exec(`delete from inventories where id = ?`, id)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

func (s *SQLiteStore) RawMaterials() ([]model.RawMaterial, error) {
	rows, err := s.db.Query(
		`select id, name, supplier_id, quantity, unit, is_active, received_at
		from raw_materials order by received_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.RawMaterial, 0)

	for rows.Next() {
		var rm model.RawMaterial

		if err := rows.Scan(&rm.ID, &rm.Name, &rm.SupplierID, &rm.Quantity,
			&rm.Unit, &rm.IsActive, &rm.ReceivedAt); err != nil {
			return nil, err
		}

		result = append(result, rm)
	}

	return result, rows.Err()
}

func (s *SQLiteStore) RawMaterial(id string) (*model.RawMaterial, error) {
	var rm model.RawMaterial

	err := s.db.QueryRow(
		`select id, name, supplier_id, quantity, unit, is_active, received_at
		from raw_materials where id = ?`, id).
		Scan(&rm.ID, &rm.Name, &rm.SupplierID, &rm.Quantity, &rm.Unit, &rm.IsActive, &rm.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &rm, nil
}

func (s *SQLiteStore) CreateRawMaterial(rm *model.RawMaterial) error {
	_, err := s.db.Exec(
		`insert into raw_materials(id, name, supplier_id, quantity, unit, is_active, received_at)
		values(?, ?, ?, ?, ?, ?, ?)`,
		rm.ID, rm.Name, rm.SupplierID, rm.Quantity, rm.Unit, rm.IsActive, rm.ReceivedAt)

	return err
}

func (s *SQLiteStore) DeleteRawMaterial(id string) error {
	res, err := s.db.Exec(`delete from raw_materials where id = ?`, id)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

func (s *SQLiteStore) QCRecords() ([]model.QCRecord, error) {
	rows, err := s.db.Query(
		`select id, material_name, batch_number, status, reason, received_at
		from qc_records order by received_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.QCRecord, 0)

	for rows.Next() {
		var rec model.QCRecord

		if err := rows.Scan(&rec.ID, &rec.MaterialName, &rec.BatchNumber,
			&rec.Status, &rec.Reason, &rec.ReceivedAt); err != nil {
			return nil, err
		}

		result = append(result, rec)
	}

	return result, rows.Err()
}

func (s *SQLiteStore) QCRecord(id string) (*model.QCRecord, error) {
	var rec model.QCRecord

	err := s.db.QueryRow(
		`select id, material_name, batch_number, status, reason, received_at
		from qc_records where id = ?`, id).
		Scan(&rec.ID, &rec.MaterialName, &rec.BatchNumber, &rec.Status, &rec.Reason, &rec.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *SQLiteStore) CreateQCRecord(rec *model.QCRecord) error {
	_, err := s.db.Exec(
		`insert into qc_records(id, material_name, batch_number, status, reason, received_at)
		values(?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.MaterialName, rec.BatchNumber, rec.Status, rec.Reason, rec.ReceivedAt)

	return err
}

func (s *SQLiteStore) UpdateQCRecord(rec *model.QCRecord) error {
	res, err := s.db.Exec(
		`update qc_records set status = ?, reason = ? where id = ?`,
		rec.Status, rec.Reason, rec.ID)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

func (s *SQLiteStore) Suppliers() ([]model.Supplier, error) {
	rows, err := s.db.Query(`select id, name, contact, invoice_ref from suppliers order by name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Supplier, 0)

	for rows.Next() {
		var sup model.Supplier

		if err := rows.Scan(&sup.ID, &sup.Name, &sup.Contact, &sup.InvoiceRef); err != nil {
			return nil, err
		}

		result = append(result, sup)
	}

	return result, rows.Err()
}

func (s *SQLiteStore) CreateSupplier(sup *model.Supplier) error {
	_, err := s.db.Exec(
		`insert into suppliers(id, name, contact, invoice_ref) values(?, ?, ?, ?)`,
		sup.ID, sup.Name, sup.Contact, sup.InvoiceRef)

	return err
}

func (s *SQLiteStore) DeleteSupplier(id string) error {
	res, err := s.db.Exec(`delete from suppliers where id = ?`, id)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

func (s *SQLiteStore) AddInventoryItem(item *model.InventoryItem) error {
	_, err := s.db.Exec(
		`insert into inventory_items(id, inventory_id, material_name, batch_number, quantity, unit)
		values(?, ?, ?, ?, ?, ?)`,
		item.ID, item.InventoryID, item.MaterialName, item.BatchNumber, item.Quantity, item.Unit)

	return err
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
