package routes_test

import (
	"github.com/dasdy/stockroom/db"
	"github.com/dasdy/stockroom/model"
)

// StoreMock is a simple manual in-memory implementation of the db.Store
// interface. Setting Err makes every method fail with it.
type StoreMock struct {
	InventoriesData []model.Inventory
	ItemsData       []model.InventoryItem
	MaterialsData   []model.RawMaterial
	QCData          []model.QCRecord
	SuppliersData   []model.Supplier
	Err             error
}

func (m *StoreMock) Inventories() ([]model.Inventory, error) {
	return m.InventoriesData, m.Err
}

func (m *StoreMock) Inventory(id string) (*model.Inventory, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	for i := range m.InventoriesData {
		if m.InventoriesData[i].ID == id {
			return &m.InventoriesData[i], nil
		}
	}

	return nil, db.ErrNotFound
}

func (m *StoreMock) InventoryContents(inventoryID string) ([]model.InventoryItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]model.InventoryItem, 0)

	for _, it := range m.ItemsData {
		if it.InventoryID == inventoryID {
			out = append(out, it)
		}
	}

	return out, nil
}

func (m *StoreMock) CreateInventory(inv *model.Inventory) error {
	if m.Err != nil {
		return m.Err
	}

	m.InventoriesData = append(m.InventoriesData, *inv)

	return nil
}

func (m *StoreMock) UpdateInventory(inv *model.Inventory) error {
	if m.Err != nil {
		return m.Err
	}

	for i := range m.InventoriesData {
		if m.InventoriesData[i].ID == inv.ID {
			m.InventoriesData[i] = *inv

			return nil
		}
	}

	return db.ErrNotFound
}

func (m *StoreMock) DeleteInventory(id string) error {
	if m.Err != nil {
		return m.Err
	}

	for i := range m.InventoriesData {
		if m.InventoriesData[i].ID == id {
			m.InventoriesData = append(m.InventoriesData[:i], m.InventoriesData[i+1:]...)

			return nil
		}
	}

	return db.ErrNotFound
}

func (m *StoreMock) RawMaterials() ([]model.RawMaterial, error) {
	return m.MaterialsData, m.Err
}

func (m *StoreMock) RawMaterial(id string) (*model.RawMaterial, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	for i := range m.MaterialsData {
		if m.MaterialsData[i].ID == id {
			return &m.MaterialsData[i], nil
		}
	}

	return nil, db.ErrNotFound
}

func (m *StoreMock) CreateRawMaterial(rm *model.RawMaterial) error {
	if m.Err != nil {
		return m.Err
	}

	m.MaterialsData = append(m.MaterialsData, *rm)

	return nil
}

func (m *StoreMock) DeleteRawMaterial(id string) error {
	if m.Err != nil {
		return m.Err
	}

	for i := range m.MaterialsData {
		if m.MaterialsData[i].ID == id {
			m.MaterialsData = append(m.MaterialsData[:i], m.MaterialsData[i+1:]...)

			return nil
		}
	}

	return db.ErrNotFound
}

func (m *StoreMock) QCRecords() ([]model.QCRecord, error) {
	return m.QCData, m.Err
}

func (m *StoreMock) QCRecord(id string) (*model.QCRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	for i := range m.QCData {
		if m.QCData[i].ID == id {
			return &m.QCData[i], nil
		}
	}

	return nil, db.ErrNotFound
}

func (m *StoreMock) CreateQCRecord(rec *model.QCRecord) error {
	if m.Err != nil {
		return m.Err
	}

	m.QCData = append(m.QCData, *rec)

	return nil
}

func (m *StoreMock) UpdateQCRecord(rec *model.QCRecord) error {
	if m.Err != nil {
		return m.Err
	}

	for i := range m.QCData {
		if m.QCData[i].ID == rec.ID {
			m.QCData[i] = *rec

			return nil
		}
	}

	return db.ErrNotFound
}

func (m *StoreMock) Suppliers() ([]model.Supplier, error) {
	return m.SuppliersData, m.Err
}

func (m *StoreMock) CreateSupplier(s *model.Supplier) error {
	if m.Err != nil {
		return m.Err
	}

	m.SuppliersData = append(m.SuppliersData, *s)

	return nil
}

func (m *StoreMock) DeleteSupplier(id string) error {
	if m.Err != nil {
		return m.Err
	}

	for i := range m.SuppliersData {
		if m.SuppliersData[i].ID == id {
			m.SuppliersData = append(m.SuppliersData[:i], m.SuppliersData[i+1:]...)

			return nil
		}
	}

	return db.ErrNotFound
}

func (m *StoreMock) AddInventoryItem(item *model.InventoryItem) error {
	if m.Err != nil {
		return m.Err
	}

	m.ItemsData = append(m.ItemsData, *item)

	return nil
}

func (m *StoreMock) Close() {}
