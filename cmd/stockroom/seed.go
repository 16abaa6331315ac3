package stockroom

import (
	"fmt"
	"time"

	"github.com/dasdy/stockroom/db"
	"github.com/dasdy/stockroom/model"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the sqlite store with sample data",
	Long: `Creates a few inventories, suppliers, quality-control records and raw
materials so the client has something to show on a fresh database.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		storage, err := db.Connect(seedPath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", seedPath, err)
		}
		defer storage.Close()

		return seed(storage)
	},
}

var seedPath string

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(
		&seedPath,
		"storage",
		"o",
		"./stockroom.sqlite",
		"Path to the sqlite database file")
}

func seed(storage db.Store) error {
	now := time.Now().UTC()

	suppliers := []*model.Supplier{
		{ID: uuid.NewString(), Name: "Acme Botanicals", Contact: "orders@acme-botanicals.example", InvoiceRef: "INV-2031"},
		{ID: uuid.NewString(), Name: "Hillside Farms", Contact: "sales@hillside.example"},
	}

	inventories := []*model.Inventory{
		{ID: uuid.NewString(), Name: "Cold store", Capacity: 500, IsActive: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Dry shed", Capacity: 200, IsActive: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Overflow", Capacity: 80, IsActive: false, CreatedAt: now},
	}

	records := []*model.QCRecord{
		{ID: uuid.NewString(), MaterialName: "Chamomile", BatchNumber: "B-101", Status: model.QCPending, ReceivedAt: now},
		{ID: uuid.NewString(), MaterialName: "Lavender", BatchNumber: "B-102", Status: model.QCApproved, ReceivedAt: now},
		{ID: uuid.NewString(), MaterialName: "Peppermint", BatchNumber: "B-099", Status: model.QCRejected, Reason: "moisture over threshold", ReceivedAt: now},
	}

	materials := []*model.RawMaterial{
		{ID: uuid.NewString(), Name: "Lavender", SupplierID: suppliers[0].ID, Quantity: 40, Unit: "kg", IsActive: true, ReceivedAt: now},
	}

	items := []*model.InventoryItem{
		{ID: uuid.NewString(), InventoryID: inventories[0].ID, MaterialName: "Lavender", BatchNumber: "B-102", Quantity: 40, Unit: "kg"},
		{ID: uuid.NewString(), InventoryID: inventories[1].ID, MaterialName: "Calendula", BatchNumber: "B-090", Quantity: 12, Unit: "kg"},
	}

	total := len(suppliers) + len(inventories) + len(records) + len(materials) + len(items)
	bar := progressbar.Default(int64(total), "seeding")

	for _, sup := range suppliers {
		if err := storage.CreateSupplier(sup); err != nil {
			return fmt.Errorf("seed supplier: %w", err)
		}

		_ = bar.Add(1)
	}

	for _, inv := range inventories {
		if err := storage.CreateInventory(inv); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}

		_ = bar.Add(1)
	}

	for _, rec := range records {
		if err := storage.CreateQCRecord(rec); err != nil {
			return fmt.Errorf("seed qc record: %w", err)
		}

		_ = bar.Add(1)
	}

	for _, mat := range materials {
		if err := storage.CreateRawMaterial(mat); err != nil {
			return fmt.Errorf("seed raw material: %w", err)
		}

		_ = bar.Add(1)
	}

	for _, item := range items {
		if err := storage.AddInventoryItem(item); err != nil {
			return fmt.Errorf("seed inventory item: %w", err)
		}

		_ = bar.Add(1)
	}

	return bar.Finish()
}
