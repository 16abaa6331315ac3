package tui

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/stockroom/api"
	"github.com/dasdy/stockroom/model"
	"golang.org/x/sync/errgroup"
)

type itemRow struct {
	item model.InventoryItem
}

func (r itemRow) RowID() string { return r.item.ID }

func (r itemRow) Value(key string) string {
	switch key {
	case "material":
		return r.item.MaterialName
	case "batch":
		return r.item.BatchNumber
	case "quantity":
		return strconv.FormatFloat(r.item.Quantity, 'f', -1, 64)
	case "unit":
		return r.item.Unit
	default:
		return ""
	}
}

type inventoryDetailScreen struct {
	client *api.Client
	id     string

	inv  *model.Inventory
	list *ListView[itemRow]
}

func newInventoryDetailScreen(client *api.Client, id string) *inventoryDetailScreen {
	s := &inventoryDetailScreen{client: client, id: id}

	s.list = NewListView(ListViewConfig[itemRow]{
		Columns: []Column[itemRow]{
			{Key: "material", Label: "Material", Width: 24},
			{Key: "batch", Label: "Batch"},
			{
				Key:   "quantity",
				Label: "Quantity",
				Render: func(value string, r itemRow) string {
					return value + " " + r.item.Unit
				},
			},
		},
		EmptyText: "This inventory is empty.",
	})

	return s
}

// Init fetches the inventory and its contents together; a missing inventory
// fails both and surfaces as one error page.
func (s *inventoryDetailScreen) Init(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		inv, err := s.client.Inventories.GetByID(ctx, s.id)
		if err != nil {
			return err
		}

		s.inv = inv

		return nil
	})

	g.Go(func() error {
		items, err := s.client.Inventories.GetContents(ctx, s.id)
		if err != nil {
			return err
		}

		rows := make([]itemRow, len(items))
		for i, item := range items {
			rows[i] = itemRow{item: item}
		}

		s.list.SetRows(rows)

		return nil
	})

	return g.Wait()
}

func (s *inventoryDetailScreen) Update(msg tea.Msg) tea.Cmd {
	return s.list.Update(msg)
}

func (s *inventoryDetailScreen) View(width, height int) string {
	status := "Inactive"
	kind := BadgeNeutral

	if s.inv.IsActive {
		status = "Active"
		kind = BadgeSuccess
	}

	header := titleStyle.Render(s.inv.Name) + "  " + badgeStyles[kind].Render(status)
	meta := crumbStyle.Render("capacity " + strconv.Itoa(s.inv.Capacity))

	return header + "\n" + meta + "\n\n" + s.list.View(width)
}
