package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/stockroom/api"
	"github.com/dasdy/stockroom/model"
)

type inventoryRow struct {
	inv model.Inventory
}

func (r inventoryRow) RowID() string { return r.inv.ID }

func (r inventoryRow) Value(key string) string {
	switch key {
	case "name":
		return r.inv.Name
	case "capacity":
		return strconv.Itoa(r.inv.Capacity)
	case "status":
		if r.inv.IsActive {
			return "Active"
		}

		return "Inactive"
	case "created":
		if r.inv.CreatedAt.IsZero() {
			return ""
		}

		return r.inv.CreatedAt.Format("2006-01-02")
	default:
		return ""
	}
}

type invActionMsg struct {
	action string
	row    inventoryRow
}

type invListMsg struct {
	rows []model.Inventory
	err  error
}

type invSavedMsg struct {
	name string
	err  error
}

type invDeletedMsg struct {
	name string
	err  error
}

type inventoriesScreen struct {
	client *api.Client
	list   *ListView[inventoryRow]
	dialog *Dialog

	// id of the inventory an open edit dialog targets, empty for create.
	editing string
}

func newInventoriesScreen(client *api.Client) *inventoriesScreen {
	s := &inventoriesScreen{client: client, dialog: NewDialog()}

	s.list = NewListView(ListViewConfig[inventoryRow]{
		Columns: []Column[inventoryRow]{
			{Key: "name", Label: "Name", Width: 24},
			{Key: "capacity", Label: "Capacity"},
			{
				Key:   "status",
				Label: "Status",
				Type:  ColumnBadge,
				Badge: func(r inventoryRow) BadgeKind {
					if r.inv.IsActive {
						return BadgeSuccess
					}

					return BadgeNeutral
				},
			},
			{Key: "created", Label: "Created"},
			{
				Label: "Actions",
				Type:  ColumnActions,
				Width: 30,
				Actions: []Action[inventoryRow]{
					{ID: "view", Label: "view", Key: "enter"},
					{ID: "edit", Label: "edit", Key: "e"},
					{ID: "delete", Label: "delete", Key: "d"},
				},
			},
		},
		EmptyText: "No inventories yet. Press n to add one.",
		OnAction: func(action string, row inventoryRow) tea.Msg {
			return invActionMsg{action: action, row: row}
		},
	})

	return s
}

func (s *inventoriesScreen) Init(ctx context.Context) error {
	inventories, err := s.client.Inventories.GetAll(ctx)
	if err != nil {
		return err
	}

	s.list.SetRows(inventoryRows(inventories))

	return nil
}

func inventoryRows(inventories []model.Inventory) []inventoryRow {
	rows := make([]inventoryRow, len(inventories))
	for i, inv := range inventories {
		rows[i] = inventoryRow{inv: inv}
	}

	return rows
}

func (s *inventoriesScreen) CapturingInput() bool {
	return s.dialog.Visible()
}

func (s *inventoriesScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case invActionMsg:
		return s.handleAction(msg)

	case invListMsg:
		s.list.SetLoading(false)

		if msg.err != nil {
			return ShowToast(msg.err.Error(), ToastError)
		}

		s.list.SetRows(inventoryRows(msg.rows))

		return nil

	case invSavedMsg:
		if msg.err != nil {
			s.dialog.ShowErrors(map[string]string{"name": msg.err.Error()})

			return nil
		}

		return tea.Batch(
			s.dialog.Close(),
			ShowToast("Saved "+msg.name, ToastSuccess),
			s.refresh(),
		)

	case invDeletedMsg:
		if msg.err != nil {
			return ShowToast(msg.err.Error(), ToastError)
		}

		return tea.Batch(
			ShowToast("Deleted "+msg.name, ToastSuccess),
			s.refresh(),
		)
	}

	if s.dialog.Visible() {
		return s.dialog.Update(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "n":
			return s.openForm(nil)
		case "r":
			return s.refresh()
		}
	}

	return s.list.Update(msg)
}

func (s *inventoriesScreen) handleAction(msg invActionMsg) tea.Cmd {
	switch msg.action {
	case "view":
		return Navigate("/inventories/" + msg.row.inv.ID)

	case "edit":
		inv := msg.row.inv

		return s.openForm(&inv)

	case "delete":
		id, name := msg.row.inv.ID, msg.row.inv.Name

		return s.dialog.Confirm(
			"Delete inventory",
			"Delete "+name+"? Its contents become unreachable.",
			func(ok bool) tea.Cmd {
				if !ok {
					return nil
				}

				return func() tea.Msg {
					err := s.client.Inventories.Delete(context.Background(), id)

					return invDeletedMsg{name: name, err: err}
				}
			},
		)
	}

	return nil
}

func (s *inventoriesScreen) openForm(inv *model.Inventory) tea.Cmd {
	title := "New inventory"
	s.editing = ""

	var name, capacity, active string
	active = "true"

	if inv != nil {
		title = "Edit " + inv.Name
		s.editing = inv.ID
		name = inv.Name
		capacity = strconv.Itoa(inv.Capacity)
		active = strconv.FormatBool(inv.IsActive)
	}

	return s.dialog.Open(DialogOptions{
		Title: title,
		Fields: []Field{
			{Name: "name", Label: "Name", Type: FieldText, Initial: name, Placeholder: "Cold store"},
			{Name: "capacity", Label: "Capacity", Type: FieldNumber, Initial: capacity},
			{Name: "active", Label: "Active", Type: FieldCheckbox, Initial: active},
		},
		OnSubmit: s.submitForm,
	})
}

// submitForm validates locally before talking to the server; the form values
// are strings and get coerced here.
func (s *inventoriesScreen) submitForm(values map[string]string) tea.Cmd {
	errs := map[string]string{}

	name := strings.TrimSpace(values["name"])
	if name == "" {
		errs["name"] = "name is required"
	}

	capacity, err := strconv.Atoi(values["capacity"])
	if err != nil || capacity <= 0 {
		errs["capacity"] = "capacity must be a positive number"
	}

	if len(errs) > 0 {
		s.dialog.ShowErrors(errs)

		return nil
	}

	s.dialog.SetLoading(true)

	input := api.InventoryInput{
		Name:     name,
		Capacity: capacity,
		IsActive: values["active"] == "true",
	}
	id := s.editing

	return func() tea.Msg {
		var err error

		if id == "" {
			_, err = s.client.Inventories.Create(context.Background(), input)
		} else {
			_, err = s.client.Inventories.Update(context.Background(), id, input)
		}

		return invSavedMsg{name: input.Name, err: err}
	}
}

func (s *inventoriesScreen) refresh() tea.Cmd {
	s.list.SetLoading(true)

	return tea.Batch(s.list.Tick(), func() tea.Msg {
		rows, err := s.client.Inventories.GetAll(context.Background())

		return invListMsg{rows: rows, err: err}
	})
}

func (s *inventoriesScreen) View(width, height int) string {
	header := titleStyle.Render("Inventories") +
		"  " + faintStyle.Render("n new · e edit · d delete · enter view · r reload")

	base := header + "\n\n" + s.list.View(width)

	return s.dialog.Overlay(base, width, height)
}
