package tui

import (
	"context"
	"sort"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/stockroom/api"
	"github.com/dasdy/stockroom/model"
	"golang.org/x/sync/errgroup"
)

type materialRow struct {
	mat model.RawMaterial
}

func (r materialRow) RowID() string { return r.mat.ID }

func (r materialRow) Value(key string) string {
	switch key {
	case "name":
		return r.mat.Name
	case "quantity":
		return strconv.FormatFloat(r.mat.Quantity, 'f', -1, 64)
	case "status":
		if r.mat.IsActive {
			return "Active"
		}

		return "Inactive"
	case "received":
		if r.mat.ReceivedAt.IsZero() {
			return ""
		}

		return r.mat.ReceivedAt.Format("2006-01-02")
	default:
		return ""
	}
}

type matActionMsg struct {
	action string
	row    materialRow
}

type matListMsg struct {
	rows []model.RawMaterial
	err  error
}

type matReceivedMsg struct {
	mat *model.RawMaterial
	err error
}

type matDeletedMsg struct {
	name string
	err  error
}

type rawMaterialsScreen struct {
	client *api.Client
	list   *ListView[materialRow]
	dialog *Dialog

	// Select options for the receive form, label to id. Only approved QC
	// records are offered.
	approvedQC map[string]string
	suppliers  map[string]string
}

func newRawMaterialsScreen(client *api.Client) *rawMaterialsScreen {
	s := &rawMaterialsScreen{
		client:     client,
		dialog:     NewDialog(),
		approvedQC: map[string]string{},
		suppliers:  map[string]string{},
	}

	s.list = NewListView(ListViewConfig[materialRow]{
		Columns: []Column[materialRow]{
			{Key: "name", Label: "Material", Width: 24},
			{
				Key:   "quantity",
				Label: "Quantity",
				Render: func(value string, r materialRow) string {
					return value + " " + r.mat.Unit
				},
			},
			{
				Key:   "status",
				Label: "Status",
				Type:  ColumnBadge,
				Badge: func(r materialRow) BadgeKind {
					if r.mat.IsActive {
						return BadgeSuccess
					}

					return BadgeNeutral
				},
			},
			{Key: "received", Label: "Received"},
			{
				Label: "Actions",
				Type:  ColumnActions,
				Width: 14,
				Actions: []Action[materialRow]{
					{ID: "delete", Label: "delete", Key: "d"},
				},
			},
		},
		EmptyText: "No raw materials in stock. Press n to receive from QC.",
		OnAction: func(action string, row materialRow) tea.Msg {
			return matActionMsg{action: action, row: row}
		},
	})

	return s
}

// Init loads the stock plus everything the receive form needs to offer.
func (s *rawMaterialsScreen) Init(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		materials, err := s.client.RawMaterials.GetAll(ctx)
		if err != nil {
			return err
		}

		s.list.SetRows(materialRows(materials))

		return nil
	})

	g.Go(func() error {
		records, err := s.client.QualityControl.GetAll(ctx)
		if err != nil {
			return err
		}

		for _, rec := range records {
			if rec.Status == model.QCApproved {
				s.approvedQC[rec.MaterialName+" / "+rec.BatchNumber] = rec.ID
			}
		}

		return nil
	})

	g.Go(func() error {
		suppliers, err := s.client.Suppliers.GetAll(ctx)
		if err != nil {
			return err
		}

		for _, sup := range suppliers {
			s.suppliers[sup.Name] = sup.ID
		}

		return nil
	})

	return g.Wait()
}

func materialRows(materials []model.RawMaterial) []materialRow {
	rows := make([]materialRow, len(materials))
	for i, mat := range materials {
		rows[i] = materialRow{mat: mat}
	}

	return rows
}

func (s *rawMaterialsScreen) CapturingInput() bool {
	return s.dialog.Visible()
}

func (s *rawMaterialsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case matActionMsg:
		if msg.action == "delete" {
			return s.confirmDelete(msg.row.mat)
		}

		return nil

	case matListMsg:
		s.list.SetLoading(false)

		if msg.err != nil {
			return ShowToast(msg.err.Error(), ToastError)
		}

		s.list.SetRows(materialRows(msg.rows))

		return nil

	case matReceivedMsg:
		if msg.err != nil {
			s.dialog.ShowErrors(map[string]string{"record": msg.err.Error()})

			return nil
		}

		return tea.Batch(
			s.dialog.Close(),
			ShowToast("Received "+msg.mat.Name, ToastSuccess),
			s.refresh(),
		)

	case matDeletedMsg:
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
			return s.openReceive()
		case "r":
			return s.refresh()
		}
	}

	return s.list.Update(msg)
}

func (s *rawMaterialsScreen) confirmDelete(mat model.RawMaterial) tea.Cmd {
	return s.dialog.Confirm(
		"Delete raw material",
		"Remove "+mat.Name+" from stock?",
		func(ok bool) tea.Cmd {
			if !ok {
				return nil
			}

			return func() tea.Msg {
				err := s.client.RawMaterials.Delete(context.Background(), mat.ID)

				return matDeletedMsg{name: mat.Name, err: err}
			}
		},
	)
}

func (s *rawMaterialsScreen) openReceive() tea.Cmd {
	if len(s.approvedQC) == 0 {
		return ShowToast("No approved QC records to receive from", ToastWarning)
	}

	return s.dialog.Open(DialogOptions{
		Title: "Receive from QC",
		Fields: []Field{
			{Name: "record", Label: "Approved batch", Type: FieldSelect, Options: keys(s.approvedQC)},
			{Name: "supplier", Label: "Supplier", Type: FieldSelect, Options: keys(s.suppliers)},
			{Name: "quantity", Label: "Quantity", Type: FieldNumber},
			{Name: "unit", Label: "Unit", Type: FieldSelect, Options: []string{"kg", "g", "l", "pcs"}},
		},
		SubmitLabel: "Receive",
		OnSubmit:    s.submitReceive,
	})
}

func (s *rawMaterialsScreen) submitReceive(values map[string]string) tea.Cmd {
	quantity, err := strconv.ParseFloat(values["quantity"], 64)
	if err != nil || quantity <= 0 {
		s.dialog.ShowErrors(map[string]string{"quantity": "quantity must be positive"})

		return nil
	}

	s.dialog.SetLoading(true)

	input := api.ReceiveInput{
		QCRecordID: s.approvedQC[values["record"]],
		SupplierID: s.suppliers[values["supplier"]],
		Quantity:   quantity,
		Unit:       values["unit"],
	}

	return func() tea.Msg {
		mat, err := s.client.RawMaterials.ReceiveFromQC(context.Background(), input)

		return matReceivedMsg{mat: mat, err: err}
	}
}

func (s *rawMaterialsScreen) refresh() tea.Cmd {
	s.list.SetLoading(true)

	return tea.Batch(s.list.Tick(), func() tea.Msg {
		rows, err := s.client.RawMaterials.GetAll(context.Background())

		return matListMsg{rows: rows, err: err}
	})
}

func (s *rawMaterialsScreen) View(width, height int) string {
	header := titleStyle.Render("Raw materials") +
		"  " + faintStyle.Render("n receive · d delete · r reload")

	base := header + "\n\n" + s.list.View(width)

	return s.dialog.Overlay(base, width, height)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
