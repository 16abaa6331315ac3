package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/stockroom/api"
	"github.com/dasdy/stockroom/model"
)

type supplierRow struct {
	sup model.Supplier
}

func (r supplierRow) RowID() string { return r.sup.ID }

func (r supplierRow) Value(key string) string {
	switch key {
	case "name":
		return r.sup.Name
	case "contact":
		return r.sup.Contact
	case "invoice":
		return r.sup.InvoiceRef
	default:
		return ""
	}
}

type supActionMsg struct {
	action string
	row    supplierRow
}

type supListMsg struct {
	rows []model.Supplier
	err  error
}

type supSavedMsg struct {
	sup *model.Supplier
	err error
}

type supDeletedMsg struct {
	name string
	err  error
}

type suppliersScreen struct {
	client *api.Client
	list   *ListView[supplierRow]
	dialog *Dialog
}

func newSuppliersScreen(client *api.Client) *suppliersScreen {
	s := &suppliersScreen{client: client, dialog: NewDialog()}

	s.list = NewListView(ListViewConfig[supplierRow]{
		Columns: []Column[supplierRow]{
			{Key: "name", Label: "Name", Width: 24},
			{Key: "contact", Label: "Contact", Width: 28},
			{Key: "invoice", Label: "Invoice"},
			{
				Label: "Actions",
				Type:  ColumnActions,
				Width: 14,
				Actions: []Action[supplierRow]{
					{ID: "delete", Label: "delete", Key: "d"},
				},
			},
		},
		EmptyText: "No suppliers registered. Press n to add one.",
		OnAction: func(action string, row supplierRow) tea.Msg {
			return supActionMsg{action: action, row: row}
		},
	})

	return s
}

func (s *suppliersScreen) Init(ctx context.Context) error {
	suppliers, err := s.client.Suppliers.GetAll(ctx)
	if err != nil {
		return err
	}

	s.list.SetRows(supplierRows(suppliers))

	return nil
}

func supplierRows(suppliers []model.Supplier) []supplierRow {
	rows := make([]supplierRow, len(suppliers))
	for i, sup := range suppliers {
		rows[i] = supplierRow{sup: sup}
	}

	return rows
}

func (s *suppliersScreen) CapturingInput() bool {
	return s.dialog.Visible()
}

func (s *suppliersScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case supActionMsg:
		if msg.action == "delete" {
			return s.confirmDelete(msg.row.sup)
		}

		return nil

	case supListMsg:
		s.list.SetLoading(false)

		if msg.err != nil {
			return ShowToast(msg.err.Error(), ToastError)
		}

		s.list.SetRows(supplierRows(msg.rows))

		return nil

	case supSavedMsg:
		if msg.err != nil {
			s.dialog.ShowErrors(map[string]string{"name": msg.err.Error()})

			return nil
		}

		return tea.Batch(
			s.dialog.Close(),
			ShowToast("Registered "+msg.sup.Name, ToastSuccess),
			s.refresh(),
		)

	case supDeletedMsg:
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
			return s.openForm()
		case "r":
			return s.refresh()
		}
	}

	return s.list.Update(msg)
}

func (s *suppliersScreen) confirmDelete(sup model.Supplier) tea.Cmd {
	return s.dialog.Confirm(
		"Delete supplier",
		"Delete "+sup.Name+"?",
		func(ok bool) tea.Cmd {
			if !ok {
				return nil
			}

			return func() tea.Msg {
				err := s.client.Suppliers.Delete(context.Background(), sup.ID)

				return supDeletedMsg{name: sup.Name, err: err}
			}
		},
	)
}

func (s *suppliersScreen) openForm() tea.Cmd {
	return s.dialog.Open(DialogOptions{
		Title: "New supplier",
		Fields: []Field{
			{Name: "name", Label: "Name", Type: FieldText, Placeholder: "Acme Botanicals"},
			{Name: "contact", Label: "Contact", Type: FieldText, Placeholder: "orders@example.com"},
			{Name: "invoice", Label: "Invoice reference", Type: FieldText, Placeholder: "optional"},
			{Name: "withInvoice", Label: "Register first invoice now", Type: FieldCheckbox},
		},
		OnSubmit: s.submitForm,
	})
}

// submitForm picks between the plain create and the create-with-invoice call
// based on the checkbox.
func (s *suppliersScreen) submitForm(values map[string]string) tea.Cmd {
	errs := map[string]string{}

	name := strings.TrimSpace(values["name"])
	if name == "" {
		errs["name"] = "name is required"
	}

	withInvoice := values["withInvoice"] == "true"
	invoice := strings.TrimSpace(values["invoice"])

	if withInvoice && invoice == "" {
		errs["invoice"] = "an invoice reference is required"
	}

	if len(errs) > 0 {
		s.dialog.ShowErrors(errs)

		return nil
	}

	s.dialog.SetLoading(true)

	input := api.SupplierInput{
		Name:       name,
		Contact:    strings.TrimSpace(values["contact"]),
		InvoiceRef: invoice,
	}

	return func() tea.Msg {
		var (
			sup *model.Supplier
			err error
		)

		if withInvoice {
			sup, err = s.client.Suppliers.CreateWithInvoice(context.Background(), input)
		} else {
			sup, err = s.client.Suppliers.Create(context.Background(), input)
		}

		return supSavedMsg{sup: sup, err: err}
	}
}

func (s *suppliersScreen) refresh() tea.Cmd {
	s.list.SetLoading(true)

	return tea.Batch(s.list.Tick(), func() tea.Msg {
		rows, err := s.client.Suppliers.GetAll(context.Background())

		return supListMsg{rows: rows, err: err}
	})
}

func (s *suppliersScreen) View(width, height int) string {
	header := titleStyle.Render("Suppliers") +
		"  " + faintStyle.Render("n new · d delete · r reload")

	base := header + "\n\n" + s.list.View(width)

	return s.dialog.Overlay(base, width, height)
}
