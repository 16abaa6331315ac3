package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/stockroom/api"
	"github.com/dasdy/stockroom/model"
)

type qcRow struct {
	rec model.QCRecord
}

func (r qcRow) RowID() string { return r.rec.ID }

func (r qcRow) Value(key string) string {
	switch key {
	case "material":
		return r.rec.MaterialName
	case "batch":
		return r.rec.BatchNumber
	case "status":
		return string(r.rec.Status)
	case "reason":
		return r.rec.Reason
	default:
		return ""
	}
}

type qcActionMsg struct {
	action string
	row    qcRow
}

type qcListMsg struct {
	rows []model.QCRecord
	err  error
}

type qcReviewedMsg struct {
	rec *model.QCRecord
	err error
}

type qualityControlScreen struct {
	client *api.Client
	list   *ListView[qcRow]
	dialog *Dialog

	reviewing string
}

func newQualityControlScreen(client *api.Client) *qualityControlScreen {
	s := &qualityControlScreen{client: client, dialog: NewDialog()}

	s.list = NewListView(ListViewConfig[qcRow]{
		Columns: []Column[qcRow]{
			{Key: "material", Label: "Material", Width: 22},
			{Key: "batch", Label: "Batch"},
			{
				Key:   "status",
				Label: "Status",
				Type:  ColumnBadge,
				Badge: func(r qcRow) BadgeKind {
					switch r.rec.Status {
					case model.QCApproved:
						return BadgeSuccess
					case model.QCRejected:
						return BadgeDanger
					default:
						return BadgeWarning
					}
				},
			},
			{Key: "reason", Label: "Reason", Width: 28},
			{
				Label: "Actions",
				Type:  ColumnActions,
				Width: 18,
				Actions: []Action[qcRow]{
					{
						ID:    "review",
						Label: "review",
						Key:   "enter",
						Disabled: func(r qcRow) bool {
							return r.rec.Status != model.QCPending
						},
					},
				},
			},
		},
		EmptyText: "No quality-control records.",
		OnAction: func(action string, row qcRow) tea.Msg {
			return qcActionMsg{action: action, row: row}
		},
	})

	return s
}

func (s *qualityControlScreen) Init(ctx context.Context) error {
	records, err := s.client.QualityControl.GetAll(ctx)
	if err != nil {
		return err
	}

	s.list.SetRows(qcRows(records))

	return nil
}

func qcRows(records []model.QCRecord) []qcRow {
	rows := make([]qcRow, len(records))
	for i, rec := range records {
		rows[i] = qcRow{rec: rec}
	}

	return rows
}

func (s *qualityControlScreen) CapturingInput() bool {
	return s.dialog.Visible()
}

func (s *qualityControlScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case qcActionMsg:
		if msg.action == "review" {
			return s.openReview(msg.row.rec)
		}

		return nil

	case qcListMsg:
		s.list.SetLoading(false)

		if msg.err != nil {
			return ShowToast(msg.err.Error(), ToastError)
		}

		s.list.SetRows(qcRows(msg.rows))

		return nil

	case qcReviewedMsg:
		if msg.err != nil {
			s.dialog.ShowErrors(map[string]string{"decision": msg.err.Error()})

			return nil
		}

		kind := ToastSuccess
		if msg.rec.Status == model.QCRejected {
			kind = ToastWarning
		}

		return tea.Batch(
			s.dialog.Close(),
			ShowToast(msg.rec.MaterialName+" "+strings.ToLower(string(msg.rec.Status)), kind),
			s.refresh(),
		)
	}

	if s.dialog.Visible() {
		return s.dialog.Update(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "r" {
		return s.refresh()
	}

	return s.list.Update(msg)
}

func (s *qualityControlScreen) openReview(rec model.QCRecord) tea.Cmd {
	s.reviewing = rec.ID
	footer := rec.MaterialName + ", batch " + rec.BatchNumber

	return s.dialog.Open(DialogOptions{
		Title:  "Review batch",
		Footer: &footer,
		Fields: []Field{
			{
				Name:    "decision",
				Label:   "Decision",
				Type:    FieldSelect,
				Options: []string{string(model.QCApproved), string(model.QCRejected)},
			},
			{Name: "comments", Label: "Comments", Type: FieldText, Placeholder: "required on rejection"},
		},
		SubmitLabel: "Submit review",
		OnSubmit:    s.submitReview,
	})
}

func (s *qualityControlScreen) submitReview(values map[string]string) tea.Cmd {
	decision := values["decision"]
	comments := strings.TrimSpace(values["comments"])

	if decision == string(model.QCRejected) && comments == "" {
		s.dialog.ShowErrors(map[string]string{"comments": "a rejection requires comments"})

		return nil
	}

	s.dialog.SetLoading(true)
	id := s.reviewing

	return func() tea.Msg {
		rec, err := s.client.QualityControl.Review(context.Background(), id, api.ReviewInput{
			Decision: decision,
			Comments: comments,
		})

		return qcReviewedMsg{rec: rec, err: err}
	}
}

func (s *qualityControlScreen) refresh() tea.Cmd {
	s.list.SetLoading(true)

	return tea.Batch(s.list.Tick(), func() tea.Msg {
		rows, err := s.client.QualityControl.GetAll(context.Background())

		return qcListMsg{rows: rows, err: err}
	})
}

func (s *qualityControlScreen) View(width, height int) string {
	header := titleStyle.Render("Quality control") +
		"  " + faintStyle.Render("enter review · r reload")

	base := header + "\n\n" + s.list.View(width)

	return s.dialog.Overlay(base, width, height)
}
