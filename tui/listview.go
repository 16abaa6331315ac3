package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Row is the only thing ListView requires of its data: a stable id for action
// dispatch and a way to read the cell value for a column key. Values are
// strings; any coercion happened on the screen that built the row.
type Row interface {
	RowID() string
	Value(key string) string
}

type ColumnType int

const (
	ColumnDefault ColumnType = iota
	ColumnBadge
	ColumnActions
)

type BadgeKind int

const (
	BadgeNeutral BadgeKind = iota
	BadgeSuccess
	BadgeWarning
	BadgeDanger
)

// Action is one row-level control in an actions column. Key is the keypress
// that triggers it for the selected row.
type Action[R Row] struct {
	ID       string
	Label    string
	Key      string
	Disabled func(R) bool
}

// Column describes one column declaratively. Cell content resolution order:
// Render, then badge, then actions, then the raw value (dash when empty).
type Column[R Row] struct {
	Key     string
	Label   string
	Width   int
	Type    ColumnType
	Render  func(value string, row R) string
	Badge   func(R) BadgeKind
	Actions []Action[R]
}

type ListViewConfig[R Row] struct {
	Columns   []Column[R]
	Rows      []R
	Loading   bool
	OnAction  func(actionID string, row R) tea.Msg
	EmptyText string
	EmptyIcon string
}

// ListView renders a data collection as a table with zero business logic.
// The action callback is its only channel back to the owning screen.
type ListView[R Row] struct {
	columns   []Column[R]
	rows      []R
	loading   bool
	onAction  func(string, R) tea.Msg
	emptyText string
	emptyIcon string

	cursor int
	spin   spinner.Model
}

func NewListView[R Row](cfg ListViewConfig[R]) *ListView[R] {
	lv := &ListView[R]{
		columns:   cfg.Columns,
		rows:      cfg.Rows,
		loading:   cfg.Loading,
		onAction:  cfg.OnAction,
		emptyText: cfg.EmptyText,
		emptyIcon: cfg.EmptyIcon,
		spin:      spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	if lv.onAction == nil {
		lv.onAction = func(string, R) tea.Msg { return nil }
	}

	if lv.emptyText == "" {
		lv.emptyText = "Nothing here yet"
	}

	if lv.emptyIcon == "" {
		lv.emptyIcon = "○"
	}

	return lv
}

// SetRows replaces the collection for the next View call. It does not render.
func (lv *ListView[R]) SetRows(rows []R) {
	lv.rows = rows

	if lv.cursor >= len(rows) {
		lv.cursor = len(rows) - 1
	}

	if lv.cursor < 0 {
		lv.cursor = 0
	}
}

// SetLoading toggles the loading state for the next View call.
func (lv *ListView[R]) SetLoading(loading bool) {
	lv.loading = loading
}

func (lv *ListView[R]) Loading() bool {
	return lv.loading
}

func (lv *ListView[R]) SelectedRow() (R, bool) {
	var zero R

	if lv.loading || len(lv.rows) == 0 || lv.cursor >= len(lv.rows) {
		return zero, false
	}

	return lv.rows[lv.cursor], true
}

// Tick starts the loading spinner animation.
func (lv *ListView[R]) Tick() tea.Cmd {
	return lv.spin.Tick
}

func (lv *ListView[R]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !lv.loading {
			return nil
		}

		var cmd tea.Cmd
		lv.spin, cmd = lv.spin.Update(msg)

		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if lv.cursor > 0 {
				lv.cursor--
			}

			return nil
		case "down", "j":
			if lv.cursor < len(lv.rows)-1 {
				lv.cursor++
			}

			return nil
		default:
			return lv.dispatch(msg.String())
		}
	}

	return nil
}

// dispatch relays the action to the owner. The row is resolved by id string
// equality against the collection, not by reference: rows may have been
// replaced by a fresh fetch since the cursor was positioned.
func (lv *ListView[R]) dispatch(key string) tea.Cmd {
	sel, ok := lv.SelectedRow()
	if !ok {
		return nil
	}

	for _, col := range lv.columns {
		if col.Type != ColumnActions {
			continue
		}

		for _, action := range col.Actions {
			if action.Key != key {
				continue
			}

			row, ok := lv.rowByID(sel.RowID())
			if !ok {
				return nil
			}

			if action.Disabled != nil && action.Disabled(row) {
				return nil
			}

			id := action.ID

			return func() tea.Msg {
				return lv.onAction(id, row)
			}
		}
	}

	return nil
}

func (lv *ListView[R]) rowByID(id string) (R, bool) {
	var zero R

	for _, row := range lv.rows {
		if row.RowID() == id {
			return row, true
		}
	}

	return zero, false
}

// View renders exactly one of three states: loading wins over everything and
// ignores row data, then empty, then the populated table.
func (lv *ListView[R]) View(width int) string {
	if lv.loading {
		return lv.spin.View() + " Loading…"
	}

	if len(lv.rows) == 0 {
		return faintStyle.Render(lv.emptyIcon + "  " + lv.emptyText)
	}

	var b strings.Builder

	b.WriteString("  ")

	for _, col := range lv.columns {
		b.WriteString(headerCellStyle.Render(pad(col.Label, lv.colWidth(col))))
	}

	for i, row := range lv.rows {
		b.WriteString("\n")

		if i == lv.cursor {
			b.WriteString(selectedRowStyle.Render("›") + " ")
		} else {
			b.WriteString("  ")
		}

		for _, col := range lv.columns {
			b.WriteString(pad(lv.cell(col, row, i == lv.cursor), lv.colWidth(col)))
		}
	}

	return b.String()
}

func (lv *ListView[R]) colWidth(col Column[R]) int {
	if col.Width > 0 {
		return col.Width
	}

	if w := ansi.StringWidth(col.Label) + 4; w > 14 {
		return w
	}

	return 14
}

func (lv *ListView[R]) cell(col Column[R], row R, selected bool) string {
	value := row.Value(col.Key)

	if col.Render != nil {
		return col.Render(value, row)
	}

	switch col.Type {
	case ColumnBadge:
		kind := BadgeNeutral
		if col.Badge != nil {
			kind = col.Badge(row)
		}

		return badgeStyles[kind].Render(value)

	case ColumnActions:
		parts := make([]string, 0, len(col.Actions))

		for _, action := range col.Actions {
			label := action.Label
			if selected {
				label = action.Key + ":" + label
			}

			if action.Disabled != nil && action.Disabled(row) {
				parts = append(parts, disabledCellStyle.Render(label))
			} else {
				parts = append(parts, label)
			}
		}

		return strings.Join(parts, "  ")

	default:
		if value == "" {
			return "-"
		}

		return value
	}
}

// pad pads or truncates styled text to an exact display width.
func pad(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}

	return ansi.Cut(s, 0, w-1) + " "
}
