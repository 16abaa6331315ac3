package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/stockroom/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(d *tui.Dialog, text string) {
	for _, r := range text {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(d *tui.Dialog, key tea.KeyType) tea.Cmd {
	return d.Update(tea.KeyMsg{Type: key})
}

func TestCloseCallbackFiresExactlyOnce(t *testing.T) {
	closed := 0
	d := tui.NewDialog()

	d.Open(tui.DialogOptions{
		Title:   "Edit inventory",
		OnClose: func() { closed++ },
	})

	require.True(t, d.Visible())

	d.Close()
	d.Close()
	d.Close()

	assert.Equal(t, 1, closed)
}

func TestReopenAfterCloseWorks(t *testing.T) {
	closed := 0
	d := tui.NewDialog()

	opts := tui.DialogOptions{
		Title:   "Edit inventory",
		OnClose: func() { closed++ },
	}

	d.Open(opts)
	d.Close()

	d.Open(opts)
	require.True(t, d.Visible())
	d.Close()

	assert.Equal(t, 2, closed)
}

func TestEscDismissesAndFiresCloseCallback(t *testing.T) {
	closed := 0
	d := tui.NewDialog()

	d.Open(tui.DialogOptions{
		Title:   "Edit inventory",
		OnClose: func() { closed++ },
	})

	press(d, tea.KeyEsc)

	assert.Equal(t, 1, closed)
}

func TestValuesCollectAllFieldTypes(t *testing.T) {
	d := tui.NewDialog()

	d.Open(tui.DialogOptions{
		Title: "New inventory",
		Fields: []tui.Field{
			{Name: "name", Label: "Name", Type: tui.FieldText},
			{Name: "capacity", Label: "Capacity", Type: tui.FieldNumber, Initial: "500"},
			{Name: "unit", Label: "Unit", Type: tui.FieldSelect, Options: []string{"kg", "l"}, Initial: "kg"},
			{Name: "active", Label: "Active", Type: tui.FieldCheckbox},
		},
	})

	typeText(d, "Cold store")

	// unit: move to the select, pick the second option.
	press(d, tea.KeyTab)
	press(d, tea.KeyTab)
	press(d, tea.KeyRight)

	// active: toggle the checkbox on.
	press(d, tea.KeyTab)
	press(d, tea.KeySpace)

	values := d.Values()
	assert.Equal(t, "Cold store", values["name"])
	assert.Equal(t, "500", values["capacity"])
	assert.Equal(t, "l", values["unit"])
	assert.Equal(t, "true", values["active"])
}

func TestNumberFieldRejectsLetters(t *testing.T) {
	d := tui.NewDialog()

	d.Open(tui.DialogOptions{
		Fields: []tui.Field{
			{Name: "capacity", Label: "Capacity", Type: tui.FieldNumber},
		},
	})

	typeText(d, "12a")

	assert.Equal(t, "12", d.Values()["capacity"])
}

func TestSubmitDeliversValues(t *testing.T) {
	var got map[string]string
	d := tui.NewDialog()

	d.Open(tui.DialogOptions{
		Fields: []tui.Field{{Name: "name", Label: "Name"}},
		OnSubmit: func(values map[string]string) tea.Cmd {
			got = values

			return nil
		},
	})

	typeText(d, "Chamomile")
	press(d, tea.KeyEnter)

	require.NotNil(t, got)
	assert.Equal(t, "Chamomile", got["name"])
}

func TestLoadingBlocksSubmit(t *testing.T) {
	submits := 0
	d := tui.NewDialog()

	d.Open(tui.DialogOptions{
		Fields: []tui.Field{{Name: "name", Label: "Name"}},
		OnSubmit: func(map[string]string) tea.Cmd {
			submits++

			return nil
		},
	})

	d.SetLoading(true)
	press(d, tea.KeyEnter)

	assert.Zero(t, submits)

	// Server-side errors re-enable the form.
	d.ShowErrors(map[string]string{"name": "name already taken"})
	assert.False(t, d.Loading())

	press(d, tea.KeyEnter)
	assert.Equal(t, 1, submits)
}

func TestConfirmResolvesTrueOnlyOnExplicitConfirm(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		var results []bool
		d := tui.NewDialog()

		d.Confirm("Delete inventory", "This cannot be undone.", func(ok bool) tea.Cmd {
			results = append(results, ok)

			return nil
		})

		press(d, tea.KeyEnter)
		d.Close()

		assert.Equal(t, []bool{true}, results)
	})

	t.Run("dismissed", func(t *testing.T) {
		var results []bool
		d := tui.NewDialog()

		d.Confirm("Delete inventory", "This cannot be undone.", func(ok bool) tea.Cmd {
			results = append(results, ok)

			return nil
		})

		press(d, tea.KeyEsc)
		d.Close()

		assert.Equal(t, []bool{false}, results)
	})
}
