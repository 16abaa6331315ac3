package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type FieldType int

const (
	FieldText FieldType = iota
	FieldNumber
	FieldSelect
	FieldCheckbox
)

// Field declares one form input. Values travel as strings regardless of type;
// number fields only restrict what can be typed, checkboxes yield "true" or
// "false", selects yield the chosen option verbatim.
type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Options     []string
	Initial     string
	Placeholder string
}

type DialogSize int

const (
	DialogMedium DialogSize = iota
	DialogSmall
	DialogLarge
)

type DialogOptions struct {
	Title       string
	Fields      []Field
	Footer      *string
	Size        DialogSize
	SubmitLabel string
	OnSubmit    func(values map[string]string) tea.Cmd
	OnClose     func()
}

type dialogState int

const (
	dialogClosed dialogState = iota
	dialogOpening
	dialogOpen
	dialogClosing
)

type dialogFrameMsg struct {
	seq int
}

const dialogFrame = 80 * time.Millisecond

type fieldState struct {
	def    Field
	input  textinput.Model
	choice int
	check  bool
}

// Dialog owns one modal at a time. Open replaces any current contents with a
// fresh form; Close on an already closed dialog is a no-op. The close callback
// fires exactly once per open, whichever way the dialog is dismissed.
type Dialog struct {
	state  dialogState
	seq    int
	opts   DialogOptions
	fields []fieldState
	errors map[string]string

	focus   int
	loading bool

	closeFired bool
	onConfirm  func(bool) tea.Cmd
	confirmed  bool
}

func NewDialog() *Dialog {
	return &Dialog{}
}

func (d *Dialog) Open(opts DialogOptions) tea.Cmd {
	if opts.SubmitLabel == "" {
		opts.SubmitLabel = "Save"
	}

	d.opts = opts
	d.errors = nil
	d.focus = 0
	d.loading = false
	d.closeFired = false
	d.onConfirm = nil
	d.confirmed = false
	d.fields = make([]fieldState, len(opts.Fields))

	for i, def := range opts.Fields {
		fs := fieldState{def: def}

		switch def.Type {
		case FieldCheckbox:
			fs.check = def.Initial == "true"
		case FieldSelect:
			for j, opt := range def.Options {
				if opt == def.Initial {
					fs.choice = j
				}
			}
		default:
			in := textinput.New()
			in.Placeholder = def.Placeholder
			in.SetValue(def.Initial)
			in.CharLimit = 120

			if def.Type == FieldNumber {
				in.Validate = func(s string) error {
					if s == "" || s == "-" {
						return nil
					}

					_, err := strconv.ParseFloat(s, 64)

					return err
				}
			}

			if i == 0 {
				in.Focus()
			}

			fs.input = in
		}

		d.fields[i] = fs
	}

	d.state = dialogOpening
	d.seq++

	return d.frame()
}

// Confirm opens a static yes/no dialog. The callback resolves exactly once:
// true only on an explicit confirmation, false on any other exit.
func (d *Dialog) Confirm(title, message string, onResult func(bool) tea.Cmd) tea.Cmd {
	cmd := d.Open(DialogOptions{
		Title:       title,
		Footer:      &message,
		Size:        DialogSmall,
		SubmitLabel: "Confirm",
	})

	d.onConfirm = onResult

	return cmd
}

// Close starts dismissal. Calling it when nothing is open does nothing.
func (d *Dialog) Close() tea.Cmd {
	if d.state == dialogClosed || d.state == dialogClosing {
		return nil
	}

	d.state = dialogClosing
	d.seq++

	var cmds []tea.Cmd

	if d.onConfirm != nil && !d.confirmed {
		cb := d.onConfirm
		d.onConfirm = nil
		cmds = append(cmds, cb(false))
	}

	if d.opts.OnClose != nil && !d.closeFired {
		d.closeFired = true
		d.opts.OnClose()
	}

	cmds = append(cmds, d.frame())

	return tea.Batch(cmds...)
}

func (d *Dialog) Visible() bool {
	return d.state != dialogClosed
}

// SetLoading disables the submit button and swaps its label while a request
// is in flight. The owner decides when to Close or ShowErrors afterwards.
func (d *Dialog) SetLoading(loading bool) {
	d.loading = loading
}

func (d *Dialog) Loading() bool {
	return d.loading
}

// ShowErrors attaches per-field messages, keyed by field name, and clears the
// loading state so the form can be corrected and resubmitted.
func (d *Dialog) ShowErrors(errs map[string]string) {
	d.errors = errs
	d.loading = false
}

// Values snapshots the current form contents keyed by field name.
func (d *Dialog) Values() map[string]string {
	values := make(map[string]string, len(d.fields))

	for _, fs := range d.fields {
		switch fs.def.Type {
		case FieldCheckbox:
			values[fs.def.Name] = strconv.FormatBool(fs.check)
		case FieldSelect:
			if len(fs.def.Options) > 0 {
				values[fs.def.Name] = fs.def.Options[fs.choice]
			} else {
				values[fs.def.Name] = ""
			}
		default:
			values[fs.def.Name] = fs.input.Value()
		}
	}

	return values
}

func (d *Dialog) frame() tea.Cmd {
	seq := d.seq

	return tea.Tick(dialogFrame, func(time.Time) tea.Msg {
		return dialogFrameMsg{seq: seq}
	})
}

func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dialogFrameMsg:
		// A stale frame from a superseded transition is dropped.
		if msg.seq != d.seq {
			return nil
		}

		switch d.state {
		case dialogOpening:
			d.state = dialogOpen
		case dialogClosing:
			d.state = dialogClosed
		}

		return nil

	case tea.KeyMsg:
		if d.state != dialogOpen && d.state != dialogOpening {
			return nil
		}

		return d.handleKey(msg)
	}

	return nil
}

func (d *Dialog) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return d.Close()

	case "tab", "down":
		d.moveFocus(1)

		return nil

	case "shift+tab", "up":
		d.moveFocus(-1)

		return nil

	case "enter":
		return d.submit()
	}

	if d.focus < len(d.fields) {
		return d.editField(msg)
	}

	return nil
}

func (d *Dialog) editField(msg tea.KeyMsg) tea.Cmd {
	fs := &d.fields[d.focus]

	switch fs.def.Type {
	case FieldCheckbox:
		if msg.String() == " " {
			fs.check = !fs.check
		}

		return nil

	case FieldSelect:
		switch msg.String() {
		case "left", "h":
			if fs.choice > 0 {
				fs.choice--
			}
		case "right", "l":
			if fs.choice < len(fs.def.Options)-1 {
				fs.choice++
			}
		}

		return nil

	default:
		var cmd tea.Cmd
		fs.input, cmd = fs.input.Update(msg)

		return cmd
	}
}

// moveFocus cycles through the fields plus the trailing submit button.
func (d *Dialog) moveFocus(delta int) {
	stops := len(d.fields) + 1

	if d.focus < len(d.fields) {
		d.fields[d.focus].input.Blur()
	}

	d.focus = (d.focus + delta + stops) % stops

	if d.focus < len(d.fields) {
		fs := &d.fields[d.focus]
		if fs.def.Type != FieldCheckbox && fs.def.Type != FieldSelect {
			fs.input.Focus()
		}
	}
}

func (d *Dialog) submit() tea.Cmd {
	if d.loading {
		return nil
	}

	if d.onConfirm != nil {
		cb := d.onConfirm
		d.onConfirm = nil
		d.confirmed = true

		return tea.Batch(cb(true), d.Close())
	}

	if d.opts.OnSubmit == nil {
		return d.Close()
	}

	return d.opts.OnSubmit(d.Values())
}

func (d *Dialog) width() int {
	switch d.opts.Size {
	case DialogSmall:
		return 40
	case DialogLarge:
		return 72
	default:
		return 56
	}
}

// Overlay composites the dialog box over the given backdrop, centered. While
// closed it returns the backdrop untouched.
func (d *Dialog) Overlay(backdrop string, width, height int) string {
	if d.state == dialogClosed || d.state == dialogClosing {
		return backdrop
	}

	box := d.render()

	return overlayCenter(backdrop, box, width, height)
}

func (d *Dialog) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.opts.Title))
	b.WriteString("\n")

	inner := d.width() - 6

	for i, fs := range d.fields {
		b.WriteString("\n")
		b.WriteString(fieldLabelStyle.Render(fs.def.Label))
		b.WriteString("\n")
		b.WriteString(d.renderField(i, inner))

		if msg, ok := d.errors[fs.def.Name]; ok {
			b.WriteString("\n")
			b.WriteString(fieldErrorStyle.Render(msg))
		}

		b.WriteString("\n")
	}

	if d.opts.Footer != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(*d.opts.Footer))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.renderSubmit())

	return dialogBoxStyle.Width(d.width()).Render(b.String())
}

func (d *Dialog) renderField(i, width int) string {
	fs := d.fields[i]
	focused := d.focus == i

	switch fs.def.Type {
	case FieldCheckbox:
		mark := "[ ]"
		if fs.check {
			mark = "[x]"
		}

		if focused {
			return buttonActiveStyle.Render(mark)
		}

		return mark

	case FieldSelect:
		choice := ""
		if len(fs.def.Options) > 0 {
			choice = fs.def.Options[fs.choice]
		}

		line := "‹ " + choice + " ›"
		if focused {
			return buttonActiveStyle.Render(line)
		}

		return line

	default:
		in := fs.input
		in.Width = width

		return in.View()
	}
}

func (d *Dialog) renderSubmit() string {
	label := d.opts.SubmitLabel

	if d.loading {
		return buttonDisabledStyle.Render("Working…")
	}

	if d.focus == len(d.fields) {
		return buttonActiveStyle.Render(label)
	}

	return buttonStyle.Render(label)
}

// overlayCenter draws overlay on top of backdrop, centered in a width×height
// viewport, dimming the covered backdrop lines around it.
func overlayCenter(backdrop, overlay string, width, height int) string {
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0

	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	x := (width - overlayWidth) / 2
	y := (height - len(overlayLines)) / 2

	if x < 0 {
		x = 0
	}

	if y < 0 {
		y = 0
	}

	bgLines := strings.Split(backdrop, "\n")
	out := make([]string, 0, len(bgLines))

	for row := 0; row < len(bgLines) || row < y+len(overlayLines); row++ {
		bg := ""
		if row < len(bgLines) {
			bg = bgLines[row]
		}

		if row < y || row >= y+len(overlayLines) {
			out = append(out, faintStyle.Render(ansi.Strip(bg)))

			continue
		}

		over := overlayLines[row-y]
		left := ansi.Cut(bg, 0, x)

		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}

		right := ansi.Cut(bg, x+ansi.StringWidth(over), ansi.StringWidth(bg))

		out = append(out, faintStyle.Render(ansi.Strip(left))+over+faintStyle.Render(ansi.Strip(right)))
	}

	return strings.Join(out, "\n")
}
