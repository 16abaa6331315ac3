package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastWarning
	ToastInfo
)

// ToastMsg is the fire-and-forget notification surface. Any screen can emit
// one; the shell renders it on its status line until it expires.
type ToastMsg struct {
	Message string
	Kind    ToastKind
}

// ShowToast wraps a notification into a command so screens can return it from
// Update like any other effect.
func ShowToast(message string, kind ToastKind) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Kind: kind}
	}
}

type toastExpiredMsg struct {
	seq int
}

const toastLifetime = 4 * time.Second

// toast is the shell-owned status line state. A newer toast replaces the
// current one; expiry of a replaced toast is ignored via the sequence number.
type toast struct {
	message string
	kind    ToastKind
	seq     int
}

func (t *toast) show(msg ToastMsg) tea.Cmd {
	t.message = msg.Message
	t.kind = msg.Kind
	t.seq++

	seq := t.seq

	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t *toast) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.message = ""
	}
}

func (t *toast) view() string {
	if t.message == "" {
		return " "
	}

	return toastStyles[t.kind].Render(t.message)
}
