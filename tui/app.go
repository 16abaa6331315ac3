package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/stockroom/api"
	"github.com/dasdy/stockroom/nav"
)

// Screen is the view contract every routed page implements for the shell.
// Data fetching lives in the page's Init, not here.
type Screen interface {
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// inputCapturer marks a screen that currently wants all keystrokes, typically
// because a dialog is open. Global shortcuts are suspended while it captures.
type inputCapturer interface {
	CapturingInput() bool
}

type pageChangedMsg struct {
	page nav.Page
}

type routeChangedMsg struct {
	path string
}

type navigateMsg struct {
	path string
}

// Navigate is how screens ask the shell to change location, so the shell can
// show its pending state while the navigator resolves the new page.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{path: path}
	}
}

type sidebarEntry struct {
	label string
	path  string
	key   string
}

var sidebarEntries = []sidebarEntry{
	{label: "Dashboard", path: "/", key: "1"},
	{label: "Inventories", path: "/inventories", key: "2"},
	{label: "Quality control", path: "/quality-control", key: "3"},
	{label: "Raw materials", path: "/raw-materials", key: "4"},
	{label: "Suppliers", path: "/suppliers", key: "5"},
}

const sidebarWidth = 22

// Model is the application shell: sidebar, status line, and whatever screen
// the navigator last committed.
type Model struct {
	navigator *nav.Navigator

	screen  Screen
	errPage *nav.ErrorPage
	route   string
	pending bool

	width  int
	height int
	toast  toast
}

func NewModel(navigator *nav.Navigator) *Model {
	return &Model{
		navigator: navigator,
		pending:   true,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case pageChangedMsg:
		return m, m.takePage(msg.page)

	case routeChangedMsg:
		m.route = msg.path

		return m, nil

	case navigateMsg:
		m.navigate(msg.path)

		return m, nil

	case ToastMsg:
		return m, m.toast.show(msg)

	case toastExpiredMsg:
		m.toast.expire(msg)

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen != nil {
		return m, m.screen.Update(msg)
	}

	return m, nil
}

// takePage installs a freshly committed page. Anything the navigator emits
// that is neither an error surface nor a Screen is a programming error.
func (m *Model) takePage(page nav.Page) tea.Cmd {
	m.pending = false
	m.errPage = nil
	m.screen = nil

	switch page := page.(type) {
	case nav.ErrorPage:
		m.errPage = &page

		return nil

	case Screen:
		m.screen = page

		return nil

	default:
		m.errPage = &nav.ErrorPage{
			Path: m.route,
			Err:  fmt.Errorf("page %T does not implement the screen contract", page),
		}

		return nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errPage != nil {
		if msg.String() == "enter" {
			m.navigate("/")
		}

		return m, nil
	}

	if c, ok := m.screen.(inputCapturer); ok && c.CapturingInput() {
		return m, m.screen.Update(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "backspace":
		if m.navigator.Back() {
			m.pending = true
		}

		return m, nil
	}

	for _, entry := range sidebarEntries {
		if msg.String() == entry.key {
			m.navigate(entry.path)

			return m, nil
		}
	}

	if m.screen != nil {
		return m, m.screen.Update(msg)
	}

	return m, nil
}

// navigate records the target and shows the pending state until the navigator
// commits a page for it. Re-navigating to the current route is deliberate:
// every navigation builds a fresh page.
func (m *Model) navigate(path string) {
	m.pending = true
	m.navigator.Navigate(path)
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	contentWidth := m.width - sidebarWidth - 1
	contentHeight := m.height - 2

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.viewSidebar(),
		lipgloss.NewStyle().Padding(0, 1).Width(contentWidth).Render(m.viewContent(contentWidth-2, contentHeight)),
	)

	return body + "\n" + m.toast.view()
}

func (m *Model) viewSidebar() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("stockroom"))
	b.WriteString("\n\n")

	for _, entry := range sidebarEntries {
		line := entry.key + " " + entry.label

		if m.isActive(entry.path) {
			b.WriteString(sidebarActiveStyle.Render("▌ " + line))
		} else {
			b.WriteString(sidebarItemStyle.Render("  " + line))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("bksp back · q quit"))

	return sidebarStyle.Width(sidebarWidth).Render(b.String())
}

// isActive highlights the section owning the current route, so detail pages
// keep their parent section lit.
func (m *Model) isActive(path string) bool {
	if path == "/" {
		return m.route == "/" || m.route == ""
	}

	return m.route == path || strings.HasPrefix(m.route, path+"/")
}

func (m *Model) viewContent(width, height int) string {
	switch {
	case m.errPage != nil:
		return m.viewError()

	case m.pending || m.screen == nil:
		return crumbStyle.Render(m.route) + "\n\n" + faintStyle.Render("Loading…")

	default:
		return crumbStyle.Render(m.route) + "\n\n" + m.screen.View(width, height)
	}
}

func (m *Model) viewError() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(fieldErrorStyle.Render(m.errPage.Err.Error()))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter: back to dashboard"))

	return b.String()
}

func registerRoutes(n *nav.Navigator, client *api.Client) {
	n.Register("/", func(nav.Params) nav.Page {
		return newDashboardScreen(client)
	})
	n.Register("/inventories", func(nav.Params) nav.Page {
		return newInventoriesScreen(client)
	})
	n.Register("/inventories/:id", func(p nav.Params) nav.Page {
		return newInventoryDetailScreen(client, p["id"])
	})
	n.Register("/quality-control", func(nav.Params) nav.Page {
		return newQualityControlScreen(client)
	})
	n.Register("/raw-materials", func(nav.Params) nav.Page {
		return newRawMaterialsScreen(client)
	})
	n.Register("/suppliers", func(nav.Params) nav.Page {
		return newSuppliersScreen(client)
	})
}

// Run wires the API client, navigator and program together and blocks until
// the user quits.
func Run(apiURL string) error {
	client := api.NewClient(apiURL)
	history := nav.NewMemoryHistory("/")
	navigator := nav.New(history)
	registerRoutes(navigator, client)

	m := NewModel(navigator)
	program := tea.NewProgram(m, tea.WithAltScreen())

	navigator.OnPage(func(page nav.Page) {
		program.Send(pageChangedMsg{page: page})
	})
	navigator.OnRouteChange(func(path string) {
		program.Send(routeChangedMsg{path: path})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go navigator.Start(ctx)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	cancel()
	navigator.Wait()

	return nil
}
