package tui

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/stockroom/api"
	"github.com/dasdy/stockroom/model"
	"golang.org/x/sync/errgroup"
)

var cardStyle = lipgloss.NewStyle().
	Padding(1, 3).
	Margin(0, 1, 0, 0).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("238"))

type dashboardScreen struct {
	client *api.Client
	counts model.Counts
}

func newDashboardScreen(client *api.Client) *dashboardScreen {
	return &dashboardScreen{client: client}
}

// Init pulls the four collections in parallel; any one failure fails the page.
func (s *dashboardScreen) Init(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		inventories, err := s.client.Inventories.GetAll(ctx)
		if err != nil {
			return err
		}

		s.counts.Inventories = len(inventories)

		return nil
	})

	g.Go(func() error {
		materials, err := s.client.RawMaterials.GetAll(ctx)
		if err != nil {
			return err
		}

		s.counts.RawMaterials = len(materials)

		return nil
	})

	g.Go(func() error {
		records, err := s.client.QualityControl.GetAll(ctx)
		if err != nil {
			return err
		}

		for _, record := range records {
			if record.Status == model.QCPending {
				s.counts.PendingQC++
			}
		}

		return nil
	})

	g.Go(func() error {
		suppliers, err := s.client.Suppliers.GetAll(ctx)
		if err != nil {
			return err
		}

		s.counts.Suppliers = len(suppliers)

		return nil
	})

	return g.Wait()
}

func (s *dashboardScreen) Update(tea.Msg) tea.Cmd {
	return nil
}

func (s *dashboardScreen) View(width, height int) string {
	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		card("Inventories", s.counts.Inventories),
		card("Raw materials", s.counts.RawMaterials),
		card("Pending QC", s.counts.PendingQC),
		card("Suppliers", s.counts.Suppliers),
	)

	hint := faintStyle.Render("Jump to a section with its number key.")

	return cards + "\n\n" + hint
}

func card(label string, count int) string {
	return cardStyle.Render(
		titleStyle.Render(strconv.Itoa(count)) + "\n" + crumbStyle.Render(label),
	)
}
