package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	crumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	faintStyle = lipgloss.NewStyle().Faint(true)

	headerCellStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	selectedRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("62"))
	disabledCellStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	badgeStyles = map[BadgeKind]lipgloss.Style{
		BadgeNeutral: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		BadgeSuccess: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("42")),
		BadgeWarning: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214")),
		BadgeDanger:  lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("160")),
	}

	sidebarStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238"))
	sidebarItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	sidebarActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	dialogBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Background(lipgloss.Color("235"))
	fieldLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	fieldErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238"))
	buttonActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("62"))
	buttonDisabledStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Faint(true).
				Foreground(lipgloss.Color("243")).
				Background(lipgloss.Color("236"))

	toastStyles = map[ToastKind]lipgloss.Style{
		ToastSuccess: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("42")),
		ToastError:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("160")),
		ToastWarning: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214")),
		ToastInfo:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
	}
)
