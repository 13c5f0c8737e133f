package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Status     lipgloss.Style
	Success    lipgloss.Style
	Warn       lipgloss.Style
	Error      lipgloss.Style
	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	Section    lipgloss.Style
	Label      lipgloss.Style
	Cursor     lipgloss.Style
	Help       lipgloss.Style
	Selected   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ModalBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Underline(true),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false),
	}
}
