package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/tabletop/internal/report"
)

// RunReportTUI starts the interactive report menu
func RunReportTUI(q report.Queryer, includeIdle bool) error {
	model := NewReportModel(q, includeIdle)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
