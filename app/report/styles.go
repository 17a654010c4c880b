package report

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	rowStyle = lipgloss.NewStyle().PaddingLeft(2)
)
