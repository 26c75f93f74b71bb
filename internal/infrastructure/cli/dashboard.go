package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
	"github.com/quiz2biz/quiz2biz/pkg/domain/prompt"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <session-id>",
	Short: "Interactive TUI gap browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("QUIZ2BIZ_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialModel(cmd.Context(), args[0]))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var riskHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
var riskLow = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

type model struct {
	table   table.Model
	gaps    []gap.Gap
	session string
	summary gap.Summary
	err     error
}

func initialModel(ctx context.Context, rawSessionID string) model {
	sessionID, err := domain.NewSessionID(rawSessionID)
	if err != nil {
		return model{err: err}
	}

	svcs, err := buildServices()
	if err != nil {
		return model{err: err}
	}

	gaps, err := svcs.questMode.BuildGapContexts(ctx, sessionID)
	if err != nil {
		return model{err: err}
	}

	columns := []table.Column{
		{Title: "Risk", Width: 6},
		{Title: "Prio", Width: 6},
		{Title: "Dimension", Width: 18},
		{Title: "Coverage", Width: 9},
		{Title: "Question", Width: 44},
	}

	rows := []table.Row{}
	for _, g := range gaps {
		rows = append(rows, table.Row{
			fmt.Sprintf("%.2f", g.ResidualRisk),
			prompt.ForResidualRisk(g.ResidualRisk).Label(),
			g.DimensionKey,
			fmt.Sprintf("%.0f%%", g.Coverage*100),
			g.QuestionText,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	t.SetStyles(s)

	return model{
		table:   t,
		gaps:    gaps,
		session: sessionID.String(),
		summary: gap.Summarize(gaps),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("Session %s — %d gaps", m.session, m.summary.Total))

	riskLine := riskLow.Render("No high-priority gaps")
	if m.summary.HighPriority > 0 {
		riskLine = riskHigh.Render(fmt.Sprintf("%d high-priority gaps (risk > %.2f)",
			m.summary.HighPriority, gap.HighPriorityThreshold))
	}

	detail := ""
	if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.gaps) {
		g := m.gaps[cursor]
		detail = fmt.Sprintf("\nBest practice: %s\nExplainer: %s", g.BestPractice, g.PracticalExplainer)
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			riskLine,
			m.table.View(),
			detail,
			"\nq to quit",
		),
	)
}
