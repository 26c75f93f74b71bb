package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
)

var gapsSummary bool

var gapsCmd = &cobra.Command{
	Use:   "gaps <session-id>",
	Short: "Show the ranked gap list for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := domain.NewSessionID(args[0])
		if err != nil {
			return err
		}

		svcs, err := buildServices()
		if err != nil {
			return err
		}

		gaps, err := svcs.questMode.BuildGapContexts(cmd.Context(), sessionID)
		if err != nil {
			return err
		}

		if len(gaps) == 0 {
			fmt.Println("No gaps. Either the session is fully covered or it does not exist.")
			return nil
		}

		if gapsSummary {
			printGapSummary(gap.Summarize(gaps))
			return nil
		}

		printGapTable(gaps)
		return nil
	},
}

func printGapTable(gaps []gap.Gap) {
	columns := []table.Column{
		{Title: "Risk", Width: 6},
		{Title: "Dimension", Width: 18},
		{Title: "Coverage", Width: 9},
		{Title: "Severity", Width: 9},
		{Title: "Question", Width: 48},
	}

	rows := []table.Row{}
	for _, g := range gaps {
		rows = append(rows, table.Row{
			fmt.Sprintf("%.2f", g.ResidualRisk),
			g.DimensionKey,
			fmt.Sprintf("%.0f%%", g.Coverage*100),
			fmt.Sprintf("%.2f", g.SeverityWeight),
			g.QuestionText,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // Disable selection style for static view
	t.SetStyles(s)

	fmt.Printf("Gaps (%d, highest residual risk first)\n", len(gaps))
	fmt.Println(t.View())
}

func printGapSummary(s gap.Summary) {
	fmt.Printf("Total gaps: %d\n", s.Total)
	fmt.Printf("High priority (risk > %.2f): %d\n", gap.HighPriorityThreshold, s.HighPriority)
	fmt.Printf("Total residual risk: %.2f\n\n", s.TotalResidualRisk)

	dims := make([]string, 0, len(s.ByDimension))
	for d := range s.ByDimension {
		dims = append(dims, d)
	}
	sort.Strings(dims)
	for _, d := range dims {
		fmt.Printf("  %-20s %d\n", d, s.ByDimension[d])
	}
}

func init() {
	gapsCmd.Flags().BoolVar(&gapsSummary, "summary", false, "Print per-dimension aggregates instead of the full list")
	RootCmd.AddCommand(gapsCmd)
}
