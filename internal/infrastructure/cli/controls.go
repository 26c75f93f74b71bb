package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
)

var controlsCoverage bool

var controlsCmd = &cobra.Command{
	Use:   "controls <dimension-key>",
	Short: "Show the compliance controls mapped to a dimension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dimension := args[0]
		svc := controls.NewService()

		if controlsCoverage {
			summary := svc.CoverageSummary(dimension)
			frameworks := make([]string, 0, len(summary))
			for fw := range summary {
				frameworks = append(frameworks, string(fw))
			}
			sort.Strings(frameworks)
			for _, fw := range frameworks {
				fmt.Printf("%-12s %d controls\n", fw, summary[controls.Framework(fw)])
			}
			return nil
		}

		mappings := svc.MappingsForDimension(dimension)
		if len(mappings) == 0 {
			fmt.Printf("No controls mapped to dimension %q.\n", dimension)
			return nil
		}
		for _, m := range mappings {
			fmt.Printf("%-12s %-10s %s\n", m.Framework, m.ControlID, m.Description)
		}
		return nil
	},
}

func init() {
	controlsCmd.Flags().BoolVar(&controlsCoverage, "coverage", false, "Print mapped-control counts per framework")
	RootCmd.AddCommand(controlsCmd)
}
