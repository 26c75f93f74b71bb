package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/prompt"
)

var promptsFormat string

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Quest-Mode remediation prompts",
}

var promptsGenerateCmd = &cobra.Command{
	Use:   "generate <session-id>",
	Short: "Generate the prompt batch for a session",
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

		batch, err := svcs.questMode.GeneratePromptsForSession(cmd.Context(), sessionID)
		if err != nil {
			return err
		}

		switch promptsFormat {
		case "json":
			data, err := json.MarshalIndent(batch, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal batch: %w", err)
			}
			fmt.Println(string(data))
		case "markdown":
			for i, p := range batch.Prompts {
				if i > 0 {
					fmt.Println()
				}
				fmt.Print(prompt.FormatMarkdown(p))
			}
		case "text":
			printBatchSummary(batch)
		default:
			return fmt.Errorf("unknown format: %s (expected text, markdown, or json)", promptsFormat)
		}
		return nil
	},
}

var promptsTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices()
		if err != nil {
			return err
		}

		for _, t := range svcs.questMode.AvailableTemplates() {
			fmt.Printf("%-20s %d base hours, evidence: %s, tasks: %d\n",
				t.DimensionKey, t.BaseEffortHours, t.EvidenceType, len(t.Tasks))
		}
		return nil
	},
}

func printBatchSummary(batch *prompt.Batch) {
	fmt.Printf("Batch %s for session %s\n", batch.ID, batch.SessionID)
	fmt.Printf("Prompts: %d | Total effort: %dh | Dimensions: %s | Score: %.1f\n\n",
		len(batch.Prompts), batch.TotalEffortHours,
		strings.Join(batch.DimensionsCovered, ", "), batch.ScoreAtGeneration)

	for _, p := range batch.Prompts {
		fmt.Printf("[P%d %s] %s (%dh)\n", int(p.Priority), p.Priority.Label(), p.Goal, p.EstimatedEffortHours)
	}
}

func init() {
	promptsGenerateCmd.Flags().StringVar(&promptsFormat, "format", "text", "Output format: text, markdown, or json")
	promptsCmd.AddCommand(promptsGenerateCmd)
	promptsCmd.AddCommand(promptsTemplatesCmd)
	RootCmd.AddCommand(promptsCmd)
}
