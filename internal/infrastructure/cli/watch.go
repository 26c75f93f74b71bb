package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/internal/infrastructure/watch"
	"github.com/quiz2biz/quiz2biz/pkg/domain"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate prompts when a session file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices()
		if err != nil {
			return err
		}

		watcher, err := watch.NewSessionWatcher(watchDebounce, func(change watch.SessionChange) {
			if change.ChangeType == "remove" || change.ChangeType == "rename" {
				fmt.Printf("Session file %s %sd, skipping\n", change.SessionID, change.ChangeType)
				return
			}

			sessionID, err := domain.NewSessionID(change.SessionID)
			if err != nil {
				fmt.Printf("Ignoring %s: %v\n", change.Path, err)
				return
			}

			batch, err := svcs.questMode.GeneratePromptsForSession(cmd.Context(), sessionID)
			if err != nil {
				fmt.Printf("Regeneration failed for %s: %v\n", sessionID, err)
				return
			}
			fmt.Printf("[%s] %s: %d prompts, %dh total effort\n",
				time.Now().Format("15:04:05"), sessionID, len(batch.Prompts), batch.TotalEffortHours)
		})
		if err != nil {
			return err
		}

		if err := watcher.Watch(svcs.repo.SessionsPath()); err != nil {
			return err
		}

		fmt.Printf("Watching %s (debounce %s). Ctrl+C to stop.\n", svcs.repo.SessionsPath(), watchDebounce)
		return watcher.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet window before regeneration runs")
	RootCmd.AddCommand(watchCmd)
}
