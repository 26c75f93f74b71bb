package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/pkg/application"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the generation audit trail",
}

var auditTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "List recorded generation events",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices()
		if err != nil {
			return err
		}

		events, err := application.NewAuditService(svcs.repo).GetTimeline()
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No events recorded yet.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %-24s %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.ID)
		}
		return nil
	},
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the integrity of the audit event chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices()
		if err != nil {
			return err
		}

		violations, err := application.NewAuditService(svcs.repo).VerifyIntegrity()
		if err != nil {
			return err
		}

		if len(violations) == 0 {
			fmt.Println("Audit trail intact.")
			return nil
		}
		for _, v := range violations {
			fmt.Println(v)
		}
		return fmt.Errorf("audit trail has %d violation(s)", len(violations))
	},
}

func init() {
	auditCmd.AddCommand(auditTimelineCmd)
	auditCmd.AddCommand(auditVerifyCmd)
	RootCmd.AddCommand(auditCmd)
}
