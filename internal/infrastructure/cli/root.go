package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "quiz2biz",
	Version: Version,
	Short:   "Gap-driven compliance readiness generator",
	Long: `quiz2biz turns assessment gaps into actionable artifacts.
It reads a session's answers, ranks residual risk per question, and generates:
1. Quest-Mode remediation prompts
2. Policy packs (Policy/Standard/Procedure docs plus OPA and Terraform rules)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
