package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/pkg/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a quiz2biz workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}

		repo := storage.NewFilesystemRepository(cwd)
		if repo.IsInitialized() {
			fmt.Println("Workspace already initialized.")
			return nil
		}

		if err := repo.Initialize(); err != nil {
			return err
		}

		fmt.Printf("Initialized workspace. Drop session files into %s/ and run 'quiz2biz gaps <session-id>'.\n",
			repo.SessionsPath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
