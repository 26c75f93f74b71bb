package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/bundle"
)

var policyPackOut string

var policyPackCmd = &cobra.Command{
	Use:   "policy-pack",
	Short: "Compliance policy packs",
}

var policyPackGenerateCmd = &cobra.Command{
	Use:   "generate <session-id>",
	Short: "Generate a policy pack bundle for a session",
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

		b, err := svcs.policies.GeneratePolicyPack(cmd.Context(), sessionID)
		if err != nil {
			return err
		}

		fmt.Printf("Bundle %s (%s)\n", b.ID, b.Name)
		fmt.Printf("Policies: %d | OPA policies: %d | Terraform rules: %v | Score: %.1f\n",
			len(b.Policies), len(b.OPAPolicies), b.TerraformRules != "", b.ScoreAtGeneration)

		if policyPackOut == "" {
			return nil
		}
		return writeBundleJSON(b, policyPackOut)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <session-id> <output-dir>",
	Short: "Generate a policy pack and write its file set to a directory",
	Long: `Generates the policy pack bundle for a session and materializes its
export structure (README, manifest, policy documents, OPA and Terraform
rules) under the output directory. Archiving and delivery are up to you.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := domain.NewSessionID(args[0])
		if err != nil {
			return err
		}
		outDir := args[1]

		svcs, err := buildServices()
		if err != nil {
			return err
		}

		b, err := svcs.policies.GeneratePolicyPack(cmd.Context(), sessionID)
		if err != nil {
			return err
		}

		files := bundle.ExportStructure(*b)
		for _, f := range files {
			path := filepath.Join(outDir, f.Path)
			if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
				return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
			}
			if err := os.WriteFile(path, []byte(f.Content), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}

		fmt.Printf("Wrote %d files to %s\n", len(files), outDir)
		return nil
	},
}

var policyPackStatusCmd = &cobra.Command{
	Use:   "status <bundle-file> <document-id> <event>",
	Short: "Advance a policy document's review status",
	Long: `Applies a lifecycle event (submit, approve, reject, revise, deprecate)
to one policy document inside an exported bundle JSON file and writes the
updated bundle back in place.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		bundlePath, documentID, event := args[0], args[1], args[2]

		data, err := os.ReadFile(bundlePath)
		if err != nil {
			return fmt.Errorf("failed to read bundle: %w", err)
		}
		var b bundle.Bundle
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("failed to parse bundle: %w", err)
		}

		idx := -1
		for i := range b.Policies {
			if b.Policies[i].ID == documentID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("no policy document '%s' in bundle %s", documentID, b.ID)
		}

		svcs, err := buildServices()
		if err != nil {
			return err
		}

		doc, err := svcs.policies.TransitionPolicyStatus(b.Policies[idx], event)
		if err != nil {
			return err
		}
		b.Policies[idx] = doc

		if err := writeBundleJSON(&b, bundlePath); err != nil {
			return err
		}
		fmt.Printf("Document %s is now %s\n", doc.ID, doc.Status)
		return nil
	},
}

func writeBundleJSON(b *bundle.Bundle, path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bundle: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	fmt.Printf("Bundle written to %s\n", path)
	return nil
}

func init() {
	policyPackGenerateCmd.Flags().StringVar(&policyPackOut, "output", "", "Also write the bundle as JSON to this path")
	policyPackCmd.AddCommand(policyPackGenerateCmd)
	policyPackCmd.AddCommand(policyPackStatusCmd)
	RootCmd.AddCommand(policyPackCmd)
	RootCmd.AddCommand(exportCmd)
}
