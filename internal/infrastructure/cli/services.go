package cli

import (
	"fmt"
	"os"

	"github.com/quiz2biz/quiz2biz/pkg/application"
	"github.com/quiz2biz/quiz2biz/pkg/domain/controls"
	"github.com/quiz2biz/quiz2biz/pkg/domain/template"
	"github.com/quiz2biz/quiz2biz/pkg/storage"
)

// services bundles the wired application layer for one command run.
type services struct {
	repo      *storage.FilesystemRepository
	questMode *application.QuestModeService
	policies  *application.PolicyPackService
}

// buildServices wires the repositories, registry, and services for the
// current working directory's workspace.
func buildServices() (*services, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	repo := storage.NewFilesystemRepository(cwd)
	if !repo.IsInitialized() {
		return nil, fmt.Errorf("no %s workspace here; run 'quiz2biz init' first", storage.WorkspaceDir)
	}

	cfg, err := repo.LoadConfig()
	if err != nil {
		return nil, err
	}
	repo.SetSessionsDir(cfg.SessionsDir)

	registry := template.NewRegistry()
	ctrl := controls.NewService()
	audit := application.NewAuditService(repo)

	policies := application.NewPolicyPackService(repo, registry, ctrl, audit)
	policies.SetBundleNamePrefix(cfg.BundleNamePrefix)

	frameworks := make([]controls.Framework, 0, len(cfg.Frameworks))
	for _, fw := range cfg.Frameworks {
		frameworks = append(frameworks, controls.Framework(fw))
	}
	policies.SetFrameworks(frameworks)

	return &services{
		repo:      repo,
		questMode: application.NewQuestModeService(repo, registry, audit),
		policies:  policies,
	}, nil
}
