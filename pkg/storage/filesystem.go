// Package storage provides the data-access collaborators of the
// generation core: a read-only filesystem session source and a JSONL
// audit log. Retry lives here, at the collaborator boundary; the
// generators stay pure.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
	"github.com/quiz2biz/quiz2biz/pkg/domain/session"
)

const WorkspaceDir = ".quiz2biz"
const SessionsDir = "sessions"
const EventsFile = "events.jsonl"
const ConfigFile = "quiz2biz.yaml"

type FilesystemRepository struct {
	root        string
	sessionsDir string
	retryConfig retry.Config
}

// Compile-time interface checks.
var (
	_ domain.SessionRepository = (*FilesystemRepository)(nil)
	_ domain.AuditRepository   = (*FilesystemRepository)(nil)
)

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root:        root,
		sessionsDir: SessionsDir,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// SetSessionsDir overrides the workspace-relative directory session files
// live in. Only a plain directory name is accepted; anything that could
// escape the workspace is ignored.
func (r *FilesystemRepository) SetSessionsDir(dir string) {
	if dir == "" || dir == "." || dir == ".." || dir != filepath.Base(dir) {
		return
	}
	r.sessionsDir = dir
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// Initialize creates the workspace layout.
func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, WorkspaceDir, r.sessionsDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", WorkspaceDir, err)
	}
	return nil
}

// IsInitialized reports whether the workspace layout exists.
func (r *FilesystemRepository) IsInitialized() bool {
	info, err := os.Stat(filepath.Join(r.root, WorkspaceDir))
	return err == nil && info.IsDir()
}

// SessionsPath returns the directory session files live in.
func (r *FilesystemRepository) SessionsPath() string {
	return filepath.Join(r.root, WorkspaceDir, r.sessionsDir)
}

// resolvePath ensures the file stays inside the workspace and prevents
// traversal. subdir may be empty for workspace-root files.
func (r *FilesystemRepository) resolvePath(subdir, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, WorkspaceDir)
	if subdir != "" {
		baseDir = filepath.Join(baseDir, subdir)
	}
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

// GetSession loads and validates one session file. A missing file means
// an unknown session and returns (nil, nil); every other failure is a
// data-access error the caller surfaces unchanged.
func (r *FilesystemRepository) GetSession(ctx context.Context, id domain.SessionID) (*session.Session, error) {
	path, err := r.resolvePath(r.sessionsDir, id.String()+".json")
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	retryer := retry.New[*session.Session](r.retryConfig)

	return retryer.Do(ctx, func(ctx context.Context) (*session.Session, error) {
		// #nosec G304 -- Path is resolved and validated via resolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read session file: %w", err)
		}

		result, err := gojsonschema.Validate(sessionSchemaLoader, gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to validate session file: %w", err)
		}
		if !result.Valid() {
			return nil, fmt.Errorf("session file %s.json failed validation: %s", id, firstValidationError(result))
		}

		var s session.Session
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session: %w", err)
		}

		return &s, nil
	})
}

// ListSessions returns the IDs of all stored session files, in directory
// order.
func (r *FilesystemRepository) ListSessions(ctx context.Context) ([]domain.SessionID, error) {
	entries, err := os.ReadDir(r.SessionsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.SessionID{}, nil
		}
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	ids := []domain.SessionID{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id, err := domain.NewSessionID(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func firstValidationError(result *gojsonschema.Result) string {
	for _, e := range result.Errors() {
		return e.String()
	}
	return "unknown validation error"
}

// Config is the serialized representation of quiz2biz.yaml
type Config struct {
	SessionsDir      string   `yaml:"sessions_dir"`
	Frameworks       []string `yaml:"frameworks"`
	BundleNamePrefix string   `yaml:"bundle_name_prefix"`
}

// LoadConfig reads quiz2biz.yaml, applying defaults when the file is
// absent.
func (r *FilesystemRepository) LoadConfig() (*Config, error) {
	path, err := r.resolvePath("", ConfigFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via resolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes quiz2biz.yaml.
func (r *FilesystemRepository) SaveConfig(cfg *Config) error {
	path, err := r.resolvePath("", ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}
