package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
)

const validSessionJSON = `{
  "id": "sess-1",
  "readinessScore": 58.0,
  "answers": [
    {
      "coverage": 0.3,
      "answerValue": "Partially",
      "question": {
        "id": "q-1",
        "text": "Is data at rest encrypted?",
        "severityWeight": 0.8,
        "bestPractice": "Encrypt all data at rest",
        "standardRefs": "[\"ISO 27001 A.8.24\"]",
        "dimension": {"key": "arch_sec", "name": "Security Architecture"}
      }
    },
    {
      "question": {
        "id": "q-2",
        "text": "Is there a training budget?",
        "dimension": {"key": "people_change", "name": "People & Change"}
      }
    }
  ]
}`

func newTestRepo(t *testing.T) *FilesystemRepository {
	t.Helper()
	repo := NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return repo
}

func writeSessionFile(t *testing.T, repo *FilesystemRepository, name, content string) {
	t.Helper()
	path := filepath.Join(repo.SessionsPath(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestInitialize(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())

	if repo.IsInitialized() {
		t.Error("fresh workspace reports initialized")
	}
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !repo.IsInitialized() {
		t.Error("workspace not initialized after Initialize")
	}

	info, err := os.Stat(repo.SessionsPath())
	if err != nil || !info.IsDir() {
		t.Errorf("sessions directory missing: %v", err)
	}
}

func TestGetSession(t *testing.T) {
	repo := newTestRepo(t)
	writeSessionFile(t, repo, "sess-1.json", validSessionJSON)

	s, err := repo.GetSession(context.Background(), domain.MustSessionID("sess-1"))
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if s == nil {
		t.Fatal("GetSession returned nil for existing session")
	}

	if s.ID != "sess-1" {
		t.Errorf("ID = %s", s.ID)
	}
	if s.ReadinessScore != 58.0 {
		t.Errorf("ReadinessScore = %v", s.ReadinessScore)
	}
	if len(s.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(s.Answers))
	}
	if got := s.Answers[0].CoverageOrZero(); got != 0.3 {
		t.Errorf("answers[0] coverage = %v, want 0.3", got)
	}
	// The second answer has no coverage or severity; defaults apply.
	if got := s.Answers[1].CoverageOrZero(); got != 0 {
		t.Errorf("answers[1] coverage = %v, want 0", got)
	}
	if got := s.Answers[1].Question.SeverityOrDefault(); got != 0.5 {
		t.Errorf("answers[1] severity = %v, want 0.5", got)
	}
}

func TestGetSession_Missing(t *testing.T) {
	repo := newTestRepo(t)

	s, err := repo.GetSession(context.Background(), domain.MustSessionID("nope"))
	if err != nil {
		t.Fatalf("expected no error for missing session, got %v", err)
	}
	if s != nil {
		t.Error("expected nil session for missing file")
	}
}

func TestGetSession_InvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"missing id", `{"answers": []}`},
		{"missing answers", `{"id": "sess-bad"}`},
		{"coverage out of range", `{"id": "sess-bad", "answers": [{"coverage": 1.5, "question": {"id": "q", "dimension": {"key": "arch_sec"}}}]}`},
		{"question without dimension", `{"id": "sess-bad", "answers": [{"question": {"id": "q"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			writeSessionFile(t, repo, "sess-bad.json", tt.content)

			if _, err := repo.GetSession(context.Background(), domain.MustSessionID("sess-bad")); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestListSessions(t *testing.T) {
	repo := newTestRepo(t)

	ids, err := repo.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty list, got %d", len(ids))
	}

	writeSessionFile(t, repo, "sess-1.json", validSessionJSON)
	writeSessionFile(t, repo, "sess-2.json", validSessionJSON)
	writeSessionFile(t, repo, "notes.txt", "ignored")

	ids, err = repo.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d sessions, want 2", len(ids))
	}
}

func TestListSessions_Uninitialized(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())

	ids, err := repo.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("expected no error for missing sessions dir, got %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty list, got %d", len(ids))
	}
}

func TestResolvePath_RejectsTraversal(t *testing.T) {
	repo := newTestRepo(t)

	tests := []string{
		"../outside.json",
		"../../etc/passwd",
		"nested/inner.json",
		"",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := repo.resolvePath(SessionsDir, name); err == nil {
				t.Errorf("resolvePath(%q) accepted an invalid path", name)
			}
		})
	}
}

func TestConfig_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	cfg, err := repo.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig on empty workspace: %v", err)
	}
	if len(cfg.Frameworks) != 0 || cfg.BundleNamePrefix != "" {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}

	want := &Config{
		SessionsDir:      "answers",
		Frameworks:       []string{"ISO 27001", "NIST CSF"},
		BundleNamePrefix: "acme",
	}
	if err := repo.SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := repo.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.BundleNamePrefix != want.BundleNamePrefix {
		t.Errorf("BundleNamePrefix = %s, want %s", got.BundleNamePrefix, want.BundleNamePrefix)
	}
	if len(got.Frameworks) != 2 || got.Frameworks[0] != "ISO 27001" {
		t.Errorf("Frameworks = %v", got.Frameworks)
	}
	if got.SessionsDir != "answers" {
		t.Errorf("SessionsDir = %s, want answers", got.SessionsDir)
	}
}

func TestSetSessionsDir(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	repo.SetSessionsDir("answers")
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if filepath.Base(repo.SessionsPath()) != "answers" {
		t.Fatalf("SessionsPath = %s, want an 'answers' directory", repo.SessionsPath())
	}

	writeSessionFile(t, repo, "sess-1.json", validSessionJSON)
	sess, err := repo.GetSession(context.Background(), domain.MustSessionID("sess-1"))
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess == nil || sess.ID != "sess-1" {
		t.Fatal("session not loaded from the configured directory")
	}
}

func TestSetSessionsDir_RejectsUnsafeNames(t *testing.T) {
	repo := newTestRepo(t)
	want := repo.SessionsPath()

	for _, dir := range []string{"", ".", "..", "../evil", "a/b", "/abs"} {
		repo.SetSessionsDir(dir)
		if got := repo.SessionsPath(); got != want {
			t.Errorf("SetSessionsDir(%q) changed the path to %s", dir, got)
		}
	}
}

func TestAuditLog_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	events, err := repo.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents on empty log: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty log, got %d events", len(events))
	}

	first := domain.Event{
		ID:        "ev-1",
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Action:    "prompts.generated",
		Actor:     "system",
		Metadata:  map[string]interface{}{"session_id": "sess-1"},
	}
	first.Hash = first.CalculateHash()

	second := domain.Event{
		ID:        "ev-2",
		Timestamp: time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC),
		Action:    "policypack.generated",
		Actor:     "system",
		PrevHash:  first.Hash,
	}
	second.Hash = second.CalculateHash()

	for _, e := range []domain.Event{first, second} {
		if err := repo.RecordEvent(e); err != nil {
			t.Fatalf("RecordEvent: %v", err)
		}
	}

	events, err = repo.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].ID != "ev-1" || events[1].ID != "ev-2" {
		t.Errorf("events out of append order: %s, %s", events[0].ID, events[1].ID)
	}
	if events[1].PrevHash != events[0].Hash {
		t.Error("hash chain broken across reload")
	}
	if events[0].CalculateHash() != events[0].Hash {
		t.Error("event hash does not verify after reload")
	}
}
