package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SessionChange reports a changed session file.
type SessionChange struct {
	SessionID  string
	Path       string
	ChangeType string // "create", "write", "remove", "rename"
}

// SessionWatcher watches a session directory for changed session files
// using fsnotify and reports debounced changes per session.
type SessionWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(SessionChange)
}

// NewSessionWatcher creates a watcher over session JSON files.
func NewSessionWatcher(debounce time.Duration, onChange func(SessionChange)) (*SessionWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &SessionWatcher{
		watcher:  w,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Watch adds the sessions directory to the watcher.
func (w *SessionWatcher) Watch(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *SessionWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := newChangeDebouncer(w.debounce, func(change SessionChange) {
		if w.onChange != nil {
			w.onChange(change)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			change, relevant := classify(event)
			if !relevant {
				continue
			}
			debouncer.Observe(change)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// classify filters to session JSON files and maps fsnotify ops onto
// change types.
func classify(event fsnotify.Event) (SessionChange, bool) {
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, ".json") {
		return SessionChange{}, false
	}

	changeType := ""
	switch {
	case event.Op&fsnotify.Create != 0:
		changeType = "create"
	case event.Op&fsnotify.Write != 0:
		changeType = "write"
	case event.Op&fsnotify.Remove != 0:
		changeType = "remove"
	case event.Op&fsnotify.Rename != 0:
		changeType = "rename"
	default:
		return SessionChange{}, false
	}

	return SessionChange{
		SessionID:  strings.TrimSuffix(name, ".json"),
		Path:       event.Name,
		ChangeType: changeType,
	}, true
}
