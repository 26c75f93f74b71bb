package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/quiz2biz/quiz2biz/pkg/domain"
)

// RecordEvent appends one event to the JSONL audit log.
func (r *FilesystemRepository) RecordEvent(event domain.Event) error {
	path, err := r.resolvePath("", EventsFile)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	data = append(data, '\n')

	// #nosec G304 -- Path is resolved and validated via resolvePath
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LoadEvents reads the audit log in append order. A missing log file
// means no events yet.
func (r *FilesystemRepository) LoadEvents() ([]domain.Event, error) {
	path, err := r.resolvePath("", EventsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via resolvePath
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Event{}, nil
		}
		return nil, fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	events := []domain.Event{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e domain.Event
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	return events, nil
}
