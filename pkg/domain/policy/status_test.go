package policy

import "testing"

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusDraft, true},
		{StatusInReview, true},
		{StatusApproved, true},
		{StatusDeprecated, true},
		{Status("published"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestDocumentStateMachine_Lifecycle(t *testing.T) {
	sm, err := NewDocumentStateMachine(StatusDraft, "doc-1")
	if err != nil {
		t.Fatalf("NewDocumentStateMachine: %v", err)
	}

	steps := []struct {
		event string
		want  Status
	}{
		{EventSubmit, StatusInReview},
		{EventReject, StatusDraft},
		{EventSubmit, StatusInReview},
		{EventApprove, StatusApproved},
		{EventRevise, StatusDraft},
		{EventSubmit, StatusInReview},
		{EventApprove, StatusApproved},
		{EventDeprecate, StatusDeprecated},
	}

	for _, s := range steps {
		if err := sm.Transition(s.event); err != nil {
			t.Fatalf("Transition(%s): %v", s.event, err)
		}
		if got := sm.Current(); got != s.want {
			t.Fatalf("after %s: status = %s, want %s", s.event, got, s.want)
		}
	}
}

func TestDocumentStateMachine_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		initial Status
		event   string
	}{
		{"approve from draft", StatusDraft, EventApprove},
		{"deprecate from draft", StatusDraft, EventDeprecate},
		{"submit from approved", StatusApproved, EventSubmit},
		{"anything from deprecated", StatusDeprecated, EventSubmit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, err := NewDocumentStateMachine(tt.initial, "doc-1")
			if err != nil {
				t.Fatalf("NewDocumentStateMachine: %v", err)
			}
			if err := sm.Transition(tt.event); err == nil {
				t.Errorf("expected error for %s from %s", tt.event, tt.initial)
			}
			if got := sm.Current(); got != tt.initial {
				t.Errorf("status changed to %s on invalid transition", got)
			}
		})
	}
}

func TestNewDocumentStateMachine_InvalidInitial(t *testing.T) {
	if _, err := NewDocumentStateMachine(Status("bogus"), "doc-1"); err == nil {
		t.Error("expected error for invalid initial status")
	}
}
