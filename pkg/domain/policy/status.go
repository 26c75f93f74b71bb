package policy

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Status is the lifecycle state of a policy document.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusInReview   Status = "in_review"
	StatusApproved   Status = "approved"
	StatusDeprecated Status = "deprecated"
)

// IsValid returns true for a recognised status.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusInReview, StatusApproved, StatusDeprecated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Lifecycle events.
const (
	EventSubmit    = "submit"
	EventApprove   = "approve"
	EventReject    = "reject"
	EventRevise    = "revise"
	EventDeprecate = "deprecate"
)

// DocumentStateMachine guards status transitions for one policy document.
type DocumentStateMachine struct {
	interpreter *statekit.Interpreter[documentContext]
}

type documentContext struct {
	DocumentID string
}

// NewDocumentStateMachine builds the lifecycle machine starting from the
// given status. Generated documents always start at draft.
func NewDocumentStateMachine(initial Status, documentID string) (*DocumentStateMachine, error) {
	if !initial.IsValid() {
		return nil, fmt.Errorf("invalid initial status: %s", initial)
	}

	builder := statekit.NewMachine[documentContext]("policy-document").
		WithInitial(statekit.StateID(initial)).
		WithContext(documentContext{DocumentID: documentID})

	builder.State(statekit.StateID(StatusDraft)).
		On(EventSubmit).Target(statekit.StateID(StatusInReview)).
		Done()

	builder.State(statekit.StateID(StatusInReview)).
		On(EventApprove).Target(statekit.StateID(StatusApproved)).
		On(EventReject).Target(statekit.StateID(StatusDraft)).
		Done()

	builder.State(statekit.StateID(StatusApproved)).
		On(EventRevise).Target(statekit.StateID(StatusDraft)).
		On(EventDeprecate).Target(statekit.StateID(StatusDeprecated)).
		Done()

	builder.State(statekit.StateID(StatusDeprecated)).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &DocumentStateMachine{interpreter: interpreter}, nil
}

// Transition attempts to apply a lifecycle event. An event that is not
// valid for the current status returns an error and leaves it unchanged.
func (sm *DocumentStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before == after {
		return fmt.Errorf("the action '%s' is not allowed while the document is '%s'", event, before)
	}
	return nil
}

// Current returns the machine's current status.
func (sm *DocumentStateMachine) Current() Status {
	return Status(sm.interpreter.State().Value)
}
