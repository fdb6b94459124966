// Copyright (c) Microsoft. All rights reserved.

package agenttools

import "context"

// Role identifies the author of a thread message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RunStatus is the state the service reports for a run.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusExpired        RunStatus = "expired"
)

// AgentDefinition is the payload sent to the service when creating an agent.
type AgentDefinition struct {
	Model         string
	Name          string
	Instructions  string
	Tools         []ToolDescriptor
	ToolResources map[string]any
}

// RunResult is the service's report of a finished run.
type RunResult struct {
	ID     string
	Status RunStatus
}

// MessageContent is one content part of a thread message. Only text parts
// carry a value this layer reads.
type MessageContent struct {
	Type string
	Text string
}

// ThreadMessage is one message in a server-side conversation thread.
type ThreadMessage struct {
	ID      string
	Role    Role
	Content []MessageContent
}

// Text returns the value of the message's first textual content part, and
// whether one exists.
func (m ThreadMessage) Text() (string, bool) {
	for _, c := range m.Content {
		if c.Type == "text" {
			return c.Text, true
		}
	}
	return "", false
}

// AgentService is the interface for the hosted agent backend. Provider
// packages (e.g. foundry) implement it; the transport and wire schema are
// owned by the remote service and treated as opaque here.
//
// Every method is a single blocking remote call with no retries at this
// layer. CreateAndProcessRun returns only once the service reports the run
// as finished; any waiting or polling belongs to the implementation.
type AgentService interface {
	// CreateAgent creates an agent definition and returns its identifier.
	CreateAgent(ctx context.Context, def AgentDefinition) (string, error)

	// CreateThread creates a new conversation thread and returns its identifier.
	CreateThread(ctx context.Context) (string, error)

	// CreateMessage appends a message to a thread.
	CreateMessage(ctx context.Context, threadID string, role Role, content string) error

	// CreateAndProcessRun starts a run and blocks until it finishes.
	CreateAndProcessRun(ctx context.Context, threadID, agentID string) (*RunResult, error)

	// ListMessages returns the thread's messages in the order the service
	// yields them; no normalization is applied.
	ListMessages(ctx context.Context, threadID string) ([]ThreadMessage, error)

	// DeleteAgent deletes an agent definition.
	DeleteAgent(ctx context.Context, agentID string) error
}
