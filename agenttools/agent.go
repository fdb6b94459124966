// Copyright (c) Microsoft. All rights reserved.

package agenttools

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultAgentName is used when [Agent.CreateAgent] is given no name.
const DefaultAgentName = "Azure Tools Agent"

// NoResponseText is returned by [Agent.RunAgent] when the thread contains no
// assistant message with textual content.
const NoResponseText = "No response generated"

// MessageSelection controls which assistant message [Agent.RunAgent] returns
// from the service's message listing. The service owns listing order; this
// layer does not normalize it, it only picks a scan direction.
type MessageSelection int

const (
	// SelectFirstListed returns the first assistant message in the order the
	// service yields. This is the historical behavior of the adapter.
	SelectFirstListed MessageSelection = iota

	// SelectLastListed returns the last assistant message in listing order.
	SelectLastListed
)

// Agent drives the hosted agent lifecycle: create an agent definition bound
// to the registry's tool descriptors, run it against a thread, and delete it.
// It holds no conversation state; agents, threads, and runs live server-side
// and are referenced by the opaque identifiers the service assigns.
//
// Failures from the service propagate to the caller untouched: no retries,
// no conversion, no partial-failure cleanup. A caller that created an agent
// and then failed mid-interaction owns the [Agent.DeleteAgent] call.
type Agent struct {
	cfg       AgentConfig
	svc       AgentService
	registry  *ToolRegistry
	selection MessageSelection
}

// AgentOption configures an [Agent] via [NewAgent].
type AgentOption func(*Agent)

// WithRegistry attaches a caller-owned [ToolRegistry] instead of the empty
// default.
func WithRegistry(r *ToolRegistry) AgentOption {
	return func(a *Agent) { a.registry = r }
}

// WithMessageSelection sets which assistant message RunAgent extracts from
// the listing. Defaults to [SelectFirstListed].
func WithMessageSelection(s MessageSelection) AgentOption {
	return func(a *Agent) { a.selection = s }
}

// NewAgent creates the session controller for one agent service. The
// configuration is validated once here and treated as immutable afterwards.
func NewAgent(cfg AgentConfig, svc AgentService, opts ...AgentOption) (*Agent, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("%w: nil agent service", ErrInitialization)
	}
	a := &Agent{cfg: cfg, svc: svc}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = NewToolRegistry()
	}
	slog.Info("initialized agent controller", "endpoint", cfg.ProjectEndpoint, "model", cfg.ModelName)
	return a, nil
}

// Registry returns the controller's tool registry.
func (a *Agent) Registry() *ToolRegistry { return a.registry }

// ToolNames returns the names of all registered tools.
func (a *Agent) ToolNames() []string { return a.registry.ToolNames() }

// CreateOption configures a single [Agent.CreateAgent] call.
type CreateOption func(*createConfig)

type createConfig struct {
	name string
}

// WithAgentName overrides the default agent display name.
func WithAgentName(name string) CreateOption {
	return func(c *createConfig) { c.name = name }
}

// CreateAgent creates a remote agent definition bound to the configured
// model, instructions, and every descriptor currently in the registry, and
// returns the service-assigned identifier.
func (a *Agent) CreateAgent(ctx context.Context, opts ...CreateOption) (string, error) {
	cc := &createConfig{}
	for _, opt := range opts {
		opt(cc)
	}
	name := cc.name
	if name == "" {
		name = DefaultAgentName
	}

	slog.InfoContext(ctx, "creating agent", "name", name, "model", a.cfg.ModelName)

	id, err := a.svc.CreateAgent(ctx, AgentDefinition{
		Model:         a.cfg.ModelName,
		Name:          name,
		Instructions:  a.cfg.Instructions,
		Tools:         a.registry.Descriptors(),
		ToolResources: map[string]any{},
	})
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "agent created", "agent_id", id)
	return id, nil
}

// RunOption configures a single [Agent.RunAgent] call.
type RunOption func(*runConfig)

type runConfig struct {
	threadID string
}

// WithThread reuses an existing thread for conversation continuity instead
// of creating a fresh one.
func WithThread(threadID string) RunOption {
	return func(c *runConfig) { c.threadID = threadID }
}

// RunAgent posts the user message to a thread, runs the agent against it,
// and returns the text of the selected assistant message. Without a
// [WithThread] option a new thread is created and used for the whole call.
// If the listing holds no assistant message with textual content, the
// literal [NoResponseText] is returned.
func (a *Agent) RunAgent(ctx context.Context, agentID, userMessage string, opts ...RunOption) (string, error) {
	rc := &runConfig{}
	for _, opt := range opts {
		opt(rc)
	}

	slog.InfoContext(ctx, "running agent", "agent_id", agentID, "thread_id", rc.threadID)

	threadID := rc.threadID
	if threadID == "" {
		id, err := a.svc.CreateThread(ctx)
		if err != nil {
			return "", err
		}
		threadID = id
		slog.InfoContext(ctx, "created thread", "thread_id", threadID)
	}

	if err := a.svc.CreateMessage(ctx, threadID, RoleUser, userMessage); err != nil {
		return "", err
	}

	run, err := a.svc.CreateAndProcessRun(ctx, threadID, agentID)
	if err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "agent run finished", "run_id", run.ID, "status", run.Status)

	messages, err := a.svc.ListMessages(ctx, threadID)
	if err != nil {
		return "", err
	}

	if text, ok := selectAssistantText(messages, a.selection); ok {
		return text, nil
	}
	return NoResponseText, nil
}

// DeleteAgent deletes the remote agent definition. Threads and runs created
// against it are not cleaned up.
func (a *Agent) DeleteAgent(ctx context.Context, agentID string) error {
	if err := a.svc.DeleteAgent(ctx, agentID); err != nil {
		return err
	}
	slog.InfoContext(ctx, "deleted agent", "agent_id", agentID)
	return nil
}

// selectAssistantText scans messages in listing order (or reverse, for
// SelectLastListed) and returns the first assistant message exposing text.
func selectAssistantText(messages []ThreadMessage, sel MessageSelection) (string, bool) {
	if sel == SelectLastListed {
		for i := len(messages) - 1; i >= 0; i-- {
			if messages[i].Role == RoleAssistant {
				if text, ok := messages[i].Text(); ok {
					return text, true
				}
			}
		}
		return "", false
	}
	for _, m := range messages {
		if m.Role == RoleAssistant {
			if text, ok := m.Text(); ok {
				return text, true
			}
		}
	}
	return "", false
}
