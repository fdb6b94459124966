// Copyright (c) Microsoft. All rights reserved.

package agenttools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// ToolRegistry converts endpoint configurations into invocable tool wrappers
// and the descriptors the agent service consumes. Construct one with
// [NewToolRegistry] and inject the collaborator factories for the call kinds
// you intend to register.
//
// Re-registering a name silently replaces the wrapper but appends another
// descriptor, so [ToolRegistry.Descriptors] can grow longer than
// [ToolRegistry.ToolNames]. This mirrors the service-facing contract the
// adapter has always had; embedders that re-register should be aware the
// descriptor list is not deduplicated.
//
// Registration is not synchronized; serialize concurrent registration in the
// embedding application.
type ToolRegistry struct {
	functions   FunctionInvokerFactory
	workflows   WorkflowTriggerFactory
	tools       map[string]*RegisteredTool
	order       []string
	descriptors []ToolDescriptor
}

// RegistryOption configures a [ToolRegistry] via [NewToolRegistry].
type RegistryOption func(*ToolRegistry)

// WithFunctionInvokerFactory injects the factory used to build a
// [FunctionInvoker] for each registered function tool.
func WithFunctionInvokerFactory(f FunctionInvokerFactory) RegistryOption {
	return func(r *ToolRegistry) { r.functions = f }
}

// WithWorkflowTriggerFactory injects the factory used to build a
// [WorkflowTrigger] for each registered Logic App tool.
func WithWorkflowTriggerFactory(f WorkflowTriggerFactory) RegistryOption {
	return func(r *ToolRegistry) { r.workflows = f }
}

// NewToolRegistry creates an empty registry.
func NewToolRegistry(opts ...RegistryOption) *ToolRegistry {
	r := &ToolRegistry{
		tools: make(map[string]*RegisteredTool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterOption configures a single registration call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	description string
}

// WithToolDescription overrides the synthesized tool description.
func WithToolDescription(desc string) RegisterOption {
	return func(c *registerConfig) { c.description = desc }
}

// RegisterFunctionTool registers an Azure Function endpoint as a tool. The
// wrapper delegates the tool's "payload" argument to the injected
// [FunctionInvoker]; any failure from the invoker is converted into the
// result value {"error": ..., "status": "failed"} and never surfaces as a
// Go error.
func (r *ToolRegistry) RegisterFunctionTool(name string, cfg FunctionConfig, opts ...RegisterOption) error {
	if r.functions == nil {
		return &ToolError{ToolName: name, Message: "no function invoker factory configured", Err: ErrInitialization}
	}
	rc := applyRegisterOptions(opts)
	invoker := r.functions(cfg)

	fn := func(ctx context.Context, args json.RawMessage) (any, error) {
		slog.InfoContext(ctx, "invoking Azure Function tool", "tool", name)
		result, err := invoker.Invoke(ctx, decodePayload(args))
		if err != nil {
			slog.ErrorContext(ctx, "Azure Function tool failed", "tool", name, "error", err)
			return map[string]any{"error": err.Error(), "status": "failed"}, nil
		}
		slog.InfoContext(ctx, "Azure Function tool executed successfully", "tool", name)
		return result, nil
	}

	desc := rc.description
	if desc == "" {
		desc = fmt.Sprintf("Azure Function tool: %s - Invokes Azure Function at %s", name, cfg.FunctionURL)
	}
	r.register(name, ToolDescriptor{
		Name:        name,
		Description: desc,
		Parameters:  payloadSchema("Azure Function"),
	}, fn)

	slog.Info("registered Azure Function tool", "tool", name, "url", cfg.FunctionURL)
	return nil
}

// RegisterLogicAppTool registers a Logic App workflow trigger as a tool.
// The wrapper contract is identical to [ToolRegistry.RegisterFunctionTool],
// delegating to the injected [WorkflowTrigger].
func (r *ToolRegistry) RegisterLogicAppTool(name string, cfg LogicAppConfig, opts ...RegisterOption) error {
	if r.workflows == nil {
		return &ToolError{ToolName: name, Message: "no workflow trigger factory configured", Err: ErrInitialization}
	}
	rc := applyRegisterOptions(opts)
	trigger := r.workflows(cfg)

	fn := func(ctx context.Context, args json.RawMessage) (any, error) {
		slog.InfoContext(ctx, "invoking Logic App tool", "tool", name)
		result, err := trigger.Trigger(ctx, decodePayload(args))
		if err != nil {
			slog.ErrorContext(ctx, "Logic App tool failed", "tool", name, "error", err)
			return map[string]any{"error": err.Error(), "status": "failed"}, nil
		}
		slog.InfoContext(ctx, "Logic App tool executed successfully", "tool", name)
		return result, nil
	}

	desc := rc.description
	if desc == "" {
		desc = fmt.Sprintf("Logic App workflow tool: %s - Triggers workflow at %s", name, cfg.WorkflowURL)
	}
	r.register(name, ToolDescriptor{
		Name:        name,
		Description: desc,
		Parameters:  payloadSchema("Logic App workflow"),
	}, fn)

	slog.Info("registered Logic App tool", "tool", name, "url", cfg.WorkflowURL)
	return nil
}

// RegisterCustomTool registers an arbitrary local callable. The description
// and parameter schema are taken verbatim; no schema validation is performed.
// Unlike the built-in kinds, custom tool errors propagate to the invoker
// unconverted.
func (r *ToolRegistry) RegisterCustomTool(name, description string, parameters json.RawMessage, fn ToolFunc) error {
	if fn == nil {
		return &ToolError{ToolName: name, Message: "nil tool function", Err: ErrInitialization}
	}
	r.register(name, ToolDescriptor{
		Name:        name,
		Description: description,
		Parameters:  parameters,
	}, fn)

	slog.Info("registered custom tool", "tool", name)
	return nil
}

// register stores the wrapper and appends the descriptor. The wrapper map
// overwrites on name collision; the descriptor list always appends.
func (r *ToolRegistry) register(name string, desc ToolDescriptor, fn ToolFunc) {
	if _, exists := r.tools[name]; exists {
		slog.Debug("re-registering tool, replacing wrapper", "tool", name)
	} else {
		r.order = append(r.order, name)
	}
	r.tools[name] = &RegisteredTool{descriptor: desc, fn: fn}
	r.descriptors = append(r.descriptors, desc)
}

// ToolNames returns the registered tool names in insertion order of each
// name's first registration.
func (r *ToolRegistry) ToolNames() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Descriptors returns every descriptor ever registered, in registration
// order, duplicates included.
func (r *ToolRegistry) Descriptors() []ToolDescriptor {
	descs := make([]ToolDescriptor, len(r.descriptors))
	copy(descs, r.descriptors)
	return descs
}

// Tool returns the current wrapper registered under name, for local testing
// and inspection.
func (r *ToolRegistry) Tool(name string) (*RegisteredTool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

func applyRegisterOptions(opts []RegisterOption) *registerConfig {
	rc := &registerConfig{}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}
