// Copyright (c) Microsoft. All rights reserved.

package agenttools

import (
	"context"
	"encoding/json"
)

// ToolFunc is the invocable form of a registered tool. Arguments arrive as
// the raw JSON the agent service produced for the call.
type ToolFunc func(ctx context.Context, args json.RawMessage) (any, error)

// ToolDescriptor is the service-facing definition of a tool: its name, a
// human-readable description, and a JSON Schema for its parameters.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// RegisteredTool pairs a [ToolDescriptor] with its invocable wrapper. It is
// owned by the [ToolRegistry] that created it and lives as long as the
// registry does.
type RegisteredTool struct {
	descriptor ToolDescriptor
	fn         ToolFunc
}

// Descriptor returns the tool's service-facing definition.
func (t *RegisteredTool) Descriptor() ToolDescriptor { return t.descriptor }

// Name returns the tool's name.
func (t *RegisteredTool) Name() string { return t.descriptor.Name }

// Invoke calls the tool's wrapper. For function and workflow tools the
// wrapper never returns an error: collaborator failures come back as the
// value {"error": ..., "status": "failed"}. Custom tools propagate errors.
func (t *RegisteredTool) Invoke(ctx context.Context, args json.RawMessage) (any, error) {
	return t.fn(ctx, args)
}

// payloadArgs is the single argument shape declared for function and
// workflow tools: one required "payload" object.
type payloadArgs struct {
	Payload map[string]any `json:"payload"`
}

func decodePayload(args json.RawMessage) map[string]any {
	var pa payloadArgs
	if len(args) > 0 {
		// Malformed arguments degrade to an empty payload; the collaborator
		// call still happens and its outcome is reported as the tool result.
		_ = json.Unmarshal(args, &pa)
	}
	if pa.Payload == nil {
		pa.Payload = map[string]any{}
	}
	return pa.Payload
}
