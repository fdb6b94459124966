// Copyright (c) Microsoft. All rights reserved.

package agenttools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema builds the fixed parameter schema used by function and
// workflow tools: an object with a single required "payload" object property.
func payloadSchema(target string) json.RawMessage {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"payload": map[string]any{
				"type":        "object",
				"description": "JSON payload to send to the " + target,
			},
		},
		"required": []string{"payload"},
	}
	b, _ := json.Marshal(schema)
	return b
}

// GenerateSchema builds a JSON Schema for a custom tool's parameters from a
// Go struct type. Use json tags for field names and jsonschema tags for
// metadata:
//
//	type TicketArgs struct {
//	    Title    string `json:"title" jsonschema:"description=Ticket title"`
//	    Severity int    `json:"severity,omitempty"`
//	}
//
// Fields without omitempty are marked required.
//
//	reg.RegisterCustomTool("file_ticket", "Files a ticket",
//	    agenttools.GenerateSchema[TicketArgs](), fileTicket)
func GenerateSchema[T any]() json.RawMessage {
	r := &jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	var zero T
	s := r.Reflect(&zero)
	// Tool parameter schemas are plain objects; the draft URI and ID only
	// add noise for the agent service.
	s.Version = ""
	s.ID = ""
	b, _ := json.Marshal(s)
	return b
}

// ValidateArguments checks a prospective argument document against the
// descriptor's parameter schema. It is a convenience for embedding
// applications and tests; nothing in the registry or controller calls it —
// registration and invocation pass schemas and arguments through unvalidated.
func (d ToolDescriptor) ValidateArguments(args json.RawMessage) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(d.Parameters),
		gojsonschema.NewBytesLoader(args),
	)
	if err != nil {
		return &ToolError{ToolName: d.Name, Message: "validate arguments: " + err.Error(), Err: ErrTool}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return &ToolError{
			ToolName: d.Name,
			Message:  fmt.Sprintf("arguments do not match schema: %s", strings.Join(msgs, "; ")),
			Err:      ErrTool,
		}
	}
	return nil
}
