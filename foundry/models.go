// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"encoding/json"

	"github.com/azuretools/agent/agenttools"
)

// Wire representations of the Agents REST resources. Only the fields this
// adapter consumes are declared; everything else passes through untouched.

type toolDefinition struct {
	Type     string             `json:"type"`
	Function functionDefinition `json:"function"`
}

type functionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

type createAgentRequest struct {
	Model         string           `json:"model"`
	Name          string           `json:"name,omitempty"`
	Instructions  string           `json:"instructions,omitempty"`
	Tools         []toolDefinition `json:"tools"`
	ToolResources map[string]any   `json:"tool_resources"`
}

type agentResource struct {
	ID string `json:"id"`
}

type threadResource struct {
	ID string `json:"id"`
}

type createMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type createRunRequest struct {
	AssistantID string `json:"assistant_id"`
}

type runResource struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	LastError *runError `json:"last_error"`
}

type runError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageListResponse struct {
	Data []messageResource `json:"data"`
}

type messageResource struct {
	ID      string        `json:"id"`
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type string    `json:"type"`
	Text *textPart `json:"text"`
}

type textPart struct {
	Value string `json:"value"`
}

func toWireTools(descs []agenttools.ToolDescriptor) []toolDefinition {
	tools := make([]toolDefinition, 0, len(descs))
	for _, d := range descs {
		tools = append(tools, toolDefinition{
			Type: "function",
			Function: functionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.Parameters,
			},
		})
	}
	return tools
}

func toThreadMessage(m messageResource) agenttools.ThreadMessage {
	msg := agenttools.ThreadMessage{
		ID:   m.ID,
		Role: agenttools.Role(m.Role),
	}
	for _, c := range m.Content {
		part := agenttools.MessageContent{Type: c.Type}
		if c.Text != nil {
			part.Text = c.Text.Value
		}
		msg.Content = append(msg.Content, part)
	}
	return msg
}
