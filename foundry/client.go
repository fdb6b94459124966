// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/azuretools/agent/agenttools"
)

const defaultPollInterval = time.Second

// Client implements [agenttools.AgentService] using the Azure AI Foundry
// Agents REST API. Use [NewClient] to create one.
type Client struct {
	tp           transport
	pollInterval time.Duration
}

// Verify interface compliance at compile time.
var _ agenttools.AgentService = (*Client)(nil)

// NewClient creates a Foundry [Client] for the given project endpoint.
//
// Without [WithCredential] or [WithAPIKey], a DefaultAzureCredential is
// acquired, which resolves managed identity, workload identity, CLI and
// environment credentials in the standard chain.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint is required", agenttools.ErrInitialization)
	}
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.credential == nil && cfg.apiKey == "" {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("default azure credential: %w", err)
		}
		cfg.credential = cred
	}
	c := &Client{
		tp:           newHTTPTransport(endpoint, cfg),
		pollInterval: cfg.pollInterval,
	}
	if c.pollInterval <= 0 {
		c.pollInterval = defaultPollInterval
	}
	return c, nil
}

// CreateAgent creates an agent definition and returns the service-assigned ID.
func (c *Client) CreateAgent(ctx context.Context, def agenttools.AgentDefinition) (string, error) {
	req := createAgentRequest{
		Model:         def.Model,
		Name:          def.Name,
		Instructions:  def.Instructions,
		Tools:         toWireTools(def.Tools),
		ToolResources: def.ToolResources,
	}
	if req.ToolResources == nil {
		req.ToolResources = map[string]any{}
	}

	var agent agentResource
	if err := c.doJSON(ctx, http.MethodPost, "/assistants", req, &agent); err != nil {
		return "", err
	}
	return agent.ID, nil
}

// CreateThread creates a new conversation thread.
func (c *Client) CreateThread(ctx context.Context) (string, error) {
	var thread threadResource
	if err := c.doJSON(ctx, http.MethodPost, "/threads", map[string]any{}, &thread); err != nil {
		return "", err
	}
	return thread.ID, nil
}

// CreateMessage appends a message to a thread.
func (c *Client) CreateMessage(ctx context.Context, threadID string, role agenttools.Role, content string) error {
	req := createMessageRequest{Role: string(role), Content: content}
	return c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/messages", req, nil)
}

// CreateAndProcessRun starts a run and blocks until the service reports it
// finished, re-reading the run's status at the configured poll interval.
// The context bounds the wait.
func (c *Client) CreateAndProcessRun(ctx context.Context, threadID, agentID string) (*agenttools.RunResult, error) {
	var run runResource
	req := createRunRequest{AssistantID: agentID}
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/runs", req, &run); err != nil {
		return nil, err
	}

	for !isTerminal(run.Status) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
		path := "/threads/" + threadID + "/runs/" + run.ID
		if err := c.doJSON(ctx, http.MethodGet, path, nil, &run); err != nil {
			return nil, err
		}
		slog.DebugContext(ctx, "polled run", "run_id", run.ID, "status", run.Status)
	}

	return &agenttools.RunResult{
		ID:     run.ID,
		Status: agenttools.RunStatus(run.Status),
	}, nil
}

// ListMessages returns the thread's messages exactly as the service orders
// them.
func (c *Client) ListMessages(ctx context.Context, threadID string) ([]agenttools.ThreadMessage, error) {
	var list messageListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+threadID+"/messages", nil, &list); err != nil {
		return nil, err
	}
	messages := make([]agenttools.ThreadMessage, 0, len(list.Data))
	for _, m := range list.Data {
		messages = append(messages, toThreadMessage(m))
	}
	return messages, nil
}

// DeleteAgent deletes an agent definition.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/assistants/"+agentID, nil, nil)
}

// doJSON issues one request and decodes the response body into out, when out
// is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.tp.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", agenttools.ErrService, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse response: %v", agenttools.ErrInvalidResponse, err)
	}
	return nil
}

// isTerminal reports whether the service is done with a run from this
// layer's perspective. requires_action counts as terminal: the adapter's
// tools are declared to the service and there is no client-side tool loop.
func isTerminal(status string) bool {
	switch agenttools.RunStatus(status) {
	case agenttools.RunStatusQueued, agenttools.RunStatusInProgress,
		agenttools.RunStatusCancelling, agenttools.RunStatus(""):
		return false
	}
	return true
}
