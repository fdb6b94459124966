// Copyright (c) Microsoft. All rights reserved.

// Command assistant demonstrates the full adapter lifecycle: register Azure
// Function and Logic App tools, create a Foundry agent bound to them, run one
// message, and clean the agent up again.
//
// Usage:
//
//	export AZURE_AI_PROJECT_ENDPOINT=https://<project>.services.ai.azure.com/api/projects/<name>
//	export AZURE_AI_MODEL_NAME=gpt-4o                 # optional
//	export DEMO_FUNCTION_URL=https://myapp.azurewebsites.net/api/process
//	export DEMO_FUNCTION_KEY=<key>                    # optional
//	export DEMO_WORKFLOW_URL=https://prod.logic.azure.com/workflows/...
//	go run .
//
// Authentication uses DefaultAzureCredential (az login, managed identity,
// environment credentials).
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/azuretools/agent/agenttools"
	"github.com/azuretools/agent/foundry"
)

// jsonPoster is a minimal collaborator for both tool kinds: one JSON POST to
// a fixed URL. Production embedders supply their own implementations.
type jsonPoster struct {
	url    string
	client *http.Client
}

func (p *jsonPoster) post(ctx context.Context, payload map[string]any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	result := map[string]any{"status_code": resp.StatusCode}
	var parsed map[string]any
	if json.Unmarshal(data, &parsed) == nil {
		result["body"] = parsed
	} else {
		result["body"] = string(data)
	}
	return result, nil
}

func (p *jsonPoster) Invoke(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return p.post(ctx, payload)
}

func (p *jsonPoster) Trigger(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return p.post(ctx, payload)
}

func main() {
	// Load .env file if present (ignored if missing).
	_ = godotenv.Load()

	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := agenttools.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	registry := agenttools.NewToolRegistry(
		agenttools.WithFunctionInvokerFactory(func(fc agenttools.FunctionConfig) agenttools.FunctionInvoker {
			url := fc.FunctionURL
			if fc.FunctionKey != "" {
				url += "?code=" + fc.FunctionKey
			}
			return &jsonPoster{url: url, client: httpClient}
		}),
		agenttools.WithWorkflowTriggerFactory(func(lc agenttools.LogicAppConfig) agenttools.WorkflowTrigger {
			return &jsonPoster{url: lc.WorkflowURL, client: httpClient}
		}),
	)

	if url := os.Getenv("DEMO_FUNCTION_URL"); url != "" {
		err := registry.RegisterFunctionTool("process_data", agenttools.FunctionConfig{
			FunctionURL: url,
			FunctionKey: os.Getenv("DEMO_FUNCTION_KEY"),
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	if url := os.Getenv("DEMO_WORKFLOW_URL"); url != "" {
		err := registry.RegisterLogicAppTool("notify_team", agenttools.LogicAppConfig{WorkflowURL: url})
		if err != nil {
			log.Fatal(err)
		}
	}

	type clockArgs struct {
		Timezone string `json:"timezone,omitempty" jsonschema:"description=IANA timezone name"`
	}
	err := registry.RegisterCustomTool("get_time", "Get the current UTC time.",
		agenttools.GenerateSchema[clockArgs](),
		func(ctx context.Context, args json.RawMessage) (any, error) {
			return map[string]any{"utc": time.Now().UTC().Format(time.RFC3339)}, nil
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	service, err := foundry.NewClient(cfg.ProjectEndpoint)
	if err != nil {
		log.Fatal(err)
	}

	agent, err := agenttools.NewAgent(cfg, service, agenttools.WithRegistry(registry))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("registered tools:", strings.Join(agent.ToolNames(), ", "))

	ctx := context.Background()
	agentID, err := agent.CreateAgent(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := agent.DeleteAgent(ctx, agentID); err != nil {
			log.Printf("delete agent: %v", err)
		}
	}()

	message := "What time is it right now?"
	if len(os.Args) > 1 {
		message = strings.Join(os.Args[1:], " ")
	}

	reply, err := agent.RunAgent(ctx, agentID, message)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reply)
}
