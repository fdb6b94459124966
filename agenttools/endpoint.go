// Copyright (c) Microsoft. All rights reserved.

package agenttools

import "context"

// FunctionConfig identifies an HTTP-triggered Azure Function endpoint.
// It is an immutable value object supplied at tool registration time.
type FunctionConfig struct {
	// FunctionURL is the function's HTTP trigger URL.
	FunctionURL string

	// FunctionKey is the function access key, if the trigger requires one.
	FunctionKey string
}

// LogicAppConfig identifies a Logic App workflow trigger endpoint.
// The trigger credential (SAS signature) is carried in the callback URL.
type LogicAppConfig struct {
	// WorkflowURL is the workflow's HTTP trigger callback URL.
	WorkflowURL string
}

// FunctionInvoker performs a single HTTP call against an Azure Function with
// a JSON payload. Implementations live with the embedding application.
type FunctionInvoker interface {
	Invoke(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// WorkflowTrigger performs a single HTTP call against a Logic App workflow
// trigger. Implementations live with the embedding application.
type WorkflowTrigger interface {
	Trigger(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// FunctionInvokerFactory builds a [FunctionInvoker] for one endpoint.
type FunctionInvokerFactory func(FunctionConfig) FunctionInvoker

// WorkflowTriggerFactory builds a [WorkflowTrigger] for one endpoint.
type WorkflowTriggerFactory func(LogicAppConfig) WorkflowTrigger
