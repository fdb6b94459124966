// Copyright (c) Microsoft. All rights reserved.

package agenttools

import (
	"fmt"
	"os"
	"strings"
)

// Defaults applied by [AgentConfig.withDefaults].
const (
	DefaultModelName    = "gpt-4"
	DefaultInstructions = "You are a helpful AI assistant with access to Azure tools."
)

// AgentConfig configures an [Agent]. It is treated as immutable once passed
// to [NewAgent].
type AgentConfig struct {
	// ProjectEndpoint is the Azure AI Foundry project endpoint URL. Required.
	ProjectEndpoint string

	// UseManagedIdentity selects Azure Managed Identity authentication for
	// the agent service. Defaults to true; provider packages consult it when
	// no explicit credential is supplied.
	UseManagedIdentity bool

	// ModelName is the model deployment to use (e.g. "gpt-4", "gpt-35-turbo").
	ModelName string

	// Instructions are the system instructions for the agent.
	Instructions string
}

// ConfigFromEnv builds an [AgentConfig] from environment variables:
//
//	AZURE_AI_PROJECT_ENDPOINT     project endpoint URL (required)
//	AZURE_USE_MANAGED_IDENTITY    "false"/"0" to disable, anything else enables
//	AZURE_AI_MODEL_NAME           model deployment name
//	AZURE_AI_INSTRUCTIONS         system instructions
//
// Unset optional variables fall back to package defaults. Samples load a
// .env file first; this function only reads the process environment.
func ConfigFromEnv() AgentConfig {
	cfg := AgentConfig{
		ProjectEndpoint:    os.Getenv("AZURE_AI_PROJECT_ENDPOINT"),
		UseManagedIdentity: true,
		ModelName:          os.Getenv("AZURE_AI_MODEL_NAME"),
		Instructions:       os.Getenv("AZURE_AI_INSTRUCTIONS"),
	}
	switch strings.ToLower(os.Getenv("AZURE_USE_MANAGED_IDENTITY")) {
	case "false", "0", "no":
		cfg.UseManagedIdentity = false
	}
	return cfg.withDefaults()
}

// Validate checks the configuration invariants.
func (c AgentConfig) Validate() error {
	if c.ProjectEndpoint == "" {
		return fmt.Errorf("%w: project endpoint is required", ErrInitialization)
	}
	return nil
}

func (c AgentConfig) withDefaults() AgentConfig {
	if c.ModelName == "" {
		c.ModelName = DefaultModelName
	}
	if c.Instructions == "" {
		c.Instructions = DefaultInstructions
	}
	return c
}
