// Copyright (c) Microsoft. All rights reserved.

// Package foundry implements [agenttools.AgentService] against the Azure AI
// Foundry Agents REST API.
//
// Create a client with [NewClient] and hand it to the session controller:
//
//	client, err := foundry.NewClient(cfg.ProjectEndpoint)
//	agent, err := agenttools.NewAgent(cfg, client)
//
// Authentication uses Azure Entra ID bearer tokens. With no options,
// [NewClient] acquires a DefaultAzureCredential; pass [WithCredential] to
// supply your own token credential or [WithAPIKey] to use key-based access.
package foundry
