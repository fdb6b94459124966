// Copyright (c) Microsoft. All rights reserved.

// Package agenttools adapts Azure automation endpoints — HTTP-triggered
// Azure Functions and Logic App workflow triggers — into tools callable by a
// hosted Azure AI Foundry agent, and wraps the agent service's
// create/run/delete lifecycle behind a small session controller.
//
// # Quick Start
//
// Build a tool registry, register endpoints, and drive an agent through a
// provider that implements [AgentService] (see the foundry package):
//
//	registry := agenttools.NewToolRegistry(
//	    agenttools.WithFunctionInvokerFactory(myFunctions),
//	)
//	_ = registry.RegisterFunctionTool("process_data", agenttools.FunctionConfig{
//	    FunctionURL: "https://myapp.azurewebsites.net/api/process",
//	    FunctionKey: os.Getenv("FUNCTION_KEY"),
//	})
//
//	agent, err := agenttools.NewAgent(cfg, svc, agenttools.WithRegistry(registry))
//	agentID, err := agent.CreateAgent(ctx)
//	reply, err := agent.RunAgent(ctx, agentID, "Process this data: [1, 2, 3]")
//
// # Architecture
//
//   - [ToolRegistry]: converts endpoint configurations into invocable wrappers
//     plus the JSON-schema descriptors the agent service consumes.
//   - [FunctionInvoker] and [WorkflowTrigger]: collaborator interfaces for the
//     two outbound call kinds; their HTTP implementations live with the
//     embedding application and are injected as factories.
//   - [Agent]: the session controller. It holds no conversation state of its
//     own; agents, threads, and runs live server-side and are referenced by
//     opaque identifiers.
//   - [AgentService]: interface for the hosted agent backend, implemented by
//     provider packages.
//
// # Error handling
//
// Two policies coexist deliberately. Function and workflow tool wrappers never
// return an error: any collaborator failure becomes the value
// {"error": ..., "status": "failed"} so the agent receives a well-formed tool
// result it can reason about mid-conversation. Controller calls (create, run,
// delete) and custom tools propagate errors to the caller, which owns the
// decision to retry, abort, or clean up. Nothing in this package retries.
package agenttools
