// Copyright (c) Microsoft. All rights reserved.

package agenttools_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azuretools/agent/agenttools"
)

// stubService is an in-memory AgentService that records every call.
type stubService struct {
	createAgentDef  *agenttools.AgentDefinition
	createAgentID   string
	createAgentErr  error
	createThreadID  string
	createThreadErr error
	threadCreates   int

	postedThread  string
	postedRole    agenttools.Role
	postedContent string

	runThread string
	runAgent  string
	runResult *agenttools.RunResult
	runErr    error

	listedThread string
	messages     []agenttools.ThreadMessage
	listErr      error

	deleted []string
}

func (s *stubService) CreateAgent(ctx context.Context, def agenttools.AgentDefinition) (string, error) {
	s.createAgentDef = &def
	return s.createAgentID, s.createAgentErr
}

func (s *stubService) CreateThread(ctx context.Context) (string, error) {
	s.threadCreates++
	return s.createThreadID, s.createThreadErr
}

func (s *stubService) CreateMessage(ctx context.Context, threadID string, role agenttools.Role, content string) error {
	s.postedThread = threadID
	s.postedRole = role
	s.postedContent = content
	return nil
}

func (s *stubService) CreateAndProcessRun(ctx context.Context, threadID, agentID string) (*agenttools.RunResult, error) {
	s.runThread = threadID
	s.runAgent = agentID
	if s.runResult == nil {
		s.runResult = &agenttools.RunResult{ID: "run_1", Status: agenttools.RunStatusCompleted}
	}
	return s.runResult, s.runErr
}

func (s *stubService) ListMessages(ctx context.Context, threadID string) ([]agenttools.ThreadMessage, error) {
	s.listedThread = threadID
	return s.messages, s.listErr
}

func (s *stubService) DeleteAgent(ctx context.Context, agentID string) error {
	s.deleted = append(s.deleted, agentID)
	return nil
}

func textMessage(role agenttools.Role, text string) agenttools.ThreadMessage {
	return agenttools.ThreadMessage{
		Role:    role,
		Content: []agenttools.MessageContent{{Type: "text", Text: text}},
	}
}

func validConfig() agenttools.AgentConfig {
	return agenttools.AgentConfig{ProjectEndpoint: "https://proj.services.ai.azure.com/api/projects/p1"}
}

func TestNewAgent_RequiresEndpoint(t *testing.T) {
	_, err := agenttools.NewAgent(agenttools.AgentConfig{}, &stubService{})
	require.ErrorIs(t, err, agenttools.ErrInitialization)
}

func TestNewAgent_RequiresService(t *testing.T) {
	_, err := agenttools.NewAgent(validConfig(), nil)
	require.ErrorIs(t, err, agenttools.ErrInitialization)
}

func TestCreateAgent_Defaults(t *testing.T) {
	svc := &stubService{createAgentID: "asst_1"}
	reg := agenttools.NewToolRegistry()
	require.NoError(t, reg.RegisterCustomTool("echo", "Echoes input", nil,
		func(ctx context.Context, args json.RawMessage) (any, error) { return string(args), nil }))

	agent, err := agenttools.NewAgent(validConfig(), svc, agenttools.WithRegistry(reg))
	require.NoError(t, err)

	id, err := agent.CreateAgent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "asst_1", id)

	require.NotNil(t, svc.createAgentDef)
	def := *svc.createAgentDef
	assert.Equal(t, "Azure Tools Agent", def.Name)
	assert.Equal(t, agenttools.DefaultModelName, def.Model)
	assert.Equal(t, agenttools.DefaultInstructions, def.Instructions)
	require.Len(t, def.Tools, 1)
	assert.Equal(t, "echo", def.Tools[0].Name)
	require.NotNil(t, def.ToolResources)
	assert.Empty(t, def.ToolResources)
}

func TestCreateAgent_NameOverrideAndDuplicateDescriptors(t *testing.T) {
	svc := &stubService{createAgentID: "asst_2"}
	reg := agenttools.NewToolRegistry(
		agenttools.WithFunctionInvokerFactory(
			func(agenttools.FunctionConfig) agenttools.FunctionInvoker { return &fakeInvoker{} },
		),
	)
	require.NoError(t, reg.RegisterFunctionTool("a", agenttools.FunctionConfig{}))
	require.NoError(t, reg.RegisterFunctionTool("a", agenttools.FunctionConfig{}))

	agent, err := agenttools.NewAgent(validConfig(), svc, agenttools.WithRegistry(reg))
	require.NoError(t, err)

	_, err = agent.CreateAgent(context.Background(), agenttools.WithAgentName("ops-agent"))
	require.NoError(t, err)
	assert.Equal(t, "ops-agent", svc.createAgentDef.Name)
	assert.Len(t, svc.createAgentDef.Tools, 2, "duplicate descriptors are sent as registered")
}

func TestCreateAgent_ErrorPropagates(t *testing.T) {
	boom := errors.New("create failed")
	svc := &stubService{createAgentErr: boom}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	_, err = agent.CreateAgent(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRunAgent_CreatesThreadAndUsesIt(t *testing.T) {
	svc := &stubService{
		createThreadID: "t1",
		messages: []agenttools.ThreadMessage{
			textMessage(agenttools.RoleAssistant, "All done."),
			textMessage(agenttools.RoleUser, "Do the thing."),
		},
	}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	reply, err := agent.RunAgent(context.Background(), "asst_1", "Do the thing.")
	require.NoError(t, err)

	assert.Equal(t, "All done.", reply)
	assert.Equal(t, 1, svc.threadCreates)
	assert.Equal(t, "t1", svc.postedThread)
	assert.Equal(t, agenttools.RoleUser, svc.postedRole)
	assert.Equal(t, "Do the thing.", svc.postedContent)
	assert.Equal(t, "t1", svc.runThread)
	assert.Equal(t, "asst_1", svc.runAgent)
	assert.Equal(t, "t1", svc.listedThread)
}

func TestRunAgent_ReusesGivenThread(t *testing.T) {
	svc := &stubService{
		messages: []agenttools.ThreadMessage{textMessage(agenttools.RoleAssistant, "hi")},
	}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	_, err = agent.RunAgent(context.Background(), "asst_1", "hello", agenttools.WithThread("t9"))
	require.NoError(t, err)

	assert.Zero(t, svc.threadCreates, "no new thread when one is supplied")
	assert.Equal(t, "t9", svc.postedThread)
	assert.Equal(t, "t9", svc.listedThread)
}

func TestRunAgent_NoAssistantMessage(t *testing.T) {
	svc := &stubService{
		createThreadID: "t1",
		messages: []agenttools.ThreadMessage{
			textMessage(agenttools.RoleUser, "first"),
			textMessage(agenttools.RoleUser, "second"),
		},
	}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	reply, err := agent.RunAgent(context.Background(), "asst_1", "anyone there?")
	require.NoError(t, err)
	assert.Equal(t, "No response generated", reply)
}

func TestRunAgent_SkipsAssistantWithoutText(t *testing.T) {
	svc := &stubService{
		createThreadID: "t1",
		messages: []agenttools.ThreadMessage{
			{Role: agenttools.RoleAssistant, Content: []agenttools.MessageContent{{Type: "image_file"}}},
			textMessage(agenttools.RoleAssistant, "textual answer"),
		},
	}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	reply, err := agent.RunAgent(context.Background(), "asst_1", "go")
	require.NoError(t, err)
	assert.Equal(t, "textual answer", reply)
}

func TestRunAgent_MessageSelection(t *testing.T) {
	messages := []agenttools.ThreadMessage{
		textMessage(agenttools.RoleAssistant, "newest"),
		textMessage(agenttools.RoleUser, "question"),
		textMessage(agenttools.RoleAssistant, "oldest"),
	}

	svc := &stubService{createThreadID: "t1", messages: messages}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)
	reply, err := agent.RunAgent(context.Background(), "a", "q")
	require.NoError(t, err)
	assert.Equal(t, "newest", reply, "default scans in listing order")

	svc = &stubService{createThreadID: "t1", messages: messages}
	agent, err = agenttools.NewAgent(validConfig(), svc,
		agenttools.WithMessageSelection(agenttools.SelectLastListed))
	require.NoError(t, err)
	reply, err = agent.RunAgent(context.Background(), "a", "q")
	require.NoError(t, err)
	assert.Equal(t, "oldest", reply)
}

func TestRunAgent_ThreadCreationErrorPropagates(t *testing.T) {
	boom := errors.New("thread create failed")
	svc := &stubService{createThreadErr: boom}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	_, err = agent.RunAgent(context.Background(), "asst_1", "msg")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, svc.postedThread, "no message posted after thread failure")
}

func TestRunAgent_RunErrorPropagates(t *testing.T) {
	boom := errors.New("run failed")
	svc := &stubService{createThreadID: "t1", runErr: boom}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	_, err = agent.RunAgent(context.Background(), "asst_1", "msg")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, svc.listedThread, "no listing after run failure")
}

func TestDeleteAgent_SingleCall(t *testing.T) {
	svc := &stubService{}
	agent, err := agenttools.NewAgent(validConfig(), svc)
	require.NoError(t, err)

	require.NoError(t, agent.DeleteAgent(context.Background(), "asst_7"))
	assert.Equal(t, []string{"asst_7"}, svc.deleted)
}

func TestToolNames_DelegatesToRegistry(t *testing.T) {
	reg := agenttools.NewToolRegistry()
	require.NoError(t, reg.RegisterCustomTool("one", "d", nil,
		func(ctx context.Context, args json.RawMessage) (any, error) { return nil, nil }))

	agent, err := agenttools.NewAgent(validConfig(), &stubService{}, agenttools.WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, agent.ToolNames())
}
