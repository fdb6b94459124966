// Copyright (c) Microsoft. All rights reserved.

package agenttools_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azuretools/agent/agenttools"
)

func TestSentinelChains(t *testing.T) {
	assert.ErrorIs(t, agenttools.ErrInitialization, agenttools.ErrAgent)
	assert.ErrorIs(t, agenttools.ErrExecution, agenttools.ErrAgent)
	assert.ErrorIs(t, agenttools.ErrAuth, agenttools.ErrService)
	assert.ErrorIs(t, agenttools.ErrInvalidRequest, agenttools.ErrService)
	assert.ErrorIs(t, agenttools.ErrToolExecution, agenttools.ErrTool)
}

func TestServiceError(t *testing.T) {
	err := &agenttools.ServiceError{
		StatusCode: 401,
		Message:    "token expired",
		Code:       "Unauthorized",
		Err:        agenttools.ErrAuth,
	}

	assert.Equal(t, `service error 401 (Unauthorized): token expired`, err.Error())
	assert.ErrorIs(t, err, agenttools.ErrAuth)
	assert.ErrorIs(t, err, agenttools.ErrService)

	bare := &agenttools.ServiceError{StatusCode: 500, Message: "oops"}
	assert.Equal(t, "service error 500: oops", bare.Error())
}

func TestToolError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &agenttools.ToolError{
		ToolName: "process",
		Message:  "bad arguments",
		Err:      agenttools.ErrToolExecution,
	})

	var toolErr *agenttools.ToolError
	require.True(t, errors.As(wrapped, &toolErr))
	assert.Equal(t, "process", toolErr.ToolName)
	assert.Equal(t, `tool "process": bad arguments`, toolErr.Error())
	assert.ErrorIs(t, wrapped, agenttools.ErrTool)
}
