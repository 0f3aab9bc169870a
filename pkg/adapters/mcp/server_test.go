package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/macexpect"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCompute_Default(t *testing.T) {
	s := NewServer(macexpect.New())

	resp, err := s.handleCompute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	require.NoError(t, err)

	assert.InDelta(t, 16418.0/729, resp.ExpectedTime, 1e-9)
	assert.InDelta(t, 276485.0/729, resp.ExpectedEnergy, 1e-9)
	assert.Equal(t, 31, resp.TerminalStates)
	assert.Equal(t, 56, resp.MaxElapsed)
}

func TestHandleCompute_Overrides(t *testing.T) {
	s := NewServer(macexpect.New())

	resp, err := s.handleCompute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"overrides": "finished=false,true,true; listen_cost=5",
	})
	require.NoError(t, err)

	// Node 1 alone: idle at slot 4, reply at slot 8.
	assert.InDelta(t, 8.0, resp.ExpectedTime, 1e-9)
	assert.InDelta(t, 5+5+100.0, resp.ExpectedEnergy, 1e-9)
}

func TestHandleCompute_InvalidOverrides(t *testing.T) {
	s := NewServer(macexpect.New())

	_, err := s.handleCompute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"overrides": "gateway_period=0",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidModel)

	_, err = s.handleCompute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"overrides": "max_slots=10000",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidModel)

	_, err = s.handleCompute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"overrides": "no-equals-sign",
	})
	assert.Error(t, err)
}
