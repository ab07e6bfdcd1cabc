package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKillSwitchLifecycle(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/kill", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status KillStatusResponse
	h.decode(rec, &status)
	assert.False(t, status.Triggered)

	rec = h.do(http.MethodPost, "/api/v1/kill", KillRequest{Reason: "agent is deleting the wrong files"})
	require.Equal(t, http.StatusOK, rec.Code)
	h.decode(rec, &status)
	assert.True(t, status.Triggered)
	assert.Equal(t, "agent is deleting the wrong files", status.Reason)
	require.NotNil(t, status.TriggeredAt)

	triggered, reason := h.kill.Triggered()
	assert.True(t, triggered)
	assert.Equal(t, "agent is deleting the wrong files", reason)

	rec = h.do(http.MethodPost, "/api/v1/kill/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	h.decode(rec, &status)
	assert.False(t, status.Triggered)

	triggered, _ = h.kill.Triggered()
	assert.False(t, triggered)
}

func TestTriggerKillDefaultReason(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/kill", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status KillStatusResponse
	h.decode(rec, &status)
	assert.True(t, status.Triggered)
	assert.Equal(t, "manual kill switch", status.Reason)
}
