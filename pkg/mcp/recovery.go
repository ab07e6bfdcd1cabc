package mcp

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"net"
	"strings"
	"time"
)

// Timeouts and reconnect schedule.
const (
	// InitTimeout is the per-server deadline for transport setup plus the
	// initialize handshake.
	InitTimeout = 30 * time.Second

	// CallTimeout is the per-call deadline for call_tool.
	CallTimeout = 120 * time.Second

	// ListToolsTimeout is the deadline for tool discovery.
	ListToolsTimeout = 30 * time.Second

	// ReconnectBase is the first reconnect backoff.
	ReconnectBase = 1 * time.Second

	// ReconnectCap bounds the backoff growth.
	ReconnectCap = 60 * time.Second

	// ReconnectAttempts is the number of reconnect tries before the server
	// is deregistered and marked failed.
	ReconnectAttempts = 5
)

// RecoveryAction determines how the manager handles a call_tool failure.
type RecoveryAction int

const (
	// NoRetry — the session is believed healthy; the error belongs to the
	// caller (bad arguments, slow tool, cancelled context).
	NoRetry RecoveryAction = iota
	// Reconnect — the stream is broken; the session must be rebuilt before
	// any further call can succeed.
	Reconnect
)

// ClassifyError decides whether a call_tool error means the underlying
// stream is broken. Broken streams trigger a reconnect; the failed call is
// never replayed here, the executor's own retry re-issues it.
func ClassifyError(err error) RecoveryAction {
	if err == nil {
		return NoRetry
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NoRetry
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			// A slow server is not a dead server.
			return NoRetry
		}
		return Reconnect
	}

	if isConnectionError(err) {
		return Reconnect
	}

	// JSON-RPC level errors and anything unrecognized stay with the caller.
	return NoRetry
}

// isConnectionError detects transport-level stream failures.
func isConnectionError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, indicator := range []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"broken pipe",
		"no such host",
		"session closed",
		"transport closed",
	} {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}

// reconnectDelay returns the jittered backoff before reconnect attempt n
// (zero-based): base 1s, doubling, capped at 60s, with the actual wait
// drawn from the upper half of the window.
func reconnectDelay(attempt int) time.Duration {
	d := ReconnectBase
	for i := 0; i < attempt && d < ReconnectCap; i++ {
		d *= 2
	}
	if d > ReconnectCap {
		d = ReconnectCap
	}
	half := d / 2
	return half + time.Duration(rand.Int64N(int64(half)+1))
}
