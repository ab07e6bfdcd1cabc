// Package metrics exposes Prometheus instrumentation for the agent runtime.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsTotal counts finished sessions by terminal outcome
	// (completed, failed, cancelled).
	SessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "praxis",
		Name:      "sessions_total",
		Help:      "Finished agent sessions by terminal outcome.",
	}, []string{"outcome"})

	// ToolExecutions counts tool invocations by tool name and success.
	ToolExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "praxis",
		Name:      "tool_executions_total",
		Help:      "Tool invocations by tool and success.",
	}, []string{"tool", "success"})

	// ToolDuration observes tool execution latency.
	ToolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "praxis",
		Name:      "tool_duration_seconds",
		Help:      "Tool execution latency.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
	}, []string{"tool"})

	// ApprovalsTotal counts approval outcomes.
	ApprovalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "praxis",
		Name:      "approvals_total",
		Help:      "Approval request outcomes.",
	}, []string{"decision"})

	// EventsDropped counts subscribers dropped for not draining their queue.
	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "praxis",
		Name:      "event_subscribers_dropped_total",
		Help:      "Subscribers dropped because their event queue overflowed.",
	})

	// ServerReconnects counts external tool server reconnect attempts.
	ServerReconnects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "praxis",
		Name:      "external_server_reconnects_total",
		Help:      "External tool server reconnect attempts by server name.",
	}, []string{"server"})
)
