// Package approval mediates between the executor, which blocks waiting for a
// human decision, and the API/UI, which delivers one. It also owns the
// "approve similar" cache that lets one approval cover related actions.
package approval

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/metrics"
	"github.com/praxislabs/praxis/pkg/models"
)

// DefaultTimeout is how long a request waits for a decision before the
// executor skips the step.
const DefaultTimeout = 60 * time.Second

// ToolCatalog resolves tool names to definitions; the manager needs the
// category to derive similarity keys.
type ToolCatalog interface {
	Definition(name string) (models.ToolDefinition, bool)
}

// simKey identifies a class of similar actions. For filesystem tools dir is
// the parent directory of the path parameter; for everything else it is empty
// and the tool name alone is the key.
type simKey struct {
	tool string
	dir  string
}

// pendingRequest carries the wait primitive for one in-flight request.
// Exactly one resolution wins; resolved guards against double delivery.
type pendingRequest struct {
	req      models.ApprovalRequest
	key      simKey
	done     chan struct{}
	result   models.ApprovalResult
	resolved bool
}

// Manager is the process-wide approval mediator. All state is serialized by
// a single mutex; waiters block outside the lock on per-request channels.
type Manager struct {
	catalog   ToolCatalog
	publisher *events.Publisher

	mu      sync.Mutex
	pending map[string]*pendingRequest
	// session similarity caches, cleared by StartSession
	sessionCache map[string]map[simKey]struct{}
	// cross-session cache for remember_scope=tool_type grants
	globalCache map[simKey]struct{}
}

// NewManager creates an approval manager.
func NewManager(catalog ToolCatalog, publisher *events.Publisher) *Manager {
	return &Manager{
		catalog:      catalog,
		publisher:    publisher,
		pending:      make(map[string]*pendingRequest),
		sessionCache: make(map[string]map[simKey]struct{}),
		globalCache:  make(map[simKey]struct{}),
	}
}

// StartSession resets the similarity cache for a session. Cross-session
// grants (remember_scope=tool_type) survive.
func (m *Manager) StartSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionCache[sessionID] = make(map[simKey]struct{})
}

// EndSession resolves every still-pending request for the session as timeout
// and drops the session's similarity cache.
func (m *Manager) EndSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.pending {
		if p.req.SessionID != sessionID || p.resolved {
			continue
		}
		p.result = models.ApprovalResult{RequestID: id, Decision: models.DecisionTimeout}
		p.resolved = true
		close(p.done)
		delete(m.pending, id)
		slog.Info("Resolved dangling approval request at session end",
			"request_id", id,
			"session_id", sessionID)
	}
	delete(m.sessionCache, sessionID)
}

// RequestApproval blocks until a decision arrives, the timeout elapses, or
// ctx is cancelled (kill switch). A similarity cache hit returns immediately
// with decided_by=similar_match and no approval_requested event.
func (m *Manager) RequestApproval(ctx context.Context, cls models.ActionClassification, stepID int, sessionID string, timeout time.Duration) (models.ApprovalResult, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	key := m.similarityKey(cls.ToolName, cls.Parameters)

	m.mu.Lock()
	if m.coveredLocked(sessionID, key) {
		m.mu.Unlock()
		metrics.ApprovalsTotal.WithLabelValues(models.DecidedBySimilarMatch).Inc()
		slog.Info("Approval satisfied from similarity cache",
			"session_id", sessionID,
			"tool", cls.ToolName,
			"step_id", stepID)
		return models.ApprovalResult{
			Decision:  models.DecisionApproved,
			DecidedBy: models.DecidedBySimilarMatch,
		}, nil
	}

	p := &pendingRequest{
		req: models.ApprovalRequest{
			ID:             uuid.NewString(),
			SessionID:      sessionID,
			StepID:         stepID,
			Classification: cls,
			RequestedAt:    time.Now(),
		},
		key:  key,
		done: make(chan struct{}),
	}
	m.pending[p.req.ID] = p
	m.mu.Unlock()

	m.publisher.PublishApprovalRequested(sessionID, events.ApprovalRequestedPayload{
		RequestID:      p.req.ID,
		StepID:         stepID,
		Classification: cls,
		TimeoutSeconds: int(timeout.Seconds()),
	})
	slog.Info("Approval requested",
		"request_id", p.req.ID,
		"session_id", sessionID,
		"tool", cls.ToolName,
		"risk_level", cls.RiskLevel)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.done:
		return p.result, nil
	case <-timer.C:
		res := m.expire(p)
		return res, nil
	case <-ctx.Done():
		m.expire(p)
		return models.ApprovalResult{}, ctx.Err()
	}
}

// Approve resolves a pending request as approved. With approveSimilar the
// request's similarity key is remembered: per session by default, across
// sessions when scope is tool_type.
func (m *Manager) Approve(requestID string, approveSimilar bool, modifiedParams map[string]any, scope models.RememberScope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pending[requestID]
	if !ok {
		return fmt.Errorf("no pending approval request %q", requestID)
	}
	if approveSimilar {
		if scope == models.RememberToolType {
			m.globalCache[p.key] = struct{}{}
		} else {
			if m.sessionCache[p.req.SessionID] == nil {
				m.sessionCache[p.req.SessionID] = make(map[simKey]struct{})
			}
			m.sessionCache[p.req.SessionID][p.key] = struct{}{}
		}
	}
	m.resolveLocked(p, models.ApprovalResult{
		RequestID:      requestID,
		Decision:       models.DecisionApproved,
		ApproveSimilar: approveSimilar,
		ModifiedParams: modifiedParams,
		RememberScope:  scope,
		DecidedBy:      "user",
	})
	return nil
}

// Reject resolves a pending request as rejected.
func (m *Manager) Reject(requestID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pending[requestID]
	if !ok {
		return fmt.Errorf("no pending approval request %q", requestID)
	}
	m.resolveLocked(p, models.ApprovalResult{
		RequestID: requestID,
		Decision:  models.DecisionRejected,
		DecidedBy: "user",
	})
	return nil
}

// Pending lists in-flight requests, optionally filtered by session.
func (m *Manager) Pending(sessionID string) []models.ApprovalRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ApprovalRequest, 0, len(m.pending))
	for _, p := range m.pending {
		if sessionID != "" && p.req.SessionID != sessionID {
			continue
		}
		out = append(out, p.req)
	}
	return out
}

// expire resolves a request as timeout unless a decision already won the
// race, in which case that decision is returned.
func (m *Manager) expire(p *pendingRequest) models.ApprovalResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.resolved {
		return p.result
	}
	res := models.ApprovalResult{RequestID: p.req.ID, Decision: models.DecisionTimeout}
	m.resolveLocked(p, res)
	return res
}

// resolveLocked assigns the single result, unblocks waiters, and removes the
// request from the pending map. Caller holds m.mu.
func (m *Manager) resolveLocked(p *pendingRequest, res models.ApprovalResult) {
	if p.resolved {
		return
	}
	p.result = res
	p.resolved = true
	close(p.done)
	delete(m.pending, p.req.ID)
	metrics.ApprovalsTotal.WithLabelValues(string(res.Decision)).Inc()
}

// similarityKey derives the cache key for a classified action. Filesystem
// tools key on (tool, parent dir of the path parameter) so an approval can
// cover sibling files; everything else keys on the tool name alone.
func (m *Manager) similarityKey(toolName string, params map[string]any) simKey {
	key := simKey{tool: toolName}
	def, ok := m.catalog.Definition(toolName)
	if !ok || def.Category != models.CategoryFilesystem {
		return key
	}
	if path, ok := params["path"].(string); ok && path != "" {
		key.dir = filepath.Dir(filepath.Clean(path))
	}
	return key
}

// coveredLocked reports whether a key is satisfied by the session or global
// cache. For filesystem keys an approval on a directory covers the whole
// subtree, so the parent chain is walked upward. Caller holds m.mu.
func (m *Manager) coveredLocked(sessionID string, key simKey) bool {
	session := m.sessionCache[sessionID]
	for d := key.dir; ; {
		k := simKey{tool: key.tool, dir: d}
		if _, ok := session[k]; ok {
			return true
		}
		if _, ok := m.globalCache[k]; ok {
			return true
		}
		if d == "" {
			return false
		}
		parent := filepath.Dir(d)
		if parent == d {
			return false
		}
		d = parent
	}
}
