package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/models"
)

type stubCatalog struct {
	fsTools map[string]bool
}

func (s *stubCatalog) Definition(name string) (models.ToolDefinition, bool) {
	if s.fsTools[name] {
		return models.ToolDefinition{Name: name, Category: models.CategoryFilesystem}, true
	}
	return models.ToolDefinition{Name: name, Category: models.CategoryNetwork}, true
}

func newTestManager() (*Manager, *events.Hub) {
	hub := events.NewHub(16)
	catalog := &stubCatalog{fsTools: map[string]bool{"file_write": true, "file_delete": true}}
	return NewManager(catalog, events.NewPublisher(hub)), hub
}

func fsClassification(tool, path string) models.ActionClassification {
	return models.ActionClassification{
		ToolName:         tool,
		Parameters:       map[string]any{"path": path, "content": "x"},
		RiskLevel:        models.RiskModerate,
		RequiresApproval: true,
	}
}

func requestAsync(m *Manager, cls models.ActionClassification, stepID int, sessionID string, timeout time.Duration) chan models.ApprovalResult {
	out := make(chan models.ApprovalResult, 1)
	go func() {
		res, _ := m.RequestApproval(context.Background(), cls, stepID, sessionID, timeout)
		out <- res
	}()
	return out
}

// waitPending blocks until the request shows up in the pending list so tests
// can resolve it by id.
func waitPending(t *testing.T, m *Manager, sessionID string) models.ApprovalRequest {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if reqs := m.Pending(sessionID); len(reqs) > 0 {
			return reqs[0]
		}
		select {
		case <-deadline:
			t.Fatal("no pending approval request appeared")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestApproveUnblocksWaiter(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")
	require.NoError(t, m.Approve(req.ID, false, nil, ""))

	res := <-done
	assert.Equal(t, models.DecisionApproved, res.Decision)
	assert.Equal(t, "user", res.DecidedBy)
	assert.Empty(t, m.Pending("s1"))
}

func TestRejectUnblocksWaiter(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")
	require.NoError(t, m.Reject(req.ID))

	res := <-done
	assert.Equal(t, models.DecisionRejected, res.Decision)
}

func TestApproveSimilarCoversSiblingsAndSubtree(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")
	require.NoError(t, m.Approve(req.ID, true, nil, models.RememberSession))
	<-done

	// Sibling in the same directory.
	res, err := m.RequestApproval(context.Background(), fsClassification("file_write", "/src/b.py"), 2, "s1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionApproved, res.Decision)
	assert.Equal(t, models.DecidedBySimilarMatch, res.DecidedBy)

	// Deeper in the approved directory's subtree.
	res, err = m.RequestApproval(context.Background(), fsClassification("file_write", "/src/components/c.py"), 3, "s1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, models.DecidedBySimilarMatch, res.DecidedBy)
}

func TestSimilarDoesNotCrossTools(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")
	require.NoError(t, m.Approve(req.ID, true, nil, models.RememberSession))
	<-done

	// Same directory, different tool: must still ask.
	done = requestAsync(m, fsClassification("file_delete", "/src/a.py"), 2, "s1", time.Minute)
	req = waitPending(t, m, "s1")
	require.NoError(t, m.Reject(req.ID))
	res := <-done
	assert.Equal(t, models.DecisionRejected, res.Decision)
}

func TestSessionCacheDiesWithSession(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")
	require.NoError(t, m.Approve(req.ID, true, nil, models.RememberSession))
	<-done

	m.EndSession("s1")
	m.StartSession("s2")

	done = requestAsync(m, fsClassification("file_write", "/src/b.py"), 1, "s2", time.Minute)
	req = waitPending(t, m, "s2")
	require.NoError(t, m.Reject(req.ID))
	res := <-done
	assert.Equal(t, models.DecisionRejected, res.Decision, "session grant must not leak into a new session")
}

func TestToolTypeScopeCrossesSessions(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")
	require.NoError(t, m.Approve(req.ID, true, nil, models.RememberToolType))
	<-done

	m.EndSession("s1")
	m.StartSession("s2")

	res, err := m.RequestApproval(context.Background(), fsClassification("file_write", "/src/b.py"), 1, "s2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, models.DecidedBySimilarMatch, res.DecidedBy)
}

func TestTimeoutResolvesRequest(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	res, err := m.RequestApproval(context.Background(), fsClassification("file_write", "/src/a.py"), 1, "s1", 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionTimeout, res.Decision)
	assert.Empty(t, m.Pending("s1"), "timed-out request must leave the pending map")
}

func TestCancelledContextAbortsWait(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := m.RequestApproval(ctx, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
		errCh <- err
	}()
	waitPending(t, m, "s1")
	cancel()

	err := <-errCh
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Pending("s1"))
}

func TestEndSessionResolvesPendingAsTimeout(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	waitPending(t, m, "s1")
	m.EndSession("s1")

	res := <-done
	assert.Equal(t, models.DecisionTimeout, res.Decision)
}

func TestApproveUnknownRequestFails(t *testing.T) {
	m, _ := newTestManager()
	assert.Error(t, m.Approve("nope", false, nil, ""))
	assert.Error(t, m.Reject("nope"))
}

func TestRequestedEventOnlyOnCacheMiss(t *testing.T) {
	m, hub := newTestManager()
	m.StartSession("s1")
	sub := hub.Subscribe("s1")
	defer sub.Close()

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")

	ev := <-sub.Events()
	assert.Equal(t, models.EventApprovalRequested, ev.Type)
	payload, ok := ev.Data.(events.ApprovalRequestedPayload)
	require.True(t, ok)
	assert.Equal(t, req.ID, payload.RequestID)
	assert.Equal(t, 60, payload.TimeoutSeconds)

	require.NoError(t, m.Approve(req.ID, true, nil, models.RememberSession))
	<-done

	// Cache hit: no second approval_requested.
	_, err := m.RequestApproval(context.Background(), fsClassification("file_write", "/src/b.py"), 2, "s1", time.Minute)
	require.NoError(t, err)
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event %s after similarity hit", ev.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestModifiedParamsFlowThrough(t *testing.T) {
	m, _ := newTestManager()
	m.StartSession("s1")

	done := requestAsync(m, fsClassification("file_write", "/src/a.py"), 1, "s1", time.Minute)
	req := waitPending(t, m, "s1")
	modified := map[string]any{"path": "/src/a.py", "content": "edited"}
	require.NoError(t, m.Approve(req.ID, false, modified, ""))

	res := <-done
	assert.Equal(t, modified, res.ModifiedParams)
}
