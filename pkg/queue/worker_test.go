package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/killswitch"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/services"
	testdb "github.com/praxislabs/praxis/test/database"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   2,
		PollInterval:            config.Duration(10 * time.Millisecond),
		PollIntervalJitter:      config.Duration(5 * time.Millisecond),
		SessionTimeout:          config.Duration(5 * time.Second),
		GracefulShutdownTimeout: config.Duration(5 * time.Second),
		OrphanDetectionInterval: config.Duration(time.Hour),
		OrphanThreshold:         config.Duration(time.Hour),
	}
}

// stubRunner stands in for the agent executor: it records the sessions it was
// handed and writes their terminal state the way the real runner does.
type stubRunner struct {
	sessions *services.SessionService

	mu    sync.Mutex
	ran   []string
	block bool
}

func (r *stubRunner) RunSession(ctx context.Context, sess *ent.AgentSession) models.AgentEvent {
	r.mu.Lock()
	r.ran = append(r.ran, sess.ID)
	block := r.block
	r.mu.Unlock()

	state, outcome := models.StateCompleted, models.EventCompleted
	if block {
		<-ctx.Done()
		state, outcome = models.StateCancelled, models.EventCancelled
	}
	_ = r.sessions.FinishSession(context.Background(), sess.ID, state, "")
	return models.AgentEvent{Type: outcome, SessionID: sess.ID, Timestamp: time.Now()}
}

func (r *stubRunner) ranSessions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ran...)
}

type queueHarness struct {
	client   *ent.Client
	sessions *services.SessionService
	kill     *killswitch.Switch
	runner   *stubRunner
	cfg      *config.QueueConfig
}

func newQueueHarness(t *testing.T) *queueHarness {
	t.Helper()

	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	return &queueHarness{
		client:   client.Client,
		sessions: sessions,
		kill:     killswitch.New(),
		runner:   &stubRunner{sessions: sessions},
		cfg:      testQueueConfig(),
	}
}

func (h *queueHarness) pool() *WorkerPool {
	return NewWorkerPool("pod-test", h.client, h.sessions, h.kill, h.cfg, h.runner)
}

func (h *queueHarness) worker(id string) *Worker {
	return NewWorker(id, "pod-test", h.client, h.sessions, h.kill, h.cfg, h.runner, h.pool())
}

func (h *queueHarness) enqueue(t *testing.T, task string) *ent.AgentSession {
	t.Helper()

	sess, err := h.sessions.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID:   uuid.NewString(),
		Task:        task,
		ProjectPath: "/work/demo",
	})
	require.NoError(t, err)
	return sess
}

func (h *queueHarness) sessionState(t *testing.T, id string) models.SessionState {
	t.Helper()

	sess, err := h.sessions.GetSession(context.Background(), id, false)
	require.NoError(t, err)
	return models.SessionState(sess.State)
}

// stateIs returns an assertion-free poll condition for require.Eventually,
// which runs conditions off the test goroutine.
func (h *queueHarness) stateIs(id string, want models.SessionState) func() bool {
	return func() bool {
		sess, err := h.sessions.GetSession(context.Background(), id, false)
		return err == nil && models.SessionState(sess.State) == want
	}
}

// insertClaimedSession plants a session that some worker already claimed,
// bypassing the queue path.
func insertClaimedSession(t *testing.T, client *ent.Client, podID string, state agentsession.State, claimedAt time.Time) *ent.AgentSession {
	t.Helper()

	sess, err := client.AgentSession.Create().
		SetID(uuid.NewString()).
		SetTask("inspect deployment health").
		SetState(state).
		SetPodID(podID).
		SetStartedAt(claimedAt).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = config.Duration(1 * time.Second)
	cfg.PollIntervalJitter = config.Duration(500 * time.Millisecond)
	w := NewWorker("test-worker", "test-pod", nil, nil, nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = config.Duration(1 * time.Second)
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, nil, nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, nil, nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentSessionID)
	assert.Equal(t, 0, h.SessionsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "session-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "session-abc", h.CurrentSessionID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentSessionID)
}

func TestWorkerEmptyQueueReturnsSentinel(t *testing.T) {
	h := newQueueHarness(t)
	w := h.worker("w-0")

	err := w.pollAndProcess(context.Background())
	require.ErrorIs(t, err, ErrNoSessionsAvailable)
	assert.Empty(t, h.runner.ranSessions())
}

func TestWorkerProcessesQueuedSession(t *testing.T) {
	h := newQueueHarness(t)
	sess := h.enqueue(t, "summarize the release notes")

	w := h.worker("w-0")
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, h.stateIs(sess.ID, models.StateCompleted),
		5*time.Second, 10*time.Millisecond, "session should reach a terminal state")

	assert.Equal(t, []string{sess.ID}, h.runner.ranSessions())

	row, err := h.sessions.GetSession(context.Background(), sess.ID, false)
	require.NoError(t, err)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-test", *row.PodID)
	assert.NotNil(t, row.StartedAt)
	assert.NotNil(t, row.EndedAt)

	health := w.Health()
	assert.Equal(t, 1, health.SessionsProcessed)
}

func TestWorkerAtCapacityDoesNotClaim(t *testing.T) {
	h := newQueueHarness(t)
	h.cfg.MaxConcurrentSessions = 1

	// Another pod already runs one session, filling global capacity.
	insertClaimedSession(t, h.client, "other-pod", agentsession.StateExecuting, time.Now())
	queued := h.enqueue(t, "rotate the access keys")

	w := h.worker("w-0")
	err := w.pollAndProcess(context.Background())
	require.ErrorIs(t, err, ErrAtCapacity)

	assert.Empty(t, h.runner.ranSessions())
	assert.Equal(t, models.StateIdle, h.sessionState(t, queued.ID))
}

func TestWorkerKillSwitchBlocksClaims(t *testing.T) {
	h := newQueueHarness(t)
	queued := h.enqueue(t, "archive stale branches")
	w := h.worker("w-0")

	h.kill.Trigger("operator emergency stop")
	err := w.pollAndProcess(context.Background())
	require.ErrorIs(t, err, ErrKillSwitchActive)
	assert.Empty(t, h.runner.ranSessions())
	assert.Equal(t, models.StateIdle, h.sessionState(t, queued.ID))

	h.kill.Reset()
	require.NoError(t, w.pollAndProcess(context.Background()))
	assert.Equal(t, models.StateCompleted, h.sessionState(t, queued.ID))
}

func TestWorkerSessionTimeoutCancelsRunner(t *testing.T) {
	h := newQueueHarness(t)
	h.cfg.SessionTimeout = config.Duration(50 * time.Millisecond)
	h.runner.block = true

	sess := h.enqueue(t, "wait forever")
	w := h.worker("w-0")

	start := time.Now()
	require.NoError(t, w.pollAndProcess(context.Background()))
	assert.Less(t, time.Since(start), 3*time.Second, "timeout should fire well before the test deadline")

	assert.Equal(t, models.StateCancelled, h.sessionState(t, sess.ID))
	assert.Equal(t, []string{sess.ID}, h.runner.ranSessions())
}
