package events

import (
	"time"

	"github.com/praxislabs/praxis/pkg/models"
)

// Publisher wraps the hub with one typed method per event type — see
// payloads.go for the payload structs. All methods are fire-and-forget:
// delivery problems surface as dropped subscribers, never as errors to
// the producer.
type Publisher struct {
	hub *Hub
}

// NewPublisher creates a Publisher over the given hub.
func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

// Hub returns the underlying hub (for subscribing).
func (p *Publisher) Hub() *Hub {
	return p.hub
}

func (p *Publisher) publish(sessionID string, t models.EventType, data any) {
	p.hub.Publish(models.AgentEvent{
		Type:      t,
		SessionID: sessionID,
		Timestamp: time.Now(),
		Data:      data,
	})
}

// PublishStateChange broadcasts a session state transition.
func (p *Publisher) PublishStateChange(sessionID string, from, to models.SessionState) {
	p.publish(sessionID, models.EventStateChange, StateChangePayload{From: from, To: to})
}

// PublishPlanCreated broadcasts a freshly parsed plan. Steps are copied by
// value so later status changes stay out of the event.
func (p *Publisher) PublishPlanCreated(sessionID string, plan *models.Plan) {
	steps := make([]models.PlanStep, len(plan.Steps))
	for i, s := range plan.Steps {
		steps[i] = *s
	}
	p.publish(sessionID, models.EventPlanCreated, PlanCreatedPayload{
		Overview:  plan.Overview,
		StepCount: len(steps),
		Steps:     steps,
	})
}

// PublishStepStarted broadcasts a step entering Running.
func (p *Publisher) PublishStepStarted(sessionID string, step *models.PlanStep) {
	payload := StepStartedPayload{StepID: step.ID, Description: step.Description}
	if step.ToolName != nil {
		payload.ToolName = *step.ToolName
	}
	p.publish(sessionID, models.EventStepStarted, payload)
}

// PublishStepCompleted broadcasts a step reaching a terminal step status.
func (p *Publisher) PublishStepCompleted(sessionID string, step *models.PlanStep) {
	p.publish(sessionID, models.EventStepCompleted, StepCompletedPayload{
		StepID: step.ID,
		Status: step.Status,
		Result: step.Result,
		Error:  step.Error,
	})
}

// PublishToolCalled broadcasts an invocation attempt.
func (p *Publisher) PublishToolCalled(sessionID string, payload ToolCalledPayload) {
	p.publish(sessionID, models.EventToolCalled, payload)
}

// PublishToolResult broadcasts an invocation outcome.
func (p *Publisher) PublishToolResult(sessionID string, payload ToolResultPayload) {
	p.publish(sessionID, models.EventToolResult, payload)
}

// PublishActionClassified broadcasts a classifier verdict.
func (p *Publisher) PublishActionClassified(sessionID string, stepID int, cls models.ActionClassification) {
	p.publish(sessionID, models.EventActionClassified, ActionClassifiedPayload{
		StepID:         stepID,
		Classification: cls,
	})
}

// PublishApprovalRequested broadcasts a pending approval request.
func (p *Publisher) PublishApprovalRequested(sessionID string, payload ApprovalRequestedPayload) {
	p.publish(sessionID, models.EventApprovalRequested, payload)
}

// PublishApprovalReceived broadcasts an approval resolution.
func (p *Publisher) PublishApprovalReceived(sessionID string, payload ApprovalReceivedPayload) {
	p.publish(sessionID, models.EventApprovalReceived, payload)
}

// PublishKillSwitchTriggered broadcasts a kill switch trip.
func (p *Publisher) PublishKillSwitchTriggered(sessionID, reason string) {
	p.publish(sessionID, models.EventKillSwitchTriggered, KillSwitchPayload{Reason: reason})
}

// PublishBudgetExceeded broadcasts token budget exhaustion.
func (p *Publisher) PublishBudgetExceeded(sessionID string, usedInput, usedOutput, maxTotal int) {
	p.publish(sessionID, models.EventBudgetExceeded, BudgetExceededPayload{
		UsedInput:  usedInput,
		UsedOutput: usedOutput,
		MaxTotal:   maxTotal,
	})
}

// PublishError broadcasts the terminal error event.
func (p *Publisher) PublishError(sessionID, message string) {
	p.publish(sessionID, models.EventError, ErrorPayload{Message: message})
}

// PublishCompleted broadcasts the terminal completed event.
func (p *Publisher) PublishCompleted(sessionID, summary string, duration time.Duration) {
	p.publish(sessionID, models.EventCompleted, CompletedPayload{
		Summary:    summary,
		DurationMS: duration.Milliseconds(),
	})
}

// PublishCancelled broadcasts the terminal cancelled event.
func (p *Publisher) PublishCancelled(sessionID, reason string) {
	p.publish(sessionID, models.EventCancelled, CancelledPayload{Reason: reason})
}

// PublishServerConnected broadcasts an external server coming online.
// Internal event: no session id.
func (p *Publisher) PublishServerConnected(serverID, serverName string, toolCount int) {
	p.publish("", TypeServerConnected, ServerConnectedPayload{
		ServerID:   serverID,
		ServerName: serverName,
		ToolCount:  toolCount,
	})
}

// PublishServerDisconnected broadcasts an external server going offline.
func (p *Publisher) PublishServerDisconnected(serverID, serverName, errMsg string) {
	p.publish("", TypeServerDisconnected, ServerDisconnectedPayload{
		ServerID:   serverID,
		ServerName: serverName,
		Error:      errMsg,
	})
}
