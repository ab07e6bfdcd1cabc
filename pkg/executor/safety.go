package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/pkg/budget"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// transcriptResultTokens caps how much of a tool result rides the session
// transcript into later model calls. Step records and the audit trail keep
// the full text.
const transcriptResultTokens = 2000

// runToolStep carries one tool-bearing step through the safety envelope:
// classification, the approval gate, retried execution, and the audit
// trail. Every attempted invocation leaves exactly one audit entry, whether
// it executed, was rejected, timed out at the gate, or was aborted.
//
// A non-nil return aborts the run (context cancelled); step-local failures
// only mark the step and let the loop continue.
func (e *Executor) runToolStep(ctx context.Context, r *run, step *models.PlanStep) error {
	started := time.Now()
	toolName := *step.ToolName
	params := step.Params

	rec := models.AuditRecord{
		ToolName:         toolName,
		Parameters:       params,
		ApprovalDecision: models.OutcomeAuto,
	}

	cls := e.classifier.Classify(ctx, toolName, params, r.projectPath())
	rec.RiskLevel = cls.RiskLevel
	e.publisher.PublishActionClassified(r.session.ID, step.ID, cls)

	if cls.RequiresApproval {
		e.setState(ctx, r, models.StateAwaitingApproval)
		res, err := e.approvals.RequestApproval(ctx, cls, step.ID, r.session.ID, e.cfg.ApprovalTimeout.Duration())
		e.setState(ctx, r, models.StateExecuting)
		if err != nil {
			rec.ApprovalDecision = models.OutcomeKillSwitch
			rec.Success = false
			rec.Error = "aborted while awaiting approval"
			rec.DurationMS = time.Since(started).Milliseconds()
			e.recordAudit(ctx, r, rec)
			e.failStep(ctx, r, step, "cancelled while awaiting approval", time.Since(started))
			return err
		}

		e.publisher.PublishApprovalReceived(r.session.ID, events.ApprovalReceivedPayload{
			RequestID: res.RequestID,
			StepID:    step.ID,
			Decision:  res.Decision,
			DecidedBy: res.DecidedBy,
		})

		switch res.Decision {
		case models.DecisionApproved:
			rec.ApprovalDecision = models.OutcomeApproved
			rec.ApprovedBy = res.DecidedBy
			if len(res.ModifiedParams) > 0 {
				params = res.ModifiedParams
				rec.Parameters = params
			}
		case models.DecisionRejected:
			rec.ApprovalDecision = models.OutcomeRejected
			rec.ApprovedBy = res.DecidedBy
			rec.Success = false
			rec.DurationMS = time.Since(started).Milliseconds()
			e.recordAudit(ctx, r, rec)
			e.failStep(ctx, r, step, ErrApprovalRejected.Error(), time.Since(started))
			return nil
		case models.DecisionTimeout:
			rec.ApprovalDecision = models.OutcomeTimeout
			rec.Success = false
			rec.DurationMS = time.Since(started).Milliseconds()
			e.recordAudit(ctx, r, rec)
			e.skipStep(ctx, r, step, "approval timed out")
			return nil
		}
	}

	call := models.ToolCall{
		ID:         uuid.NewString(),
		ToolName:   toolName,
		Parameters: params,
	}
	agentCtx := &tools.AgentContext{
		SessionID:   r.session.ID,
		ProjectPath: r.projectPath(),
		Messages:    r.messages,
		Variables:   r.variables,
	}

	e.setState(ctx, r, models.StateAwaitingTool)
	result, err := e.executeWithRetry(ctx, r, step, call, agentCtx)
	e.setState(ctx, r, models.StateExecuting)

	elapsed := time.Since(started)
	rec.DurationMS = elapsed.Milliseconds()

	if err != nil {
		if ctx.Err() != nil {
			rec.ApprovalDecision = models.OutcomeKillSwitch
			rec.Error = "aborted: " + err.Error()
			e.recordAudit(ctx, r, rec)
			e.failStep(ctx, r, step, "cancelled", elapsed)
			return ctx.Err()
		}
		kind := ClassifyError(err)
		msg := e.redactor.MaskString(err.Error())
		rec.Error = msg
		e.recordAudit(ctx, r, rec)
		e.failStep(ctx, r, step, fmt.Sprintf("%s: %s", kind, msg), elapsed)
		return nil
	}

	rec.Success = result.Success
	if !result.Success {
		errText := e.redactor.MaskString(result.Error)
		rec.Error = errText
		e.recordAudit(ctx, r, rec)
		e.failStep(ctx, r, step, errText, elapsed)
		return nil
	}

	text := e.redactor.MaskString(resultText(result))
	rec.Result = text
	e.recordAudit(ctx, r, rec)
	// The transcript gets the redacted text too: credentials a tool pulls
	// must not ride the next model request off the machine. Oversized
	// results are cut down so one verbose tool cannot flood later prompts.
	e.completeStep(ctx, r, step, text, elapsed)
	r.messages = append(r.messages, models.Message{
		Role:    models.RoleTool,
		Content: fmt.Sprintf("step %d (%s): %s", step.ID, toolName, budget.Truncate(text, transcriptResultTokens)),
	})
	return nil
}

// recordAudit stamps the session identity and YOLO flag onto the record,
// redacts credential material from its parameters, result, and error, and
// persists it. Audit failures are logged, never fatal to the run.
func (e *Executor) recordAudit(ctx context.Context, r *run, rec models.AuditRecord) {
	rec.SessionID = r.session.ID
	rec.YoloMode = e.autonomy.IsYoloActive(r.projectPath())
	rec.Parameters = e.redactor.MaskParams(rec.Parameters)
	rec.Result = e.redactor.MaskString(rec.Result)
	rec.Error = e.redactor.MaskString(rec.Error)
	if _, err := e.audit.Record(ctx, rec); err != nil {
		slog.Error("Failed to record audit entry",
			"session_id", r.session.ID, "tool", rec.ToolName, "error", err)
	}
}

// resultText flattens a tool result's data for step records and the
// conversation transcript.
func resultText(result *models.ToolResult) string {
	switch data := result.Data.(type) {
	case nil:
		return ""
	case string:
		return data
	default:
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Sprintf("%v", data)
		}
		return string(encoded)
	}
}
