package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/auditentry"
	"github.com/praxislabs/praxis/pkg/models"
)

// maxParametersBytes caps the stored parameters payload for non-YOLO
// entries. YOLO entries additionally keep the untruncated payload in
// full_parameters.
const maxParametersBytes = 4096

// AuditService is the append-only record of attempted tool invocations.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// Record writes exactly one audit entry for one attempted invocation,
// whether it executed, was rejected, timed out, or was aborted by the kill
// switch.
func (s *AuditService) Record(ctx context.Context, rec models.AuditRecord) (*ent.AuditEntry, error) {
	if rec.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if rec.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	paramsJSON := encodeParameters(rec.Parameters)

	// Audit writes must survive request cancellation
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AuditEntry.Create().
		SetID(uuid.New().String()).
		SetSessionID(rec.SessionID).
		SetTimestamp(time.Now()).
		SetToolName(rec.ToolName).
		SetRiskLevel(auditentry.RiskLevel(rec.RiskLevel)).
		SetParameters(truncateUTF8(paramsJSON, maxParametersBytes)).
		SetApprovalDecision(auditentry.ApprovalDecision(rec.ApprovalDecision)).
		SetDurationMs(int(rec.DurationMS)).
		SetSuccess(rec.Success).
		SetYoloMode(rec.YoloMode)

	if rec.YoloMode {
		builder.SetFullParameters(paramsJSON)
	}
	if rec.ApprovedBy != "" {
		builder.SetApprovedBy(rec.ApprovedBy)
	}
	if rec.Result != "" {
		builder.SetResult(rec.Result)
	}
	if rec.Error != "" {
		builder.SetErrorMessage(rec.Error)
	}

	entry, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}
	return entry, nil
}

// List returns audit entries matching the filters, newest first.
func (s *AuditService) List(ctx context.Context, filters models.AuditFilters) (*models.AuditListResponse, error) {
	query := s.filtered(filters)

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit entries: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	entries, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(auditentry.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return &models.AuditListResponse{
		Entries:    entries,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ExportJSON renders the matching entries as a JSON array. Limit is honored
// when set; otherwise every matching row is exported.
func (s *AuditService) ExportJSON(ctx context.Context, filters models.AuditFilters) ([]byte, error) {
	entries, err := s.exportRows(ctx, filters)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit export: %w", err)
	}
	return out, nil
}

// ExportCSV renders the matching entries as CSV with a header row.
func (s *AuditService) ExportCSV(ctx context.Context, filters models.AuditFilters) ([]byte, error) {
	entries, err := s.exportRows(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "session_id", "timestamp", "tool_name", "risk_level",
		"parameters", "approval_decision", "approved_by", "duration_ms",
		"success", "result", "error", "yolo_mode",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.SessionID,
			e.Timestamp.UTC().Format(time.RFC3339),
			e.ToolName,
			string(e.RiskLevel),
			e.Parameters,
			string(e.ApprovalDecision),
			derefString(e.ApprovedBy),
			strconv.Itoa(e.DurationMs),
			strconv.FormatBool(e.Success),
			derefString(e.Result),
			derefString(e.ErrorMessage),
			strconv.FormatBool(e.YoloMode),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Cleanup deletes entries past their retention window: standardAge for
// regular entries, yoloAge for YOLO entries. Returns the total rows removed.
func (s *AuditService) Cleanup(ctx context.Context, standardAge, yoloAge time.Duration) (int, error) {
	if standardAge <= 0 || yoloAge <= 0 {
		return 0, fmt.Errorf("retention ages must be positive")
	}

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	standard, err := s.client.AuditEntry.Delete().
		Where(
			auditentry.YoloModeEQ(false),
			auditentry.TimestampLT(time.Now().Add(-standardAge)),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired audit entries: %w", err)
	}

	yolo, err := s.client.AuditEntry.Delete().
		Where(
			auditentry.YoloModeEQ(true),
			auditentry.TimestampLT(time.Now().Add(-yoloAge)),
		).
		Exec(deleteCtx)
	if err != nil {
		return standard, fmt.Errorf("failed to delete expired yolo audit entries: %w", err)
	}

	return standard + yolo, nil
}

func (s *AuditService) exportRows(ctx context.Context, filters models.AuditFilters) ([]*ent.AuditEntry, error) {
	query := s.filtered(filters).Order(ent.Desc(auditentry.FieldTimestamp))
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	entries, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit export: %w", err)
	}
	return entries, nil
}

func (s *AuditService) filtered(filters models.AuditFilters) *ent.AuditEntryQuery {
	query := s.client.AuditEntry.Query()
	if filters.SessionID != "" {
		query = query.Where(auditentry.SessionIDEQ(filters.SessionID))
	}
	if filters.RiskLevel != "" {
		query = query.Where(auditentry.RiskLevelEQ(auditentry.RiskLevel(filters.RiskLevel)))
	}
	if filters.Since != nil {
		query = query.Where(auditentry.TimestampGTE(*filters.Since))
	}
	if filters.Until != nil {
		query = query.Where(auditentry.TimestampLT(*filters.Until))
	}
	return query
}

// encodeParameters marshals a parameter map, normalizing nil to an empty
// object so the column is always valid JSON.
func encodeParameters(params map[string]any) string {
	if len(params) == 0 {
		return "{}"
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		// Parameters already passed schema validation; a marshal failure
		// here means a non-serializable value sneaked in.
		return fmt.Sprintf(`{"_marshal_error":%q}`, err.Error())
	}
	return string(encoded)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
