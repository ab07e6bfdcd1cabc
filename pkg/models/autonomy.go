package models

// AutonomySettings is the per-project autonomy state surfaced over the API.
// Level L5 appears here only while the session-only override is active; it
// is never what the store persists.
type AutonomySettings struct {
	ProjectPath string        `json:"project_path"`
	Level       AutonomyLevel `json:"level"`
	Allowlist   []string      `json:"allowlist,omitempty"`
	Blocklist   []string      `json:"blocklist,omitempty"`
}
