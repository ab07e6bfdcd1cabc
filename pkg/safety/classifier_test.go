package safety

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praxislabs/praxis/pkg/models"
)

// fakeAutonomy implements AutonomyView for tests.
type fakeAutonomy struct {
	level     models.AutonomyLevel
	allowlist []string
	blocklist []string
}

func (f *fakeAutonomy) Level(context.Context, string) models.AutonomyLevel {
	return f.level
}

func (f *fakeAutonomy) Rules(context.Context, string) ([]string, []string) {
	return f.allowlist, f.blocklist
}

// fakeCatalog implements ToolCatalog for tests.
type fakeCatalog struct {
	defs map[string]models.ToolDefinition
}

func (f *fakeCatalog) Definition(name string) (models.ToolDefinition, bool) {
	d, ok := f.defs[name]
	return d, ok
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{defs: map[string]models.ToolDefinition{
		"file_read": {
			Name: "file_read", Category: models.CategoryFilesystem, IsDestructive: false,
		},
		"file_write": {
			Name: "file_write", Category: models.CategoryFilesystem, IsDestructive: true,
		},
		"code_execution": {
			Name: "code_execution", Category: models.CategoryCode, IsDestructive: true,
		},
		"web_search": {
			Name: "web_search", Category: models.CategoryNetwork, IsDestructive: false,
		},
		"browser": {
			Name: "browser", Category: models.CategoryBrowser, IsDestructive: true,
		},
		"ext_ab12cd34_deploy": {
			Name: "ext_ab12cd34_deploy", Category: models.CategoryExternal,
			RequiresApprovalDefault: true,
		},
	}}
}

func classify(level models.AutonomyLevel, tool string, params map[string]any) models.ActionClassification {
	c := NewClassifier(&fakeAutonomy{level: level}, testCatalog())
	return c.Classify(context.Background(), tool, params, "/home/user/proj")
}

func TestL5BypassesEverything(t *testing.T) {
	// Even a blocklisted destructive call does not require approval at L5.
	auto := &fakeAutonomy{level: models.AutonomyL5, blocklist: []string{"file_write"}}
	c := NewClassifier(auto, testCatalog())

	cls := c.Classify(context.Background(), "file_write", map[string]any{"path": "/etc/passwd"}, "/home/user/proj")
	assert.False(t, cls.RequiresApproval)
	assert.NotEqual(t, models.RiskCritical, cls.RiskLevel, "blocklist must not run under L5")
}

func TestBlocklistBeatsAllowlist(t *testing.T) {
	auto := &fakeAutonomy{
		level:     models.AutonomyL4,
		allowlist: []string{"file_write"},
		blocklist: []string{"passwd"},
	}
	c := NewClassifier(auto, testCatalog())

	cls := c.Classify(context.Background(), "file_write", map[string]any{"path": "/etc/passwd"}, "/home/user/proj")
	assert.Equal(t, models.RiskCritical, cls.RiskLevel)
	assert.True(t, cls.RequiresApproval)
	assert.Contains(t, cls.Reason, "blocklist")
}

func TestAllowlistForcesSafe(t *testing.T) {
	auto := &fakeAutonomy{level: models.AutonomyL1, allowlist: []string{"web_search"}}
	c := NewClassifier(auto, testCatalog())

	cls := c.Classify(context.Background(), "web_search", map[string]any{"query": "weather"}, "")
	assert.Equal(t, models.RiskSafe, cls.RiskLevel)
	assert.False(t, cls.RequiresApproval, "allowlist overrides even L1")
}

func TestFilesystemWriteRiskDependsOnProject(t *testing.T) {
	inside := classify(models.AutonomyL3, "file_write", map[string]any{"path": "/home/user/proj/src/a.go"})
	assert.Equal(t, models.RiskModerate, inside.RiskLevel)
	assert.False(t, inside.RequiresApproval, "L3 auto-executes moderate")

	outside := classify(models.AutonomyL3, "file_write", map[string]any{"path": "/etc/hosts"})
	assert.Equal(t, models.RiskDestructive, outside.RiskLevel)
	assert.True(t, outside.RequiresApproval)

	traversal := classify(models.AutonomyL3, "file_write", map[string]any{"path": "/home/user/proj/../../../etc/hosts"})
	assert.Equal(t, models.RiskDestructive, traversal.RiskLevel)
}

func TestCodeExecutionEscalatesWithNetwork(t *testing.T) {
	plain := classify(models.AutonomyL4, "code_execution", map[string]any{"code": "print(1+1)"})
	assert.Equal(t, models.RiskDestructive, plain.RiskLevel)
	assert.False(t, plain.RequiresApproval, "L4 auto-executes destructive")

	networked := classify(models.AutonomyL4, "code_execution", map[string]any{
		"code": "import requests; requests.get('https://evil.example')",
	})
	assert.Equal(t, models.RiskCritical, networked.RiskLevel)
	assert.True(t, networked.RequiresApproval, "critical still gated at L4")
}

func TestReadOnlyToolsAreSafe(t *testing.T) {
	cls := classify(models.AutonomyL2, "file_read", map[string]any{"path": "/home/user/proj/a.go"})
	assert.Equal(t, models.RiskSafe, cls.RiskLevel)
	assert.False(t, cls.RequiresApproval)
}

func TestUnknownToolDefaultsModerate(t *testing.T) {
	cls := classify(models.AutonomyL2, "mystery_tool", nil)
	assert.Equal(t, models.RiskModerate, cls.RiskLevel)
	assert.True(t, cls.RequiresApproval)
}

func TestExternalToolApprovalDefaultSticksBelowL5(t *testing.T) {
	cls := classify(models.AutonomyL4, "ext_ab12cd34_deploy", map[string]any{"target": "prod"})
	assert.True(t, cls.RequiresApproval, "user_added tool keeps its gate at L4")

	auto := &fakeAutonomy{level: models.AutonomyL5}
	c := NewClassifier(auto, testCatalog())
	cls = c.Classify(context.Background(), "ext_ab12cd34_deploy", nil, "")
	assert.False(t, cls.RequiresApproval)
}

func TestThresholdTablePerLevel(t *testing.T) {
	// browser is destructive and not filesystem, so its tier is stable.
	params := map[string]any{"action": "navigate"}
	cases := []struct {
		level models.AutonomyLevel
		gated bool
	}{
		{models.AutonomyL1, true},
		{models.AutonomyL2, true},
		{models.AutonomyL3, true},
		{models.AutonomyL4, false},
		{models.AutonomyL5, false},
	}
	for _, tc := range cases {
		cls := classify(tc.level, "browser", params)
		assert.Equal(t, tc.gated, cls.RequiresApproval, "level %s", tc.level)
	}
}
