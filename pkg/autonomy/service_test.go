package autonomy

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu       sync.Mutex
	settings map[string]*models.AutonomySettings
	fail     bool
}

func newMemStore() *memStore {
	return &memStore{settings: make(map[string]*models.AutonomySettings)}
}

func (m *memStore) Get(_ context.Context, projectPath string) (*models.AutonomySettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errors.New("store unavailable")
	}
	s, ok := m.settings[projectPath]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) SaveLevel(_ context.Context, projectPath string, level models.AutonomyLevel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("store unavailable")
	}
	s, ok := m.settings[projectPath]
	if !ok {
		s = &models.AutonomySettings{ProjectPath: projectPath}
		m.settings[projectPath] = s
	}
	s.Level = level
	return nil
}

func (m *memStore) SaveRules(_ context.Context, projectPath string, allowlist, blocklist []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[projectPath]
	if !ok {
		s = &models.AutonomySettings{ProjectPath: projectPath, Level: models.DefaultAutonomyLevel}
		m.settings[projectPath] = s
	}
	s.Allowlist = allowlist
	s.Blocklist = blocklist
	return nil
}

func TestLevelDefaultsToL2(t *testing.T) {
	svc := NewService(newMemStore(), models.DefaultAutonomyLevel)
	assert.Equal(t, models.AutonomyL2, svc.Level(context.Background(), "/proj"))
}

func TestConfiguredFallbackLevel(t *testing.T) {
	ctx := context.Background()

	svc := NewService(newMemStore(), models.AutonomyL3)
	assert.Equal(t, models.AutonomyL3, svc.Level(ctx, "/proj"))

	// L5 cannot be a fallback; it is coerced to L2.
	svc = NewService(newMemStore(), models.AutonomyL5)
	assert.Equal(t, models.AutonomyL2, svc.Level(ctx, "/proj"))
}

func TestSetLevelPersistsL1ToL4(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, models.DefaultAutonomyLevel)
	ctx := context.Background()

	require.NoError(t, svc.SetLevel(ctx, "/proj", models.AutonomyL3))
	assert.Equal(t, models.AutonomyL3, svc.Level(ctx, "/proj"))
	assert.Equal(t, models.AutonomyL3, store.settings["/proj"].Level)
}

func TestL5IsSessionOnly(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, models.DefaultAutonomyLevel)
	ctx := context.Background()

	require.NoError(t, svc.SetLevel(ctx, "/proj", models.AutonomyL5))
	assert.Equal(t, models.AutonomyL5, svc.Level(ctx, "/proj"))
	assert.True(t, svc.IsYoloActive("/proj"))

	// Nothing was written to the store.
	_, stored := store.settings["/proj"]
	assert.False(t, stored, "L5 must never be persisted")

	// A fresh service over the same store has no memory of L5.
	fresh := NewService(store, models.DefaultAutonomyLevel)
	assert.Equal(t, models.AutonomyL2, fresh.Level(ctx, "/proj"))
	assert.False(t, fresh.IsYoloActive("/proj"))
}

func TestDowngradeFromL5ClearsYoloAndPersists(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, models.DefaultAutonomyLevel)
	ctx := context.Background()

	require.NoError(t, svc.SetLevel(ctx, "/proj", models.AutonomyL5))
	require.NoError(t, svc.SetLevel(ctx, "/proj", models.AutonomyL2))

	assert.False(t, svc.IsYoloActive("/proj"))
	assert.Equal(t, models.AutonomyL2, svc.Level(ctx, "/proj"))
	assert.Equal(t, models.AutonomyL2, store.settings["/proj"].Level)
}

func TestSetLevelRejectsInvalid(t *testing.T) {
	svc := NewService(newMemStore(), models.DefaultAutonomyLevel)
	assert.Error(t, svc.SetLevel(context.Background(), "/proj", models.AutonomyLevel(9)))
}

func TestObserversNotifiedOnChange(t *testing.T) {
	svc := NewService(newMemStore(), models.DefaultAutonomyLevel)
	ctx := context.Background()

	var mu sync.Mutex
	var got []models.AutonomyLevel
	svc.Subscribe(func(project string, level models.AutonomyLevel) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "/proj", project)
		got = append(got, level)
	})

	require.NoError(t, svc.SetLevel(ctx, "/proj", models.AutonomyL4))
	require.NoError(t, svc.SetLevel(ctx, "/proj", models.AutonomyL5))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.AutonomyLevel{models.AutonomyL4, models.AutonomyL5}, got)
}

func TestRulesPersistIndependentOfLevel(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, models.DefaultAutonomyLevel)
	ctx := context.Background()

	require.NoError(t, svc.SetLevel(ctx, "/proj", models.AutonomyL5))
	require.NoError(t, svc.SetRules(ctx, "/proj", []string{"file_read"}, []string{"rm -rf"}))

	allow, block := svc.Rules(ctx, "/proj")
	assert.Equal(t, []string{"file_read"}, allow)
	assert.Equal(t, []string{"rm -rf"}, block)
}

func TestLevelFallsBackToDefaultOnStoreError(t *testing.T) {
	store := newMemStore()
	store.fail = true
	svc := NewService(store, models.DefaultAutonomyLevel)
	assert.Equal(t, models.DefaultAutonomyLevel, svc.Level(context.Background(), "/proj"))
}

func TestAllowsAutoExecutionThresholds(t *testing.T) {
	cases := []struct {
		level models.AutonomyLevel
		auto  []models.RiskLevel
		gated []models.RiskLevel
	}{
		{models.AutonomyL1, nil, []models.RiskLevel{models.RiskSafe, models.RiskModerate, models.RiskDestructive, models.RiskCritical}},
		{models.AutonomyL2, []models.RiskLevel{models.RiskSafe}, []models.RiskLevel{models.RiskModerate, models.RiskDestructive, models.RiskCritical}},
		{models.AutonomyL3, []models.RiskLevel{models.RiskSafe, models.RiskModerate}, []models.RiskLevel{models.RiskDestructive, models.RiskCritical}},
		{models.AutonomyL4, []models.RiskLevel{models.RiskSafe, models.RiskModerate, models.RiskDestructive}, []models.RiskLevel{models.RiskCritical}},
		{models.AutonomyL5, []models.RiskLevel{models.RiskSafe, models.RiskModerate, models.RiskDestructive, models.RiskCritical}, nil},
	}
	for _, tc := range cases {
		for _, risk := range tc.auto {
			assert.True(t, tc.level.AllowsAutoExecution(risk), "%s should auto-execute %s", tc.level, risk)
		}
		for _, risk := range tc.gated {
			assert.False(t, tc.level.AllowsAutoExecution(risk), "%s should gate %s", tc.level, risk)
		}
	}
}
