package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
	testdb "github.com/praxislabs/praxis/test/database"
)

func TestAutonomyStore_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewAutonomyStore(client.Client)
	ctx := context.Background()

	t.Run("missing project returns nil without error", func(t *testing.T) {
		settings, err := store.Get(ctx, "/never/seen")
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("round-trips persisted settings", func(t *testing.T) {
		require.NoError(t, store.SaveLevel(ctx, "/work/api", models.AutonomyL3))
		require.NoError(t, store.SaveRules(ctx, "/work/api",
			[]string{"read_file", "web_search"}, []string{"shell_exec"}))

		settings, err := store.Get(ctx, "/work/api")
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, "/work/api", settings.ProjectPath)
		assert.Equal(t, models.AutonomyL3, settings.Level)
		assert.Equal(t, []string{"read_file", "web_search"}, settings.Allowlist)
		assert.Equal(t, []string{"shell_exec"}, settings.Blocklist)
	})

	t.Run("requires project path", func(t *testing.T) {
		_, err := store.Get(ctx, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestAutonomyStore_SaveLevel(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewAutonomyStore(client.Client)
	ctx := context.Background()

	t.Run("persists every durable level", func(t *testing.T) {
		for _, level := range []models.AutonomyLevel{
			models.AutonomyL1,
			models.AutonomyL2,
			models.AutonomyL3,
			models.AutonomyL4,
		} {
			require.NoError(t, store.SaveLevel(ctx, "/p", level))

			settings, err := store.Get(ctx, "/p")
			require.NoError(t, err)
			require.NotNil(t, settings)
			assert.Equal(t, level, settings.Level)
		}
	})

	t.Run("rejects the yolo level", func(t *testing.T) {
		err := store.SaveLevel(ctx, "/p", models.AutonomyL5)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		err := store.SaveLevel(ctx, "/p", models.AutonomyLevel(99))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("requires project path", func(t *testing.T) {
		err := store.SaveLevel(ctx, "", models.AutonomyL2)
		assert.True(t, IsValidationError(err))
	})
}

func TestAutonomyStore_SaveRules(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewAutonomyStore(client.Client)
	ctx := context.Background()

	t.Run("creates row when project has no level yet", func(t *testing.T) {
		require.NoError(t, store.SaveRules(ctx, "/fresh", []string{"read_file"}, nil))

		settings, err := store.Get(ctx, "/fresh")
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, models.AutonomyL2, settings.Level, "rules-only rows keep the default level")
		assert.Equal(t, []string{"read_file"}, settings.Allowlist)
		assert.Empty(t, settings.Blocklist)
	})

	t.Run("updates rules without touching the level", func(t *testing.T) {
		require.NoError(t, store.SaveLevel(ctx, "/stable", models.AutonomyL4))
		require.NoError(t, store.SaveRules(ctx, "/stable", nil, []string{"delete_file"}))

		settings, err := store.Get(ctx, "/stable")
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, models.AutonomyL4, settings.Level)
		assert.Equal(t, []string{"delete_file"}, settings.Blocklist)
	})
}
