package services

import (
	"context"
	"fmt"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/projectautonomy"
	"github.com/praxislabs/praxis/pkg/models"
)

// AutonomyStore persists per-project autonomy settings. It backs
// pkg/autonomy's Store interface. L5 never reaches this store: the autonomy
// service keeps YOLO in memory only.
type AutonomyStore struct {
	client *ent.Client
}

// NewAutonomyStore creates a new AutonomyStore.
func NewAutonomyStore(client *ent.Client) *AutonomyStore {
	return &AutonomyStore{client: client}
}

// Get returns the stored settings for a project, or (nil, nil) when the
// project has none.
func (s *AutonomyStore) Get(ctx context.Context, projectPath string) (*models.AutonomySettings, error) {
	if projectPath == "" {
		return nil, NewValidationError("project_path", "required")
	}

	row, err := s.client.ProjectAutonomy.Query().
		Where(projectautonomy.ProjectPathEQ(projectPath)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get autonomy settings: %w", err)
	}

	level, err := models.ParseAutonomyLevel(string(row.Level))
	if err != nil {
		return nil, fmt.Errorf("stored autonomy level for %q is invalid: %w", projectPath, err)
	}

	return &models.AutonomySettings{
		ProjectPath: row.ProjectPath,
		Level:       level,
		Allowlist:   row.Allowlist,
		Blocklist:   row.Blocklist,
	}, nil
}

// SaveLevel persists the project's autonomy level (L1 through L4 only).
func (s *AutonomyStore) SaveLevel(ctx context.Context, projectPath string, level models.AutonomyLevel) error {
	if level == models.AutonomyL5 {
		return fmt.Errorf("%w: level L5 is session-only and never persisted", ErrInvalidInput)
	}
	if !level.Valid() {
		return fmt.Errorf("%w: unknown autonomy level %d", ErrInvalidInput, level)
	}

	return s.upsert(ctx, projectPath, func(u *ent.ProjectAutonomyUpdate) {
		u.SetLevel(projectautonomy.Level(level.String()))
	}, func(c *ent.ProjectAutonomyCreate) {
		c.SetLevel(projectautonomy.Level(level.String()))
	})
}

// SaveRules persists the project's allow and block lists.
func (s *AutonomyStore) SaveRules(ctx context.Context, projectPath string, allowlist, blocklist []string) error {
	return s.upsert(ctx, projectPath, func(u *ent.ProjectAutonomyUpdate) {
		u.SetAllowlist(allowlist).SetBlocklist(blocklist)
	}, func(c *ent.ProjectAutonomyCreate) {
		c.SetAllowlist(allowlist).SetBlocklist(blocklist)
	})
}

func (s *AutonomyStore) upsert(ctx context.Context, projectPath string, update func(*ent.ProjectAutonomyUpdate), create func(*ent.ProjectAutonomyCreate)) error {
	if projectPath == "" {
		return NewValidationError("project_path", "required")
	}

	u := s.client.ProjectAutonomy.Update().
		Where(projectautonomy.ProjectPathEQ(projectPath)).
		SetUpdatedAt(time.Now())
	update(u)

	count, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update autonomy settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	c := s.client.ProjectAutonomy.Create().
		SetProjectPath(projectPath).
		SetUpdatedAt(time.Now())
	create(c)

	if err := c.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; retry as update
			u := s.client.ProjectAutonomy.Update().
				Where(projectautonomy.ProjectPathEQ(projectPath)).
				SetUpdatedAt(time.Now())
			update(u)
			if _, err := u.Save(ctx); err != nil {
				return fmt.Errorf("failed to update autonomy settings after create race: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to create autonomy settings: %w", err)
	}
	return nil
}
