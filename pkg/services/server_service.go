package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/ent/toolapproval"
	"github.com/praxislabs/praxis/pkg/models"
)

// ServerService manages external tool server configurations and their
// per-tool approvals. It also implements the connection-outcome store the
// ETP manager writes through (MarkConnected / MarkError).
type ServerService struct {
	client *ent.Client
}

// NewServerService creates a new ServerService.
func NewServerService(client *ent.Client) *ServerService {
	return &ServerService{client: client}
}

// CreateServer persists a new external server configuration.
func (s *ServerService) CreateServer(ctx context.Context, cfg models.ExternalServerConfig) (*ent.ExternalServer, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	if cfg.Trust == "" {
		cfg.Trust = models.TrustUserAdded
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	builder := s.client.ExternalServer.Create().
		SetID(cfg.ID).
		SetName(cfg.Name).
		SetDescription(cfg.Description).
		SetTransport(externalserver.Transport(cfg.Transport)).
		SetTrust(externalserver.Trust(cfg.Trust)).
		SetSandboxEnabled(cfg.SandboxEnabled).
		SetCategory(cfg.Category).
		SetEnabled(cfg.Enabled).
		SetCreatedAt(time.Now())

	applyTransportFields(builder.Mutation(), cfg)

	server, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	return server, nil
}

// GetServer retrieves a server by ID.
func (s *ServerService) GetServer(ctx context.Context, serverID string) (*ent.ExternalServer, error) {
	server, err := s.client.ExternalServer.Query().
		Where(externalserver.IDEQ(serverID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}
	return server, nil
}

// ListServers returns all configured servers, optionally only enabled ones.
func (s *ServerService) ListServers(ctx context.Context, enabledOnly bool) ([]*ent.ExternalServer, error) {
	query := s.client.ExternalServer.Query()
	if enabledOnly {
		query = query.Where(externalserver.EnabledEQ(true))
	}
	servers, err := query.Order(ent.Asc(externalserver.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return servers, nil
}

// UpdateServer replaces a server's mutable configuration.
func (s *ServerService) UpdateServer(ctx context.Context, serverID string, cfg models.ExternalServerConfig) (*ent.ExternalServer, error) {
	cfg.ID = serverID
	if cfg.Trust == "" {
		cfg.Trust = models.TrustUserAdded
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	builder := s.client.ExternalServer.UpdateOneID(serverID).
		SetName(cfg.Name).
		SetDescription(cfg.Description).
		SetTransport(externalserver.Transport(cfg.Transport)).
		SetTrust(externalserver.Trust(cfg.Trust)).
		SetSandboxEnabled(cfg.SandboxEnabled).
		SetCategory(cfg.Category).
		SetEnabled(cfg.Enabled)

	clearTransportFields(builder)
	applyTransportFields(builder.Mutation(), cfg)

	server, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update server: %w", err)
	}
	return server, nil
}

// DeleteServer removes a server; its tool approvals cascade with it.
func (s *ServerService) DeleteServer(ctx context.Context, serverID string) error {
	err := s.client.ExternalServer.DeleteOneID(serverID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete server: %w", err)
	}
	return nil
}

// MarkConnected records a successful connection and clears any prior error.
func (s *ServerService) MarkConnected(ctx context.Context, serverID string, at time.Time) error {
	err := s.client.ExternalServer.UpdateOneID(serverID).
		SetLastConnected(at).
		ClearLastError().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark server connected: %w", err)
	}
	return nil
}

// MarkError records a connection failure message.
func (s *ServerService) MarkError(ctx context.Context, serverID string, msg string) error {
	err := s.client.ExternalServer.UpdateOneID(serverID).
		SetLastError(msg).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark server error: %w", err)
	}
	return nil
}

// ImportMCPServers creates a server per mcpServers entry. Entries whose name
// already exists are skipped, not overwritten. Imported servers are
// user_added with the sandbox on.
func (s *ServerService) ImportMCPServers(ctx context.Context, file models.MCPServersFile) (created []*ent.ExternalServer, skipped []string, err error) {
	for name, entry := range file.MCPServers {
		cfg := models.ExternalServerConfig{
			Name:           name,
			Trust:          models.TrustUserAdded,
			SandboxEnabled: true,
			Enabled:        true,
			Command:        entry.Command,
			Args:           entry.Args,
			Env:            entry.Env,
			URL:            entry.URL,
			Headers:        entry.Headers,
		}
		if entry.URL != "" {
			cfg.Transport = models.TransportHTTP
		} else {
			cfg.Transport = models.TransportStdio
		}

		server, err := s.CreateServer(ctx, cfg)
		if err != nil {
			if err == ErrAlreadyExists {
				skipped = append(skipped, name)
				continue
			}
			return created, skipped, fmt.Errorf("failed to import server %q: %w", name, err)
		}
		created = append(created, server)
	}
	return created, skipped, nil
}

// SetToolApproval records whether a specific tool of a server is blessed.
func (s *ServerService) SetToolApproval(ctx context.Context, serverID, toolName string, approved bool) error {
	if toolName == "" {
		return NewValidationError("tool_name", "required")
	}

	existing, err := s.client.ToolApproval.Query().
		Where(
			toolapproval.ServerIDEQ(serverID),
			toolapproval.ToolNameEQ(toolName),
		).
		Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().SetApproved(approved)
		if approved {
			update = update.SetApprovedAt(time.Now())
		} else {
			update = update.ClearApprovedAt()
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update tool approval: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		builder := s.client.ToolApproval.Create().
			SetServerID(serverID).
			SetToolName(toolName).
			SetApproved(approved)
		if approved {
			builder = builder.SetApprovedAt(time.Now())
		}
		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Unknown server, or a concurrent insert won
				return ErrNotFound
			}
			return fmt.Errorf("failed to create tool approval: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to query tool approval: %w", err)
	}
}

// ListToolApprovals returns a server's tool approvals.
func (s *ServerService) ListToolApprovals(ctx context.Context, serverID string) ([]*ent.ToolApproval, error) {
	approvals, err := s.client.ToolApproval.Query().
		Where(toolapproval.ServerIDEQ(serverID)).
		Order(ent.Asc(toolapproval.FieldToolName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool approvals: %w", err)
	}
	return approvals, nil
}

// ToConfig converts a persisted server row into the config shape the ETP
// manager and the API speak.
func ToConfig(server *ent.ExternalServer) models.ExternalServerConfig {
	cfg := models.ExternalServerConfig{
		ID:             server.ID,
		Name:           server.Name,
		Description:    server.Description,
		Transport:      models.TransportKind(server.Transport),
		Args:           server.Args,
		Env:            server.Env,
		Headers:        server.Headers,
		Trust:          models.TrustLevel(server.Trust),
		SandboxEnabled: server.SandboxEnabled,
		Category:       server.Category,
		Enabled:        server.Enabled,
		CreatedAt:      server.CreatedAt,
		LastConnected:  server.LastConnected,
	}
	if server.Command != nil {
		cfg.Command = *server.Command
	}
	if server.URL != nil {
		cfg.URL = *server.URL
	}
	if server.LastError != nil {
		cfg.LastError = *server.LastError
	}
	return cfg
}

// applyTransportFields sets the fields belonging to the config's transport.
// The mutation is shared by the create and update builders.
func applyTransportFields(m *ent.ExternalServerMutation, cfg models.ExternalServerConfig) {
	switch cfg.Transport {
	case models.TransportStdio:
		m.SetCommand(cfg.Command)
		if len(cfg.Args) > 0 {
			m.SetArgs(cfg.Args)
		}
		if len(cfg.Env) > 0 {
			m.SetEnv(cfg.Env)
		}
	case models.TransportHTTP:
		m.SetURL(cfg.URL)
		if len(cfg.Headers) > 0 {
			m.SetHeaders(cfg.Headers)
		}
	}
}

// clearTransportFields wipes both transports' fields so an update can switch
// a server between stdio and http without leftovers.
func clearTransportFields(u *ent.ExternalServerUpdateOne) {
	u.ClearCommand().ClearArgs().ClearEnv().ClearURL().ClearHeaders()
}
