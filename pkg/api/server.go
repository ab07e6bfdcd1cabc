// Package api exposes the agent runtime over HTTP: session submission and
// inspection, the approval flow, autonomy settings, external tool server
// management, the kill switch, the audit log, and a websocket event stream.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/praxislabs/praxis/pkg/approval"
	"github.com/praxislabs/praxis/pkg/autonomy"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/database"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/killswitch"
	"github.com/praxislabs/praxis/pkg/mcp"
	"github.com/praxislabs/praxis/pkg/queue"
	"github.com/praxislabs/praxis/pkg/services"
)

// wsWriteTimeout bounds a single websocket send. A client that cannot
// drain within this window loses the message, not the connection.
const wsWriteTimeout = 10 * time.Second

// Options collects the server's collaborators. Pool and MCP may be nil;
// the affected endpoints then degrade or return 503.
type Options struct {
	Config    *config.ServerConfig
	DB        *database.Client
	Sessions  *services.SessionService
	Steps     *services.StepService
	Audit     *services.AuditService
	Servers   *services.ServerService
	Approvals *approval.Manager
	Autonomy  *autonomy.Service
	Kill      *killswitch.Switch
	Pool      *queue.WorkerPool
	MCP       *mcp.Manager
	Hub       *events.Hub
}

// Server is the HTTP and websocket front of the runtime. It owns no
// domain state; every handler delegates to a service or manager.
type Server struct {
	cfg       *config.ServerConfig
	db        *database.Client
	sessions  *services.SessionService
	steps     *services.StepService
	audit     *services.AuditService
	servers   *services.ServerService
	approvals *approval.Manager
	autonomy  *autonomy.Service
	kill      *killswitch.Switch
	pool      *queue.WorkerPool
	mcp       *mcp.Manager

	connManager *events.ConnectionManager
	httpServer  *http.Server
}

// NewServer wires the HTTP server against its collaborators.
func NewServer(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)
	return &Server{
		cfg:         opts.Config,
		db:          opts.DB,
		sessions:    opts.Sessions,
		steps:       opts.Steps,
		audit:       opts.Audit,
		servers:     opts.Servers,
		approvals:   opts.Approvals,
		autonomy:    opts.Autonomy,
		kill:        opts.Kill,
		pool:        opts.Pool,
		mcp:         opts.MCP,
		connManager: events.NewConnectionManager(opts.Hub, wsWriteTimeout),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ready", s.readyHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/sessions", s.submitSession)
		v1.GET("/sessions", s.listSessions)
		v1.GET("/sessions/:id", s.getSession)
		v1.POST("/sessions/:id/cancel", s.cancelSession)
		v1.GET("/sessions/:id/steps", s.listSteps)

		v1.GET("/audit", s.listAudit)
		v1.GET("/audit/export", s.exportAudit)

		v1.GET("/approvals", s.listPendingApprovals)
		v1.POST("/approvals/:id/approve", s.approveAction)
		v1.POST("/approvals/:id/reject", s.rejectAction)

		v1.GET("/autonomy", s.getAutonomy)
		v1.PUT("/autonomy/level", s.setAutonomyLevel)
		v1.PUT("/autonomy/rules", s.setAutonomyRules)

		v1.GET("/servers", s.listServers)
		v1.POST("/servers", s.createServer)
		v1.POST("/servers/import", s.importServers)
		v1.GET("/servers/:id", s.getServer)
		v1.PUT("/servers/:id", s.updateServer)
		v1.DELETE("/servers/:id", s.deleteServer)
		v1.POST("/servers/:id/reconnect", s.reconnectServer)
		v1.GET("/servers/:id/tools", s.listToolApprovals)
		v1.PUT("/servers/:id/tools/:tool", s.setToolApproval)

		v1.GET("/kill", s.killStatus)
		v1.POST("/kill", s.triggerKill)
		v1.POST("/kill/reset", s.resetKill)

		v1.GET("/ws", s.wsHandler)
	}

	return r
}

// Start runs the HTTP server until Shutdown is called. Blocks.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", s.cfg.Addr())
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StartWithListener serves on a caller-provided listener. Tests use it
// to bind an OS-assigned port. Blocks like Start.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight
// requests up to the context deadline. Open websockets are closed by
// their request contexts.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
