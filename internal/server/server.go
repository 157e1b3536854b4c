package server

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bld/internal/apperr"
	"bld/internal/auth"
	"bld/internal/storage/sqlite"
)

// Options tunes the optional parts of the server.
type Options struct {
	// StaticDir holds a compiled single-page frontend. Empty serves the built-in dashboard only.
	StaticDir string
	// SecureCookie marks the session cookie Secure (HTTPS only).
	SecureCookie bool
	// LoginRate and LoginBurst throttle login attempts per client IP.
	LoginRate  rate.Limit
	LoginBurst int
	// Now overrides the clock used by the dashboard views.
	Now func() time.Time
}

// Server provides the HTTP API and dashboard pages.
type Server struct {
	engine       *gin.Engine
	store        *sqlite.Store
	sessions     *auth.Sessions
	logger       *slog.Logger
	staticDir    string
	secureCookie bool
	loginLimiter *ipLimiter
	now          func() time.Time
}

// New constructs the HTTP server with routes and middleware configured.
func New(store *sqlite.Store, sessions *auth.Sessions, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.LoginRate == 0 {
		opts.LoginRate = rate.Every(12 * time.Second)
	}
	if opts.LoginBurst <= 0 {
		opts.LoginBurst = 5
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if err := registerValidations(); err != nil {
		panic(fmt.Sprintf("server: register validations: %v", err))
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{
		engine:       router,
		store:        store,
		sessions:     sessions,
		logger:       logger,
		staticDir:    opts.StaticDir,
		secureCookie: opts.SecureCookie,
		loginLimiter: newIPLimiter(opts.LoginRate, opts.LoginBurst),
		now:          opts.Now,
	}

	router.Use(srv.requestLogger)
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API, page and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", s.handleLogin)
			authGroup.POST("/logout", s.handleLogout)
			authGroup.GET("/session", s.requireSession, s.handleSession)
		}

		guarded := api.Group("", s.requireSession)
		{
			guarded.GET("/projects", s.handleListProjects)

			guarded.GET("/tasks", s.handleListTasks)
			guarded.POST("/tasks", s.handleCreateTask)
			guarded.PATCH("/tasks/:id", s.handleUpdateTask)
			guarded.DELETE("/tasks/:id", s.handleDeleteTask)

			guarded.GET("/deadlines", s.handleListDeadlines)
			guarded.POST("/deadlines", s.handleCreateDeadline)
			guarded.DELETE("/deadlines/:id", s.handleDeleteDeadline)

			guarded.GET("/links", s.handleListLinks)
			guarded.POST("/links", s.handleCreateLink)
			guarded.DELETE("/links/:id", s.handleDeleteLink)

			guarded.GET("/members", s.handleListMembers)
		}
	}

	s.engine.GET("/login", s.handleLoginPage)
	s.engine.GET("/dashboard", s.requirePageSession, s.handleDashboard)

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError logs the underlying error and writes the collapsed client message.
func (s *Server) respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	attrs := []any{
		slog.String("path", c.FullPath()),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", attrs...)
	} else {
		s.logger.Debug("request rejected", attrs...)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperr.Message(err)})
}

// respondSuccess writes payload as JSON, or only the status when payload is nil.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
