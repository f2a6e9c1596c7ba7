package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/export"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/pipeline"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/repository"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/staging"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/vision"
)

// Service carries the wired application behind the HTTP surface.
type Service struct {
	cfg       *common.Config
	generator vision.ContentGenerator
	batch     *pipeline.Batch
	commit    *pipeline.Commit
	patients  repository.PatientRepository
	templates repository.TemplateRepository
	profiles  repository.ProfileRepository
	exporter  *export.Service
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*staging.Session
}

func NewService(
	cfg *common.Config,
	gen vision.ContentGenerator,
	patients repository.PatientRepository,
	templates repository.TemplateRepository,
	profiles repository.ProfileRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		generator: gen,
		batch:     pipeline.NewBatch(gen, logger),
		commit:    pipeline.NewCommit(patients, templates, logger),
		patients:  patients,
		templates: templates,
		profiles:  profiles,
		exporter:  exporter,
		logger:    logger,
		sessions:  make(map[uuid.UUID]*staging.Session),
	}
}

// RegisterRoutes mounts the API. The analyze endpoint and the staging session
// surface feed the review workflow; the rest is the dashboard CRUD
// collaborator over the same store.
func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.POST("/ocr/analyze", s.Analyze)
	api.GET("/ocr/session", s.SessionState)
	api.POST("/ocr/session/next", s.SessionNext)
	api.POST("/ocr/session/prev", s.SessionPrev)
	api.PUT("/ocr/session/record", s.SessionEdit)
	api.DELETE("/ocr/session/record", s.SessionDelete)
	api.POST("/ocr/session/commit", s.SessionCommit)

	api.POST("/records/commit", s.CommitRecords)
	api.GET("/records", s.ListRecords)
	api.GET("/records/export", s.ExportRecords)
	api.GET("/records/:id", s.GetRecord)
	api.POST("/records", s.CreateRecord)
	api.PUT("/records/:id", s.UpdateRecord)
	api.DELETE("/records/:id", s.DeleteRecord)

	api.GET("/profiles", s.ListProfiles)
	api.POST("/profiles", s.CreateProfile)
	api.GET("/profiles/me", s.GetProfile)

	api.GET("/templates", s.ListTemplates)
	api.POST("/templates", s.CreateTemplate)
	api.PUT("/templates/:id", s.UpdateTemplate)
	api.DELETE("/templates/:id", s.DeleteTemplate)
}

// session returns the staging session for one clinic owner, creating it on
// first use. One session per owner; a new batch discards the previous one.
func (s *Service) session(profileID uuid.UUID) *staging.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[profileID]
	if !ok {
		sess = staging.NewSession()
		s.sessions[profileID] = sess
	}
	return sess
}

// profileID reads and validates the owner namespace header.
func (s *Service) profileID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get("X-Profile-ID")
	if raw == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "X-Profile-ID header is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "X-Profile-ID must be a UUID")
	}
	return id, nil
}

// errorHandler renders every error as the {"error": string} body shape the
// dashboard expects.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
		if code >= http.StatusInternalServerError {
			logger.Error("http.request_failed", "path", c.Path(), "error", err)
		}
		_ = c.JSON(code, map[string]string{"error": msg})
	}
}
