// Package api exposes the encounter workflow over HTTP. Sessions live in
// memory inside the server process; restarting the server abandons them.
package api

import (
	"math/rand/v2"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/avyukth/medsim/internal/evaluate"
	"github.com/avyukth/medsim/internal/interview"
	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
	"github.com/avyukth/medsim/internal/session"
	"github.com/avyukth/medsim/internal/store"
)

// Options carries the server dependencies.
type Options struct {
	Config    Config
	Provider  llm.Provider
	EventRepo store.EventRepo

	// Rand seeds each session's manager. Nil uses a default source.
	Rand *rand.Rand
}

// Server routes encounter operations to per-session managers.
type Server struct {
	cfg       Config
	provider  llm.Provider
	eventRepo store.EventRepo
	rng       *rand.Rand
	log       zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*session.Manager
}

// NewServer creates a server with an empty session registry.
func NewServer(opts Options) *Server {
	return &Server{
		cfg:       opts.Config,
		provider:  opts.Provider,
		eventRepo: opts.EventRepo,
		rng:       opts.Rand,
		log:       newLogger(),
		sessions:  make(map[string]*session.Manager),
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.log))

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.AllowedOrigins) == 1 && s.cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	{
		api.POST("/session", s.createSession)
		api.GET("/session/:id", s.getSession)
		api.POST("/session/:id/case", s.startCase)
		api.POST("/session/:id/question", s.askQuestion)
		api.GET("/session/:id/vitals", s.vitalSigns)
		api.POST("/session/:id/exam", s.performExam)
		api.POST("/session/:id/diagnosis", s.submitDiagnosis)
		api.GET("/session/:id/hint", s.hint)
	}
	return r
}

// Run serves on the configured address until the listener fails.
func (s *Server) Run() error {
	s.log.Info().Str("addr", s.cfg.Addr).Msg("starting server")
	return s.Router().Run(s.cfg.Addr)
}

func (s *Server) newSession() *session.Manager {
	m := session.NewManager(session.Options{
		Provider:        s.provider,
		EventRepo:       s.eventRepo,
		Rand:            s.rng,
		PatientConfig:   patient.DefaultConfig(),
		InterviewConfig: interview.DefaultConfig(),
		EvaluateConfig:  evaluate.DefaultConfig(),
	})
	s.mu.Lock()
	s.sessions[m.ID()] = m
	s.mu.Unlock()
	return m
}

func (s *Server) lookup(id string) *session.Manager {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}
