package app

import (
	patternAPI "roulette_patterns/internal/api/pattern"
	sessionAPI "roulette_patterns/internal/api/session"
	"roulette_patterns/internal/config"
	"roulette_patterns/internal/config/env"
	"roulette_patterns/internal/logger"
	"roulette_patterns/internal/middleware"
	"roulette_patterns/internal/repository/session_repo"
	"roulette_patterns/internal/service"
	"roulette_patterns/internal/service/pattern"
	"roulette_patterns/internal/service/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logger
	loggerCfg config.LoggerConfig
	log       *zap.Logger

	// Session bits
	jwtCfg      config.JWTConfig
	sessionCfg  config.SessionConfig
	sessionRepo *session_repo.Repo[*pattern.Analyzer]
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Pattern bits
	thresholdCfg config.ThresholdConfig
	patternServ  service.PatternService
	patternHand  *patternAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LoggerCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) SessionRepository() *session_repo.Repo[*pattern.Analyzer] {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository[*pattern.Analyzer](sp.SessionCfg().IdleTTL())
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) SessionService() service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(sp.SessionRepository(), sp.JWTCfg(), sp.Logger())
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) SessionHandler() *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv: sp.SessionService(),
			Log:  sp.Logger(),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) ThresholdCfg() config.ThresholdConfig {
	if sp.thresholdCfg == nil {
		cfg, err := env.NewThresholdConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get threshold config: " + err.Error())
		}
		sp.thresholdCfg = cfg
	}
	return sp.thresholdCfg
}

func (sp *ServiceProvider) PatternService() service.PatternService {
	if sp.patternServ == nil {
		sp.patternServ = pattern.NewPatternService(sp.SessionRepository(), sp.ThresholdCfg(), sp.Logger())
	}
	return sp.patternServ
}

func (sp *ServiceProvider) PatternHandler() *patternAPI.Handler {
	if sp.patternHand == nil {
		sp.patternHand = patternAPI.NewHandler(patternAPI.HandlerDeps{
			Serv: sp.PatternService(),
			Log:  sp.Logger(),
		})
	}
	return sp.patternHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		sessionHandler := sp.SessionHandler()
		patternHandler := sp.PatternHandler()
		auth := middleware.SessionAuth(sp.JWTCfg(), sp.Logger())

		// Открытие сессии без токена
		r.Post("/sessions", sessionHandler.Open)

		r.Group(func(rr chi.Router) {
			rr.Use(auth)

			rr.Delete("/sessions", sessionHandler.Close)

			rr.Post("/outcomes", patternHandler.AddOutcome)
			rr.Get("/outcomes", patternHandler.Sequence)
			rr.Delete("/outcomes/last", patternHandler.RemoveLast)
			rr.Get("/outcomes/recent", patternHandler.Recent)

			rr.Get("/history", patternHandler.History)
			rr.Get("/streaks", patternHandler.Streaks)
			rr.Get("/recommendations", patternHandler.Recommendations)
			rr.Get("/statistics", patternHandler.Statistics)
		})

		sp.router = r
	}

	return sp.router
}
