package setup

import (
	"github.com/agora-dev/agora/internal/config"
	"github.com/agora-dev/agora/internal/handler"
	"github.com/agora-dev/agora/internal/jwt"
	"github.com/agora-dev/agora/internal/middleware"
	"github.com/agora-dev/agora/internal/service"
	"github.com/agora-dev/agora/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
// The storage handle is owned by the caller: Cleanup must be invoked on
// shutdown.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	thread := service.NewThread(storage, &cfg.Public)
	reply := service.NewReply(storage, &cfg.Public)

	h := handler.New(auth, thread, reply, cfg, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
