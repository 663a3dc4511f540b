package setup

import (
	"github.com/savi-dev/savi/internal/handler"
	"github.com/savi-dev/savi/internal/service"
	"github.com/savi-dev/savi/internal/storage/forum"
	"github.com/savi-dev/savi/internal/storage/kv"
	"github.com/savi-dev/savi/internal/storage/notify"
	"github.com/savi-dev/savi/internal/storage/users"
	"github.com/savi-dev/savi/internal/storage/votes"
	"github.com/savi-dev/savi/shared/config"
	"github.com/savi-dev/savi/shared/jwt"
	"github.com/savi-dev/savi/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Store          kv.Store
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	store, err := kv.New(cfg.Public.Storage)
	if err != nil {
		return nil, err
	}

	userStorage := users.New(store)
	notifyStorage := notify.New(store)
	voteStorage := votes.New(store)
	forumStorage := forum.New()

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	notification := service.NewNotification(notifyStorage, userStorage)
	auth := service.NewAuth(userStorage, jwtService, notification, &cfg.Public)
	thread := service.NewThread(forumStorage)
	comment := service.NewComment(forumStorage, notification)
	vote := service.NewVote(forumStorage, voteStorage)

	h := handler.New(auth, thread, comment, vote, notification, store, cfg)
	authMw := middleware.NewAuth(jwtService, cfg.Public.SecureCookies)

	return &Dependencies{
		Store:          store,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: authMw,
		Config:         cfg,
	}, nil
}

// Cleanup releases resources held by the dependency graph.
func (d *Dependencies) Cleanup() error {
	return d.Store.Close()
}
