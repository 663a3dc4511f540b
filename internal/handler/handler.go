package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/savi-dev/savi/internal/service"
	"github.com/savi-dev/savi/shared/config"
	"github.com/savi-dev/savi/shared/logger"
)

// Pinger reports backing-store health for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth         service.AuthService
	thread       service.ThreadService
	comment      service.CommentService
	vote         service.VoteService
	notification service.NotificationService
	health       Pinger
	cfg          *config.Config
}

func New(
	auth service.AuthService,
	thread service.ThreadService,
	comment service.CommentService,
	vote service.VoteService,
	notification service.NotificationService,
	health Pinger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		auth:         auth,
		thread:       thread,
		comment:      comment,
		vote:         vote,
		notification: notification,
		health:       health,
		cfg:          cfg,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
