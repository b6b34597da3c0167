package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type handlerRepo interface {
	Get(ctx context.Context, name string) (*User, error)
	SetPaused(ctx context.Context, userID int, paused bool) error
	Active(ctx context.Context) ([]User, error)
}

type Handler struct {
	repo handlerRepo
}

func NewHandler(repo handlerRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleSetPaused pauses or resumes a user's workout generation.
func (handler *Handler) HandleSetPaused(paused bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.setPaused")
		defer span.End()

		name := mux.Vars(r)["user"]
		if name == "" {
			http.Error(w, "error, user name empty", http.StatusBadRequest)
			return
		}

		user, err := handler.repo.Get(ctx, name)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			log.Errorf("set paused, get user %s: %s", name, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := handler.repo.SetPaused(ctx, user.ID, paused); err != nil {
			log.Errorf("set paused for %s: %s", name, err)
			http.Error(w, "error, failed to update pause state", http.StatusInternalServerError)
			return
		}

		if paused {
			pkg.WriteTextResponseOK(w, "workouts paused")
		} else {
			pkg.WriteTextResponseOK(w, "workouts resumed")
		}
	}
}

// HandleListActive returns all users with workout generation enabled.
func (handler *Handler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.listActive")
	defer span.End()

	activeUsers, err := handler.repo.Active(ctx)
	if err != nil {
		log.Errorf("list active users: %s", err)
		http.Error(w, "error, failed to list active users", http.StatusInternalServerError)
		return
	}

	usersJson, err := json.Marshal(activeUsers)
	if err != nil {
		log.Errorf("marshal active users: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, usersJson)
}
