package accessory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/internal/users"
	"github.com/mkovacev/liftcycle/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type usersRepo interface {
	Get(ctx context.Context, name string) (*users.User, error)
}

type Handler struct {
	repo  *Repo
	users usersRepo
}

func NewHandler(repo *Repo, usersRepo usersRepo) *Handler {
	return &Handler{
		repo:  repo,
		users: usersRepo,
	}
}

// HandleSetPlan publishes a new accessory plan for the user.
func (handler *Handler) HandleSetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accessory.setPlan")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	user, ok := handler.requestUser(ctx, w, r)
	if !ok {
		return
	}

	var plan []Exercise
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("set accessory plan, unmarshal json params: %s", err)
		http.Error(w, "set accessory plan failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetPlan(ctx, user.ID, plan); err != nil {
		if errors.Is(err, ErrInvalidPlan) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("set accessory plan for %s: %s", user.Name, err)
		http.Error(w, "error, failed to set accessory plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "accessory plan set")
}

// HandleGetPlan returns the newest published accessory plan.
func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accessory.getPlan")
	defer span.End()

	user, ok := handler.requestUser(ctx, w, r)
	if !ok {
		return
	}

	plan, err := handler.repo.LatestPlan(ctx, user.ID)
	if err != nil {
		log.Errorf("get accessory plan for %s: %s", user.Name, err)
		http.Error(w, "error, failed to get accessory plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal accessory plan: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, planJson)
}

func (handler *Handler) requestUser(ctx context.Context, w http.ResponseWriter, r *http.Request) (*users.User, bool) {
	name := mux.Vars(r)["user"]
	if name == "" {
		http.Error(w, "error, user name empty", http.StatusBadRequest)
		return nil, false
	}

	user, err := handler.users.Get(ctx, name)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get user %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}
