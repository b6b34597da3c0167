package plan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkovacev/liftcycle/internal/progression"
	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/internal/users"
	"github.com/mkovacev/liftcycle/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plan_test

type progressionEngine interface {
	CurrentCycle(ctx context.Context, userID int) (*progression.Cycle, int, error)
}

type usersRepo interface {
	Get(ctx context.Context, name string) (*users.User, error)
}

type Handler struct {
	engine progressionEngine
	users  usersRepo
}

func NewHandler(engine progressionEngine, usersRepo usersRepo) *Handler {
	return &Handler{
		engine: engine,
		users:  usersRepo,
	}
}

type GetPlanResponse struct {
	Week      int            `json:"week"`
	Sets      []Set          `json:"sets"`
	Reference []ReferenceRow `json:"reference"`
}

// HandleGetPlan returns the set/rep/weight plan for the user's current
// week, or for explicitly requested weeks via ?weeks=1,2.
func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.get")
	defer span.End()

	name := mux.Vars(r)["user"]
	if name == "" {
		http.Error(w, "error, user name empty", http.StatusBadRequest)
		return
	}

	user, err := handler.users.Get(ctx, name)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get plan, get user %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	cycle, currentWeek, err := handler.engine.CurrentCycle(ctx, user.ID)
	if err != nil {
		if errors.Is(err, progression.ErrNotSeeded) || errors.Is(err, progression.ErrNoCurrentCycle) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("get plan, current cycle for %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	weeks := []int{currentWeek}
	if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
		weeks, err = parseWeeks(weeksParam)
		if err != nil {
			http.Error(w, "error, invalid weeks param", http.StatusBadRequest)
			return
		}
	}

	sets := Generate(cycle.TrainingMax, weeks)
	respJson, err := json.Marshal(GetPlanResponse{
		Week:      currentWeek,
		Sets:      sets,
		Reference: Reference(sets),
	})
	if err != nil {
		log.Errorf("marshal plan response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, respJson)
}

func parseWeeks(param string) ([]int, error) {
	parts := strings.Split(param, ",")
	weeks := make([]int, 0, len(parts))
	for _, part := range parts {
		week, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	return weeks, nil
}
