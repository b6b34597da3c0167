package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/internal/users"
	"github.com/mkovacev/liftcycle/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type engine interface {
	SetTrainingMax(ctx context.Context, userID int, w Weights, weekOffset int) error
	SetIncrement(ctx context.Context, userID int, w Weights) error
	AdvanceAll(ctx context.Context) (failed int, err error)
	CurrentWeek(ctx context.Context, userID int) (week int, start, end time.Time, err error)
}

type usersRepo interface {
	Get(ctx context.Context, name string) (*users.User, error)
	GetOrCreate(ctx context.Context, name, email string) (*users.User, error)
}

type Handler struct {
	engine engine
	users  usersRepo
}

func NewHandler(engine engine, usersRepo usersRepo) *Handler {
	return &Handler{
		engine: engine,
		users:  usersRepo,
	}
}

type SetTrainingMaxRequest struct {
	TrainingMax Weights `json:"trainingMax"`
	WeekOffset  int     `json:"weekOffset,omitempty"`
	Email       string  `json:"email,omitempty"`
}

type CurrentWeekResponse struct {
	Week  int       `json:"week"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AdvanceAllResponse struct {
	FailedUsers int `json:"failedUsers"`
}

// HandleSetTrainingMax seeds or overwrites a user's training max,
// creating the account on first use.
func (handler *Handler) HandleSetTrainingMax(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.setTrainingMax")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	name := mux.Vars(r)["user"]
	if name == "" {
		http.Error(w, "error, user name empty", http.StatusBadRequest)
		return
	}

	var req SetTrainingMaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set training max, unmarshal json params: %s", err)
		http.Error(w, "set training max failed", http.StatusBadRequest)
		return
	}

	user, err := handler.users.GetOrCreate(ctx, name, req.Email)
	if err != nil {
		log.Errorf("set training max, get or create user %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := handler.engine.SetTrainingMax(ctx, user.ID, req.TrainingMax, req.WeekOffset); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("set training max for %s: %s", name, err)
		http.Error(w, "error, failed to set training max", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "training max set")
}

// HandleSetIncrement fully replaces a user's progression increment.
func (handler *Handler) HandleSetIncrement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.setIncrement")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	name := mux.Vars(r)["user"]
	if name == "" {
		http.Error(w, "error, user name empty", http.StatusBadRequest)
		return
	}

	var increment Weights
	if err := json.NewDecoder(r.Body).Decode(&increment); err != nil {
		log.Tracef("set increment, unmarshal json params: %s", err)
		http.Error(w, "set increment failed", http.StatusBadRequest)
		return
	}

	user, err := handler.users.Get(ctx, name)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("set increment, get user %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := handler.engine.SetIncrement(ctx, user.ID, increment); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("set increment for %s: %s", name, err)
		http.Error(w, "error, failed to set increment", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "increment set")
}

// HandleCurrentWeek returns the current training week and its date range.
func (handler *Handler) HandleCurrentWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.currentWeek")
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
		log.Errorf("current week, get user %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	week, start, end, err := handler.engine.CurrentWeek(ctx, user.ID)
	if err != nil {
		if errors.Is(err, ErrNotSeeded) || errors.Is(err, ErrNoCurrentCycle) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("current week for %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(CurrentWeekResponse{Week: week, Start: start, End: end})
	if err != nil {
		log.Errorf("marshal current week response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, respJson)
}

// HandleAdvanceAll runs auto-progression for all active users.
func (handler *Handler) HandleAdvanceAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.advanceAll")
	defer span.End()

	failed, err := handler.engine.AdvanceAll(ctx)
	if err != nil {
		log.Errorf("advance all: %s", err)
		http.Error(w, "error, failed to advance users", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AdvanceAllResponse{FailedUsers: failed})
	if err != nil {
		log.Errorf("marshal advance all response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, respJson)
}
