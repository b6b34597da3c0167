package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mkovacev/liftcycle/internal/progression"
	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/internal/users"
	"github.com/mkovacev/liftcycle/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type usersRepo interface {
	Get(ctx context.Context, name string) (*users.User, error)
}

type Handler struct {
	generator *Generator
	users     usersRepo
	cache     *freecache.Cache
	now       func() time.Time
}

func NewHandler(generator *Generator, usersRepo usersRepo) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		generator: generator,
		users:     usersRepo,
		cache:     freecache.NewCache(10 * megabyte),
		now:       time.Now,
	}
}

// HandleGetWorkout serves the weekly workout page for a user.
// Rendered pages are cached until the end of the day, since the page can
// only change when the training max or the calendar day does.
func (h *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.report.getWorkout")
	defer span.End()

	vars := mux.Vars(r)
	name := vars["user"]
	if name == "" {
		http.Error(w, "error, user name empty", http.StatusBadRequest)
		return
	}

	user, err := h.users.Get(ctx, name)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout, get user %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	cacheKey := []byte(fmt.Sprintf("workout-page||%d||%s", user.ID, h.now().Format(time.DateOnly)))
	if cached, err := h.cache.Get(cacheKey); err == nil {
		span.AddEvent("report cache hit")
		pkg.WriteResponseBytes(w, pkg.ContentType.HTML, cached, http.StatusOK)
		return
	}

	page, err := h.generator.WeeklyReport(ctx, *user)
	if err != nil {
		if errors.Is(err, progression.ErrNotSeeded) || errors.Is(err, progression.ErrNoIncrement) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Errorf("get workout for %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set(cacheKey, page, secondsUntilTomorrow(h.now())); err != nil {
		log.Warnf("cache workout page for %s: %s", name, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.HTML, page, http.StatusOK)
}

func secondsUntilTomorrow(now time.Time) int {
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return int(tomorrow.Sub(now).Seconds())
}
