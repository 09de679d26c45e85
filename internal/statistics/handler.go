package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
	"github.com/mvukovic/trophystats/internal/workouts"
	"github.com/mvukovic/trophystats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=statistics_test

type aggregator interface {
	FullRecompute(ctx context.Context, userID string) (*UserStatistics, error)
	Increment(ctx context.Context, userID string, event workouts.Event) (*UserStatistics, error)
	HandleDeletion(ctx context.Context, userID string) (*UserStatistics, error)
}

type statsGetter interface {
	Get(ctx context.Context, userID string) (*UserStatistics, error)
}

type Handler struct {
	aggregator aggregator
	stats      statsGetter
}

func NewHandler(aggregator aggregator, stats statsGetter) *Handler {
	return &Handler{
		aggregator: aggregator,
		stats:      stats,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/stats/user/{userID}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-stats")
	router.HandleFunc("/stats/user/{userID}/recompute", handler.HandleRecompute).Methods("POST", "OPTIONS").Name("recompute-stats")
}

// HandleGet returns the stored snapshot; a user never seen before
// gets freshly computed (all zero) statistics instead of a 404
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.statistics.get")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	stats, err := handler.stats.Get(ctx, userID)
	if errors.Is(err, ErrStatsNotFound) {
		stats, err = handler.aggregator.FullRecompute(ctx, userID)
	}
	if err != nil {
		log.Errorf("failed to get stats for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to get user statistics", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal stats for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to get user statistics", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func (handler *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.statistics.recompute")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	stats, err := handler.aggregator.FullRecompute(ctx, userID)
	if err != nil {
		log.Errorf("failed to recompute stats for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to recompute user statistics", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal stats for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to recompute user statistics", http.StatusInternalServerError)
		return
	}

	log.Debugf("stats recomputed for user [%s]", userID)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}
