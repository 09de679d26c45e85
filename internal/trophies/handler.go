package trophies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trophystats/internal/middleware"
	"github.com/mvukovic/trophystats/internal/telemetry/metrics"
	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
	"github.com/mvukovic/trophystats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trophies_test

type evaluator interface {
	EvaluateAll(ctx context.Context, userID string) ([]AwardResult, error)
	ProgressReport(ctx context.Context, userID string, includeHidden bool) ([]ProgressEntry, error)
	Reevaluate(ctx context.Context, trophyIDs []uuid.UUID, userIDs []string) (*ReevaluateResult, error)
}

type catalogRepo interface {
	ListTrophies(ctx context.Context, activeOnly bool) ([]Trophy, error)
	MarkNotified(ctx context.Context, userID string, trophyID uuid.UUID) error
}

type EvaluateResponse struct {
	Awards []AwardResult `json:"awards"`
	Total  int           `json:"total"`
}

type ProgressResponse struct {
	Entries []ProgressEntry `json:"entries"`
	Total   int             `json:"total"`
}

type ReevaluateRequest struct {
	TrophyIDs []uuid.UUID `json:"trophyIds,omitempty"`
	UserIDs   []string    `json:"userIds,omitempty"`
}

type Handler struct {
	evaluator evaluator
	repo      catalogRepo
	cache     *freecache.Cache
	cacheTTL  int // seconds
}

func NewHandler(evaluator evaluator, repo catalogRepo, cacheTTLSeconds int) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		evaluator: evaluator,
		repo:      repo,
		cache:     freecache.NewCache(10 * megabyte),
		cacheTTL:  cacheTTLSeconds,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	reevaluateAllowedPerMin int,
) {
	router.HandleFunc("/trophies", handler.HandleListCatalog).Methods("GET", "OPTIONS").Name("list-trophies")
	router.HandleFunc("/trophies/user/{userID}/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("trophy-progress")
	router.HandleFunc("/trophies/user/{userID}/evaluate", handler.HandleEvaluate).Methods("POST", "OPTIONS").Name("evaluate-trophies")
	router.HandleFunc("/trophies/user/{userID}/seen/{trophyID}", handler.HandleSeen).Methods("POST", "OPTIONS").Name("trophy-seen")

	// reevaluation walks all active users, keep it rate limited
	reevaluateSubrouter := router.PathPrefix("/trophies/reevaluate").Subrouter()
	reevaluateSubrouter.HandleFunc("", handler.HandleReevaluate).Methods("POST", "OPTIONS").Name("reevaluate-trophies")
	if rateLimiter != nil {
		reevaluateSubrouter.Use(middleware.RateLimit(rateLimiter, metricsManager, "reevaluate", reevaluateAllowedPerMin))
	}
}

func (handler *Handler) HandleListCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trophies.listCatalog")
	defer span.End()

	trophies, err := handler.repo.ListTrophies(ctx, true)
	if err != nil {
		log.Errorf("failed to list trophies: %s", err)
		http.Error(w, "error, failed to list trophies", http.StatusInternalServerError)
		return
	}

	trophiesJson, err := json.Marshal(trophies)
	if err != nil {
		log.Errorf("failed to marshal trophies: %s", err)
		http.Error(w, "error, failed to list trophies", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, trophiesJson)
}

// HandleProgress serves the progress report, cached for a short while
// per user, the report is recomputed on every trophy evaluation anyway
func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trophies.progress")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	includeHidden := r.URL.Query().Get("includeHidden") == "true"

	cacheKey := []byte(fmt.Sprintf("progress::%s::%t", userID, includeHidden))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		log.Tracef("progress report for user [%s] served from cache", userID)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	entries, err := handler.evaluator.ProgressReport(ctx, userID, includeHidden)
	if err != nil {
		log.Errorf("failed to get progress report for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to get trophy progress", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ProgressResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("failed to marshal progress report for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to get trophy progress", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, respJson, handler.cacheTTL); err != nil {
		log.Warnf("failed to cache progress report for user [%s]: %s", userID, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trophies.evaluate")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	awards, err := handler.evaluator.EvaluateAll(ctx, userID)
	if err != nil {
		log.Errorf("failed to evaluate trophies for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to evaluate trophies", http.StatusInternalServerError)
		return
	}

	handler.invalidateProgressCache(userID)

	if awards == nil {
		awards = []AwardResult{}
	}
	respJson, err := json.Marshal(EvaluateResponse{
		Awards: awards,
		Total:  len(awards),
	})
	if err != nil {
		log.Errorf("failed to marshal awards for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to evaluate trophies", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleSeen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trophies.seen")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	trophyID, err := uuid.Parse(vars["trophyID"])
	if err != nil {
		http.Error(w, "error, trophy id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.MarkNotified(ctx, userID, trophyID); err != nil {
		if errors.Is(err, ErrUserTrophyNotFound) {
			http.Error(w, "trophy not earned", http.StatusNotFound)
			return
		}
		log.Errorf("failed to mark trophy [%s] seen for user [%s]: %s", trophyID, userID, err)
		http.Error(w, "error, failed to mark trophy seen", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "ok")
}

func (handler *Handler) HandleReevaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trophies.reevaluate")
	defer span.End()

	var reevaluateRequest ReevaluateRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&reevaluateRequest); err != nil {
			log.Tracef("reevaluate, unmarshal json params: %s", err)
			http.Error(w, "reevaluate failed", http.StatusBadRequest)
			return
		}
	}

	result, err := handler.evaluator.Reevaluate(ctx, reevaluateRequest.TrophyIDs, reevaluateRequest.UserIDs)
	if err != nil {
		// partial failures still carry counts worth reporting
		log.Errorf("trophies reevaluation finished with errors: %s", err)
	}
	if result == nil {
		http.Error(w, "error, failed to reevaluate trophies", http.StatusInternalServerError)
		return
	}

	handler.cache.Clear()

	respJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal reevaluate result: %s", err)
		http.Error(w, "error, failed to reevaluate trophies", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) invalidateProgressCache(userID string) {
	handler.cache.Del([]byte(fmt.Sprintf("progress::%s::true", userID)))
	handler.cache.Del([]byte(fmt.Sprintf("progress::%s::false", userID)))
}
