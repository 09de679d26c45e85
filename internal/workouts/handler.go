package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
	"github.com/mvukovic/trophystats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddSession(ctx context.Context, session Session) (*Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, userID string, id int) error
	ListSessions(ctx context.Context, userID string) ([]Session, error)
	CountSessions(ctx context.Context, userID string) (int, error)
	AddSet(ctx context.Context, set Set) (*Set, error)
	UpdateSet(ctx context.Context, set *Set) error
	DeleteSet(ctx context.Context, userID string, id int) error
	ListSets(ctx context.Context, userID string) ([]Set, error)
}

// statsUpdates gets notified about every change in the workout history,
// so the statistics (and trophies) of the affected user can be refreshed
type statsUpdates interface {
	WorkoutEventCreated(ctx context.Context, event Event)
	WorkoutEventUpdated(ctx context.Context, event Event)
	WorkoutEventDeleted(ctx context.Context, userID string)
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo    workoutsRepo
	updates statsUpdates
}

func NewHandler(repo workoutsRepo, updates statsUpdates) *Handler {
	return &Handler{
		repo:    repo,
		updates: updates,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts/sessions", handler.HandleAddSession).Methods("POST", "OPTIONS").Name("new-session")
	router.HandleFunc("/workouts/sessions", handler.HandleUpdateSession).Methods("PUT", "OPTIONS").Name("update-session")
	router.HandleFunc("/workouts/sessions/{id}", handler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
	router.HandleFunc("/workouts/sessions/user/{userID}", handler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	router.HandleFunc("/workouts/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("new-set")
	router.HandleFunc("/workouts/sets", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	router.HandleFunc("/workouts/sets/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
}

func (handler *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newSession")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("new session, unmarshal json params: %s", err)
		http.Error(w, "add session failed", http.StatusBadRequest)
		return
	}

	if session.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if session.Date.IsZero() {
		session.Date = time.Now()
	}

	addedSession, err := handler.repo.AddSession(ctx, session)
	if err != nil {
		log.Errorf("failed to add new session for user [%s]: %s", session.UserID, err)
		http.Error(w, "error, failed to add new session", http.StatusInternalServerError)
		return
	}

	handler.updates.WorkoutEventCreated(ctx, Event{
		UserID:  addedSession.UserID,
		Session: addedSession,
	})

	sessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal new session: %s", err)
		http.Error(w, "error, failed to add new session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout session added: %s", sessionJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateSession")
	defer span.End()

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("update session, unmarshal json params: %s", err)
		http.Error(w, "update session failed", http.StatusBadRequest)
		return
	}

	if session.ID <= 0 || session.UserID == "" {
		http.Error(w, "error, session id or user id missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateSession(ctx, &session); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update session [%d]: %s", session.ID, err)
		http.Error(w, "error, failed to update session", http.StatusInternalServerError)
		return
	}

	// an edited date/time can invalidate streaks, a full refresh is needed
	handler.updates.WorkoutEventUpdated(ctx, Event{
		UserID:  session.UserID,
		Session: &session,
	})

	pkg.WriteJSONResponseOK(w, `{"updatedId":`+strconv.Itoa(session.ID)+`}`)
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSession")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, session id invalid", http.StatusBadRequest)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSession(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete session [%d]: %s", id, err)
		http.Error(w, "error, failed to delete session", http.StatusInternalServerError)
		return
	}

	handler.updates.WorkoutEventDeleted(ctx, userID)

	deletedResponse := DeleteResponse{DeletedID: id}
	respJson, err := json.Marshal(deletedResponse)
	if err != nil {
		log.Errorf("failed to marshal delete session response: %s", err)
		http.Error(w, "error, session deleted, failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listSessions")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	sessions, err := handler.repo.ListSessions(ctx, userID)
	if err != nil {
		log.Errorf("failed to list sessions for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to list sessions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("failed to marshal sessions: %s", err)
		http.Error(w, "error, failed to list sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newSet")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("new set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	if set.UserID == "" || set.SessionID <= 0 {
		http.Error(w, "error, user id or session id missing", http.StatusBadRequest)
		return
	}

	if set.WeightUnit == "" {
		set.WeightUnit = WeightUnitKg
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}

	addedSet, err := handler.repo.AddSet(ctx, set)
	if err != nil {
		log.Errorf("failed to add new set for user [%s]: %s", set.UserID, err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	handler.updates.WorkoutEventCreated(ctx, Event{
		UserID: addedSet.UserID,
		Set:    addedSet,
	})

	setJson, err := json.Marshal(addedSet)
	if err != nil {
		log.Errorf("failed to marshal new set: %s", err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout set added: %s", setJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateSet")
	defer span.End()

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	if set.ID <= 0 || set.UserID == "" {
		http.Error(w, "error, set id or user id missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateSet(ctx, &set); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update set [%d]: %s", set.ID, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	handler.updates.WorkoutEventUpdated(ctx, Event{
		UserID: set.UserID,
		Set:    &set,
	})

	pkg.WriteJSONResponseOK(w, `{"updatedId":`+strconv.Itoa(set.ID)+`}`)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSet")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, set id invalid", http.StatusBadRequest)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSet(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete set [%d]: %s", id, err)
		http.Error(w, "error, failed to delete set", http.StatusInternalServerError)
		return
	}

	handler.updates.WorkoutEventDeleted(ctx, userID)

	deletedResponse := DeleteResponse{DeletedID: id}
	respJson, err := json.Marshal(deletedResponse)
	if err != nil {
		log.Errorf("failed to marshal delete set response: %s", err)
		http.Error(w, "error, set deleted, failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
