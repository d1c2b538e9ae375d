package handler

import (
	"encoding/json"
	"net/http"

	"github.com/teamhubhq/teamhub/internal/api/apierr"
	"github.com/teamhubhq/teamhub/internal/api/middleware"
	"github.com/teamhubhq/teamhub/internal/api/request"
	"github.com/teamhubhq/teamhub/internal/api/response"
	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/services/session"
)

// SessionHandler handles session lifecycle requests
type SessionHandler struct {
	sessions *session.Manager
	backend  *gateway.Client
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessions *session.Manager, backend *gateway.Client) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		backend:  backend,
	}
}

// Create handles POST /session: it exchanges credentials for a
// backend token and mints a session id the client presents as its
// bearer token from then on
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSession
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("email and password are required"))
		return
	}

	result, err := h.backend.SubmitCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	record, err := h.sessions.BeginForToken(r.Context(), result.Token)
	if err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	response.JSON(w, http.StatusCreated, response.Session{
		SessionID:       record.ID,
		State:           session.StateAuthenticated.String(),
		IsAuthenticated: true,
		User:            response.NewUser(&result.User),
	})
}

// Get handles GET /session: it reports the resolved session state.
// A missing or expired session resolves to anonymous rather than an
// error.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())
	if store == nil {
		response.JSON(w, http.StatusOK, response.Session{
			State: session.StateAnonymous.String(),
		})
		return
	}

	response.JSON(w, http.StatusOK, response.Session{
		SessionID:       middleware.GetSessionID(r.Context()),
		State:           store.State().String(),
		IsAuthenticated: store.IsAuthenticated(),
		User:            response.NewUser(store.Identity()),
	})
}

// Delete handles DELETE /session: the backend logout is attempted but
// the local session is cleared regardless of its outcome
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())
	sid := middleware.GetSessionID(r.Context())

	store.Logout(r.Context())
	h.sessions.EndByID(r.Context(), sid)
	store.FinishLogout()

	response.NoContent(w)
}
