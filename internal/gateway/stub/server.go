// Package stub is an in-process stand-in for the external league
// backend. It implements the auth gateway and domain API surfaces the
// front end consumes, with seeded fixture data, bcrypt credential
// checks and signed session tokens. Tests and BACKEND_STUB=1 local
// development run against it; production points at the real backend.
package stub

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamhubhq/teamhub/internal/model"
)

// Server is the stub league backend
type Server struct {
	logger     *slog.Logger
	signingKey []byte

	mu         sync.RWMutex
	users      map[model.UserID]*seededUser
	emailIndex map[string]model.UserID
	teams      map[model.TeamID]*model.Team
	players    map[model.PlayerID]*model.Player
	games      []model.Game
	revoked    map[string]bool
	nextID     int
}

// New creates a seeded stub backend
func New(logger *slog.Logger) *Server {
	s := &Server{
		logger:     logger,
		signingKey: newSigningKey(),
		users:      make(map[model.UserID]*seededUser),
		emailIndex: make(map[string]model.UserID),
		teams:      make(map[model.TeamID]*model.Team),
		players:    make(map[model.PlayerID]*model.Player),
		revoked:    make(map[string]bool),
	}
	s.seed()
	return s
}

// Handler returns the stub's HTTP handler
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)
	r.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	r.HandleFunc("/teams", s.handleListTeams).Methods(http.MethodGet)
	r.HandleFunc("/teams", s.handleCreateTeam).Methods(http.MethodPost)
	r.HandleFunc("/teams/{id}", s.handleGetTeam).Methods(http.MethodGet)
	r.HandleFunc("/teams/{id}/players", s.handleTeamPlayers).Methods(http.MethodGet)
	r.HandleFunc("/players", s.handleCreatePlayer).Methods(http.MethodPost)
	r.HandleFunc("/players/{id}", s.handleGetPlayer).Methods(http.MethodGet)
	r.HandleFunc("/players/{id}", s.handleUpdatePlayer).Methods(http.MethodPatch)
	r.HandleFunc("/games", s.handleListGames).Methods(http.MethodGet)

	return r
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid body")
		return
	}

	s.mu.RLock()
	userID, ok := s.emailIndex[req.Email]
	var su *seededUser
	if ok {
		su = s.users[userID]
	}
	s.mu.RUnlock()

	if su == nil || bcrypt.CompareHashAndPassword([]byte(su.passwordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
		return
	}

	token, err := s.issueToken(su.user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  su.user,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	su := s.authenticate(r)
	if su == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, su.user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	// The token itself is stateless, so revocation is tracked here
	s.mu.Lock()
	s.revoked[bearerToken(r)] = true
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	s.mu.RLock()
	teams := make([]model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, *t)
	}
	s.mu.RUnlock()

	sortTeams(teams)
	writeJSON(w, http.StatusOK, teams)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	id := model.TeamID(mux.Vars(r)["id"])

	s.mu.RLock()
	team, ok := s.teams[id]
	s.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "TEAM_NOT_FOUND", "team not found")
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (s *Server) handleTeamPlayers(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	id := model.TeamID(mux.Vars(r)["id"])

	s.mu.RLock()
	_, ok := s.teams[id]
	players := make([]model.Player, 0)
	for _, p := range s.players {
		if p.TeamID == id {
			players = append(players, *p)
		}
	}
	s.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "TEAM_NOT_FOUND", "team not found")
		return
	}

	sortPlayers(players)
	writeJSON(w, http.StatusOK, players)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	id := model.PlayerID(mux.Vars(r)["id"])

	s.mu.RLock()
	player, ok := s.players[id]
	s.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "PLAYER_NOT_FOUND", "player not found")
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	var req struct {
		Name     string `json:"name"`
		City     string `json:"city"`
		Division string `json:"division"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "team name is required")
		return
	}

	s.mu.Lock()
	s.nextID++
	team := &model.Team{
		ID:       model.TeamID(fmt.Sprintf("t_new%d", s.nextID)),
		Name:     req.Name,
		City:     req.City,
		Division: req.Division,
	}
	s.teams[team.ID] = team
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, team)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	var req struct {
		Name         string       `json:"name"`
		Position     string       `json:"position"`
		JerseyNumber int          `json:"jerseyNumber"`
		TeamID       model.TeamID `json:"teamId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "player name is required")
		return
	}

	s.mu.Lock()
	s.nextID++
	player := &model.Player{
		ID:           model.PlayerID(fmt.Sprintf("p_new%d", s.nextID)),
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		TeamID:       req.TeamID,
	}
	s.players[player.ID] = player
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, player)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	id := model.PlayerID(mux.Vars(r)["id"])

	var req struct {
		Name         *string `json:"name"`
		Position     *string `json:"position"`
		JerseyNumber *int    `json:"jerseyNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid body")
		return
	}

	s.mu.Lock()
	player, ok := s.players[id]
	if ok {
		if req.Name != nil {
			player.Name = *req.Name
		}
		if req.Position != nil {
			player.Position = *req.Position
		}
		if req.JerseyNumber != nil {
			player.JerseyNumber = *req.JerseyNumber
		}
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "PLAYER_NOT_FOUND", "player not found")
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	s.mu.RLock()
	games := make([]model.Game, len(s.games))
	copy(games, s.games)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, games)
}

// bearerToken extracts the bearer credential from a request, or ""
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// authenticate resolves the bearer token on a request to a seeded
// user. Revoked tokens fail even when their signature still verifies.
func (s *Server) authenticate(r *http.Request) *seededUser {
	token := bearerToken(r)
	if token == "" {
		return nil
	}

	userID, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.revoked[token] {
		return nil
	}
	return s.users[userID]
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
