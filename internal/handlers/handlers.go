// Package handlers exposes the JSON REST surface over the workflow services.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mmynk/groupbudget/internal/auth"
	"github.com/mmynk/groupbudget/internal/middleware"
	"github.com/mmynk/groupbudget/internal/service"
)

// Server holds the workflow services behind the HTTP surface.
type Server struct {
	authSvc  *service.AuthService
	groupSvc *service.GroupService
	jwt      *auth.JWTManager
}

// New creates a Server over the given services.
func New(authSvc *service.AuthService, groupSvc *service.GroupService, jwt *auth.JWTManager) *Server {
	return &Server{
		authSvc:  authSvc,
		groupSvc: groupSvc,
		jwt:      jwt,
	}
}

// Routes builds the request mux. Public routes are registered directly;
// identity-carrying routes sit behind the bearer-token gate.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	guard := middleware.RequireAuth(s.jwt, writeError)

	route := func(pattern, path string, h http.HandlerFunc, protected bool) {
		var handler http.Handler = h
		if protected {
			handler = guard(handler)
		}
		mux.Handle(pattern, middleware.Metrics(path, handler))
	}

	route("POST /register", "/register", s.handleRegister, false)
	route("POST /login", "/login", s.handleLogin, false)
	route("GET /groups", "/groups", s.handleListGroups, false)
	route("GET /groups/{id}/users", "/groups/{id}/users", s.handleGroupMembers, false)
	route("GET /protected", "/protected", s.handleProtected, true)
	route("GET /me/groups", "/me/groups", s.handleMyGroups, true)
	route("POST /groups", "/groups", s.handleCreateGroup, true)

	return mux
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrInvalidRequest)
		return
	}

	if err := s.authSvc.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrInvalidRequest)
		return
	}

	token, err := s.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	names, err := s.groupSvc.ListNames(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleGroupMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.groupSvc.ListMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if members == nil {
		members = []string{}
	}
	writeJSON(w, http.StatusOK, members)
}

// identity is the claims payload echoed back by /protected.
type identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (s *Server) handleProtected(w http.ResponseWriter, r *http.Request) {
	user := identity{
		ID:       middleware.GetUserID(r.Context()),
		Username: middleware.GetUsername(r.Context()),
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome, " + user.Username + "!",
		"user":    user,
	})
}

// groupResponse is the JSON shape for groups visible to their members.
type groupResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	OwnerID   string  `json:"ownerId"`
	CreatedAt int64   `json:"createdAt"`
}

func (s *Server) handleMyGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groupSvc.ListMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	resp := make([]groupResponse, len(groups))
	for i, group := range groups {
		resp[i] = groupResponse{
			ID:        group.ID,
			Name:      group.Name,
			Budget:    group.Budget,
			OwnerID:   group.OwnerID,
			CreatedAt: group.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type createGroupRequest struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"` // optional, defaults to 0
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrInvalidRequest)
		return
	}

	_, err := s.groupSvc.Create(r.Context(), middleware.GetUserID(r.Context()), req.Name, req.Budget)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Group created successfully"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
