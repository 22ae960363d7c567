package handler

import (
	"errors"
	"net/http"

	"github.com/arpmotors/siteadmin/internal/server/middleware"
	"github.com/arpmotors/siteadmin/internal/service"
	"github.com/arpmotors/siteadmin/internal/store"
)

// SessionHandler owns the admin login and identity endpoints.
type SessionHandler struct {
	store   *store.Store
	authSvc *service.AuthService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(st *store.Store, authSvc *service.AuthService) *SessionHandler {
	return &SessionHandler{store: st, authSvc: authSvc}
}

// loginUser is the identity summary included in a successful login
// response. The username is all a client ever learns about the account.
type loginUser struct {
	Username string `json:"username"`
}

// loginResponse is the response payload for a successful login.
type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	User        loginUser `json:"user"`
}

// Login authenticates an admin and returns a bearer session token.
// POST /admin/login (form fields: username, password)
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, admin, err := h.authSvc.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One response for unknown user and wrong password alike.
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Authentication error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.authSvc.TokenTTL().Seconds()),
		User:        loginUser{Username: admin.Username},
	})
}

// Me returns the identity behind the presented token.
// GET /admin/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, loginUser{
		Username: middleware.GetSubject(r.Context()),
	})
}
