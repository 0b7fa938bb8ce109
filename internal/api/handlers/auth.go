package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/karanvir-s/employee-directory-api/internal/api/middleware"
	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	secure      bool // Secure cookie attribute, on in production
}

func NewAuthHandler(authService *service.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, secure: secure}
}

type RegisterRequest struct {
	SequenceID int    `json:"sequenceId"`
	Username   string `json:"username"`
	Secret     string `json:"secret"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	err := h.authService.Register(r.Context(), service.RegisterInput{
		SequenceID: req.SequenceID,
		Username:   req.Username,
		Password:   req.Secret,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			writeError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, domain.ErrUserExists):
			writeError(w, http.StatusBadRequest, "User already exists")
		default:
			log.Printf("ERROR [auth.Register] %v", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": "User registered successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Secret,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		log.Printf("ERROR [auth.Login] %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, int(h.authService.TokenTTL().Seconds())))

	// The token travels only in the cookie, never in the body.
	writeJSON(w, http.StatusOK, map[string]string{"username": result.Username})
}

// Logout succeeds unconditionally. The cookie is cleared with the same
// name/path/attributes it was set with, otherwise browsers keep it; the
// server holds no session state to invalidate, so a copied token string
// remains valid until its natural expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	account, err := h.authService.WhoAmI(r.Context(), principal.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [auth.Me] %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"f_username": account.Username})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
