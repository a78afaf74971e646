package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/auth"
	"github.com/BrandonJafeth/landing-photography/internal/config"
	"github.com/BrandonJafeth/landing-photography/internal/httpx"
	"github.com/BrandonJafeth/landing-photography/internal/middleware"
	"github.com/BrandonJafeth/landing-photography/internal/transport"
	"github.com/BrandonJafeth/landing-photography/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	cfg     *config.Config
	manager *auth.Manager
	users   *mongo.Collection
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(cfg *config.Config, manager *auth.Manager, users *mongo.Collection, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		manager: manager,
		users:   users,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	if h.manager == nil {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	if !h.authenticate(r.Context(), req.Username, req.Password) {
		log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if err := h.issueCookies(w); err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// authenticate checks the stored admin users first, then the credentials
// from the environment as a bootstrap fallback.
func (h *Handler) authenticate(ctx context.Context, username, password string) bool {
	if h.users != nil {
		lookup, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var user User
		err := h.users.FindOne(lookup, bson.M{"username": strings.TrimSpace(username)}).Decode(&user)
		if err == nil {
			return auth.ComparePassword(user.PasswordHash, password) == nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.log.Error("admin login: user lookup failed", slog.String("error", err.Error()))
			return false
		}
	}

	if h.cfg.AdminPassword == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
	return userOK && passOK
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if h.manager == nil {
		log.Warn("admin refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	refreshCookie, err := r.Cookie(auth.RefreshCookie)
	if err != nil || refreshCookie.Value == "" {
		log.Warn("admin refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	claims, err := h.manager.Parse(refreshCookie.Value)
	if err != nil || claims.Role != "admin" {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	if err := h.issueCookies(w); err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	log.Info("admin refresh: ok")
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	clearAuthCookies(w, h.cfg.CookieSecure)
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) issueCookies(w http.ResponseWriter) error {
	accessToken, err := h.manager.NewAccessToken("admin")
	if err != nil {
		return err
	}
	refreshToken, err := h.manager.NewRefreshToken("admin")
	if err != nil {
		return err
	}
	setAuthCookies(w, accessToken, refreshToken, h.manager.AccessTTL, h.manager.RefreshTTL, h.cfg.CookieSecure)
	return nil
}

func setAuthCookies(w http.ResponseWriter, access, refresh string, accessTTL, refreshTTL time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookie,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(accessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.RefreshCookie,
		Value:    refresh,
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(refreshTTL.Seconds()),
	})
}

func clearAuthCookies(w http.ResponseWriter, secure bool) {
	expire := time.Now().Add(-1 * time.Hour)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.RefreshCookie,
		Value:    "",
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
