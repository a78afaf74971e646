package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/cache"
	"github.com/BrandonJafeth/landing-photography/internal/httpx"
	"github.com/BrandonJafeth/landing-photography/internal/middleware"
	"github.com/BrandonJafeth/landing-photography/internal/transport"
	"github.com/BrandonJafeth/landing-photography/internal/validation"
	"github.com/go-chi/chi/v5"
)

const cacheKeyServices = "services:public"

type Handler struct {
	catalog  *Catalog
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(catalog *Catalog, val *validation.Validator, log *slog.Logger, c cache.Cache, cacheTTL time.Duration) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		catalog:  catalog,
		val:      val,
		log:      log,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if cached, ok, err := h.cache.Get(r.Context(), cacheKeyServices); err == nil && ok {
		log.Info("services: cache hit")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.catalog.PublicList(ctx)
	if err != nil {
		log.Error("services: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{"services": items}
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), cacheKeyServices, payload, h.cacheTTL)
	}

	log.Info("services: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) PublicGetBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing slug", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := h.catalog.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("service get: not found", slog.String("slug", slug))
			transport.WriteError(w, http.StatusNotFound, "service not found", nil)
			return
		}
		log.Error("service get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("service get: ok", slog.String("slug", slug))
	transport.WriteJSON(w, http.StatusOK, svc)
}

// AdminList returns every service, inactive ones included, uncached.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.catalog.AdminList(ctx)
	if err != nil {
		log.Error("admin services: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin services: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"services": items})
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("service create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("service create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := h.catalog.Create(ctx, req)
	if err != nil {
		log.Error("service create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), cacheKeyServices)
	log.Info("service create: ok", slog.String("service_id", svc.ID))
	transport.WriteJSON(w, http.StatusCreated, svc)
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("service update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("service update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := h.catalog.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "service not found", nil)
			return
		}
		log.Error("service update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), cacheKeyServices)
	log.Info("service update: ok", slog.String("service_id", id))
	transport.WriteJSON(w, http.StatusOK, svc)
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.catalog.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "service not found", nil)
			return
		}
		log.Error("service delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), cacheKeyServices)
	log.Info("service delete: ok", slog.String("service_id", id))
	w.WriteHeader(http.StatusNoContent)
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
