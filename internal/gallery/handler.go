package gallery

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

const (
	cacheKeyPortfolio  = "portfolio:catalog"
	cacheKeyFeatured   = "portfolio:featured"
	cacheKeyCategories = "portfolio:categories"
)

type Handler struct {
	service      *Service
	val          *validation.Validator
	log          *slog.Logger
	cache        cache.Cache
	cacheTTL     time.Duration
	heroInterval time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, c cache.Cache, cacheTTL, heroInterval time.Duration) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service:      service,
		val:          val,
		log:          log,
		cache:        c,
		cacheTTL:     cacheTTL,
		heroInterval: heroInterval,
	}
}

// PublicCatalog serves the portfolio page payload: every visible image in
// display order, the category filter list, and the derived grid layout.
func (h *Handler) PublicCatalog(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if cached, ok, err := h.cache.Get(r.Context(), cacheKeyPortfolio); err == nil && ok {
		log.Info("portfolio: cache hit")
		writeCached(w, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	catalog, err := h.service.Load(ctx)
	if err != nil {
		log.Error("portfolio: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{
		"images":     catalog.Images,
		"categories": catalog.Categories,
		"layout":     LayoutFor(len(catalog.Images)),
	}

	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), cacheKeyPortfolio, payload, h.cacheTTL)
	}

	log.Info("portfolio: ok", slog.Int("images", len(catalog.Images)), slog.Int("categories", len(catalog.Categories)))
	transport.WriteJSON(w, http.StatusOK, response)
}

// PublicFeatured serves the hero carousel image sequence.
func (h *Handler) PublicFeatured(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if cached, ok, err := h.cache.Get(r.Context(), cacheKeyFeatured); err == nil && ok {
		log.Info("featured: cache hit")
		writeCached(w, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	images, err := h.service.Featured(ctx)
	if err != nil {
		log.Error("featured: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{
		"images":           images,
		"interval_seconds": int(h.heroInterval / time.Second),
	}
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), cacheKeyFeatured, payload, h.cacheTTL)
	}

	log.Info("featured: ok", slog.Int("count", len(images)))
	transport.WriteJSON(w, http.StatusOK, response)
}

// PublicCategories serves the category filter list on its own.
func (h *Handler) PublicCategories(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if cached, ok, err := h.cache.Get(r.Context(), cacheKeyCategories); err == nil && ok {
		log.Info("categories: cache hit")
		writeCached(w, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categories, err := h.service.Categories(ctx)
	if err != nil {
		log.Error("categories: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{"categories": categories}
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), cacheKeyCategories, payload, h.cacheTTL)
	}

	log.Info("categories: ok", slog.Int("count", len(categories)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) AdminCreateImage(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req ImageUpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("image create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("image create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	img, err := h.service.CreateImage(ctx, req)
	if err != nil {
		log.Error("image create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("image create: ok", slog.String("image_id", img.ID))
	transport.WriteJSON(w, http.StatusCreated, img)
}

func (h *Handler) AdminUpdateImage(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req ImageUpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("image update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("image update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	img, err := h.service.UpdateImage(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			transport.WriteError(w, http.StatusNotFound, "image not found", nil)
			return
		}
		log.Error("image update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("image update: ok", slog.String("image_id", id))
	transport.WriteJSON(w, http.StatusOK, img)
}

func (h *Handler) AdminDeleteImage(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteImage(ctx, id); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			transport.WriteError(w, http.StatusNotFound, "image not found", nil)
			return
		}
		log.Error("image delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("image delete: ok", slog.String("image_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req CategoryUpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("category create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("category create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cat, err := h.service.CreateCategory(ctx, req)
	if err != nil {
		log.Error("category create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("category create: ok", slog.String("category_id", cat.ID))
	transport.WriteJSON(w, http.StatusCreated, cat)
}

func (h *Handler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req CategoryUpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("category update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("category update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cat, err := h.service.UpdateCategory(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			transport.WriteError(w, http.StatusNotFound, "category not found", nil)
			return
		}
		log.Error("category update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("category update: ok", slog.String("category_id", id))
	transport.WriteJSON(w, http.StatusOK, cat)
}

func (h *Handler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			transport.WriteError(w, http.StatusNotFound, "category not found", nil)
			return
		}
		log.Error("category delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("category delete: ok", slog.String("category_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) invalidate(ctx context.Context) {
	_ = h.cache.Delete(ctx, cacheKeyPortfolio)
	_ = h.cache.Delete(ctx, cacheKeyFeatured)
	_ = h.cache.Delete(ctx, cacheKeyCategories)
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

func writeCached(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
