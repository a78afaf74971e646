package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/httpx"
	"github.com/BrandonJafeth/landing-photography/internal/middleware"
	"github.com/BrandonJafeth/landing-photography/internal/transport"
	"github.com/BrandonJafeth/landing-photography/internal/validation"
	"github.com/go-chi/chi/v5"
)

const (
	storeTimeout  = 8 * time.Second
	notifyTimeout = 8 * time.Second
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

// Submit accepts a contact form submission. The request succeeds once the
// message is stored; the two notification emails are dispatched after the
// response and may fail without affecting it.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SubmitRequest
	if err := httpx.DecodeJSONRequest(r, &req); err != nil {
		switch {
		case errors.Is(err, httpx.ErrNotJSON):
			log.Warn("contact submit: wrong content type")
			transport.WriteError(w, http.StatusBadRequest, "content type must be application/json", nil)
		case errors.Is(err, httpx.ErrEmptyBody):
			log.Warn("contact submit: empty body")
			transport.WriteError(w, http.StatusBadRequest, "empty body", nil)
		default:
			log.Warn("contact submit: invalid json")
			transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		}
		return
	}

	if err := h.val.Struct(req); err != nil {
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		log.Warn("contact submit: validation error")
		transport.WriteError(w, http.StatusBadRequest, validationMessage(details), details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	msg, err := h.service.Submit(ctx, req)
	if err != nil {
		log.Error("contact submit: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	// Fire-and-forget: both emails run against a fresh context so the
	// request finishing cannot cancel them, and each failure is only
	// logged.
	go func(stored Message) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer notifyCancel()

		if err := h.service.NotifyConfirmation(notifyCtx, stored); err != nil {
			h.log.Warn("contact submit: confirmation email failed",
				slog.String("contact_id", stored.ID),
				slog.String("email", stored.Email),
				slog.String("error", err.Error()),
			)
		}

		if err := h.service.NotifyAlert(notifyCtx, stored); err != nil {
			h.log.Warn("contact submit: admin alert failed",
				slog.String("contact_id", stored.ID),
				slog.String("error", err.Error()),
			)
		}
	}(msg)

	log.Info("contact submit: stored", slog.String("contact_id", msg.ID), slog.String("service_type", msg.ServiceType))
	transport.WriteSuccess(w, http.StatusOK, "message sent", msg)
}

// validationMessage distinguishes absent required fields from malformed
// ones so the form can tell the visitor which case they hit.
func validationMessage(details map[string]string) string {
	for _, tag := range details {
		if tag != "required" && tag != "eq" {
			return "validation error"
		}
	}
	return "missing required fields"
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin contacts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListAdmin(ctx, filter, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"status": "oneof"})
			return
		}
		log.Error("admin contacts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contacts list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminGetByID(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin contact get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin contact get: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "contact message not found", nil)
			return
		}
		log.Error("admin contact get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contact get: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, msg)
}

func (h *Handler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin contact status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req StatusUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin contact status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin contact status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"status": "oneof"})
			return
		}
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin contact status: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "contact message not found", nil)
			return
		}
		log.Error("admin contact status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contact status: ok", slog.String("contact_id", id), slog.String("status", msg.Status))
	transport.WriteJSON(w, http.StatusOK, msg)
}

func (h *Handler) AdminRespond(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin contact respond: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req RespondRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin contact respond: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin contact respond: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.Respond(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin contact respond: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "contact message not found", nil)
			return
		}
		log.Error("admin contact respond: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contact respond: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, msg)
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
