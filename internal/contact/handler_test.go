package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonJafeth/landing-photography/internal/validation"
)

type fakeNotifier struct {
	confirmErr error
	alertErr   error
	calls      chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan string, 4)}
}

func (f *fakeNotifier) SendSubmissionConfirmation(ctx context.Context, msg Message) (string, error) {
	f.calls <- "confirmation"
	if f.confirmErr != nil {
		return "", f.confirmErr
	}
	return "msg-1", nil
}

func (f *fakeNotifier) SendSubmissionAlert(ctx context.Context, msg Message) (string, error) {
	f.calls <- "alert"
	if f.alertErr != nil {
		return "", f.alertErr
	}
	return "msg-2", nil
}

func (f *fakeNotifier) waitForCalls(t *testing.T, want int) []string {
	t.Helper()
	got := make([]string, 0, want)
	for len(got) < want {
		select {
		case call := <-f.calls:
			got = append(got, call)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for notifications, got %v", got)
		}
	}
	return got
}

func newTestHandler(repo Repository, notifier Notifier) *Handler {
	svc := NewService(repo, time.UTC, notifier)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, validation.New(), log)
}

func submitRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

const validSubmission = `{"name":"Ana","email":"ana@x.com","message":"Hola","serviceType":"Bodas","acceptPrivacy":true}`

func TestSubmitRejectsWrongContentType(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(validSubmission, "text/plain"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "content type must be application/json")
	assert.Empty(t, repo.created)
}

func TestSubmitRejectsEmptyBody(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest("", "application/json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty body")
	assert.Empty(t, repo.created)
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(`{"name":`, "application/json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json")
	assert.Empty(t, repo.created)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(`{"email":"ana@x.com"}`, "application/json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required fields")
	assert.Empty(t, repo.created)
}

func TestSubmitRejectsPrivacyNotAccepted(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo, nil)

	body := `{"name":"Ana","email":"ana@x.com","message":"Hola","serviceType":"Bodas","acceptPrivacy":false}`
	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(body, "application/json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required fields")
	assert.Empty(t, repo.created)
}

func TestSubmitRejectsBadEventDate(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo, nil)

	body := `{"name":"Ana","email":"ana@x.com","message":"Hola","serviceType":"Bodas","eventDate":"12/06/2027","acceptPrivacy":true}`
	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(body, "application/json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
	assert.Empty(t, repo.created)
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	notifier := newFakeNotifier()
	h := newTestHandler(repo, notifier)

	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(validSubmission, "application/json"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.created, 1)

	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "message sent", resp.Message)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "Bodas", data["service_type"])

	// Unsupplied optionals render as explicit nulls.
	date, ok := data["event_date"]
	assert.True(t, ok)
	assert.Nil(t, date)

	calls := notifier.waitForCalls(t, 2)
	assert.Equal(t, []string{"confirmation", "alert"}, calls)
}

func TestSubmitStoreFailureSkipsNotifications(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("insert failed")
	notifier := newFakeNotifier()
	h := newTestHandler(repo, notifier)

	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(validSubmission, "application/json"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database error")

	select {
	case call := <-notifier.calls:
		t.Fatalf("unexpected notification %q after store failure", call)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubmitSucceedsWhenNotificationsFail(t *testing.T) {
	repo := newFakeRepo()
	notifier := newFakeNotifier()
	notifier.confirmErr = errors.New("smtp down")
	notifier.alertErr = errors.New("smtp down")
	h := newTestHandler(repo, notifier)

	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(validSubmission, "application/json"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.created, 1)

	// Both sends are still attempted even though they fail.
	calls := notifier.waitForCalls(t, 2)
	assert.Equal(t, []string{"confirmation", "alert"}, calls)
}

func TestSubmitRejectsUnknownFields(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo, nil)

	body := `{"name":"Ana","email":"ana@x.com","message":"Hola","serviceType":"Bodas","acceptPrivacy":true,"extra":1}`
	rec := httptest.NewRecorder()
	h.Submit(rec, submitRequest(body, "application/json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json")
	assert.Empty(t, repo.created)
}
