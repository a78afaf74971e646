package gallery

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonJafeth/landing-photography/internal/validation"
)

func newTestRouter(repo Repository) *chi.Mux {
	svc := NewService(repo, time.UTC)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, validation.New(), log, nil, time.Minute, 5*time.Second)

	r := chi.NewRouter()
	r.Get("/portfolio/categories", h.PublicCategories)
	r.Put("/portfolio/categories/{id}", h.AdminUpdateCategory)
	return r
}

func TestPublicCategoriesEndpoint(t *testing.T) {
	repo := &fakeRepo{
		categories: []Category{
			{ID: "cat1", Name: "Bodas"},
			{ID: "cat2", Name: "Retratos"},
		},
	}
	router := newTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portfolio/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "Bodas", resp.Categories[0].Name)
}

func TestAdminUpdateCategoryEndpoint(t *testing.T) {
	repo := &fakeRepo{
		categories: []Category{{ID: "cat1", Name: "Bodas"}},
	}
	router := newTestRouter(repo)

	body := `{"name":"Bodas y Pedidas","description":"Reportajes"}`
	req := httptest.NewRequest(http.MethodPut, "/portfolio/categories/cat1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Bodas y Pedidas", updated.Name)
	assert.Equal(t, "Bodas y Pedidas", repo.categories[0].Name)
}

func TestAdminUpdateCategoryNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	req := httptest.NewRequest(http.MethodPut, "/portfolio/categories/missing", strings.NewReader(`{"name":"X"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "category not found")
}
