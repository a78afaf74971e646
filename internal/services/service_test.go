package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	services []Service
	err      error
}

func (f *fakeRepo) List(ctx context.Context, activeOnly bool) ([]Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := make([]Service, 0)
	for _, svc := range f.services {
		if activeOnly && !svc.IsActive {
			continue
		}
		items = append(items, svc)
	}
	return items, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Service, error) {
	if f.err != nil {
		return Service{}, f.err
	}
	for _, svc := range f.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return Service{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (Service, error) {
	if f.err != nil {
		return Service{}, f.err
	}
	for _, svc := range f.services {
		if svc.Slug == slug {
			return svc, nil
		}
	}
	return Service{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) Create(ctx context.Context, svc Service) error {
	f.services = append(f.services, svc)
	return f.err
}

func (f *fakeRepo) Update(ctx context.Context, svc Service) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.services {
		if f.services[i].ID == svc.ID {
			f.services[i] = svc
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.err }

func TestCreateSlugAndDefaults(t *testing.T) {
	repo := &fakeRepo{}
	catalog := NewCatalog(repo, time.UTC)

	svc, err := catalog.Create(context.Background(), UpsertRequest{
		Title:       "Fotografía de Producto",
		Description: "Producto y gastronomía",
		Image:       "https://example.com/producto.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "fotografia-de-producto", svc.Slug)
	assert.Equal(t, "Reservar", svc.CTAText)
	assert.True(t, svc.IsActive)
	assert.False(t, svc.CreatedAt.IsZero())
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &fakeRepo{
		services: []Service{
			{ID: "svc1", Title: "Bodas", Slug: "bodas", CreatedAt: created, UpdatedAt: created},
		},
	}
	catalog := NewCatalog(repo, time.UTC)

	svc, err := catalog.Update(context.Background(), "svc1", UpsertRequest{
		Title:       "Bodas",
		Description: "Reportaje completo",
		Image:       "https://example.com/bodas.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, created, svc.CreatedAt)
	assert.Equal(t, created, repo.services[0].CreatedAt)
	assert.True(t, repo.services[0].UpdatedAt.After(created))
}

func TestUpdateNotFound(t *testing.T) {
	catalog := NewCatalog(&fakeRepo{}, time.UTC)
	_, err := catalog.Update(context.Background(), "missing", UpsertRequest{
		Title:       "Bodas",
		Description: "x",
		Image:       "https://example.com/a.jpg",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminListIncludesInactive(t *testing.T) {
	repo := &fakeRepo{
		services: []Service{
			{ID: "svc1", Title: "Bodas", IsActive: true},
			{ID: "svc2", Title: "Drone", IsActive: false},
		},
	}
	catalog := NewCatalog(repo, time.UTC)

	public, err := catalog.PublicList(context.Background())
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := catalog.AdminList(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
