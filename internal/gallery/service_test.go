package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	images     []Image
	categories []Category
	err        error
}

func (f *fakeRepo) ListImages(ctx context.Context) ([]Image, error) {
	return f.images, f.err
}

func (f *fakeRepo) ListFeatured(ctx context.Context) ([]Image, error) {
	featured := make([]Image, 0)
	for _, img := range f.images {
		if img.IsFeatured {
			featured = append(featured, img)
		}
	}
	return featured, f.err
}

func (f *fakeRepo) ListCategories(ctx context.Context) ([]Category, error) {
	return f.categories, f.err
}

func (f *fakeRepo) GetImage(ctx context.Context, id string) (Image, error) {
	if f.err != nil {
		return Image{}, f.err
	}
	for _, img := range f.images {
		if img.ID == id {
			return img, nil
		}
	}
	return Image{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) CreateImage(ctx context.Context, img Image) error {
	f.images = append(f.images, img)
	return f.err
}

func (f *fakeRepo) UpdateImage(ctx context.Context, img Image) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.images {
		if f.images[i].ID == img.ID {
			f.images[i] = img
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeRepo) UpdateCategory(ctx context.Context, id, name, description string) (Category, error) {
	if f.err != nil {
		return Category{}, f.err
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = name
			f.categories[i].Description = description
			return f.categories[i], nil
		}
	}
	return Category{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) DeleteImage(ctx context.Context, id string) error     { return f.err }
func (f *fakeRepo) CreateCategory(ctx context.Context, c Category) error { return f.err }
func (f *fakeRepo) DeleteCategory(ctx context.Context, id string) error  { return f.err }

func TestLoadResolvesCategories(t *testing.T) {
	repo := &fakeRepo{
		images: []Image{
			{ID: "img1", CategoryID: "cat1"},
			{ID: "img2", CategoryID: "missing"},
			{ID: "img3"},
		},
		categories: []Category{
			{ID: "cat1", Name: "Bodas"},
		},
	}
	svc := NewService(repo, time.UTC)

	catalog, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Images, 3)

	require.NotNil(t, catalog.Images[0].Category)
	assert.Equal(t, "Bodas", catalog.Images[0].Category.Name)
	assert.Nil(t, catalog.Images[1].Category)
	assert.Nil(t, catalog.Images[2].Category)
}

func TestLoadPropagatesRepoError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("down")}
	svc := NewService(repo, time.UTC)

	_, err := svc.Load(context.Background())
	assert.Error(t, err)
}

func TestUpdateImageKeepsCreatedAt(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &fakeRepo{
		images: []Image{
			{ID: "img1", ImageURL: "https://example.com/old.jpg", CreatedAt: created, UpdatedAt: created},
		},
	}
	svc := NewService(repo, time.UTC)

	img, err := svc.UpdateImage(context.Background(), "img1", ImageUpsertRequest{
		ImageURL: "https://example.com/new.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/new.jpg", img.ImageURL)
	assert.Equal(t, created, img.CreatedAt)
	assert.Equal(t, created, repo.images[0].CreatedAt)
	assert.True(t, repo.images[0].UpdatedAt.After(created))
}

func TestUpdateImageNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC)
	_, err := svc.UpdateImage(context.Background(), "missing", ImageUpsertRequest{
		ImageURL: "https://example.com/a.jpg",
	})
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestUpdateCategory(t *testing.T) {
	repo := &fakeRepo{
		categories: []Category{{ID: "cat1", Name: "Bodas"}},
	}
	svc := NewService(repo, time.UTC)

	cat, err := svc.UpdateCategory(context.Background(), "cat1", CategoryUpsertRequest{
		Name:        " Bodas y Pedidas ",
		Description: "Reportajes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bodas y Pedidas", cat.Name)
	assert.Equal(t, "Reportajes", cat.Description)

	_, err = svc.UpdateCategory(context.Background(), "missing", CategoryUpsertRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateImageDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC)

	img, err := svc.CreateImage(context.Background(), ImageUpsertRequest{
		ImageURL: " https://example.com/a.jpg ",
		Title:    " Ceremonia ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, img.ID)
	assert.Equal(t, "https://example.com/a.jpg", img.ImageURL)
	assert.Equal(t, "Ceremonia", img.Title)
	assert.True(t, img.IsVisible)
	assert.False(t, img.IsFeatured)
	assert.False(t, img.CreatedAt.IsZero())
}
