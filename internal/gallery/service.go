package gallery

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrImageNotFound    = errors.New("image not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

// Catalog is the read-only content the public site renders from: the
// ordered visible image set with categories resolved, plus the category
// list for the filter bar.
type Catalog struct {
	Images     []Image    `json:"images"`
	Categories []Category `json:"categories"`
}

func (s *Service) Load(ctx context.Context) (Catalog, error) {
	images, err := s.repo.ListImages(ctx)
	if err != nil {
		return Catalog{}, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return Catalog{}, err
	}

	byID := make(map[string]*Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range images {
		if cat, ok := byID[images[i].CategoryID]; ok {
			images[i].Category = cat
		}
	}

	return Catalog{Images: images, Categories: categories}, nil
}

func (s *Service) Featured(ctx context.Context) ([]Image, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *Service) CreateImage(ctx context.Context, req ImageUpsertRequest) (Image, error) {
	now := time.Now().In(s.location)
	img := s.applyUpsert(Image{ID: primitive.NewObjectID().Hex(), CreatedAt: now}, req, now)
	if err := s.repo.CreateImage(ctx, img); err != nil {
		return Image{}, err
	}
	return img, nil
}

// UpdateImage replaces the stored image fields with the request. The
// existing record is loaded first so the replacement keeps its creation
// timestamp.
func (s *Service) UpdateImage(ctx context.Context, id string, req ImageUpsertRequest) (Image, error) {
	existing, err := s.repo.GetImage(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Image{}, ErrImageNotFound
		}
		return Image{}, err
	}

	now := time.Now().In(s.location)
	img := s.applyUpsert(existing, req, now)
	if err := s.repo.UpdateImage(ctx, img); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Image{}, ErrImageNotFound
		}
		return Image{}, err
	}
	return img, nil
}

func (s *Service) applyUpsert(img Image, req ImageUpsertRequest, now time.Time) Image {
	img.ImageURL = strings.TrimSpace(req.ImageURL)
	img.ThumbnailURL = strings.TrimSpace(req.ThumbnailURL)
	img.Title = strings.TrimSpace(req.Title)
	img.Alt = strings.TrimSpace(req.Alt)
	img.CategoryID = strings.TrimSpace(req.CategoryID)
	img.LinkURL = strings.TrimSpace(req.LinkURL)
	img.ServiceID = strings.TrimSpace(req.ServiceID)
	img.FeaturedOrder = req.FeaturedOrder
	img.IsVisible = true
	if req.IsVisible != nil {
		img.IsVisible = *req.IsVisible
	}
	if req.IsFeatured != nil {
		img.IsFeatured = *req.IsFeatured
	}
	if req.SortOrder != nil {
		img.SortOrder = *req.SortOrder
	}
	img.UpdatedAt = now
	if img.CreatedAt.IsZero() {
		img.CreatedAt = now
	}
	return img
}

func (s *Service) DeleteImage(ctx context.Context, id string) error {
	if err := s.repo.DeleteImage(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, req CategoryUpsertRequest) (Category, error) {
	cat := Category{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now().In(s.location),
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return Category{}, err
	}
	return cat, nil
}

// Categories returns the filter vocabulary on its own, for clients that
// do not want the full catalog payload.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, req CategoryUpsertRequest) (Category, error) {
	updated, err := s.repo.UpdateCategory(ctx, strings.TrimSpace(id), strings.TrimSpace(req.Name), strings.TrimSpace(req.Description))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, err
	}
	return updated, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteCategory(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
