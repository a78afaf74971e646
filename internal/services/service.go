package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("service not found")

type Catalog struct {
	repo     Repository
	location *time.Location
}

func NewCatalog(repo Repository, location *time.Location) *Catalog {
	return &Catalog{
		repo:     repo,
		location: location,
	}
}

func (c *Catalog) PublicList(ctx context.Context) ([]Service, error) {
	return c.repo.List(ctx, true)
}

func (c *Catalog) AdminList(ctx context.Context) ([]Service, error) {
	return c.repo.List(ctx, false)
}

func (c *Catalog) GetBySlug(ctx context.Context, slug string) (Service, error) {
	svc, err := c.repo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, ErrNotFound
		}
		return Service{}, err
	}
	return svc, nil
}

func (c *Catalog) Create(ctx context.Context, req UpsertRequest) (Service, error) {
	now := time.Now().In(c.location)
	svc := c.applyUpsert(Service{ID: primitive.NewObjectID().Hex(), CreatedAt: now}, req, now)
	if err := c.repo.Create(ctx, svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

// Update replaces the stored service with the request. The existing
// record is loaded first so the replacement keeps its creation timestamp.
func (c *Catalog) Update(ctx context.Context, id string, req UpsertRequest) (Service, error) {
	existing, err := c.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, ErrNotFound
		}
		return Service{}, err
	}

	now := time.Now().In(c.location)
	svc := c.applyUpsert(existing, req, now)
	if err := c.repo.Update(ctx, svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, ErrNotFound
		}
		return Service{}, err
	}
	return svc, nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (c *Catalog) applyUpsert(svc Service, req UpsertRequest, now time.Time) Service {
	svc.Title = strings.TrimSpace(req.Title)
	svc.Slug = utils.Slugify(svc.Title)
	svc.Description = strings.TrimSpace(req.Description)
	svc.DetailedDescription = strings.TrimSpace(req.DetailedDescription)
	svc.Image = strings.TrimSpace(req.Image)
	svc.GalleryImages = req.GalleryImages
	svc.CTAText = strings.TrimSpace(req.CTAText)
	if svc.CTAText == "" {
		svc.CTAText = "Reservar"
	}
	svc.CTALink = strings.TrimSpace(req.CTALink)
	svc.Features = req.Features
	svc.IsActive = true
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		svc.SortOrder = *req.SortOrder
	}
	svc.UpdatedAt = now
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = now
	}
	return svc
}
