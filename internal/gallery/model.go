package gallery

import "time"

// CategoryAll selects the unfiltered image set in a Viewer.
const CategoryAll = "all"

type Category struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type Image struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	ImageURL      string    `bson:"image_url" json:"image_url"`
	ThumbnailURL  string    `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Title         string    `bson:"title,omitempty" json:"title,omitempty"`
	Alt           string    `bson:"alt,omitempty" json:"alt,omitempty"`
	CategoryID    string    `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Category      *Category `bson:"-" json:"category,omitempty"`
	IsFeatured    bool      `bson:"is_featured" json:"is_featured"`
	FeaturedOrder *int      `bson:"featured_order,omitempty" json:"featured_order,omitempty"`
	SortOrder     int       `bson:"sort_order" json:"sort_order"`
	IsVisible     bool      `bson:"is_visible" json:"is_visible"`
	LinkURL       string    `bson:"link_url,omitempty" json:"link_url,omitempty"`
	ServiceID     string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

type ImageUpsertRequest struct {
	ImageURL      string `json:"image_url" validate:"required,url"`
	ThumbnailURL  string `json:"thumbnail_url" validate:"omitempty,url"`
	Title         string `json:"title"`
	Alt           string `json:"alt"`
	CategoryID    string `json:"category_id"`
	IsFeatured    *bool  `json:"is_featured"`
	FeaturedOrder *int   `json:"featured_order" validate:"omitempty,gte=0"`
	SortOrder     *int   `json:"sort_order" validate:"omitempty,gte=0"`
	IsVisible     *bool  `json:"is_visible"`
	LinkURL       string `json:"link_url" validate:"omitempty,url"`
	ServiceID     string `json:"service_id"`
}

type CategoryUpsertRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
