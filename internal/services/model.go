package services

import "time"

// Service is a photography offering shown on the site. Its title doubles
// as the service-type vocabulary the contact form submits.
type Service struct {
	ID                  string    `bson:"_id,omitempty" json:"id"`
	Title               string    `bson:"title" json:"title"`
	Slug                string    `bson:"slug" json:"slug"`
	Description         string    `bson:"description" json:"description"`
	DetailedDescription string    `bson:"detailed_description,omitempty" json:"detailed_description,omitempty"`
	Image               string    `bson:"image" json:"image"`
	GalleryImages       []string  `bson:"gallery_images,omitempty" json:"gallery_images,omitempty"`
	CTAText             string    `bson:"cta_text" json:"cta_text"`
	CTALink             string    `bson:"cta_link,omitempty" json:"cta_link,omitempty"`
	Features            []string  `bson:"features,omitempty" json:"features,omitempty"`
	IsActive            bool      `bson:"is_active" json:"is_active"`
	SortOrder           int       `bson:"sort_order" json:"sort_order"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	Title               string   `json:"title" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	DetailedDescription string   `json:"detailed_description"`
	Image               string   `json:"image" validate:"required,url"`
	GalleryImages       []string `json:"gallery_images" validate:"omitempty,dive,url"`
	CTAText             string   `json:"cta_text"`
	CTALink             string   `json:"cta_link" validate:"omitempty,url"`
	Features            []string `json:"features"`
	IsActive            *bool    `json:"is_active"`
	SortOrder           *int     `json:"sort_order" validate:"omitempty,gte=0"`
}
