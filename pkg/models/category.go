package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	Slug      string             `bson:"slug" json:"slug"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Link     string `json:"link"`
	Slug     string `json:"slug" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

// Active resolves the isActive flag, defaulting to true when the field
// is omitted from the request body.
func (r CategoryRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// CategoryWithProducts is the payload of the slug detail endpoint: the
// category itself plus one page of its products.
type CategoryWithProducts struct {
	Category   Category  `json:"category"`
	Products   []Product `json:"products"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int64     `json:"totalPages"`
}
