package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Image      string             `bson:"image" json:"image"`
	CategoryID primitive.ObjectID `bson:"category" json:"categoryId"`
	Category   *Category          `bson:"categoryInfo,omitempty" json:"category,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ProductRequest struct {
	Image    string `json:"image" validate:"required,url"`
	Category string `json:"category" validate:"required"`
}

// ProductListQuery carries the supported list filters.
type ProductListQuery struct {
	Category string
	Search   string
	Sort     string
	Limit    int
	Page     int
	// Paginate is false when no limit was supplied, in which case the
	// whole matching set is returned.
	Paginate bool
}
