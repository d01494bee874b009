package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Menu struct {
	ID        primitive.ObjectID  `bson:"_id" json:"_id"`
	Name      string              `bson:"name" json:"name"`
	Link      string              `bson:"link" json:"link"`
	Slug      string              `bson:"slug" json:"slug"`
	Icon      string              `bson:"icon,omitempty" json:"icon,omitempty"`
	Order     int                 `bson:"order" json:"order"`
	ParentID  *primitive.ObjectID `bson:"parentId,omitempty" json:"parentId,omitempty"`
	IsActive  bool                `bson:"isActive" json:"isActive"`
	Children  []*Menu             `bson:"-" json:"children,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type MenuRequest struct {
	Name     string `json:"name" validate:"required"`
	Link     string `json:"link"`
	Slug     string `json:"slug" validate:"required"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
	ParentID string `json:"parentId"`
	IsActive *bool  `json:"isActive"`
}

func (r MenuRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}
