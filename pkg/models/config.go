package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactInfo struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Zalo      string `bson:"zalo,omitempty" json:"zalo,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

type SeoMeta struct {
	Description   string `bson:"description,omitempty" json:"description,omitempty"`
	Keywords      string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	OgImage       string `bson:"ogImage,omitempty" json:"ogImage,omitempty"`
	URL           string `bson:"url,omitempty" json:"url,omitempty"`
	TwitterHandle string `bson:"twitterHandle,omitempty" json:"twitterHandle,omitempty"`
	Author        string `bson:"author,omitempty" json:"author,omitempty"`
	Locale        string `bson:"locale,omitempty" json:"locale,omitempty"`
}

// WebsiteConfig is a singleton: at most one document exists in its
// collection, enforced by the config service.
type WebsiteConfig struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	SiteName    string             `bson:"siteName" json:"siteName"`
	Logo        string             `bson:"logo" json:"logo"`
	Favicon     string             `bson:"favicon" json:"favicon"`
	Contact     ContactInfo        `bson:"contact" json:"contact"`
	SocialLinks SocialLinks        `bson:"socialLinks" json:"socialLinks"`
	Seo         SeoMeta            `bson:"seo" json:"seo"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type WebsiteConfigRequest struct {
	SiteName    string      `json:"siteName" validate:"required"`
	Logo        string      `json:"logo" validate:"required"`
	Favicon     string      `json:"favicon" validate:"required"`
	Contact     ContactInfo `json:"contact"`
	SocialLinks SocialLinks `json:"socialLinks"`
	Seo         SeoMeta     `json:"seo"`
}
