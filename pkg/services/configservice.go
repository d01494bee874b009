package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

// ErrConfigExists is returned on POST when the singleton already exists.
var ErrConfigExists = errors.New("website config already exists, update it instead")

// ConfigService manages the WebsiteConfig singleton. All writes funnel
// through Upsert so create and overwrite share one entry point.
type ConfigService struct {
	configCollection *mongo.Collection
}

func NewConfigService() *ConfigService {
	return &ConfigService{
		configCollection: util.GetCollection(util.DB, "WebsiteConfig"),
	}
}

// GetConfig returns the singleton or nil when none has been created yet.
func (s *ConfigService) GetConfig(ctx context.Context) (*models.WebsiteConfig, error) {
	var config models.WebsiteConfig
	err := s.configCollection.FindOne(ctx, bson.M{}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// CreateConfig is the guarded create: it fails when a config exists.
func (s *ConfigService) CreateConfig(ctx context.Context, req models.WebsiteConfigRequest) (*models.WebsiteConfig, error) {
	existing, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConfigExists
	}

	return s.Upsert(ctx, req)
}

// Upsert creates or overwrites the singleton unconditionally.
func (s *ConfigService) Upsert(ctx context.Context, req models.WebsiteConfigRequest) (*models.WebsiteConfig, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"siteName":    req.SiteName,
			"logo":        req.Logo,
			"favicon":     req.Favicon,
			"contact":     req.Contact,
			"socialLinks": req.SocialLinks,
			"seo":         req.Seo,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var config models.WebsiteConfig
	err := s.configCollection.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func (s *ConfigService) DeleteConfig(ctx context.Context) (int64, error) {
	res, err := s.configCollection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
