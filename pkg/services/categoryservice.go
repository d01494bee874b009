package services

import (
	"context"
	"time"

	slug2 "github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

// ErrCategoryInUse is returned when a delete would orphan products that
// still reference the category.
var ErrCategoryInUse = errors.New("category still has products assigned to it")

type CategoryService struct {
	categoryCollection *mongo.Collection
	productCollection  *mongo.Collection
}

func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryCollection: util.GetCollection(util.DB, "Category"),
		productCollection:  util.GetCollection(util.DB, "Product"),
	}
}

// GetCategories returns every category matching the optional isActive
// filter, sorted by the caller-specified field. The plain list endpoint
// is not paginated.
func (s *CategoryService) GetCategories(ctx context.Context, isActive *bool, sort string) ([]models.Category, error) {
	filter := bson.M{}
	if isActive != nil {
		filter["isActive"] = *isActive
	}

	find := options.Find().SetSort(util.ParseSortBson(sort))
	cursor, err := s.categoryCollection.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := s.categoryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := s.categoryCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	now := time.Now()
	category := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Link:      req.Link,
		Slug:      slug2.Make(req.Slug),
		IsActive:  req.Active(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.categoryCollection.InsertOne(ctx, category); err != nil {
		return nil, err
	}

	return &category, nil
}

// UpdateCategory is a full-field replace, not a partial patch.
func (s *CategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, req models.CategoryRequest) (*models.Category, error) {
	update := bson.M{
		"$set": bson.M{
			"name":      req.Name,
			"link":      req.Link,
			"slug":      slug2.Make(req.Slug),
			"isActive":  req.Active(),
			"updatedAt": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var category models.Category
	err := s.categoryCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category)
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// DeleteCategory enforces the restrict policy: a category referenced by
// products cannot be removed until those products are gone.
func (s *CategoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	inUse, err := s.productCollection.CountDocuments(ctx, bson.M{"category": id})
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}

	res, err := s.categoryCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
