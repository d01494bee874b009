package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

type ProductService struct {
	productCollection  *mongo.Collection
	categoryCollection *mongo.Collection
}

func NewProductService() *ProductService {
	return &ProductService{
		productCollection:  util.GetCollection(util.DB, "Product"),
		categoryCollection: util.GetCollection(util.DB, "Category"),
	}
}

// lookupStages joins the referenced category into each product document.
// preserveNullAndEmptyArrays keeps products whose category was removed
// before the restrict policy existed.
func lookupStages() []bson.M {
	return []bson.M{
		{
			"$lookup": bson.M{
				"from":         "Category",
				"localField":   "category",
				"foreignField": "_id",
				"as":           "categoryInfo",
			},
		},
		{
			"$unwind": bson.M{
				"path":                       "$categoryInfo",
				"preserveNullAndEmptyArrays": true,
			},
		},
	}
}

// GetProducts lists products with category populated. Without a limit the
// entire matching set is returned; the total is always counted against
// the same filters regardless of pagination.
func (s *ProductService) GetProducts(ctx context.Context, q models.ProductListQuery) ([]models.Product, int64, error) {
	match := bson.M{}
	if q.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(q.Category)
		if err != nil {
			return nil, 0, err
		}
		match["category"] = categoryID
	}

	stages := []bson.M{{"$match": match}}
	stages = append(stages, lookupStages()...)

	if q.Search != "" {
		regex := primitive.Regex{Pattern: q.Search, Options: "i"}
		stages = append(stages, bson.M{"$match": bson.M{
			"$or": []bson.M{
				{"image": bson.M{"$regex": regex}},
				{"categoryInfo.name": bson.M{"$regex": regex}},
			},
		}})
	}

	countStages := append(append([]bson.M{}, stages...), bson.M{"$count": "total"})

	stages = append(stages, bson.M{"$sort": util.ParseSortBson(q.Sort)})
	if q.Paginate {
		skip := util.PaginationArgs{Limit: q.Limit, Page: q.Page}.Skip()
		stages = append(stages, bson.M{"$skip": skip}, bson.M{"$limit": int64(q.Limit)})
	}

	cursor, err := s.productCollection.Aggregate(ctx, stages)
	if err != nil {
		return nil, 0, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	total, err := s.countPipeline(ctx, countStages)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetProductsByCategory returns one page of a category's products for the
// slug detail endpoint, along with the unpaginated total.
func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID primitive.ObjectID, pagination util.PaginationArgs) ([]models.Product, int64, error) {
	match := bson.M{"category": categoryID}

	stages := []bson.M{{"$match": match}}
	stages = append(stages, lookupStages()...)
	stages = append(stages,
		bson.M{"$sort": util.ParseSortBson(pagination.Sort)},
		bson.M{"$skip": pagination.Skip()},
		bson.M{"$limit": int64(pagination.Limit)},
	)

	cursor, err := s.productCollection.Aggregate(ctx, stages)
	if err != nil {
		return nil, 0, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	total, err := s.productCollection.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	stages := []bson.M{{"$match": bson.M{"_id": id}}}
	stages = append(stages, lookupStages()...)

	cursor, err := s.productCollection.Aggregate(ctx, stages)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return &products[0], nil
}

// CreateProduct verifies the referenced category exists before inserting
// and returns the created product with its category populated.
func (s *ProductService) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, err
	}

	if err := s.categoryCollection.FindOne(ctx, bson.M{"_id": categoryID}).Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := models.Product{
		ID:         primitive.NewObjectID(),
		Image:      req.Image,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := s.productCollection.InsertOne(ctx, product); err != nil {
		return nil, err
	}

	return s.GetProductByID(ctx, product.ID)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req models.ProductRequest) (*models.Product, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, err
	}

	if err := s.categoryCollection.FindOne(ctx, bson.M{"_id": categoryID}).Err(); err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"image":     req.Image,
			"category":  categoryID,
			"updatedAt": time.Now(),
		},
	}

	res, err := s.productCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return s.GetProductByID(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.productCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func (s *ProductService) countPipeline(ctx context.Context, stages []bson.M) (int64, error) {
	cursor, err := s.productCollection.Aggregate(ctx, stages)
	if err != nil {
		return 0, err
	}

	var result struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}

	return result.Total, nil
}
