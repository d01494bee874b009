// Package indexes bootstraps the MongoDB indexes the API depends on:
// unique slugs for categories and menus, unique admin emails, and
// supporting indexes for the hot list and dashboard queries.
package indexes

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Definition struct {
	Collection string
	Index      mongo.IndexModel
}

// Definitions lists every index the service expects at runtime.
func Definitions() []Definition {
	return []Definition{
		{
			Collection: "Category",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("category_slug_unique").SetUnique(true),
			},
		},
		{
			Collection: "Category",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("category_created_at"),
			},
		},
		{
			Collection: "Menu",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("menu_slug_unique").SetUnique(true),
			},
		},
		{
			Collection: "Menu",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "order", Value: 1}},
				Options: options.Index().SetName("menu_active_order"),
			},
		},
		{
			Collection: "Product",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("product_category_created_at"),
			},
		},
		{
			Collection: "User",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("user_email_unique").SetUnique(true),
			},
		},
	}
}

// Ensure creates the missing indexes, skipping ones already present.
// Unique-index failures over pre-existing duplicate data are logged and
// surfaced so deployments do not silently run without the constraint.
func Ensure(ctx context.Context, db *mongo.Database) error {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
	}

	for _, def := range Definitions() {
		exists, err := indexExists(ctx, db, def.Collection, *def.Index.Options.Name)
		if err == nil && exists {
			continue
		}

		if _, err := db.Collection(def.Collection).Indexes().CreateOne(ctx, def.Index); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				log.Printf("cannot create unique index %s on %s due to duplicate data", *def.Index.Options.Name, def.Collection)
			}
			return err
		}
		log.Printf("created index %s on %s", *def.Index.Options.Name, def.Collection)
	}

	return nil
}

func indexExists(ctx context.Context, db *mongo.Database, collection, name string) (bool, error) {
	cursor, err := db.Collection(collection).Indexes().List(ctx)
	if err != nil {
		return false, err
	}
	defer cursor.Close(ctx)

	var specs []bson.M
	if err := cursor.All(ctx, &specs); err != nil {
		return false, err
	}

	for _, spec := range specs {
		if spec["name"] == name {
			return true, nil
		}
	}
	return false, nil
}
