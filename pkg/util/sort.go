package util

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Fields the API accepts in sort parameters. Anything else falls back to
// newest-first so arbitrary query strings never reach the driver.
var sortableFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"name":      true,
	"slug":      true,
	"order":     true,
	"email":     true,
}

// ParseSortBson turns a mongoose-style sort string ("-createdAt",
// "order,-name") into a bson.D sort document.
func ParseSortBson(sort string) bson.D {
	doc := bson.D{}
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		value := 1
		if strings.HasPrefix(field, "-") {
			value = -1
			field = strings.TrimPrefix(field, "-")
		}
		if !sortableFields[field] {
			continue
		}
		doc = append(doc, bson.E{Key: field, Value: value})
	}

	if len(doc) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return doc
}
