package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseSortBson(t *testing.T) {
	cases := []struct {
		name string
		sort string
		want bson.D
	}{
		{"descending", "-createdAt", bson.D{{Key: "createdAt", Value: -1}}},
		{"ascending", "name", bson.D{{Key: "name", Value: 1}}},
		{"multiple fields", "order,-name", bson.D{{Key: "order", Value: 1}, {Key: "name", Value: -1}}},
		{"whitespace tolerated", " order , -name ", bson.D{{Key: "order", Value: 1}, {Key: "name", Value: -1}}},
		{"unknown field skipped", "order,passwordDigest", bson.D{{Key: "order", Value: 1}}},
		{"only unknown falls back", "$where", bson.D{{Key: "createdAt", Value: -1}}},
		{"empty falls back", "", bson.D{{Key: "createdAt", Value: -1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSortBson(tc.sort))
		})
	}
}

func TestPaginationArgsSkip(t *testing.T) {
	assert.Equal(t, int64(0), PaginationArgs{Limit: 10, Page: 1}.Skip())
	assert.Equal(t, int64(20), PaginationArgs{Limit: 10, Page: 3}.Skip())
	assert.Equal(t, int64(0), PaginationArgs{Limit: 10, Page: 0}.Skip())
	assert.Equal(t, int64(0), PaginationArgs{Limit: 10, Page: -4}.Skip())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 12))
	assert.Equal(t, int64(1), TotalPages(1, 12))
	assert.Equal(t, int64(1), TotalPages(12, 12))
	assert.Equal(t, int64(2), TotalPages(13, 12))
	assert.Equal(t, int64(1), TotalPages(40, 0))
	assert.Equal(t, int64(0), TotalPages(0, 0))
}
