package youtube

import (
	"testing"

	"creator-dashboard/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestNewCatalogQuery_CategorySentinel(t *testing.T) {
	for _, c := range model.Categories {
		q := NewCatalogQuery(model.QueryParameters{Region: "US", Category: c.ID})
		values := q.Values()

		if c.ID == model.AllCategories {
			_, ok := values["videoCategoryId"]
			assert.False(t, ok, "sentinel must be omitted")
			continue
		}
		assert.Equal(t, c.ID, values.Get("videoCategoryId"))
	}
}

func TestNewCatalogQuery_Fields(t *testing.T) {
	q := NewCatalogQuery(model.QueryParameters{Search: "ignored", Sort: model.SortViews})

	assert.Equal(t, CatalogQuery{
		Part:       "snippet,statistics",
		Chart:      "mostPopular",
		MaxResults: 24,
		RegionCode: "US",
	}, q)
	assert.Equal(t, "trending:chart=mostPopular&maxResults=24&part=snippet%2Cstatistics&regionCode=US", q.CacheKey())
}
