package youtube

import (
	"net/url"

	"creator-dashboard/domain/model"

	"github.com/google/go-querystring/query"
)

const (
	partSnippetStatistics = "snippet,statistics"
	chartMostPopular      = "mostPopular"
)

// CatalogQuery is the upstream request derived from QueryParameters.
// The search string never appears here; it is applied after the fetch.
type CatalogQuery struct {
	Part            string `url:"part"`
	Chart           string `url:"chart"`
	MaxResults      int64  `url:"maxResults"`
	RegionCode      string `url:"regionCode"`
	VideoCategoryID string `url:"videoCategoryId,omitempty"`
}

func NewCatalogQuery(params model.QueryParameters) CatalogQuery {
	params = params.Normalize()
	q := CatalogQuery{
		Part:       partSnippetStatistics,
		Chart:      chartMostPopular,
		MaxResults: model.TrendingPageSize,
		RegionCode: params.Region,
	}
	if params.Category != model.AllCategories {
		q.VideoCategoryID = params.Category
	}
	return q
}

// Values encodes the query without the credential.
func (q CatalogQuery) Values() url.Values {
	v, err := query.Values(q)
	if err != nil {
		return url.Values{}
	}
	return v
}

// CacheKey identifies the upstream result of this query.
func (q CatalogQuery) CacheKey() string {
	return "trending:" + q.Values().Encode()
}
