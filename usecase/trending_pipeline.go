package usecase

import (
	"sort"
	"strings"

	"creator-dashboard/domain/model"
)

// FilterByTitle keeps videos whose title contains search, ignoring case.
// An empty search returns the input unchanged.
func FilterByTitle(videos []model.NormalizedVideo, search string) []model.NormalizedVideo {
	if search == "" {
		return videos
	}
	needle := strings.ToLower(search)
	out := make([]model.NormalizedVideo, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), needle) {
			out = append(out, v)
		}
	}
	return out
}

// SortVideos orders videos by the count selected by key, highest first.
// Relevance keeps the upstream order. The input slice is left untouched.
func SortVideos(videos []model.NormalizedVideo, key model.SortKey) []model.NormalizedVideo {
	if key == model.SortRelevance || key == "" {
		return videos
	}
	out := make([]model.NormalizedVideo, len(videos))
	copy(out, videos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count(key) > out[j].Count(key)
	})
	return out
}

// Summarize sums views, likes and comments over exactly the given videos.
func Summarize(videos []model.NormalizedVideo) model.Totals {
	var t model.Totals
	for _, v := range videos {
		t.Views += v.Views()
		t.Likes += v.Likes()
		t.Comments += v.Comments()
	}
	return t
}

// RunPipeline applies search filter, sort and aggregation for one fetch cycle.
func RunPipeline(videos []model.NormalizedVideo, params model.QueryParameters) model.TrendingResult {
	retained := SortVideos(FilterByTitle(videos, params.Search), params.Sort)
	if retained == nil {
		retained = []model.NormalizedVideo{}
	}
	return model.TrendingResult{
		Videos: retained,
		Totals: Summarize(retained),
	}
}
