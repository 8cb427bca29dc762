package dto

import "creator-dashboard/domain/model"

// TrendingVideo is a normalized video plus its display strings.
type TrendingVideo struct {
	model.NormalizedVideo
	Display TrendingVideoDisplay `json:"display"`
}

type TrendingVideoDisplay struct {
	Views       string `json:"views"`
	Likes       string `json:"likes"`
	Comments    string `json:"comments"`
	PublishedAt string `json:"publishedAt"`
}

// TrendingTotals carries the aggregate counts and their display strings.
type TrendingTotals struct {
	model.Totals
	Display struct {
		Views    string `json:"views"`
		Likes    string `json:"likes"`
		Comments string `json:"comments"`
	} `json:"display"`
}

// TrendingResponse is the payload of GET /api/trending and /api/trending/state.
type TrendingResponse struct {
	Seq         uint64                `json:"seq"`
	State       model.CycleState      `json:"state"`
	LastOutcome model.CycleState      `json:"lastOutcome,omitempty"`
	Error       string                `json:"error,omitempty"`
	Params      model.QueryParameters `json:"params"`
	Count       int                   `json:"count"`
	Videos      []TrendingVideo       `json:"videos"`
	Totals      TrendingTotals        `json:"totals"`
}

// TrendingOptions is the payload of GET /api/trending/options.
type TrendingOptions struct {
	Categories []model.Option   `json:"categories"`
	Regions    []model.Option   `json:"regions"`
	Sorts      []model.Option   `json:"sorts"`
	Platforms  []model.Platform `json:"platforms"`
}

func NewTrendingResponse(s model.FetchCycleSnapshot) TrendingResponse {
	videos := make([]TrendingVideo, 0, len(s.Videos))
	for _, v := range s.Videos {
		videos = append(videos, TrendingVideo{
			NormalizedVideo: v,
			Display: TrendingVideoDisplay{
				Views:       model.FormatCount(v.ViewCount),
				Likes:       model.FormatCount(v.LikeCount),
				Comments:    model.FormatCount(v.CommentCount),
				PublishedAt: model.FormatPublishedAt(v.PublishedAt),
			},
		})
	}
	totals := TrendingTotals{Totals: s.Totals}
	totals.Display.Views = model.FormatInt(s.Totals.Views)
	totals.Display.Likes = model.FormatInt(s.Totals.Likes)
	totals.Display.Comments = model.FormatInt(s.Totals.Comments)

	return TrendingResponse{
		Seq:         s.Seq,
		State:       s.State,
		LastOutcome: s.LastOutcome,
		Error:       s.Error,
		Params:      s.Params,
		Count:       len(videos),
		Videos:      videos,
		Totals:      totals,
	}
}

func NewTrendingOptions() TrendingOptions {
	return TrendingOptions{
		Categories: model.Categories,
		Regions:    model.Regions,
		Sorts:      model.SortOptions,
		Platforms:  model.Platforms,
	}
}
