package model

import (
	"strconv"
	"strings"
	"time"
)

const (
	// AllCategories is the sentinel category meaning "no filter". It is never sent upstream.
	AllCategories = "0"
	DefaultRegion = "US"

	// TrendingPageSize is the fixed number of videos requested per fetch.
	TrendingPageSize = 24
)

// SortKey selects the ordering applied to the retained videos.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortViews     SortKey = "views"
	SortLikes     SortKey = "likes"
	SortComments  SortKey = "comments"
)

// NormalizedVideo is the view model of one catalog entry.
// Counts stay decimal strings as received; use the accessors for arithmetic.
type NormalizedVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

func (v NormalizedVideo) Views() int64    { return ParseCount(v.ViewCount) }
func (v NormalizedVideo) Likes() int64    { return ParseCount(v.LikeCount) }
func (v NormalizedVideo) Comments() int64 { return ParseCount(v.CommentCount) }

// Count returns the integer value used for the given sort key. Relevance has no count.
func (v NormalizedVideo) Count(key SortKey) int64 {
	switch key {
	case SortViews:
		return v.Views()
	case SortLikes:
		return v.Likes()
	case SortComments:
		return v.Comments()
	}
	return 0
}

// ParseCount parses a non-negative decimal count; anything else counts as zero.
func ParseCount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// QueryParameters are the user-controlled inputs of a fetch cycle.
type QueryParameters struct {
	Region   string  `json:"region" form:"region"`
	Category string  `json:"category" form:"category"`
	Search   string  `json:"search" form:"q"`
	Sort     SortKey `json:"sort" form:"sort"`
}

// Normalize fills in defaults for empty fields.
func (p QueryParameters) Normalize() QueryParameters {
	p.Region = strings.ToUpper(strings.TrimSpace(p.Region))
	if p.Region == "" {
		p.Region = DefaultRegion
	}
	p.Category = strings.TrimSpace(p.Category)
	if p.Category == "" {
		p.Category = AllCategories
	}
	if p.Sort == "" {
		p.Sort = SortRelevance
	}
	return p
}

// Validate checks the enumerated fields against the exposed option sets.
func (p QueryParameters) Validate() error {
	if !IsKnownRegion(p.Region) {
		return NewValidationError("unsupported region: " + p.Region)
	}
	if !IsKnownCategory(p.Category) {
		return NewValidationError("unsupported category: " + p.Category)
	}
	if !IsKnownSortKey(p.Sort) {
		return NewValidationError("unsupported sort: " + string(p.Sort))
	}
	return nil
}

// Totals are aggregate counts over a retained set of videos.
type Totals struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// TrendingResult is the output of one pipeline pass.
type TrendingResult struct {
	Videos []NormalizedVideo `json:"videos"`
	Totals Totals            `json:"totals"`
}

// CycleState is the phase of a fetch cycle.
type CycleState string

const (
	CycleIdle    CycleState = "idle"
	CycleLoading CycleState = "loading"
	CycleSuccess CycleState = "success"
	CycleError   CycleState = "error"
)

// FetchCycleSnapshot is a copy of a session's current state.
type FetchCycleSnapshot struct {
	Seq         uint64            `json:"seq"`
	State       CycleState        `json:"state"`
	LastOutcome CycleState        `json:"lastOutcome,omitempty"`
	Error       string            `json:"error,omitempty"`
	Params      QueryParameters   `json:"params"`
	Videos      []NormalizedVideo `json:"videos"`
	Totals      Totals            `json:"totals"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// FetchCycleEvent describes one state transition of a session.
type FetchCycleEvent struct {
	UserID  string     `json:"-"`
	Seq     uint64     `json:"seq"`
	State   CycleState `json:"state"`
	Outcome CycleState `json:"outcome,omitempty"`
	Error   string     `json:"error,omitempty"`
	Count   int        `json:"count"`
}
