package dto

import "creator-dashboard/domain/model"

// ContentListResponse is the payload of GET /api/content.
type ContentListResponse struct {
	Items []model.ContentItem `json:"items"`
	Count int                 `json:"count"`
	Types []model.Option      `json:"types"`
}

// SaveScriptRequest is the body of POST /api/scripts.
type SaveScriptRequest struct {
	Title        string `json:"title" binding:"required"`
	Platform     string `json:"platform" binding:"required"`
	Content      string `json:"content" binding:"required"`
	VideoLength  int    `json:"videoLength"`
	Tone         string `json:"tone"`
	ContentStyle string `json:"contentStyle"`
}
