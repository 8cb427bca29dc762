package model

import "time"

// ContentType is the kind of a saved content item.
type ContentType string

const (
	ContentAll      ContentType = "all"
	ContentScript   ContentType = "script"
	ContentDocument ContentType = "document"
	ContentImage    ContentType = "image"
	ContentVideo    ContentType = "video"
	ContentOther    ContentType = "other"
)

// ContentTypeOptions mirrors the type selector of the content library.
var ContentTypeOptions = []Option{
	{ID: string(ContentAll), Name: "All Types"},
	{ID: string(ContentScript), Name: "Scripts"},
	{ID: string(ContentDocument), Name: "Documents"},
	{ID: string(ContentImage), Name: "Images"},
	{ID: string(ContentVideo), Name: "Videos"},
	{ID: string(ContentOther), Name: "Others"},
}

func IsKnownContentType(t ContentType) bool { return hasOption(ContentTypeOptions, string(t)) }

// ContentItem is one row of the user's library. Rows of the scripts table carry
// the script-only fields; rows of content_items leave them nil.
type ContentItem struct {
	ID           string      `json:"id" gorm:"column:id;primaryKey"`
	UserID       string      `json:"user_id" gorm:"column:user_id;index"`
	Title        string      `json:"title" gorm:"column:title"`
	Type         ContentType `json:"type" gorm:"column:type"`
	CreatedAt    time.Time   `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	Platform     *string     `json:"platform,omitempty" gorm:"column:platform"`
	Content      *string     `json:"content,omitempty" gorm:"column:content"`
	VideoLength  *int        `json:"video_length,omitempty" gorm:"column:video_length"`
	Tone         *string     `json:"tone,omitempty" gorm:"column:tone"`
	ContentStyle *string     `json:"content_style,omitempty" gorm:"column:content_style"`
}

func (ContentItem) TableName() string { return "content_items" }

// Script is a generated script saved by a user.
type Script struct {
	ID           string    `json:"id" gorm:"column:id;primaryKey"`
	UserID       string    `json:"user_id" gorm:"column:user_id;index"`
	Title        string    `json:"title" gorm:"column:title"`
	Platform     string    `json:"platform" gorm:"column:platform"`
	Content      string    `json:"content" gorm:"column:content"`
	VideoLength  int       `json:"video_length" gorm:"column:video_length"`
	Tone         string    `json:"tone" gorm:"column:tone"`
	ContentStyle string    `json:"content_style" gorm:"column:content_style"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Script) TableName() string { return "scripts" }

// AsContentItem maps a script row into the library shape.
func (s Script) AsContentItem() ContentItem {
	platform, content, tone, style, length := s.Platform, s.Content, s.Tone, s.ContentStyle, s.VideoLength
	return ContentItem{
		ID:           s.ID,
		UserID:       s.UserID,
		Title:        s.Title,
		Type:         ContentScript,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Platform:     &platform,
		Content:      &content,
		VideoLength:  &length,
		Tone:         &tone,
		ContentStyle: &style,
	}
}

// ContentFilter narrows a library listing.
type ContentFilter struct {
	Search string      `form:"q"`
	Type   ContentType `form:"type"`
}
