package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"creator-dashboard/domain/model"
	"creator-dashboard/infrastructure/logger"
	"creator-dashboard/infrastructure/metrics"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client is the video catalog client backed by the YouTube Data API.
type Client struct {
	service *youtube.Service
	apiKey  string
}

// Config represents YouTube API configuration
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewYouTubeClient creates a read-only client. The API key is sent per call,
// so any http.Client (instrumented or a test double) can carry the requests.
func NewYouTubeClient(ctx context.Context, config *Config) (*Client, error) {
	if config == nil || config.APIKey == "" {
		return nil, errors.New("youtube client: api key is required")
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(ensureTrailingSlash(config.BaseURL)))
	}
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service, apiKey: config.APIKey}, nil
}

// MostPopular fetches one page of the most popular chart for the query's region
// and category and maps every entry into a NormalizedVideo.
func (c *Client) MostPopular(ctx context.Context, params model.QueryParameters) ([]model.NormalizedVideo, error) {
	q := NewCatalogQuery(params)

	call := c.service.Videos.List(strings.Split(q.Part, ",")).
		Chart(q.Chart).
		RegionCode(q.RegionCode).
		MaxResults(q.MaxResults)
	if q.VideoCategoryID != "" {
		call = call.VideoCategoryId(q.VideoCategoryID)
	}

	response, err := call.Context(ctx).Do(googleapi.QueryParameter("key", c.apiKey))
	metrics.RecordCatalogFetch(err)
	if err != nil {
		upstreamErr := toUpstreamError(err, c.apiKey)
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":  upstreamErr.Message,
			"status": upstreamErr.StatusCode,
			"query":  q.Values().Encode(),
		}).Warn("Catalog fetch failed")
		return nil, upstreamErr
	}

	videos := make([]model.NormalizedVideo, 0, len(response.Items))
	for _, item := range response.Items {
		videos = append(videos, convertToNormalizedVideo(item))
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"query": q.Values().Encode(),
		"count": len(videos),
	}).Debug("Catalog fetch succeeded")
	return videos, nil
}

func toUpstreamError(err error, apiKey string) *model.UpstreamError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = model.DefaultUpstreamMessage
		}
		return &model.UpstreamError{StatusCode: gerr.Code, Message: redactKey(msg, apiKey), Err: err}
	}
	// url.Error carries the request URL and with it the API key; keep only the cause
	msg := err.Error()
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		msg = uerr.Err.Error()
	}
	return &model.UpstreamError{Message: redactKey(msg, apiKey), Err: err}
}

func redactKey(msg, apiKey string) string {
	if apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, apiKey, "REDACTED")
}

// convertToNormalizedVideo maps an API entry; missing statistics become "0".
func convertToNormalizedVideo(video *youtube.Video) model.NormalizedVideo {
	v := model.NormalizedVideo{
		ID:           video.Id,
		ViewCount:    "0",
		LikeCount:    "0",
		CommentCount: "0",
	}
	if s := video.Snippet; s != nil {
		v.Title = s.Title
		v.Description = s.Description
		v.ChannelTitle = s.ChannelTitle
		v.PublishedAt = s.PublishedAt
		if s.Thumbnails != nil && s.Thumbnails.Medium != nil {
			v.ThumbnailURL = s.Thumbnails.Medium.Url
		}
	}
	if st := video.Statistics; st != nil {
		v.ViewCount = strconv.FormatUint(st.ViewCount, 10)
		v.LikeCount = strconv.FormatUint(st.LikeCount, 10)
		v.CommentCount = strconv.FormatUint(st.CommentCount, 10)
	}
	return v
}

func ensureTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
