package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creator-dashboard/domain/dto"
	"creator-dashboard/domain/model"
	"creator-dashboard/infrastructure/clients/scriptgen"
	httpHandler "creator-dashboard/interfaces/http"
	"creator-dashboard/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	videos []model.NormalizedVideo
	err    error
	last   model.QueryParameters
}

func (f *fakeCatalog) MostPopular(_ context.Context, params model.QueryParameters) ([]model.NormalizedVideo, error) {
	f.last = params
	return f.videos, f.err
}

type MockContentUsecase struct {
	mock.Mock
}

func (m *MockContentUsecase) List(ctx context.Context, userID string, filter model.ContentFilter) ([]model.ContentItem, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentUsecase) SaveScript(ctx context.Context, userID string, script model.Script) (model.Script, error) {
	args := m.Called(ctx, userID, script)
	return args.Get(0).(model.Script), args.Error(1)
}

func (m *MockContentUsecase) Delete(ctx context.Context, userID string, contentType model.ContentType, id string) error {
	return m.Called(ctx, userID, contentType, id).Error(0)
}

// withUser stands in for the auth middleware.
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func newTrendingRouter(catalog *fakeCatalog, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := httpHandler.NewTrendingHandler(usecase.NewTrendingUsecase(catalog))
	r := gin.New()
	api := r.Group("/api", withUser(userID))
	api.GET("/trending/options", h.GetOptions)
	api.GET("/trending", h.GetTrending)
	api.GET("/trending/state", h.GetState)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var trendingFixture = []model.NormalizedVideo{
	{ID: "a", Title: "Cat video", ViewCount: "1500", LikeCount: "10", CommentCount: "1", PublishedAt: "2024-03-05T17:00:01Z"},
	{ID: "b", Title: "Big cat", ViewCount: "2500000", LikeCount: "20", CommentCount: "2"},
	{ID: "c", Title: "Dog", ViewCount: "9", LikeCount: "30", CommentCount: "3"},
}

func TestTrendingHandler_GetTrending(t *testing.T) {
	catalog := &fakeCatalog{videos: trendingFixture}
	r := newTrendingRouter(catalog, "user-1")

	w := serve(r, http.MethodGet, "/api/trending?region=gb&category=20&q=CAT&sort=views", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res dto.TrendingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.QueryParameters{Region: "GB", Category: "20", Search: "CAT", Sort: model.SortViews}, catalog.last)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "b", res.Videos[0].ID)
	assert.Equal(t, "2.5M", res.Videos[0].Display.Views)
	assert.Equal(t, "1.5K", res.Videos[1].Display.Views)
	assert.Equal(t, "Mar 5, 2024", res.Videos[1].Display.PublishedAt)
	assert.Equal(t, int64(2501500), res.Totals.Views)
	assert.Equal(t, "2.5M", res.Totals.Display.Views)
	assert.Equal(t, model.CycleSuccess, res.LastOutcome)

	state := serve(r, http.MethodGet, "/api/trending/state", "")
	require.Equal(t, http.StatusOK, state.Code)
	var snap dto.TrendingResponse
	require.NoError(t, json.Unmarshal(state.Body.Bytes(), &snap))
	assert.Equal(t, res.Seq, snap.Seq)
	assert.Equal(t, 2, snap.Count)
}

func TestTrendingHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		query  string
		status int
		msg    string
	}{
		{"upstream", &model.UpstreamError{StatusCode: 403, Message: "quota exceeded"}, "", http.StatusBadGateway, "quota exceeded"},
		{"generic upstream", &model.UpstreamError{Message: model.DefaultUpstreamMessage}, "", http.StatusBadGateway, "Failed to fetch trending videos"},
		{"unexpected", errors.New("boom"), "", http.StatusInternalServerError, "boom"},
		{"invalid region", nil, "?region=ZZ", http.StatusBadRequest, "unsupported region: ZZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTrendingRouter(&fakeCatalog{err: tt.err}, "user-1")
			w := serve(r, http.MethodGet, "/api/trending"+tt.query, "")

			assert.Equal(t, tt.status, w.Code)
			var res dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.msg, res.Error)
		})
	}
}

func TestTrendingHandler_RequiresUser(t *testing.T) {
	w := serve(newTrendingRouter(&fakeCatalog{}, ""), http.MethodGet, "/api/trending", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTrendingHandler_Options(t *testing.T) {
	w := serve(newTrendingRouter(&fakeCatalog{}, "user-1"), http.MethodGet, "/api/trending/options", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.TrendingOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Categories, 16)
	assert.Equal(t, model.Option{ID: "0", Name: "All Categories"}, res.Categories[0])
	assert.Len(t, res.Regions, 14)
	assert.Len(t, res.Platforms, 3)
}

func TestCatalogUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/trending", httpHandler.CatalogUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/api/trending", "").Code)
}

func newContentRouter(uc *MockContentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := httpHandler.NewContentHandler(uc)
	r := gin.New()
	api := r.Group("/api", withUser("user-1"))
	api.GET("/content", h.ListContent)
	api.DELETE("/content/:type/:id", h.DeleteContent)
	api.POST("/scripts", h.SaveScript)
	return r
}

func TestContentHandler_List(t *testing.T) {
	uc := new(MockContentUsecase)
	uc.On("List", mock.Anything, "user-1", model.ContentFilter{Search: "cat", Type: model.ContentImage}).
		Return([]model.ContentItem{{ID: "i1", Title: "Cat", Type: model.ContentImage}}, nil)

	w := serve(newContentRouter(uc), http.MethodGet, "/api/content?q=cat&type=image", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.ContentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "i1", res.Items[0].ID)
	assert.Len(t, res.Types, 6)
}

func TestContentHandler_Delete(t *testing.T) {
	uc := new(MockContentUsecase)
	uc.On("Delete", mock.Anything, "user-1", model.ContentScript, "s1").Return(nil)
	uc.On("Delete", mock.Anything, "user-1", model.ContentImage, "missing").Return(model.ErrNotFound)
	r := newContentRouter(uc)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/content/script/s1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/api/content/image/missing", "").Code)
}

func TestContentHandler_SaveScript(t *testing.T) {
	uc := new(MockContentUsecase)
	uc.On("SaveScript", mock.Anything, "user-1", mock.MatchedBy(func(s model.Script) bool {
		return s.Title == "Hooks" && s.VideoLength == 60
	})).Return(model.Script{ID: "s9", UserID: "user-1", Title: "Hooks"}, nil)
	r := newContentRouter(uc)

	w := serve(r, http.MethodPost, "/api/scripts", `{"title":"Hooks","platform":"youtube","content":"[HOOK]","videoLength":60}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"s9"`)

	bad := serve(r, http.MethodPost, "/api/scripts", `{"title":"Hooks"}`)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func newScriptRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := httpHandler.NewScriptHandler(usecase.NewScriptUsecase(scriptgen.NewTemplateGenerator(), nil, ""))
	r := gin.New()
	r.OPTIONS("/functions/v1/generate-script", h.Preflight)
	r.POST("/functions/v1/generate-script", h.GenerateScript)
	return r
}

func TestScriptHandler_Preflight(t *testing.T) {
	w := serve(newScriptRouter(), http.MethodOptions, "/functions/v1/generate-script", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestScriptHandler_Generate(t *testing.T) {
	body := `{"topic":"Hooks","platform":"youtube","videoLength":60,"tone":"casual","contentStyle":"educational","references":[]}`
	w := serve(newScriptRouter(), http.MethodPost, "/functions/v1/generate-script", body)

	require.Equal(t, http.StatusOK, w.Code)
	var res dto.ScriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, scriptgen.DemoScript, res.Script)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestScriptHandler_LenientVideoLength(t *testing.T) {
	for _, length := range []string{`30.5`, `"60"`} {
		body := `{"topic":"Hooks","platform":"youtube","videoLength":` + length + `,"tone":"casual","contentStyle":"educational"}`
		w := serve(newScriptRouter(), http.MethodPost, "/functions/v1/generate-script", body)
		assert.Equal(t, http.StatusOK, w.Code, length)
	}

	w := serve(newScriptRouter(), http.MethodPost, "/functions/v1/generate-script",
		`{"topic":"Hooks","platform":"youtube","videoLength":"soon","tone":"casual","contentStyle":"educational"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScriptHandler_MissingFields(t *testing.T) {
	w := serve(newScriptRouter(), http.MethodPost, "/functions/v1/generate-script", `{"topic":"Hooks","platform":"youtube"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestScriptHandler_MalformedBody(t *testing.T) {
	w := serve(newScriptRouter(), http.MethodPost, "/functions/v1/generate-script", `{"topic":`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var res dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Error)
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", httpHandler.NewHealthHandler(map[string]bool{"catalog": true}).Healthz)

	w := serve(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","components":{"catalog":true}}`, w.Body.String())
}
