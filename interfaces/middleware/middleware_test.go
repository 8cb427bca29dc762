package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creator-dashboard/domain/dto"
	"creator-dashboard/infrastructure/utils"
	"creator-dashboard/interfaces/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(secret))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func doGet(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := utils.GenerateUserToken("user-1", "a@b.c", secret, time.Hour)
	require.NoError(t, err)

	w := doGet(newAuthRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-1"}`, w.Body.String())
}

func TestAuth_Rejections(t *testing.T) {
	expired, err := utils.GenerateToken(map[string]interface{}{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()}, secret)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateUserToken("user-1", "", "other-secret", time.Hour)
	require.NoError(t, err)
	noSubject, err := utils.GenerateToken(map[string]interface{}{"email": "x@y.z"}, secret)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		message       string
	}{
		{"missing header", "", "Unauthorized"},
		{"not bearer", "Basic abc", "Unauthorized"},
		{"malformed", "Bearer not-a-token", "That's not even a token"},
		{"expired", "Bearer " + expired, "Timing is everything"},
		{"wrong key", "Bearer " + wrongKey, ""},
		{"no subject", "Bearer " + noSubject, "Token has no subject"},
		{"alg none", "Bearer " + none, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(newAuthRouter(), tt.authorization)
			require.Equal(t, http.StatusUnauthorized, w.Code)

			var res dto.Res
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, "401", res.ResponseCode)
			if tt.message != "" {
				assert.Equal(t, tt.message, res.ResponseMessage)
			}
		})
	}
}

func TestRequestLog_AssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLog())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
}
