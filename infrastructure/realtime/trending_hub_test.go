package realtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creator-dashboard/domain/model"
	"creator-dashboard/infrastructure/realtime"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_StreamsOwnEventsOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := realtime.NewTrendingHub()

	ctx, cancel := context.WithCancel(context.Background())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/trending/stream", nil).WithContext(ctx)
	c.Set("user_id", "user-1")

	done := make(chan struct{})
	go func() {
		hub.Serve(c)
		close(done)
	}()

	require.Eventually(t, func() bool { return hub.Subscribers("user-1") == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastFetchCycle(model.FetchCycleEvent{UserID: "user-2", Seq: 9, State: model.CycleLoading})
	hub.BroadcastFetchCycle(model.FetchCycleEvent{UserID: "user-1", Seq: 3, State: model.CycleSuccess, Outcome: model.CycleSuccess, Count: 24})

	// let the stream drain before closing it
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, ":ok\n\n"))
	assert.Contains(t, body, "event: fetch_cycle\ndata: {\"seq\":3,\"state\":\"success\",\"outcome\":\"success\",\"count\":24}\n\n")
	assert.NotContains(t, body, `"seq":9`)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Zero(t, hub.Subscribers("user-1"))
}

func TestHub_RequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/trending/stream", nil)

	realtime.NewTrendingHub().Serve(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHub_BroadcastWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := realtime.NewTrendingHub()
	for i := 0; i < 100; i++ {
		hub.BroadcastFetchCycle(model.FetchCycleEvent{UserID: "user-1"})
	}
}
