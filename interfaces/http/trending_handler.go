package http

import (
	"net/http"

	"creator-dashboard/domain/dto"
	"creator-dashboard/domain/model"
	"creator-dashboard/usecase"

	"github.com/gin-gonic/gin"
)

type ITrendingHandler interface {
	GetOptions(ctx *gin.Context)
	GetTrending(ctx *gin.Context)
	GetState(ctx *gin.Context)
}

type TrendingHandler struct {
	trendingUsecase usecase.ITrendingUsecase
}

func NewTrendingHandler(trendingUsecase usecase.ITrendingUsecase) ITrendingHandler {
	return &TrendingHandler{trendingUsecase: trendingUsecase}
}

// GetOptions handles GET /api/trending/options
func (h *TrendingHandler) GetOptions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.trendingUsecase.Options())
}

// GetTrending handles GET /api/trending?region=&category=&q=&sort=
// Every call runs a new fetch cycle for the caller and supersedes the one in flight.
func (h *TrendingHandler) GetTrending(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	var params model.QueryParameters
	if err := ctx.ShouldBindQuery(&params); err != nil {
		respondError(ctx, model.NewValidationError("invalid query parameters"))
		return
	}

	snap, err := h.trendingUsecase.Refresh(ctx.Request.Context(), userID, params)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTrendingResponse(snap))
}

// GetState handles GET /api/trending/state
func (h *TrendingHandler) GetState(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTrendingResponse(h.trendingUsecase.State(userID)))
}

// CatalogUnavailable answers trending routes when no API key is configured.
func CatalogUnavailable(ctx *gin.Context) {
	ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
		Error:   "YouTube API not configured",
		Message: "set YOUTUBE_API_KEY to enable trending videos",
	})
}
