package http

import (
	"net/http"

	"creator-dashboard/domain/dto"
	"creator-dashboard/domain/model"
	"creator-dashboard/usecase"

	"github.com/gin-gonic/gin"
)

type IContentHandler interface {
	ListContent(ctx *gin.Context)
	DeleteContent(ctx *gin.Context)
	SaveScript(ctx *gin.Context)
}

type ContentHandler struct {
	contentUsecase usecase.IContentUsecase
}

func NewContentHandler(contentUsecase usecase.IContentUsecase) IContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

// ListContent handles GET /api/content?q=&type=
func (h *ContentHandler) ListContent(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	var filter model.ContentFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondError(ctx, model.NewValidationError("invalid query parameters"))
		return
	}

	items, err := h.contentUsecase.List(ctx.Request.Context(), userID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ContentListResponse{
		Items: items,
		Count: len(items),
		Types: model.ContentTypeOptions,
	})
}

// DeleteContent handles DELETE /api/content/:type/:id
func (h *ContentHandler) DeleteContent(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	contentType := model.ContentType(ctx.Param("type"))
	if err := h.contentUsecase.Delete(ctx.Request.Context(), userID, contentType, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SaveScript handles POST /api/scripts
func (h *ContentHandler) SaveScript(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	var req dto.SaveScriptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, model.NewValidationError("title, platform and content are required"))
		return
	}

	saved, err := h.contentUsecase.SaveScript(ctx.Request.Context(), userID, model.Script{
		Title:        req.Title,
		Platform:     req.Platform,
		Content:      req.Content,
		VideoLength:  req.VideoLength,
		Tone:         req.Tone,
		ContentStyle: req.ContentStyle,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, saved)
}

// ContentUnavailable answers content routes when no database is configured.
func ContentUnavailable(ctx *gin.Context) {
	ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "content library not configured"})
}
