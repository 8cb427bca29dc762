package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"creator-dashboard/domain/dto"
	"creator-dashboard/domain/model"
	"creator-dashboard/infrastructure/logger"
	"creator-dashboard/infrastructure/metrics"
	"creator-dashboard/usecase"

	"github.com/gin-gonic/gin"
)

type IScriptHandler interface {
	Preflight(ctx *gin.Context)
	GenerateScript(ctx *gin.Context)
}

type ScriptHandler struct {
	scriptUsecase usecase.IScriptUsecase
}

func NewScriptHandler(scriptUsecase usecase.IScriptUsecase) IScriptHandler {
	return &ScriptHandler{scriptUsecase: scriptUsecase}
}

// The script endpoint is called cross-origin from any client.
func setScriptCORS(ctx *gin.Context) {
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// Preflight handles OPTIONS /functions/v1/generate-script
func (h *ScriptHandler) Preflight(ctx *gin.Context) {
	setScriptCORS(ctx)
	ctx.AbortWithStatus(http.StatusNoContent)
}

// GenerateScript handles POST /functions/v1/generate-script
func (h *ScriptHandler) GenerateScript(ctx *gin.Context) {
	setScriptCORS(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.GetLogger().WithField("panic", r).Error("generate-script panicked")
			h.fail(ctx, http.StatusInternalServerError, fmt.Sprint(r))
		}
	}()

	var req model.ScriptRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil {
		h.fail(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	script, err := h.scriptUsecase.Generate(ctx.Request.Context(), req)
	if err != nil {
		h.fail(ctx, statusFor(err), err.Error())
		return
	}
	metrics.RecordScriptRequest(http.StatusOK)
	ctx.JSON(http.StatusOK, dto.ScriptResponse{Script: script})
}

func (h *ScriptHandler) fail(ctx *gin.Context, status int, msg string) {
	metrics.RecordScriptRequest(status)
	ctx.JSON(status, dto.ErrorResponse{Error: msg})
}
